package sport

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/pinnacle-pathways/matchtrack/internal/repositories/sport Repository

import (
	"context"

	"github.com/pinnacle-pathways/matchtrack/internal/models"
)

// Repository defines the interface for the sport registry
type Repository interface {
	// SaveSport persists a sport
	SaveSport(ctx context.Context, input *SaveSportInput) error

	// GetSport retrieves a sport by ID
	GetSport(ctx context.Context, input *GetSportInput) (*models.Sport, error)

	// ListSports retrieves all sports
	ListSports(ctx context.Context, input *ListSportsInput) (*ListSportsOutput, error)
}
