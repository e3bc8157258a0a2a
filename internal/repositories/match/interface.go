package match

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/pinnacle-pathways/matchtrack/internal/repositories/match Repository

import (
	"context"

	"github.com/pinnacle-pathways/matchtrack/internal/models"
)

// Repository defines the interface for match document persistence
type Repository interface {
	// SaveMatch persists a match document
	SaveMatch(ctx context.Context, input *SaveMatchInput) error

	// GetMatch retrieves a match by ID
	GetMatch(ctx context.Context, input *GetMatchInput) (*models.Match, error)

	// ListMatches retrieves all matches ordered by match date
	ListMatches(ctx context.Context, input *ListMatchesInput) (*ListMatchesOutput, error)

	// ReplaceMatchFields overwrites the given top-level fields of a match
	// document and returns the updated document
	ReplaceMatchFields(ctx context.Context, input *ReplaceMatchFieldsInput) (*models.Match, error)

	// DeleteMatch removes a match
	DeleteMatch(ctx context.Context, input *DeleteMatchInput) error
}
