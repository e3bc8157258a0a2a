package visit

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/pinnacle-pathways/matchtrack/internal/repositories/visit Repository

import (
	"context"

	"github.com/pinnacle-pathways/matchtrack/internal/models"
)

// Repository defines the interface for visit persistence and the
// page-view counters the dashboard aggregates.
type Repository interface {
	// SaveVisit persists a visit
	SaveVisit(ctx context.Context, input *SaveVisitInput) error

	// GetVisit retrieves a visit by ID
	GetVisit(ctx context.Context, input *GetVisitInput) (*models.Visit, error)

	// RecordPageView increments the per-page and per-day counters
	RecordPageView(ctx context.Context, input *RecordPageViewInput) error

	// GetPageCounts returns total views per page
	GetPageCounts(ctx context.Context, input *GetPageCountsInput) (*GetPageCountsOutput, error)

	// GetDayCounts returns total views per day
	GetDayCounts(ctx context.Context, input *GetDayCountsInput) (*GetDayCountsOutput, error)
}
