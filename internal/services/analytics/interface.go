package analytics

import "context"

// Service defines the interface for visitor analytics operations
type Service interface {
	// StartVisit records the start of a page view
	StartVisit(ctx context.Context, input *StartVisitInput) (*StartVisitOutput, error)

	// EndVisit closes an open visit
	EndVisit(ctx context.Context, input *EndVisitInput) (*EndVisitOutput, error)

	// GetDashboard aggregates page-view counts for the admin dashboard
	GetDashboard(ctx context.Context, input *GetDashboardInput) (*GetDashboardOutput, error)
}
