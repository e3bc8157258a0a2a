package analytics

import (
	"github.com/pinnacle-pathways/matchtrack/internal/common/clock"
	"github.com/pinnacle-pathways/matchtrack/internal/common/uuid"
	"github.com/pinnacle-pathways/matchtrack/internal/models"
	visitRepo "github.com/pinnacle-pathways/matchtrack/internal/repositories/visit"
)

// Config holds configuration for the analytics service
type Config struct {
	// Repository dependencies
	VisitRepo visitRepo.Repository

	// Service dependencies
	Clock         clock.Clock
	UUIDGenerator uuid.UUID
}

// StartVisitInput contains parameters for starting a visit
type StartVisitInput struct {
	// Page is the path of the viewed page
	Page string

	// UserAgent is the visitor's raw User-Agent header
	UserAgent string
}

// StartVisitOutput contains the recorded visit
type StartVisitOutput struct {
	Visit *models.Visit
}

// EndVisitInput contains parameters for closing a visit
type EndVisitInput struct {
	VisitID string
}

// EndVisitOutput contains the closed visit
type EndVisitOutput struct {
	Visit *models.Visit
}

// GetDashboardInput contains parameters for the dashboard aggregation
type GetDashboardInput struct {
}

// GetDashboardOutput contains the aggregated page-view counts
type GetDashboardOutput struct {
	// PageCounts maps page path to total views
	PageCounts map[string]int64

	// DayCounts maps YYYY-MM-DD to total views
	DayCounts map[string]int64

	// TotalViews is the sum over all pages
	TotalViews int64
}
