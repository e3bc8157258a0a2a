package visit

import "github.com/pinnacle-pathways/matchtrack/internal/models"

type SaveVisitInput struct {
	Visit *models.Visit
}

type GetVisitInput struct {
	VisitID string
}

type RecordPageViewInput struct {
	// Page is the path of the viewed page
	Page string

	// Day is the view date formatted as YYYY-MM-DD
	Day string
}

type GetPageCountsInput struct {
}

type GetPageCountsOutput struct {
	// Counts maps page path to total views
	Counts map[string]int64
}

type GetDayCountsInput struct {
}

type GetDayCountsOutput struct {
	// Counts maps YYYY-MM-DD to total views
	Counts map[string]int64
}
