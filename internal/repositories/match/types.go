package match

import (
	"time"

	"github.com/pinnacle-pathways/matchtrack/internal/models"
)

type SaveMatchInput struct {
	Match *models.Match
}

type GetMatchInput struct {
	MatchID string
}

type ListMatchesInput struct {
	// SportID optionally restricts the listing to one sport
	SportID string
}

type ListMatchesOutput struct {
	Matches []*models.Match
}

// MatchFields carries the top-level fields to overwrite on a match
// document. Nil fields are left untouched; set fields replace the
// stored value in full, with no merging of nested arrays.
type MatchFields struct {
	Name      *string
	MatchDate *time.Time
	VideoURL  *string
	Players   *[]string
	Sessions  *[]*models.Session
}

type ReplaceMatchFieldsInput struct {
	MatchID string
	Fields  *MatchFields
}

type DeleteMatchInput struct {
	MatchID string
}
