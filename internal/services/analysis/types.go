package analysis

import (
	"time"

	"github.com/pinnacle-pathways/matchtrack/internal/common/clock"
	"github.com/pinnacle-pathways/matchtrack/internal/common/uuid"
	"github.com/pinnacle-pathways/matchtrack/internal/models"
	actionLogRepo "github.com/pinnacle-pathways/matchtrack/internal/repositories/actionlog"
	matchRepo "github.com/pinnacle-pathways/matchtrack/internal/repositories/match"
	sportRepo "github.com/pinnacle-pathways/matchtrack/internal/repositories/sport"
)

// defaultEventDetails seeds a new event's free-text field; the admin
// edits it afterwards.
const defaultEventDetails = "New Event"

// defaultSessionName names the session created with every new match.
const defaultSessionName = "Session 1"

// Config holds configuration for the analysis service
type Config struct {
	// Repository dependencies
	MatchRepo     matchRepo.Repository
	SportRepo     sportRepo.Repository
	ActionLogRepo actionLogRepo.Repository

	// Service dependencies
	Clock         clock.Clock
	UUIDGenerator uuid.UUID
}

// CreateMatchInput contains parameters for creating a new match
type CreateMatchInput struct {
	// Name is the display name of the match
	Name string

	// SportID references the sport the match belongs to
	SportID string

	// MatchDate is when the match was played; zero means now
	MatchDate time.Time

	// VideoURL optionally references the recorded video
	VideoURL string

	// Actor is who performs the operation, for the audit trail
	Actor string
}

// CreateMatchOutput contains the result of creating a match
type CreateMatchOutput struct {
	Match *models.Match
}

// GetMatchInput contains parameters for retrieving a match
type GetMatchInput struct {
	MatchID string
}

// GetMatchOutput contains the retrieved match
type GetMatchOutput struct {
	Match *models.Match
}

// ListMatchesInput contains parameters for listing matches
type ListMatchesInput struct {
	// SportID optionally restricts the listing to one sport
	SportID string
}

// ListMatchesOutput contains the listed matches
type ListMatchesOutput struct {
	Matches []*models.Match
}

// AddPlayerInput contains parameters for adding a roster player
type AddPlayerInput struct {
	MatchID  string
	PlayerID string
	Actor    string
}

// AddPlayerOutput contains the result of adding a roster player
type AddPlayerOutput struct {
	Match *models.Match

	// Added is false when the player was already on the roster
	Added bool
}

// RemovePlayerInput contains parameters for removing a roster player
type RemovePlayerInput struct {
	MatchID  string
	PlayerID string
	Actor    string
}

// RemovePlayerOutput contains the result of removing a roster player
type RemovePlayerOutput struct {
	Match *models.Match

	// Removed is false when the player was not on the roster
	Removed bool
}

// AddSessionInput contains parameters for appending a session
type AddSessionInput struct {
	MatchID string

	// Name is the session display name; empty picks "Session N"
	Name string

	Actor string
}

// AddSessionOutput contains the result of appending a session
type AddSessionOutput struct {
	Match   *models.Match
	Session *models.Session
}

// CreateSliceInput contains parameters for appending a time slice
type CreateSliceInput struct {
	MatchID   string
	SessionID string

	// PlaybackTime is the current video position in seconds; it
	// becomes the new slice's end time
	PlaybackTime float64

	Actor string
}

// CreateSliceOutput contains the result of appending a time slice
type CreateSliceOutput struct {
	Match *models.Match
	Slice *models.Slice
}

// ToggleActivePlayerInput contains parameters for flipping a player's
// membership in a slice's active set
type ToggleActivePlayerInput struct {
	MatchID   string
	SessionID string
	SliceID   string
	PlayerID  string
	Actor     string
}

// ToggleActivePlayerOutput contains the result of the toggle
type ToggleActivePlayerOutput struct {
	Match *models.Match
	Slice *models.Slice

	// Active reports the player's membership after the toggle
	Active bool
}

// AddEventInput contains parameters for appending an event
type AddEventInput struct {
	MatchID   string
	SessionID string

	// Type is the event-type label; it is not checked against the
	// sport's declared vocabulary
	Type string

	// PlaybackTime is the current video position in seconds
	PlaybackTime float64

	// Players optionally lists involved player identifiers
	Players []string

	Actor string
}

// AddEventOutput contains the result of appending an event
type AddEventOutput struct {
	Match *models.Match
	Event *models.Event
}
