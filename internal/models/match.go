package models

import (
	"time"
)

// Match is the root aggregate for one recorded sporting event under
// analysis. Sessions, slices and events live inside the match document
// and are persisted as a whole on every change.
type Match struct {
	// ID is the unique identifier for the match
	ID string `json:"_id"`

	// Name is the display name of the match
	Name string `json:"name"`

	// SportID references the sport this match belongs to
	SportID string `json:"sport"`

	// MatchDate is when the match was played
	MatchDate time.Time `json:"matchDate"`

	// VideoURL is an optional reference to the recorded video
	VideoURL string `json:"videoUrl,omitempty"`

	// Players is the ordered roster of player identifiers
	Players []string `json:"players"`

	// Sessions holds the analysis sessions for this match
	Sessions []*Session `json:"sessions"`

	// CreatedAt is when the match was created
	CreatedAt time.Time `json:"createdAt"`

	// UpdatedAt is when the match was last written
	UpdatedAt time.Time `json:"updatedAt"`
}

// Session is a named analysis scope within a match, holding its own
// slices and events.
type Session struct {
	// ID is unique within the parent match
	ID string `json:"id"`

	// Name is the display name of the session
	Name string `json:"name"`

	// Slices is the ordered sequence of time slices
	Slices []*Slice `json:"slices"`

	// Events is the ordered sequence of logged events
	Events []*Event `json:"events"`
}

// Slice is a time interval of a session's video tagged with the players
// active during it. Start and end times are seconds relative to the
// session video. Ordering and non-overlap are not enforced.
type Slice struct {
	ID        string  `json:"id"`
	StartTime float64 `json:"startTime"`
	EndTime   float64 `json:"endTime"`

	// ActivePlayers is semantically a set, stored in insertion order.
	ActivePlayers []string `json:"activePlayers"`
}

// Event is a timestamped, typed occurrence logged during a session.
// Type is a free string; it is expected to come from the sport's
// declared event types but this is not enforced.
type Event struct {
	ID        string  `json:"id"`
	Timestamp float64 `json:"timestamp"`
	Type      string  `json:"type"`
	Details   string  `json:"details"`

	// Players optionally lists the player identifiers involved.
	Players []string `json:"players,omitempty"`
}
