package models

import (
	"time"
)

// Visit records one page view on the public site, from first load until
// the visitor leaves. Browser, OS and device are parsed from the
// User-Agent header at start time.
type Visit struct {
	// ID is the unique identifier for the visit
	ID string `json:"_id"`

	// Page is the path of the page that was viewed
	Page string `json:"page"`

	// Browser is the visitor's browser name
	Browser string `json:"browser"`

	// OS is the visitor's operating system
	OS string `json:"os"`

	// Device distinguishes mobile, bot and desktop visitors
	Device string `json:"device"`

	// StartedAt is when the visit began
	StartedAt time.Time `json:"startedAt"`

	// EndedAt is when the visit ended; zero while still open
	EndedAt time.Time `json:"endedAt,omitempty"`
}
