package models

import (
	"time"
)

// ActionEntry is one row of the admin audit trail, recorded after a
// persisted mutation succeeds.
type ActionEntry struct {
	// ID is the unique identifier for the entry
	ID string `json:"_id"`

	// Actor is who performed the action
	Actor string `json:"actor"`

	// Action names the operation, e.g. "match.addPlayer"
	Action string `json:"action"`

	// TargetType is the kind of entity acted on
	TargetType string `json:"targetType"`

	// TargetID is the identifier of the entity acted on
	TargetID string `json:"targetId"`

	// Timestamp is when the action happened
	Timestamp time.Time `json:"timestamp"`
}
