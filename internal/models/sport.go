package models

// Sport declares the event-type vocabulary for matches of one sport.
// The vocabulary populates the admin UI's event type selector; it is
// not enforced against Event.Type at the data layer.
type Sport struct {
	// ID is the unique identifier for the sport
	ID string `json:"_id"`

	// Name is the display name of the sport
	Name string `json:"name"`

	// EventTypes lists the valid event-type labels for this sport
	EventTypes []string `json:"eventTypes"`
}
