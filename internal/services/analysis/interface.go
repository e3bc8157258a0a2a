package analysis

import "context"

// Service defines the interface for match analysis operations
type Service interface {
	// CreateMatch creates a new match with one default session
	CreateMatch(ctx context.Context, input *CreateMatchInput) (*CreateMatchOutput, error)

	// GetMatch retrieves a match by ID
	GetMatch(ctx context.Context, input *GetMatchInput) (*GetMatchOutput, error)

	// ListMatches retrieves matches ordered by match date
	ListMatches(ctx context.Context, input *ListMatchesInput) (*ListMatchesOutput, error)

	// AddPlayer adds a player identifier to the match roster
	AddPlayer(ctx context.Context, input *AddPlayerInput) (*AddPlayerOutput, error)

	// RemovePlayer removes a player identifier from the match roster
	RemovePlayer(ctx context.Context, input *RemovePlayerInput) (*RemovePlayerOutput, error)

	// AddSession appends a new named session to a match
	AddSession(ctx context.Context, input *AddSessionInput) (*AddSessionOutput, error)

	// CreateSlice appends a new time slice to a session, carrying the
	// previous slice's roster forward
	CreateSlice(ctx context.Context, input *CreateSliceInput) (*CreateSliceOutput, error)

	// ToggleActivePlayer flips a player's membership in a slice's
	// active set
	ToggleActivePlayer(ctx context.Context, input *ToggleActivePlayerInput) (*ToggleActivePlayerOutput, error)

	// AddEvent appends a typed, timestamped event to a session
	AddEvent(ctx context.Context, input *AddEventInput) (*AddEventOutput, error)
}
