package actionlog

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/pinnacle-pathways/matchtrack/internal/repositories/actionlog Repository

import (
	"context"
)

// Repository defines the interface for the admin action audit trail
type Repository interface {
	// AppendAction records one audit entry
	AppendAction(ctx context.Context, input *AppendActionInput) error

	// ListActions retrieves recent entries, newest first
	ListActions(ctx context.Context, input *ListActionsInput) (*ListActionsOutput, error)
}
