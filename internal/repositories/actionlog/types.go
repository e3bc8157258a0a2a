package actionlog

import "github.com/pinnacle-pathways/matchtrack/internal/models"

type AppendActionInput struct {
	Entry *models.ActionEntry
}

type ListActionsInput struct {
	// Limit caps the number of returned entries; 0 means the default
	Limit int
}

type ListActionsOutput struct {
	Entries []*models.ActionEntry
}
