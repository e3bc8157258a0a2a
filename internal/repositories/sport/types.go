package sport

import "github.com/pinnacle-pathways/matchtrack/internal/models"

type SaveSportInput struct {
	Sport *models.Sport
}

type GetSportInput struct {
	SportID string
}

type ListSportsInput struct {
}

type ListSportsOutput struct {
	Sports []*models.Sport
}
