package team

import "github.com/KirkDiggler/standup/internal/models"

type SaveTeamInput struct {
	Team *models.Team
}

type GetTeamInput struct {
	TeamID string
}

type UpdateTeamInput struct {
	TeamID string

	// Update mutates the stored team; an error aborts without writing
	Update func(team *models.Team) error
}
