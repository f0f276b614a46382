package team

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/standup/internal/repositories/team Repository

import (
	"context"

	"github.com/KirkDiggler/standup/internal/models"
)

// Repository defines the interface for team data persistence
type Repository interface {
	// SaveTeam persists a team
	SaveTeam(ctx context.Context, input *SaveTeamInput) error

	// GetTeam retrieves a team by ID
	GetTeam(ctx context.Context, input *GetTeamInput) (*models.Team, error)

	// UpdateTeam changes a team without losing concurrent writes
	UpdateTeam(ctx context.Context, input *UpdateTeamInput) (*models.Team, error)
}
