package session

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/standup/internal/repositories/session Repository

import (
	"context"

	"github.com/KirkDiggler/standup/internal/models"
)

// Repository defines the interface for session data persistence
type Repository interface {
	// SaveSession persists a session and keeps the team/status index current
	SaveSession(ctx context.Context, input *SaveSessionInput) error

	// GetSession retrieves a session by ID
	GetSession(ctx context.Context, input *GetSessionInput) (*models.Session, error)

	// DeleteSession removes a session and its index entries
	DeleteSession(ctx context.Context, input *DeleteSessionInput) error

	// ListSessions retrieves a team's sessions in one status within a time window
	ListSessions(ctx context.Context, input *ListSessionsInput) (*ListSessionsOutput, error)

	// ClaimActive marks a session as the team's single active session
	ClaimActive(ctx context.Context, input *ClaimActiveInput) (*ClaimActiveOutput, error)

	// GetActiveSessionID returns the team's active session ID, or empty
	GetActiveSessionID(ctx context.Context, input *GetActiveSessionIDInput) (string, error)

	// ReleaseActive clears the team's active marker if it still names the session
	ReleaseActive(ctx context.Context, input *ReleaseActiveInput) error
}
