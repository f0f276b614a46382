package session

import (
	"time"

	"github.com/KirkDiggler/standup/internal/models"
)

type SaveSessionInput struct {
	Session *models.Session
}

type GetSessionInput struct {
	SessionID string
}

type DeleteSessionInput struct {
	SessionID string
}

type ListSessionsInput struct {
	TeamID string
	Status models.SessionStatus

	// From and To bound the index time (completion time for completed
	// sessions, creation time otherwise), inclusive. Zero means unbounded.
	From time.Time
	To   time.Time
}

type ListSessionsOutput struct {
	// Sessions are ordered oldest first
	Sessions []*models.Session
}

type ClaimActiveInput struct {
	TeamID    string
	SessionID string
}

type ClaimActiveOutput struct {
	// Claimed is true when the session now holds (or already held) the claim
	Claimed bool

	// ActiveSessionID is the session holding the claim
	ActiveSessionID string
}

type GetActiveSessionIDInput struct {
	TeamID string
}

type ReleaseActiveInput struct {
	TeamID    string
	SessionID string
}
