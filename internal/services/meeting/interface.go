package meeting

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/standup/internal/services/meeting Service

import (
	"context"
	"time"
)

// Service defines the lifecycle operations of a standup session
type Service interface {
	// CreateSession plans a session for the given roster or the team's active members
	CreateSession(ctx context.Context, input *CreateSessionInput) (*CreateSessionOutput, error)

	// GetSession returns a session with the state of its running turn
	GetSession(ctx context.Context, input *GetSessionInput) (*GetSessionOutput, error)

	// GetActiveSession returns the session holding the team's active claim
	GetActiveSession(ctx context.Context, input *GetActiveSessionInput) (*GetActiveSessionOutput, error)

	// StartSession moves a planned session to active
	StartSession(ctx context.Context, input *StartSessionInput) (*StartSessionOutput, error)

	// StartTurn begins timing the current speaker
	StartTurn(ctx context.Context, input *StartTurnInput) (*StartTurnOutput, error)

	// Tick adds one second to the running turn
	Tick(ctx context.Context, input *TickInput) (*TickOutput, error)

	// AdvanceTurn ends the running turn; after the last turn the session is completed
	AdvanceTurn(ctx context.Context, input *AdvanceTurnInput) (*AdvanceTurnOutput, error)

	// RecordTurn overwrites the in-progress values of a participant's turn
	RecordTurn(ctx context.Context, input *RecordTurnInput) (*RecordTurnOutput, error)

	// CompleteSession scores the session and counts it in the statistics
	CompleteSession(ctx context.Context, input *CompleteSessionInput) (*CompleteSessionOutput, error)

	// CancelSession abandons a session without touching statistics
	CancelSession(ctx context.Context, input *CancelSessionInput) (*CancelSessionOutput, error)

	// DeleteSession removes a planned or cancelled session
	DeleteSession(ctx context.Context, input *DeleteSessionInput) error

	// UpdateSessionNotes replaces the free-text notes of any session
	UpdateSessionNotes(ctx context.Context, input *UpdateSessionNotesInput) (*UpdateSessionNotesOutput, error)

	// TickActive ticks every running turn once and returns how many advanced
	TickActive(ctx context.Context) int

	// RunTicker calls TickActive once per interval until ctx is done
	RunTicker(ctx context.Context, interval time.Duration)
}
