package meeting

import (
	"github.com/KirkDiggler/standup/internal/common/clock"
	"github.com/KirkDiggler/standup/internal/common/uuid"
	"github.com/KirkDiggler/standup/internal/models"
	"github.com/KirkDiggler/standup/internal/notifier"
	memberRepo "github.com/KirkDiggler/standup/internal/repositories/member"
	sessionRepo "github.com/KirkDiggler/standup/internal/repositories/session"
	teamRepo "github.com/KirkDiggler/standup/internal/repositories/team"
	"github.com/KirkDiggler/standup/internal/services/stats"
	"github.com/KirkDiggler/standup/internal/streak"
	"github.com/sirupsen/logrus"
)

// Config holds configuration for the meeting service
type Config struct {
	// Repository dependencies
	SessionRepo sessionRepo.Repository
	TeamRepo    teamRepo.Repository
	MemberRepo  memberRepo.Repository

	// Service dependencies
	StatsService stats.Service

	// Notifier receives timer and completion events; defaults to notifier.Nop
	Notifier notifier.Notifier

	// Clock stamps session times; it never feeds scoring
	Clock clock.Clock

	// UUIDGenerator names new sessions
	UUIDGenerator uuid.UUID

	// StreakPolicy decides whether a session continues a streak;
	// defaults to consecutive calendar days in UTC
	StreakPolicy streak.Policy

	Logger logrus.FieldLogger
}

// CreateSessionInput contains parameters for planning a session
type CreateSessionInput struct {
	TeamID string

	// Name defaults to "Standup <date>"
	Name string

	// Participants fixes the speaking order. When empty every active member
	// of the team takes part in listing order.
	Participants []models.RosterEntry
}

// CreateSessionOutput contains the planned session
type CreateSessionOutput struct {
	Session *models.Session
}

// GetSessionInput contains parameters for loading a session
type GetSessionInput struct {
	SessionID string
}

// GetSessionOutput contains the session and its running turn
type GetSessionOutput struct {
	Session *models.Session

	// CurrentMemberID is empty when no turn is running
	CurrentMemberID string
	ElapsedSeconds  int
}

// GetActiveSessionInput names the team whose running session is wanted
type GetActiveSessionInput struct {
	TeamID string
}

// GetActiveSessionOutput contains the team's active session and its running turn
type GetActiveSessionOutput struct {
	Session         *models.Session
	CurrentMemberID string
	ElapsedSeconds  int
}

// StartSessionInput contains parameters for starting a session
type StartSessionInput struct {
	SessionID string
}

// StartSessionOutput contains the active session
type StartSessionOutput struct {
	Session *models.Session
}

// StartTurnInput contains parameters for starting the current turn
type StartTurnInput struct {
	SessionID string
}

// StartTurnOutput names the speaker now being timed
type StartTurnOutput struct {
	MemberID string
}

// TickInput contains parameters for ticking a session
type TickInput struct {
	SessionID string
}

// TickOutput describes the running turn after the tick
type TickOutput struct {
	MemberID       string
	ElapsedSeconds int
	OverLimit      bool
}

// AdvanceTurnInput contains parameters for ending the running turn
type AdvanceTurnInput struct {
	SessionID string
}

// AdvanceTurnOutput contains the finalized turn and what followed it
type AdvanceTurnOutput struct {
	FinalizedTurn *models.Turn

	// NextMemberID is the speaker now being timed, empty when the session completed
	NextMemberID string

	// Completed is true when the finalized turn was the last one
	Completed bool

	// Summary is set when Completed is true
	Summary *models.SessionSummary
}

// RecordTurnInput contains the values echoed for a participant's turn
type RecordTurnInput struct {
	SessionID           string
	MemberID            string
	SpeakingTimeSeconds int

	// Points overrides scoring for the turn when set
	Points *int

	Notes string
}

// RecordTurnOutput contains the updated turn
type RecordTurnOutput struct {
	Turn *models.Turn
}

// FinalTurn is a participant's result supplied at completion
type FinalTurn struct {
	MemberID            string
	SpeakingTimeSeconds int

	// Points overrides scoring for the turn when set
	Points *int

	Notes string
}

// CompleteSessionInput contains parameters for completing a session
type CompleteSessionInput struct {
	SessionID string

	// FinalTurns finalizes turns with known results. A planned session can
	// only be completed directly when final turns are supplied.
	FinalTurns []*FinalTurn

	// TotalDurationSeconds overrides the computed total when positive
	TotalDurationSeconds int
}

// CompleteSessionOutput contains the scored session
type CompleteSessionOutput struct {
	Session *models.Session
	Summary *models.SessionSummary
	Stats   *stats.ApplySessionOutput
}

// CancelSessionInput contains parameters for cancelling a session
type CancelSessionInput struct {
	SessionID string
}

// CancelSessionOutput contains the cancelled session
type CancelSessionOutput struct {
	Session *models.Session
}

// DeleteSessionInput contains parameters for deleting a session
type DeleteSessionInput struct {
	SessionID string
}

// UpdateSessionNotesInput contains the replacement notes
type UpdateSessionNotesInput struct {
	SessionID string
	Notes     string
}

// UpdateSessionNotesOutput contains the updated session
type UpdateSessionNotesOutput struct {
	Session *models.Session
}
