// Package notifier carries best-effort session events to observers.
package notifier

//go:generate mockgen -package=mocks -destination=mocks/mock_notifier.go github.com/KirkDiggler/standup/internal/notifier Notifier

import (
	"context"

	"github.com/KirkDiggler/standup/internal/models"
)

// EventType identifies the kind of event delivered to observers
type EventType string

const (
	EventTimerUpdate      EventType = "timer_update"
	EventSessionCompleted EventType = "session_completed"
	EventSessionCancelled EventType = "session_cancelled"
)

// TimerUpdateEvent is emitted on every tick of a running turn
type TimerUpdateEvent struct {
	SessionID      string
	TeamID         string
	MemberID       string
	ElapsedSeconds int

	// OverLimit is true once the speaker passed the team's speaking limit
	OverLimit bool
}

// SessionCompletedEvent is emitted once a session has been scored and counted
type SessionCompletedEvent struct {
	SessionID string
	TeamID    string
	Summary   *models.SessionSummary
}

// SessionCancelledEvent is emitted once a session was abandoned without scoring
type SessionCancelledEvent struct {
	SessionID string
	TeamID    string
}

// Notifier accepts session events. Delivery is fire-and-forget: implementations
// must not block the caller and never report failures back.
type Notifier interface {
	TimerUpdate(ctx context.Context, event *TimerUpdateEvent)
	SessionCompleted(ctx context.Context, event *SessionCompletedEvent)
	SessionCancelled(ctx context.Context, event *SessionCancelledEvent)
}

// Nop discards every event
type Nop struct{}

func (Nop) TimerUpdate(context.Context, *TimerUpdateEvent)           {}
func (Nop) SessionCompleted(context.Context, *SessionCompletedEvent) {}
func (Nop) SessionCancelled(context.Context, *SessionCancelledEvent) {}

// Multi fans every event out to each notifier in order
type Multi []Notifier

func (m Multi) TimerUpdate(ctx context.Context, event *TimerUpdateEvent) {
	for _, n := range m {
		n.TimerUpdate(ctx, event)
	}
}

func (m Multi) SessionCompleted(ctx context.Context, event *SessionCompletedEvent) {
	for _, n := range m {
		n.SessionCompleted(ctx, event)
	}
}

func (m Multi) SessionCancelled(ctx context.Context, event *SessionCancelledEvent) {
	for _, n := range m {
		n.SessionCancelled(ctx, event)
	}
}
