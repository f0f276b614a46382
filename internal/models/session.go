package models

import (
	"time"
)

// SessionStatus represents the lifecycle state of a standup session
type SessionStatus string

const (
	// SessionStatusPlanned indicates the session has been created but not started
	SessionStatusPlanned SessionStatus = "planned"

	// SessionStatusActive indicates speakers are taking their turns
	SessionStatusActive SessionStatus = "active"

	// SessionStatusCompleted indicates the session was scored and counted
	SessionStatusCompleted SessionStatus = "completed"

	// SessionStatusCancelled indicates the session was abandoned without scoring
	SessionStatusCancelled SessionStatus = "cancelled"
)

// IsTerminal reports whether no further transition is possible
func (s SessionStatus) IsTerminal() bool {
	return s == SessionStatusCompleted || s == SessionStatusCancelled
}

// CanTransitionTo reports whether moving from s to next is a forward transition
func (s SessionStatus) CanTransitionTo(next SessionStatus) bool {
	switch s {
	case SessionStatusPlanned:
		return next == SessionStatusActive || next == SessionStatusCompleted || next == SessionStatusCancelled
	case SessionStatusActive:
		return next == SessionStatusCompleted || next == SessionStatusCancelled
	}
	return false
}

// IsDeletable reports whether a session in this state may be removed
func (s SessionStatus) IsDeletable() bool {
	return s == SessionStatusPlanned || s == SessionStatusCancelled
}

// Session represents a single standup meeting of a team
type Session struct {
	// ID is the unique identifier for the session
	ID string

	// TeamID is the team holding the session
	TeamID string

	// Name is the display name of the session
	Name string

	// Status is the current lifecycle state
	Status SessionStatus

	// ScoringMode is the scale fixed for every turn of this session
	ScoringMode ScoringMode

	// MaxSpeakingTimeSeconds is the violation limit captured at creation
	MaxSpeakingTimeSeconds int

	// Turns holds one turn per participant ordered by Order
	Turns []*Turn

	StartTime            time.Time
	EndTime              time.Time
	TotalDurationSeconds int
	AverageSpeakingTime  int

	// TeamScore is the floored mean of the turn points
	TeamScore int

	// WinnerMemberID is the member with the strictly highest points
	WinnerMemberID string

	// Notes is free text attached to the session
	Notes string

	CreatedAt   time.Time
	UpdatedAt   time.Time
	CompletedAt time.Time
}

// TurnFor returns the turn of the given member or nil
func (s *Session) TurnFor(memberID string) *Turn {
	for _, t := range s.Turns {
		if t.MemberID == memberID {
			return t
		}
	}
	return nil
}

// SessionSummary is the outcome of a completed session sent to observers
type SessionSummary struct {
	SessionID            string
	TeamID               string
	SessionName          string
	TeamScore            int
	WinnerMemberID       string
	WinnerName           string
	TotalDurationSeconds int
	AverageSpeakingTime  int
	Violations           int
	Turns                []*Turn
}

// Summarize builds the summary of a completed session
func (s *Session) Summarize() *SessionSummary {
	summary := &SessionSummary{
		SessionID:            s.ID,
		TeamID:               s.TeamID,
		SessionName:          s.Name,
		TeamScore:            s.TeamScore,
		WinnerMemberID:       s.WinnerMemberID,
		TotalDurationSeconds: s.TotalDurationSeconds,
		AverageSpeakingTime:  s.AverageSpeakingTime,
		Turns:                s.Turns,
	}
	for _, t := range s.Turns {
		if t.HasViolation {
			summary.Violations++
		}
		if t.MemberID == s.WinnerMemberID {
			summary.WinnerName = t.MemberName
		}
	}
	return summary
}
