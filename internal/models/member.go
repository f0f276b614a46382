package models

import (
	"time"
)

// MemberStats are the running statistics of a member across completed sessions
type MemberStats struct {
	TotalSessions     int
	TotalSpeakingTime int
	AverageTime       int
	BestTime          int
	TotalScore        int
	AverageScore      int
	CurrentStreak     int
	LongestStreak     int
	Violations        int

	// LastSessionAt is when the most recent counted session completed
	LastSessionAt time.Time
}

// Recompute derives the averages from the running totals
func (s *MemberStats) Recompute() {
	if s.TotalSessions <= 0 {
		s.AverageTime = 0
		s.AverageScore = 0
		return
	}
	s.AverageTime = s.TotalSpeakingTime / s.TotalSessions
	s.AverageScore = s.TotalScore / s.TotalSessions
}

// Member represents a person who speaks in a team's standups
type Member struct {
	// ID is the unique identifier for the member
	ID string

	// TeamID is the team the member belongs to
	TeamID string

	// Name is the display name of the member
	Name string

	// Avatar is an optional image URL
	Avatar string

	// Title is the member's role shown next to their name
	Title string

	// ExternalID is the identifier of the member on the chat platform it was imported from
	ExternalID string

	// ListOrder is the position of the member in the team listing
	ListOrder int

	// IsActive is false once the member has been deactivated
	IsActive bool

	// Stats holds the running statistics of the member
	Stats MemberStats

	// Badges are the badges earned by the member
	Badges []*Badge

	// CreatedAt is when the member was created
	CreatedAt time.Time

	// UpdatedAt is when the member was last updated
	UpdatedAt time.Time
}

// RosterEntry is a participant of a session as supplied at creation time
type RosterEntry struct {
	MemberID string
	Name     string
	Avatar   string
	Title    string
}

// ToRosterEntry returns the roster view of the member
func (m *Member) ToRosterEntry() RosterEntry {
	return RosterEntry{
		MemberID: m.ID,
		Name:     m.Name,
		Avatar:   m.Avatar,
		Title:    m.Title,
	}
}
