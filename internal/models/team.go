package models

import (
	"time"
)

// ScoringMode selects the point scale applied to every turn of a session
type ScoringMode string

const (
	// ScoringModeTimeBased scores turns on the continuous 100-point scale
	ScoringModeTimeBased ScoringMode = "time_based"

	// ScoringModeTiered scores turns on the 10/7/5/2 tier scale
	ScoringModeTiered ScoringMode = "tiered"
)

// IsValid reports whether the mode is one of the known scales
func (m ScoringMode) IsValid() bool {
	return m == ScoringModeTimeBased || m == ScoringModeTiered
}

const (
	// DefaultTargetDurationSeconds is the whole-standup target used when a team has none configured
	DefaultTargetDurationSeconds = 900

	// DefaultMaxSpeakingTimeSeconds is the per-turn limit above which a turn is a violation
	DefaultMaxSpeakingTimeSeconds = 120
)

// TeamConfig holds the per-team standup settings
type TeamConfig struct {
	// TargetDurationSeconds is the target length of a whole standup
	TargetDurationSeconds int

	// MaxSpeakingTimeSeconds is the per-turn limit before a violation is flagged
	MaxSpeakingTimeSeconds int

	// ScoringMode selects the point scale for every session of the team
	ScoringMode ScoringMode
}

// WithDefaults returns a copy of the config with unset fields filled in
func (c TeamConfig) WithDefaults() TeamConfig {
	if c.TargetDurationSeconds <= 0 {
		c.TargetDurationSeconds = DefaultTargetDurationSeconds
	}
	if c.MaxSpeakingTimeSeconds <= 0 {
		c.MaxSpeakingTimeSeconds = DefaultMaxSpeakingTimeSeconds
	}
	if !c.ScoringMode.IsValid() {
		c.ScoringMode = ScoringModeTimeBased
	}
	return c
}

// TeamStats are the running statistics of a team across completed sessions
type TeamStats struct {
	TotalSessions        int
	TotalDurationSeconds int
	AverageDuration      int
	TotalScore           int
	AverageScore         int
	BestDuration         int
	CurrentStreak        int
	LongestStreak        int

	// LastSessionAt is when the most recent counted session completed
	LastSessionAt time.Time
}

// Team represents a group of members that hold standups together
type Team struct {
	// ID is the unique identifier for the team
	ID string

	// Name is the display name of the team
	Name string

	// Config holds the standup settings of the team
	Config TeamConfig

	// Stats holds the running statistics of the team
	Stats TeamStats

	// Badges are the badges earned by the team as a whole
	Badges []*Badge

	// CreatedAt is when the team was created
	CreatedAt time.Time

	// UpdatedAt is when the team was last updated
	UpdatedAt time.Time
}
