// Package scoring converts a speaking duration into points and violation flags.
package scoring

import (
	"github.com/KirkDiggler/standup/internal/models"
)

// ScoringError is a custom error type for scoring errors
type ScoringError string

// Error implements the error interface
func (e ScoringError) Error() string {
	return string(e)
}

const (
	ErrNegativeDuration ScoringError = "speaking duration cannot be negative"
)

// SpeedBonusPoints is added to the fastest speaker(s) of a session
const SpeedBonusPoints = 5

// Band upper bounds in seconds, inclusive
const (
	fastLimit    = 60
	steadyLimit  = 90
	slowLimit    = 120
	minTimedPts  = 20
	timedCeiling = 100
)

// Config selects the scale and violation limit
type Config struct {
	// Mode is the point scale; an unknown mode scores on the time-based scale
	Mode models.ScoringMode

	// MaxSpeakingTimeSeconds is the limit above which a turn is a violation; defaults to 120
	MaxSpeakingTimeSeconds int
}

// ConfigFor returns the scoring config fixed on a session
func ConfigFor(session *models.Session) Config {
	return Config{
		Mode:                   session.ScoringMode,
		MaxSpeakingTimeSeconds: session.MaxSpeakingTimeSeconds,
	}
}

// Result is the outcome of scoring a single turn
type Result struct {
	Points                 int
	HasViolation           bool
	QualifiesForSpeedBonus bool
}

// Score returns the points and flags for a speaking duration
func Score(durationSeconds int, cfg Config) (*Result, error) {
	if durationSeconds < 0 {
		return nil, ErrNegativeDuration
	}

	limit := cfg.MaxSpeakingTimeSeconds
	if limit <= 0 {
		limit = models.DefaultMaxSpeakingTimeSeconds
	}

	return &Result{
		Points:                 points(durationSeconds, cfg.Mode),
		HasViolation:           durationSeconds > limit,
		QualifiesForSpeedBonus: durationSeconds > 0,
	}, nil
}

func points(d int, mode models.ScoringMode) int {
	if mode == models.ScoringModeTiered {
		switch {
		case d <= fastLimit:
			return 10
		case d <= steadyLimit:
			return 7
		case d <= slowLimit:
			return 5
		default:
			return 2
		}
	}

	switch {
	case d <= fastLimit:
		return timedCeiling
	case d <= steadyLimit:
		return 80
	case d <= slowLimit:
		return 60
	default:
		return max(minTimedPts, timedCeiling-d)
	}
}

// PerfectScore is the base points a turn needs to count as perfect
func PerfectScore(mode models.ScoringMode) int {
	if mode == models.ScoringModeTiered {
		return 10
	}
	return timedCeiling
}

// SpeedBonusWinners marks the entries holding the strictly minimum positive
// duration. Ties all win; zero durations never win.
func SpeedBonusWinners(durations []int) []bool {
	winners := make([]bool, len(durations))

	fastest := 0
	for _, d := range durations {
		if d > 0 && (fastest == 0 || d < fastest) {
			fastest = d
		}
	}
	if fastest == 0 {
		return winners
	}

	for i, d := range durations {
		winners[i] = d == fastest
	}
	return winners
}
