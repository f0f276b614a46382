package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSessionStatusTransitions(t *testing.T) {
	tests := []struct {
		from SessionStatus
		to   SessionStatus
		ok   bool
	}{
		{SessionStatusPlanned, SessionStatusActive, true},
		{SessionStatusPlanned, SessionStatusCompleted, true},
		{SessionStatusPlanned, SessionStatusCancelled, true},
		{SessionStatusActive, SessionStatusCompleted, true},
		{SessionStatusActive, SessionStatusCancelled, true},
		{SessionStatusActive, SessionStatusPlanned, false},
		{SessionStatusActive, SessionStatusActive, false},
		{SessionStatusCompleted, SessionStatusActive, false},
		{SessionStatusCompleted, SessionStatusCancelled, false},
		{SessionStatusCancelled, SessionStatusPlanned, false},
		{SessionStatusCancelled, SessionStatusCompleted, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.ok, tt.from.CanTransitionTo(tt.to), "%s -> %s", tt.from, tt.to)
	}
}

func TestSessionStatusDeletable(t *testing.T) {
	assert.True(t, SessionStatusPlanned.IsDeletable())
	assert.True(t, SessionStatusCancelled.IsDeletable())
	assert.False(t, SessionStatusActive.IsDeletable())
	assert.False(t, SessionStatusCompleted.IsDeletable())
}

func TestAwardBadgeIsIdempotent(t *testing.T) {
	first := time.Date(2025, 4, 1, 9, 0, 0, 0, time.UTC)

	badges, awarded := AwardBadge(nil, &Badge{Name: BadgeSpeedDemon, EarnedAt: first})
	assert.True(t, awarded)

	badges, awarded = AwardBadge(badges, &Badge{Name: BadgeSpeedDemon, EarnedAt: first.Add(24 * time.Hour)})
	assert.False(t, awarded)
	assert.Len(t, badges, 1)
	assert.Equal(t, first, badges[0].EarnedAt)
}

func TestMemberStatsRecompute(t *testing.T) {
	stats := MemberStats{TotalSessions: 3, TotalSpeakingTime: 200, TotalScore: 250}
	stats.Recompute()
	assert.Equal(t, 66, stats.AverageTime)
	assert.Equal(t, 83, stats.AverageScore)

	empty := MemberStats{}
	empty.Recompute()
	assert.Zero(t, empty.AverageTime)
}

func TestTeamConfigWithDefaults(t *testing.T) {
	cfg := TeamConfig{}.WithDefaults()
	assert.Equal(t, DefaultTargetDurationSeconds, cfg.TargetDurationSeconds)
	assert.Equal(t, DefaultMaxSpeakingTimeSeconds, cfg.MaxSpeakingTimeSeconds)
	assert.Equal(t, ScoringModeTimeBased, cfg.ScoringMode)

	custom := TeamConfig{TargetDurationSeconds: 600, MaxSpeakingTimeSeconds: 90, ScoringMode: ScoringModeTiered}.WithDefaults()
	assert.Equal(t, 600, custom.TargetDurationSeconds)
	assert.Equal(t, 90, custom.MaxSpeakingTimeSeconds)
	assert.Equal(t, ScoringModeTiered, custom.ScoringMode)
}

func TestSummarize(t *testing.T) {
	session := &Session{
		ID:             "s1",
		TeamID:         "t1",
		TeamScore:      68,
		WinnerMemberID: "m1",
		Turns: []*Turn{
			{MemberID: "m1", MemberName: "Ada", PointsEarned: 105},
			{MemberID: "m2", MemberName: "Bo", PointsEarned: 20, HasViolation: true},
		},
	}

	summary := session.Summarize()
	assert.Equal(t, "Ada", summary.WinnerName)
	assert.Equal(t, 1, summary.Violations)
	assert.Equal(t, 68, summary.TeamScore)
}
