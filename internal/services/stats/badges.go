package stats

import (
	"time"

	"github.com/KirkDiggler/standup/internal/models"
	"github.com/KirkDiggler/standup/internal/scoring"
)

const consistencyStreak = 7

type memberBadgeRule struct {
	badge models.Badge
	earns func(member *models.Member, turn *models.Turn, mode models.ScoringMode) bool
}

type teamBadgeRule struct {
	badge models.Badge
	earns func(team *models.Team, session *models.Session, targetSeconds int) bool
}

var memberBadgeRules = []memberBadgeRule{
	{
		badge: models.Badge{
			Name:        models.BadgeSpeedDemon,
			Description: "Completed standup in under 60 seconds",
			Category:    models.BadgeCategorySpeed,
			Icon:        "⚡",
		},
		earns: func(_ *models.Member, turn *models.Turn, _ models.ScoringMode) bool {
			return turn.SpeakingTimeSeconds > 0 && turn.SpeakingTimeSeconds <= 60
		},
	},
	{
		badge: models.Badge{
			Name:        models.BadgePerfectScore,
			Description: "Achieved perfect standup score",
			Category:    models.BadgeCategoryQuality,
			Icon:        "💯",
		},
		earns: func(_ *models.Member, turn *models.Turn, mode models.ScoringMode) bool {
			return turn.PointsEarned >= scoring.PerfectScore(mode)
		},
	},
	{
		badge: models.Badge{
			Name:        models.BadgeConsistencyKing,
			Description: "7 days streak of standups",
			Category:    models.BadgeCategoryConsistency,
			Icon:        "🔥",
		},
		earns: func(member *models.Member, _ *models.Turn, _ models.ScoringMode) bool {
			return member.Stats.CurrentStreak >= consistencyStreak
		},
	},
}

var teamBadgeRules = []teamBadgeRule{
	{
		badge: models.Badge{
			Name:        models.BadgeConsistencyKing,
			Description: "7 days streak of standups",
			Category:    models.BadgeCategoryConsistency,
			Icon:        "🔥",
		},
		earns: func(team *models.Team, _ *models.Session, _ int) bool {
			return team.Stats.CurrentStreak >= consistencyStreak
		},
	},
	{
		badge: models.Badge{
			Name:        models.BadgeOnTarget,
			Description: "Finished a standup within the team's target duration",
			Category:    models.BadgeCategorySpeed,
			Icon:        "🎯",
		},
		earns: func(_ *models.Team, session *models.Session, targetSeconds int) bool {
			return targetSeconds > 0 && session.TotalDurationSeconds > 0 && session.TotalDurationSeconds <= targetSeconds
		},
	},
}

// awardMemberBadges evaluates the rules against the post-update member
func awardMemberBadges(member *models.Member, turn *models.Turn, mode models.ScoringMode, now time.Time) []*models.Badge {
	var awarded []*models.Badge
	for _, rule := range memberBadgeRules {
		if !rule.earns(member, turn, mode) {
			continue
		}
		badge := rule.badge
		badge.EarnedAt = now

		var ok bool
		member.Badges, ok = models.AwardBadge(member.Badges, &badge)
		if ok {
			awarded = append(awarded, &badge)
		}
	}
	return awarded
}

// awardTeamBadges evaluates the rules against the post-update team
func awardTeamBadges(team *models.Team, session *models.Session, targetSeconds int, now time.Time) []*models.Badge {
	var awarded []*models.Badge
	for _, rule := range teamBadgeRules {
		if !rule.earns(team, session, targetSeconds) {
			continue
		}
		badge := rule.badge
		badge.EarnedAt = now

		var ok bool
		team.Badges, ok = models.AwardBadge(team.Badges, &badge)
		if ok {
			awarded = append(awarded, &badge)
		}
	}
	return awarded
}
