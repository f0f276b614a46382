package leaderboard

import (
	"time"

	"github.com/KirkDiggler/standup/internal/common/clock"
	"github.com/KirkDiggler/standup/internal/models"
	memberRepo "github.com/KirkDiggler/standup/internal/repositories/member"
	sessionRepo "github.com/KirkDiggler/standup/internal/repositories/session"
	teamRepo "github.com/KirkDiggler/standup/internal/repositories/team"
	"github.com/sirupsen/logrus"
)

// TopPerformerCount is how many members a report ranks
const TopPerformerCount = 5

// Config holds configuration for the leaderboard service
type Config struct {
	// Repository dependencies
	SessionRepo sessionRepo.Repository
	TeamRepo    teamRepo.Repository
	MemberRepo  memberRepo.Repository

	// Clock anchors period windows
	Clock clock.Clock

	// Location decides calendar days; defaults to UTC
	Location *time.Location

	Logger logrus.FieldLogger
}

// GetTeamReportInput contains parameters for a team report
type GetTeamReportInput struct {
	TeamID string

	// From and To bound the window. When From is zero the window is taken
	// from Period instead.
	From time.Time
	To   time.Time

	// Period is one of "7d", "30d" or "90d"; anything else means "30d"
	Period string
}

// GetTeamReportOutput contains the aggregates of the window
type GetTeamReportOutput struct {
	TeamID string
	From   time.Time
	To     time.Time

	TotalSessions   int
	AverageScore    int
	AverageDuration int

	// TotalParticipants counts distinct members that spoke in the window
	TotalParticipants int

	// ParticipationRate is the floored percentage of possible appearances
	ParticipationRate int

	// TopPerformers are ranked by average score
	TopPerformers []*models.PerformerStats

	// Trends holds one bucket per calendar day of the window, oldest first
	Trends []*models.TrendBucket
}

// GetMemberStandingsInput contains parameters for member standings
type GetMemberStandingsInput struct {
	TeamID string

	// Limit truncates the standings when positive
	Limit int
}

// GetMemberStandingsOutput contains the ranked members
type GetMemberStandingsOutput struct {
	Standings []*models.Standing
}
