package stats

import (
	"github.com/KirkDiggler/standup/internal/common/clock"
	"github.com/KirkDiggler/standup/internal/models"
	"github.com/KirkDiggler/standup/internal/repositories/ledger"
	"github.com/KirkDiggler/standup/internal/streak"
	"github.com/sirupsen/logrus"
)

// Config holds configuration for the stats service
type Config struct {
	// LedgerRepo commits a session with the statistics it produces
	LedgerRepo ledger.Repository

	// Clock stamps newly earned badges
	Clock clock.Clock

	Logger logrus.FieldLogger
}

// ApplySessionInput contains the session to count
type ApplySessionInput struct {
	// Session must be completed with every turn scored; it is persisted as given
	Session *models.Session

	// TargetDurationSeconds is the team's whole-standup target
	TargetDurationSeconds int

	// Consecutive decides, against each member's and the team's previous
	// session time, whether this session continues their streak. Nil means
	// every session starts a new streak.
	Consecutive streak.Policy
}

// MemberUpdate is the outcome for one participant
type MemberUpdate struct {
	MemberID string

	// Member is nil when the member no longer exists
	Member *models.Member

	// Applied is false when the session had already been counted for the member
	Applied bool

	// AwardedBadges are the badges first earned by this session
	AwardedBadges []*models.Badge
}

// TeamUpdate is the outcome for the team
type TeamUpdate struct {
	Team          *models.Team
	Applied       bool
	AwardedBadges []*models.Badge
}

// ApplySessionOutput contains the post-update aggregates
type ApplySessionOutput struct {
	Members []*MemberUpdate
	Team    *TeamUpdate
}
