package stats

import (
	"context"
	"fmt"
	"time"

	"github.com/KirkDiggler/standup/internal/common/clock"
	"github.com/KirkDiggler/standup/internal/models"
	"github.com/KirkDiggler/standup/internal/repositories/ledger"
	"github.com/KirkDiggler/standup/internal/streak"
	"github.com/sirupsen/logrus"
)

// service implements the Service interface
type service struct {
	ledgerRepo ledger.Repository
	clock      clock.Clock
	log        logrus.FieldLogger
}

// New creates a new stats service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.LedgerRepo == nil {
		return nil, ErrNilLedgerRepo
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	logger := cfg.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	return &service{
		ledgerRepo: cfg.LedgerRepo,
		clock:      cfg.Clock,
		log:        logger.WithField("component", "stats"),
	}, nil
}

// ApplySession records a completed session and counts it for each
// participant and the team. The session, the member statistics and the team
// statistics are written together or not at all, and re-applying a session is
// a no-op.
func (s *service) ApplySession(ctx context.Context, input *ApplySessionInput) (*ApplySessionOutput, error) {
	if input == nil || input.Session == nil {
		return nil, ErrNilSession
	}

	session := input.Session
	if session.Status != models.SessionStatusCompleted {
		return nil, ErrSessionNotComplete
	}

	at := session.CompletedAt
	if at.IsZero() {
		at = session.EndTime
	}
	now := s.clock.Now()

	log := s.log.WithFields(logrus.Fields{
		"session_id": session.ID,
		"team_id":    session.TeamID,
	})

	// The apply functions rerun on every retry, so awards are keyed and overwritten
	memberAwards := make(map[string][]*models.Badge, len(session.Turns))
	var teamAwards []*models.Badge

	output, err := s.ledgerRepo.CommitSession(ctx, &ledger.CommitSessionInput{
		Session: session,
		ApplyMember: func(member *models.Member, turn *models.Turn) error {
			applyMemberRecurrence(&member.Stats, turn, continues(input.Consecutive, member.Stats.LastSessionAt, at), at)
			memberAwards[member.ID] = awardMemberBadges(member, turn, session.ScoringMode, now)
			return nil
		},
		ApplyTeam: func(team *models.Team) error {
			applyTeamRecurrence(&team.Stats, session, continues(input.Consecutive, team.Stats.LastSessionAt, at), at)
			teamAwards = awardTeamBadges(team, session, input.TargetDurationSeconds, now)
			return nil
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to commit session statistics: %w", err)
	}

	members := make([]*MemberUpdate, len(session.Turns))
	for i, turn := range session.Turns {
		update := &MemberUpdate{
			MemberID: turn.MemberID,
			Applied:  output.Committed,
		}
		if i < len(output.Members) {
			update.Member = output.Members[i]
		}
		if update.Member == nil {
			update.Applied = false
			log.WithField("member_id", turn.MemberID).Warn("member not found, statistics skipped")
		} else if output.Committed {
			update.AwardedBadges = memberAwards[turn.MemberID]
		}
		members[i] = update
	}

	team := &TeamUpdate{
		Team:    output.Team,
		Applied: output.Committed,
	}
	if output.Committed {
		team.AwardedBadges = teamAwards
	}

	log.WithFields(logrus.Fields{
		"members": len(members),
		"applied": output.Committed,
	}).Info("session statistics applied")

	return &ApplySessionOutput{
		Members: members,
		Team:    team,
	}, nil
}

func continues(policy streak.Policy, previous, current time.Time) bool {
	if policy == nil || previous.IsZero() {
		return false
	}
	return policy(previous, current)
}

// applyMemberRecurrence counts first, then derives averages from the totals
func applyMemberRecurrence(st *models.MemberStats, turn *models.Turn, consecutive bool, at time.Time) {
	st.TotalSessions++
	st.TotalSpeakingTime += turn.SpeakingTimeSeconds
	st.TotalScore += turn.PointsEarned
	st.Recompute()

	if t := turn.SpeakingTimeSeconds; t > 0 && (st.BestTime == 0 || t < st.BestTime) {
		st.BestTime = t
	}

	if turn.HasViolation {
		st.Violations++
	}

	st.CurrentStreak = nextStreak(st.CurrentStreak, consecutive)
	st.LongestStreak = max(st.LongestStreak, st.CurrentStreak)
	st.LastSessionAt = at
}

func applyTeamRecurrence(st *models.TeamStats, session *models.Session, consecutive bool, at time.Time) {
	st.TotalSessions++
	st.TotalDurationSeconds += session.TotalDurationSeconds
	st.TotalScore += session.TeamScore
	st.AverageDuration = st.TotalDurationSeconds / st.TotalSessions
	st.AverageScore = st.TotalScore / st.TotalSessions

	if d := session.TotalDurationSeconds; d > 0 && (st.BestDuration == 0 || d < st.BestDuration) {
		st.BestDuration = d
	}

	st.CurrentStreak = nextStreak(st.CurrentStreak, consecutive)
	st.LongestStreak = max(st.LongestStreak, st.CurrentStreak)
	st.LastSessionAt = at
}

func nextStreak(current int, consecutive bool) int {
	if consecutive {
		return current + 1
	}
	return 1
}
