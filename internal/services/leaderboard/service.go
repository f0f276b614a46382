package leaderboard

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/KirkDiggler/standup/internal/common/clock"
	"github.com/KirkDiggler/standup/internal/models"
	memberRepo "github.com/KirkDiggler/standup/internal/repositories/member"
	sessionRepo "github.com/KirkDiggler/standup/internal/repositories/session"
	teamRepo "github.com/KirkDiggler/standup/internal/repositories/team"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// service implements the Service interface
type service struct {
	sessionRepo sessionRepo.Repository
	teamRepo    teamRepo.Repository
	memberRepo  memberRepo.Repository
	clock       clock.Clock
	location    *time.Location
	log         logrus.FieldLogger
}

// New creates a new leaderboard service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.SessionRepo == nil {
		return nil, ErrNilSessionRepo
	}

	if cfg.TeamRepo == nil {
		return nil, ErrNilTeamRepo
	}

	if cfg.MemberRepo == nil {
		return nil, ErrNilMemberRepo
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	loc := cfg.Location
	if loc == nil {
		loc = time.UTC
	}

	logger := cfg.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	return &service{
		sessionRepo: cfg.SessionRepo,
		teamRepo:    cfg.TeamRepo,
		memberRepo:  cfg.MemberRepo,
		clock:       cfg.Clock,
		location:    loc,
		log:         logger.WithField("component", "leaderboard"),
	}, nil
}

func (s *service) getTeam(ctx context.Context, teamID string) (*models.Team, error) {
	team, err := s.teamRepo.GetTeam(ctx, &teamRepo.GetTeamInput{
		TeamID: teamID,
	})
	if err != nil {
		if errors.Is(err, teamRepo.ErrTeamNotFound) {
			return nil, ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}
	return team, nil
}

// GetTeamReport aggregates a team's completed sessions within a window
func (s *service) GetTeamReport(ctx context.Context, input *GetTeamReportInput) (*GetTeamReportOutput, error) {
	team, err := s.getTeam(ctx, input.TeamID)
	if err != nil {
		return nil, err
	}

	from, to := input.From, input.To
	if from.IsZero() {
		from, to = Period(input.Period, s.clock.Now(), s.location)
	}
	if to.IsZero() {
		to = s.clock.Now()
	}
	if to.Before(from) {
		return nil, ErrInvalidWindow
	}

	var (
		sessions []*models.Session
		members  []*models.Member
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		output, err := s.sessionRepo.ListSessions(gctx, &sessionRepo.ListSessionsInput{
			TeamID: team.ID,
			Status: models.SessionStatusCompleted,
			From:   from,
			To:     to,
		})
		if err != nil {
			return fmt.Errorf("failed to list sessions: %w", err)
		}
		sessions = output.Sessions
		return nil
	})
	g.Go(func() error {
		output, err := s.memberRepo.ListMembers(gctx, &memberRepo.ListMembersInput{
			TeamID:     team.ID,
			ActiveOnly: true,
		})
		if err != nil {
			return fmt.Errorf("failed to list members: %w", err)
		}
		members = output.Members
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	names := make(map[string]string, len(members))
	for _, member := range members {
		names[member.ID] = member.Name
	}

	r := buildReport(sessions, names, len(members), from, to, s.location)

	s.log.WithFields(logrus.Fields{
		"team_id":  team.ID,
		"sessions": r.totalSessions,
	}).Debug("team report built")

	return &GetTeamReportOutput{
		TeamID:            team.ID,
		From:              from,
		To:                to,
		TotalSessions:     r.totalSessions,
		AverageScore:      r.averageScore,
		AverageDuration:   r.averageDuration,
		TotalParticipants: r.totalParticipants,
		ParticipationRate: r.participationRate,
		TopPerformers:     r.topPerformers,
		Trends:            r.trends,
	}, nil
}

// GetMemberStandings ranks a team's active members by running total score
func (s *service) GetMemberStandings(ctx context.Context, input *GetMemberStandingsInput) (*GetMemberStandingsOutput, error) {
	team, err := s.getTeam(ctx, input.TeamID)
	if err != nil {
		return nil, err
	}

	output, err := s.memberRepo.ListMembers(ctx, &memberRepo.ListMembersInput{
		TeamID:     team.ID,
		ActiveOnly: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}

	return &GetMemberStandingsOutput{
		Standings: rankStandings(output.Members, input.Limit),
	}, nil
}
