package stats

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/KirkDiggler/standup/internal/common/clock/mocks"
	"github.com/KirkDiggler/standup/internal/models"
	"github.com/KirkDiggler/standup/internal/repositories/ledger"
	ledgerMocks "github.com/KirkDiggler/standup/internal/repositories/ledger/mocks"
	"github.com/KirkDiggler/standup/internal/streak"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type StatsServiceTestSuite struct {
	suite.Suite
	mockCtrl       *gomock.Controller
	mockLedgerRepo *ledgerMocks.MockRepository
	mockClock      *mocks.MockClock
	statsService   Service
	ctx            context.Context

	testTime    time.Time
	testSession *models.Session
	members     map[string]*models.Member
	team        *models.Team
	applied     map[string]bool
}

func (s *StatsServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockLedgerRepo = ledgerMocks.NewMockRepository(s.mockCtrl)
	s.mockClock = mocks.NewMockClock(s.mockCtrl)
	s.ctx = context.Background()

	s.testTime = time.Date(2025, 4, 19, 9, 15, 0, 0, time.UTC)
	s.mockClock.EXPECT().Now().Return(s.testTime).AnyTimes()

	s.testSession = &models.Session{
		ID:                   "test-session-id",
		TeamID:               "test-team-id",
		Status:               models.SessionStatusCompleted,
		ScoringMode:          models.ScoringModeTimeBased,
		TotalDurationSeconds: 270,
		TeamScore:            68,
		WinnerMemberID:       "m1",
		CompletedAt:          s.testTime,
		Turns: []*models.Turn{
			{MemberID: "m1", Order: 1, SpeakingTimeSeconds: 45, PointsEarned: 105, SpeedBonus: true, Finalized: true},
			{MemberID: "m2", Order: 2, SpeakingTimeSeconds: 95, PointsEarned: 60, Finalized: true},
			{MemberID: "m3", Order: 3, SpeakingTimeSeconds: 130, PointsEarned: 20, HasViolation: true, Finalized: true},
		},
	}

	s.members = map[string]*models.Member{
		"m1": {ID: "m1", TeamID: "test-team-id", IsActive: true},
		"m2": {ID: "m2", TeamID: "test-team-id", IsActive: true, Stats: models.MemberStats{
			TotalSessions: 2, TotalSpeakingTime: 140, AverageTime: 70, BestTime: 50,
			TotalScore: 180, AverageScore: 90, CurrentStreak: 6, LongestStreak: 6,
			LastSessionAt: s.testTime.AddDate(0, 0, -1),
		}},
		"m3": {ID: "m3", TeamID: "test-team-id", IsActive: true, Stats: models.MemberStats{
			TotalSessions: 1, TotalSpeakingTime: 30, AverageTime: 30, BestTime: 30,
			TotalScore: 100, AverageScore: 100, CurrentStreak: 3, LongestStreak: 5,
			LastSessionAt: s.testTime.AddDate(0, 0, -3),
		}},
	}
	s.team = &models.Team{ID: "test-team-id", Config: models.TeamConfig{TargetDurationSeconds: 300}}
	s.applied = map[string]bool{}

	svc, err := New(&Config{
		LedgerRepo: s.mockLedgerRepo,
		Clock:      s.mockClock,
	})
	s.Require().NoError(err)
	s.statsService = svc
}

func (s *StatsServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestStatsServiceTestSuite(t *testing.T) {
	suite.Run(t, new(StatsServiceTestSuite))
}

// expectUpdates routes commits to the in-memory fixtures, honouring the
// once-per-session guard the way the ledger does
func (s *StatsServiceTestSuite) expectUpdates() {
	s.mockLedgerRepo.EXPECT().
		CommitSession(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *ledger.CommitSessionInput) (*ledger.CommitSessionOutput, error) {
			output := &ledger.CommitSessionOutput{Team: s.team}
			for _, turn := range input.Session.Turns {
				output.Members = append(output.Members, s.members[turn.MemberID])
			}
			if s.applied[input.Session.ID] {
				return output, nil
			}

			for _, turn := range input.Session.Turns {
				if member, ok := s.members[turn.MemberID]; ok {
					if err := input.ApplyMember(member, turn); err != nil {
						return nil, err
					}
				}
			}
			if err := input.ApplyTeam(s.team); err != nil {
				return nil, err
			}

			s.applied[input.Session.ID] = true
			output.Committed = true
			return output, nil
		}).AnyTimes()
}

func (s *StatsServiceTestSuite) apply() *ApplySessionOutput {
	output, err := s.statsService.ApplySession(s.ctx, &ApplySessionInput{
		Session:               s.testSession,
		TargetDurationSeconds: 300,
		Consecutive:           streak.NextCalendarDay(time.UTC),
	})
	s.Require().NoError(err)
	return output
}

func (s *StatsServiceTestSuite) TestNewValidatesConfig() {
	_, err := New(nil)
	s.ErrorIs(err, ErrNilConfig)

	_, err = New(&Config{Clock: s.mockClock})
	s.ErrorIs(err, ErrNilLedgerRepo)

	_, err = New(&Config{LedgerRepo: s.mockLedgerRepo})
	s.ErrorIs(err, ErrNilClock)
}

func (s *StatsServiceTestSuite) TestRejectsSessionsThatAreNotCompleted() {
	s.testSession.Status = models.SessionStatusActive

	_, err := s.statsService.ApplySession(s.ctx, &ApplySessionInput{Session: s.testSession})
	s.ErrorIs(err, ErrSessionNotComplete)

	_, err = s.statsService.ApplySession(s.ctx, &ApplySessionInput{})
	s.ErrorIs(err, ErrNilSession)
}

func (s *StatsServiceTestSuite) TestFirstSessionForMember() {
	s.expectUpdates()

	output := s.apply()

	m1 := s.members["m1"].Stats
	s.Equal(1, m1.TotalSessions)
	s.Equal(45, m1.TotalSpeakingTime)
	s.Equal(45, m1.AverageTime)
	s.Equal(45, m1.BestTime)
	s.Equal(105, m1.TotalScore)
	s.Equal(1, m1.CurrentStreak)
	s.Equal(1, m1.LongestStreak)
	s.Equal(s.testTime, m1.LastSessionAt)

	s.Require().Len(output.Members, 3)
	s.True(output.Members[0].Applied)

	var names []string
	for _, b := range output.Members[0].AwardedBadges {
		names = append(names, b.Name)
		s.Equal(s.testTime, b.EarnedAt)
	}
	s.ElementsMatch([]string{models.BadgeSpeedDemon, models.BadgePerfectScore}, names)
}

func (s *StatsServiceTestSuite) TestConsecutiveSessionExtendsStreak() {
	s.expectUpdates()

	output := s.apply()

	m2 := s.members["m2"].Stats
	s.Equal(3, m2.TotalSessions)
	s.Equal(235, m2.TotalSpeakingTime)
	s.Equal(235/3, m2.AverageTime)
	s.Equal(50, m2.BestTime)
	s.Equal(240, m2.TotalScore)
	s.Equal(80, m2.AverageScore)
	s.Equal(7, m2.CurrentStreak)
	s.Equal(7, m2.LongestStreak)

	s.Require().Len(output.Members[1].AwardedBadges, 1)
	s.Equal(models.BadgeConsistencyKing, output.Members[1].AwardedBadges[0].Name)
}

func (s *StatsServiceTestSuite) TestBrokenStreakResetsButKeepsLongest() {
	s.expectUpdates()

	s.apply()

	m3 := s.members["m3"].Stats
	s.Equal(1, m3.CurrentStreak)
	s.Equal(5, m3.LongestStreak)
	s.Equal(30, m3.BestTime)
	s.Equal(1, m3.Violations)
}

func (s *StatsServiceTestSuite) TestTeamStatistics() {
	s.expectUpdates()

	output := s.apply()

	s.Require().NotNil(output.Team)
	s.True(output.Team.Applied)
	s.Equal(1, s.team.Stats.TotalSessions)
	s.Equal(270, s.team.Stats.AverageDuration)
	s.Equal(270, s.team.Stats.BestDuration)
	s.Equal(68, s.team.Stats.AverageScore)
	s.Equal(1, s.team.Stats.CurrentStreak)
	s.Require().Len(output.Team.AwardedBadges, 1)
	s.Equal(models.BadgeOnTarget, output.Team.AwardedBadges[0].Name)
}

func (s *StatsServiceTestSuite) TestApplyingTwiceIsIdempotent() {
	s.expectUpdates()

	s.apply()
	second := s.apply()

	s.Equal(1, s.members["m1"].Stats.TotalSessions)
	s.Len(s.members["m1"].Badges, 2)
	s.Equal(1, s.team.Stats.TotalSessions)
	for _, update := range second.Members {
		s.False(update.Applied)
		s.Empty(update.AwardedBadges)
	}
	s.False(second.Team.Applied)
}

func (s *StatsServiceTestSuite) TestBadgesAreNotDuplicatedAcrossSessions() {
	s.expectUpdates()

	s.apply()

	next := *s.testSession
	next.ID = "next-session-id"
	next.CompletedAt = s.testTime.AddDate(0, 0, 1)
	s.testSession = &next

	output := s.apply()

	s.Len(s.members["m1"].Badges, 2)
	s.Empty(output.Members[0].AwardedBadges)
	s.Equal(s.testTime, s.members["m1"].Badges[0].EarnedAt)
	s.Equal(2, s.members["m1"].Stats.CurrentStreak)
}

func (s *StatsServiceTestSuite) TestMissingMemberIsSkipped() {
	delete(s.members, "m3")
	s.expectUpdates()

	output := s.apply()

	s.Nil(output.Members[2].Member)
	s.False(output.Members[2].Applied)
	s.Equal("m3", output.Members[2].MemberID)
	s.Equal(1, s.team.Stats.TotalSessions)
}

func (s *StatsServiceTestSuite) TestCommitsTheCompletedSession() {
	s.mockLedgerRepo.EXPECT().
		CommitSession(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *ledger.CommitSessionInput) (*ledger.CommitSessionOutput, error) {
			s.Same(s.testSession, input.Session)
			return &ledger.CommitSessionOutput{Team: s.team}, nil
		})

	s.apply()
}

func (s *StatsServiceTestSuite) TestFailedCommitCountsNothing() {
	boom := errors.New("redis down")
	s.mockLedgerRepo.EXPECT().
		CommitSession(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *ledger.CommitSessionInput) (*ledger.CommitSessionOutput, error) {
			// The ledger discards whatever the apply functions produced
			s.Require().NoError(input.ApplyMember(&models.Member{ID: "m1"}, input.Session.Turns[0]))
			return nil, boom
		})

	output, err := s.statsService.ApplySession(s.ctx, &ApplySessionInput{Session: s.testSession})
	s.ErrorIs(err, boom)
	s.Nil(output)
	s.Equal(0, s.members["m1"].Stats.TotalSessions)
	s.Equal(0, s.team.Stats.TotalSessions)
}

func (s *StatsServiceTestSuite) TestTieredPerfectScore() {
	s.expectUpdates()
	s.testSession.ScoringMode = models.ScoringModeTiered
	s.testSession.Turns[0].PointsEarned = 10
	s.testSession.Turns[0].SpeakingTimeSeconds = 75

	output := s.apply()

	s.Require().Len(output.Members[0].AwardedBadges, 1)
	s.Equal(models.BadgePerfectScore, output.Members[0].AwardedBadges[0].Name)
}

func (s *StatsServiceTestSuite) TestAverageTimeMatchesTotalsAfterManyUpdates() {
	s.expectUpdates()
	durations := []int{45, 61, 90, 13, 200, 7, 120}
	total := 0

	for i, d := range durations {
		session := *s.testSession
		session.ID = "session-" + string(rune('a'+i))
		session.Turns = []*models.Turn{{MemberID: "m1", Order: 1, SpeakingTimeSeconds: d, PointsEarned: 60, Finalized: true}}
		s.testSession = &session
		s.apply()

		total += d
		s.Equal(total/(i+1), s.members["m1"].Stats.AverageTime)
	}
	s.Equal(7, s.members["m1"].Stats.BestTime)
}
