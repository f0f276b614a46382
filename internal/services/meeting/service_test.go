package meeting

import (
	"context"
	"errors"
	"testing"
	"time"

	clockMocks "github.com/KirkDiggler/standup/internal/common/clock/mocks"
	uuidMocks "github.com/KirkDiggler/standup/internal/common/uuid/mocks"
	"github.com/KirkDiggler/standup/internal/models"
	"github.com/KirkDiggler/standup/internal/notifier"
	notifierMocks "github.com/KirkDiggler/standup/internal/notifier/mocks"
	memberRepo "github.com/KirkDiggler/standup/internal/repositories/member"
	memberMocks "github.com/KirkDiggler/standup/internal/repositories/member/mocks"
	sessionRepo "github.com/KirkDiggler/standup/internal/repositories/session"
	sessionMocks "github.com/KirkDiggler/standup/internal/repositories/session/mocks"
	teamRepo "github.com/KirkDiggler/standup/internal/repositories/team"
	teamMocks "github.com/KirkDiggler/standup/internal/repositories/team/mocks"
	"github.com/KirkDiggler/standup/internal/services/stats"
	statsMocks "github.com/KirkDiggler/standup/internal/services/stats/mocks"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type MeetingServiceTestSuite struct {
	suite.Suite
	mockCtrl         *gomock.Controller
	mockSessionRepo  *sessionMocks.MockRepository
	mockTeamRepo     *teamMocks.MockRepository
	mockMemberRepo   *memberMocks.MockRepository
	mockStatsService *statsMocks.MockService
	mockNotifier     *notifierMocks.MockNotifier
	mockClock        *clockMocks.MockClock
	mockUUID         *uuidMocks.MockUUID
	meetingService   *service
	ctx              context.Context

	// Test data
	testTime      time.Time
	testTeamID    string
	testSessionID string

	// Reusable test fixtures
	expectedTeam    *models.Team
	expectedMembers []*models.Member
}

func (s *MeetingServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockSessionRepo = sessionMocks.NewMockRepository(s.mockCtrl)
	s.mockTeamRepo = teamMocks.NewMockRepository(s.mockCtrl)
	s.mockMemberRepo = memberMocks.NewMockRepository(s.mockCtrl)
	s.mockStatsService = statsMocks.NewMockService(s.mockCtrl)
	s.mockNotifier = notifierMocks.NewMockNotifier(s.mockCtrl)
	s.mockClock = clockMocks.NewMockClock(s.mockCtrl)
	s.mockUUID = uuidMocks.NewMockUUID(s.mockCtrl)

	s.ctx = context.Background()

	// Initialize test data
	s.testTime = time.Date(2025, 4, 19, 9, 0, 0, 0, time.UTC)
	s.testTeamID = "test-team-id"
	s.testSessionID = "test-session-id"

	s.expectedTeam = &models.Team{
		ID:   s.testTeamID,
		Name: "Platform",
		Config: models.TeamConfig{
			TargetDurationSeconds:  600,
			MaxSpeakingTimeSeconds: 120,
			ScoringMode:            models.ScoringModeTimeBased,
		},
	}
	s.expectedMembers = []*models.Member{
		{ID: "m1", TeamID: s.testTeamID, Name: "Ada", ListOrder: 1, IsActive: true},
		{ID: "m2", TeamID: s.testTeamID, Name: "Brian", ListOrder: 2, IsActive: true},
		{ID: "m3", TeamID: s.testTeamID, Name: "Chen", ListOrder: 3, IsActive: true},
	}

	s.mockClock.EXPECT().Now().Return(s.testTime).AnyTimes()
	s.mockUUID.EXPECT().NewUUID().Return(s.testSessionID).AnyTimes()
	s.mockNotifier.EXPECT().TimerUpdate(gomock.Any(), gomock.Any()).AnyTimes()

	svc, err := New(&Config{
		SessionRepo:   s.mockSessionRepo,
		TeamRepo:      s.mockTeamRepo,
		MemberRepo:    s.mockMemberRepo,
		StatsService:  s.mockStatsService,
		Notifier:      s.mockNotifier,
		Clock:         s.mockClock,
		UUIDGenerator: s.mockUUID,
	})
	s.Require().NoError(err)
	s.meetingService = svc
}

func (s *MeetingServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestMeetingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(MeetingServiceTestSuite))
}

func (s *MeetingServiceTestSuite) expectTeam() {
	s.mockTeamRepo.EXPECT().
		GetTeam(gomock.Any(), &teamRepo.GetTeamInput{TeamID: s.testTeamID}).
		Return(s.expectedTeam, nil).
		AnyTimes()
}

// createSession plans a session for the three active members
func (s *MeetingServiceTestSuite) createSession() *models.Session {
	s.expectTeam()
	s.mockSessionRepo.EXPECT().
		GetActiveSessionID(gomock.Any(), &sessionRepo.GetActiveSessionIDInput{TeamID: s.testTeamID}).
		Return("", nil)
	s.mockMemberRepo.EXPECT().
		ListMembers(gomock.Any(), &memberRepo.ListMembersInput{TeamID: s.testTeamID, ActiveOnly: true}).
		Return(&memberRepo.ListMembersOutput{Members: s.expectedMembers}, nil)
	s.mockSessionRepo.EXPECT().SaveSession(gomock.Any(), gomock.Any()).Return(nil)

	output, err := s.meetingService.CreateSession(s.ctx, &CreateSessionInput{TeamID: s.testTeamID})
	s.Require().NoError(err)
	return output.Session
}

// startSession creates a session and makes it active
func (s *MeetingServiceTestSuite) startSession() {
	s.createSession()

	s.mockSessionRepo.EXPECT().
		ClaimActive(gomock.Any(), &sessionRepo.ClaimActiveInput{TeamID: s.testTeamID, SessionID: s.testSessionID}).
		Return(&sessionRepo.ClaimActiveOutput{Claimed: true, ActiveSessionID: s.testSessionID}, nil)
	s.mockSessionRepo.EXPECT().SaveSession(gomock.Any(), gomock.Any()).Return(nil)

	_, err := s.meetingService.StartSession(s.ctx, &StartSessionInput{SessionID: s.testSessionID})
	s.Require().NoError(err)
}

func (s *MeetingServiceTestSuite) speak(seconds int) {
	for i := 0; i < seconds; i++ {
		_, err := s.meetingService.Tick(s.ctx, &TickInput{SessionID: s.testSessionID})
		s.Require().NoError(err)
	}
}

func (s *MeetingServiceTestSuite) expectCompletion(captured **stats.ApplySessionInput) {
	s.mockStatsService.EXPECT().
		ApplySession(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *stats.ApplySessionInput) (*stats.ApplySessionOutput, error) {
			if captured != nil {
				*captured = input
			}
			s.Equal(models.SessionStatusCompleted, input.Session.Status)
			return &stats.ApplySessionOutput{}, nil
		})
	s.mockSessionRepo.EXPECT().
		ReleaseActive(gomock.Any(), &sessionRepo.ReleaseActiveInput{TeamID: s.testTeamID, SessionID: s.testSessionID}).
		Return(nil)
	s.mockNotifier.EXPECT().SessionCompleted(gomock.Any(), gomock.Any())
}

func (s *MeetingServiceTestSuite) TestNewValidatesConfig() {
	_, err := New(nil)
	s.ErrorIs(err, ErrNilConfig)

	_, err = New(&Config{})
	s.ErrorIs(err, ErrNilSessionRepo)

	_, err = New(&Config{SessionRepo: s.mockSessionRepo, TeamRepo: s.mockTeamRepo, MemberRepo: s.mockMemberRepo})
	s.ErrorIs(err, ErrNilStatsService)

	_, err = New(&Config{
		SessionRepo:  s.mockSessionRepo,
		TeamRepo:     s.mockTeamRepo,
		MemberRepo:   s.mockMemberRepo,
		StatsService: s.mockStatsService,
		Clock:        s.mockClock,
	})
	s.ErrorIs(err, ErrNilUUIDGenerator)
}

func (s *MeetingServiceTestSuite) TestCreateSession_HappyPath() {
	session := s.createSession()

	s.Equal(s.testSessionID, session.ID)
	s.Equal(models.SessionStatusPlanned, session.Status)
	s.Equal("Standup 2025-04-19", session.Name)
	s.Equal(models.ScoringModeTimeBased, session.ScoringMode)
	s.Equal(120, session.MaxSpeakingTimeSeconds)
	s.Require().Len(session.Turns, 3)
	for i, turn := range session.Turns {
		s.Equal(i+1, turn.Order)
		s.Equal(s.expectedMembers[i].ID, turn.MemberID)
		s.Equal(s.expectedMembers[i].Name, turn.MemberName)
		s.Zero(turn.SpeakingTimeSeconds)
	}
}

func (s *MeetingServiceTestSuite) TestCreateSession_TeamNotFound() {
	s.mockTeamRepo.EXPECT().GetTeam(gomock.Any(), gomock.Any()).Return(nil, teamRepo.ErrTeamNotFound)

	_, err := s.meetingService.CreateSession(s.ctx, &CreateSessionInput{TeamID: "missing"})
	s.ErrorIs(err, ErrInvalidTeam)
}

func (s *MeetingServiceTestSuite) TestCreateSession_NoActiveMembers() {
	s.expectTeam()
	s.mockSessionRepo.EXPECT().GetActiveSessionID(gomock.Any(), gomock.Any()).Return("", nil)
	s.mockMemberRepo.EXPECT().ListMembers(gomock.Any(), gomock.Any()).Return(&memberRepo.ListMembersOutput{}, nil)

	_, err := s.meetingService.CreateSession(s.ctx, &CreateSessionInput{TeamID: s.testTeamID})
	s.ErrorIs(err, ErrInvalidTeam)
}

func (s *MeetingServiceTestSuite) TestCreateSession_AlreadyActive() {
	s.expectTeam()
	s.mockSessionRepo.EXPECT().GetActiveSessionID(gomock.Any(), gomock.Any()).Return("other-session", nil)

	_, err := s.meetingService.CreateSession(s.ctx, &CreateSessionInput{TeamID: s.testTeamID})
	s.ErrorIs(err, ErrSessionAlreadyActive)
}

func (s *MeetingServiceTestSuite) TestCreateSession_ExplicitRoster() {
	s.expectTeam()
	s.mockSessionRepo.EXPECT().GetActiveSessionID(gomock.Any(), gomock.Any()).Return("", nil)
	s.mockMemberRepo.EXPECT().
		GetMember(gomock.Any(), &memberRepo.GetMemberInput{MemberID: "m3"}).
		Return(s.expectedMembers[2], nil)
	s.mockMemberRepo.EXPECT().
		GetMember(gomock.Any(), &memberRepo.GetMemberInput{MemberID: "m1"}).
		Return(s.expectedMembers[0], nil)
	s.mockSessionRepo.EXPECT().SaveSession(gomock.Any(), gomock.Any()).Return(nil)

	output, err := s.meetingService.CreateSession(s.ctx, &CreateSessionInput{
		TeamID: s.testTeamID,
		Name:   "Retro standup",
		Participants: []models.RosterEntry{
			{MemberID: "m3"},
			{MemberID: "m1", Name: "Ada L."},
		},
	})
	s.Require().NoError(err)

	s.Equal("Retro standup", output.Session.Name)
	s.Require().Len(output.Session.Turns, 2)
	s.Equal("m3", output.Session.Turns[0].MemberID)
	s.Equal("Chen", output.Session.Turns[0].MemberName)
	s.Equal("Ada L.", output.Session.Turns[1].MemberName)
	s.Equal(2, output.Session.Turns[1].Order)
}

func (s *MeetingServiceTestSuite) TestCreateSession_ParticipantFromAnotherTeam() {
	s.expectTeam()
	s.mockSessionRepo.EXPECT().GetActiveSessionID(gomock.Any(), gomock.Any()).Return("", nil)
	s.mockMemberRepo.EXPECT().
		GetMember(gomock.Any(), gomock.Any()).
		Return(&models.Member{ID: "x1", TeamID: "other-team"}, nil)

	_, err := s.meetingService.CreateSession(s.ctx, &CreateSessionInput{
		TeamID:       s.testTeamID,
		Participants: []models.RosterEntry{{MemberID: "x1"}},
	})
	s.ErrorIs(err, ErrParticipantNotFound)
}

func (s *MeetingServiceTestSuite) TestCreateSession_DuplicateParticipant() {
	s.expectTeam()
	s.mockSessionRepo.EXPECT().GetActiveSessionID(gomock.Any(), gomock.Any()).Return("", nil)
	s.mockMemberRepo.EXPECT().GetMember(gomock.Any(), gomock.Any()).Return(s.expectedMembers[0], nil)

	_, err := s.meetingService.CreateSession(s.ctx, &CreateSessionInput{
		TeamID:       s.testTeamID,
		Participants: []models.RosterEntry{{MemberID: "m1"}, {MemberID: "m1"}},
	})
	s.ErrorIs(err, ErrInvalidOperation)
}

func (s *MeetingServiceTestSuite) TestStartSession_AnotherSessionHoldsTheClaim() {
	s.createSession()
	s.mockSessionRepo.EXPECT().
		ClaimActive(gomock.Any(), gomock.Any()).
		Return(&sessionRepo.ClaimActiveOutput{ActiveSessionID: "other-session"}, nil)

	_, err := s.meetingService.StartSession(s.ctx, &StartSessionInput{SessionID: s.testSessionID})
	s.ErrorIs(err, ErrSessionAlreadyActive)

	output, err := s.meetingService.GetSession(s.ctx, &GetSessionInput{SessionID: s.testSessionID})
	s.Require().NoError(err)
	s.Equal(models.SessionStatusPlanned, output.Session.Status)
}

func (s *MeetingServiceTestSuite) TestStartSession_SaveFailureReleasesClaim() {
	s.createSession()
	s.mockSessionRepo.EXPECT().
		ClaimActive(gomock.Any(), gomock.Any()).
		Return(&sessionRepo.ClaimActiveOutput{Claimed: true}, nil)
	s.mockSessionRepo.EXPECT().SaveSession(gomock.Any(), gomock.Any()).Return(errors.New("redis down"))
	s.mockSessionRepo.EXPECT().ReleaseActive(gomock.Any(), gomock.Any()).Return(nil)

	_, err := s.meetingService.StartSession(s.ctx, &StartSessionInput{SessionID: s.testSessionID})
	s.Error(err)
}

func (s *MeetingServiceTestSuite) TestStartSession_OnlyFromPlanned() {
	s.startSession()

	_, err := s.meetingService.StartSession(s.ctx, &StartSessionInput{SessionID: s.testSessionID})
	s.ErrorIs(err, ErrInvalidTransition)
}

func (s *MeetingServiceTestSuite) TestFullSessionScoresAndCounts() {
	s.startSession()

	turn, err := s.meetingService.StartTurn(s.ctx, &StartTurnInput{SessionID: s.testSessionID})
	s.Require().NoError(err)
	s.Equal("m1", turn.MemberID)

	s.mockSessionRepo.EXPECT().SaveSession(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	s.speak(45)
	advanced, err := s.meetingService.AdvanceTurn(s.ctx, &AdvanceTurnInput{SessionID: s.testSessionID})
	s.Require().NoError(err)
	s.Equal(45, advanced.FinalizedTurn.SpeakingTimeSeconds)
	s.Equal("m2", advanced.NextMemberID)
	s.False(advanced.Completed)

	s.speak(85)
	advanced, err = s.meetingService.AdvanceTurn(s.ctx, &AdvanceTurnInput{SessionID: s.testSessionID})
	s.Require().NoError(err)
	s.Equal("m3", advanced.NextMemberID)

	s.speak(130)

	var applied *stats.ApplySessionInput
	s.expectCompletion(&applied)

	advanced, err = s.meetingService.AdvanceTurn(s.ctx, &AdvanceTurnInput{SessionID: s.testSessionID})
	s.Require().NoError(err)
	s.True(advanced.Completed)
	s.Require().NotNil(advanced.Summary)
	s.Equal(68, advanced.Summary.TeamScore)
	s.Equal("m1", advanced.Summary.WinnerMemberID)
	s.Equal("Ada", advanced.Summary.WinnerName)
	s.Equal(1, advanced.Summary.Violations)
	s.Equal(20, advanced.FinalizedTurn.PointsEarned)

	s.Require().NotNil(applied)
	s.Equal(600, applied.TargetDurationSeconds)
	s.NotNil(applied.Consecutive)

	session := applied.Session
	s.Equal(models.SessionStatusCompleted, session.Status)
	s.Equal(260, session.TotalDurationSeconds)
	s.Equal(86, session.AverageSpeakingTime)
	var pts []int
	var violations []bool
	for _, t := range session.Turns {
		pts = append(pts, t.PointsEarned)
		violations = append(violations, t.HasViolation)
	}
	s.Equal([]int{105, 80, 20}, pts)
	s.Equal([]bool{false, false, true}, violations)
	s.True(session.Turns[0].SpeedBonus)

	// the session left the live registry and is read back from storage
	s.mockSessionRepo.EXPECT().GetSession(gomock.Any(), gomock.Any()).Return(session, nil)
	_, err = s.meetingService.Tick(s.ctx, &TickInput{SessionID: s.testSessionID})
	s.ErrorIs(err, ErrNoTurnRunning)
}

func (s *MeetingServiceTestSuite) TestTick_NoTurnRunning() {
	s.startSession()

	_, err := s.meetingService.Tick(s.ctx, &TickInput{SessionID: s.testSessionID})
	s.ErrorIs(err, ErrNoTurnRunning)
}

func (s *MeetingServiceTestSuite) TestTick_RejectedWhileSessionBusy() {
	s.startSession()
	_, err := s.meetingService.StartTurn(s.ctx, &StartTurnInput{SessionID: s.testSessionID})
	s.Require().NoError(err)

	ls := s.meetingService.live[s.testSessionID]
	ls.mu.Lock()
	_, err = s.meetingService.Tick(s.ctx, &TickInput{SessionID: s.testSessionID})
	ls.mu.Unlock()
	s.ErrorIs(err, ErrTickRejected)

	output, err := s.meetingService.Tick(s.ctx, &TickInput{SessionID: s.testSessionID})
	s.Require().NoError(err)
	s.Equal(1, output.ElapsedSeconds)
}

func (s *MeetingServiceTestSuite) TestTick_EmitsTimerUpdate() {
	s.startSession()
	_, err := s.meetingService.StartTurn(s.ctx, &StartTurnInput{SessionID: s.testSessionID})
	s.Require().NoError(err)

	ctrl := gomock.NewController(s.T())
	timers := notifierMocks.NewMockNotifier(ctrl)
	s.meetingService.notifier = timers
	timers.EXPECT().TimerUpdate(gomock.Any(), &notifier.TimerUpdateEvent{
		SessionID:      s.testSessionID,
		TeamID:         s.testTeamID,
		MemberID:       "m1",
		ElapsedSeconds: 1,
	})

	_, err = s.meetingService.Tick(s.ctx, &TickInput{SessionID: s.testSessionID})
	s.Require().NoError(err)
}

func (s *MeetingServiceTestSuite) TestTickActive() {
	s.startSession()
	s.Equal(0, s.meetingService.TickActive(s.ctx))

	_, err := s.meetingService.StartTurn(s.ctx, &StartTurnInput{SessionID: s.testSessionID})
	s.Require().NoError(err)

	s.Equal(1, s.meetingService.TickActive(s.ctx))
	s.Equal(1, s.meetingService.TickActive(s.ctx))

	output, err := s.meetingService.GetSession(s.ctx, &GetSessionInput{SessionID: s.testSessionID})
	s.Require().NoError(err)
	s.Equal("m1", output.CurrentMemberID)
	s.Equal(2, output.ElapsedSeconds)
}

func (s *MeetingServiceTestSuite) TestTickActive_SkipsBusySessions() {
	s.startSession()
	_, err := s.meetingService.StartTurn(s.ctx, &StartTurnInput{SessionID: s.testSessionID})
	s.Require().NoError(err)

	ls := s.meetingService.live[s.testSessionID]
	ls.mu.Lock()

	ticked := make(chan int)
	go func() {
		ticked <- s.meetingService.TickActive(s.ctx)
	}()

	// the lock holder may replace the session while the ticker looks on
	for i := 0; i < 100; i++ {
		ls.session = cloneSession(ls.session)
	}
	n := <-ticked
	ls.mu.Unlock()

	s.Equal(0, n)
	s.Equal(1, s.meetingService.TickActive(s.ctx))
}

func (s *MeetingServiceTestSuite) TestRunTickerStopsWithContext() {
	ctx, cancel := context.WithCancel(s.ctx)
	cancel()

	done := make(chan struct{})
	go func() {
		s.meetingService.RunTicker(ctx, time.Millisecond)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		s.Fail("ticker did not stop")
	}
}

func (s *MeetingServiceTestSuite) TestAdvanceTurn_SaveFailureKeepsTurnRunning() {
	s.startSession()
	_, err := s.meetingService.StartTurn(s.ctx, &StartTurnInput{SessionID: s.testSessionID})
	s.Require().NoError(err)
	s.speak(30)

	s.mockSessionRepo.EXPECT().SaveSession(gomock.Any(), gomock.Any()).Return(errors.New("redis down"))

	_, err = s.meetingService.AdvanceTurn(s.ctx, &AdvanceTurnInput{SessionID: s.testSessionID})
	s.Error(err)

	output, err := s.meetingService.GetSession(s.ctx, &GetSessionInput{SessionID: s.testSessionID})
	s.Require().NoError(err)
	s.Equal("m1", output.CurrentMemberID)
	s.Equal(30, output.ElapsedSeconds)
	s.False(output.Session.Turns[0].Finalized)
}

func (s *MeetingServiceTestSuite) TestAdvanceTurn_RequiresActiveSession() {
	s.createSession()

	_, err := s.meetingService.AdvanceTurn(s.ctx, &AdvanceTurnInput{SessionID: s.testSessionID})
	s.ErrorIs(err, ErrInvalidTransition)
}

func (s *MeetingServiceTestSuite) TestRecordTurn() {
	s.startSession()
	_, err := s.meetingService.StartTurn(s.ctx, &StartTurnInput{SessionID: s.testSessionID})
	s.Require().NoError(err)
	s.speak(3)

	s.mockSessionRepo.EXPECT().SaveSession(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	recorded, err := s.meetingService.RecordTurn(s.ctx, &RecordTurnInput{
		SessionID:           s.testSessionID,
		MemberID:            "m1",
		SpeakingTimeSeconds: 40,
		Notes:               "shipped the importer",
	})
	s.Require().NoError(err)
	s.Equal(40, recorded.Turn.SpeakingTimeSeconds)
	s.Equal("shipped the importer", recorded.Turn.Notes)

	output, err := s.meetingService.Tick(s.ctx, &TickInput{SessionID: s.testSessionID})
	s.Require().NoError(err)
	s.Equal(41, output.ElapsedSeconds)

	_, err = s.meetingService.AdvanceTurn(s.ctx, &AdvanceTurnInput{SessionID: s.testSessionID})
	s.Require().NoError(err)

	_, err = s.meetingService.RecordTurn(s.ctx, &RecordTurnInput{
		SessionID:           s.testSessionID,
		MemberID:            "m1",
		SpeakingTimeSeconds: 10,
	})
	s.ErrorIs(err, ErrInvalidOperation)

	_, err = s.meetingService.RecordTurn(s.ctx, &RecordTurnInput{
		SessionID: s.testSessionID,
		MemberID:  "not-a-participant",
	})
	s.ErrorIs(err, ErrParticipantNotFound)
}

func (s *MeetingServiceTestSuite) TestCompleteSession_StatsFailureIsRetryable() {
	s.startSession()
	_, err := s.meetingService.StartTurn(s.ctx, &StartTurnInput{SessionID: s.testSessionID})
	s.Require().NoError(err)
	s.speak(20)

	s.mockStatsService.EXPECT().ApplySession(gomock.Any(), gomock.Any()).Return(nil, errors.New("conflict"))

	_, err = s.meetingService.CompleteSession(s.ctx, &CompleteSessionInput{SessionID: s.testSessionID})
	s.Error(err)

	output, err := s.meetingService.GetSession(s.ctx, &GetSessionInput{SessionID: s.testSessionID})
	s.Require().NoError(err)
	s.Equal(models.SessionStatusActive, output.Session.Status)
	s.Equal("m1", output.CurrentMemberID)
	s.Zero(output.Session.Turns[0].PointsEarned)

	s.expectCompletion(nil)

	completed, err := s.meetingService.CompleteSession(s.ctx, &CompleteSessionInput{SessionID: s.testSessionID})
	s.Require().NoError(err)
	s.Equal(105, completed.Session.Turns[0].PointsEarned)
	s.Equal(20, completed.Session.TotalDurationSeconds)
}

func (s *MeetingServiceTestSuite) TestCompleteSession_FailedCommitLeavesSessionCancellable() {
	s.startSession()
	_, err := s.meetingService.StartTurn(s.ctx, &StartTurnInput{SessionID: s.testSessionID})
	s.Require().NoError(err)
	s.speak(20)

	// Only the cancellation may reach storage: the completed session is
	// written by the statistics commit alone
	s.mockStatsService.EXPECT().ApplySession(gomock.Any(), gomock.Any()).Return(nil, errors.New("unreadable member"))
	s.mockSessionRepo.EXPECT().
		SaveSession(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *sessionRepo.SaveSessionInput) error {
			s.Equal(models.SessionStatusCancelled, input.Session.Status)
			return nil
		})
	s.mockSessionRepo.EXPECT().ReleaseActive(gomock.Any(), gomock.Any()).Return(nil)
	s.mockNotifier.EXPECT().SessionCancelled(gomock.Any(), gomock.Any())

	_, err = s.meetingService.CompleteSession(s.ctx, &CompleteSessionInput{SessionID: s.testSessionID})
	s.Require().Error(err)

	output, err := s.meetingService.CancelSession(s.ctx, &CancelSessionInput{SessionID: s.testSessionID})
	s.Require().NoError(err)
	s.Equal(models.SessionStatusCancelled, output.Session.Status)
	s.Zero(output.Session.TeamScore)
}

func (s *MeetingServiceTestSuite) TestCompleteSession_FromPlannedNeedsFinalTurns() {
	s.createSession()

	_, err := s.meetingService.CompleteSession(s.ctx, &CompleteSessionInput{SessionID: s.testSessionID})
	s.ErrorIs(err, ErrInvalidTransition)

	var applied *stats.ApplySessionInput
	s.expectCompletion(&applied)

	completed, err := s.meetingService.CompleteSession(s.ctx, &CompleteSessionInput{
		SessionID: s.testSessionID,
		FinalTurns: []*FinalTurn{
			{MemberID: "m1", SpeakingTimeSeconds: 50},
			{MemberID: "m2", SpeakingTimeSeconds: 70},
			{MemberID: "m3", SpeakingTimeSeconds: 100},
		},
		TotalDurationSeconds: 400,
	})
	s.Require().NoError(err)
	s.Equal(400, completed.Session.TotalDurationSeconds)
	s.Equal("m1", completed.Summary.WinnerMemberID)
	s.Equal(applied.Session.ID, completed.Session.ID)
}

func (s *MeetingServiceTestSuite) TestTerminalSessionsRejectTransitions() {
	s.startSession()
	s.expectCompletion(nil)

	_, err := s.meetingService.CompleteSession(s.ctx, &CompleteSessionInput{SessionID: s.testSessionID})
	s.Require().NoError(err)

	completed := &models.Session{ID: s.testSessionID, TeamID: s.testTeamID, Status: models.SessionStatusCompleted}
	s.mockSessionRepo.EXPECT().GetSession(gomock.Any(), gomock.Any()).Return(completed, nil).AnyTimes()

	_, err = s.meetingService.CompleteSession(s.ctx, &CompleteSessionInput{SessionID: s.testSessionID})
	s.ErrorIs(err, ErrInvalidTransition)

	_, err = s.meetingService.CancelSession(s.ctx, &CancelSessionInput{SessionID: s.testSessionID})
	s.ErrorIs(err, ErrInvalidTransition)

	_, err = s.meetingService.StartSession(s.ctx, &StartSessionInput{SessionID: s.testSessionID})
	s.ErrorIs(err, ErrInvalidTransition)

	err = s.meetingService.DeleteSession(s.ctx, &DeleteSessionInput{SessionID: s.testSessionID})
	s.ErrorIs(err, ErrInvalidOperation)
}

func (s *MeetingServiceTestSuite) TestCancelSession() {
	s.startSession()
	s.mockSessionRepo.EXPECT().
		SaveSession(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *sessionRepo.SaveSessionInput) error {
			s.Equal(models.SessionStatusCancelled, input.Session.Status)
			return nil
		})
	s.mockSessionRepo.EXPECT().ReleaseActive(gomock.Any(), gomock.Any()).Return(nil)
	s.mockNotifier.EXPECT().SessionCancelled(gomock.Any(), &notifier.SessionCancelledEvent{
		SessionID: s.testSessionID,
		TeamID:    s.testTeamID,
	})

	output, err := s.meetingService.CancelSession(s.ctx, &CancelSessionInput{SessionID: s.testSessionID})
	s.Require().NoError(err)
	s.Equal(models.SessionStatusCancelled, output.Session.Status)
	s.Equal(s.testTime, output.Session.EndTime)
	s.NotContains(s.meetingService.live, s.testSessionID)
}

func (s *MeetingServiceTestSuite) TestGetActiveSession_NoClaim() {
	s.mockSessionRepo.EXPECT().
		GetActiveSessionID(gomock.Any(), &sessionRepo.GetActiveSessionIDInput{TeamID: s.testTeamID}).
		Return("", nil)

	_, err := s.meetingService.GetActiveSession(s.ctx, &GetActiveSessionInput{TeamID: s.testTeamID})
	s.ErrorIs(err, ErrSessionNotFound)
}

func (s *MeetingServiceTestSuite) TestGetActiveSession_LoadsTheClaimedSession() {
	stored := &models.Session{
		ID:     s.testSessionID,
		TeamID: s.testTeamID,
		Status: models.SessionStatusActive,
		Turns:  []*models.Turn{{MemberID: "m1", MemberName: "Ada", Order: 1}},
	}
	s.mockSessionRepo.EXPECT().
		GetActiveSessionID(gomock.Any(), gomock.Any()).
		Return(s.testSessionID, nil)
	s.mockSessionRepo.EXPECT().
		GetSession(gomock.Any(), &sessionRepo.GetSessionInput{SessionID: s.testSessionID}).
		Return(stored, nil)

	output, err := s.meetingService.GetActiveSession(s.ctx, &GetActiveSessionInput{TeamID: s.testTeamID})
	s.Require().NoError(err)
	s.Equal(s.testSessionID, output.Session.ID)
	s.Empty(output.CurrentMemberID)
	s.Contains(s.meetingService.live, s.testSessionID)
}

func (s *MeetingServiceTestSuite) TestGetActiveSession_ReleasesClaimOfEndedSession() {
	stored := &models.Session{ID: s.testSessionID, TeamID: s.testTeamID, Status: models.SessionStatusCompleted}
	s.mockSessionRepo.EXPECT().
		GetActiveSessionID(gomock.Any(), gomock.Any()).
		Return(s.testSessionID, nil)
	s.mockSessionRepo.EXPECT().GetSession(gomock.Any(), gomock.Any()).Return(stored, nil)
	s.mockSessionRepo.EXPECT().
		ReleaseActive(gomock.Any(), &sessionRepo.ReleaseActiveInput{TeamID: s.testTeamID, SessionID: s.testSessionID}).
		Return(nil)

	_, err := s.meetingService.GetActiveSession(s.ctx, &GetActiveSessionInput{TeamID: s.testTeamID})
	s.ErrorIs(err, ErrSessionNotFound)
}

func (s *MeetingServiceTestSuite) TestDeleteSession() {
	s.startSession()

	err := s.meetingService.DeleteSession(s.ctx, &DeleteSessionInput{SessionID: s.testSessionID})
	s.ErrorIs(err, ErrInvalidOperation)
}

func (s *MeetingServiceTestSuite) TestDeletePlannedSession() {
	s.createSession()
	s.mockSessionRepo.EXPECT().
		DeleteSession(gomock.Any(), &sessionRepo.DeleteSessionInput{SessionID: s.testSessionID}).
		Return(nil)

	err := s.meetingService.DeleteSession(s.ctx, &DeleteSessionInput{SessionID: s.testSessionID})
	s.Require().NoError(err)

	s.mockSessionRepo.EXPECT().GetSession(gomock.Any(), gomock.Any()).Return(nil, sessionRepo.ErrSessionNotFound)
	_, err = s.meetingService.GetSession(s.ctx, &GetSessionInput{SessionID: s.testSessionID})
	s.ErrorIs(err, ErrSessionNotFound)
}

func (s *MeetingServiceTestSuite) TestUpdateSessionNotesOnCompletedSession() {
	completed := &models.Session{ID: "old-session", TeamID: s.testTeamID, Status: models.SessionStatusCompleted, TeamScore: 80}
	s.mockSessionRepo.EXPECT().GetSession(gomock.Any(), &sessionRepo.GetSessionInput{SessionID: "old-session"}).Return(completed, nil)
	s.mockSessionRepo.EXPECT().SaveSession(gomock.Any(), gomock.Any()).Return(nil)

	output, err := s.meetingService.UpdateSessionNotes(s.ctx, &UpdateSessionNotesInput{
		SessionID: "old-session",
		Notes:     "Brian joined late",
	})
	s.Require().NoError(err)
	s.Equal("Brian joined late", output.Session.Notes)
	s.Equal(80, output.Session.TeamScore)
	s.Empty(s.meetingService.live)
}
