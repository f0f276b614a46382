package meeting

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/KirkDiggler/standup/internal/common/clock"
	"github.com/KirkDiggler/standup/internal/common/uuid"
	"github.com/KirkDiggler/standup/internal/models"
	"github.com/KirkDiggler/standup/internal/notifier"
	memberRepo "github.com/KirkDiggler/standup/internal/repositories/member"
	sessionRepo "github.com/KirkDiggler/standup/internal/repositories/session"
	teamRepo "github.com/KirkDiggler/standup/internal/repositories/team"
	"github.com/KirkDiggler/standup/internal/scoring"
	"github.com/KirkDiggler/standup/internal/services/stats"
	"github.com/KirkDiggler/standup/internal/streak"
	"github.com/sirupsen/logrus"
)

// liveSession is the in-memory owner of one session. mu serializes every
// operation on the session; ticks only try it.
type liveSession struct {
	mu      sync.Mutex
	session *models.Session
	tracker *Tracker

	// dropped is set once the entry left the registry
	dropped bool
}

// service implements the Service interface
type service struct {
	sessionRepo  sessionRepo.Repository
	teamRepo     teamRepo.Repository
	memberRepo   memberRepo.Repository
	statsService stats.Service
	notifier     notifier.Notifier
	clock        clock.Clock
	uuid         uuid.UUID
	streakPolicy streak.Policy
	log          logrus.FieldLogger

	mu   sync.Mutex
	live map[string]*liveSession
}

// New creates a new meeting service
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

	if cfg.StatsService == nil {
		return nil, ErrNilStatsService
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	n := cfg.Notifier
	if n == nil {
		n = notifier.Nop{}
	}

	policy := cfg.StreakPolicy
	if policy == nil {
		policy = streak.NextCalendarDay(time.UTC)
	}

	logger := cfg.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	return &service{
		sessionRepo:  cfg.SessionRepo,
		teamRepo:     cfg.TeamRepo,
		memberRepo:   cfg.MemberRepo,
		statsService: cfg.StatsService,
		notifier:     n,
		clock:        cfg.Clock,
		uuid:         cfg.UUIDGenerator,
		streakPolicy: policy,
		log:          logger.WithField("component", "meeting"),
		live:         make(map[string]*liveSession),
	}, nil
}

// acquire returns the registered entry for a session, loading it on first use.
// Terminal sessions are never registered.
func (s *service) acquire(ctx context.Context, sessionID string) (*liveSession, error) {
	s.mu.Lock()
	ls, ok := s.live[sessionID]
	s.mu.Unlock()
	if ok {
		return ls, nil
	}

	session, err := s.sessionRepo.GetSession(ctx, &sessionRepo.GetSessionInput{
		SessionID: sessionID,
	})
	if err != nil {
		if errors.Is(err, sessionRepo.ErrSessionNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	ls = &liveSession{
		session: session,
		tracker: NewTracker(session),
	}
	if session.Status.IsTerminal() {
		return ls, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if existing, ok := s.live[sessionID]; ok {
		return existing, nil
	}
	s.live[sessionID] = ls
	return ls, nil
}

// lock acquires a session and takes its lock. The caller must unlock.
func (s *service) lock(ctx context.Context, sessionID string) (*liveSession, error) {
	for {
		ls, err := s.acquire(ctx, sessionID)
		if err != nil {
			return nil, err
		}

		ls.mu.Lock()
		if !ls.dropped {
			return ls, nil
		}
		ls.mu.Unlock()
	}
}

func (s *service) register(ls *liveSession) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.live[ls.session.ID] = ls
}

// drop removes an entry from the registry; ls.mu must be held
func (s *service) drop(ls *liveSession) {
	ls.dropped = true

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.live[ls.session.ID] == ls {
		delete(s.live, ls.session.ID)
	}
}

func (s *service) save(ctx context.Context, session *models.Session) error {
	if err := s.sessionRepo.SaveSession(ctx, &sessionRepo.SaveSessionInput{
		Session: session,
	}); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

func (s *service) releaseActive(ctx context.Context, session *models.Session) {
	if err := s.sessionRepo.ReleaseActive(ctx, &sessionRepo.ReleaseActiveInput{
		TeamID:    session.TeamID,
		SessionID: session.ID,
	}); err != nil {
		s.sessionLog(session).WithError(err).Warn("failed to release active session claim")
	}
}

func (s *service) sessionLog(session *models.Session) logrus.FieldLogger {
	return s.log.WithFields(logrus.Fields{
		"session_id": session.ID,
		"team_id":    session.TeamID,
	})
}

// CreateSession plans a session for the given roster or the team's active members
func (s *service) CreateSession(ctx context.Context, input *CreateSessionInput) (*CreateSessionOutput, error) {
	if input == nil || input.TeamID == "" {
		return nil, ErrInvalidTeam
	}

	team, err := s.teamRepo.GetTeam(ctx, &teamRepo.GetTeamInput{
		TeamID: input.TeamID,
	})
	if err != nil {
		if errors.Is(err, teamRepo.ErrTeamNotFound) {
			return nil, ErrInvalidTeam
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}

	activeID, err := s.sessionRepo.GetActiveSessionID(ctx, &sessionRepo.GetActiveSessionIDInput{
		TeamID: team.ID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to check active session: %w", err)
	}
	if activeID != "" {
		return nil, ErrSessionAlreadyActive
	}

	roster, err := s.resolveRoster(ctx, team.ID, input.Participants)
	if err != nil {
		return nil, err
	}

	cfg := team.Config.WithDefaults()
	now := s.clock.Now()

	name := input.Name
	if name == "" {
		name = fmt.Sprintf("Standup %s", now.Format("2006-01-02"))
	}

	turns := make([]*models.Turn, len(roster))
	for i, entry := range roster {
		turns[i] = &models.Turn{
			MemberID:   entry.MemberID,
			MemberName: entry.Name,
			Order:      i + 1,
		}
	}

	session := &models.Session{
		ID:                     s.uuid.NewUUID(),
		TeamID:                 team.ID,
		Name:                   name,
		Status:                 models.SessionStatusPlanned,
		ScoringMode:            cfg.ScoringMode,
		MaxSpeakingTimeSeconds: cfg.MaxSpeakingTimeSeconds,
		Turns:                  turns,
		CreatedAt:              now,
		UpdatedAt:              now,
	}

	if err := s.save(ctx, session); err != nil {
		return nil, err
	}

	s.register(&liveSession{
		session: session,
		tracker: NewTracker(session),
	})

	s.sessionLog(session).WithField("participants", len(turns)).Info("session created")

	return &CreateSessionOutput{
		Session: cloneSession(session),
	}, nil
}

// resolveRoster normalizes the participants of a new session
func (s *service) resolveRoster(ctx context.Context, teamID string, participants []models.RosterEntry) ([]models.RosterEntry, error) {
	if len(participants) == 0 {
		output, err := s.memberRepo.ListMembers(ctx, &memberRepo.ListMembersInput{
			TeamID:     teamID,
			ActiveOnly: true,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to list members: %w", err)
		}
		if len(output.Members) == 0 {
			return nil, ErrInvalidTeam
		}

		roster := make([]models.RosterEntry, len(output.Members))
		for i, member := range output.Members {
			roster[i] = member.ToRosterEntry()
		}
		return roster, nil
	}

	seen := make(map[string]bool, len(participants))
	roster := make([]models.RosterEntry, 0, len(participants))
	for _, entry := range participants {
		if entry.MemberID == "" {
			return nil, ErrParticipantNotFound
		}
		if seen[entry.MemberID] {
			return nil, ErrInvalidOperation
		}
		seen[entry.MemberID] = true

		member, err := s.memberRepo.GetMember(ctx, &memberRepo.GetMemberInput{
			MemberID: entry.MemberID,
		})
		if err != nil {
			if errors.Is(err, memberRepo.ErrMemberNotFound) {
				return nil, ErrParticipantNotFound
			}
			return nil, fmt.Errorf("failed to get member: %w", err)
		}
		if member.TeamID != teamID {
			return nil, ErrParticipantNotFound
		}

		if entry.Name == "" {
			entry.Name = member.Name
		}
		if entry.Avatar == "" {
			entry.Avatar = member.Avatar
		}
		if entry.Title == "" {
			entry.Title = member.Title
		}
		roster = append(roster, entry)
	}
	return roster, nil
}

// GetSession returns a session with the state of its running turn
func (s *service) GetSession(ctx context.Context, input *GetSessionInput) (*GetSessionOutput, error) {
	ls, err := s.lock(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}
	defer ls.mu.Unlock()

	speaker, _ := ls.tracker.CurrentSpeaker()
	return &GetSessionOutput{
		Session:         cloneSession(ls.session),
		CurrentMemberID: speaker,
		ElapsedSeconds:  ls.tracker.Elapsed(),
	}, nil
}

// GetActiveSession resolves the team's active claim, which outlives a
// restart. A claim left behind by a session that already ended is released.
func (s *service) GetActiveSession(ctx context.Context, input *GetActiveSessionInput) (*GetActiveSessionOutput, error) {
	if input == nil || input.TeamID == "" {
		return nil, ErrInvalidTeam
	}

	activeID, err := s.sessionRepo.GetActiveSessionID(ctx, &sessionRepo.GetActiveSessionIDInput{
		TeamID: input.TeamID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to check active session: %w", err)
	}
	if activeID == "" {
		return nil, ErrSessionNotFound
	}

	ls, err := s.lock(ctx, activeID)
	if err != nil {
		return nil, err
	}
	defer ls.mu.Unlock()

	if ls.session.Status.IsTerminal() {
		s.releaseActive(ctx, ls.session)
		return nil, ErrSessionNotFound
	}

	speaker, _ := ls.tracker.CurrentSpeaker()
	return &GetActiveSessionOutput{
		Session:         cloneSession(ls.session),
		CurrentMemberID: speaker,
		ElapsedSeconds:  ls.tracker.Elapsed(),
	}, nil
}

// StartSession moves a planned session to active
func (s *service) StartSession(ctx context.Context, input *StartSessionInput) (*StartSessionOutput, error) {
	ls, err := s.lock(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}
	defer ls.mu.Unlock()

	if ls.session.Status != models.SessionStatusPlanned {
		return nil, ErrInvalidTransition
	}

	claim, err := s.sessionRepo.ClaimActive(ctx, &sessionRepo.ClaimActiveInput{
		TeamID:    ls.session.TeamID,
		SessionID: ls.session.ID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to claim active session: %w", err)
	}
	if !claim.Claimed {
		return nil, ErrSessionAlreadyActive
	}

	now := s.clock.Now()
	next := cloneSession(ls.session)
	next.Status = models.SessionStatusActive
	next.StartTime = now
	next.UpdatedAt = now

	if err := s.save(ctx, next); err != nil {
		s.releaseActive(ctx, next)
		return nil, err
	}

	ls.session = next
	ls.tracker = NewTracker(next)

	s.sessionLog(next).Info("session started")

	return &StartSessionOutput{
		Session: cloneSession(next),
	}, nil
}

// StartTurn begins timing the current speaker
func (s *service) StartTurn(ctx context.Context, input *StartTurnInput) (*StartTurnOutput, error) {
	ls, err := s.lock(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}
	defer ls.mu.Unlock()

	memberID, err := ls.tracker.Start()
	if err != nil {
		return nil, err
	}

	s.sessionLog(ls.session).WithField("member_id", memberID).Debug("turn started")

	return &StartTurnOutput{
		MemberID: memberID,
	}, nil
}

// Tick adds one second to the running turn. A tick that arrives while the
// session is busy is rejected rather than queued.
func (s *service) Tick(ctx context.Context, input *TickInput) (*TickOutput, error) {
	ls, err := s.acquire(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	if !ls.mu.TryLock() {
		return nil, ErrTickRejected
	}
	defer ls.mu.Unlock()

	return s.tickLocked(ctx, ls)
}

func (s *service) tickLocked(ctx context.Context, ls *liveSession) (*TickOutput, error) {
	if ls.dropped {
		return nil, ErrNoTurnRunning
	}

	result, err := ls.tracker.Tick()
	if err != nil {
		return nil, err
	}

	s.notifier.TimerUpdate(ctx, &notifier.TimerUpdateEvent{
		SessionID:      ls.session.ID,
		TeamID:         ls.session.TeamID,
		MemberID:       result.MemberID,
		ElapsedSeconds: result.ElapsedSeconds,
		OverLimit:      result.OverLimit,
	})

	return &TickOutput{
		MemberID:       result.MemberID,
		ElapsedSeconds: result.ElapsedSeconds,
		OverLimit:      result.OverLimit,
	}, nil
}

// TickActive ticks every running turn once
func (s *service) TickActive(ctx context.Context) int {
	s.mu.Lock()
	sessions := make(map[string]*liveSession, len(s.live))
	for id, ls := range s.live {
		sessions[id] = ls
	}
	s.mu.Unlock()

	ticked := 0
	for id, ls := range sessions {
		if !ls.mu.TryLock() {
			// ls.session belongs to whoever holds the lock
			s.log.WithField("session_id", id).Debug("session busy, tick skipped")
			continue
		}

		if ls.tracker.Running() {
			if _, err := s.tickLocked(ctx, ls); err == nil {
				ticked++
			}
		}
		ls.mu.Unlock()
	}
	return ticked
}

// RunTicker calls TickActive once per interval until ctx is done
func (s *service) RunTicker(ctx context.Context, interval time.Duration) {
	clock.Every(ctx, interval, func(time.Time) {
		s.TickActive(ctx)
	})
}

// AdvanceTurn ends the running turn. After the last turn the session is completed.
func (s *service) AdvanceTurn(ctx context.Context, input *AdvanceTurnInput) (*AdvanceTurnOutput, error) {
	ls, err := s.lock(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}
	defer ls.mu.Unlock()

	if ls.session.Status != models.SessionStatusActive {
		return nil, ErrInvalidTransition
	}

	checkpoint := ls.tracker.checkpoint()
	result, err := ls.tracker.Advance()
	if err != nil && !errors.Is(err, ErrSessionComplete) {
		return nil, err
	}

	if errors.Is(err, ErrSessionComplete) {
		completed, cerr := s.complete(ctx, ls, &CompleteSessionInput{SessionID: input.SessionID})
		if cerr != nil {
			ls.tracker.restore(checkpoint)
			return nil, cerr
		}

		output := &AdvanceTurnOutput{
			Completed: true,
			Summary:   completed.Summary,
		}
		if result != nil {
			output.FinalizedTurn = completed.Session.TurnFor(result.Finalized.MemberID)
		}
		return output, nil
	}

	ls.session.UpdatedAt = s.clock.Now()
	if err := s.save(ctx, ls.session); err != nil {
		ls.tracker.restore(checkpoint)
		return nil, err
	}

	finalized := *result.Finalized
	s.sessionLog(ls.session).WithFields(logrus.Fields{
		"member_id":     finalized.MemberID,
		"speaking_time": finalized.SpeakingTimeSeconds,
		"next":          result.NextMemberID,
	}).Debug("turn advanced")

	return &AdvanceTurnOutput{
		FinalizedTurn: &finalized,
		NextMemberID:  result.NextMemberID,
	}, nil
}

// RecordTurn overwrites the in-progress values of a participant's turn
func (s *service) RecordTurn(ctx context.Context, input *RecordTurnInput) (*RecordTurnOutput, error) {
	ls, err := s.lock(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}
	defer ls.mu.Unlock()

	if ls.session.Status.IsTerminal() {
		return nil, ErrInvalidTransition
	}

	if input.SpeakingTimeSeconds < 0 {
		return nil, scoring.ErrNegativeDuration
	}

	turn := ls.session.TurnFor(input.MemberID)
	if turn == nil {
		return nil, ErrParticipantNotFound
	}
	if turn.Finalized {
		return nil, ErrInvalidOperation
	}

	previous := *turn
	turn.SpeakingTimeSeconds = input.SpeakingTimeSeconds
	if input.Points != nil {
		turn.PointsEarned = *input.Points
		turn.Scored = true
	}
	if input.Notes != "" {
		turn.Notes = input.Notes
	}

	ls.session.UpdatedAt = s.clock.Now()
	if err := s.save(ctx, ls.session); err != nil {
		*turn = previous
		return nil, err
	}

	ls.tracker.Sync(input.MemberID, input.SpeakingTimeSeconds)

	recorded := *turn
	return &RecordTurnOutput{
		Turn: &recorded,
	}, nil
}

// CompleteSession scores the session and counts it in the statistics
func (s *service) CompleteSession(ctx context.Context, input *CompleteSessionInput) (*CompleteSessionOutput, error) {
	ls, err := s.lock(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}
	defer ls.mu.Unlock()

	return s.complete(ctx, ls, input)
}

// CancelSession abandons a session without touching statistics
func (s *service) CancelSession(ctx context.Context, input *CancelSessionInput) (*CancelSessionOutput, error) {
	ls, err := s.lock(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}
	defer ls.mu.Unlock()

	if !ls.session.Status.CanTransitionTo(models.SessionStatusCancelled) {
		return nil, ErrInvalidTransition
	}

	wasActive := ls.session.Status == models.SessionStatusActive
	now := s.clock.Now()

	next := cloneSession(ls.session)
	next.Status = models.SessionStatusCancelled
	next.UpdatedAt = now
	if next.EndTime.IsZero() {
		next.EndTime = now
	}

	if err := s.save(ctx, next); err != nil {
		return nil, err
	}

	if wasActive {
		s.releaseActive(ctx, next)
	}

	ls.session = next
	s.drop(ls)

	s.notifier.SessionCancelled(ctx, &notifier.SessionCancelledEvent{
		SessionID: next.ID,
		TeamID:    next.TeamID,
	})

	s.sessionLog(next).Info("session cancelled")

	return &CancelSessionOutput{
		Session: cloneSession(next),
	}, nil
}

// DeleteSession removes a planned or cancelled session
func (s *service) DeleteSession(ctx context.Context, input *DeleteSessionInput) error {
	ls, err := s.lock(ctx, input.SessionID)
	if err != nil {
		return err
	}
	defer ls.mu.Unlock()

	if !ls.session.Status.IsDeletable() {
		return ErrInvalidOperation
	}

	if err := s.sessionRepo.DeleteSession(ctx, &sessionRepo.DeleteSessionInput{
		SessionID: ls.session.ID,
	}); err != nil {
		if errors.Is(err, sessionRepo.ErrSessionNotFound) {
			return ErrSessionNotFound
		}
		return fmt.Errorf("failed to delete session: %w", err)
	}

	s.drop(ls)

	s.sessionLog(ls.session).Info("session deleted")
	return nil
}

// UpdateSessionNotes replaces the free-text notes of any session
func (s *service) UpdateSessionNotes(ctx context.Context, input *UpdateSessionNotesInput) (*UpdateSessionNotesOutput, error) {
	ls, err := s.lock(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}
	defer ls.mu.Unlock()

	now := s.clock.Now()
	next := cloneSession(ls.session)
	next.Notes = input.Notes
	next.UpdatedAt = now

	if err := s.save(ctx, next); err != nil {
		return nil, err
	}

	ls.session.Notes = input.Notes
	ls.session.UpdatedAt = now

	return &UpdateSessionNotesOutput{
		Session: next,
	}, nil
}

func cloneSession(session *models.Session) *models.Session {
	c := *session
	c.Turns = make([]*models.Turn, len(session.Turns))
	for i, turn := range session.Turns {
		t := *turn
		c.Turns[i] = &t
	}
	return &c
}
