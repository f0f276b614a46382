package meeting

import (
	"sort"

	"github.com/KirkDiggler/standup/internal/models"
	"github.com/KirkDiggler/standup/internal/scoring"
)

// Tracker owns the speaking order of a session and the running turn.
// It is not safe for concurrent use; the service serializes every call
// per session.
type Tracker struct {
	session *models.Session
	turns   []*models.Turn
	cfg     scoring.Config

	current int
	elapsed int
	running bool
}

// TickResult describes the running turn after one tick
type TickResult struct {
	MemberID       string
	ElapsedSeconds int
	OverLimit      bool
}

// AdvanceResult describes a finalized turn and the speaker that follows it
type AdvanceResult struct {
	// Finalized is the turn that just ended
	Finalized *models.Turn

	// NextMemberID is the speaker whose turn started, empty after the last turn
	NextMemberID string
}

// NewTracker builds a tracker positioned on the first turn not yet finalized
func NewTracker(session *models.Session) *Tracker {
	turns := make([]*models.Turn, len(session.Turns))
	copy(turns, session.Turns)
	sort.SliceStable(turns, func(i, j int) bool {
		return turns[i].Order < turns[j].Order
	})

	t := &Tracker{
		session: session,
		turns:   turns,
		cfg:     scoring.ConfigFor(session),
	}
	t.current = t.nextOpen(0)
	return t
}

func (t *Tracker) nextOpen(from int) int {
	for i := from; i < len(t.turns); i++ {
		if !t.turns[i].Finalized {
			return i
		}
	}
	return len(t.turns)
}

// Start begins the clock for the current speaker
func (t *Tracker) Start() (string, error) {
	if t.session.Status != models.SessionStatusActive {
		return "", ErrInvalidTransition
	}
	if t.running {
		return "", ErrTurnAlreadyRunning
	}
	if t.current >= len(t.turns) {
		return "", ErrSessionComplete
	}

	t.running = true
	t.elapsed = t.turns[t.current].SpeakingTimeSeconds
	return t.turns[t.current].MemberID, nil
}

// Tick adds one second to the running turn
func (t *Tracker) Tick() (*TickResult, error) {
	if !t.running {
		return nil, ErrNoTurnRunning
	}

	t.elapsed++
	turn := t.turns[t.current]
	turn.SpeakingTimeSeconds = t.elapsed

	return &TickResult{
		MemberID:       turn.MemberID,
		ElapsedSeconds: t.elapsed,
		OverLimit:      t.overLimit(),
	}, nil
}

func (t *Tracker) overLimit() bool {
	limit := t.cfg.MaxSpeakingTimeSeconds
	if limit <= 0 {
		limit = models.DefaultMaxSpeakingTimeSeconds
	}
	return t.elapsed > limit
}

// Advance finalizes the running turn and starts the next one. When the
// finalized turn was the last, the result is returned together with
// ErrSessionComplete and no new turn is started.
func (t *Tracker) Advance() (*AdvanceResult, error) {
	if t.current >= len(t.turns) {
		return nil, ErrSessionComplete
	}
	if !t.running {
		return nil, ErrNoTurnRunning
	}

	finalized := t.finalizeCurrent()

	t.current = t.nextOpen(t.current + 1)
	if t.current >= len(t.turns) {
		return &AdvanceResult{Finalized: finalized}, ErrSessionComplete
	}

	next := t.turns[t.current]
	t.running = true
	t.elapsed = next.SpeakingTimeSeconds

	return &AdvanceResult{
		Finalized:    finalized,
		NextMemberID: next.MemberID,
	}, nil
}

// Finish finalizes the running turn, if any, without starting another
func (t *Tracker) Finish() *models.Turn {
	if !t.running {
		return nil
	}
	finalized := t.finalizeCurrent()
	t.current = t.nextOpen(t.current + 1)
	return finalized
}

func (t *Tracker) finalizeCurrent() *models.Turn {
	turn := t.turns[t.current]

	// elapsed is never negative so scoring cannot fail here
	result, _ := scoring.Score(t.elapsed, t.cfg)
	turn.SpeakingTimeSeconds = t.elapsed
	turn.HasViolation = result.HasViolation
	turn.Finalized = true

	t.running = false
	t.elapsed = 0
	return turn
}

// Sync replaces the elapsed time when memberID is the running speaker
func (t *Tracker) Sync(memberID string, seconds int) {
	if speaker, ok := t.CurrentSpeaker(); ok && speaker == memberID {
		t.elapsed = seconds
	}
}

// CurrentSpeaker returns the member whose turn is running
func (t *Tracker) CurrentSpeaker() (string, bool) {
	if !t.running {
		return "", false
	}
	return t.turns[t.current].MemberID, true
}

// Elapsed returns the seconds counted for the running turn
func (t *Tracker) Elapsed() int {
	if !t.running {
		return 0
	}
	return t.elapsed
}

// Running reports whether a turn is being timed
func (t *Tracker) Running() bool {
	return t.running
}

type trackerState struct {
	current int
	elapsed int
	running bool
	turn    *models.Turn
	saved   models.Turn
}

// checkpoint captures what Advance or Finish may change so a failed
// write can be undone
func (t *Tracker) checkpoint() trackerState {
	st := trackerState{
		current: t.current,
		elapsed: t.elapsed,
		running: t.running,
	}
	if t.current < len(t.turns) {
		st.turn = t.turns[t.current]
		st.saved = *st.turn
	}
	return st
}

func (t *Tracker) restore(st trackerState) {
	t.current = st.current
	t.elapsed = st.elapsed
	t.running = st.running
	if st.turn != nil {
		*st.turn = st.saved
	}
}
