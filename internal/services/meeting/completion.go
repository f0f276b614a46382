package meeting

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/KirkDiggler/standup/internal/models"
	"github.com/KirkDiggler/standup/internal/notifier"
	teamRepo "github.com/KirkDiggler/standup/internal/repositories/team"
	"github.com/KirkDiggler/standup/internal/scoring"
	"github.com/KirkDiggler/standup/internal/services/stats"
	"github.com/sirupsen/logrus"
)

// complete runs the completion pipeline with ls.mu held. The completed
// session is persisted by the statistics commit, so it is stored together
// with its counts or not at all. A failed attempt leaves the live session as
// it was and can be retried or cancelled.
func (s *service) complete(ctx context.Context, ls *liveSession, input *CompleteSessionInput) (*CompleteSessionOutput, error) {
	session := ls.session
	if session.Status.IsTerminal() {
		return nil, ErrInvalidTransition
	}
	if session.Status == models.SessionStatusPlanned && len(input.FinalTurns) == 0 {
		return nil, ErrInvalidTransition
	}

	team, err := s.teamRepo.GetTeam(ctx, &teamRepo.GetTeamInput{
		TeamID: session.TeamID,
	})
	if err != nil {
		if errors.Is(err, teamRepo.ErrTeamNotFound) {
			return nil, ErrInvalidTeam
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}

	checkpoint := ls.tracker.checkpoint()
	ls.tracker.Finish()

	next := cloneSession(session)
	if err := applyFinalTurns(next, input.FinalTurns); err != nil {
		ls.tracker.restore(checkpoint)
		return nil, err
	}

	now := s.clock.Now()
	if err := finalizeSession(next, input.TotalDurationSeconds, now); err != nil {
		ls.tracker.restore(checkpoint)
		return nil, err
	}

	statsOutput, err := s.statsService.ApplySession(ctx, &stats.ApplySessionInput{
		Session:               next,
		TargetDurationSeconds: team.Config.WithDefaults().TargetDurationSeconds,
		Consecutive:           s.streakPolicy,
	})
	if err != nil {
		ls.tracker.restore(checkpoint)
		return nil, fmt.Errorf("failed to apply session statistics: %w", err)
	}

	s.releaseActive(ctx, next)
	ls.session = next
	s.drop(ls)

	summary := next.Summarize()
	s.notifier.SessionCompleted(ctx, &notifier.SessionCompletedEvent{
		SessionID: next.ID,
		TeamID:    next.TeamID,
		Summary:   summary,
	})

	s.sessionLog(next).WithFields(logrus.Fields{
		"team_score": next.TeamScore,
		"winner":     next.WinnerMemberID,
		"duration":   next.TotalDurationSeconds,
	}).Info("session completed")

	return &CompleteSessionOutput{
		Session: cloneSession(next),
		Summary: summary,
		Stats:   statsOutput,
	}, nil
}

// applyFinalTurns finalizes the turns named in finals. A turn that was
// already finalized only accepts its recorded duration.
func applyFinalTurns(session *models.Session, finals []*FinalTurn) error {
	for _, final := range finals {
		if final == nil {
			continue
		}

		turn := session.TurnFor(final.MemberID)
		if turn == nil {
			return ErrParticipantNotFound
		}
		if final.SpeakingTimeSeconds < 0 {
			return scoring.ErrNegativeDuration
		}
		if turn.Finalized && turn.SpeakingTimeSeconds != final.SpeakingTimeSeconds {
			return ErrInvalidOperation
		}

		turn.SpeakingTimeSeconds = final.SpeakingTimeSeconds
		turn.Finalized = true
		if final.Points != nil {
			turn.PointsEarned = *final.Points
			turn.Scored = true
		}
		if final.Notes != "" {
			turn.Notes = final.Notes
		}
	}
	return nil
}

// finalizeSession scores every turn, applies the speed bonus and derives
// the session aggregates
func finalizeSession(session *models.Session, explicitTotal int, now time.Time) error {
	sort.SliceStable(session.Turns, func(i, j int) bool {
		return session.Turns[i].Order < session.Turns[j].Order
	})

	cfg := scoring.ConfigFor(session)
	durations := make([]int, len(session.Turns))
	speakingTotal := 0

	for i, turn := range session.Turns {
		result, err := scoring.Score(turn.SpeakingTimeSeconds, cfg)
		if err != nil {
			return err
		}

		if !turn.Scored {
			turn.PointsEarned = result.Points
		}
		turn.HasViolation = result.HasViolation
		turn.SpeedBonus = false
		turn.Finalized = true

		durations[i] = turn.SpeakingTimeSeconds
		speakingTotal += turn.SpeakingTimeSeconds
	}

	for i, won := range scoring.SpeedBonusWinners(durations) {
		if won {
			session.Turns[i].PointsEarned += scoring.SpeedBonusPoints
			session.Turns[i].SpeedBonus = true
		}
	}

	if session.EndTime.IsZero() {
		session.EndTime = now
	}

	switch {
	case explicitTotal > 0:
		session.TotalDurationSeconds = explicitTotal
	case speakingTotal > 0:
		session.TotalDurationSeconds = speakingTotal
	case !session.StartTime.IsZero():
		session.TotalDurationSeconds = max(0, int(session.EndTime.Sub(session.StartTime).Seconds()))
	}

	session.TeamScore = 0
	session.AverageSpeakingTime = 0
	session.WinnerMemberID = ""

	if n := len(session.Turns); n > 0 {
		pointsTotal := 0
		best := -1
		for _, turn := range session.Turns {
			pointsTotal += turn.PointsEarned
			if turn.PointsEarned > best {
				best = turn.PointsEarned
				session.WinnerMemberID = turn.MemberID
			}
		}
		session.TeamScore = pointsTotal / n
		session.AverageSpeakingTime = speakingTotal / n
	}

	session.Status = models.SessionStatusCompleted
	session.CompletedAt = now
	session.UpdatedAt = now
	return nil
}
