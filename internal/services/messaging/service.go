package messaging

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/KirkDiggler/standup/internal/models"
)

// service implements the Service interface
type service struct {
	// Random number generator for selecting random messages
	rand *rand.Rand
}

// New creates a new messaging service
func New(cfg *Config) (*service, error) {
	r := (*rand.Rand)(nil)
	if cfg != nil {
		r = cfg.Rand
	}
	if r == nil {
		r = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return &service{
		rand: r,
	}, nil
}

func (s *service) pick(messages []string) string {
	return messages[s.rand.Intn(len(messages))]
}

// FormatDuration renders seconds as "1m05s", or "45s" under a minute
func FormatDuration(seconds int) string {
	if seconds < 60 {
		return fmt.Sprintf("%ds", seconds)
	}
	return fmt.Sprintf("%dm%02ds", seconds/60, seconds%60)
}

func toneFor(summary *models.SessionSummary) MessageTone {
	switch {
	case summary.TeamScore >= celebrationScore:
		return ToneCelebration
	case summary.Violations > 0:
		return ToneSarcastic
	default:
		return ToneEncouraging
	}
}

// GetSessionCompletedMessage returns the announcement for a finished standup
func (s *service) GetSessionCompletedMessage(ctx context.Context, input *GetSessionCompletedMessageInput) (*GetSessionCompletedMessageOutput, error) {
	if input == nil || input.Summary == nil {
		return nil, errors.New("input cannot be nil")
	}

	summary := input.Summary
	tone := input.PreferredTone
	if tone == "" {
		tone = toneFor(summary)
	}

	winner := summary.WinnerName
	if winner == "" {
		winner = "nobody"
	}
	duration := FormatDuration(summary.TotalDurationSeconds)

	var titles, messages []string
	switch tone {
	case ToneCelebration:
		titles = []string{
			"Standup Perfection!",
			"What a Standup!",
			"Textbook Standup!",
		}
		messages = []string{
			fmt.Sprintf("Team score %d in %s. %s leads the way and everyone kept it tight!", summary.TeamScore, duration, winner),
			fmt.Sprintf("%s! Team score %d. Frame this one, it was done in %s.", winner, summary.TeamScore, duration),
			fmt.Sprintf("Short, sharp, done in %s. Team score %d with %s on top.", duration, summary.TeamScore, winner),
		}
	case ToneSarcastic:
		titles = []string{
			"Standup Survived",
			"Well, That Happened",
			"Standup (Eventually) Complete",
		}
		messages = []string{
			fmt.Sprintf("Team score %d after %s. %d speaker(s) treated the time limit as a suggestion. %s still won.", summary.TeamScore, duration, summary.Violations, winner),
			fmt.Sprintf("%s of standup, %d over-time turn(s). Team score %d. %s kept it together, at least.", duration, summary.Violations, summary.TeamScore, winner),
			fmt.Sprintf("Team score %d. We had %d filibuster(s) today. %s, thank you for your brevity.", summary.TeamScore, summary.Violations, winner),
		}
	case ToneEncouraging:
		titles = []string{
			"Standup Complete",
			"Nice Work, Team",
			"Another One Done",
		}
		messages = []string{
			fmt.Sprintf("Team score %d in %s. %s took the top spot. Keep it up!", summary.TeamScore, duration, winner),
			fmt.Sprintf("Done in %s with a team score of %d. Nice one, %s!", duration, summary.TeamScore, winner),
			fmt.Sprintf("Team score %d. %s set the pace, the rest of you are close behind.", summary.TeamScore, winner),
		}
	default:
		titles = []string{"Standup Complete"}
		messages = []string{
			fmt.Sprintf("Team score %d in %s. Winner: %s.", summary.TeamScore, duration, winner),
		}
	}

	lines := make([]string, 0, len(summary.Turns))
	for _, turn := range summary.Turns {
		line := fmt.Sprintf("%d. %s %s (%d pts)", turn.Order, turn.MemberName, FormatDuration(turn.SpeakingTimeSeconds), turn.PointsEarned)
		if turn.SpeedBonus {
			line += " ⚡"
		}
		if turn.HasViolation {
			line += " ⏰"
		}
		lines = append(lines, line)
	}

	return &GetSessionCompletedMessageOutput{
		Title:   s.pick(titles),
		Message: s.pick(messages),
		Lines:   lines,
		Tone:    tone,
	}, nil
}

// GetOverTimeMessage returns a nudge for a speaker past the limit
func (s *service) GetOverTimeMessage(ctx context.Context, input *GetOverTimeMessageInput) (*GetOverTimeMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	elapsed := FormatDuration(input.ElapsedSeconds)
	messages := []string{
		fmt.Sprintf("⏰ %s is at %s. Time to wrap it up!", input.MemberName, elapsed),
		fmt.Sprintf("⏰ %s, the clock says %s. Maybe take it offline?", input.MemberName, elapsed),
		fmt.Sprintf("⏰ %s has been going for %s. Parking lot, anyone?", input.MemberName, elapsed),
	}

	return &GetOverTimeMessageOutput{
		Message: s.pick(messages),
	}, nil
}

// GetStandingMessage returns a one-liner for a member's place in the standings
func (s *service) GetStandingMessage(ctx context.Context, input *GetStandingMessageInput) (*GetStandingMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	var messages []string

	// Different messages based on rank
	if input.Rank == 1 {
		messages = []string{
			fmt.Sprintf("🥇 %s leads with %d points. Brevity is a superpower.", input.MemberName, input.TotalScore),
			fmt.Sprintf("🥇 %s sits on top with %d points. Short updates, big results.", input.MemberName, input.TotalScore),
		}
	} else if input.Rank == 2 {
		messages = []string{
			fmt.Sprintf("🥈 %s is second with %d points. One tighter update away from the top.", input.MemberName, input.TotalScore),
			fmt.Sprintf("🥈 %s holds silver with %d points.", input.MemberName, input.TotalScore),
		}
	} else if input.Rank == 3 {
		messages = []string{
			fmt.Sprintf("🥉 %s rounds out the podium with %d points.", input.MemberName, input.TotalScore),
			fmt.Sprintf("🥉 %s takes bronze with %d points.", input.MemberName, input.TotalScore),
		}
	} else if input.Rank == input.TotalMembers {
		messages = []string{
			fmt.Sprintf("%s brings up the rear with %d points. Every standup is a fresh start.", input.MemberName, input.TotalScore),
			fmt.Sprintf("%s: %d points. Room to grow, lots of it.", input.MemberName, input.TotalScore),
		}
	} else {
		messages = []string{
			fmt.Sprintf("%s: %d points. Solidly in the pack.", input.MemberName, input.TotalScore),
			fmt.Sprintf("%s has %d points and is within striking distance.", input.MemberName, input.TotalScore),
		}
	}

	return &GetStandingMessageOutput{
		Message: fmt.Sprintf("#%d %s", input.Rank, s.pick(messages)),
	}, nil
}
