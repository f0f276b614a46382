package messaging

import (
	"context"
	"math/rand"
	"strings"
	"testing"

	"github.com/KirkDiggler/standup/internal/models"
	"github.com/stretchr/testify/suite"
)

type MessagingServiceTestSuite struct {
	suite.Suite
	service *service
	ctx     context.Context
}

func (s *MessagingServiceTestSuite) SetupTest() {
	svc, err := New(&Config{
		Rand: rand.New(rand.NewSource(42)),
	})
	s.Require().NoError(err)

	s.service = svc
	s.ctx = context.Background()
}

func (s *MessagingServiceTestSuite) summary(teamScore, violations int) *models.SessionSummary {
	return &models.SessionSummary{
		SessionID:            "session-1",
		TeamID:               "team-1",
		TeamScore:            teamScore,
		WinnerMemberID:       "m1",
		WinnerName:           "Ada",
		TotalDurationSeconds: 260,
		Violations:           violations,
		Turns: []*models.Turn{
			{MemberID: "m1", MemberName: "Ada", Order: 1, SpeakingTimeSeconds: 45, PointsEarned: 105, SpeedBonus: true},
			{MemberID: "m2", MemberName: "Grace", Order: 2, SpeakingTimeSeconds: 85, PointsEarned: 80},
			{MemberID: "m3", MemberName: "Linus", Order: 3, SpeakingTimeSeconds: 130, PointsEarned: 20, HasViolation: true},
		},
	}
}

func (s *MessagingServiceTestSuite) TestNewWithoutConfig() {
	svc, err := New(nil)
	s.Require().NoError(err)
	s.NotNil(svc.rand)
}

func (s *MessagingServiceTestSuite) TestSessionCompletedPicksToneFromScore() {
	tests := []struct {
		name       string
		teamScore  int
		violations int
		want       MessageTone
	}{
		{name: "high score", teamScore: 92, violations: 1, want: ToneCelebration},
		{name: "violations", teamScore: 68, violations: 1, want: ToneSarcastic},
		{name: "clean", teamScore: 70, violations: 0, want: ToneEncouraging},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			output, err := s.service.GetSessionCompletedMessage(s.ctx, &GetSessionCompletedMessageInput{
				Summary: s.summary(tt.teamScore, tt.violations),
			})
			s.Require().NoError(err)
			s.Equal(tt.want, output.Tone)
			s.NotEmpty(output.Title)
			s.Contains(output.Message, "Ada")
		})
	}
}

func (s *MessagingServiceTestSuite) TestSessionCompletedHonorsPreferredTone() {
	output, err := s.service.GetSessionCompletedMessage(s.ctx, &GetSessionCompletedMessageInput{
		Summary:       s.summary(95, 0),
		PreferredTone: ToneNeutral,
	})
	s.Require().NoError(err)

	s.Equal(ToneNeutral, output.Tone)
	s.Equal("Standup Complete", output.Title)
	s.Equal("Team score 95 in 4m20s. Winner: Ada.", output.Message)
}

func (s *MessagingServiceTestSuite) TestSessionCompletedLines() {
	output, err := s.service.GetSessionCompletedMessage(s.ctx, &GetSessionCompletedMessageInput{
		Summary: s.summary(68, 1),
	})
	s.Require().NoError(err)

	s.Equal([]string{
		"1. Ada 45s (105 pts) ⚡",
		"2. Grace 1m25s (80 pts)",
		"3. Linus 2m10s (20 pts) ⏰",
	}, output.Lines)
}

func (s *MessagingServiceTestSuite) TestSessionCompletedWithoutWinner() {
	summary := s.summary(0, 0)
	summary.WinnerName = ""
	summary.Turns = nil

	output, err := s.service.GetSessionCompletedMessage(s.ctx, &GetSessionCompletedMessageInput{
		Summary:       summary,
		PreferredTone: ToneNeutral,
	})
	s.Require().NoError(err)
	s.Contains(output.Message, "nobody")
	s.Empty(output.Lines)
}

func (s *MessagingServiceTestSuite) TestNilInputs() {
	_, err := s.service.GetSessionCompletedMessage(s.ctx, nil)
	s.Error(err)

	_, err = s.service.GetSessionCompletedMessage(s.ctx, &GetSessionCompletedMessageInput{})
	s.Error(err)

	_, err = s.service.GetOverTimeMessage(s.ctx, nil)
	s.Error(err)

	_, err = s.service.GetStandingMessage(s.ctx, nil)
	s.Error(err)
}

func (s *MessagingServiceTestSuite) TestOverTimeMessage() {
	output, err := s.service.GetOverTimeMessage(s.ctx, &GetOverTimeMessageInput{
		MemberName:     "Linus",
		ElapsedSeconds: 121,
	})
	s.Require().NoError(err)

	s.True(strings.HasPrefix(output.Message, "⏰ Linus"))
	s.Contains(output.Message, "2m01s")
}

func (s *MessagingServiceTestSuite) TestStandingMessage() {
	tests := []struct {
		name   string
		rank   int
		prefix string
	}{
		{name: "first", rank: 1, prefix: "#1 🥇 Ada"},
		{name: "second", rank: 2, prefix: "#2 🥈 Ada"},
		{name: "third", rank: 3, prefix: "#3 🥉 Ada"},
		{name: "middle", rank: 4, prefix: "#4 Ada"},
		{name: "last", rank: 5, prefix: "#5 Ada"},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			output, err := s.service.GetStandingMessage(s.ctx, &GetStandingMessageInput{
				MemberName:   "Ada",
				Rank:         tt.rank,
				TotalMembers: 5,
				TotalScore:   420,
			})
			s.Require().NoError(err)
			s.True(strings.HasPrefix(output.Message, tt.prefix), output.Message)
			s.Contains(output.Message, "420")
		})
	}
}

func TestFormatDuration(t *testing.T) {
	cases := map[int]string{
		0:   "0s",
		59:  "59s",
		60:  "1m00s",
		125: "2m05s",
	}
	for seconds, want := range cases {
		if got := FormatDuration(seconds); got != want {
			t.Errorf("FormatDuration(%d) = %q, want %q", seconds, got, want)
		}
	}
}

func TestMessagingServiceSuite(t *testing.T) {
	suite.Run(t, new(MessagingServiceTestSuite))
}
