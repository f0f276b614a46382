package discord

import (
	"context"
	"errors"
	"testing"

	"github.com/KirkDiggler/standup/internal/models"
	"github.com/KirkDiggler/standup/internal/notifier"
	"github.com/KirkDiggler/standup/internal/services/messaging"
	messagingMocks "github.com/KirkDiggler/standup/internal/services/messaging/mocks"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type NotifierTestSuite struct {
	suite.Suite
	ctrl                 *gomock.Controller
	mockMessagingService *messagingMocks.MockService
	sender               *recordingSender
	channels             *ChannelRegistry
	notifier             *Notifier
	ctx                  context.Context
}

func (s *NotifierTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockMessagingService = messagingMocks.NewMockService(s.ctrl)
	s.sender = &recordingSender{}
	s.channels = NewChannelRegistry()
	s.ctx = context.Background()

	n, err := NewNotifier(&NotifierConfig{
		Sender:           s.sender,
		MessagingService: s.mockMessagingService,
		Channels:         s.channels,
		Logger:           quietLogger(),
	})
	s.Require().NoError(err)

	// deliver synchronously
	n.dispatch = func(f func()) { f() }
	s.notifier = n
}

func (s *NotifierTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *NotifierTestSuite) track() {
	s.channels.Track(testChannelID, &models.Session{
		ID: testSessionID,
		Turns: []*models.Turn{
			{MemberID: "m1", MemberName: "Ada", Order: 1},
			{MemberID: "m3", MemberName: "Linus", Order: 2},
		},
	})
}

func (s *NotifierTestSuite) TestNewNotifierValidation() {
	_, err := NewNotifier(nil)
	s.Error(err)

	_, err = NewNotifier(&NotifierConfig{MessagingService: s.mockMessagingService})
	s.Error(err)

	_, err = NewNotifier(&NotifierConfig{Sender: s.sender})
	s.Error(err)
}

func (s *NotifierTestSuite) TestTimerUpdateUnderLimitIsIgnored() {
	s.track()

	s.notifier.TimerUpdate(s.ctx, &notifier.TimerUpdateEvent{
		SessionID:      testSessionID,
		MemberID:       "m1",
		ElapsedSeconds: 60,
	})

	s.Empty(s.sender.sent)
}

func (s *NotifierTestSuite) TestTimerUpdateNudgesOncePerSpeaker() {
	s.track()
	s.mockMessagingService.EXPECT().
		GetOverTimeMessage(gomock.Any(), &messaging.GetOverTimeMessageInput{MemberName: "Linus", ElapsedSeconds: 121}).
		Return(&messaging.GetOverTimeMessageOutput{Message: "⏰ Linus, wrap it up"}, nil)

	for elapsed := 121; elapsed <= 125; elapsed++ {
		s.notifier.TimerUpdate(s.ctx, &notifier.TimerUpdateEvent{
			SessionID:      testSessionID,
			MemberID:       "m3",
			ElapsedSeconds: elapsed,
			OverLimit:      true,
		})
	}

	s.Require().Len(s.sender.sent, 1)
	s.Equal(testChannelID, s.sender.sent[0].ChannelID)
	s.Equal("⏰ Linus, wrap it up", s.sender.sent[0].Content)
}

func (s *NotifierTestSuite) TestTimerUpdateWithoutChannel() {
	s.notifier.TimerUpdate(s.ctx, &notifier.TimerUpdateEvent{
		SessionID: "elsewhere",
		MemberID:  "m1",
		OverLimit: true,
	})

	s.Empty(s.sender.sent)
}

func (s *NotifierTestSuite) TestSessionCompletedPostsResults() {
	s.track()
	summary := &models.SessionSummary{
		SessionID:  testSessionID,
		TeamScore:  68,
		WinnerName: "Ada",
	}
	s.mockMessagingService.EXPECT().
		GetSessionCompletedMessage(gomock.Any(), &messaging.GetSessionCompletedMessageInput{Summary: summary}).
		Return(&messaging.GetSessionCompletedMessageOutput{
			Title:   "Standup Survived",
			Message: "Team score 68",
			Lines:   []string{"1. Ada 45s (105 pts) ⚡"},
			Tone:    messaging.ToneSarcastic,
		}, nil)

	s.notifier.SessionCompleted(s.ctx, &notifier.SessionCompletedEvent{
		SessionID: testSessionID,
		Summary:   summary,
	})

	s.Require().Len(s.sender.sent, 1)
	embed := s.sender.sent[0].Embed
	s.Equal(testChannelID, s.sender.sent[0].ChannelID)
	s.Equal("Standup Survived", embed.Title)
	s.Equal(colorWarning, embed.Color)
	s.Equal("Ada", embed.Fields[2].Value)

	_, ok := s.channels.BySession(testSessionID)
	s.False(ok)
}

func (s *NotifierTestSuite) TestSessionCompletedFallsBackToDefaultChannel() {
	s.notifier.defaultChannelID = "general"
	s.mockMessagingService.EXPECT().
		GetSessionCompletedMessage(gomock.Any(), gomock.Any()).
		Return(&messaging.GetSessionCompletedMessageOutput{Title: "Standup Complete"}, nil)

	s.notifier.SessionCompleted(s.ctx, &notifier.SessionCompletedEvent{
		SessionID: "api-session",
		Summary:   &models.SessionSummary{SessionID: "api-session"},
	})

	s.Require().Len(s.sender.sent, 1)
	s.Equal("general", s.sender.sent[0].ChannelID)
}

func (s *NotifierTestSuite) TestSessionCompletedSwallowsFailures() {
	s.track()
	s.sender.err = errors.New("discord unavailable")
	s.mockMessagingService.EXPECT().
		GetSessionCompletedMessage(gomock.Any(), gomock.Any()).
		Return(&messaging.GetSessionCompletedMessageOutput{Title: "Standup Complete"}, nil)

	s.NotPanics(func() {
		s.notifier.SessionCompleted(s.ctx, &notifier.SessionCompletedEvent{
			SessionID: testSessionID,
			Summary:   &models.SessionSummary{SessionID: testSessionID},
		})
	})
}

func (s *NotifierTestSuite) TestSessionCompletedResetsNudges() {
	s.track()
	s.mockMessagingService.EXPECT().
		GetOverTimeMessage(gomock.Any(), gomock.Any()).
		Return(&messaging.GetOverTimeMessageOutput{Message: "wrap it up"}, nil).
		Times(2)
	s.mockMessagingService.EXPECT().
		GetSessionCompletedMessage(gomock.Any(), gomock.Any()).
		Return(&messaging.GetSessionCompletedMessageOutput{Title: "Standup Complete"}, nil)

	event := &notifier.TimerUpdateEvent{SessionID: testSessionID, MemberID: "m1", OverLimit: true}
	s.notifier.TimerUpdate(s.ctx, event)
	s.notifier.SessionCompleted(s.ctx, &notifier.SessionCompletedEvent{
		SessionID: testSessionID,
		Summary:   &models.SessionSummary{SessionID: testSessionID},
	})

	// a new binding of the same id starts clean
	s.track()
	s.notifier.TimerUpdate(s.ctx, event)

	s.Len(s.sender.sent, 3)
}

func (s *NotifierTestSuite) TestSessionCancelledForgetsChannelAndNudges() {
	s.track()
	s.mockMessagingService.EXPECT().
		GetOverTimeMessage(gomock.Any(), gomock.Any()).
		Return(&messaging.GetOverTimeMessageOutput{Message: "wrap it up"}, nil).
		Times(2)

	event := &notifier.TimerUpdateEvent{SessionID: testSessionID, MemberID: "m1", OverLimit: true}
	s.notifier.TimerUpdate(s.ctx, event)
	s.notifier.SessionCancelled(s.ctx, &notifier.SessionCancelledEvent{SessionID: testSessionID})

	_, bound := s.channels.ByChannel(testChannelID)
	s.False(bound)
	_, bound = s.channels.BySession(testSessionID)
	s.False(bound)

	// nothing is posted for the cancellation itself
	s.Len(s.sender.sent, 1)

	s.track()
	s.notifier.TimerUpdate(s.ctx, event)
	s.Len(s.sender.sent, 2)
}

func TestNotifierSuite(t *testing.T) {
	suite.Run(t, new(NotifierTestSuite))
}
