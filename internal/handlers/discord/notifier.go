package discord

import (
	"context"
	"errors"
	"sync"

	"github.com/KirkDiggler/standup/internal/notifier"
	"github.com/KirkDiggler/standup/internal/services/messaging"
	"github.com/bwmarrin/discordgo"
	"github.com/sirupsen/logrus"
)

// MessageSender posts to channels; *discordgo.Session satisfies it
type MessageSender interface {
	ChannelMessageSend(channelID string, content string, options ...discordgo.RequestOption) (*discordgo.Message, error)
	ChannelMessageSendEmbed(channelID string, embed *discordgo.MessageEmbed, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// NotifierConfig holds the dependencies of the Discord notifier
type NotifierConfig struct {
	Sender           MessageSender
	MessagingService messaging.Service

	// Channels resolves the channel a session was started from
	Channels *ChannelRegistry

	// DefaultChannelID receives events of sessions not started from Discord (optional)
	DefaultChannelID string

	Logger logrus.FieldLogger
}

// Notifier posts session events to Discord. Timer updates only produce a
// single nudge per speaker once the limit is passed.
type Notifier struct {
	sender           MessageSender
	messagingService messaging.Service
	channels         *ChannelRegistry
	defaultChannelID string
	logger           logrus.FieldLogger

	mu     sync.Mutex
	nudged map[string]map[string]struct{}

	// dispatch runs deliveries off the caller's goroutine
	dispatch func(func())
}

var _ notifier.Notifier = (*Notifier)(nil)

// NewNotifier creates a new Discord notifier
func NewNotifier(cfg *NotifierConfig) (*Notifier, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Sender == nil {
		return nil, errors.New("sender cannot be nil")
	}

	if cfg.MessagingService == nil {
		return nil, errors.New("messaging service cannot be nil")
	}

	channels := cfg.Channels
	if channels == nil {
		channels = NewChannelRegistry()
	}

	logger := cfg.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	return &Notifier{
		sender:           cfg.Sender,
		messagingService: cfg.MessagingService,
		channels:         channels,
		defaultChannelID: cfg.DefaultChannelID,
		logger:           logger.WithField("component", "discord_notifier"),
		nudged:           make(map[string]map[string]struct{}),
		dispatch:         func(f func()) { go f() },
	}, nil
}

func (n *Notifier) channelFor(sessionID string) (string, *ActiveStandup) {
	if standup, ok := n.channels.BySession(sessionID); ok {
		return standup.ChannelID, standup
	}
	return n.defaultChannelID, nil
}

// markNudged reports whether this is the first nudge for the speaker
func (n *Notifier) markNudged(sessionID, memberID string) bool {
	n.mu.Lock()
	defer n.mu.Unlock()

	members, ok := n.nudged[sessionID]
	if !ok {
		members = make(map[string]struct{})
		n.nudged[sessionID] = members
	}
	if _, done := members[memberID]; done {
		return false
	}
	members[memberID] = struct{}{}
	return true
}

// TimerUpdate nudges a speaker the first time they pass the limit
func (n *Notifier) TimerUpdate(ctx context.Context, event *notifier.TimerUpdateEvent) {
	if event == nil || !event.OverLimit {
		return
	}

	channelID, standup := n.channelFor(event.SessionID)
	if channelID == "" {
		return
	}
	if !n.markNudged(event.SessionID, event.MemberID) {
		return
	}

	name := event.MemberID
	if standup != nil {
		name = standup.Name(event.MemberID)
	}

	ctx = context.WithoutCancel(ctx)
	n.dispatch(func() {
		message, err := n.messagingService.GetOverTimeMessage(ctx, &messaging.GetOverTimeMessageInput{
			MemberName:     name,
			ElapsedSeconds: event.ElapsedSeconds,
		})
		if err != nil {
			n.logger.WithError(err).Warn("failed to render over-time message")
			return
		}

		if _, err := n.sender.ChannelMessageSend(channelID, message.Message); err != nil {
			n.logger.WithFields(logrus.Fields{
				"session_id": event.SessionID,
				"member_id":  event.MemberID,
				"channel_id": channelID,
			}).WithError(err).Warn("failed to post over-time message")
		}
	})
}

func (n *Notifier) forget(sessionID string) {
	n.mu.Lock()
	delete(n.nudged, sessionID)
	n.mu.Unlock()
	n.channels.Forget(sessionID)
}

// SessionCompleted posts the results and forgets the session
func (n *Notifier) SessionCompleted(ctx context.Context, event *notifier.SessionCompletedEvent) {
	if event == nil {
		return
	}

	channelID, _ := n.channelFor(event.SessionID)
	n.forget(event.SessionID)

	if channelID == "" || event.Summary == nil {
		return
	}

	ctx = context.WithoutCancel(ctx)
	n.dispatch(func() {
		message, err := n.messagingService.GetSessionCompletedMessage(ctx, &messaging.GetSessionCompletedMessageInput{
			Summary: event.Summary,
		})
		if err != nil {
			n.logger.WithError(err).Warn("failed to render completion message")
			return
		}

		if _, err := n.sender.ChannelMessageSendEmbed(channelID, renderSessionCompleted(event.Summary, message)); err != nil {
			n.logger.WithFields(logrus.Fields{
				"session_id": event.SessionID,
				"channel_id": channelID,
			}).WithError(err).Warn("failed to post session results")
		}
	})
}

// SessionCancelled forgets the session; the cancelling command already replied
func (n *Notifier) SessionCancelled(_ context.Context, event *notifier.SessionCancelledEvent) {
	if event == nil {
		return
	}
	n.forget(event.SessionID)
}
