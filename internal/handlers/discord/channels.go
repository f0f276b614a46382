package discord

import (
	"sync"

	"github.com/KirkDiggler/standup/internal/models"
)

// ActiveStandup is a session started from a channel
type ActiveStandup struct {
	SessionID string
	ChannelID string

	// names maps member ids to display names captured at start
	names map[string]string
}

// Name returns the display name of a member, falling back to the id
func (a *ActiveStandup) Name(memberID string) string {
	if name, ok := a.names[memberID]; ok && name != "" {
		return name
	}
	return memberID
}

// ChannelRegistry remembers which channel runs which session. It is shared by
// the slash command and the notifier.
type ChannelRegistry struct {
	mu        sync.RWMutex
	byChannel map[string]*ActiveStandup
	bySession map[string]*ActiveStandup
}

// NewChannelRegistry creates an empty registry
func NewChannelRegistry() *ChannelRegistry {
	return &ChannelRegistry{
		byChannel: make(map[string]*ActiveStandup),
		bySession: make(map[string]*ActiveStandup),
	}
}

// Track binds a session to a channel, replacing any previous binding of the channel
func (r *ChannelRegistry) Track(channelID string, session *models.Session) {
	standup := &ActiveStandup{
		SessionID: session.ID,
		ChannelID: channelID,
		names:     make(map[string]string, len(session.Turns)),
	}
	for _, turn := range session.Turns {
		standup.names[turn.MemberID] = turn.MemberName
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if previous, ok := r.byChannel[channelID]; ok {
		delete(r.bySession, previous.SessionID)
	}
	r.byChannel[channelID] = standup
	r.bySession[session.ID] = standup
}

// ByChannel returns the session running in a channel
func (r *ChannelRegistry) ByChannel(channelID string) (*ActiveStandup, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	standup, ok := r.byChannel[channelID]
	return standup, ok
}

// BySession returns the channel binding of a session
func (r *ChannelRegistry) BySession(sessionID string) (*ActiveStandup, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	standup, ok := r.bySession[sessionID]
	return standup, ok
}

// Forget removes a session's binding
func (r *ChannelRegistry) Forget(sessionID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	standup, ok := r.bySession[sessionID]
	if !ok {
		return
	}
	delete(r.bySession, sessionID)
	if current, ok := r.byChannel[standup.ChannelID]; ok && current == standup {
		delete(r.byChannel, standup.ChannelID)
	}
}
