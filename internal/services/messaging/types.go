package messaging

import (
	"math/rand"

	"github.com/KirkDiggler/standup/internal/models"
)

// MessageTone represents the tone of a message
type MessageTone string

const (
	// ToneNeutral is a neutral tone
	ToneNeutral MessageTone = "neutral"

	// ToneSarcastic is a sarcastic tone
	ToneSarcastic MessageTone = "sarcastic"

	// ToneEncouraging is an encouraging tone
	ToneEncouraging MessageTone = "encouraging"

	// ToneCelebration is a celebratory tone
	ToneCelebration MessageTone = "celebration"
)

// celebrationScore is the team score from which a standup is celebrated
const celebrationScore = 90

// Config holds configuration for the messaging service
type Config struct {
	// Rand picks among message variants; defaults to a time-seeded source
	Rand *rand.Rand
}

// GetSessionCompletedMessageInput contains parameters for the completion announcement
type GetSessionCompletedMessageInput struct {
	Summary *models.SessionSummary

	// PreferredTone is the preferred tone for the message (optional)
	PreferredTone MessageTone
}

// GetSessionCompletedMessageOutput contains the announcement
type GetSessionCompletedMessageOutput struct {
	Title   string
	Message string

	// Lines holds one line per turn in speaking order
	Lines []string

	Tone MessageTone
}

// GetOverTimeMessageInput contains parameters for an over-time nudge
type GetOverTimeMessageInput struct {
	MemberName     string
	ElapsedSeconds int
}

// GetOverTimeMessageOutput contains the nudge
type GetOverTimeMessageOutput struct {
	Message string
}

// GetStandingMessageInput contains parameters for a standings line
type GetStandingMessageInput struct {
	MemberName string

	// Rank is 1-based
	Rank         int
	TotalMembers int
	TotalScore   int
}

// GetStandingMessageOutput contains the standings line
type GetStandingMessageOutput struct {
	Message string
}
