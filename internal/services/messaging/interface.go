package messaging

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/standup/internal/services/messaging Service

import "context"

// Service is the interface for the messaging service
type Service interface {
	// GetSessionCompletedMessage returns the announcement for a finished standup
	GetSessionCompletedMessage(ctx context.Context, input *GetSessionCompletedMessageInput) (*GetSessionCompletedMessageOutput, error)

	// GetOverTimeMessage returns a nudge for a speaker past the limit
	GetOverTimeMessage(ctx context.Context, input *GetOverTimeMessageInput) (*GetOverTimeMessageOutput, error)

	// GetStandingMessage returns a one-liner for a member's place in the standings
	GetStandingMessage(ctx context.Context, input *GetStandingMessageInput) (*GetStandingMessageOutput, error)
}
