package stats

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/standup/internal/services/stats Service

import "context"

// Service folds completed sessions into running member and team statistics
type Service interface {
	// ApplySession stores a completed session and counts it once for each
	// participant and the team, all or nothing
	ApplySession(ctx context.Context, input *ApplySessionInput) (*ApplySessionOutput, error)
}
