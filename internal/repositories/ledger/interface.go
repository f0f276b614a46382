package ledger

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/standup/internal/repositories/ledger Repository

import (
	"context"
)

// Repository records completed sessions against the running statistics they feed
type Repository interface {
	// CommitSession stores a completed session together with the member and
	// team statistics it produces. Either all of it is written or none of it.
	CommitSession(ctx context.Context, input *CommitSessionInput) (*CommitSessionOutput, error)
}
