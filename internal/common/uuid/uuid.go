package uuid

import "github.com/google/uuid"

//go:generate mockgen -package=mocks -destination=mocks/mock_uuid.go github.com/KirkDiggler/standup/internal/common/uuid UUID

// UUID generates identifiers for sessions and other records
type UUID interface {
	NewUUID() string
}

// DefaultUUID generates random (v4) identifiers
type DefaultUUID struct{}

func New() *DefaultUUID {
	return &DefaultUUID{}
}

// NewUUID returns a new random identifier
func (d *DefaultUUID) NewUUID() string {
	return uuid.NewString()
}
