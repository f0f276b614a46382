package member

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/standup/internal/repositories/member Repository

import (
	"context"

	"github.com/KirkDiggler/standup/internal/models"
)

// Repository defines the interface for member data persistence
type Repository interface {
	// SaveMember persists a member and indexes it under its team
	SaveMember(ctx context.Context, input *SaveMemberInput) error

	// GetMember retrieves a member by ID
	GetMember(ctx context.Context, input *GetMemberInput) (*models.Member, error)

	// ListMembers retrieves the members of a team in listing order
	ListMembers(ctx context.Context, input *ListMembersInput) (*ListMembersOutput, error)

	// UpdateMember changes a member without losing concurrent writes
	UpdateMember(ctx context.Context, input *UpdateMemberInput) (*models.Member, error)

	// DeactivateMember soft-deletes a member
	DeactivateMember(ctx context.Context, input *DeactivateMemberInput) error
}
