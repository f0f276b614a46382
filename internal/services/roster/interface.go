package roster

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/standup/internal/services/roster Service

import "context"

// Service manages teams and the members who speak in their standups
type Service interface {
	// CreateTeam creates a team with its initial members
	CreateTeam(ctx context.Context, input *CreateTeamInput) (*CreateTeamOutput, error)

	// GetTeam returns a team with its active members
	GetTeam(ctx context.Context, input *GetTeamInput) (*GetTeamOutput, error)

	// UpdateTeam renames a team or replaces its standup settings
	UpdateTeam(ctx context.Context, input *UpdateTeamInput) (*UpdateTeamOutput, error)

	// AddMember adds a member to a team, reactivating a returning one
	AddMember(ctx context.Context, input *AddMemberInput) (*AddMemberOutput, error)

	// DeactivateMember removes a member from future standups
	DeactivateMember(ctx context.Context, input *DeactivateMemberInput) error

	// ListMembers returns the members of a team in listing order
	ListMembers(ctx context.Context, input *ListMembersInput) (*ListMembersOutput, error)
}
