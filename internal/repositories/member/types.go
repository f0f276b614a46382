package member

import "github.com/KirkDiggler/standup/internal/models"

type SaveMemberInput struct {
	Member *models.Member
}

type GetMemberInput struct {
	MemberID string
}

type ListMembersInput struct {
	TeamID string

	// ActiveOnly skips deactivated members
	ActiveOnly bool
}

type ListMembersOutput struct {
	Members []*models.Member
}

type DeactivateMemberInput struct {
	MemberID string
}

type UpdateMemberInput struct {
	MemberID string

	// Update mutates the stored member; an error aborts without writing.
	// The member's team cannot be changed.
	Update func(member *models.Member) error
}
