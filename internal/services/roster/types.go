package roster

import (
	"github.com/KirkDiggler/standup/internal/common/clock"
	"github.com/KirkDiggler/standup/internal/common/uuid"
	"github.com/KirkDiggler/standup/internal/models"
	memberRepo "github.com/KirkDiggler/standup/internal/repositories/member"
	teamRepo "github.com/KirkDiggler/standup/internal/repositories/team"
	"github.com/sirupsen/logrus"
)

// Config holds configuration for the roster service
type Config struct {
	TeamRepo      teamRepo.Repository
	MemberRepo    memberRepo.Repository
	Clock         clock.Clock
	UUIDGenerator uuid.UUID
	Logger        logrus.FieldLogger
}

// NewMember describes a member to add
type NewMember struct {
	Name   string
	Title  string
	Avatar string

	// ExternalID links the member to a chat account; adding the same
	// account twice returns the existing member
	ExternalID string
}

type CreateTeamInput struct {
	Name string

	// Config is validated; unset fields fall back to the defaults when used
	Config models.TeamConfig

	Members []*NewMember
}

type CreateTeamOutput struct {
	Team    *models.Team
	Members []*models.Member
}

type GetTeamInput struct {
	TeamID string
}

type GetTeamOutput struct {
	Team *models.Team

	// Members are the active members in listing order
	Members []*models.Member
}

type UpdateTeamInput struct {
	TeamID string

	// Name is kept when empty
	Name string

	// Config replaces the team's settings when set
	Config *models.TeamConfig
}

type UpdateTeamOutput struct {
	Team *models.Team
}

type AddMemberInput struct {
	TeamID string
	Member *NewMember
}

type AddMemberOutput struct {
	Member *models.Member

	// Created is false when the account already had a member
	Created bool

	// Reactivated is true when a deactivated member was brought back
	Reactivated bool
}

type DeactivateMemberInput struct {
	TeamID   string
	MemberID string
}

type ListMembersInput struct {
	TeamID     string
	ActiveOnly bool
}

type ListMembersOutput struct {
	Members []*models.Member
}
