package roster

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/KirkDiggler/standup/internal/common/clock"
	"github.com/KirkDiggler/standup/internal/common/uuid"
	"github.com/KirkDiggler/standup/internal/models"
	memberRepo "github.com/KirkDiggler/standup/internal/repositories/member"
	teamRepo "github.com/KirkDiggler/standup/internal/repositories/team"
	"github.com/sirupsen/logrus"
)

// service implements the Service interface
type service struct {
	teamRepo   teamRepo.Repository
	memberRepo memberRepo.Repository
	clock      clock.Clock
	uuid       uuid.UUID
	log        logrus.FieldLogger
}

// New creates a new roster service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.TeamRepo == nil {
		return nil, ErrNilTeamRepo
	}

	if cfg.MemberRepo == nil {
		return nil, ErrNilMemberRepo
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	logger := cfg.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	return &service{
		teamRepo:   cfg.TeamRepo,
		memberRepo: cfg.MemberRepo,
		clock:      cfg.Clock,
		uuid:       cfg.UUIDGenerator,
		log:        logger.WithField("component", "roster"),
	}, nil
}

func validateConfig(cfg models.TeamConfig) error {
	if cfg.TargetDurationSeconds < 0 || cfg.MaxSpeakingTimeSeconds < 0 {
		return ErrInvalidConfig
	}
	if cfg.ScoringMode != "" && !cfg.ScoringMode.IsValid() {
		return ErrInvalidConfig
	}
	return nil
}

func (s *service) getTeam(ctx context.Context, teamID string) (*models.Team, error) {
	if teamID == "" {
		return nil, ErrTeamNotFound
	}

	team, err := s.teamRepo.GetTeam(ctx, &teamRepo.GetTeamInput{
		TeamID: teamID,
	})
	if err != nil {
		if errors.Is(err, teamRepo.ErrTeamNotFound) {
			return nil, ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}
	return team, nil
}

func (s *service) listMembers(ctx context.Context, teamID string, activeOnly bool) ([]*models.Member, error) {
	output, err := s.memberRepo.ListMembers(ctx, &memberRepo.ListMembersInput{
		TeamID:     teamID,
		ActiveOnly: activeOnly,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}
	return output.Members, nil
}

func (s *service) saveMember(ctx context.Context, member *models.Member) error {
	if err := s.memberRepo.SaveMember(ctx, &memberRepo.SaveMemberInput{
		Member: member,
	}); err != nil {
		return fmt.Errorf("failed to save member: %w", err)
	}
	return nil
}

// CreateTeam creates a team with its initial members
func (s *service) CreateTeam(ctx context.Context, input *CreateTeamInput) (*CreateTeamOutput, error) {
	if input == nil {
		return nil, ErrInvalidName
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrInvalidName
	}

	if err := validateConfig(input.Config); err != nil {
		return nil, err
	}

	for _, m := range input.Members {
		if m == nil || strings.TrimSpace(m.Name) == "" {
			return nil, ErrInvalidName
		}
	}

	now := s.clock.Now()
	team := &models.Team{
		ID:        s.uuid.NewUUID(),
		Name:      name,
		Config:    input.Config,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.teamRepo.SaveTeam(ctx, &teamRepo.SaveTeamInput{
		Team: team,
	}); err != nil {
		return nil, fmt.Errorf("failed to save team: %w", err)
	}

	members := make([]*models.Member, 0, len(input.Members))
	for i, m := range input.Members {
		member := s.newMember(team.ID, m, i+1)
		if err := s.saveMember(ctx, member); err != nil {
			return nil, err
		}
		members = append(members, member)
	}

	s.log.WithFields(logrus.Fields{
		"team_id": team.ID,
		"members": len(members),
	}).Info("team created")

	return &CreateTeamOutput{
		Team:    team,
		Members: members,
	}, nil
}

func (s *service) newMember(teamID string, m *NewMember, order int) *models.Member {
	now := s.clock.Now()
	return &models.Member{
		ID:         s.uuid.NewUUID(),
		TeamID:     teamID,
		Name:       strings.TrimSpace(m.Name),
		Avatar:     m.Avatar,
		Title:      m.Title,
		ExternalID: m.ExternalID,
		ListOrder:  order,
		IsActive:   true,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// GetTeam returns a team with its active members
func (s *service) GetTeam(ctx context.Context, input *GetTeamInput) (*GetTeamOutput, error) {
	if input == nil {
		return nil, ErrTeamNotFound
	}

	team, err := s.getTeam(ctx, input.TeamID)
	if err != nil {
		return nil, err
	}

	members, err := s.listMembers(ctx, team.ID, true)
	if err != nil {
		return nil, err
	}

	return &GetTeamOutput{
		Team:    team,
		Members: members,
	}, nil
}

// UpdateTeam renames a team or replaces its standup settings. Running
// sessions keep the settings they captured at creation.
func (s *service) UpdateTeam(ctx context.Context, input *UpdateTeamInput) (*UpdateTeamOutput, error) {
	if input == nil || input.TeamID == "" {
		return nil, ErrTeamNotFound
	}

	if input.Config != nil {
		if err := validateConfig(*input.Config); err != nil {
			return nil, err
		}
	}

	name := strings.TrimSpace(input.Name)
	now := s.clock.Now()

	team, err := s.teamRepo.UpdateTeam(ctx, &teamRepo.UpdateTeamInput{
		TeamID: input.TeamID,
		Update: func(team *models.Team) error {
			if name != "" {
				team.Name = name
			}
			if input.Config != nil {
				team.Config = *input.Config
			}
			team.UpdatedAt = now
			return nil
		},
	})
	if err != nil {
		if errors.Is(err, teamRepo.ErrTeamNotFound) {
			return nil, ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to update team: %w", err)
	}

	s.log.WithField("team_id", team.ID).Info("team updated")

	return &UpdateTeamOutput{
		Team: team,
	}, nil
}

// AddMember appends a member to the team listing. A member with the same
// external account is returned instead, reactivated if needed.
func (s *service) AddMember(ctx context.Context, input *AddMemberInput) (*AddMemberOutput, error) {
	if input == nil || input.Member == nil || strings.TrimSpace(input.Member.Name) == "" {
		return nil, ErrInvalidName
	}

	team, err := s.getTeam(ctx, input.TeamID)
	if err != nil {
		return nil, err
	}

	members, err := s.listMembers(ctx, team.ID, false)
	if err != nil {
		return nil, err
	}

	order := 0
	for _, existing := range members {
		order = max(order, existing.ListOrder)

		if input.Member.ExternalID == "" || existing.ExternalID != input.Member.ExternalID {
			continue
		}
		if existing.IsActive {
			return &AddMemberOutput{Member: existing}, nil
		}

		now := s.clock.Now()
		member, err := s.memberRepo.UpdateMember(ctx, &memberRepo.UpdateMemberInput{
			MemberID: existing.ID,
			Update: func(member *models.Member) error {
				member.IsActive = true
				member.UpdatedAt = now
				return nil
			},
		})
		if err != nil {
			return nil, fmt.Errorf("failed to reactivate member: %w", err)
		}

		s.log.WithFields(logrus.Fields{
			"team_id":   team.ID,
			"member_id": member.ID,
		}).Info("member reactivated")

		return &AddMemberOutput{
			Member:      member,
			Reactivated: true,
		}, nil
	}

	member := s.newMember(team.ID, input.Member, order+1)
	if err := s.saveMember(ctx, member); err != nil {
		return nil, err
	}

	s.log.WithFields(logrus.Fields{
		"team_id":   team.ID,
		"member_id": member.ID,
	}).Info("member added")

	return &AddMemberOutput{
		Member:  member,
		Created: true,
	}, nil
}

// DeactivateMember soft-deletes a member; its statistics and past turns stay
func (s *service) DeactivateMember(ctx context.Context, input *DeactivateMemberInput) error {
	if input == nil || input.MemberID == "" {
		return ErrMemberNotFound
	}

	member, err := s.memberRepo.GetMember(ctx, &memberRepo.GetMemberInput{
		MemberID: input.MemberID,
	})
	if err != nil {
		if errors.Is(err, memberRepo.ErrMemberNotFound) {
			return ErrMemberNotFound
		}
		return fmt.Errorf("failed to get member: %w", err)
	}
	if member.TeamID != input.TeamID {
		return ErrMemberNotFound
	}

	if err := s.memberRepo.DeactivateMember(ctx, &memberRepo.DeactivateMemberInput{
		MemberID: member.ID,
	}); err != nil {
		return fmt.Errorf("failed to deactivate member: %w", err)
	}

	s.log.WithFields(logrus.Fields{
		"team_id":   member.TeamID,
		"member_id": member.ID,
	}).Info("member deactivated")

	return nil
}

// ListMembers returns the members of a team in listing order
func (s *service) ListMembers(ctx context.Context, input *ListMembersInput) (*ListMembersOutput, error) {
	if input == nil {
		return nil, ErrTeamNotFound
	}

	team, err := s.getTeam(ctx, input.TeamID)
	if err != nil {
		return nil, err
	}

	members, err := s.listMembers(ctx, team.ID, input.ActiveOnly)
	if err != nil {
		return nil, err
	}

	return &ListMembersOutput{
		Members: members,
	}, nil
}
