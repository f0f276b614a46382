package member

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/KirkDiggler/standup/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	memberKeyPrefix      = "member:"
	teamMembersKeyPrefix = "team_members:"
)

const maxUpdateRetries = 100

var (
	// ErrMemberNotFound is returned when a member is not found
	ErrMemberNotFound = errors.New("member not found")

	// ErrUpdateConflict is returned when a member keeps changing under an update
	ErrUpdateConflict = errors.New("member update conflict")
)

// Config holds configuration for the Redis member repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed member repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

// Key is the Redis key holding a member record
func Key(id string) string {
	return memberKeyPrefix + id
}

func teamMembersKey(teamID string) string {
	return teamMembersKeyPrefix + teamID
}

// SaveMember persists a member to Redis
func (r *redisRepository) SaveMember(ctx context.Context, input *SaveMemberInput) error {
	if input == nil || input.Member == nil {
		return errors.New("input and member cannot be nil")
	}

	member := input.Member

	if member.ID == "" {
		return errors.New("member ID cannot be empty")
	}

	if member.TeamID == "" {
		return errors.New("member team ID cannot be empty")
	}

	pipe := r.client.TxPipeline()
	if err := StageSave(ctx, pipe, member); err != nil {
		return err
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save member: %w", err)
	}

	return nil
}

// StageSave queues the writes that persist a member onto pipe, so callers can
// commit it together with other records
func StageSave(ctx context.Context, pipe redis.Pipeliner, member *models.Member) error {
	memberJSON, err := json.Marshal(member)
	if err != nil {
		return fmt.Errorf("failed to marshal member: %w", err)
	}

	pipe.Set(ctx, Key(member.ID), memberJSON, 0)
	pipe.ZAdd(ctx, teamMembersKey(member.TeamID), redis.Z{
		Score:  float64(member.ListOrder),
		Member: member.ID,
	})

	return nil
}

// GetMember retrieves a member by ID from Redis
func (r *redisRepository) GetMember(ctx context.Context, input *GetMemberInput) (*models.Member, error) {
	if input == nil || input.MemberID == "" {
		return nil, errors.New("input and member ID cannot be empty")
	}

	return Load(ctx, r.client, input.MemberID)
}

// Load reads a member through c, which may be a client or a WATCH transaction
func Load(ctx context.Context, c redis.Cmdable, memberID string) (*models.Member, error) {
	memberJSON, err := c.Get(ctx, Key(memberID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrMemberNotFound
		}
		return nil, fmt.Errorf("failed to get member: %w", err)
	}

	var member models.Member
	if err := json.Unmarshal([]byte(memberJSON), &member); err != nil {
		return nil, fmt.Errorf("failed to unmarshal member: %w", err)
	}

	return &member, nil
}

// ListMembers retrieves the members of a team ordered by ListOrder, then ID
func (r *redisRepository) ListMembers(ctx context.Context, input *ListMembersInput) (*ListMembersOutput, error) {
	if input == nil || input.TeamID == "" {
		return nil, errors.New("input and team ID cannot be empty")
	}

	memberIDs, err := r.client.ZRange(ctx, teamMembersKey(input.TeamID), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get team members: %w", err)
	}

	if len(memberIDs) == 0 {
		return &ListMembersOutput{
			Members: []*models.Member{},
		}, nil
	}

	keys := make([]string, len(memberIDs))
	for i, id := range memberIDs {
		keys[i] = Key(id)
	}

	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get members: %w", err)
	}

	members := make([]*models.Member, 0, len(values))
	for _, value := range values {
		raw, ok := value.(string)
		if !ok {
			// Member record is gone but the index still lists it
			continue
		}

		var member models.Member
		if err := json.Unmarshal([]byte(raw), &member); err != nil {
			return nil, fmt.Errorf("failed to unmarshal member: %w", err)
		}

		if input.ActiveOnly && !member.IsActive {
			continue
		}

		members = append(members, &member)
	}

	return &ListMembersOutput{
		Members: members,
	}, nil
}

// DeactivateMember marks a member inactive; the record and its history stay
func (r *redisRepository) DeactivateMember(ctx context.Context, input *DeactivateMemberInput) error {
	if input == nil || input.MemberID == "" {
		return errors.New("input and member ID cannot be empty")
	}

	_, err := r.UpdateMember(ctx, &UpdateMemberInput{
		MemberID: input.MemberID,
		Update: func(member *models.Member) error {
			member.IsActive = false
			return nil
		},
	})
	return err
}

// UpdateMember applies Update to the stored member under WATCH so that a
// concurrent statistics commit is never overwritten
func (r *redisRepository) UpdateMember(ctx context.Context, input *UpdateMemberInput) (*models.Member, error) {
	if input == nil || input.MemberID == "" {
		return nil, errors.New("input and member ID cannot be empty")
	}

	if input.Update == nil {
		return nil, errors.New("update cannot be nil")
	}

	var updated *models.Member
	txf := func(tx *redis.Tx) error {
		member, err := Load(ctx, tx, input.MemberID)
		if err != nil {
			return err
		}

		teamID := member.TeamID
		if err := input.Update(member); err != nil {
			return err
		}
		member.TeamID = teamID

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			return StageSave(ctx, pipe, member)
		})
		if err != nil {
			return err
		}

		updated = member
		return nil
	}

	for i := 0; i < maxUpdateRetries; i++ {
		err := r.client.Watch(ctx, txf, Key(input.MemberID))
		if err == nil {
			return updated, nil
		}
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		return nil, err
	}

	return nil, ErrUpdateConflict
}
