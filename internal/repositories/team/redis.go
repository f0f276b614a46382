package team

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
	teamKeyPrefix = "team:"
)

const maxUpdateRetries = 100

var (
	// ErrTeamNotFound is returned when a team is not found
	ErrTeamNotFound = errors.New("team not found")

	// ErrUpdateConflict is returned when a team keeps changing under an update
	ErrUpdateConflict = errors.New("team update conflict")
)

// Config holds configuration for the Redis team repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed team repository
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

// Key is the Redis key holding a team record
func Key(id string) string {
	return teamKeyPrefix + id
}

// SaveTeam persists a team to Redis
func (r *redisRepository) SaveTeam(ctx context.Context, input *SaveTeamInput) error {
	if input == nil || input.Team == nil {
		return errors.New("input and team cannot be nil")
	}

	if input.Team.ID == "" {
		return errors.New("team ID cannot be empty")
	}

	pipe := r.client.TxPipeline()
	if err := StageSave(ctx, pipe, input.Team); err != nil {
		return err
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save team: %w", err)
	}

	return nil
}

// StageSave queues the write that persists a team onto pipe
func StageSave(ctx context.Context, pipe redis.Pipeliner, team *models.Team) error {
	teamJSON, err := json.Marshal(team)
	if err != nil {
		return fmt.Errorf("failed to marshal team: %w", err)
	}

	pipe.Set(ctx, Key(team.ID), teamJSON, 0)
	return nil
}

// GetTeam retrieves a team by ID from Redis
func (r *redisRepository) GetTeam(ctx context.Context, input *GetTeamInput) (*models.Team, error) {
	if input == nil || input.TeamID == "" {
		return nil, errors.New("input and team ID cannot be empty")
	}

	return Load(ctx, r.client, input.TeamID)
}

// Load reads a team through c, which may be a client or a WATCH transaction
func Load(ctx context.Context, c redis.Cmdable, teamID string) (*models.Team, error) {
	teamJSON, err := c.Get(ctx, Key(teamID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}

	var team models.Team
	if err := json.Unmarshal([]byte(teamJSON), &team); err != nil {
		return nil, fmt.Errorf("failed to unmarshal team: %w", err)
	}

	return &team, nil
}

// UpdateTeam applies Update to the stored team under WATCH so that a
// concurrent statistics commit is never overwritten
func (r *redisRepository) UpdateTeam(ctx context.Context, input *UpdateTeamInput) (*models.Team, error) {
	if input == nil || input.TeamID == "" {
		return nil, errors.New("input and team ID cannot be empty")
	}

	if input.Update == nil {
		return nil, errors.New("update cannot be nil")
	}

	var updated *models.Team
	txf := func(tx *redis.Tx) error {
		team, err := Load(ctx, tx, input.TeamID)
		if err != nil {
			return err
		}

		if err := input.Update(team); err != nil {
			return err
		}
		team.ID = input.TeamID

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			return StageSave(ctx, pipe, team)
		})
		if err != nil {
			return err
		}

		updated = team
		return nil
	}

	for i := 0; i < maxUpdateRetries; i++ {
		err := r.client.Watch(ctx, txf, Key(input.TeamID))
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
