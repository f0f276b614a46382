package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/KirkDiggler/standup/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	sessionKeyPrefix      = "session:"
	teamSessionsKeyPrefix = "team_sessions:"
	activeKeyPrefix       = "team_active_session:"
)

var allStatuses = []models.SessionStatus{
	models.SessionStatusPlanned,
	models.SessionStatusActive,
	models.SessionStatusCompleted,
	models.SessionStatusCancelled,
}

// ErrSessionNotFound is returned when a session is not found
var ErrSessionNotFound = errors.New("session not found")

// Config holds configuration for the Redis session repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed session repository
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

// Key is the Redis key holding a session record
func Key(id string) string {
	return sessionKeyPrefix + id
}

func teamSessionsKey(teamID string, status models.SessionStatus) string {
	return fmt.Sprintf("%s%s:%s", teamSessionsKeyPrefix, teamID, status)
}

func activeKey(teamID string) string {
	return activeKeyPrefix + teamID
}

// indexTime is the time a session is ranked by inside its status index
func indexTime(s *models.Session) time.Time {
	if s.Status == models.SessionStatusCompleted && !s.CompletedAt.IsZero() {
		return s.CompletedAt
	}
	return s.CreatedAt
}

// SaveSession persists a session to Redis
func (r *redisRepository) SaveSession(ctx context.Context, input *SaveSessionInput) error {
	if input == nil || input.Session == nil {
		return errors.New("input and session cannot be nil")
	}

	session := input.Session

	if session.ID == "" || session.TeamID == "" {
		return errors.New("session ID and team ID cannot be empty")
	}

	pipe := r.client.TxPipeline()
	if err := StageSave(ctx, pipe, session); err != nil {
		return err
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}

	return nil
}

// StageSave queues the writes that persist a session and move it into its
// status index onto pipe
func StageSave(ctx context.Context, pipe redis.Pipeliner, session *models.Session) error {
	sessionJSON, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	pipe.Set(ctx, Key(session.ID), sessionJSON, 0)

	// A session lives in exactly one status index
	for _, status := range allStatuses {
		key := teamSessionsKey(session.TeamID, status)
		if status == session.Status {
			pipe.ZAdd(ctx, key, redis.Z{
				Score:  float64(indexTime(session).Unix()),
				Member: session.ID,
			})
			continue
		}
		pipe.ZRem(ctx, key, session.ID)
	}

	return nil
}

// GetSession retrieves a session by ID from Redis
func (r *redisRepository) GetSession(ctx context.Context, input *GetSessionInput) (*models.Session, error) {
	if input == nil || input.SessionID == "" {
		return nil, errors.New("input and session ID cannot be empty")
	}

	return Load(ctx, r.client, input.SessionID)
}

// Load reads a session through c, which may be a client or a WATCH transaction
func Load(ctx context.Context, c redis.Cmdable, sessionID string) (*models.Session, error) {
	sessionJSON, err := c.Get(ctx, Key(sessionID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	var session models.Session
	if err := json.Unmarshal([]byte(sessionJSON), &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}

	return &session, nil
}

// DeleteSession removes a session from Redis
func (r *redisRepository) DeleteSession(ctx context.Context, input *DeleteSessionInput) error {
	if input == nil || input.SessionID == "" {
		return errors.New("input and session ID cannot be empty")
	}

	session, err := r.GetSession(ctx, &GetSessionInput{
		SessionID: input.SessionID,
	})
	if err != nil {
		return err
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, Key(session.ID))
	for _, status := range allStatuses {
		pipe.ZRem(ctx, teamSessionsKey(session.TeamID, status), session.ID)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}

	return nil
}

// ListSessions retrieves sessions of a team by status and time window
func (r *redisRepository) ListSessions(ctx context.Context, input *ListSessionsInput) (*ListSessionsOutput, error) {
	if input == nil || input.TeamID == "" || input.Status == "" {
		return nil, errors.New("input, team ID and status cannot be empty")
	}

	rangeBy := &redis.ZRangeBy{
		Min: "-inf",
		Max: "+inf",
	}
	if !input.From.IsZero() {
		rangeBy.Min = strconv.FormatInt(input.From.Unix(), 10)
	}
	if !input.To.IsZero() {
		rangeBy.Max = strconv.FormatInt(input.To.Unix(), 10)
	}

	sessionIDs, err := r.client.ZRangeByScore(ctx, teamSessionsKey(input.TeamID, input.Status), rangeBy).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get session IDs: %w", err)
	}

	if len(sessionIDs) == 0 {
		return &ListSessionsOutput{
			Sessions: []*models.Session{},
		}, nil
	}

	keys := make([]string, len(sessionIDs))
	for i, id := range sessionIDs {
		keys[i] = Key(id)
	}

	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get sessions: %w", err)
	}

	sessions := make([]*models.Session, 0, len(values))
	for _, value := range values {
		raw, ok := value.(string)
		if !ok {
			continue
		}

		var session models.Session
		if err := json.Unmarshal([]byte(raw), &session); err != nil {
			return nil, fmt.Errorf("failed to unmarshal session: %w", err)
		}
		sessions = append(sessions, &session)
	}

	return &ListSessionsOutput{
		Sessions: sessions,
	}, nil
}

// ClaimActive sets the team's active marker only if no other session holds it
func (r *redisRepository) ClaimActive(ctx context.Context, input *ClaimActiveInput) (*ClaimActiveOutput, error) {
	if input == nil || input.TeamID == "" || input.SessionID == "" {
		return nil, errors.New("input, team ID and session ID cannot be empty")
	}

	key := activeKey(input.TeamID)

	ok, err := r.client.SetNX(ctx, key, input.SessionID, 0).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to claim active session: %w", err)
	}
	if ok {
		return &ClaimActiveOutput{Claimed: true, ActiveSessionID: input.SessionID}, nil
	}

	holder, err := r.client.Get(ctx, key).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("failed to get active session: %w", err)
	}

	return &ClaimActiveOutput{
		Claimed:         holder == input.SessionID,
		ActiveSessionID: holder,
	}, nil
}

// GetActiveSessionID returns the session currently holding the team's claim
func (r *redisRepository) GetActiveSessionID(ctx context.Context, input *GetActiveSessionIDInput) (string, error) {
	if input == nil || input.TeamID == "" {
		return "", errors.New("input and team ID cannot be empty")
	}

	holder, err := r.client.Get(ctx, activeKey(input.TeamID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", nil
		}
		return "", fmt.Errorf("failed to get active session: %w", err)
	}

	return holder, nil
}

// ReleaseActive clears the claim only when it is still held by the session
func (r *redisRepository) ReleaseActive(ctx context.Context, input *ReleaseActiveInput) error {
	if input == nil || input.TeamID == "" || input.SessionID == "" {
		return errors.New("input, team ID and session ID cannot be empty")
	}

	key := activeKey(input.TeamID)

	err := r.client.Watch(ctx, func(tx *redis.Tx) error {
		holder, err := tx.Get(ctx, key).Result()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				return nil
			}
			return err
		}
		if holder != input.SessionID {
			return nil
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Del(ctx, key)
			return nil
		})
		return err
	}, key)
	if err != nil {
		return fmt.Errorf("failed to release active session: %w", err)
	}

	return nil
}
