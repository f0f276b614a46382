package ledger

import (
	"context"
	"errors"
	"fmt"

	"github.com/KirkDiggler/standup/internal/models"
	memberRepo "github.com/KirkDiggler/standup/internal/repositories/member"
	sessionRepo "github.com/KirkDiggler/standup/internal/repositories/session"
	teamRepo "github.com/KirkDiggler/standup/internal/repositories/team"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	committedKeyPrefix = "team_committed_sessions:"

	maxCommitRetries = 100
)

// ErrSessionClosed is returned when the stored session already ended without
// being counted, e.g. it was cancelled
var ErrSessionClosed = errors.New("session already closed")

// ErrCommitConflict is returned when a commit keeps losing to concurrent writers
var ErrCommitConflict = errors.New("session commit conflicted too many times")

// Config holds configuration for the Redis ledger repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed ledger repository
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

func committedKey(teamID string) string {
	return committedKeyPrefix + teamID
}

// CommitSession watches the session, the team, every participant and the
// team's committed set, then writes them all in one MULTI. A concurrent write
// to any of them aborts the transaction and the whole commit is retried from a
// fresh read.
func (r *redisRepository) CommitSession(ctx context.Context, input *CommitSessionInput) (*CommitSessionOutput, error) {
	if input == nil || input.Session == nil {
		return nil, errors.New("input and session cannot be nil")
	}

	session := input.Session
	if session.ID == "" || session.TeamID == "" {
		return nil, errors.New("session ID and team ID cannot be empty")
	}

	if input.ApplyMember == nil || input.ApplyTeam == nil {
		return nil, errors.New("apply functions cannot be nil")
	}

	memberIDs := participants(session)

	keys := make([]string, 0, len(memberIDs)+3)
	keys = append(keys,
		sessionRepo.Key(session.ID),
		teamRepo.Key(session.TeamID),
		committedKey(session.TeamID),
	)
	for _, id := range memberIDs {
		keys = append(keys, memberRepo.Key(id))
	}

	var output *CommitSessionOutput
	txf := func(tx *redis.Tx) error {
		output = nil

		committed, err := tx.SIsMember(ctx, committedKey(session.TeamID), session.ID).Result()
		if err != nil {
			return fmt.Errorf("failed to check committed sessions: %w", err)
		}

		team, err := teamRepo.Load(ctx, tx, session.TeamID)
		if err != nil {
			return err
		}

		members, err := loadMembers(ctx, tx, memberIDs)
		if err != nil {
			return err
		}

		if committed {
			output = &CommitSessionOutput{
				Members:   byTurn(session, members),
				Team:      team,
				Committed: false,
			}
			return nil
		}

		stored, err := sessionRepo.Load(ctx, tx, session.ID)
		switch {
		case err == nil:
			if stored.Status.IsTerminal() {
				return ErrSessionClosed
			}
		case !errors.Is(err, sessionRepo.ErrSessionNotFound):
			return err
		}

		for _, turn := range session.Turns {
			member, ok := members[turn.MemberID]
			if !ok {
				continue
			}
			if err := input.ApplyMember(member, turn); err != nil {
				return err
			}
		}

		if err := input.ApplyTeam(team); err != nil {
			return err
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			for _, id := range memberIDs {
				member, ok := members[id]
				if !ok {
					continue
				}
				if err := memberRepo.StageSave(ctx, pipe, member); err != nil {
					return err
				}
			}

			if err := teamRepo.StageSave(ctx, pipe, team); err != nil {
				return err
			}

			if err := sessionRepo.StageSave(ctx, pipe, session); err != nil {
				return err
			}

			pipe.SAdd(ctx, committedKey(session.TeamID), session.ID)
			return nil
		})
		if err != nil {
			return err
		}

		output = &CommitSessionOutput{
			Members:   byTurn(session, members),
			Team:      team,
			Committed: true,
		}
		return nil
	}

	for i := 0; i < maxCommitRetries; i++ {
		err := r.client.Watch(ctx, txf, keys...)
		if err == nil {
			return output, nil
		}
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		return nil, err
	}

	return nil, ErrCommitConflict
}

// participants lists each turn's member once, in turn order
func participants(session *models.Session) []string {
	seen := make(map[string]bool, len(session.Turns))
	ids := make([]string, 0, len(session.Turns))
	for _, turn := range session.Turns {
		if seen[turn.MemberID] {
			continue
		}
		seen[turn.MemberID] = true
		ids = append(ids, turn.MemberID)
	}
	return ids
}

// loadMembers skips members that no longer exist
func loadMembers(ctx context.Context, c redis.Cmdable, ids []string) (map[string]*models.Member, error) {
	members := make(map[string]*models.Member, len(ids))
	for _, id := range ids {
		member, err := memberRepo.Load(ctx, c, id)
		if err != nil {
			if errors.Is(err, memberRepo.ErrMemberNotFound) {
				continue
			}
			return nil, fmt.Errorf("failed to load member %s: %w", id, err)
		}
		members[id] = member
	}
	return members, nil
}

func byTurn(session *models.Session, members map[string]*models.Member) []*models.Member {
	out := make([]*models.Member, len(session.Turns))
	for i, turn := range session.Turns {
		out[i] = members[turn.MemberID]
	}
	return out
}
