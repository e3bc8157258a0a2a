package actionlog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/pinnacle-pathways/matchtrack/internal/models"
)

const (
	actionsKey = "actions"

	// defaultLimit caps a listing when no limit is given
	defaultLimit = 50

	// maxEntries bounds the trail; older entries are trimmed away
	maxEntries = 5000
)

// Config holds configuration for the Redis action log repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed action log repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

// AppendAction records one audit entry at the head of the trail
func (r *redisRepository) AppendAction(ctx context.Context, input *AppendActionInput) error {
	if input == nil || input.Entry == nil {
		return errors.New("input and entry cannot be nil")
	}

	entryJSON, err := json.Marshal(input.Entry)
	if err != nil {
		return fmt.Errorf("failed to marshal action entry: %w", err)
	}

	pipe := r.client.Pipeline()
	pipe.LPush(ctx, actionsKey, entryJSON)
	pipe.LTrim(ctx, actionsKey, 0, maxEntries-1)

	_, err = pipe.Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to append action: %w", err)
	}

	return nil
}

// ListActions retrieves recent entries, newest first
func (r *redisRepository) ListActions(ctx context.Context, input *ListActionsInput) (*ListActionsOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	limit := input.Limit
	if limit <= 0 {
		limit = defaultLimit
	}

	raw, err := r.client.LRange(ctx, actionsKey, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list actions: %w", err)
	}

	entries := make([]*models.ActionEntry, 0, len(raw))
	for _, item := range raw {
		var entry models.ActionEntry
		if err := json.Unmarshal([]byte(item), &entry); err != nil {
			return nil, fmt.Errorf("failed to unmarshal action entry: %w", err)
		}
		entries = append(entries, &entry)
	}

	return &ListActionsOutput{
		Entries: entries,
	}, nil
}
