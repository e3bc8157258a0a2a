package sport

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/pinnacle-pathways/matchtrack/internal/models"
)

const (
	// Key prefixes for Redis
	sportKeyPrefix = "sport:"
	allSportsKey   = "sports"
)

// ErrSportNotFound is returned when a sport is not found
var ErrSportNotFound = errors.New("sport not found")

// Config holds configuration for the Redis sport repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed sport repository
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

// SaveSport persists a sport to Redis
func (r *redisRepository) SaveSport(ctx context.Context, input *SaveSportInput) error {
	if input == nil || input.Sport == nil {
		return errors.New("input and sport cannot be nil")
	}

	sportJSON, err := json.Marshal(input.Sport)
	if err != nil {
		return fmt.Errorf("failed to marshal sport: %w", err)
	}

	pipe := r.client.Pipeline()

	sportKey := fmt.Sprintf("%s%s", sportKeyPrefix, input.Sport.ID)
	pipe.Set(ctx, sportKey, sportJSON, 0)
	pipe.SAdd(ctx, allSportsKey, input.Sport.ID)

	_, err = pipe.Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to save sport: %w", err)
	}

	return nil
}

// GetSport retrieves a sport by ID from Redis
func (r *redisRepository) GetSport(ctx context.Context, input *GetSportInput) (*models.Sport, error) {
	if input == nil || input.SportID == "" {
		return nil, errors.New("input and sport ID cannot be empty")
	}

	sportKey := fmt.Sprintf("%s%s", sportKeyPrefix, input.SportID)
	sportJSON, err := r.client.Get(ctx, sportKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrSportNotFound
		}
		return nil, fmt.Errorf("failed to get sport: %w", err)
	}

	var sp models.Sport
	if err := json.Unmarshal([]byte(sportJSON), &sp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal sport: %w", err)
	}

	return &sp, nil
}

// ListSports retrieves all sports from Redis
func (r *redisRepository) ListSports(ctx context.Context, input *ListSportsInput) (*ListSportsOutput, error) {
	sportIDs, err := r.client.SMembers(ctx, allSportsKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get sport IDs: %w", err)
	}

	sports := make([]*models.Sport, 0, len(sportIDs))
	for _, sportID := range sportIDs {
		sp, err := r.GetSport(ctx, &GetSportInput{SportID: sportID})
		if err != nil {
			// Sport was deleted between getting the IDs and fetching it
			if errors.Is(err, ErrSportNotFound) {
				continue
			}
			return nil, err
		}
		sports = append(sports, sp)
	}

	return &ListSportsOutput{
		Sports: sports,
	}, nil
}
