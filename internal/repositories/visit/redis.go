package visit

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"

	"github.com/pinnacle-pathways/matchtrack/internal/models"
)

const (
	// Key prefixes for Redis
	visitKeyPrefix = "visit:"
	pageCountsKey  = "pageviews_by_page"
	dayCountsKey   = "pageviews_by_day"
)

// ErrVisitNotFound is returned when a visit is not found
var ErrVisitNotFound = errors.New("visit not found")

// Config holds configuration for the Redis visit repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed visit repository
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

// SaveVisit persists a visit to Redis
func (r *redisRepository) SaveVisit(ctx context.Context, input *SaveVisitInput) error {
	if input == nil || input.Visit == nil {
		return errors.New("input and visit cannot be nil")
	}

	visitJSON, err := json.Marshal(input.Visit)
	if err != nil {
		return fmt.Errorf("failed to marshal visit: %w", err)
	}

	visitKey := fmt.Sprintf("%s%s", visitKeyPrefix, input.Visit.ID)
	if err := r.client.Set(ctx, visitKey, visitJSON, 0).Err(); err != nil {
		return fmt.Errorf("failed to save visit: %w", err)
	}

	return nil
}

// GetVisit retrieves a visit by ID from Redis
func (r *redisRepository) GetVisit(ctx context.Context, input *GetVisitInput) (*models.Visit, error) {
	if input == nil || input.VisitID == "" {
		return nil, errors.New("input and visit ID cannot be empty")
	}

	visitKey := fmt.Sprintf("%s%s", visitKeyPrefix, input.VisitID)
	visitJSON, err := r.client.Get(ctx, visitKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrVisitNotFound
		}
		return nil, fmt.Errorf("failed to get visit: %w", err)
	}

	var v models.Visit
	if err := json.Unmarshal([]byte(visitJSON), &v); err != nil {
		return nil, fmt.Errorf("failed to unmarshal visit: %w", err)
	}

	return &v, nil
}

// RecordPageView increments the per-page and per-day counters
func (r *redisRepository) RecordPageView(ctx context.Context, input *RecordPageViewInput) error {
	if input == nil || input.Page == "" || input.Day == "" {
		return errors.New("input, page and day cannot be empty")
	}

	pipe := r.client.Pipeline()
	pipe.HIncrBy(ctx, pageCountsKey, input.Page, 1)
	pipe.HIncrBy(ctx, dayCountsKey, input.Day, 1)

	_, err := pipe.Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to record page view: %w", err)
	}

	return nil
}

// GetPageCounts returns total views per page
func (r *redisRepository) GetPageCounts(ctx context.Context, input *GetPageCountsInput) (*GetPageCountsOutput, error) {
	counts, err := r.readCounts(ctx, pageCountsKey)
	if err != nil {
		return nil, err
	}

	return &GetPageCountsOutput{Counts: counts}, nil
}

// GetDayCounts returns total views per day
func (r *redisRepository) GetDayCounts(ctx context.Context, input *GetDayCountsInput) (*GetDayCountsOutput, error) {
	counts, err := r.readCounts(ctx, dayCountsKey)
	if err != nil {
		return nil, err
	}

	return &GetDayCountsOutput{Counts: counts}, nil
}

func (r *redisRepository) readCounts(ctx context.Context, key string) (map[string]int64, error) {
	raw, err := r.client.HGetAll(ctx, key).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get counts: %w", err)
	}

	counts := make(map[string]int64, len(raw))
	for field, value := range raw {
		n, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("failed to parse count for %s: %w", field, err)
		}
		counts[field] = n
	}

	return counts, nil
}
