package match

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/pinnacle-pathways/matchtrack/internal/models"
)

const (
	// Key prefixes for Redis
	matchKeyPrefix = "match:"
	sportIndex     = "sport:matches:" // Index of match IDs per sport
	matchesByDate  = "matches_by_date"
)

// ErrMatchNotFound is returned when a match is not found
var ErrMatchNotFound = errors.New("match not found")

// Config holds configuration for the Redis match repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed match repository
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

// SaveMatch persists a match document to Redis
func (r *redisRepository) SaveMatch(ctx context.Context, input *SaveMatchInput) error {
	if input == nil || input.Match == nil {
		return errors.New("input and match cannot be nil")
	}

	// Marshal the match to JSON
	matchJSON, err := json.Marshal(input.Match)
	if err != nil {
		return fmt.Errorf("failed to marshal match: %w", err)
	}

	// Create a Redis transaction
	pipe := r.client.Pipeline()

	// Save the document
	matchKey := fmt.Sprintf("%s%s", matchKeyPrefix, input.Match.ID)
	pipe.Set(ctx, matchKey, matchJSON, 0)

	// Index by match date
	pipe.ZAdd(ctx, matchesByDate, redis.Z{
		Score:  float64(input.Match.MatchDate.UnixNano()),
		Member: input.Match.ID,
	})

	// Index by sport
	if input.Match.SportID != "" {
		sportIndexKey := fmt.Sprintf("%s%s", sportIndex, input.Match.SportID)
		pipe.SAdd(ctx, sportIndexKey, input.Match.ID)
	}

	// Execute the transaction
	_, err = pipe.Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to save match: %w", err)
	}

	return nil
}

// GetMatch retrieves a match by ID from Redis
func (r *redisRepository) GetMatch(ctx context.Context, input *GetMatchInput) (*models.Match, error) {
	if input == nil || input.MatchID == "" {
		return nil, errors.New("input and match ID cannot be empty")
	}

	matchKey := fmt.Sprintf("%s%s", matchKeyPrefix, input.MatchID)
	matchJSON, err := r.client.Get(ctx, matchKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrMatchNotFound
		}
		return nil, fmt.Errorf("failed to get match: %w", err)
	}

	var m models.Match
	if err := json.Unmarshal([]byte(matchJSON), &m); err != nil {
		return nil, fmt.Errorf("failed to unmarshal match: %w", err)
	}

	return &m, nil
}

// ListMatches retrieves all matches ordered by match date from Redis.
// If a sport ID is given, only that sport's matches are returned.
func (r *redisRepository) ListMatches(ctx context.Context, input *ListMatchesInput) (*ListMatchesOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	// Get the ordered match IDs
	matchIDs, err := r.client.ZRange(ctx, matchesByDate, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get match IDs: %w", err)
	}

	if len(matchIDs) == 0 {
		return &ListMatchesOutput{
			Matches: []*models.Match{},
		}, nil
	}

	// When filtering by sport, keep only the IDs in the sport index
	var inSport map[string]bool
	if input.SportID != "" {
		sportIndexKey := fmt.Sprintf("%s%s", sportIndex, input.SportID)
		ids, err := r.client.SMembers(ctx, sportIndexKey).Result()
		if err != nil {
			return nil, fmt.Errorf("failed to get sport index: %w", err)
		}
		inSport = make(map[string]bool, len(ids))
		for _, id := range ids {
			inSport[id] = true
		}
	}

	matches := make([]*models.Match, 0, len(matchIDs))
	for _, matchID := range matchIDs {
		if inSport != nil && !inSport[matchID] {
			continue
		}
		m, err := r.GetMatch(ctx, &GetMatchInput{MatchID: matchID})
		if err != nil {
			// Match was deleted between getting the IDs and fetching it
			if errors.Is(err, ErrMatchNotFound) {
				continue
			}
			return nil, err
		}
		matches = append(matches, m)
	}

	return &ListMatchesOutput{
		Matches: matches,
	}, nil
}

// ReplaceMatchFields overwrites the given top-level fields of a match
// document. The stored document is read, the named fields are replaced
// in full (no deep merge of nested arrays), the update timestamp is
// bumped, and the whole document is written back in one SET. Concurrent
// writers race; the last completed write wins.
func (r *redisRepository) ReplaceMatchFields(ctx context.Context, input *ReplaceMatchFieldsInput) (*models.Match, error) {
	if input == nil || input.MatchID == "" {
		return nil, errors.New("input and match ID cannot be empty")
	}

	if input.Fields == nil {
		return nil, errors.New("fields cannot be nil")
	}

	m, err := r.GetMatch(ctx, &GetMatchInput{MatchID: input.MatchID})
	if err != nil {
		return nil, err
	}

	if input.Fields.Name != nil {
		m.Name = *input.Fields.Name
	}
	if input.Fields.MatchDate != nil {
		m.MatchDate = *input.Fields.MatchDate
	}
	if input.Fields.VideoURL != nil {
		m.VideoURL = *input.Fields.VideoURL
	}
	if input.Fields.Players != nil {
		m.Players = *input.Fields.Players
	}
	if input.Fields.Sessions != nil {
		m.Sessions = *input.Fields.Sessions
	}
	m.UpdatedAt = time.Now()

	if err := r.SaveMatch(ctx, &SaveMatchInput{Match: m}); err != nil {
		return nil, err
	}

	return m, nil
}

// DeleteMatch removes a match from Redis
func (r *redisRepository) DeleteMatch(ctx context.Context, input *DeleteMatchInput) error {
	if input == nil || input.MatchID == "" {
		return errors.New("input and match ID cannot be empty")
	}

	// Get the match first to find its index entries
	m, err := r.GetMatch(ctx, &GetMatchInput{MatchID: input.MatchID})
	if err != nil {
		return err
	}

	// Create a Redis transaction
	pipe := r.client.Pipeline()

	matchKey := fmt.Sprintf("%s%s", matchKeyPrefix, input.MatchID)
	pipe.Del(ctx, matchKey)

	pipe.ZRem(ctx, matchesByDate, input.MatchID)

	if m.SportID != "" {
		sportIndexKey := fmt.Sprintf("%s%s", sportIndex, m.SportID)
		pipe.SRem(ctx, sportIndexKey, input.MatchID)
	}

	// Execute the transaction
	_, err = pipe.Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete match: %w", err)
	}

	return nil
}
