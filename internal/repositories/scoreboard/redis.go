package scoreboard

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/KirkDiggler/termgames/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	resultsKeyPrefix = "scoreboard:results:"
	totalsKeyPrefix  = "scoreboard:totals:"

	// Fields of the totals hash
	fieldPlayed = "played"
	fieldWon    = "won"
	fieldLost   = "lost"

	defaultTTL = 24 * time.Hour
)

// Config holds configuration for the Redis scoreboard repository
type Config struct {
	// Redis client
	RedisClient *redis.Client

	// TTL is how long a session's scoreboard is kept; defaults to 24h
	TTL time.Duration
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedis creates a new Redis-backed scoreboard repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	// Validate config
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

	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = defaultTTL
	}

	return &redisRepository{
		client: cfg.RedisClient,
		ttl:    ttl,
	}, nil
}

// RecordResult appends the result to the session list and bumps the totals
func (r *redisRepository) RecordResult(ctx context.Context, input *RecordResultInput) error {
	if input == nil || input.Result == nil {
		return errors.New("input and result cannot be nil")
	}
	if input.Result.SessionID == "" {
		return errors.New("session ID is required")
	}

	resultJSON, err := json.Marshal(input.Result)
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}

	resultsKey := resultsKeyPrefix + input.Result.SessionID
	totalsKey := totalsKeyPrefix + input.Result.SessionID

	outcomeField := fieldLost
	if input.Result.Won {
		outcomeField = fieldWon
	}

	pipe := r.client.TxPipeline()
	pipe.RPush(ctx, resultsKey, resultJSON)
	pipe.HIncrBy(ctx, totalsKey, fieldPlayed, 1)
	pipe.HIncrBy(ctx, totalsKey, outcomeField, 1)
	pipe.Expire(ctx, resultsKey, r.ttl)
	pipe.Expire(ctx, totalsKey, r.ttl)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to record result: %w", err)
	}

	return nil
}

// GetScoreboard reads the totals hash and the result list of a session
func (r *redisRepository) GetScoreboard(ctx context.Context, input *GetScoreboardInput) (*models.Scoreboard, error) {
	if input == nil || input.SessionID == "" {
		return nil, errors.New("input and session ID cannot be empty")
	}

	totals, err := r.client.HGetAll(ctx, totalsKeyPrefix+input.SessionID).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get totals: %w", err)
	}

	rawResults, err := r.client.LRange(ctx, resultsKeyPrefix+input.SessionID, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get results: %w", err)
	}

	board := &models.Scoreboard{
		SessionID: input.SessionID,
		Results:   make([]*models.GameResult, 0, len(rawResults)),
	}

	if board.Played, err = parseCount(totals, fieldPlayed); err != nil {
		return nil, err
	}
	if board.Won, err = parseCount(totals, fieldWon); err != nil {
		return nil, err
	}
	if board.Lost, err = parseCount(totals, fieldLost); err != nil {
		return nil, err
	}

	for _, raw := range rawResults {
		var result models.GameResult
		if err := json.Unmarshal([]byte(raw), &result); err != nil {
			return nil, fmt.Errorf("failed to unmarshal result: %w", err)
		}
		board.Results = append(board.Results, &result)
	}

	return board, nil
}

func parseCount(totals map[string]string, field string) (int, error) {
	raw, ok := totals[field]
	if !ok {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s count %q: %w", field, raw, err)
	}
	return n, nil
}
