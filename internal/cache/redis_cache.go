package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/cypherlabdev/edge-finder-service/internal/models"
)

// RedisCache caches detected edges in Redis
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
	logger zerolog.Logger
}

// RedisCacheConfig holds Redis cache configuration
type RedisCacheConfig struct {
	Addr     string // e.g., "localhost:6379"
	Password string
	DB       int
	TTL      time.Duration // e.g., 10 * time.Minute
}

// NewRedisCache creates a new Redis cache
func NewRedisCache(config RedisCacheConfig, logger zerolog.Logger) *RedisCache {
	client := redis.NewClient(&redis.Options{
		Addr:     config.Addr,
		Password: config.Password,
		DB:       config.DB,
	})

	return &RedisCache{
		client: client,
		ttl:    config.TTL,
		logger: logger.With().Str("component", "redis_cache").Logger(),
	}
}

// edgeKey is edge:{edge_id}
func edgeKey(edgeID string) string {
	return fmt.Sprintf("edge:%s", edgeID)
}

// matchKey is edges:match:{match_id}, a set of edge ids
func matchKey(matchID string) string {
	return fmt.Sprintf("edges:match:%s", matchID)
}

// SetBatch caches edges and indexes them by match. Edge ids are the
// idempotency key, so re-caching the same pass overwrites in place.
func (c *RedisCache) SetBatch(ctx context.Context, edges models.Edges) error {
	if len(edges) == 0 {
		return nil
	}

	pipe := c.client.Pipeline()
	indexed := make(map[string]struct{})

	for id, edge := range edges {
		data, err := json.Marshal(edge)
		if err != nil {
			c.logger.Error().Err(err).Str("edge_id", id).Msg("failed to marshal edge")
			continue
		}
		pipe.Set(ctx, edgeKey(id), data, c.ttl)
		pipe.SAdd(ctx, matchKey(edge.MatchID), id)
		indexed[edge.MatchID] = struct{}{}
	}

	for matchID := range indexed {
		pipe.Expire(ctx, matchKey(matchID), c.ttl)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to execute pipeline: %w", err)
	}

	c.logger.Debug().
		Int("count", len(edges)).
		Int("matches", len(indexed)).
		Dur("ttl", c.ttl).
		Msg("cached batch of edges")

	return nil
}

// Get retrieves a cached edge by id
func (c *RedisCache) Get(ctx context.Context, edgeID string) (*models.Edge, error) {
	data, err := c.client.Get(ctx, edgeKey(edgeID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, models.ErrEdgeNotFound
	} else if err != nil {
		return nil, fmt.Errorf("failed to get from Redis: %w", err)
	}

	var edge models.Edge
	if err := json.Unmarshal(data, &edge); err != nil {
		return nil, fmt.Errorf("failed to unmarshal edge: %w", err)
	}

	return &edge, nil
}

// GetByMatch retrieves all cached edges for a match, ordered by edge id
func (c *RedisCache) GetByMatch(ctx context.Context, matchID string) ([]models.Edge, error) {
	ids, err := c.client.SMembers(ctx, matchKey(matchID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read match index: %w", err)
	}
	if len(ids) == 0 {
		return []models.Edge{}, nil
	}
	sort.Strings(ids)

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = edgeKey(id)
	}

	values, err := c.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get edges: %w", err)
	}

	edges := make([]models.Edge, 0, len(values))
	for i, v := range values {
		// Entries expire independently of the index
		s, ok := v.(string)
		if !ok {
			continue
		}

		var edge models.Edge
		if err := json.Unmarshal([]byte(s), &edge); err != nil {
			c.logger.Warn().Err(err).Str("key", keys[i]).Msg("failed to unmarshal edge")
			continue
		}
		edges = append(edges, edge)
	}

	return edges, nil
}

// Ping checks Redis connection
func (c *RedisCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// Close closes the Redis connection
func (c *RedisCache) Close() error {
	return c.client.Close()
}
