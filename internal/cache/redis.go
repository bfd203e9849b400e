package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

// RecipeFeedKey caches the viewer-independent part of the complete recipe
// feed. Viewer-specific save-state is overlaid per request.
const RecipeFeedKey = "ricette:complete"

// RecipeFeedTTL keeps the feed fresh enough that a missed invalidation heals
// on its own.
const RecipeFeedTTL = 5 * time.Minute

type RedisClient struct {
	client *redis.Client
	ctx    context.Context
}

// NewRedisClient connects using REDIS_URL. Callers treat a nil client as
// "cache disabled" and fall through to the database.
func NewRedisClient() (*RedisClient, error) {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		return nil, fmt.Errorf("REDIS_URL is not set")
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	client := redis.NewClient(opt)
	ctx := context.Background()

	if _, err = client.Ping(ctx).Result(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisClient{
		client: client,
		ctx:    ctx,
	}, nil
}

func (r *RedisClient) Close() error {
	return r.client.Close()
}

// GetJSON reports whether the key was present and, if so, unmarshals it
// into dest.
func (r *RedisClient) GetJSON(key string, dest interface{}) (bool, error) {
	raw, err := r.client.Get(r.ctx, key).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read cache key %s: %w", key, err)
	}
	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		return false, fmt.Errorf("failed to decode cache key %s: %w", key, err)
	}
	return true, nil
}

func (r *RedisClient) SetJSON(key string, value interface{}, ttl time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode cache key %s: %w", key, err)
	}
	return r.client.Set(r.ctx, key, raw, ttl).Err()
}

func (r *RedisClient) Delete(key string) error {
	return r.client.Del(r.ctx, key).Err()
}
