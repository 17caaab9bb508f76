// ABOUTME: Redis cache implementation using go-redis with RedisJSON documents
// ABOUTME: JSON values are stored via rejson so they stay queryable server-side

package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/nitishm/go-rejson/v4"
	"github.com/redis/go-redis/v9"

	"marginalia-api/pkg/config"
)

// ErrCacheMiss is returned when a key is not present in Redis
var ErrCacheMiss = errors.New("cache: key not found")

// RedisCache implements the Cache interface using Redis
type RedisCache struct {
	client  *redis.Client
	handler *rejson.Handler
}

// NewRedisCache creates a new Redis cache instance
func NewRedisCache(cfg config.RedisConfig) (*RedisCache, error) {
	if cfg.Address == "" {
		return nil, errors.New("redis address cannot be empty")
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	handler := rejson.NewReJSONHandler()
	handler.SetGoRedisClientWithContext(context.Background(), client)

	return &RedisCache{
		client:  client,
		handler: handler,
	}, nil
}

// Get retrieves a value from Redis. Keys written as JSON documents are
// read back through rejson; everything else falls back to a plain GET.
func (c *RedisCache) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := c.handler.JSONGet(key, ".")
	if err == nil {
		if raw, ok := val.([]byte); ok {
			return raw, nil
		}
	}

	bytes, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrCacheMiss
		}
		return nil, err
	}

	return bytes, nil
}

// Set stores a value in Redis with the given TTL. Valid JSON payloads are
// written as RedisJSON documents with a separate EXPIRE; other payloads use
// a plain SET. A zero TTL means no expiration either way.
func (c *RedisCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if json.Valid(value) {
		if _, err := c.handler.JSONSet(key, ".", json.RawMessage(value)); err != nil {
			return err
		}
		if ttl != 0 {
			return c.client.Expire(ctx, key, ttl).Err()
		}
		return nil
	}

	return c.client.Set(ctx, key, value, ttl).Err()
}

// Delete removes a key from Redis
func (c *RedisCache) Delete(ctx context.Context, key string) error {
	// DEL on a missing key is not an error for our use case
	c.client.Del(ctx, key)
	return nil
}

// Close closes the Redis connection
func (c *RedisCache) Close() error {
	return c.client.Close()
}
