package cache

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/lessonforge/lessonforge/pkg/config"
)

// NewRedisClient creates a Redis client for the shared audio cache tier
func NewRedisClient(cfg *config.Config) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.GetRedisAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	log.Println("✅ Redis connected successfully")

	return client, nil
}

// RedisStore wraps a Redis client as the second audio cache tier
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore creates a Redis-backed audio cache store
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

// Set stores audio bytes under a cache key with expiration
func (rs *RedisStore) Set(ctx context.Context, key string, data []byte, expiration time.Duration) error {
	return rs.client.Set(ctx, key, data, expiration).Err()
}

// Get retrieves audio bytes by key; returns false on a miss
func (rs *RedisStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	data, err := rs.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return data, true, nil
}

// Delete removes a key
func (rs *RedisStore) Delete(ctx context.Context, key string) error {
	return rs.client.Del(ctx, key).Err()
}
