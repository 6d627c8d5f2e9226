package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sokonihq/sokoni/internal/adapter/config"
)

// Cache is a small TTL cache, used for the payment provider's short-lived
// access tokens.
type Cache interface {
	Set(ctx context.Context, key string, value string, ttl time.Duration) error
	// Get returns "" without error on a miss.
	Get(ctx context.Context, key string) (string, error)
}

type redisCache struct {
	client *redis.Client
}

func NewRedisCache(conf *config.Redis) Cache {
	return &redisCache{
		client: redis.NewClient(&redis.Options{Addr: conf.Addr}),
	}
}

func (r *redisCache) Set(ctx context.Context, key string, value string, ttl time.Duration) error {
	return r.client.Set(ctx, key, value, ttl).Err()
}

func (r *redisCache) Get(ctx context.Context, key string) (string, error) {
	val, err := r.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return val, nil
}
