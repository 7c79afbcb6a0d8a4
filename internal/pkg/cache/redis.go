package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

type Cache interface {
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	// Get returns "" and a nil error when the key does not exist.
	Get(ctx context.Context, key string) (string, error)
	GenerateKey(operation, key string) string
}

type redisCache struct {
	client    *redis.Client
	namespace string
}

func NewRedisCache(addr, namespace string) Cache {
	return NewRedisCacheFromClient(redis.NewClient(&redis.Options{Addr: addr}), namespace)
}

func NewRedisCacheFromClient(client *redis.Client, namespace string) Cache {
	return &redisCache{
		client:    client,
		namespace: namespace,
	}
}

func (r redisCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	if err := r.client.Set(ctx, key, value, ttl).Err(); err != nil {
		return fmt.Errorf("cache: set %q: %w", key, err)
	}
	return nil
}

func (r redisCache) Get(ctx context.Context, key string) (string, error) {
	value, err := r.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("cache: get %q: %w", key, err)
	}
	return value, nil
}

func (r redisCache) GenerateKey(operation, key string) string {
	return KeyFor(r.namespace, operation, key)
}

// KeyFor builds the "<namespace>:<operation>:<key>" layout used by every cache.
func KeyFor(namespace, operation, key string) string {
	return fmt.Sprintf("%s:%s:%s", namespace, operation, key)
}
