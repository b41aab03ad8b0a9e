package cache

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"weather-locator/internal/ports"
)

var _ ports.CityCache = (*RedisCityCache)(nil)

// RedisCityCache stores reverse-geocode results in Redis with a TTL, for
// setups where several hosts share one fast cache (REDIS_ADDR).
type RedisCityCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisCityCache(addr string, ttl time.Duration) *RedisCityCache {
	return &RedisCityCache{
		client: redis.NewClient(&redis.Options{Addr: addr}),
		ttl:    ttl,
	}
}

func redisKey(key string) string { return "citycache:" + key }

func (r *RedisCityCache) Get(ctx context.Context, key string) (string, bool, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return "", false, errors.New("city cache: empty key")
	}

	city, err := r.client.Get(ctx, redisKey(key)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get city cache: redis get: %w", err)
	}

	return city, true, nil
}

func (r *RedisCityCache) Put(ctx context.Context, key, city string) error {
	if strings.TrimSpace(key) == "" {
		return errors.New("insert city cache: empty key")
	}
	if strings.TrimSpace(city) == "" {
		return errors.New("insert city cache: empty city")
	}

	if err := r.client.Set(ctx, redisKey(key), city, r.ttl).Err(); err != nil {
		return fmt.Errorf("insert city cache key=%q: %w", key, err)
	}

	return nil
}

func (r *RedisCityCache) Close() error { return r.client.Close() }
