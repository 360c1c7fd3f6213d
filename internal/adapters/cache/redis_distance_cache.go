package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"charter-quote-service/internal/ports"
)

// Redis-backed cache for origin->destination distance results.
// Entries expire so stale road data eventually refreshes. Keys are
// expected to be consistent (already normalized) by the caller.
type RedisDistanceCache struct {
	client *redis.Client
	ttl    time.Duration
}

// DefaultDistanceTTL bounds how long a resolved pair is trusted.
const DefaultDistanceTTL = 30 * 24 * time.Hour

func NewRedisDistanceCache(client *redis.Client, ttl time.Duration) *RedisDistanceCache {
	if ttl <= 0 {
		ttl = DefaultDistanceTTL
	}
	return &RedisDistanceCache{client: client, ttl: ttl}
}

func pairKey(origin, destination string) string {
	return "distance:" + origin + "|" + destination
}

// Get fetches a cached pair. A missing key is a miss, not an error.
func (c *RedisDistanceCache) Get(
	ctx context.Context,
	origin string,
	destination string,
) (ports.DistanceResult, bool, error) {
	if c.client == nil {
		return ports.DistanceResult{}, false, errors.New("redis distance cache: client is nil")
	}

	raw, err := c.client.Get(ctx, pairKey(origin, destination)).Bytes()
	if errors.Is(err, redis.Nil) {
		return ports.DistanceResult{}, false, nil
	}
	if err != nil {
		return ports.DistanceResult{}, false, fmt.Errorf("get distance cache: %w", err)
	}

	var result ports.DistanceResult
	if err := json.Unmarshal(raw, &result); err != nil {
		// A corrupt entry behaves like a miss; the fresh write repairs it.
		return ports.DistanceResult{}, false, nil
	}

	return result, true, nil
}

// Put stores a pair result with the configured TTL.
func (c *RedisDistanceCache) Put(
	ctx context.Context,
	origin string,
	destination string,
	result ports.DistanceResult,
) error {
	if c.client == nil {
		return errors.New("redis distance cache: client is nil")
	}

	raw, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("put distance cache: marshal: %w", err)
	}

	if err := c.client.Set(ctx, pairKey(origin, destination), raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("put distance cache: %w", err)
	}

	return nil
}
