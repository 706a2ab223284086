package scan

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/dmitrymomot/cardscan/pkg/cache"
)

const redisKeyPrefix = "cardscan:recent:"

// MemoryRecentScans keeps recent payload keys in an in-process LRU cache.
type MemoryRecentScans struct {
	cache *cache.LRUCache[string, struct{}]
}

// NewMemoryRecentScans remembers up to size keys. A positive ttl also expires
// keys after that long; zero keeps them until evicted.
func NewMemoryRecentScans(size int, ttl time.Duration) *MemoryRecentScans {
	return newMemoryRecentScans(size, cache.WithTTL(ttl))
}

func newMemoryRecentScans(size int, opts ...cache.Option) *MemoryRecentScans {
	if size <= 0 {
		size = 1
	}
	return &MemoryRecentScans{cache: cache.NewLRUCache[string, struct{}](size, opts...)}
}

func (m *MemoryRecentScans) Seen(_ context.Context, key string) (bool, error) {
	return !m.cache.PutIfAbsent(key, struct{}{}), nil
}

func (m *MemoryRecentScans) Forget(_ context.Context, key string) error {
	m.cache.Remove(key)
	return nil
}

// RedisRecentScans shares recent payload keys between instances.
type RedisRecentScans struct {
	client redis.UniversalClient
	ttl    time.Duration
}

// NewRedisRecentScans stores keys in redis with the given expiry.
func NewRedisRecentScans(client redis.UniversalClient, ttl time.Duration) *RedisRecentScans {
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	return &RedisRecentScans{client: client, ttl: ttl}
}

// Seen uses SET NX EX, so concurrent scans of one payload across instances
// admit exactly one.
func (r *RedisRecentScans) Seen(ctx context.Context, key string) (bool, error) {
	stored, err := r.client.SetNX(ctx, redisKeyPrefix+key, 1, r.ttl).Result()
	if err != nil {
		return false, errors.Join(ErrDedupeUnavailable, err)
	}
	return !stored, nil
}

func (r *RedisRecentScans) Forget(ctx context.Context, key string) error {
	if err := r.client.Del(ctx, redisKeyPrefix+key).Err(); err != nil {
		return errors.Join(ErrDedupeUnavailable, err)
	}
	return nil
}
