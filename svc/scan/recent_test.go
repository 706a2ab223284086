package scan_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/cardscan/pkg/redis"
	"github.com/dmitrymomot/cardscan/svc/scan"
)

func TestMemoryRecentScans(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("seen and forget", func(t *testing.T) {
		t.Parallel()
		r := scan.NewMemoryRecentScans(4, 0)

		seen, err := r.Seen(ctx, "a")
		require.NoError(t, err)
		assert.False(t, seen)

		seen, err = r.Seen(ctx, "a")
		require.NoError(t, err)
		assert.True(t, seen)

		require.NoError(t, r.Forget(ctx, "a"))
		seen, _ = r.Seen(ctx, "a")
		assert.False(t, seen)
	})

	t.Run("window is bounded by size", func(t *testing.T) {
		t.Parallel()
		r := scan.NewMemoryRecentScans(2, 0)
		for _, k := range []string{"a", "b", "c"} {
			_, _ = r.Seen(ctx, k)
		}
		seen, _ := r.Seen(ctx, "a")
		assert.False(t, seen, "oldest key is evicted")
	})

	t.Run("keys expire", func(t *testing.T) {
		t.Parallel()
		clock := &fakeClock{now: time.Unix(0, 0)}
		r := scan.NewMemoryRecentScansWithClock(4, 30*time.Second, clock.Now)

		_, _ = r.Seen(ctx, "a")
		clock.Advance(29 * time.Second)
		seen, _ := r.Seen(ctx, "a")
		assert.True(t, seen)

		clock.Advance(31 * time.Second)
		seen, _ = r.Seen(ctx, "a")
		assert.False(t, seen)
	})
}

func TestRedisRecentScans(t *testing.T) {
	url := os.Getenv("REDIS_URL")
	if url == "" {
		t.Skip("REDIS_URL not set")
	}
	ctx := context.Background()
	client, err := redis.Connect(ctx, redis.Config{URL: url, RetryAttempts: 1, ConnectTimeout: time.Second})
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	r := scan.NewRedisRecentScans(client, time.Minute)
	key := uuid.NewString()

	seen, err := r.Seen(ctx, key)
	require.NoError(t, err)
	assert.False(t, seen)

	seen, err = r.Seen(ctx, key)
	require.NoError(t, err)
	assert.True(t, seen)

	require.NoError(t, r.Forget(ctx, key))
	seen, err = r.Seen(ctx, key)
	require.NoError(t, err)
	assert.False(t, seen)
	require.NoError(t, r.Forget(ctx, key))
}
