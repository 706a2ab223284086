package ratelimiter_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/cardscan/pkg/ratelimiter"
)

type clock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *clock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func newBucket(t *testing.T, cfg ratelimiter.Config) (*ratelimiter.Bucket, *clock) {
	t.Helper()
	clk := &clock{now: time.Now()}
	store := ratelimiter.NewMemoryStore(ratelimiter.WithCleanupInterval(0), ratelimiter.WithClock(clk.Now))
	t.Cleanup(store.Close)
	b, err := ratelimiter.NewBucket(store, cfg)
	require.NoError(t, err)
	return b, clk
}

func TestNewBucketValidation(t *testing.T) {
	t.Parallel()

	store := ratelimiter.NewMemoryStore(ratelimiter.WithCleanupInterval(0))
	for _, cfg := range []ratelimiter.Config{
		{Capacity: 0, RefillRate: 1, RefillInterval: time.Second},
		{Capacity: 1, RefillRate: 0, RefillInterval: time.Second},
		{Capacity: 1, RefillRate: 1},
	} {
		_, err := ratelimiter.NewBucket(store, cfg)
		assert.ErrorIs(t, err, ratelimiter.ErrInvalidConfig)
	}
	assert.False(t, ratelimiter.Config{}.Enabled())
}

func TestBucket(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("burst then deny", func(t *testing.T) {
		t.Parallel()
		b, _ := newBucket(t, ratelimiter.Config{Capacity: 3, RefillRate: 1, RefillInterval: time.Second})

		for i := range 3 {
			res, err := b.Allow(ctx, "ip")
			require.NoError(t, err)
			assert.True(t, res.Allowed())
			assert.Equal(t, 2-i, res.Remaining)
		}
		res, err := b.Allow(ctx, "ip")
		require.NoError(t, err)
		assert.False(t, res.Allowed())

		other, err := b.Allow(ctx, "other-ip")
		require.NoError(t, err)
		assert.True(t, other.Allowed())
	})

	t.Run("refills over time", func(t *testing.T) {
		t.Parallel()
		b, clk := newBucket(t, ratelimiter.Config{Capacity: 2, RefillRate: 1, RefillInterval: time.Second})

		_, _ = b.AllowN(ctx, "ip", 2)
		res, _ := b.Allow(ctx, "ip")
		require.False(t, res.Allowed())
		assert.Equal(t, time.Second, res.RetryAfter(clk.Now()))

		clk.Advance(time.Second)
		res, _ = b.Allow(ctx, "ip")
		assert.True(t, res.Allowed())
		assert.Equal(t, 0, res.Remaining)

		clk.Advance(time.Hour)
		res, _ = b.Allow(ctx, "ip")
		assert.Equal(t, 1, res.Remaining, "refill is capped at capacity")
	})

	t.Run("reset", func(t *testing.T) {
		t.Parallel()
		b, _ := newBucket(t, ratelimiter.Config{Capacity: 1, RefillRate: 1, RefillInterval: time.Minute})
		_, _ = b.Allow(ctx, "ip")
		require.NoError(t, b.Reset(ctx, "ip"))
		res, _ := b.Allow(ctx, "ip")
		assert.True(t, res.Allowed())
	})

	t.Run("invalid token count", func(t *testing.T) {
		t.Parallel()
		b, _ := newBucket(t, ratelimiter.Config{Capacity: 1, RefillRate: 1, RefillInterval: time.Minute})
		_, err := b.AllowN(ctx, "ip", 0)
		assert.ErrorIs(t, err, ratelimiter.ErrInvalidTokenCount)
	})
}

type failingStore struct{}

func (failingStore) ConsumeTokens(context.Context, string, int, ratelimiter.Config) (int, time.Time, error) {
	return 0, time.Time{}, errors.New("down")
}

func (failingStore) Reset(context.Context, string) error { return nil }

func TestMiddleware(t *testing.T) {
	t.Parallel()

	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusNoContent) })
	byHeader := func(r *http.Request) string { return r.Header.Get("X-Client") }
	request := func(client string) *http.Request {
		r := httptest.NewRequest(http.MethodPost, "/v1/scans/code", nil)
		if client != "" {
			r.Header.Set("X-Client", client)
		}
		return r
	}

	t.Run("limits per key", func(t *testing.T) {
		t.Parallel()
		b, _ := newBucket(t, ratelimiter.Config{Capacity: 1, RefillRate: 1, RefillInterval: time.Minute})
		h := ratelimiter.Middleware(b, byHeader,
			ratelimiter.WithLimitedHandler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusTooManyRequests)
				_, _ = w.Write([]byte(`{"error":{"code":"too_many_requests"}}`))
			})),
		)(ok)

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, request("a"))
		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Equal(t, "1", rec.Header().Get("X-RateLimit-Limit"))
		assert.Equal(t, "0", rec.Header().Get("X-RateLimit-Remaining"))

		rec = httptest.NewRecorder()
		h.ServeHTTP(rec, request("a"))
		assert.Equal(t, http.StatusTooManyRequests, rec.Code)
		assert.NotEmpty(t, rec.Header().Get("Retry-After"))
		assert.Contains(t, rec.Body.String(), "too_many_requests")

		rec = httptest.NewRecorder()
		h.ServeHTTP(rec, request(""))
		assert.Equal(t, http.StatusNoContent, rec.Code, "empty key is not limited")
	})

	t.Run("store failure passes through", func(t *testing.T) {
		t.Parallel()
		b, err := ratelimiter.NewBucket(failingStore{}, ratelimiter.Config{Capacity: 1, RefillRate: 1, RefillInterval: time.Second})
		require.NoError(t, err)

		rec := httptest.NewRecorder()
		ratelimiter.Middleware(b, byHeader)(ok).ServeHTTP(rec, request("a"))
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("custom store failure handler", func(t *testing.T) {
		t.Parallel()
		b, err := ratelimiter.NewBucket(failingStore{}, ratelimiter.Config{Capacity: 1, RefillRate: 1, RefillInterval: time.Second})
		require.NoError(t, err)

		h := ratelimiter.Middleware(b, byHeader, ratelimiter.WithErrorHandler(func(w http.ResponseWriter, r *http.Request, err error) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))(ok)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, request("a"))
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})
}
