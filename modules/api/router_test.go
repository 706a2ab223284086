package api_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/cardscan/modules/api"
	"github.com/dmitrymomot/cardscan/pkg/ratelimiter"
	"github.com/dmitrymomot/cardscan/pkg/requestid"
)

type pingRoutes struct{}

func (pingRoutes) Handle() http.Handler {
	r := chi.NewRouter()
	r.Get("/ping", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(requestid.FromContext(r.Context())))
	})
	r.Get("/panic", func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})
	return r
}

func TestRouter(t *testing.T) {
	t.Parallel()

	t.Run("health probes", func(t *testing.T) {
		t.Parallel()
		r := api.Router(api.RouterOptions{})

		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health/live", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "ALIVE", rec.Body.String())

		rec = httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health/ready", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "READY", rec.Body.String())
	})

	t.Run("failing readiness", func(t *testing.T) {
		t.Parallel()
		r := api.Router(api.RouterOptions{
			ReadinessChecks: []func(context.Context) error{
				func(context.Context) error { return errors.New("redis down") },
			},
		})
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health/ready", nil))
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})

	t.Run("mounts scans under v1 with request id", func(t *testing.T) {
		t.Parallel()
		r := api.Router(api.RouterOptions{Scans: pingRoutes{}})

		req := httptest.NewRequest(http.MethodGet, "/v1/ping", nil)
		req.Header.Set(requestid.Header, "req-123")
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "req-123", rec.Body.String())
		assert.Equal(t, "req-123", rec.Header().Get(requestid.Header))
	})

	t.Run("recovers panics", func(t *testing.T) {
		t.Parallel()
		r := api.Router(api.RouterOptions{Scans: pingRoutes{}})
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/panic", nil))
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})

	t.Run("rate limits v1 only", func(t *testing.T) {
		t.Parallel()
		store := ratelimiter.NewMemoryStore(ratelimiter.WithCleanupInterval(0))
		t.Cleanup(store.Close)
		bucket, err := ratelimiter.NewBucket(store, ratelimiter.Config{Capacity: 1, RefillRate: 1, RefillInterval: time.Minute})
		require.NoError(t, err)
		r := api.Router(api.RouterOptions{Scans: pingRoutes{}, RateLimiter: bucket})

		serve := func(path string) *httptest.ResponseRecorder {
			req := httptest.NewRequest(http.MethodGet, path, nil)
			req.RemoteAddr = "198.51.100.4:5000"
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)
			return rec
		}

		assert.Equal(t, http.StatusOK, serve("/v1/ping").Code)
		limited := serve("/v1/ping")
		assert.Equal(t, http.StatusTooManyRequests, limited.Code)
		assert.True(t, strings.Contains(limited.Body.String(), `"too_many_requests"`))
		assert.Equal(t, http.StatusOK, serve("/health/live").Code)
	})
}
