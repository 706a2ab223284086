package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/cardscan/handler"
	"github.com/dmitrymomot/cardscan/pkg/clientip"
	"github.com/dmitrymomot/cardscan/pkg/httpserver"
	"github.com/dmitrymomot/cardscan/pkg/logger"
	"github.com/dmitrymomot/cardscan/pkg/ratelimiter"
	"github.com/dmitrymomot/cardscan/pkg/requestid"
)

type Mountable interface {
	Handle() http.Handler
}

// RouterOptions configures the public API. Every field is optional.
type RouterOptions struct {
	Logger *slog.Logger
	// Scans is mounted under /v1.
	Scans Mountable
	// RateLimiter, when set, limits /v1 requests per client IP.
	RateLimiter *ratelimiter.Bucket
	// ReadinessChecks back /health/ready, e.g. a redis ping.
	ReadinessChecks []func(context.Context) error
}

// Router creates the service router.
//
// Example:
//
//	r := api.Router(api.RouterOptions{
//		Logger: log,
//		Scans:  scan.NewHTTPHandler(svc, cfg.Scan, log),
//	})
func Router(opts RouterOptions) chi.Router {
	log := opts.Logger
	if log == nil {
		log = logger.Discard()
	}

	r := chi.NewRouter()
	r.Use(requestid.Middleware, clientip.Middleware, accessLog(log), middleware.Recoverer)

	r.Get("/health/live", httpserver.HealthCheckHandler(log))
	r.Get("/health/ready", readiness(log, opts.ReadinessChecks))

	r.Route("/v1", func(v1 chi.Router) {
		if opts.RateLimiter != nil {
			v1.Use(ratelimiter.Middleware(opts.RateLimiter, clientip.Key,
				ratelimiter.WithLimitedHandler(http.HandlerFunc(tooManyRequests)),
			))
		}
		if opts.Scans != nil {
			v1.Mount("/", opts.Scans.Handle())
		}
	})

	return r
}

// readiness always has at least one check so the probe answers READY rather
// than ALIVE.
func readiness(log *slog.Logger, checks []func(context.Context) error) http.HandlerFunc {
	if len(checks) == 0 {
		checks = []func(context.Context) error{func(context.Context) error { return nil }}
	}
	return httpserver.HealthCheckHandler(log, checks...)
}

func tooManyRequests(w http.ResponseWriter, r *http.Request) {
	_ = handler.JSONError(handler.ErrTooManyRequests).Render(w, r)
}

func accessLog(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			level := slog.LevelInfo
			if status >= http.StatusInternalServerError {
				level = slog.LevelError
			}
			log.LogAttrs(r.Context(), level, "http request",
				logger.Component("http"),
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", status),
				slog.Int("bytes", ww.BytesWritten()),
				logger.Duration(time.Since(start)),
			)
		})
	}
}
