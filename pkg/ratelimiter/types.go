package ratelimiter

import (
	"context"
	"time"
)

// Config defines the token bucket configuration.
type Config struct {
	Capacity       int           `env:"SCAN_RATE_CAPACITY" envDefault:"30"`        // burst size
	RefillRate     int           `env:"SCAN_RATE_REFILL" envDefault:"1"`           // tokens per interval
	RefillInterval time.Duration `env:"SCAN_RATE_REFILL_INTERVAL" envDefault:"2s"` // refill period
}

// Enabled reports whether the limiter should be installed at all.
func (c Config) Enabled() bool {
	return c.Capacity > 0
}

func (c Config) validate() error {
	switch {
	case c.Capacity <= 0:
		return ErrInvalidConfig
	case c.RefillRate <= 0:
		return ErrInvalidConfig
	case c.RefillInterval <= 0:
		return ErrInvalidConfig
	}
	return nil
}

// Result contains the result of a rate limit check.
type Result struct {
	Limit     int
	Remaining int
	ResetAt   time.Time
}

// Allowed reports whether the request fits in the bucket.
func (r Result) Allowed() bool {
	return r.Remaining >= 0
}

// RetryAfter returns how long to wait before retrying, relative to now.
// It is zero for allowed requests.
func (r Result) RetryAfter(now time.Time) time.Duration {
	if r.Allowed() {
		return 0
	}
	return max(r.ResetAt.Sub(now), 0)
}

// Store keeps bucket state.
type Store interface {
	// ConsumeTokens takes tokens from the bucket under key and returns what
	// is left; a negative remainder means the request is denied.
	ConsumeTokens(ctx context.Context, key string, tokens int, cfg Config) (remaining int, resetAt time.Time, err error)
	Reset(ctx context.Context, key string) error
}
