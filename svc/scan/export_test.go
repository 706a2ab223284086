package scan

import (
	"time"

	"github.com/dmitrymomot/cardscan/pkg/cache"
)

// NewMemoryRecentScansWithClock exposes the clock override to tests.
func NewMemoryRecentScansWithClock(size int, ttl time.Duration, now func() time.Time) *MemoryRecentScans {
	return newMemoryRecentScans(size, cache.WithTTL(ttl), cache.WithClock(now))
}
