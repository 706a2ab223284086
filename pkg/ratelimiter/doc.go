// Package ratelimiter implements token bucket rate limiting for HTTP
// endpoints.
//
//	store := ratelimiter.NewMemoryStore()
//	defer store.Close()
//	bucket, err := ratelimiter.NewBucket(store, cfg)
//	if err != nil {
//		return err
//	}
//	r.Use(ratelimiter.Middleware(bucket, clientip.Key))
//
// Each key starts with Capacity tokens and regains RefillRate tokens every
// RefillInterval. A request costs one token; a rejected request costs none.
package ratelimiter
