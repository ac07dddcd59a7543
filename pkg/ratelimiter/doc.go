// Package ratelimiter provides token bucket rate limiting over a pluggable store.
//
// A bucket holds up to Capacity tokens and regains RefillRate tokens every
// RefillInterval. Each request consumes tokens; a request that does not fit
// is denied and consumes nothing.
//
//	store := ratelimiter.NewMemoryStore()
//	g.Go(store.Run(ctx))
//
//	limiter, err := ratelimiter.NewBucket(store, ratelimiter.Config{
//		Capacity:       3,
//		RefillRate:     1,
//		RefillInterval: 10 * time.Minute,
//	})
//
//	result, err := limiter.Allow(ctx, "contact:"+clientIP)
//	if err == nil && !result.Allowed() {
//		retryIn := result.RetryAfter()
//	}
//
// The contact form uses it to cap submissions per client.
package ratelimiter
