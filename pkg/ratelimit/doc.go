// Package ratelimit limits how often a client may submit the contact form.
//
// Two [Store] implementations are provided: [MemoryStore] keeps token
// buckets (golang.org/x/time/rate) in process memory, and [RedisStore]
// keeps fixed-window counters in Redis so several instances share one
// budget.
//
//	store, err := ratelimit.NewMemoryStore(ratelimit.Limit{Events: 5, Window: 10 * time.Minute})
//	res, err := store.Allow(ctx, clientIP)
//	if !res.Allowed {
//		w.Header().Set("Retry-After", strconv.Itoa(int(res.RetryAfter.Seconds())))
//	}
package ratelimit
