package ratelimit

import (
	"context"
	"time"
)

// Result is the outcome of a single Allow call.
type Result struct {
	// RetryAfter is how long the caller should wait when denied.
	RetryAfter time.Duration
	Allowed    bool
}

// Store decides whether one more event for key fits within the limit.
// Implementations must be safe for concurrent use.
type Store interface {
	Allow(ctx context.Context, key string) (Result, error)
}

// Limit is a number of events per window.
type Limit struct {
	Window time.Duration
	Events int
}

func (l Limit) validate() error {
	if l.Events <= 0 || l.Window <= 0 {
		return ErrInvalidLimit
	}
	return nil
}
