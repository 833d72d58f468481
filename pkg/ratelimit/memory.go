package ratelimit

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// MemoryStore keeps one token bucket per key in process memory.
// A key may burst up to Limit.Events and then refills evenly over the window.
// Buckets idle for a full window are dropped.
type MemoryStore struct {
	limit rate.Limit
	burst int
	idle  time.Duration
	now   func() time.Time

	mu        sync.Mutex
	buckets   map[string]*bucket
	lastSweep time.Time
}

type bucket struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// MemoryOption configures a MemoryStore.
type MemoryOption func(*MemoryStore)

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) MemoryOption {
	return func(s *MemoryStore) {
		s.now = now
	}
}

// NewMemoryStore creates an in-memory store for l.
func NewMemoryStore(l Limit, opts ...MemoryOption) (*MemoryStore, error) {
	if err := l.validate(); err != nil {
		return nil, err
	}

	s := &MemoryStore{
		limit:   rate.Every(l.Window / time.Duration(l.Events)),
		burst:   l.Events,
		idle:    l.Window,
		now:     time.Now,
		buckets: make(map[string]*bucket),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.lastSweep = s.now()
	return s, nil
}

// Allow implements Store.
func (s *MemoryStore) Allow(_ context.Context, key string) (Result, error) {
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.sweep(now)

	b, ok := s.buckets[key]
	if !ok {
		b = &bucket{limiter: rate.NewLimiter(s.limit, s.burst)}
		s.buckets[key] = b
	}
	b.lastSeen = now

	if b.limiter.AllowN(now, 1) {
		return Result{Allowed: true}, nil
	}

	r := b.limiter.ReserveN(now, 1)
	delay := r.DelayFrom(now)
	r.CancelAt(now)
	return Result{RetryAfter: delay}, nil
}

// Len reports the number of tracked keys.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.buckets)
}

func (s *MemoryStore) sweep(now time.Time) {
	if now.Sub(s.lastSweep) < s.idle {
		return
	}
	for key, b := range s.buckets {
		if now.Sub(b.lastSeen) >= s.idle {
			delete(s.buckets, key)
		}
	}
	s.lastSweep = now
}
