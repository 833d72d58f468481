package ratelimit_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/folio/pkg/ratelimit"
)

// fakeCounter mimics INCR/PEXPIRE/PTTL with a settable clock.
type fakeCounter struct {
	mu      sync.Mutex
	now     time.Time
	counts  map[string]int64
	expires map[string]time.Time
	failErr error
}

func newFakeCounter() *fakeCounter {
	return &fakeCounter{
		now:     time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		counts:  map[string]int64{},
		expires: map[string]time.Time{},
	}
}

func (f *fakeCounter) expire(key string) {
	if exp, ok := f.expires[key]; ok && !f.now.Before(exp) {
		delete(f.counts, key)
		delete(f.expires, key)
	}
}

func (f *fakeCounter) Incr(_ context.Context, key string) *redis.IntCmd {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failErr != nil {
		return redis.NewIntResult(0, f.failErr)
	}
	f.expire(key)
	f.counts[key]++
	return redis.NewIntResult(f.counts[key], nil)
}

func (f *fakeCounter) PExpire(_ context.Context, key string, d time.Duration) *redis.BoolCmd {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.expires[key] = f.now.Add(d)
	return redis.NewBoolResult(true, nil)
}

func (f *fakeCounter) PTTL(_ context.Context, key string) *redis.DurationCmd {
	f.mu.Lock()
	defer f.mu.Unlock()
	exp, ok := f.expires[key]
	if !ok {
		return redis.NewDurationResult(-1, nil)
	}
	return redis.NewDurationResult(exp.Sub(f.now), nil)
}

func (f *fakeCounter) advance(d time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.now = f.now.Add(d)
}

func TestRedisStore_Allow(t *testing.T) {
	t.Parallel()

	counter := newFakeCounter()
	store, err := ratelimit.NewRedisStore(counter, "", ratelimit.Limit{Events: 2, Window: 10 * time.Minute})
	require.NoError(t, err)

	ctx := context.Background()
	for range 2 {
		res, err := store.Allow(ctx, "1.2.3.4")
		require.NoError(t, err)
		require.True(t, res.Allowed)
	}

	counter.advance(4 * time.Minute)
	res, err := store.Allow(ctx, "1.2.3.4")
	require.NoError(t, err)
	assert.False(t, res.Allowed)
	assert.Equal(t, 6*time.Minute, res.RetryAfter)

	counter.advance(6 * time.Minute)
	res, err = store.Allow(ctx, "1.2.3.4")
	require.NoError(t, err)
	assert.True(t, res.Allowed)

	assert.Contains(t, counter.counts, "ratelimit:1.2.3.4")
}

func TestRedisStore_StoreFailure(t *testing.T) {
	t.Parallel()

	counter := newFakeCounter()
	counter.failErr = errors.New("connection refused")

	store, err := ratelimit.NewRedisStore(counter, "contact:", ratelimit.Limit{Events: 1, Window: time.Minute})
	require.NoError(t, err)

	_, err = store.Allow(context.Background(), "k")
	require.ErrorIs(t, err, ratelimit.ErrStoreFailed)
}

func TestNewRedisStore_InvalidLimit(t *testing.T) {
	t.Parallel()

	_, err := ratelimit.NewRedisStore(newFakeCounter(), "", ratelimit.Limit{Events: 0, Window: time.Minute})
	require.ErrorIs(t, err, ratelimit.ErrInvalidLimit)
}
