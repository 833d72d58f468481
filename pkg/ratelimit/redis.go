package ratelimit

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// Counter is the subset of redis.Cmdable used by RedisStore.
type Counter interface {
	Incr(ctx context.Context, key string) *redis.IntCmd
	PExpire(ctx context.Context, key string, expiration time.Duration) *redis.BoolCmd
	PTTL(ctx context.Context, key string) *redis.DurationCmd
}

// RedisStore counts events per key in fixed windows shared by every
// instance that talks to the same Redis.
type RedisStore struct {
	client Counter
	prefix string
	limit  Limit
}

// NewRedisStore creates a Redis-backed store. Keys are stored as prefix+key.
func NewRedisStore(client Counter, prefix string, l Limit) (*RedisStore, error) {
	if err := l.validate(); err != nil {
		return nil, err
	}
	if prefix == "" {
		prefix = "ratelimit:"
	}
	return &RedisStore{client: client, prefix: prefix, limit: l}, nil
}

// Allow implements Store. The window starts with the first event for a key.
func (s *RedisStore) Allow(ctx context.Context, key string) (Result, error) {
	k := s.prefix + key

	n, err := s.client.Incr(ctx, k).Result()
	if err != nil {
		return Result{}, errors.Join(ErrStoreFailed, err)
	}

	if n == 1 {
		if err := s.client.PExpire(ctx, k, s.limit.Window).Err(); err != nil {
			return Result{}, errors.Join(ErrStoreFailed, err)
		}
	}

	if n <= int64(s.limit.Events) {
		return Result{Allowed: true}, nil
	}

	ttl, err := s.client.PTTL(ctx, k).Result()
	if err != nil {
		return Result{}, errors.Join(ErrStoreFailed, err)
	}
	if ttl < 0 {
		// key lost its expiry; restart the window so it cannot block forever
		if err := s.client.PExpire(ctx, k, s.limit.Window).Err(); err != nil {
			return Result{}, errors.Join(ErrStoreFailed, err)
		}
		ttl = s.limit.Window
	}
	return Result{RetryAfter: ttl}, nil
}
