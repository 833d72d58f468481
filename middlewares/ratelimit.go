package middlewares

import (
	"errors"
	"math"
	"strconv"

	"github.com/dmitrymomot/folio/internal"
	"github.com/dmitrymomot/folio/pkg/ratelimit"
)

// DefaultRateLimitMessage is the client-facing message on a 429.
const DefaultRateLimitMessage = "Too many requests. Please try again later."

// RateLimitOption configures the rate limit middleware.
type RateLimitOption func(*rateLimitConfig)

type rateLimitConfig struct {
	key     func(internal.Context) string
	message string
}

// WithRateLimitKey sets how requests are grouped. Defaults to the client IP.
func WithRateLimitKey(fn func(internal.Context) string) RateLimitOption {
	return func(cfg *rateLimitConfig) {
		if fn != nil {
			cfg.key = fn
		}
	}
}

// WithRateLimitMessage overrides DefaultRateLimitMessage.
func WithRateLimitMessage(msg string) RateLimitOption {
	return func(cfg *rateLimitConfig) {
		if msg != "" {
			cfg.message = msg
		}
	}
}

// RateLimit returns middleware that admits requests while the store allows
// them. Denied requests get a 429 HTTP error and a Retry-After header in
// whole seconds.
//
// A failing store does not block traffic: the failure is logged and the
// request goes through.
func RateLimit(store ratelimit.Store, opts ...RateLimitOption) internal.Middleware {
	cfg := &rateLimitConfig{
		key:     func(c internal.Context) string { return c.RealIP() },
		message: DefaultRateLimitMessage,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	return func(next internal.HandlerFunc) internal.HandlerFunc {
		return func(c internal.Context) error {
			res, err := store.Allow(c.Context(), cfg.key(c))
			if err != nil {
				c.LogWarn("rate limit skipped", "error", errors.Join(ErrStoreUnavailable, err).Error())
				return next(c)
			}
			if !res.Allowed {
				secs := max(1, int(math.Ceil(res.RetryAfter.Seconds())))
				c.SetHeader("Retry-After", strconv.Itoa(secs))
				return internal.ErrTooManyRequests(cfg.message)
			}
			return next(c)
		}
	}
}
