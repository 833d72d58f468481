package middlewares

import (
	"context"
	"errors"
	"time"

	"github.com/dmitrymomot/folio/internal"
)

// DefaultTimeout is the default request timeout.
const DefaultTimeout = 30 * time.Second

// Timeout returns middleware that puts a deadline on the request context.
//
// The handler runs on the request goroutine and is expected to honour
// the context; the relay clients do. Whatever the handler returns is
// passed through unchanged, so a relay cut short by the deadline still
// surfaces as a delivery failure. Requests that outlive the deadline are
// logged.
func Timeout(timeout time.Duration) internal.Middleware {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return func(next internal.HandlerFunc) internal.HandlerFunc {
		return func(c internal.Context) error {
			ctx, cancel := context.WithTimeout(c.Context(), timeout)
			defer cancel()

			c.SetContext(ctx)

			err := next(c)
			if errors.Is(ctx.Err(), context.DeadlineExceeded) {
				c.LogWarn("request deadline exceeded", "timeout", timeout.String())
			}
			return err
		}
	}
}
