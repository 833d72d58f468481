package middlewares

import (
	"log/slog"
	"net/http"
	"slices"
	"time"

	"github.com/dmitrymomot/folio/internal"
)

// LoggingOption configures the request logging middleware.
type LoggingOption func(*loggingConfig)

type loggingConfig struct {
	skip []string
}

// WithLoggingSkipPaths disables logging for exact request paths,
// such as probes hit every few seconds.
func WithLoggingSkipPaths(paths ...string) LoggingOption {
	return func(cfg *loggingConfig) {
		cfg.skip = append(cfg.skip, paths...)
	}
}

// Logging returns middleware that writes one entry per request once the
// response is done. Server errors are logged at warn level, everything
// else at info. The request id is added by RequestIDExtractor when the
// app logger has it.
func Logging(opts ...LoggingOption) internal.Middleware {
	cfg := &loggingConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	return func(next internal.HandlerFunc) internal.HandlerFunc {
		return func(c internal.Context) error {
			req := c.Request()
			if slices.Contains(cfg.skip, req.URL.Path) {
				return next(c)
			}

			start := time.Now()
			err := next(c)

			rw := c.ResponseWriter()
			status := rw.Status()
			if err != nil && !rw.Written() {
				status = http.StatusInternalServerError
				if httpErr := internal.AsHTTPError(err); httpErr != nil {
					status = httpErr.Code
				}
			}

			attrs := []any{
				slog.String("method", req.Method),
				slog.String("path", req.URL.Path),
				slog.Int("status", status),
				slog.Int64("size", rw.Size()),
				slog.Duration("duration", time.Since(start)),
				slog.String("ip", c.RealIP()),
			}
			if status >= http.StatusInternalServerError {
				c.LogWarn("request", attrs...)
			} else {
				c.LogInfo("request", attrs...)
			}
			return err
		}
	}
}
