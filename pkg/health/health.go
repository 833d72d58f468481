package health

import (
	"context"
	"errors"
	"log/slog"
	"slices"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/folio/pkg/logger"
)

const defaultTimeout = 5 * time.Second

// CheckFunc is the standard health check function signature.
// It matches the Healthcheck closures in pkg/redis and pkg/mailer/smtp.
type CheckFunc func(ctx context.Context) error

// Checks is a map of named health check functions.
type Checks map[string]CheckFunc

// Response is the JSON body of both health endpoints.
type Response struct {
	Checks map[string]Check `json:"checks,omitempty"`
	OK     bool             `json:"ok"`
}

// Check is the outcome of a single named check.
// Error carries a sentinel message only; the cause goes to the log.
type Check struct {
	Error string `json:"error,omitempty"`
	OK    bool   `json:"ok"`
}

type config struct {
	logger  *slog.Logger
	timeout time.Duration
}

// Option configures health check behavior.
type Option func(*config)

// WithTimeout sets the timeout shared by all checks.
func WithTimeout(d time.Duration) Option {
	return func(c *config) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithLogger sets the logger used to report failed checks.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

func newConfig(opts ...Option) *config {
	cfg := &config{
		timeout: defaultTimeout,
		logger:  logger.NewNope(),
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// Run executes all checks in parallel under a shared timeout
// and aggregates the result. No checks means healthy.
func Run(ctx context.Context, checks Checks, opts ...Option) *Response {
	return runChecks(ctx, checks, newConfig(opts...))
}

func runChecks(ctx context.Context, checks Checks, cfg *config) *Response {
	if len(checks) == 0 {
		return &Response{OK: true}
	}

	ctx, cancel := context.WithTimeout(ctx, cfg.timeout)
	defer cancel()

	names := make([]string, 0, len(checks))
	for name := range checks {
		names = append(names, name)
	}
	slices.Sort(names)

	errs := make([]error, len(names))

	var g errgroup.Group
	for i, name := range names {
		check := checks[name]
		g.Go(func() error {
			errs[i] = check(ctx)
			return nil
		})
	}
	_ = g.Wait()

	resp := &Response{OK: true, Checks: make(map[string]Check, len(names))}
	for i, name := range names {
		err := errs[i]
		if err == nil {
			resp.Checks[name] = Check{OK: true}
			continue
		}

		resp.OK = false
		sentinel := ErrCheckFailed
		if errors.Is(err, context.DeadlineExceeded) {
			sentinel = ErrCheckTimeout
		}
		resp.Checks[name] = Check{Error: sentinel.Error()}
		cfg.logger.WarnContext(ctx, "health check failed",
			slog.String("check", name),
			slog.String("error", err.Error()),
		)
	}

	return resp
}
