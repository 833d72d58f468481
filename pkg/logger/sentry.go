package logger

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/getsentry/sentry-go"
	sentryslog "github.com/getsentry/sentry-go/slog"
)

// SentryConfig holds Sentry integration configuration.
type SentryConfig struct {
	DSN         string `env:"SENTRY_DSN"`
	Environment string `env:"SENTRY_ENVIRONMENT" envDefault:"production"`
	// MinLevel selects what is shipped to Sentry: warn ships warnings and errors,
	// error ships errors only. Errors always create Issues.
	MinLevel slog.Level
}

// NewWithSentry creates a logger writing JSON to w and, when a DSN is set,
// forwarding warnings and errors to Sentry.
// An empty DSN or a failed SDK init degrades to w only.
func NewWithSentry(cfg SentryConfig, w io.Writer, level slog.Level, extractors ...ContextExtractor) *slog.Logger {
	local := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})

	if cfg.DSN == "" {
		return slog.New(NewLogHandlerDecorator(local, extractors...))
	}

	if err := sentry.Init(sentry.ClientOptions{
		Dsn:         cfg.DSN,
		Environment: cfg.Environment,
		EnableLogs:  true,
	}); err != nil {
		slog.New(local).Error("failed to initialize Sentry", slog.String("error", err.Error()))
		return slog.New(NewLogHandlerDecorator(local, extractors...))
	}

	logLevel := []slog.Level{slog.LevelWarn, slog.LevelError}
	if cfg.MinLevel >= slog.LevelError {
		logLevel = []slog.Level{slog.LevelError}
	}

	remote := sentryslog.Option{
		EventLevel: []slog.Level{slog.LevelError},
		LogLevel:   logLevel,
	}.NewSentryHandler(context.Background())

	return slog.New(NewLogHandlerDecorator(newFanoutHandler(local, remote), extractors...))
}

// SentryFlush returns a shutdown hook that drains buffered Sentry events.
// It waits at most until the context deadline, or 2 seconds without one.
func SentryFlush() func(context.Context) error {
	return func(ctx context.Context) error {
		timeout := 2 * time.Second
		if deadline, ok := ctx.Deadline(); ok {
			timeout = time.Until(deadline)
		}
		sentry.Flush(timeout)
		return nil
	}
}
