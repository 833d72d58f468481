// Package logger provides structured logging with context extraction and Sentry integration.
//
// It builds on log/slog and adds two things: attributes pulled from the
// request context on every call (request ids, client ips) and optional
// forwarding of warnings and errors to Sentry.
//
// # Basic Usage
//
//	log := logger.New(middlewares.RequestIDExtractor())
//	log.InfoContext(ctx, "message relayed", slog.String("to", addr))
//
// # Levels
//
// [ParseLevel] maps LOG_LEVEL strings to slog levels:
//
//	log := logger.NewWithWriter(os.Stdout, logger.ParseLevel(cfg.Level))
//
// # Sentry Integration
//
//	log := logger.NewWithSentry(logger.SentryConfig{
//		DSN:         os.Getenv("SENTRY_DSN"),
//		Environment: "production",
//		MinLevel:    slog.LevelWarn,
//	}, os.Stdout, slog.LevelInfo)
//
// With an empty DSN the logger writes locally only, so the same code path
// serves development and production. Register [SentryFlush] as a shutdown
// hook to drain buffered events before exit.
//
// # Context Extractors
//
// A [ContextExtractor] returns an attribute and whether it applies:
//
//	type ContextExtractor func(ctx context.Context) (slog.Attr, bool)
//
// [LogHandlerDecorator] wraps any slog.Handler with a set of extractors.
package logger
