package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/dmitrymomot/folio"
	"github.com/dmitrymomot/folio/handlers"
	"github.com/dmitrymomot/folio/middlewares"
	"github.com/dmitrymomot/folio/pkg/config"
	"github.com/dmitrymomot/folio/pkg/contact"
	"github.com/dmitrymomot/folio/pkg/health"
	"github.com/dmitrymomot/folio/pkg/logger"
	"github.com/dmitrymomot/folio/pkg/mailer"
	"github.com/dmitrymomot/folio/pkg/mailer/logsender"
	"github.com/dmitrymomot/folio/pkg/mailer/resend"
	"github.com/dmitrymomot/folio/pkg/mailer/smtp"
	"github.com/dmitrymomot/folio/pkg/ratelimit"
	"github.com/dmitrymomot/folio/pkg/redis"
)

const (
	bodyLimit       = 64 << 10
	rateLimitPrefix = "folio:contact:"
	livenessPath    = "/api/health"
	readinessPath   = "/api/health/ready"
)

// services are the process-wide dependencies built from configuration.
type services struct {
	sender   mailer.Sender
	store    ratelimit.Store
	checks   health.Checks
	shutdown []func(context.Context) error
}

func newLogger(cfg *config.Config, w io.Writer) *slog.Logger {
	return logger.NewWithSentry(logger.SentryConfig{
		DSN:         cfg.Sentry.DSN,
		Environment: cfg.Sentry.Environment,
		MinLevel:    slog.LevelWarn,
	}, w, logger.ParseLevel(cfg.Log.Level), middlewares.RequestIDExtractor())
}

func newServices(ctx context.Context, cfg *config.Config, log *slog.Logger) (*services, error) {
	svc := &services{checks: health.Checks{}}

	switch cfg.MailDriver {
	case config.DriverResend:
		svc.sender = resend.New(cfg.Resend)
	case config.DriverLog:
		svc.sender = logsender.New(log)
	default:
		s := smtp.New(cfg.SMTP)
		svc.sender = s
		svc.checks["smtp"] = s.Healthcheck()
	}

	var counter ratelimit.Counter
	if cfg.RedisURL != "" {
		client, err := redis.Open(ctx, cfg.RedisURL)
		if err != nil {
			return nil, err
		}
		counter = client
		svc.checks["redis"] = redis.Healthcheck(client)
		svc.shutdown = append(svc.shutdown, redis.Shutdown(client))
	}

	if cfg.RateLimit.Enabled() {
		limit := ratelimit.Limit{Events: cfg.RateLimit.Events, Window: cfg.RateLimit.Window}

		var err error
		if counter != nil {
			svc.store, err = ratelimit.NewRedisStore(counter, rateLimitPrefix, limit)
		} else {
			svc.store, err = ratelimit.NewMemoryStore(limit)
		}
		if err != nil {
			svc.close(ctx)
			return nil, err
		}
	}

	return svc, nil
}

func (s *services) close(ctx context.Context) {
	for _, fn := range s.shutdown {
		_ = fn(ctx)
	}
}

func buildApp(cfg *config.Config, log *slog.Logger, svc *services) *folio.App {
	var contactMW []folio.Middleware
	if svc.store != nil {
		contactMW = append(contactMW, middlewares.RateLimit(svc.store))
	}

	readiness := []folio.HealthOption{
		folio.WithLivenessPath(livenessPath),
		folio.WithReadinessPath(readinessPath),
		folio.WithHealthTimeout(5 * time.Second),
	}
	for name, fn := range svc.checks {
		readiness = append(readiness, folio.WithReadinessCheck(name, fn))
	}

	opts := []folio.Option{
		folio.WithCustomLogger(log),
		folio.WithBodyLimit(bodyLimit),
		folio.WithMiddleware(
			middlewares.CORS(middlewares.WithAllowOrigins(cfg.CORSOrigins...)),
			middlewares.RequestID(),
			middlewares.Logging(middlewares.WithLoggingSkipPaths(livenessPath, readinessPath)),
			middlewares.Recover(),
			middlewares.Timeout(cfg.RequestTimeout),
		),
		folio.WithErrorHandler(handlers.ErrorHandler),
		folio.WithNotFoundHandler(handlers.NotFound),
		folio.WithMethodNotAllowedHandler(handlers.MethodNotAllowed),
		folio.WithHandlers(
			handlers.NewContactHandler(contact.NewDispatcher(cfg.Contact, svc.sender, nil), contactMW...),
		),
		folio.WithHealthChecks(readiness...),
	}

	if cfg.TrustProxy {
		opts = append(opts, folio.WithTrustProxy())
	}

	if info, err := os.Stat(cfg.StaticDir); err == nil && info.IsDir() {
		opts = append(opts, folio.WithStaticFiles("/", os.DirFS(cfg.StaticDir), "."))
	} else if cfg.StaticDir != "" {
		log.Info("static site disabled", slog.String("dir", cfg.StaticDir))
	}

	return folio.New(opts...)
}
