package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/folio"
	"github.com/dmitrymomot/folio/pkg/logger"
)

func newServeCmd(load loader) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		Long: `Serves STATIC_DIR at / and the API under /api:

  POST /api/contact        relay a contact form submission
  GET  /api/health         liveness
  GET  /api/health/ready   readiness (SMTP relay, Redis)

Mail is sent from FROM_ADDRESS, or SMTP_USER when it is unset. The resend
and log drivers need FROM_ADDRESS.

Stops gracefully on SIGINT or SIGTERM.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := load()
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			log := newLogger(cfg, os.Stdout)

			svc, err := newServices(ctx, cfg, log)
			if err != nil {
				log.Error("failed to initialize services", slog.String("error", err.Error()))
				return err
			}

			if cfg.Contact.MailTo == "" {
				log.Warn("MAIL_TO is not set, contact submissions will be rejected")
			}
			if cfg.Contact.Sender() == "" {
				log.Warn("neither FROM_ADDRESS nor SMTP_USER is set, the relay will reject the sender")
			}
			log.Info("contact relay configured",
				slog.String("driver", cfg.MailDriver),
				slog.Bool("rate_limit", svc.store != nil),
				slog.Bool("redis", cfg.RedisURL != ""),
			)

			runOpts := []folio.RunOption{
				folio.WithContext(ctx),
				folio.Logger(log),
				folio.ShutdownTimeout(cfg.ShutdownTimeout),
				folio.ShutdownHook(logger.SentryFlush()),
			}
			for _, fn := range svc.shutdown {
				runOpts = append(runOpts, folio.ShutdownHook(fn))
			}

			return buildApp(cfg, log, svc).Run(cfg.Addr(), runOpts...)
		},
	}
}
