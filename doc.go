// Package folio is the HTTP backend of a personal website: it relays the
// site's contact form to the owner's mailbox and serves the static pages.
//
// The package itself is a thin framework over chi: an [App] built from
// options, handlers that declare their routes, middleware over a [Context],
// JSON error rendering and graceful shutdown. The contact flow lives in
// pkg/contact; HTTP endpoints live in handlers; the binary is cmd/folio.
//
// # Quick Start
//
//	cfg, err := config.Load()
//	if err != nil {
//	    return err
//	}
//
//	sender := smtp.New(cfg.SMTP)
//	dispatcher := contact.NewDispatcher(cfg.Contact, sender, nil)
//
//	app := folio.New(
//	    folio.WithCustomLogger(log),
//	    folio.WithBodyLimit(64<<10),
//	    folio.WithMiddleware(
//	        middlewares.CORS(middlewares.WithAllowOrigins(cfg.CORSOrigins...)),
//	        middlewares.RequestID(),
//	        middlewares.Logging(),
//	        middlewares.Recover(),
//	    ),
//	    folio.WithErrorHandler(handlers.ErrorHandler),
//	    folio.WithNotFoundHandler(handlers.NotFound),
//	    folio.WithHandlers(handlers.NewContactHandler(dispatcher)),
//	    folio.WithHealthChecks(
//	        folio.WithReadinessCheck("smtp", sender.Healthcheck()),
//	    ),
//	    folio.WithStaticFiles("/", os.DirFS(cfg.StaticDir), "."),
//	)
//
//	return app.Run(cfg.Addr(), folio.ShutdownTimeout(cfg.ShutdownTimeout))
//
// # Handlers
//
// Handlers implement the [Handler] interface to declare routes:
//
//	func (h *ContactHandler) Routes(r folio.Router) {
//	    r.Route("/api", func(r folio.Router) {
//	        r.POST("/contact", h.submit)
//	    })
//	}
//
// A handler returns an error instead of writing one. [HTTPError] carries the
// status, the message for the client and the cause for the log; anything
// else is rendered as a generic 500 by the app's error handler.
//
// # Health
//
// [WithHealthChecks] registers GET /api/health (always {"ok":true}) and
// GET /api/health/ready, which runs the named checks in parallel and answers
// 503 when any fails.
package folio
