package internal

import (
	"io/fs"
	"log/slog"
	"net/http"
	"path"
	"strings"

	"github.com/dmitrymomot/folio/pkg/logger"
)

// Option configures the application.
type Option func(*App)

// WithMiddleware adds global middleware to the application.
// Middleware is applied in the order provided.
func WithMiddleware(mw ...Middleware) Option {
	return func(a *App) {
		a.middlewares = append(a.middlewares, mw...)
	}
}

// WithHandlers registers handlers that declare routes.
// Each handler's Routes method is called during setup.
func WithHandlers(h ...Handler) Option {
	return func(a *App) {
		a.handlers = append(a.handlers, h...)
	}
}

// WithStaticFiles mounts a static file handler at the given pattern.
// Directory paths serve their index.html when one exists and 404 otherwise;
// listings are never rendered. Any path with a segment starting with "."
// (.env, .git/config) is 404.
//
// Example:
//
//	folio.New(
//	    folio.WithStaticFiles("/", os.DirFS(cfg.StaticDir), "."),
//	)
func WithStaticFiles(pattern string, fsys fs.FS, subDir string) Option {
	return func(a *App) {
		subFS, err := fs.Sub(fsys, subDir)
		if err != nil {
			panic(err)
		}

		fileServer := http.FileServerFS(subFS)

		var handler http.Handler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isHidden(r.URL.Path) {
				http.NotFound(w, r)
				return
			}
			if strings.HasSuffix(r.URL.Path, "/") && !hasIndex(subFS, r.URL.Path) {
				http.NotFound(w, r)
				return
			}

			w.Header().Set("Cache-Control", "public, max-age=3600")
			w.Header().Set("X-Content-Type-Options", "nosniff")

			fileServer.ServeHTTP(w, r)
		})

		if prefix := strings.TrimSuffix(pattern, "/"); prefix != "" {
			handler = http.StripPrefix(prefix, handler)
		}

		a.staticRoutes = append(a.staticRoutes, staticRoute{handler, pattern})
	}
}

func isHidden(p string) bool {
	for seg := range strings.SplitSeq(path.Clean("/"+p), "/") {
		if strings.HasPrefix(seg, ".") {
			return true
		}
	}
	return false
}

func hasIndex(fsys fs.FS, dir string) bool {
	name := strings.TrimPrefix(path.Join(path.Clean("/"+dir), "index.html"), "/")
	info, err := fs.Stat(fsys, name)
	return err == nil && !info.IsDir()
}

// WithErrorHandler sets a custom error handler for handler errors.
// Called when a handler returns a non-nil error.
//
// Example:
//
//	folio.WithErrorHandler(func(c folio.Context, err error) error {
//	    return c.JSON(http.StatusInternalServerError, map[string]any{
//	        "ok": false, "error": "Internal server error.",
//	    })
//	})
func WithErrorHandler(h ErrorHandler) Option {
	return func(a *App) {
		a.errorHandler = h
	}
}

// WithNotFoundHandler sets a custom 404 handler.
func WithNotFoundHandler(h HandlerFunc) Option {
	return func(a *App) {
		a.notFoundHandler = h
	}
}

// WithMethodNotAllowedHandler sets a custom 405 handler.
func WithMethodNotAllowedHandler(h HandlerFunc) Option {
	return func(a *App) {
		a.methodNotAllowedHandler = h
	}
}

// WithHealthChecks enables health check endpoints with optional configuration.
// Liveness (/api/health): always returns OK if the process is running.
// Readiness (/api/health/ready): runs all configured checks.
//
// Example:
//
//	folio.WithHealthChecks(
//	    folio.WithReadinessCheck("smtp", smtpSender.Healthcheck()),
//	    folio.WithReadinessCheck("redis", redis.Healthcheck(client)),
//	)
func WithHealthChecks(opts ...HealthOption) Option {
	return func(a *App) {
		cfg := &healthConfig{
			livenessPath:  defaultLivenessPath,
			readinessPath: defaultReadinessPath,
			timeout:       defaultHealthTimeout,
		}
		for _, opt := range opts {
			opt(cfg)
		}
		a.healthConfig = cfg
	}
}

// WithLogger creates a logger with a component name and optional extractors.
// The component name is added to every log entry for easy filtering.
// Extractors pull values from context (e.g., request_id).
//
// Example:
//
//	folio.New(
//	    folio.WithLogger("folio", middlewares.RequestIDExtractor()),
//	)
func WithLogger(component string, extractors ...logger.ContextExtractor) Option {
	return func(a *App) {
		a.logger = logger.New(extractors...).With("component", component)
	}
}

// WithCustomLogger sets a fully custom logger.
// Use this when you need complete control over logging configuration.
func WithCustomLogger(l *slog.Logger) Option {
	return func(a *App) {
		if l != nil {
			a.logger = l
		}
	}
}

// WithBodyLimit caps request bodies at n bytes. Zero or less means no cap.
func WithBodyLimit(n int64) Option {
	return func(a *App) {
		a.bodyLimit = n
	}
}

// WithTrustProxy makes the app take the client address from
// True-Client-IP, X-Real-IP or X-Forwarded-For. Enable it only
// behind a proxy that sets those headers.
func WithTrustProxy() Option {
	return func(a *App) {
		a.trustProxy = true
	}
}
