package folio

import (
	"context"
	"io/fs"
	"log/slog"
	"net"
	"time"

	"github.com/dmitrymomot/folio/internal"
	"github.com/dmitrymomot/folio/pkg/health"
	"github.com/dmitrymomot/folio/pkg/logger"
)

// Type aliases - public API
type (
	// App orchestrates the application lifecycle.
	// It manages HTTP routing, middleware, and graceful shutdown.
	App = internal.App

	// Router is the interface handlers use to declare routes.
	Router = internal.Router

	// Context provides request/response access and helper methods.
	Context = internal.Context

	// Handler declares routes on a router.
	Handler = internal.Handler

	// HandlerFunc is the signature for route handlers.
	HandlerFunc = internal.HandlerFunc

	// Middleware wraps a HandlerFunc to add cross-cutting concerns.
	Middleware = internal.Middleware

	// ErrorHandler handles errors returned from handlers.
	ErrorHandler = internal.ErrorHandler

	// Option configures the application.
	Option = internal.Option

	// RunOption configures the server runtime.
	RunOption = internal.RunOption

	// HealthOption configures health check endpoints.
	HealthOption = internal.HealthOption

	// HTTPError is an error carrying a status code and a client-safe message.
	HTTPError = internal.HTTPError

	// HTTPErrorOption configures an HTTPError.
	HTTPErrorOption = internal.HTTPErrorOption

	// ResponseWriter tracks the status and size of a response.
	ResponseWriter = internal.ResponseWriter

	// ContextExtractor extracts a slog attribute from context.
	// Used with WithLogger to add request-scoped values to logs.
	ContextExtractor = logger.ContextExtractor
)

// Request body errors returned by Context.BindJSON.
var (
	ErrInvalidBody  = internal.ErrInvalidBody
	ErrBodyTooLarge = internal.ErrBodyTooLarge
)

// New creates a new application with the given options.
// The App is immutable after creation.
//
// Example:
//
//	app := folio.New(
//	    folio.WithLogger("folio", middlewares.RequestIDExtractor()),
//	    folio.WithHandlers(handlers.NewContactHandler(dispatcher)),
//	)
//
//	err := app.Run(":3000", folio.Logger(log))
func New(opts ...Option) *App {
	return internal.New(opts...)
}

// App options

// WithMiddleware adds global middleware to the application.
// Middleware is applied in the order provided.
func WithMiddleware(mw ...Middleware) Option {
	return internal.WithMiddleware(mw...)
}

// WithHandlers registers handlers that declare routes.
// Each handler's Routes method is called during setup.
func WithHandlers(h ...Handler) Option {
	return internal.WithHandlers(h...)
}

// WithStaticFiles mounts a static file handler at the given pattern.
// Directory paths serve index.html when present; listings are never shown.
//
// Example:
//
//	folio.WithStaticFiles("/", os.DirFS("public"), ".")
func WithStaticFiles(pattern string, fsys fs.FS, subDir string) Option {
	return internal.WithStaticFiles(pattern, fsys, subDir)
}

// WithErrorHandler sets a custom error handler for handler errors.
// Called when a handler returns a non-nil error.
func WithErrorHandler(h ErrorHandler) Option {
	return internal.WithErrorHandler(h)
}

// WithNotFoundHandler sets a custom 404 handler.
func WithNotFoundHandler(h HandlerFunc) Option {
	return internal.WithNotFoundHandler(h)
}

// WithMethodNotAllowedHandler sets a custom 405 handler.
func WithMethodNotAllowedHandler(h HandlerFunc) Option {
	return internal.WithMethodNotAllowedHandler(h)
}

// WithHealthChecks enables health check endpoints with optional configuration.
// Liveness (/api/health): always returns OK if the process is running.
// Readiness (/api/health/ready): runs all configured checks.
//
// Example:
//
//	folio.WithHealthChecks(
//	    folio.WithReadinessCheck("smtp", sender.Healthcheck()),
//	)
func WithHealthChecks(opts ...HealthOption) Option {
	return internal.WithHealthChecks(opts...)
}

// WithLogger creates a logger with a component name and optional extractors.
// The component name is added to every log entry for easy filtering.
func WithLogger(component string, extractors ...ContextExtractor) Option {
	return internal.WithLogger(component, extractors...)
}

// WithCustomLogger sets a fully custom logger.
// Use this when you need complete control over logging configuration.
//
// Example:
//
//	log := logger.NewWithSentry(sentryCfg, os.Stdout, slog.LevelInfo, middlewares.RequestIDExtractor())
//	folio.New(
//	    folio.WithCustomLogger(log),
//	)
func WithCustomLogger(l *slog.Logger) Option {
	return internal.WithCustomLogger(l)
}

// WithBodyLimit caps request bodies at n bytes.
func WithBodyLimit(n int64) Option {
	return internal.WithBodyLimit(n)
}

// WithTrustProxy takes the client address from proxy headers.
func WithTrustProxy() Option {
	return internal.WithTrustProxy()
}

// Health check options

// WithLivenessPath sets a custom liveness endpoint path.
// Defaults to "/api/health".
func WithLivenessPath(path string) HealthOption {
	return internal.WithLivenessPath(path)
}

// WithReadinessPath sets a custom readiness endpoint path.
// Defaults to "/api/health/ready".
func WithReadinessPath(path string) HealthOption {
	return internal.WithReadinessPath(path)
}

// WithHealthTimeout bounds the readiness probe.
func WithHealthTimeout(d time.Duration) HealthOption {
	return internal.WithHealthTimeout(d)
}

// WithReadinessCheck adds a named readiness check.
// Checks run in parallel during readiness probe.
func WithReadinessCheck(name string, fn health.CheckFunc) HealthOption {
	return internal.WithReadinessCheck(name, fn)
}

// Run options

// Logger sets the runtime logger.
// If nil, the app logger is used.
func Logger(l *slog.Logger) RunOption {
	return internal.Logger(l)
}

// ShutdownTimeout sets the timeout for graceful shutdown.
// This applies to both the HTTP server and shutdown hooks.
// Defaults to 30 seconds.
func ShutdownTimeout(d time.Duration) RunOption {
	return internal.ShutdownTimeout(d)
}

// StartupHook registers a function to run before serving requests.
// If any hook fails, Run returns the error.
func StartupHook(fn func(context.Context) error) RunOption {
	return internal.StartupHook(fn)
}

// ShutdownHook registers a cleanup function to run during shutdown.
// Hooks are called in the order they were registered.
//
// Example:
//
//	folio.ShutdownHook(logger.SentryFlush())
func ShutdownHook(fn func(context.Context) error) RunOption {
	return internal.ShutdownHook(fn)
}

// WithContext sets a custom base context for signal handling.
// Cancelling it shuts the server down.
func WithContext(ctx context.Context) RunOption {
	return internal.WithContext(ctx)
}

// OnReady reports the bound listener address.
func OnReady(fn func(net.Addr)) RunOption {
	return internal.OnReady(fn)
}

// Error constructors

// NewHTTPError creates an HTTPError with the given status and message.
func NewHTTPError(code int, message string, opts ...HTTPErrorOption) *HTTPError {
	return internal.NewHTTPError(code, message, opts...)
}

// WithError attaches the cause of an HTTPError for logging.
func WithError(err error) HTTPErrorOption {
	return internal.WithError(err)
}

// WithRequestID attaches a request id to an HTTPError.
func WithRequestID(id string) HTTPErrorOption {
	return internal.WithRequestID(id)
}

// AsHTTPError extracts the HTTPError from an error chain, or returns nil.
func AsHTTPError(err error) *HTTPError {
	return internal.AsHTTPError(err)
}

// Context helpers

// ContextValue retrieves a typed value from the context.
// Returns the zero value of T if the key is not found or type assertion fails.
//
// Example:
//
//	type limitKey struct{}
//
//	remaining := folio.ContextValue[int](c, limitKey{})
func ContextValue[T any](c Context, key any) T {
	if v, ok := c.Get(key).(T); ok {
		return v
	}
	var zero T
	return zero
}
