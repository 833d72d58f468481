// Package middlewares provides HTTP middleware for folio applications.
//
// # Request ID
//
// RequestID assigns an id to each request, reusing a safe upstream
// X-Request-ID or X-Correlation-ID and otherwise generating a UUID.
// Pair it with RequestIDExtractor so every log entry carries request_id:
//
//	log := logger.New(middlewares.RequestIDExtractor())
//	app := folio.New(
//	    folio.WithCustomLogger(log),
//	    folio.WithMiddleware(middlewares.RequestID()),
//	)
//
// # Recover
//
// Recover turns a panic into a *PanicError for the app error handler and
// logs the panic value with its stack.
//
// # Timeout
//
// Timeout puts a deadline on the request context and logs requests that
// outlive it. Handler errors pass through unchanged.
//
// # CORS
//
// CORS answers preflight requests and adds CORS headers. All origins are
// allowed by default; restrict them with WithAllowOrigins:
//
//	middlewares.CORS(middlewares.WithAllowOrigins(cfg.CORSOrigins...))
//
// # Logging
//
// Logging writes one entry per request with method, path, status, size,
// duration and client ip.
//
// # Rate Limiting
//
// RateLimit admits requests while a ratelimit.Store allows them and answers
// 429 with Retry-After otherwise. It is meant for single routes:
//
//	r.POST("/contact", h.submit, middlewares.RateLimit(store))
//
// # Recommended Middleware Order
//
//	folio.WithMiddleware(
//	    middlewares.CORS(),      // preflight before anything else
//	    middlewares.RequestID(), // id for all subsequent logging
//	    middlewares.Logging(),   // sees the final status
//	    middlewares.Recover(),   // catches panics from handlers
//	    middlewares.Timeout(30*time.Second),
//	)
package middlewares
