// Package internal provides the core types and implementation behind package folio.
//
// This package is internal and should not be used directly. Import
// "github.com/dmitrymomot/folio" instead, which re-exports the public API.
//
// # Core Types
//
//   - App: routing, middleware, static files, health probes and graceful shutdown
//   - Context: request and response access plus logging helpers
//   - Router: interface handlers use to declare routes
//   - Handler: types that declare routes on a router
//   - HandlerFunc: route handlers that return errors
//   - Middleware: wraps handlers to add cross-cutting concerns
//   - ErrorHandler: renders errors returned by handlers
//
// # Context as context.Context
//
// Context embeds context.Context, so it can be passed directly to any function
// that expects one:
//
//	func (h *ContactHandler) submit(c folio.Context) error {
//	    if err := h.dispatcher.Dispatch(c, s); err != nil {
//	        return err
//	    }
//	    return c.JSON(http.StatusOK, okResponse)
//	}
//
// # Error Flow
//
// A handler error goes to the app's ErrorHandler unless the response was
// already written. [HTTPError] carries the status, the message shown to the
// client and the cause for the log. Without an ErrorHandler the app answers
// a plain 500.
//
// # Request Bodies
//
// [WithBodyLimit] caps every request body. [Context.BindJSON] reports
// malformed input as [ErrInvalidBody] and a body over the cap as
// [ErrBodyTooLarge].
//
// # Server Lifecycle
//
// App.Run listens, runs startup hooks, serves, and on SIGINT, SIGTERM or a
// cancelled base context drains requests and runs shutdown hooks under one
// timeout. Server timeouts are fixed: read 15s, write 30s, idle 120s,
// read header 5s, max header 1MB.
package internal
