package handlers

import (
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/folio"
)

// ErrorHandler renders handler errors as the JSON envelope.
//
// An HTTP error keeps its status and message. Anything else, recovered
// panics included, becomes a generic 500. Server-side failures are logged
// with their cause; the cause is never sent.
func ErrorHandler(c folio.Context, err error) error {
	status, msg, cause := http.StatusInternalServerError, MessageInternal, err

	if httpErr := folio.AsHTTPError(err); httpErr != nil {
		status, msg, cause = httpErr.Code, httpErr.Message, httpErr.Err
	}

	if status >= http.StatusInternalServerError {
		attrs := []any{slog.Int("status", status), slog.String("path", c.Request().URL.Path)}
		if cause != nil {
			attrs = append(attrs, slog.String("error", cause.Error()))
		}
		c.LogError(msg, attrs...)
	}

	c.SetHeader("Cache-Control", "no-store")
	return c.JSON(status, failure(msg))
}

// NotFound answers unknown API routes.
func NotFound(c folio.Context) error {
	return folio.NewHTTPError(http.StatusNotFound, MessageNotFound)
}

// MethodNotAllowed answers known routes called with the wrong method.
func MethodNotAllowed(c folio.Context) error {
	return folio.NewHTTPError(http.StatusMethodNotAllowed, MessageMethodNotAllow)
}
