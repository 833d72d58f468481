package internal

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

// Context provides request and response access for handlers.
// It embeds context.Context, so it can be passed wherever one is expected.
type Context interface {
	context.Context

	// Request returns the underlying *http.Request.
	Request() *http.Request

	// Response returns the underlying http.ResponseWriter.
	Response() http.ResponseWriter

	// ResponseWriter returns the tracking writer wrapping Response.
	ResponseWriter() *ResponseWriter

	// Context returns the request's context.Context.
	Context() context.Context

	// SetContext replaces the request's context. Later middleware and
	// the handler see the new one.
	SetContext(ctx context.Context)

	// Param returns the URL parameter value by name.
	Param(name string) string

	// Header returns the request header value by name.
	Header(name string) string

	// SetHeader sets a response header.
	SetHeader(name, value string)

	// RealIP returns the client address without the port.
	// Behind a proxy it reflects whatever the app trusts to rewrite RemoteAddr.
	RealIP() string

	// JSON writes v as a JSON response with the given status code.
	JSON(code int, v any) error

	// String writes a plain text response.
	String(code int, s string) error

	// NoContent writes a response with no body.
	NoContent(code int) error

	// BindJSON decodes the request body into v.
	// Malformed input yields ErrInvalidBody, an oversized body ErrBodyTooLarge.
	BindJSON(v any) error

	// Error creates an HTTPError.
	//
	//	return c.Error(http.StatusBadRequest, "All fields are required.")
	Error(code int, message string, opts ...HTTPErrorOption) *HTTPError

	// Written reports whether a response has been sent.
	Written() bool

	// Logger returns the app logger.
	Logger() *slog.Logger

	// LogDebug logs at debug level with the request context.
	LogDebug(msg string, attrs ...any)

	// LogInfo logs at info level with the request context.
	LogInfo(msg string, attrs ...any)

	// LogWarn logs at warn level with the request context.
	LogWarn(msg string, attrs ...any)

	// LogError logs at error level with the request context.
	LogError(msg string, attrs ...any)

	// Set stores a value in the request context.
	// Values set here are visible to context extractors in the logger.
	Set(key, value any)

	// Get returns a value stored with Set.
	Get(key any) any
}

// requestContext implements the Context interface.
type requestContext struct {
	response       http.ResponseWriter
	request        *http.Request
	responseWriter *ResponseWriter
	logger         *slog.Logger
}

func newContext(w http.ResponseWriter, r *http.Request, app *App) *requestContext {
	rw := NewResponseWriter(w)

	return &requestContext{
		request:        r,
		response:       rw,
		responseWriter: rw,
		logger:         app.logger,
	}
}

func (c *requestContext) Request() *http.Request {
	return c.request
}

func (c *requestContext) Response() http.ResponseWriter {
	return c.response
}

func (c *requestContext) ResponseWriter() *ResponseWriter {
	return c.responseWriter
}

func (c *requestContext) Context() context.Context {
	return c.request.Context()
}

func (c *requestContext) SetContext(ctx context.Context) {
	c.request = c.request.WithContext(ctx)
}

func (c *requestContext) Deadline() (deadline time.Time, ok bool) {
	return c.request.Context().Deadline()
}

func (c *requestContext) Done() <-chan struct{} {
	return c.request.Context().Done()
}

func (c *requestContext) Err() error {
	return c.request.Context().Err()
}

func (c *requestContext) Value(key any) any {
	return c.request.Context().Value(key)
}

func (c *requestContext) Param(name string) string {
	return chi.URLParam(c.request, name)
}

func (c *requestContext) Header(name string) string {
	return c.request.Header.Get(name)
}

func (c *requestContext) SetHeader(name, value string) {
	c.response.Header().Set(name, value)
}

func (c *requestContext) RealIP() string {
	host, _, err := net.SplitHostPort(c.request.RemoteAddr)
	if err != nil {
		return c.request.RemoteAddr
	}
	return host
}

func (c *requestContext) JSON(code int, v any) error {
	c.response.Header().Set("Content-Type", "application/json; charset=utf-8")
	c.response.WriteHeader(code)
	return json.NewEncoder(c.response).Encode(v)
}

func (c *requestContext) String(code int, s string) error {
	c.response.Header().Set("Content-Type", "text/plain; charset=utf-8")
	c.response.WriteHeader(code)
	_, err := c.response.Write([]byte(s))
	return err
}

func (c *requestContext) NoContent(code int) error {
	c.response.WriteHeader(code)
	return nil
}

func (c *requestContext) BindJSON(v any) error {
	if c.request.Body == nil || c.request.Body == http.NoBody {
		return ErrInvalidBody
	}

	dec := json.NewDecoder(c.request.Body)
	if err := dec.Decode(v); err != nil {
		return bindError(err)
	}

	// The body must hold exactly one JSON value.
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		if err == nil {
			return errors.Join(ErrInvalidBody, errTrailingData)
		}
		return bindError(err)
	}
	return nil
}

var errTrailingData = errors.New("unexpected data after JSON value")

func bindError(err error) error {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return errors.Join(ErrBodyTooLarge, err)
	}
	if errors.Is(err, io.EOF) {
		return ErrInvalidBody
	}
	return errors.Join(ErrInvalidBody, err)
}

func (c *requestContext) Error(code int, message string, opts ...HTTPErrorOption) *HTTPError {
	return NewHTTPError(code, message, opts...)
}

func (c *requestContext) Written() bool {
	return c.responseWriter.Written()
}

func (c *requestContext) Logger() *slog.Logger {
	return c.logger
}

func (c *requestContext) LogDebug(msg string, attrs ...any) {
	c.logger.DebugContext(c.request.Context(), msg, attrs...)
}

func (c *requestContext) LogInfo(msg string, attrs ...any) {
	c.logger.InfoContext(c.request.Context(), msg, attrs...)
}

func (c *requestContext) LogWarn(msg string, attrs ...any) {
	c.logger.WarnContext(c.request.Context(), msg, attrs...)
}

func (c *requestContext) LogError(msg string, attrs ...any) {
	c.logger.ErrorContext(c.request.Context(), msg, attrs...)
}

func (c *requestContext) Set(key, value any) {
	c.SetContext(context.WithValue(c.request.Context(), key, value))
}

func (c *requestContext) Get(key any) any {
	return c.request.Context().Value(key)
}
