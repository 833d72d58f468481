package middlewares_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/folio/internal"
	"github.com/dmitrymomot/folio/middlewares"
)

func TestLogging(t *testing.T) {
	t.Parallel()

	t.Run("logs one entry per request", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodPost, "/api/contact", nil)
		req.RemoteAddr = "198.51.100.4:5000"
		ctx := newTestContext(httptest.NewRecorder(), req)

		handler := middlewares.Logging()(func(c internal.Context) error {
			return c.String(http.StatusOK, "hello")
		})
		require.NoError(t, handler(ctx))

		entries := ctx.logs.entries()
		require.Len(t, entries, 1)
		e := entries[0]
		require.Equal(t, "request", e["msg"])
		require.Equal(t, "INFO", e["level"])
		require.Equal(t, "POST", e["method"])
		require.Equal(t, "/api/contact", e["path"])
		require.InDelta(t, 200, e["status"], 0)
		require.InDelta(t, 5, e["size"], 0)
		require.Equal(t, "198.51.100.4", e["ip"])
		require.Contains(t, e, "duration")
	})

	t.Run("unwritten errors use their status", func(t *testing.T) {
		t.Parallel()

		ctx := newTestContext(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/api/contact", nil))
		handler := middlewares.Logging()(func(c internal.Context) error {
			return internal.ErrBadRequest("All fields are required.")
		})
		require.Error(t, handler(ctx))

		e := ctx.logs.entries()[0]
		require.InDelta(t, 400, e["status"], 0)
		require.Equal(t, "INFO", e["level"])
	})

	t.Run("server errors log at warn", func(t *testing.T) {
		t.Parallel()

		ctx := newTestContext(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
		handler := middlewares.Logging()(func(c internal.Context) error {
			return errors.New("boom")
		})
		require.Error(t, handler(ctx))

		e := ctx.logs.entries()[0]
		require.InDelta(t, 500, e["status"], 0)
		require.Equal(t, "WARN", e["level"])
	})

	t.Run("skipped paths are silent", func(t *testing.T) {
		t.Parallel()

		ctx := newTestContext(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/health", nil))
		handler := middlewares.Logging(middlewares.WithLoggingSkipPaths("/api/health"))(func(c internal.Context) error {
			return c.NoContent(http.StatusOK)
		})
		require.NoError(t, handler(ctx))
		require.Empty(t, ctx.logs.entries())
	})
}
