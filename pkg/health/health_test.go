package health_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/folio/pkg/health"
)

func TestLivenessHandler(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	health.LivenessHandler()(rec, httptest.NewRequest(http.MethodGet, "/api/health", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"ok":true}`, rec.Body.String())
	assert.Contains(t, rec.Header().Get("Content-Type"), "application/json")
}

func TestReadinessHandler(t *testing.T) {
	t.Parallel()

	t.Run("no checks is healthy", func(t *testing.T) {
		t.Parallel()

		rec := httptest.NewRecorder()
		health.ReadinessHandler(nil)(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"ok":true}`, rec.Body.String())
	})

	t.Run("all checks pass", func(t *testing.T) {
		t.Parallel()

		checks := health.Checks{
			"smtp":  func(context.Context) error { return nil },
			"redis": func(context.Context) error { return nil },
		}
		rec := httptest.NewRecorder()
		health.ReadinessHandler(checks)(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"ok":true,"checks":{"smtp":{"ok":true},"redis":{"ok":true}}}`, rec.Body.String())
	})

	t.Run("failed check hides cause", func(t *testing.T) {
		t.Parallel()

		checks := health.Checks{
			"smtp":  func(context.Context) error { return errors.New("dial tcp mail.internal:465: refused") },
			"redis": func(context.Context) error { return nil },
		}
		rec := httptest.NewRecorder()
		health.ReadinessHandler(checks)(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		require.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.NotContains(t, rec.Body.String(), "mail.internal")

		var resp health.Response
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.False(t, resp.OK)
		assert.Equal(t, health.ErrCheckFailed.Error(), resp.Checks["smtp"].Error)
		assert.True(t, resp.Checks["redis"].OK)
	})
}

func TestRun_Timeout(t *testing.T) {
	t.Parallel()

	checks := health.Checks{
		"slow": func(ctx context.Context) error {
			<-ctx.Done()
			return ctx.Err()
		},
	}

	resp := health.Run(context.Background(), checks, health.WithTimeout(20*time.Millisecond))
	require.False(t, resp.OK)
	assert.Equal(t, health.ErrCheckTimeout.Error(), resp.Checks["slow"].Error)
}

func TestRun_Parallel(t *testing.T) {
	t.Parallel()

	started := make(chan struct{}, 2)
	release := make(chan struct{})
	block := func(ctx context.Context) error {
		started <- struct{}{}
		select {
		case <-release:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	go func() {
		<-started
		<-started
		close(release)
	}()

	resp := health.Run(context.Background(), health.Checks{"a": block, "b": block}, health.WithTimeout(time.Second))
	assert.True(t, resp.OK)
}
