package main

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/folio/pkg/config"
	"github.com/dmitrymomot/folio/pkg/contact/client"
	"github.com/dmitrymomot/folio/pkg/redis"
)

const alice = `{"name":"Alice","email":"alice@example.com","subject":"Hi","message":"Hello there"}`

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func testConfig(t *testing.T, vars map[string]string) *config.Config {
	t.Helper()

	base := map[string]string{
		"MAIL_DRIVER": "log",
		"MAIL_TO":     "owner@example.com",
		"SMTP_USER":   "relay@example.com",
		"STATIC_DIR":  filepath.Join(t.TempDir(), "missing"),
	}
	for k, v := range vars {
		base[k] = v
	}

	cfg, err := config.Parse(base)
	require.NoError(t, err)
	return cfg
}

func newTestServer(t *testing.T, cfg *config.Config) (*httptest.Server, *syncBuffer) {
	t.Helper()

	logs := &syncBuffer{}
	log := newLogger(cfg, logs)

	svc, err := newServices(context.Background(), cfg, log)
	require.NoError(t, err)

	srv := httptest.NewServer(buildApp(cfg, log, svc))
	t.Cleanup(srv.Close)
	return srv, logs
}

func post(t *testing.T, url, body string) *http.Response {
	t.Helper()
	resp, err := http.Post(url+"/api/contact", "application/json", strings.NewReader(body))
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func TestNewServices_Drivers(t *testing.T) {
	t.Parallel()

	svc, err := newServices(context.Background(), testConfig(t, map[string]string{"MAIL_DRIVER": "smtp"}), nil)
	require.NoError(t, err)
	assert.Contains(t, svc.checks, "smtp")
	assert.Nil(t, svc.store)

	svc, err = newServices(context.Background(), testConfig(t, map[string]string{"MAIL_DRIVER": "resend"}), nil)
	require.NoError(t, err)
	assert.Empty(t, svc.checks)

	svc, err = newServices(context.Background(), testConfig(t, map[string]string{"CONTACT_RATE_LIMIT": "3"}), nil)
	require.NoError(t, err)
	assert.NotNil(t, svc.store)
}

func TestNewServices_InvalidRedisURL(t *testing.T) {
	t.Parallel()

	_, err := newServices(context.Background(), testConfig(t, map[string]string{"REDIS_URL": "http://localhost:6379"}), nil)
	require.ErrorIs(t, err, redis.ErrFailedToParseURL)
}

func TestServe_ContactRelay(t *testing.T) {
	t.Parallel()

	srv, logs := newTestServer(t, testConfig(t, map[string]string{"CONTACT_RATE_LIMIT": "1"}))

	resp := post(t, srv.URL, alice)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))
	assert.Contains(t, logs.String(), "email captured")
	assert.Contains(t, logs.String(), "[Contact] Hi")

	resp = post(t, srv.URL, alice)
	assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
}

func TestServe_MissingRecipient(t *testing.T) {
	t.Parallel()

	srv, logs := newTestServer(t, testConfig(t, map[string]string{"MAIL_TO": ""}))

	resp := post(t, srv.URL, alice)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.NotContains(t, logs.String(), "email captured")
}

func TestServe_StaticSite(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<h1>home</h1>"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("SMTP_PASS=hunter2\n"), 0o600))

	srv, _ := newTestServer(t, testConfig(t, map[string]string{"STATIC_DIR": dir}))

	resp, err := http.Get(srv.URL + "/")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	secret, err := http.Get(srv.URL + "/.env")
	require.NoError(t, err)
	defer secret.Body.Close()
	assert.Equal(t, http.StatusNotFound, secret.StatusCode)

	health, err := http.Get(srv.URL + "/api/health")
	require.NoError(t, err)
	defer health.Body.Close()
	assert.Equal(t, http.StatusOK, health.StatusCode)
}

func TestSendCmd(t *testing.T) {
	t.Parallel()

	srv, _ := newTestServer(t, testConfig(t, nil))

	tests := []struct {
		name    string
		email   string
		want    string
		wantErr bool
	}{
		{name: "delivered", email: "alice@example.com", want: client.MessageSent},
		{name: "invalid email", email: "alice", want: client.MessageInvalidEmail, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var out bytes.Buffer
			cmd := newRootCmd()
			cmd.SetOut(&out)
			cmd.SetArgs([]string{
				"send", "--url", srv.URL,
				"--name", "Alice", "--email", tt.email,
				"--subject", "Hi", "--message", "Hello there",
			})

			err := cmd.Execute()
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.want+"\n", out.String())
		})
	}
}

func TestHealthCmd(t *testing.T) {
	t.Parallel()

	envFile := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(envFile, []byte("MAIL_DRIVER=log\n"), 0o600))

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--env-file", envFile, "health"})

	require.NoError(t, cmd.Execute())
	assert.JSONEq(t, `{"ok":true}`, out.String())
}
