package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/folio/pkg/config"
)

func TestParse_Defaults(t *testing.T) {
	t.Parallel()

	cfg, err := config.Parse(map[string]string{})
	require.NoError(t, err)

	assert.Equal(t, 3000, cfg.Port)
	assert.Equal(t, ":3000", cfg.Addr())
	assert.Equal(t, "public", cfg.StaticDir)
	assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
	assert.Equal(t, config.DriverSMTP, cfg.MailDriver)
	assert.False(t, cfg.TrustProxy)

	assert.Equal(t, 465, cfg.SMTP.Port)
	assert.False(t, bool(cfg.SMTP.Secure))
	assert.Equal(t, 15*time.Second, cfg.SMTP.Timeout)

	assert.Empty(t, cfg.Contact.MailTo, "missing MAIL_TO is not a load error")
	assert.Equal(t, "Contact Form", cfg.Contact.FromName)

	assert.False(t, cfg.RateLimit.Enabled())
	assert.Equal(t, 10*time.Minute, cfg.RateLimit.Window)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "production", cfg.Sentry.Environment)
}

func TestParse_Overrides(t *testing.T) {
	t.Parallel()

	cfg, err := config.Parse(map[string]string{
		"PORT":               "8080",
		"SMTP_HOST":          "smtp.example.com",
		"SMTP_PORT":          "587",
		"SMTP_SECURE":        "TRUE",
		"SMTP_USER":          "relay@example.com",
		"SMTP_PASS":          "secret",
		"MAIL_TO":            "owner@example.com",
		"FROM_NAME":          "Website",
		"CORS_ORIGINS":       "https://a.example,https://b.example",
		"CONTACT_RATE_LIMIT": "5",
		"MAIL_DRIVER":        "log",
		"TRUST_PROXY":        "true",
		"REQUEST_TIMEOUT":    "5s",
	})
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Addr())
	assert.True(t, cfg.TrustProxy)
	assert.Equal(t, 5*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "smtp.example.com", cfg.SMTP.Host)
	assert.Equal(t, 587, cfg.SMTP.Port)
	assert.True(t, bool(cfg.SMTP.Secure))
	assert.Equal(t, "relay@example.com", cfg.SMTP.Username)
	assert.Equal(t, "relay@example.com", cfg.Contact.Sender())
	assert.Equal(t, "owner@example.com", cfg.Contact.MailTo)
	assert.Equal(t, "Website", cfg.Contact.FromName)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSOrigins)
	assert.True(t, cfg.RateLimit.Enabled())
	assert.Equal(t, config.DriverLog, cfg.MailDriver)
}

func TestParse_FromAddress(t *testing.T) {
	t.Parallel()

	cfg, err := config.Parse(map[string]string{
		"MAIL_DRIVER":  "resend",
		"FROM_ADDRESS": "hello@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, "hello@example.com", cfg.Contact.Sender())

	cfg, err = config.Parse(map[string]string{
		"SMTP_USER":    "relay@example.com",
		"FROM_ADDRESS": "hello@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, "hello@example.com", cfg.Contact.Sender(), "FROM_ADDRESS wins over SMTP_USER")
}

func TestParse_SecureFlag(t *testing.T) {
	t.Parallel()

	for in, want := range map[string]bool{"true": true, "True": true, "false": false, "1": false, "yes": false, "": false} {
		cfg, err := config.Parse(map[string]string{"SMTP_SECURE": in})
		require.NoError(t, err)
		assert.Equal(t, want, bool(cfg.SMTP.Secure), "SMTP_SECURE=%q", in)
	}
}

func TestParse_Invalid(t *testing.T) {
	t.Parallel()

	_, err := config.Parse(map[string]string{"MAIL_DRIVER": "pigeon"})
	require.ErrorIs(t, err, config.ErrInvalidDriver)

	_, err = config.Parse(map[string]string{"PORT": "0"})
	require.ErrorIs(t, err, config.ErrInvalidPort)

	_, err = config.Parse(map[string]string{"SMTP_PORT": "smtp"})
	require.ErrorIs(t, err, config.ErrLoadFailed)
}

func TestLoad_Dotenv(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "test.env")
	require.NoError(t, os.WriteFile(path, []byte("FOLIO_TEST_ONLY=1\nSTATIC_DIR=site\nFROM_NAME=\"Dotenv Name\"\n"), 0o600))

	cfg, err := config.Load(filepath.Join(dir, "missing.env"), path)
	require.NoError(t, err)
	assert.Equal(t, "site", cfg.StaticDir)
	assert.Equal(t, "Dotenv Name", cfg.Contact.FromName)
}
