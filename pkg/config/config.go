package config

import (
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"os"
	"slices"
	"strconv"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/dmitrymomot/folio/pkg/contact"
	"github.com/dmitrymomot/folio/pkg/logger"
	"github.com/dmitrymomot/folio/pkg/mailer/resend"
	"github.com/dmitrymomot/folio/pkg/mailer/smtp"
)

// Mail drivers.
const (
	DriverSMTP   = "smtp"
	DriverResend = "resend"
	DriverLog    = "log"
)

var (
	ErrLoadFailed    = errors.New("config: failed to load")
	ErrInvalidDriver = errors.New("config: unknown MAIL_DRIVER")
	ErrInvalidPort   = errors.New("config: PORT out of range")
)

// Config is the whole process configuration.
type Config struct {
	Port            int           `env:"PORT" envDefault:"3000"`
	StaticDir       string        `env:"STATIC_DIR" envDefault:"public"`
	CORSOrigins     []string      `env:"CORS_ORIGINS" envDefault:"*" envSeparator:","`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
	RequestTimeout  time.Duration `env:"REQUEST_TIMEOUT" envDefault:"30s"`
	MailDriver      string        `env:"MAIL_DRIVER" envDefault:"smtp"`
	RedisURL        string        `env:"REDIS_URL"`
	TrustProxy      bool          `env:"TRUST_PROXY" envDefault:"false"`

	Contact   contact.Config
	SMTP      smtp.Config
	Resend    resend.Config
	RateLimit RateLimit
	Log       logger.Config
	Sentry    Sentry
}

// RateLimit limits contact submissions per client IP. Zero events disables it.
type RateLimit struct {
	Events int           `env:"CONTACT_RATE_LIMIT" envDefault:"0"`
	Window time.Duration `env:"CONTACT_RATE_WINDOW" envDefault:"10m"`
}

// Enabled reports whether submissions are limited.
func (r RateLimit) Enabled() bool {
	return r.Events > 0 && r.Window > 0
}

// Sentry enables error reporting when DSN is set.
type Sentry struct {
	DSN         string `env:"SENTRY_DSN"`
	Environment string `env:"SENTRY_ENVIRONMENT" envDefault:"production"`
}

// Addr is the listen address for Port.
func (c *Config) Addr() string {
	return ":" + strconv.Itoa(c.Port)
}

// Load reads dotenv files (".env" when none are given; missing files are
// skipped) and then the process environment, which takes precedence.
func Load(files ...string) (*Config, error) {
	vars, err := readDotenv(files...)
	if err != nil {
		return nil, err
	}
	maps.Copy(vars, env.ToMap(os.Environ()))
	return Parse(vars)
}

// Parse builds a Config from explicit variables only.
func Parse(vars map[string]string) (*Config, error) {
	cfg, err := env.ParseAsWithOptions[Config](env.Options{Environment: vars})
	if err != nil {
		return nil, errors.Join(ErrLoadFailed, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if !slices.Contains([]string{DriverSMTP, DriverResend, DriverLog}, c.MailDriver) {
		return fmt.Errorf("%w: %q", ErrInvalidDriver, c.MailDriver)
	}
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("%w: %d", ErrInvalidPort, c.Port)
	}
	return nil
}

func readDotenv(files ...string) (map[string]string, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}

	vars := map[string]string{}
	for _, f := range files {
		m, err := godotenv.Read(f)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, errors.Join(ErrLoadFailed, fmt.Errorf("%s: %w", f, err))
		}
		maps.Copy(vars, m)
	}
	return vars, nil
}
