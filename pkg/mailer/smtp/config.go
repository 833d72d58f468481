package smtp

import (
	"strings"
	"time"
)

// Config holds SMTP relay configuration.
// Embed this in your app config for env parsing with caarlos0/env.
type Config struct {
	Host     string        `env:"SMTP_HOST"`
	Port     int           `env:"SMTP_PORT" envDefault:"465"`
	Secure   Flag          `env:"SMTP_SECURE" envDefault:"false"`
	Username string        `env:"SMTP_USER"`
	Password string        `env:"SMTP_PASS"`
	Timeout  time.Duration `env:"SMTP_TIMEOUT" envDefault:"15s"`
}

// Flag is a boolean that is true only for the text "true",
// compared case-insensitively. Anything else, including "1" and "yes", is false.
type Flag bool

// UnmarshalText implements encoding.TextUnmarshaler.
func (f *Flag) UnmarshalText(text []byte) error {
	*f = Flag(strings.EqualFold(string(text), "true"))
	return nil
}
