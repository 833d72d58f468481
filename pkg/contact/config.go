package contact

// DefaultFromName is the sender display name when none is configured.
const DefaultFromName = "Contact Form"

// Config is the delivery configuration of the contact form.
// MailTo may be empty at startup; every dispatch then fails with ErrConfiguration.
// FromAddress overrides the SMTP login as the sender address; relays other
// than SMTP have no login, so they need it.
type Config struct {
	MailTo      string `env:"MAIL_TO"`
	FromName    string `env:"FROM_NAME" envDefault:"Contact Form"`
	FromAddress string `env:"FROM_ADDRESS"`
	RelayUser   string `env:"SMTP_USER"`
}

// Sender is the address notifications are sent from:
// FromAddress when set, the SMTP login otherwise.
func (c Config) Sender() string {
	if c.FromAddress != "" {
		return c.FromAddress
	}
	return c.RelayUser
}
