// Package smtp implements mailer.Sender for SMTP relays using go-mail.
//
//	sender := smtp.New(smtp.Config{
//		Host:     "smtp.example.com",
//		Port:     465,
//		Secure:   true,
//		Username: "relay@example.com",
//		Password: os.Getenv("SMTP_PASS"),
//		Timeout:  15 * time.Second,
//	})
//
// With Secure set the connection uses implicit TLS. Otherwise the sender
// upgrades with STARTTLS when the relay advertises it and falls back to
// plain text when it does not. PLAIN authentication is used only when a
// username is configured.
//
// Each Send is a single attempt on a fresh connection; there are no retries.
// [Sender.Healthcheck] dials the relay for readiness probes.
package smtp
