package mailer

import "context"

// Sender delivers a prepared Email. Implementations make exactly one
// delivery attempt per call; retries are the caller's decision.
type Sender interface {
	Send(ctx context.Context, email *Email) error
}

// SenderFunc adapts a function to the Sender interface.
type SenderFunc func(ctx context.Context, email *Email) error

// Send implements Sender.
func (f SenderFunc) Send(ctx context.Context, email *Email) error {
	return f(ctx, email)
}
