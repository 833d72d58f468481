package contact

import (
	"context"
	"errors"

	"github.com/dmitrymomot/folio/pkg/mailer"
)

// Dispatcher turns a validated submission into one outbound email.
// It is read-only after construction and safe for concurrent use.
type Dispatcher struct {
	cfg    Config
	mailer *mailer.Mailer
}

// NewDispatcher creates a dispatcher. A nil renderer uses the embedded templates.
func NewDispatcher(cfg Config, sender mailer.Sender, renderer *mailer.Renderer) *Dispatcher {
	if cfg.FromName == "" {
		cfg.FromName = DefaultFromName
	}
	if renderer == nil {
		renderer = NewRenderer()
	}
	return &Dispatcher{
		cfg:    cfg,
		mailer: mailer.New(sender, renderer),
	}
}

// Dispatch sends the notification for s to the configured destination.
//
// With no destination configured it returns ErrConfiguration without
// touching the relay. Any rendering or relay failure is returned as
// ErrDelivery joined with the cause. There is exactly one delivery attempt.
func (d *Dispatcher) Dispatch(ctx context.Context, s Submission) error {
	if d.cfg.MailTo == "" {
		return ErrConfiguration
	}

	err := d.mailer.Send(ctx, mailer.SendParams{
		To:       d.cfg.MailTo,
		Template: TemplateName,
		Data:     s,
		From:     mailer.Recipient(d.cfg.FromName, d.cfg.Sender()),
		ReplyTo:  s.Email,
	})
	if err != nil {
		return errors.Join(ErrDelivery, err)
	}
	return nil
}
