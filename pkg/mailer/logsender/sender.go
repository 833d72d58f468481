// Package logsender implements mailer.Sender by writing messages to a
// structured logger instead of delivering them. Use it in development.
package logsender

import (
	"context"
	"log/slog"
	"strings"

	"github.com/dmitrymomot/folio/pkg/mailer"
	"github.com/dmitrymomot/folio/pkg/sanitizer"
)

// Sender logs every email at info level.
type Sender struct {
	logger *slog.Logger
}

// New creates a log sender. A nil logger uses slog.Default().
func New(logger *slog.Logger) *Sender {
	if logger == nil {
		logger = slog.Default()
	}
	return &Sender{logger: logger}
}

// Send implements mailer.Sender.
func (s *Sender) Send(ctx context.Context, email *mailer.Email) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	body := email.Text
	if body == "" {
		body = sanitizer.StripHTML(email.HTML)
	}

	s.logger.InfoContext(ctx, "email captured",
		slog.String("from", email.From),
		slog.String("to", strings.Join(email.To, ", ")),
		slog.String("reply_to", email.ReplyTo),
		slog.String("subject", email.Subject),
		slog.Int("attachments", len(email.Attachments)),
		slog.String("body", body),
	)
	return nil
}
