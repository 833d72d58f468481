package smtp

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/wneessen/go-mail"

	"github.com/dmitrymomot/folio/pkg/mailer"
)

// Sender implements mailer.Sender over an SMTP relay.
// Every Send opens its own connection, so a Sender is safe for concurrent use.
type Sender struct {
	config Config
}

// New creates a new SMTP sender.
func New(cfg Config) *Sender {
	return &Sender{config: cfg}
}

// Send implements mailer.Sender. It makes a single delivery attempt.
func (s *Sender) Send(ctx context.Context, email *mailer.Email) error {
	msg, err := buildMessage(email)
	if err != nil {
		return err
	}

	client, err := s.client()
	if err != nil {
		return errors.Join(ErrSendFailed, err)
	}

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return errors.Join(ErrSendFailed, err)
	}
	return nil
}

// Healthcheck returns a check that connects to the relay, negotiates TLS and
// authenticates without sending anything.
func (s *Sender) Healthcheck() func(context.Context) error {
	return func(ctx context.Context) error {
		client, err := s.client()
		if err != nil {
			return errors.Join(ErrDialFailed, err)
		}
		if err := client.DialWithContext(ctx); err != nil {
			return errors.Join(ErrDialFailed, err)
		}
		_ = client.Close()
		return nil
	}
}

// client builds a go-mail client. Secure selects implicit TLS; otherwise
// STARTTLS is used when the relay offers it. Credentials are only sent
// when a username is configured.
func (s *Sender) client() (*mail.Client, error) {
	opts := []mail.Option{mail.WithPort(s.config.Port)}

	if s.config.Secure {
		opts = append(opts, mail.WithSSL())
	} else {
		opts = append(opts, mail.WithTLSPolicy(mail.TLSOpportunistic))
	}

	if s.config.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(s.config.Username),
			mail.WithPassword(s.config.Password),
		)
	}

	if s.config.Timeout > 0 {
		opts = append(opts, mail.WithTimeout(s.config.Timeout))
	}

	return mail.NewClient(s.config.Host, opts...)
}

func buildMessage(email *mailer.Email) (*mail.Msg, error) {
	if email.From == "" {
		return nil, ErrNoSender
	}

	msg := mail.NewMsg()
	if err := msg.From(email.From); err != nil {
		return nil, errors.Join(ErrBuildFailed, fmt.Errorf("from: %w", err))
	}
	if err := msg.To(email.To...); err != nil {
		return nil, errors.Join(ErrBuildFailed, fmt.Errorf("to: %w", err))
	}
	if len(email.CC) > 0 {
		if err := msg.Cc(email.CC...); err != nil {
			return nil, errors.Join(ErrBuildFailed, fmt.Errorf("cc: %w", err))
		}
	}
	if len(email.BCC) > 0 {
		if err := msg.Bcc(email.BCC...); err != nil {
			return nil, errors.Join(ErrBuildFailed, fmt.Errorf("bcc: %w", err))
		}
	}
	if email.ReplyTo != "" {
		if err := msg.ReplyTo(email.ReplyTo); err != nil {
			return nil, errors.Join(ErrBuildFailed, fmt.Errorf("reply-to: %w", err))
		}
	}

	msg.Subject(email.Subject)
	msg.SetDate()
	msg.SetMessageID()

	for k, v := range email.Headers {
		msg.SetGenHeader(mail.Header(k), v)
	}

	switch {
	case email.Text != "" && email.HTML != "":
		msg.SetBodyString(mail.TypeTextPlain, email.Text)
		msg.AddAlternativeString(mail.TypeTextHTML, email.HTML)
	case email.HTML != "":
		msg.SetBodyString(mail.TypeTextHTML, email.HTML)
	default:
		msg.SetBodyString(mail.TypeTextPlain, email.Text)
	}

	for _, a := range email.Attachments {
		opts := []mail.FileOption{}
		if a.ContentType != "" {
			opts = append(opts, mail.WithFileContentType(mail.ContentType(a.ContentType)))
		}
		if a.ContentID != "" {
			opts = append(opts, mail.WithFileContentID(a.ContentID))
			msg.EmbedReadSeeker(a.Filename, bytes.NewReader(a.Content), opts...)
			continue
		}
		msg.AttachReadSeeker(a.Filename, bytes.NewReader(a.Content), opts...)
	}

	return msg, nil
}
