package mailer

import (
	"bytes"
	"context"
	"errors"
	"strings"
	texttemplate "text/template"
)

const defaultFallbackSubject = "Notification"

// Mailer renders templates and hands the result to a Sender.
type Mailer struct {
	sender          Sender
	renderer        *Renderer
	fallbackSubject string
}

// Option configures a Mailer.
type Option func(*Mailer)

// WithFallbackSubject sets the subject used when neither the call
// nor the template provides one.
func WithFallbackSubject(subject string) Option {
	return func(m *Mailer) {
		if subject != "" {
			m.fallbackSubject = subject
		}
	}
}

// New creates a Mailer.
func New(sender Sender, renderer *Renderer, opts ...Option) *Mailer {
	m := &Mailer{
		sender:          sender,
		renderer:        renderer,
		fallbackSubject: defaultFallbackSubject,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// SendParams describes a templated email.
type SendParams struct {
	To       string // Single recipient
	Template string // Template name without extension, e.g. "contact"
	Data     any

	// Optional overrides
	Subject     string
	From        string
	ReplyTo     string
	CC          []string
	BCC         []string
	Headers     map[string]string
	Tags        Tags
	Attachments []Attachment
}

// Send renders a template and makes one delivery attempt.
// Subject resolution: params.Subject > template front matter > fallback.
// The resolved subject is itself executed as a text template with Data.
func (m *Mailer) Send(ctx context.Context, params SendParams) error {
	if params.To == "" {
		return ErrNoRecipient
	}

	result, err := m.renderer.Render(params.Template, params.Data)
	if err != nil {
		return errors.Join(ErrRenderFailed, err)
	}

	subject := params.Subject
	if subject == "" {
		var ok bool
		if subject, ok = result.Subject(); !ok {
			subject = m.fallbackSubject
		}
	}

	subject, err = renderSubject(subject, params.Data)
	if err != nil {
		return errors.Join(ErrRenderFailed, err)
	}

	return m.SendRaw(ctx, &Email{
		To:          []string{params.To},
		Subject:     subject,
		HTML:        result.HTML,
		Text:        result.Text,
		From:        params.From,
		ReplyTo:     params.ReplyTo,
		CC:          params.CC,
		BCC:         params.BCC,
		Headers:     params.Headers,
		Tags:        params.Tags,
		Attachments: params.Attachments,
	})
}

// SendRaw sends a pre-built email without template rendering.
func (m *Mailer) SendRaw(ctx context.Context, email *Email) error {
	if len(email.To) == 0 {
		return ErrNoRecipient
	}
	if email.Subject == "" {
		return ErrNoSubject
	}
	if email.HTML == "" && email.Text == "" {
		return ErrNoContent
	}

	if err := m.sender.Send(ctx, email); err != nil {
		return errors.Join(ErrSendFailed, err)
	}
	return nil
}

// renderSubject executes the subject template and folds line breaks,
// since a subject is a single header line.
func renderSubject(subject string, data any) (string, error) {
	tmpl, err := texttemplate.New("subject").Parse(subject)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}

	return strings.Join(strings.FieldsFunc(buf.String(), isLineBreak), " "), nil
}

func isLineBreak(r rune) bool {
	return r == '\r' || r == '\n'
}
