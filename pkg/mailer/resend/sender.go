package resend

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/resend/resend-go/v3"

	"github.com/dmitrymomot/folio/pkg/mailer"
)

var (
	ErrNoAPIKey   = errors.New("resend: api key is not configured")
	ErrNoSender   = errors.New("resend: email has no sender address")
	ErrSendFailed = errors.New("resend: failed to send email")
)

// Sender implements mailer.Sender using the Resend HTTP API.
type Sender struct {
	client *resend.Client
	apiKey string
}

// New creates a new Resend sender.
func New(cfg Config) *Sender {
	return newSender(cfg, resend.NewClient(cfg.APIKey))
}

// NewWithHTTPClient creates a sender that uses the given HTTP client.
func NewWithHTTPClient(cfg Config, hc *http.Client) *Sender {
	return newSender(cfg, resend.NewCustomClient(hc, cfg.APIKey))
}

func newSender(cfg Config, client *resend.Client) *Sender {
	if cfg.BaseURL != "" {
		if u, err := url.Parse(cfg.BaseURL); err == nil {
			client.BaseURL = u
		}
	}
	return &Sender{client: client, apiKey: cfg.APIKey}
}

// Send implements mailer.Sender. It makes a single API call.
func (s *Sender) Send(ctx context.Context, email *mailer.Email) error {
	if s.apiKey == "" {
		return ErrNoAPIKey
	}
	if email.From == "" {
		return ErrNoSender
	}

	req := &resend.SendEmailRequest{
		From:    email.From,
		To:      email.To,
		Subject: email.Subject,
		Html:    email.HTML,
		Text:    email.Text,
		ReplyTo: email.ReplyTo,
		Cc:      email.CC,
		Bcc:     email.BCC,
		Headers: email.Headers,
	}

	if len(email.Attachments) > 0 {
		req.Attachments = convertAttachments(email.Attachments)
	}
	if len(email.Tags) > 0 {
		req.Tags = convertTags(email.Tags)
	}

	if _, err := s.client.Emails.SendWithContext(ctx, req); err != nil {
		return errors.Join(ErrSendFailed, err)
	}
	return nil
}

func convertAttachments(attachments []mailer.Attachment) []*resend.Attachment {
	result := make([]*resend.Attachment, len(attachments))
	for i, a := range attachments {
		result[i] = &resend.Attachment{
			Filename:    a.Filename,
			Content:     a.Content,
			ContentType: a.ContentType,
			ContentId:   a.ContentID,
		}
	}
	return result
}

func convertTags(tags mailer.Tags) []resend.Tag {
	result := make([]resend.Tag, 0, len(tags))
	for name, value := range tags {
		result = append(result, resend.Tag{Name: name, Value: tagValue(value)})
	}
	return result
}

// tagValue renders a tag value as a string; presence-only tags become "true".
func tagValue(v any) string {
	switch val := v.(type) {
	case nil, struct{}:
		return "true"
	case string:
		return val
	case bool:
		return strconv.FormatBool(val)
	case int:
		return strconv.Itoa(val)
	case fmt.Stringer:
		return val.String()
	default:
		return fmt.Sprint(val)
	}
}
