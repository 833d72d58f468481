package mailer

import "net/mail"

// Tags are provider-specific labels. Presence-only tags use struct{}{},
// labelled tags use a string value. Providers without tag support ignore them.
type Tags map[string]any

// SimpleTags creates presence-only tags from a list of tag names.
func SimpleTags(names ...string) Tags {
	t := make(Tags, len(names))
	for _, n := range names {
		t[n] = struct{}{}
	}
	return t
}

// Recipient formats a display name and an address as an RFC 5322 mailbox.
// The name is always quoted: `"Contact Form" <me@example.com>`.
func Recipient(name, addr string) string {
	if name == "" {
		return addr
	}
	return (&mail.Address{Name: name, Address: addr}).String()
}

// Email is a fully prepared message ready for a Sender.
type Email struct {
	Headers     map[string]string
	Tags        Tags
	Subject     string
	HTML        string
	Text        string
	From        string
	ReplyTo     string
	To          []string
	CC          []string
	BCC         []string
	Attachments []Attachment
}

// Attachment is a file attached to an Email.
// A non-empty ContentID makes it an inline part.
type Attachment struct {
	Filename    string
	ContentType string
	ContentID   string
	Content     []byte
}
