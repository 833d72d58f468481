// Package mailer renders email templates and hands messages to a delivery
// provider.
//
// Delivery and rendering are separate: a [Sender] delivers a prepared
// [Email], a [Renderer] turns template pairs into HTML and plain text, and
// [Mailer] combines the two.
//
// # Templates
//
// A template named "contact" is the pair contact.html and contact.txt.
// Either file may carry YAML front matter:
//
//	---
//	Subject: "[Contact] {{.Subject}}"
//	---
//	<p><strong>Name:</strong> {{.Name}}</p>
//
// The .html part is executed with html/template, so values are escaped for
// their context, and the output is then restricted to a small set of
// formatting elements. The .txt part uses text/template and is sent as is.
//
// # Usage
//
//	sender := smtp.New(smtp.Config{Host: "smtp.example.com", Port: 465, Secure: true})
//	m := mailer.New(sender, mailer.NewRenderer(templates.FS))
//
//	err := m.Send(ctx, mailer.SendParams{
//		To:       "owner@example.com",
//		Template: "contact",
//		Data:     submission,
//		ReplyTo:  submission.Email,
//	})
//
// Providers live in sub-packages: smtp (any SMTP relay), resend (Resend HTTP
// API) and logsender (writes messages to the log, for development).
//
// # Errors
//
//   - [ErrNoRecipient], [ErrNoSubject], [ErrNoContent] - invalid message
//   - [ErrTemplateNotFound], [ErrInvalidFrontmatter], [ErrRenderFailed] - rendering
//   - [ErrSendFailed] - the provider rejected or failed the delivery
package mailer
