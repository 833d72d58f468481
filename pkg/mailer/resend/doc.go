// Package resend implements mailer.Sender on top of the Resend HTTP API.
//
//	sender := resend.New(resend.Config{APIKey: os.Getenv("RESEND_API_KEY")})
//
// The message sender comes from Email.From; the domain must be verified in
// Resend. BaseURL overrides the API endpoint, which tests use to point the
// client at an httptest server.
package resend
