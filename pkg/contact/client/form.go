package client

import (
	"strings"
	"unicode"
)

// Form is what the visitor typed into the contact form.
type Form struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// Trimmed returns a copy with surrounding whitespace removed from every field.
func (f Form) Trimmed() Form {
	return Form{
		Name:    strings.TrimFunc(f.Name, isBlank),
		Email:   strings.TrimFunc(f.Email, isBlank),
		Subject: strings.TrimFunc(f.Subject, isBlank),
		Message: strings.TrimFunc(f.Message, isBlank),
	}
}

// Check trims the form and validates it before anything is sent.
// It returns the trimmed form and a status message, empty when the form is valid.
func Check(f Form) (Form, string) {
	f = f.Trimmed()

	if f.Name == "" || f.Email == "" || f.Subject == "" || f.Message == "" {
		return f, MessageFieldsRequired
	}
	if !looksLikeEmail(f.Email) {
		return f, MessageInvalidEmail
	}
	return f, ""
}

// looksLikeEmail accepts local@domain where neither part is empty or holds
// whitespace, there is exactly one "@", and the domain has a dot with at
// least one character on each side.
func looksLikeEmail(s string) bool {
	if strings.IndexFunc(s, isBlank) >= 0 {
		return false
	}

	local, domain, ok := strings.Cut(s, "@")
	if !ok || local == "" || strings.Contains(domain, "@") {
		return false
	}

	if len(domain) < 3 {
		return false
	}
	return strings.Contains(domain[1:len(domain)-1], ".")
}

// isBlank matches what a browser's String.prototype.trim removes.
func isBlank(r rune) bool {
	return r == '\uFEFF' || unicode.IsSpace(r)
}
