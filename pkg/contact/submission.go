package contact

import (
	"regexp"
	"strings"
	"unicode"
)

// Submission is one contact-form record. It lives for a single request.
type Submission struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// emailPattern is local@domain.tld where no part contains "@" or whitespace.
// Whitespace is the Unicode White_Space set plus the byte order mark U+FEFF,
// matching isSpace.
var emailPattern = regexp.MustCompile(`^[^@\s\v\x{85}\x{FEFF}\p{Z}]+@[^@\s\v\x{85}\x{FEFF}\p{Z}]+\.[^@\s\v\x{85}\x{FEFF}\p{Z}]+$`)

// Validate checks that every field is present and the email is well formed.
// Values are checked as given; nothing is trimmed or rewritten.
func Validate(s Submission) error {
	for _, field := range []string{s.Name, s.Email, s.Subject, s.Message} {
		if strings.TrimFunc(field, isSpace) == "" {
			return &ValidationError{Message: MessageFieldsRequired}
		}
	}

	if !IsEmail(s.Email) {
		return &ValidationError{Message: MessageInvalidEmail}
	}

	return nil
}

// IsEmail reports whether addr matches the local@domain.tld pattern.
func IsEmail(addr string) bool {
	return emailPattern.MatchString(addr)
}

// isSpace is unicode.IsSpace plus U+FEFF, which browsers also treat as blank.
func isSpace(r rune) bool {
	return unicode.IsSpace(r) || r == '\uFEFF'
}
