package contact

import "errors"

// User-facing validation messages.
const (
	MessageFieldsRequired = "All fields are required."
	MessageInvalidEmail   = "Please enter a valid email address."
)

var (
	ErrValidation    = errors.New("contact: invalid submission")
	ErrConfiguration = errors.New("contact: mail delivery is not configured")
	ErrDelivery      = errors.New("contact: mail delivery failed")
)

// ValidationError carries a message safe to show to the submitter.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// Unwrap allows errors.Is(err, ErrValidation).
func (e *ValidationError) Unwrap() error { return ErrValidation }
