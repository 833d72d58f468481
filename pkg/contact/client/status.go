package client

// Status messages shown next to the form.
const (
	MessageSending        = "Sending..."
	MessageSent           = "Message sent successfully ✅"
	MessageFieldsRequired = "Please fill in all fields."
	MessageInvalidEmail   = "Please enter a valid email address."
	MessageFailed         = "Failed to send."
	MessageUnexpected     = "Something went wrong. Please try again later."
)

// Status is the line of feedback shown to the visitor.
// OK is false for anything that should be rendered as an error.
type Status struct {
	Message string
	OK      bool
}

func success(msg string) Status { return Status{Message: msg, OK: true} }
func failure(msg string) Status { return Status{Message: msg} }
