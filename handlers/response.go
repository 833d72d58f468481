package handlers

// Client-facing messages. Nothing else about a failure reaches the client.
const (
	MessageInvalidBody    = "Invalid request body."
	MessageBodyTooLarge   = "Request body too large."
	MessageNotConfigured  = "Mail delivery is not configured on the server."
	MessageSendFailed     = "Failed to send message. Check server logs."
	MessageNotFound       = "Not found."
	MessageMethodNotAllow = "Method not allowed."
	MessageInternal       = "Internal server error."
)

// Response is the JSON envelope of every API answer:
// {"ok":true} on success, {"ok":false,"error":"..."} on failure.
type Response struct {
	Error string `json:"error,omitempty"`
	OK    bool   `json:"ok"`
}

var okResponse = Response{OK: true}

func failure(msg string) Response {
	return Response{Error: msg}
}
