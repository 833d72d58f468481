package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/folio"
	"github.com/dmitrymomot/folio/pkg/contact"
)

// Dispatcher delivers a validated submission.
// *contact.Dispatcher is the production implementation.
type Dispatcher interface {
	Dispatch(ctx context.Context, s contact.Submission) error
}

// ContactHandler serves the contact form endpoint.
type ContactHandler struct {
	dispatcher Dispatcher
	mw         []folio.Middleware
}

// NewContactHandler creates the handler. Middleware given here wraps the
// submit route only; the rate limiter goes here.
func NewContactHandler(d Dispatcher, mw ...folio.Middleware) *ContactHandler {
	return &ContactHandler{dispatcher: d, mw: mw}
}

// Routes declares POST /api/contact.
func (h *ContactHandler) Routes(r folio.Router) {
	r.Route("/api", func(r folio.Router) {
		r.POST("/contact", h.submit, h.mw...)
	})
}

// submit validates the form and sends exactly one notification.
//
//	400 malformed JSON or a failed field check, with the check's message
//	500 no destination configured, or the relay failed
//	200 {"ok":true}
func (h *ContactHandler) submit(c folio.Context) error {
	var s contact.Submission
	if err := c.BindJSON(&s); err != nil {
		if errors.Is(err, folio.ErrBodyTooLarge) {
			return folio.NewHTTPError(http.StatusRequestEntityTooLarge, MessageBodyTooLarge, folio.WithError(err))
		}
		return folio.NewHTTPError(http.StatusBadRequest, MessageInvalidBody, folio.WithError(err))
	}

	if err := contact.Validate(s); err != nil {
		var ve *contact.ValidationError
		if errors.As(err, &ve) {
			return folio.NewHTTPError(http.StatusBadRequest, ve.Message, folio.WithError(err))
		}
		return err
	}

	if err := h.dispatcher.Dispatch(c, s); err != nil {
		if errors.Is(err, contact.ErrConfiguration) {
			return folio.NewHTTPError(http.StatusInternalServerError, MessageNotConfigured, folio.WithError(err))
		}
		return folio.NewHTTPError(http.StatusInternalServerError, MessageSendFailed, folio.WithError(err))
	}

	c.LogInfo("contact message relayed", slog.Int("message_bytes", len(s.Message)))
	return c.JSON(http.StatusOK, okResponse)
}
