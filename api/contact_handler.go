package api

import (
	"encoding/json"
	"net/http"

	"github.com/asadullah-dev/portfolio-site-backend/database"
	"github.com/asadullah-dev/portfolio-site-backend/errs"
	"github.com/asadullah-dev/portfolio-site-backend/models"
	"github.com/asadullah-dev/portfolio-site-backend/services"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type contactHandler struct {
	responder   Responder
	logger      zerolog.Logger
	contactRepo *database.ContactMessageRepo
	config      map[string]string
}

func newContactHandler(contactRepo *database.ContactMessageRepo, config map[string]string) contactHandler {
	logger := log.With().Str("handlerName", "contactHandler").Logger()

	return contactHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		contactRepo: contactRepo,
		config:      config,
	}
}

// createContactMessage accepts a contact-form submission. The payload is
// validated before anything touches the store; a failed submission persists
// nothing. On success the owner notification goes out in the background so
// a slow mail provider cannot delay the response.
func (h contactHandler) createContactMessage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input models.ContactMessageInput
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			h.logger.Warn().Err(err).Str("requestId", ctxGetRequestID(r.Context())).Msg("Failed to decode contact request body")
			h.responder.WriteError(w, errs.NewMalformedPayloadError("contact message", err))
			return
		}

		if err := input.Validate(); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		message := input.ToContactMessage()
		if err := h.contactRepo.Add(&message); err != nil {
			h.logger.Error().Err(err).Str("requestId", ctxGetRequestID(r.Context())).Msg("Failed to persist contact message")
			h.responder.WriteError(w, err)
			return
		}

		go services.NotifyContact(h.config, message)

		h.responder.WriteJSON(w, map[string]bool{"success": true})
	}
}
