package api

import (
	"net/http"

	"github.com/asadullah-dev/portfolio-site-backend/content"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// catalogHandler serves the three read-only catalog collections. It is a
// pure pass-through: whatever the content source returns goes out verbatim,
// unfiltered and unpaginated.
type catalogHandler struct {
	responder Responder
	logger    zerolog.Logger
	source    content.Source
}

func newCatalogHandler(source content.Source) catalogHandler {
	logger := log.With().Str("handlerName", "catalogHandler").Logger()

	return catalogHandler{
		responder: NewResponder(logger),
		logger:    logger,
		source:    source,
	}
}

// getProjects returns every project in the catalog.
func (h catalogHandler) getProjects() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projects, err := h.source.Projects()
		if err != nil {
			h.logger.Error().Err(err).Str("requestId", ctxGetRequestID(r.Context())).Msg("Failed to list projects")
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, projects)
	}
}

// getSkills returns every skill group in the catalog.
func (h catalogHandler) getSkills() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		skills, err := h.source.Skills()
		if err != nil {
			h.logger.Error().Err(err).Str("requestId", ctxGetRequestID(r.Context())).Msg("Failed to list skills")
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, skills)
	}
}

// getExperience returns every experience entry in the catalog.
func (h catalogHandler) getExperience() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entries, err := h.source.Experience()
		if err != nil {
			h.logger.Error().Err(err).Str("requestId", ctxGetRequestID(r.Context())).Msg("Failed to list experience")
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, entries)
	}
}
