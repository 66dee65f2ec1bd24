package api

import (
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
)

type healthHandler struct {
	responder   Responder
	startupTime time.Time
	storeMode   bool
}

func newHealthHandler(startupTime time.Time, storeMode bool) healthHandler {
	logger := log.With().Str("handlerName", "healthHandler").Logger()

	return healthHandler{
		responder:   NewResponder(logger),
		startupTime: startupTime,
		storeMode:   storeMode,
	}
}

func (h healthHandler) getHealth() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		mode := "static"
		if h.storeMode {
			mode = "store"
		}

		h.responder.WriteJSON(w, map[string]interface{}{
			"status":        "ok",
			"mode":          mode,
			"uptimeSeconds": int(time.Since(h.startupTime).Seconds()),
		})
	}
}
