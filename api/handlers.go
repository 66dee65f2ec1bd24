package api

import (
	"time"

	"github.com/asadullah-dev/portfolio-site-backend/content"
	"github.com/asadullah-dev/portfolio-site-backend/database"
)

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(source content.Source, db database.Database, config map[string]string, startupTime time.Time) *routeHandlers {
	return &routeHandlers{
		catalogHandler: newCatalogHandler(source),
		contactHandler: newContactHandler(db.ContactMessageRepo(), config),
		healthHandler:  newHealthHandler(startupTime, db.Configured()),
	}
}
