package api

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/go-chi/chi/v5"
)

// setupAPIRoutes registers the content API. Only called in store mode.
func setupAPIRoutes(r chi.Router, handlers *routeHandlers) {
	r.Route("/api", func(r chi.Router) {
		r.Get("/projects", handlers.catalogHandler.getProjects())
		r.Get("/skills", handlers.catalogHandler.getSkills())
		r.Get("/experience", handlers.catalogHandler.getExperience())
		r.Post("/contact", handlers.contactHandler.createContactMessage())
	})
}

func setupHealthRoute(r chi.Router, handlers *routeHandlers) {
	r.Get("/health", handlers.healthHandler.getHealth())
}

// setupStaticRoutes serves the built client from STATIC_DIR. Unknown paths
// fall back to index.html so client-side routes survive a full page load
// (single-page-app deep linking).
func setupStaticRoutes(r chi.Router, staticDir string) {
	if staticDir == "" {
		return
	}

	r.Get("/*", func(w http.ResponseWriter, req *http.Request) {
		path := filepath.Join(staticDir, filepath.Clean("/"+req.URL.Path))
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			http.ServeFile(w, req, path)
			return
		}
		http.ServeFile(w, req, filepath.Join(staticDir, "index.html"))
	})
}
