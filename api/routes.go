package api

import (
	"github.com/go-chi/chi/v5"
)

// setupPageRoutes wires every public page route. All of them are read-only.
func setupPageRoutes(r chi.Router, handlers *routeHandlers) {
	r.Get("/_health", handlers.healthHandler.getHealth())

	r.Group(func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)

		// Portfolio content
		r.Get("/", handlers.projectHandler.getHome())
		r.Get("/projects", handlers.projectHandler.getAllProjects())
		r.Get("/projects/{slug}", handlers.projectHandler.getProject())
		r.Get("/categories", handlers.projectHandler.getCategories())

		// Static pages
		r.Get("/about", handlers.pageHandler.getAbout())
		r.Get("/contact", handlers.pageHandler.getContact())
		r.Get("/education", handlers.pageHandler.getEducation())
		r.Get("/experience", handlers.pageHandler.getExperience())
		r.Get("/certifications", handlers.pageHandler.getCertifications())

		// Old URLs
		r.Get("/works", handlers.pageHandler.redirectWorks())
		r.Get("/work/{slug}", handlers.pageHandler.redirectWork())
	})

	r.NotFound(handlers.pageHandler.notFound())
}
