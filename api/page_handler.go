package api

import (
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

// pageHandler serves the pages that carry no database content.
type pageHandler struct {
	responder Responder
	contacts  Contacts
}

func newPageHandler(contacts Contacts) pageHandler {
	logger := log.With().Str("handlerName", "pageHandler").Logger()
	return pageHandler{
		responder: NewResponder(logger),
		contacts:  contacts,
	}
}

func (h pageHandler) getAbout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.responder.WriteJSON(w, newPage(r, "About"))
	}
}

func (h pageHandler) getContact() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.responder.WriteJSON(w, contactPage{page: newPage(r, "Contact"), Contacts: h.contacts})
	}
}

// The next three pages render lists that are empty for now; the bags carry
// them anyway so templates never see a missing key.

func (h pageHandler) getEducation() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.responder.WriteJSON(w, educationPage{page: newPage(r, "Education"), Schools: []string{}})
	}
}

func (h pageHandler) getExperience() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.responder.WriteJSON(w, experiencePage{page: newPage(r, "Experience"), Roles: []string{}})
	}
}

func (h pageHandler) getCertifications() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.responder.WriteJSON(w, certificationsPage{page: newPage(r, "Certifications"), Certs: []string{}})
	}
}

// redirectWorks sends the old /works listing to /projects
func (h pageHandler) redirectWorks() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/projects", http.StatusMovedPermanently)
	}
}

// redirectWork sends an old /work/{slug} detail URL to /projects/{slug}
func (h pageHandler) redirectWork() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slug := chi.URLParam(r, "slug")
		http.Redirect(w, r, "/projects/"+url.PathEscape(slug), http.StatusMovedPermanently)
	}
}

func (h pageHandler) notFound() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.responder.WriteNotFound(w, r)
	}
}
