package api

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/leoatienza/portfolio-backend/models"
	"github.com/leoatienza/portfolio-backend/services"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// Portfolio is the read side of the portfolio service.
type Portfolio interface {
	ListRecent(ctx context.Context, limit int) ([]*models.Project, error)
	ListAll(ctx context.Context, filter string) (services.ProjectListing, error)
	GetBySlug(ctx context.Context, slug string) (*models.Project, error)
	ListCategories(ctx context.Context) ([]*models.Category, error)
}

type projectHandler struct {
	responder   Responder
	logger      zerolog.Logger
	portfolio   Portfolio
	recentLimit int
}

func newProjectHandler(portfolio Portfolio, recentLimit int) projectHandler {
	logger := log.With().Str("handlerName", "projectHandler").Logger()

	return projectHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		portfolio:   portfolio,
		recentLimit: recentLimit,
	}
}

// getHome returns the home page bag with the most recent projects
// @Summary Home page
// @Tags Pages
// @Produce json
// @Success 200 {object} homePage
// @Failure 500 {object} ErrorResponse
// @Router / [get]
func (h projectHandler) getHome() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		recent, err := h.portfolio.ListRecent(r.Context(), h.recentLimit)
		if err != nil {
			h.responder.WriteError(w, r, err)
			return
		}

		h.responder.WriteJSON(w, homePage{
			page:   newPage(r, "Home"),
			Recent: recent,
		})
	}
}

// getAllProjects lists projects, optionally restricted to one category
// @Summary Projects page
// @Tags Pages
// @Produce json
// @Param category query string false "Category slug or numeric id"
// @Success 200 {object} projectsPage
// @Failure 500 {object} ErrorResponse
// @Router /projects [get]
func (h projectHandler) getAllProjects() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter := r.URL.Query().Get("category")

		var (
			listing    services.ProjectListing
			categories []*models.Category
		)
		g, ctx := errgroup.WithContext(r.Context())
		g.Go(func() error {
			var err error
			listing, err = h.portfolio.ListAll(ctx, filter)
			return err
		})
		g.Go(func() error {
			var err error
			categories, err = h.portfolio.ListCategories(ctx)
			return err
		})
		if err := g.Wait(); err != nil {
			h.responder.WriteError(w, r, err)
			return
		}

		h.responder.WriteJSON(w, projectsPage{
			page:       newPage(r, "Projects"),
			Projects:   listing.Projects,
			Categories: categories,
			Selected:   listing.Selected,
		})
	}
}

// getProject returns one project by slug
// @Summary Project detail page
// @Tags Pages
// @Produce json
// @Param slug path string true "Project slug"
// @Success 200 {object} projectPage
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /projects/{slug} [get]
func (h projectHandler) getProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slug := chi.URLParam(r, "slug")

		project, err := h.portfolio.GetBySlug(r.Context(), slug)
		if err != nil {
			h.responder.WriteError(w, r, err)
			return
		}

		h.responder.WriteJSON(w, projectPage{
			page:    newPage(r, project.Title),
			Project: project,
		})
	}
}

// getCategories lists every category by name
// @Summary Categories
// @Tags Pages
// @Produce json
// @Success 200 {object} categoriesPage
// @Router /categories [get]
func (h projectHandler) getCategories() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		categories, err := h.portfolio.ListCategories(r.Context())
		if err != nil {
			h.responder.WriteError(w, r, err)
			return
		}

		h.responder.WriteJSON(w, categoriesPage{
			page:       newPage(r, "Categories"),
			Categories: categories,
		})
	}
}
