package api

import (
	"net/http"

	"github.com/leoatienza/portfolio-backend/models"
)

// routeHandlers contains all the handlers for different route types
type routeHandlers struct {
	projectHandler projectHandler
	pageHandler    pageHandler
	healthHandler  healthHandler
}

// page is embedded in every data bag handed to the presentation layer
type page struct {
	Title        string `json:"title" example:"Projects"`
	AssetVersion string `json:"assetVersion" example:"1718000000000"`
}

func newPage(r *http.Request, title string) page {
	return page{Title: title, AssetVersion: ctxGetAssetVersion(r.Context())}
}

type homePage struct {
	page
	Recent []*models.Project `json:"recent"`
}

type projectsPage struct {
	page
	Projects   []*models.Project  `json:"projects"`
	Categories []*models.Category `json:"categories"`
	Selected   *models.Category   `json:"selected"`
}

type projectPage struct {
	page
	Project *models.Project `json:"project"`
}

type categoriesPage struct {
	page
	Categories []*models.Category `json:"categories"`
}

// Contacts are the links shown on the contact page. Unset links stay null.
type Contacts struct {
	Email    string  `json:"email"`
	LinkedIn *string `json:"linkedin"`
	GitHub   *string `json:"github"`
}

type contactPage struct {
	page
	Contacts Contacts `json:"contacts"`
}

type educationPage struct {
	page
	Schools []string `json:"schools"`
}

type experiencePage struct {
	page
	Roles []string `json:"roles"`
}

type certificationsPage struct {
	page
	Certs []string `json:"certs"`
}

// ErrorResponse is the bag written for failed requests
// @Description Error response structure
type ErrorResponse struct {
	page
	Error   string `json:"error,omitempty" example:"unique constraint violation"`
	Field   string `json:"field,omitempty" example:"slug"`
	Details string `json:"details,omitempty" example:"Additional error details"`
}
