package services

import (
	"context"
	"strconv"
	"strings"

	"github.com/leoatienza/portfolio-backend/errs"
	"github.com/leoatienza/portfolio-backend/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// ProjectStore is the persistence the portfolio service needs for projects.
type ProjectStore interface {
	FindRecent(ctx context.Context, limit int) ([]*models.Project, error)
	FindAll(ctx context.Context, categoryID *uint) ([]*models.Project, error)
	FindBySlug(ctx context.Context, slug string) (*models.Project, error)
	Add(ctx context.Context, project *models.Project) error
	Update(ctx context.Context, project *models.Project) error
}

// CategoryStore is the persistence the portfolio service needs for categories.
type CategoryStore interface {
	FindAll(ctx context.Context) ([]*models.Category, error)
	FindBySlug(ctx context.Context, slug string) (*models.Category, error)
	FindByID(ctx context.Context, id uint) (*models.Category, error)
	Add(ctx context.Context, category *models.Category) error
}

// ProjectListing is the result of ListAll. Selected is the category the
// filter resolved to, or nil when no filter was applied.
type ProjectListing struct {
	Projects []*models.Project
	Selected *models.Category
}

// PortfolioService answers every read the site needs and owns the write path
// used by seeding. It keeps no state of its own and is safe for concurrent use.
type PortfolioService struct {
	logger     zerolog.Logger
	projects   ProjectStore
	categories CategoryStore
}

func NewPortfolioService(projects ProjectStore, categories CategoryStore) *PortfolioService {
	return &PortfolioService{
		logger:     log.With().Str("service", "portfolio").Logger(),
		projects:   projects,
		categories: categories,
	}
}

// ListRecent returns at most limit projects, newest first.
func (s *PortfolioService) ListRecent(ctx context.Context, limit int) ([]*models.Project, error) {
	if limit <= 0 {
		return []*models.Project{}, nil
	}
	return s.projects.FindRecent(ctx, limit)
}

// ListAll returns every project, newest first. A non-empty filter names a
// category by slug or by numeric id; a filter that matches no category is
// ignored and the full list is returned with Selected left nil.
func (s *PortfolioService) ListAll(ctx context.Context, filter string) (ProjectListing, error) {
	selected, err := s.ResolveCategory(ctx, filter)
	if err != nil {
		return ProjectListing{}, err
	}

	var categoryID *uint
	if selected != nil {
		categoryID = &selected.ID
	} else if strings.TrimSpace(filter) != "" {
		s.logger.Debug().Str("filter", filter).Msg("category filter matched nothing, listing all projects")
	}

	projects, err := s.projects.FindAll(ctx, categoryID)
	if err != nil {
		return ProjectListing{}, err
	}
	return ProjectListing{Projects: projects, Selected: selected}, nil
}

// ResolveCategory looks a filter up by slug first, then by numeric id. It
// returns nil without error when nothing matches.
func (s *PortfolioService) ResolveCategory(ctx context.Context, filter string) (*models.Category, error) {
	filter = strings.TrimSpace(filter)
	if filter == "" {
		return nil, nil
	}

	category, err := s.categories.FindBySlug(ctx, filter)
	switch {
	case err == nil:
		return category, nil
	case !errs.IsNotFound(err):
		return nil, err
	}

	id, parseErr := strconv.ParseUint(filter, 10, 0)
	if parseErr != nil || id == 0 {
		return nil, nil
	}

	category, err = s.categories.FindByID(ctx, uint(id))
	switch {
	case err == nil:
		return category, nil
	case errs.IsNotFound(err):
		return nil, nil
	default:
		return nil, err
	}
}

// GetBySlug returns the project with exactly this slug, or an error for
// which errs.IsNotFound holds.
func (s *PortfolioService) GetBySlug(ctx context.Context, slug string) (*models.Project, error) {
	if slug == "" {
		return nil, errs.NewNotFound("project")
	}
	return s.projects.FindBySlug(ctx, slug)
}

// ListCategories returns every category ordered by name.
func (s *PortfolioService) ListCategories(ctx context.Context) ([]*models.Category, error) {
	return s.categories.FindAll(ctx)
}

// CreateCategory prepares and inserts a category.
func (s *PortfolioService) CreateCategory(ctx context.Context, category *models.Category) error {
	if err := category.PrepareForSave(); err != nil {
		return err
	}
	return s.categories.Add(ctx, category)
}

// CreateProject prepares and inserts a project. A slug collision is returned
// as a unique constraint violation; no suffix is ever appended.
func (s *PortfolioService) CreateProject(ctx context.Context, project *models.Project) error {
	if err := project.PrepareForSave(); err != nil {
		return err
	}
	return s.projects.Add(ctx, project)
}

// UpdateProject re-runs the derived-field pipeline and writes the project back.
func (s *PortfolioService) UpdateProject(ctx context.Context, project *models.Project) error {
	if err := project.PrepareForSave(); err != nil {
		return err
	}
	return s.projects.Update(ctx, project)
}
