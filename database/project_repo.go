package database

import (
	"context"

	"github.com/leoatienza/portfolio-backend/errs"
	"github.com/leoatienza/portfolio-backend/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProjectRepo struct {
	db *gorm.DB
}

func NewProjectRepo(db *gorm.DB) *ProjectRepo {
	return &ProjectRepo{db}
}

// listing is the base query for every read: newest first, category joined.
// Preload leaves Category nil when category_id points at a missing row.
func (r *ProjectRepo) listing(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Category").
		Order("created_at DESC").
		Order("id DESC")
}

// FindRecent returns the newest projects, at most limit of them
func (r *ProjectRepo) FindRecent(ctx context.Context, limit int) ([]*models.Project, error) {
	projects := []*models.Project{}
	if limit <= 0 {
		return projects, nil
	}
	if err := r.listing(ctx).Limit(limit).Find(&projects).Error; err != nil {
		return nil, errs.NewDatabaseError("find", "projects", err)
	}
	return projects, nil
}

// FindAll returns all projects, restricted to one category when categoryID is set
func (r *ProjectRepo) FindAll(ctx context.Context, categoryID *uint) ([]*models.Project, error) {
	projects := []*models.Project{}
	query := r.listing(ctx)
	if categoryID != nil {
		query = query.Where("category_id = ?", *categoryID)
	}
	if err := query.Find(&projects).Error; err != nil {
		return nil, errs.NewDatabaseError("find", "projects", err)
	}
	return projects, nil
}

// FindBySlug returns the project with exactly this slug
func (r *ProjectRepo) FindBySlug(ctx context.Context, slug string) (*models.Project, error) {
	var project models.Project
	err := r.db.WithContext(ctx).Preload("Category").Where("slug = ?", slug).Take(&project).Error
	if err != nil {
		return nil, errs.NewDatabaseError("find", "project", err)
	}
	return &project, nil
}

// Add inserts a prepared project
func (r *ProjectRepo) Add(ctx context.Context, project *models.Project) error {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(project).Error; err != nil {
		return errs.NewDatabaseError("create", "project", err)
	}
	return nil
}

// Update writes every column of a prepared project back to its row, except
// created_at which keeps its insert time. A missing row is not created.
func (r *ProjectRepo) Update(ctx context.Context, project *models.Project) error {
	if project.ID == 0 {
		return errs.NewMissingRequiredFieldError("id")
	}

	result := r.db.WithContext(ctx).
		Model(&models.Project{ID: project.ID}).
		Select("*").
		Omit(clause.Associations, "ID", "CreatedAt").
		Updates(project)
	if result.Error != nil {
		return errs.NewDatabaseError("update", "project", result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NewNotFound("project")
	}
	return nil
}
