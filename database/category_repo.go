package database

import (
	"context"

	"github.com/leoatienza/portfolio-backend/errs"
	"github.com/leoatienza/portfolio-backend/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CategoryRepo struct {
	db *gorm.DB
}

func NewCategoryRepo(db *gorm.DB) *CategoryRepo {
	return &CategoryRepo{db}
}

// FindAll returns every category ordered by name
func (r *CategoryRepo) FindAll(ctx context.Context) ([]*models.Category, error) {
	categories := []*models.Category{}
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&categories).Error; err != nil {
		return nil, errs.NewDatabaseError("find", "categories", err)
	}
	return categories, nil
}

// FindBySlug returns the category with exactly this slug
func (r *CategoryRepo) FindBySlug(ctx context.Context, slug string) (*models.Category, error) {
	var category models.Category
	if err := r.db.WithContext(ctx).Where("slug = ?", slug).Take(&category).Error; err != nil {
		return nil, errs.NewDatabaseError("find", "category", err)
	}
	return &category, nil
}

// FindByID returns a category by its ID
func (r *CategoryRepo) FindByID(ctx context.Context, id uint) (*models.Category, error) {
	var category models.Category
	if err := r.db.WithContext(ctx).Where("id = ?", id).Take(&category).Error; err != nil {
		return nil, errs.NewDatabaseError("find", "category", err)
	}
	return &category, nil
}

// Add inserts a prepared category
func (r *CategoryRepo) Add(ctx context.Context, category *models.Category) error {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(category).Error; err != nil {
		return errs.NewDatabaseError("create", "category", err)
	}
	return nil
}
