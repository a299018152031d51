package database

import (
	"context"
	"fmt"

	"github.com/leoatienza/portfolio-backend/errs"
	"github.com/leoatienza/portfolio-backend/models"
	"gorm.io/gorm"
)

type Database struct {
	db           *gorm.DB
	categoryRepo *CategoryRepo
	projectRepo  *ProjectRepo
}

// New initializes a new Database struct with each repository using a shared GORM database instance
func New(db *gorm.DB) Database {
	return Database{
		db:           db,
		categoryRepo: NewCategoryRepo(db),
		projectRepo:  NewProjectRepo(db),
	}
}

// Accessor methods for each repository

func (d Database) CategoryRepo() *CategoryRepo {
	return d.categoryRepo
}

func (d Database) ProjectRepo() *ProjectRepo {
	return d.projectRepo
}

// Ping checks that the primary store answers.
func (d Database) Ping(ctx context.Context) error {
	sqlDB, err := d.db.DB()
	if err != nil {
		return fmt.Errorf("database: pool: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return errs.NewDatabaseError("ping", "database", err)
	}
	return nil
}

// Migrate creates the categories and projects tables. When reset is true
// both tables are dropped first, wiping all rows.
func (d Database) Migrate(reset bool) error {
	if reset {
		return models.Reset(d.db)
	}
	return models.Migrate(d.db)
}
