package database

import (
	"context"
	"testing"
	"time"

	"github.com/leoatienza/portfolio-backend/models"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a private in-memory SQLite store with the app's gorm
// settings and both tables migrated.
func newTestDB(t *testing.T) Database {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), Config(logger.Default.LogMode(logger.Silent)))
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// every connection to :memory: is its own database
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	d := New(db)
	require.NoError(t, d.Migrate(false))
	return d
}

func addCategory(t *testing.T, d Database, name string) *models.Category {
	t.Helper()

	c := &models.Category{Name: name}
	require.NoError(t, c.PrepareForSave())
	require.NoError(t, d.CategoryRepo().Add(context.Background(), c))
	return c
}

func addProject(t *testing.T, d Database, title string, categoryID *uint, createdAt time.Time) *models.Project {
	t.Helper()

	p := &models.Project{Title: title, CategoryID: categoryID, CreatedAt: createdAt}
	require.NoError(t, p.PrepareForSave())
	require.NoError(t, d.ProjectRepo().Add(context.Background(), p))
	return p
}

func TestPing(t *testing.T) {
	d := newTestDB(t)

	require.NoError(t, d.Ping(context.Background()))
}

func TestMigrateReset(t *testing.T) {
	d := newTestDB(t)
	addCategory(t, d, "Web")

	require.NoError(t, d.Migrate(true))

	categories, err := d.CategoryRepo().FindAll(context.Background())
	require.NoError(t, err)
	require.Empty(t, categories)
}
