package services

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/leoatienza/portfolio-backend/database"
	"github.com/leoatienza/portfolio-backend/errs"
	"github.com/leoatienza/portfolio-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newSeededStore(t *testing.T) (*PortfolioService, database.Database) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), database.Config(logger.Default.LogMode(logger.Silent)))
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	store := database.New(db)
	require.NoError(t, store.Migrate(false))
	return NewPortfolioService(store.ProjectRepo(), store.CategoryRepo()), store
}

func TestSeedDefault(t *testing.T) {
	svc, _ := newSeededStore(t)
	ctx := context.Background()

	result, err := svc.Seed(ctx, DefaultSeed())

	require.NoError(t, err)
	assert.Equal(t, SeedResult{Categories: 2, Projects: 3}, result)

	web, err := svc.ListAll(ctx, "web")
	require.NoError(t, err)
	require.NotNil(t, web.Selected)
	assert.Len(t, web.Projects, 2)
	for _, p := range web.Projects {
		require.NotNil(t, p.Category)
		assert.Equal(t, "web", p.Category.Slug)
	}

	p, err := svc.GetBySlug(ctx, "portfolio-backend-api")
	require.NoError(t, err)
	assert.Equal(t, "Go, chi, GORM, Postgres", p.TechStack)
	assert.Equal(t, []string{"VS Code", "Git"}, p.ToolItems())

	all, err := svc.ListAll(ctx, "doesnotexist")
	require.NoError(t, err)
	assert.Nil(t, all.Selected)
	assert.Len(t, all.Projects, 3)
}

func TestSeedTwiceFailsOnDuplicateProject(t *testing.T) {
	svc, _ := newSeededStore(t)
	ctx := context.Background()
	_, err := svc.Seed(ctx, DefaultSeed())
	require.NoError(t, err)

	result, err := svc.Seed(ctx, DefaultSeed())

	assert.True(t, errs.IsUniqueConstraintViolationError(err))
	assert.Zero(t, result.Categories, "existing categories are reused")
	assert.Zero(t, result.Projects)
}

func TestSeedCreatesCategoriesNamedByProjects(t *testing.T) {
	svc, _ := newSeededStore(t)
	ctx := context.Background()

	result, err := svc.Seed(ctx, SeedData{
		Projects: []models.ProjectInput{
			{Title: "Edge Cache", Category: "Infra Tools"},
			{Title: "Log Shipper", Category: "Infra Tools"},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, SeedResult{Categories: 1, Projects: 2}, result)

	listing, err := svc.ListAll(ctx, "infra-tools")
	require.NoError(t, err)
	assert.Len(t, listing.Projects, 2)
}

func TestSeedNumericCategoryIsMatchedBySlugOnly(t *testing.T) {
	svc, _ := newSeededStore(t)
	ctx := context.Background()

	result, err := svc.Seed(ctx, SeedData{
		Categories: []models.Category{
			{Name: "Web", Slug: "web"},
			{Name: "Backend", Slug: "backend"},
		},
		Projects: []models.ProjectInput{{Title: "Year Project", Category: "2"}},
	})

	require.NoError(t, err)
	assert.Equal(t, SeedResult{Categories: 3, Projects: 1}, result)

	p, err := svc.GetBySlug(ctx, "year-project")
	require.NoError(t, err)
	require.NotNil(t, p.Category)
	assert.Equal(t, "2", p.Category.Name)
	assert.Equal(t, "2", p.Category.Slug)
}

func TestSeedRejectsInvalidProject(t *testing.T) {
	svc, _ := newSeededStore(t)

	_, err := svc.Seed(context.Background(), SeedData{Projects: []models.ProjectInput{{Summary: "no title"}}})

	assert.True(t, errs.IsValidationError(err))
}

func TestLoadSeedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.json")
	content := `{
		"categories": [{"name": "Web", "slug": "web"}],
		"projects": [
			{"title": "Dine-In Digital", "category": "Web", "techStack": ["Node.js", " Express "], "tools": "Git, , Render"}
		]
	}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	data, err := LoadSeedFile(path)

	require.NoError(t, err)
	require.Len(t, data.Projects, 1)
	assert.Equal(t, "Node.js, Express", data.Projects[0].TechStack.Normalize())
	assert.Equal(t, "Git, Render", data.Projects[0].Tools.Normalize())
	assert.Equal(t, "web", data.Categories[0].Slug)

	_, err = LoadSeedFile(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}
