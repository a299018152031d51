package services

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/leoatienza/portfolio-backend/errs"
	"github.com/leoatienza/portfolio-backend/models"
)

// SeedData is the content written by the seeding command. Each project may
// name its category; categories that do not exist yet are created.
type SeedData struct {
	Categories []models.Category      `json:"categories"`
	Projects   []models.ProjectInput `json:"projects"`
}

// SeedResult counts what Seed inserted.
type SeedResult struct {
	Categories int
	Projects   int
}

// LoadSeedFile reads SeedData from a JSON file.
func LoadSeedFile(path string) (SeedData, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return SeedData{}, fmt.Errorf("seed: read %s: %w", path, err)
	}

	var data SeedData
	if err := json.Unmarshal(raw, &data); err != nil {
		return SeedData{}, fmt.Errorf("seed: decode %s: %w", path, err)
	}
	return data, nil
}

// Seed inserts data. Categories are matched on slug and only created when
// missing; projects are always inserted, so a second run over the same data
// fails on the first duplicate slug.
func (s *PortfolioService) Seed(ctx context.Context, data SeedData) (SeedResult, error) {
	var result SeedResult

	for i := range data.Categories {
		created, _, err := s.ensureCategory(ctx, data.Categories[i])
		if err != nil {
			return result, fmt.Errorf("seed: category %q: %w", data.Categories[i].Name, err)
		}
		if created {
			result.Categories++
		}
	}

	for _, in := range data.Projects {
		if in.CategoryID == nil && strings.TrimSpace(in.Category) != "" {
			created, category, err := s.ensureCategory(ctx, models.Category{Name: in.Category})
			if err != nil {
				return result, fmt.Errorf("seed: category %q: %w", in.Category, err)
			}
			if created {
				result.Categories++
			}
			in.CategoryID = &category.ID
		}

		project, err := in.Project()
		if err != nil {
			return result, fmt.Errorf("seed: project %q: %w", in.Title, err)
		}
		if err := s.projects.Add(ctx, project); err != nil {
			return result, fmt.Errorf("seed: project %q: %w", in.Title, err)
		}
		result.Projects++
		s.logger.Info().Str("slug", project.Slug).Msg("seeded project")
	}

	return result, nil
}

func (s *PortfolioService) ensureCategory(ctx context.Context, category models.Category) (bool, *models.Category, error) {
	if err := category.PrepareForSave(); err != nil {
		return false, nil, err
	}

	// slug only: a numeric slug must not fall back to an id lookup
	existing, err := s.categories.FindBySlug(ctx, category.Slug)
	switch {
	case err == nil:
		return false, existing, nil
	case !errs.IsNotFound(err):
		return false, nil, err
	}

	if err := s.categories.Add(ctx, &category); err != nil {
		return false, nil, err
	}
	return true, &category, nil
}

// DefaultSeed is the built-in portfolio content.
func DefaultSeed() SeedData {
	stack := models.CSV("Node.js, Express, EJS, Postgres, TailwindCSS, daisyUI")
	tools := models.CSV("VS Code, Git, Render, Neon")

	return SeedData{
		Categories: []models.Category{
			{Name: "Web", Slug: "web"},
			{Name: "Backend", Slug: "backend"},
		},
		Projects: []models.ProjectInput{
			{
				Title:       "Dine-In Digital",
				Category:    "Web",
				Summary:     "Restaurant ordering system with clean routing and EJS templating.",
				Description: "Semester project refactored as a read-only portfolio sample. Focus on MVC structure, route design, and DB relations.",
				LiveURL:     "https://example-dinein.vercel.app",
				RepoURL:     "https://github.com/yourname/dine-in-digital",
				TechStack:   stack,
				Tools:       tools,
				Details:     "Features: menu browse, order flow, and receipt summary.\nRole: full-stack developer.",
			},
			{
				Title:       "NotesTok",
				Category:    "Web",
				Summary:     "Short-form learning prototype with tagging and feed logic.",
				Description: "Explores content modeling and simple ranking. Built as a quick MVP.",
				LiveURL:     "https://example-notestok.vercel.app",
				RepoURL:     "https://github.com/yourname/notestok",
				TechStack:   stack,
				Tools:       tools,
				Details:     "Key ideas: tag-based discovery, minimal UI, server-rendered pages.",
			},
			{
				Title:       "Portfolio Backend API",
				Category:    "Backend",
				Summary:     "Tiny API demonstrating relational models and a service layer.",
				Description: "Emphasis on service layer and testing approach.",
				RepoURL:     "https://github.com/yourname/portfolio-backend",
				TechStack:   models.ListOf("Go", "chi", "GORM", "Postgres"),
				Tools:       models.ListOf("VS Code", "Git"),
				Details:     "Includes basic validation and error handling.",
			},
		},
	}
}
