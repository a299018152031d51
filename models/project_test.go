package models

import (
	"strings"
	"testing"

	"github.com/leoatienza/portfolio-backend/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectPrepareForSave(t *testing.T) {
	p := &Project{
		Title:     "  Dine-In Digital ",
		TechStack: "Node.js, Express,  , EJS",
		Tools:     " Git,,Docker ",
	}

	require.NoError(t, p.PrepareForSave())

	assert.Equal(t, "Dine-In Digital", p.Title)
	assert.Equal(t, "dine-in-digital", p.Slug)
	assert.Equal(t, "Node.js, Express, EJS", p.TechStack)
	assert.Equal(t, "Git, Docker", p.Tools)
	assert.Equal(t, "", p.Summary)
}

func TestProjectPrepareForSaveKeepsExplicitSlug(t *testing.T) {
	p := &Project{Title: "NotesTok", Slug: " notes "}

	require.NoError(t, p.PrepareForSave())

	assert.Equal(t, "notes", p.Slug)
}

func TestProjectPrepareForSaveIsIdempotent(t *testing.T) {
	p := &Project{Title: "Portfolio Backend API", TechStack: "Go,  chi", Tools: "Make"}
	require.NoError(t, p.PrepareForSave())
	first := *p

	require.NoError(t, p.PrepareForSave())

	assert.Equal(t, first, *p)
}

func TestProjectPrepareForSaveRejects(t *testing.T) {
	tests := []struct {
		name    string
		project Project
		field   string
		check   func(error) bool
	}{
		{"missing title", Project{Title: "   "}, "title", errs.IsMissingRequiredFieldError},
		{"title without slug characters", Project{Title: "!!!"}, "title", errs.IsInvalidFieldError},
		{"title too long", Project{Title: strings.Repeat("t", ProjectTitleMaxLen+1)}, "title", errs.IsInvalidFieldError},
		{"slug too long", Project{Title: "ok", Slug: strings.Repeat("s", ProjectSlugMaxLen+1)}, "slug", errs.IsInvalidFieldError},
		{"summary too long", Project{Title: "ok", Summary: strings.Repeat("s", ProjectSummaryMaxLen+1)}, "summary", errs.IsInvalidFieldError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := tt.project
			err := p.PrepareForSave()

			require.Error(t, err)
			assert.True(t, tt.check(err))
			assert.True(t, errs.IsValidationError(err))

			var apiErr *errs.ApiErr
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tt.field, apiErr.Field)
			assert.Equal(t, 400, apiErr.StatusCode)
		})
	}
}

func TestProjectInputProject(t *testing.T) {
	categoryID := uint(3)
	in := ProjectInput{
		Title:      "Portfolio Backend API",
		Summary:    "The API behind this site",
		TechStack:  ListOf("Go", " chi ", ""),
		Tools:      CSV("Docker, , Make"),
		CategoryID: &categoryID,
	}

	p, err := in.Project()

	require.NoError(t, err)
	assert.Equal(t, "portfolio-backend-api", p.Slug)
	assert.Equal(t, "Go, chi", p.TechStack)
	assert.Equal(t, "Docker, Make", p.Tools)
	assert.Equal(t, &categoryID, p.CategoryID)
}

func TestProjectInputProjectValidates(t *testing.T) {
	_, err := ProjectInput{}.Project()

	assert.True(t, errs.IsMissingRequiredFieldError(err))
}
