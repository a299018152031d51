package models

import (
	"strings"
	"testing"

	"github.com/leoatienza/portfolio-backend/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryPrepareForSave(t *testing.T) {
	c := &Category{Name: "  Machine Learning "}

	require.NoError(t, c.PrepareForSave())

	assert.Equal(t, "Machine Learning", c.Name)
	assert.Equal(t, "machine-learning", c.Slug)
}

func TestCategoryPrepareForSaveKeepsSlug(t *testing.T) {
	c := &Category{Name: "Web", Slug: "web-apps"}

	require.NoError(t, c.PrepareForSave())

	assert.Equal(t, "web-apps", c.Slug)
}

func TestCategoryPrepareForSaveRejects(t *testing.T) {
	assert.True(t, errs.IsMissingRequiredFieldError((&Category{}).PrepareForSave()))
	assert.True(t, errs.IsMissingRequiredFieldError((&Category{Name: "???"}).PrepareForSave()))
	assert.True(t, errs.IsInvalidFieldError((&Category{Name: strings.Repeat("n", CategoryNameMaxLen+1)}).PrepareForSave()))
	assert.True(t, errs.IsInvalidFieldError((&Category{Name: "ok", Slug: strings.Repeat("s", CategorySlugMaxLen+1)}).PrepareForSave()))
}
