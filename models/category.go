package models

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/leoatienza/portfolio-backend/errs"
)

const (
	CategoryNameMaxLen = 60
	CategorySlugMaxLen = 80
)

// Category groups projects under a named, slugged heading
type Category struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"type:varchar(60);not null;uniqueIndex:idx_categories_name"`
	Slug      string    `json:"slug" gorm:"type:varchar(80);not null;uniqueIndex:idx_categories_slug"`
	CreatedAt time.Time `json:"createdAt" gorm:"not null"`
	UpdatedAt time.Time `json:"updatedAt" gorm:"not null"`
}

// PrepareForSave trims the record, derives the slug from the name when it is
// missing and validates the column limits. It must run before Add.
func (c *Category) PrepareForSave() error {
	c.Name = strings.TrimSpace(c.Name)
	c.Slug = strings.TrimSpace(c.Slug)

	if c.Name == "" {
		return errs.NewMissingRequiredFieldError("name")
	}
	if utf8.RuneCountInString(c.Name) > CategoryNameMaxLen {
		return errs.NewInvalidFieldError("name", "must be at most 60 characters")
	}

	if c.Slug == "" {
		c.Slug = deriveSlug(c.Name, CategorySlugMaxLen)
	}
	if c.Slug == "" {
		return errs.NewMissingRequiredFieldError("slug")
	}
	if len(c.Slug) > CategorySlugMaxLen {
		return errs.NewInvalidFieldError("slug", "must be at most 80 characters")
	}
	return nil
}
