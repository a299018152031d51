package models

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/leoatienza/portfolio-backend/errs"
)

const (
	ProjectTitleMaxLen   = 120
	ProjectSlugMaxLen    = 140
	ProjectSummaryMaxLen = 300
)

// Project represents a portfolio item. CategoryID is a weak reference: the
// category row may have been removed, in which case Category stays nil.
type Project struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Title       string    `json:"title" gorm:"type:varchar(120);not null"`
	Slug        string    `json:"slug" gorm:"type:varchar(140);not null;uniqueIndex:idx_projects_slug"`
	Summary     string    `json:"summary" gorm:"type:text;not null"`
	Description string    `json:"description" gorm:"type:text;not null"`
	LiveURL     string    `json:"liveUrl" gorm:"type:text;not null"`
	RepoURL     string    `json:"repoUrl" gorm:"type:text;not null"`
	TechStack   string    `json:"techStack" gorm:"type:text;not null"`
	Tools       string    `json:"tools" gorm:"type:text;not null"`
	Details     string    `json:"details" gorm:"type:text;not null"`
	CategoryID  *uint     `json:"categoryId" gorm:"index:idx_projects_category_id"`
	CreatedAt   time.Time `json:"createdAt" gorm:"not null;index:idx_projects_created_at"`
	UpdatedAt   time.Time `json:"updatedAt" gorm:"not null"`

	Category *Category `json:"category" gorm:"foreignKey:CategoryID;references:ID"`
}

// TechStackItems returns the canonical tech stack split back into items.
func (p Project) TechStackItems() []string {
	return splitCanonical(p.TechStack)
}

// ToolItems returns the canonical tools list split back into items.
func (p Project) ToolItems() []string {
	return splitCanonical(p.Tools)
}

// PrepareForSave is the derived-field pipeline for a project: scalar fields are
// trimmed, list fields are put in canonical form and the slug is derived from
// the title when it is missing. Callers run it before every insert and update.
func (p *Project) PrepareForSave() error {
	p.Title = strings.TrimSpace(p.Title)
	p.Slug = strings.TrimSpace(p.Slug)
	p.Summary = strings.TrimSpace(p.Summary)
	p.LiveURL = strings.TrimSpace(p.LiveURL)
	p.RepoURL = strings.TrimSpace(p.RepoURL)
	p.TechStack = NormalizeCSV(p.TechStack)
	p.Tools = NormalizeCSV(p.Tools)

	if p.Title == "" {
		return errs.NewMissingRequiredFieldError("title")
	}
	if p.Slug == "" {
		p.Slug = deriveSlug(p.Title, ProjectSlugMaxLen)
		if p.Slug == "" {
			return errs.NewInvalidFieldError("title", "cannot be turned into a slug")
		}
	}

	if utf8.RuneCountInString(p.Title) > ProjectTitleMaxLen {
		return errs.NewInvalidFieldError("title", "must be at most 120 characters")
	}
	if len(p.Slug) > ProjectSlugMaxLen {
		return errs.NewInvalidFieldError("slug", "must be at most 140 characters")
	}
	if utf8.RuneCountInString(p.Summary) > ProjectSummaryMaxLen {
		return errs.NewInvalidFieldError("summary", "must be at most 300 characters")
	}
	return nil
}

// ProjectInput is the write-side shape of a project, used by seeding. List
// fields accept either a sequence or a comma-separated string.
type ProjectInput struct {
	Title       string    `json:"title"`
	Slug        string    `json:"slug,omitempty"`
	Category    string    `json:"category,omitempty"`
	Summary     string    `json:"summary"`
	Description string    `json:"description"`
	LiveURL     string    `json:"liveUrl"`
	RepoURL     string    `json:"repoUrl"`
	TechStack   ListInput `json:"techStack"`
	Tools       ListInput `json:"tools"`
	Details     string    `json:"details"`
	CategoryID  *uint     `json:"categoryId,omitempty"`
}

// Project converts the input into a prepared Project ready for persistence.
func (in ProjectInput) Project() (*Project, error) {
	p := &Project{
		Title:       in.Title,
		Slug:        in.Slug,
		Summary:     in.Summary,
		Description: in.Description,
		LiveURL:     in.LiveURL,
		RepoURL:     in.RepoURL,
		TechStack:   in.TechStack.Normalize(),
		Tools:       in.Tools.Normalize(),
		Details:     in.Details,
		CategoryID:  in.CategoryID,
	}
	if err := p.PrepareForSave(); err != nil {
		return nil, err
	}
	return p, nil
}
