package models

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

func TestDeriveSlug(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  string
	}{
		{"hyphenated title", "Dine-In Digital", "dine-in-digital"},
		{"punctuation runs", "Hello,   World!!", "hello-world"},
		{"surrounding separators", "  --Portfolio Backend API--  ", "portfolio-backend-api"},
		{"underscores", "snake_case_title", "snake-case-title"},
		{"accents", "Café Déjà Vu", "cafe-deja-vu"},
		{"digits", "Top 10 Tools", "top-10-tools"},
		{"only symbols", "!!! ???", ""},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DeriveSlug(tt.title))
		})
	}
}

func TestDeriveSlugShape(t *testing.T) {
	titles := []string{
		"NotesTok",
		"A  B  C",
		"Node.js + Express",
		"C# / .NET",
		"__init__",
		"-leading and trailing-",
		"Ünïcödé Tëxt",
	}

	for _, title := range titles {
		got := DeriveSlug(title)
		assert.Regexp(t, slugPattern, got, "title %q", title)
		assert.Equal(t, got, DeriveSlug(title), "derivation must be stable for %q", title)
		assert.Equal(t, got, DeriveSlug(got), "a slug must derive to itself")
	}
}

func TestDeriveSlugTruncatesWithoutTrailingHyphen(t *testing.T) {
	title := strings.Repeat("ab ", 100)

	got := deriveSlug(title, 9)

	assert.LessOrEqual(t, len(got), 9)
	assert.Regexp(t, slugPattern, got)
	assert.Equal(t, "ab-ab-ab", got)
}
