package models

import (
	"strings"

	"github.com/gosimple/slug"
)

// DeriveSlug turns a display name into a URL-safe slug made only of
// lower-case ASCII letters, digits and single hyphens. It returns an empty
// string when nothing usable remains.
func DeriveSlug(title string) string {
	return deriveSlug(title, 0)
}

func deriveSlug(title string, maxLen int) string {
	// slug.Make keeps underscores, fold them into the separator as well
	s := strings.ReplaceAll(slug.Make(title), "_", "-")
	parts := strings.FieldsFunc(s, func(r rune) bool { return r == '-' })
	s = strings.Join(parts, "-")

	if maxLen > 0 && len(s) > maxLen {
		s = strings.TrimRight(s[:maxLen], "-")
	}
	return s
}
