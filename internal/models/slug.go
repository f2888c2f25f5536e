package models

import (
	"regexp"
	"strings"
)

var whitespaceRuns = regexp.MustCompile(`\s+`)

// Slugify derives a human-readable secondary identifier from a record name:
// ASCII lowercasing plus whitespace runs collapsed to single hyphens.
// Non-Latin characters pass through untransliterated. Uniqueness per
// collection is a convention, not enforced anywhere.
func Slugify(name string) string {
	return whitespaceRuns.ReplaceAllString(strings.ToLower(strings.TrimSpace(name)), "-")
}
