// Package slug derives URL-safe identifiers from free-text titles.
//
// Existing records carry slugs produced by exactly this transformation, so
// its output must never drift for a given input.
package slug

import (
	"regexp"
	"strings"
)

// Fallback is returned when a title reduces to nothing.
const Fallback = "case"

var (
	invalidChars  = regexp.MustCompile(`[^a-zA-Z\p{Cyrillic}0-9\s-]`)
	whitespaceRun = regexp.MustCompile(`\s+`)
	hyphenRun     = regexp.MustCompile(`-+`)
)

// Make lowercases the text, keeps only ASCII letters, Cyrillic letters,
// digits and hyphens, folds ё to е, and collapses whitespace and hyphen
// runs to single hyphens.
func Make(text string) string {
	cleaned := invalidChars.ReplaceAllString(text, "")
	cleaned = strings.ToLower(strings.TrimSpace(cleaned))
	cleaned = strings.ReplaceAll(cleaned, "ё", "е")

	s := whitespaceRun.ReplaceAllString(cleaned, "-")
	s = hyphenRun.ReplaceAllString(s, "-")

	if s == "" {
		return Fallback
	}
	return s
}
