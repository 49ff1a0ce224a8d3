package decks

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/goliatone/go-slug"
)

// SlugNormalizer exposes the slug normalizer interface.
type SlugNormalizer = slug.Normalizer

// DefaultSlugNormalizer returns the default slug normalizer.
func DefaultSlugNormalizer() SlugNormalizer {
	return slug.Default()
}

// IsValidSlug reports whether the slug matches the default rules.
func IsValidSlug(value string) bool {
	return slug.IsValid(value)
}

var (
	slugStripPattern    = regexp.MustCompile(`[^\w\s-]`)
	slugSpacePattern    = regexp.MustCompile(`\s+`)
	slugRepeatedHyphens = regexp.MustCompile(`-+`)
)

// GenerateSlug derives a URL-safe slug from a deck title: lowercase, special
// characters stripped, whitespace runs collapsed to single hyphens, repeated
// and outer hyphens removed. Pure function, no I/O.
func GenerateSlug(title string) string {
	value := strings.ToLower(strings.TrimSpace(title))
	value = slugStripPattern.ReplaceAllString(value, "")
	value = slugSpacePattern.ReplaceAllString(value, "-")
	value = slugRepeatedHyphens.ReplaceAllString(value, "-")
	return strings.Trim(value, "-")
}

// EnsureUniqueSlug appends -1, -2, ... to base until it no longer collides
// with any slug in existing. Deterministic for a fixed existing ordering.
func EnsureUniqueSlug(base string, existing []*Deck) string {
	taken := make(map[string]struct{}, len(existing))
	for _, deck := range existing {
		if deck != nil {
			taken[deck.Slug] = struct{}{}
		}
	}

	candidate := base
	for counter := 1; ; counter++ {
		if _, ok := taken[candidate]; !ok {
			return candidate
		}
		candidate = fmt.Sprintf("%s-%d", base, counter)
	}
}
