package markdown

import (
	"regexp"
	"strings"
)

var (
	horizontalRulePattern = regexp.MustCompile(`(?m)^---+\s*$`)
	slideHeaderPattern    = regexp.MustCompile(`(?mi)^#\s+Slide\s*\d*\s*$`)
	majorHeaderPattern    = regexp.MustCompile(`(?m)^#{1,2}\s+`)
)

// SplitSections divides markdown text into per-slide sections. Rules are tried
// in priority order and the first one yielding more than one section wins:
// horizontal rules, "# Slide N" headers, then a split before every # or ##
// header (the header stays with its content). Input with no separators at all
// becomes a single section. Empty input yields no sections.
func SplitSections(markdown string) []string {
	if strings.TrimSpace(markdown) == "" {
		return nil
	}

	if sections := splitDiscarding(markdown, horizontalRulePattern); len(sections) > 1 {
		return sections
	}

	if sections := splitDiscarding(markdown, slideHeaderPattern); len(sections) > 1 {
		return sections
	}

	if sections := splitBeforeHeaders(markdown); len(sections) > 1 {
		return sections
	}

	return []string{strings.TrimSpace(markdown)}
}

// splitDiscarding cuts the text on every separator match, dropping the
// separator line itself and any empty fragments.
func splitDiscarding(text string, separator *regexp.Regexp) []string {
	parts := separator.Split(text, -1)
	sections := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			sections = append(sections, trimmed)
		}
	}
	return sections
}

// splitBeforeHeaders cuts immediately before each # or ## header so the
// header line leads its section. Go's regexp has no lookahead, so we locate
// header starts and slice manually.
func splitBeforeHeaders(text string) []string {
	locs := majorHeaderPattern.FindAllStringIndex(text, -1)
	if len(locs) == 0 {
		return nil
	}

	boundaries := make([]int, 0, len(locs)+2)
	boundaries = append(boundaries, 0)
	for _, loc := range locs {
		if loc[0] > 0 {
			boundaries = append(boundaries, loc[0])
		}
	}
	boundaries = append(boundaries, len(text))

	sections := make([]string, 0, len(boundaries)-1)
	for i := 0; i < len(boundaries)-1; i++ {
		if trimmed := strings.TrimSpace(text[boundaries[i]:boundaries[i+1]]); trimmed != "" {
			sections = append(sections, trimmed)
		}
	}
	return sections
}
