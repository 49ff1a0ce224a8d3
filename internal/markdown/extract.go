package markdown

import (
	"regexp"
	"strings"

	"github.com/goliatone/go-deck/slides"
)

var (
	h1TitlePattern   = regexp.MustCompile(`(?m)^#\s+(.+)$`)
	h2TitlePattern   = regexp.MustCompile(`(?m)^##\s+(.+)$`)
	bulletPattern    = regexp.MustCompile(`^[-*+]\s+(.+)$`)
	numberedPattern  = regexp.MustCompile(`^\d+\.\s+(.+)$`)
	inlineImgPattern = regexp.MustCompile(`!\[([^\]]*)\]\(([^)]+)\)`)
)

const maxInlineTitleLength = 100

// ExtractTitle pulls a title out of a section, preferring a # header, then a
// ## header, then a short first line that is not a list or quote marker. The
// consumed line is removed from the returned remainder.
func ExtractTitle(section string) (title, remaining string) {
	if match := h1TitlePattern.FindStringSubmatch(section); match != nil {
		return strings.TrimSpace(match[1]), removeFirstMatch(section, h1TitlePattern)
	}

	if match := h2TitlePattern.FindStringSubmatch(section); match != nil {
		return strings.TrimSpace(match[1]), removeFirstMatch(section, h2TitlePattern)
	}

	lines := strings.Split(section, "\n")
	firstLine := strings.TrimSpace(lines[0])
	if firstLine != "" &&
		!strings.HasPrefix(firstLine, "-") &&
		!strings.HasPrefix(firstLine, "*") &&
		!strings.HasPrefix(firstLine, ">") &&
		len(firstLine) < maxInlineTitleLength {
		return firstLine, strings.TrimSpace(strings.Join(lines[1:], "\n"))
	}

	return "", section
}

// removeFirstMatch drops only the first occurrence so later header lines stay
// part of the section body.
func removeFirstMatch(text string, pattern *regexp.Regexp) string {
	loc := pattern.FindStringIndex(text)
	if loc == nil {
		return strings.TrimSpace(text)
	}
	return strings.TrimSpace(text[:loc[0]] + text[loc[1]:])
}

// ExtractBullets collects `-`, `*`, `+` and `N.` prefixed lines in order,
// stripped of their markers. Lines without a list marker are ignored.
func ExtractBullets(content string) []string {
	var items []string
	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		if match := bulletPattern.FindStringSubmatch(trimmed); match != nil {
			items = append(items, strings.TrimSpace(match[1]))
			continue
		}
		if match := numberedPattern.FindStringSubmatch(trimmed); match != nil {
			items = append(items, strings.TrimSpace(match[1]))
		}
	}
	return items
}

// ExtractQuote collects consecutive `>` prefixed lines as the space-joined
// quote body; the first non-empty line after the run becomes the attribution.
// A non-empty line before any quote line aborts the extraction.
func ExtractQuote(content string) (*slides.Quote, bool) {
	var quoteLines []string
	var attribution string

	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(trimmed, ">"):
			if text := strings.TrimSpace(strings.TrimPrefix(trimmed, ">")); text != "" {
				quoteLines = append(quoteLines, text)
			}
		case trimmed != "" && len(quoteLines) == 0:
			return nil, false
		case trimmed != "":
			attribution = trimmed
		}
		if attribution != "" {
			break
		}
	}

	if len(quoteLines) == 0 {
		return nil, false
	}
	return &slides.Quote{
		Quote:       strings.Join(quoteLines, " "),
		Attribution: attribution,
	}, true
}

// ExtractImage matches the first `![alt](src)` occurrence. When the line
// immediately after the match is plain text (not another image or link) it is
// treated as the caption.
func ExtractImage(content string) (*slides.Image, bool) {
	match := inlineImgPattern.FindStringSubmatch(content)
	if match == nil {
		return nil, false
	}

	image := &slides.Image{Alt: match[1], Src: match[2]}

	lines := strings.Split(content, "\n")
	for i, line := range lines {
		if !strings.Contains(line, match[0]) {
			continue
		}
		if i+1 < len(lines) {
			next := strings.TrimSpace(lines[i+1])
			if next != "" && !strings.HasPrefix(next, "!") && !strings.HasPrefix(next, "[") {
				image.Caption = next
			}
		}
		break
	}

	return image, true
}

// DetectKind guesses the best template kind for a section based on its
// markers: quote, then image, then bullet list, then a short headline, and
// finally a generic section.
func DetectKind(content string) slides.Kind {
	trimmed := strings.TrimSpace(content)
	lowered := strings.ToLower(trimmed)

	if strings.HasPrefix(lowered, ">") || strings.Contains(lowered, "\n>") {
		return slides.KindQuote
	}
	if strings.Contains(lowered, "![") && strings.Contains(lowered, "](") {
		return slides.KindImage
	}
	for _, line := range strings.Split(trimmed, "\n") {
		clean := strings.TrimSpace(line)
		if bulletPattern.MatchString(clean) || numberedPattern.MatchString(clean) {
			return slides.KindBulletList
		}
	}
	if len(trimmed) < 200 && !strings.Contains(trimmed, "\n\n") {
		return slides.KindHeadline
	}
	return slides.KindSection
}

// BuildSlide classifies one section into a slide of the requested kind.
// Missing fields fall back to deterministic placeholders so no slide record
// ever carries an empty required field.
func BuildSlide(section string, kind slides.Kind, id int) slides.Slide {
	title, remaining := ExtractTitle(section)
	content := remaining
	if content == "" {
		content = section
	}

	switch kind {
	case slides.KindTitle:
		return slides.NewTitle(id, slides.Title{
			Title:    fallback(title, "Untitled"),
			Subtitle: firstLine(content),
		})

	case slides.KindHeadline:
		headline := title
		if headline == "" {
			headline = firstLine(content)
		}
		return slides.NewHeadline(id, slides.Headline{
			Headline: fallback(headline, "Headline"),
		})

	case slides.KindSection:
		return slides.NewSection(id, slides.Section{
			Title:       fallback(title, "Section"),
			Description: firstParagraph(content),
		})

	case slides.KindBulletList:
		items := ExtractBullets(content)
		if len(items) == 0 {
			items = []string{fallback(strings.TrimSpace(content), "Item")}
		}
		return slides.NewBulletList(id, slides.BulletList{
			Title: fallback(title, "Bullet Points"),
			Items: items,
		})

	case slides.KindQuote:
		if quote, ok := ExtractQuote(section); ok {
			return slides.NewQuote(id, *quote)
		}
		quote := title
		if quote == "" {
			quote = firstLine(content)
		}
		return slides.NewQuote(id, slides.Quote{
			Quote:       fallback(quote, "Quote"),
			Attribution: secondLine(content),
		})

	case slides.KindImage:
		if image, ok := ExtractImage(section); ok {
			image.Title = title
			return slides.NewImage(id, *image)
		}
		return slides.NewImage(id, slides.Image{
			Title: fallback(title, "Image"),
		})

	case slides.KindBlank:
		return slides.NewBlank(id, slides.Blank{Title: title})

	case slides.KindTwoColumn:
		return slides.NewTwoColumn(id, slides.Columns{Title: fallback(title, "Slide")})

	case slides.KindThreeColumn:
		return slides.NewThreeColumn(id, slides.Columns{Title: fallback(title, "Slide")})

	case slides.KindTimeline:
		return slides.NewTimeline(id, slides.Timeline{Title: fallback(title, "Slide")})

	case slides.KindIconList:
		return slides.NewIconList(id, slides.IconList{Title: fallback(title, "Slide")})

	default:
		// Column, timeline, and icon list markers have no markdown syntax, so
		// any other kind degrades to a section-style record the user fleshes
		// out in the editor.
		return slides.NewSection(id, slides.Section{
			Title:       fallback(title, "Slide"),
			Description: firstParagraph(content),
		})
	}
}

func fallback(value, placeholder string) string {
	if strings.TrimSpace(value) == "" {
		return placeholder
	}
	return value
}

func firstLine(content string) string {
	return strings.TrimSpace(strings.SplitN(content, "\n", 2)[0])
}

func secondLine(content string) string {
	lines := strings.Split(content, "\n")
	if len(lines) < 2 {
		return ""
	}
	return strings.TrimSpace(lines[1])
}

func firstParagraph(content string) string {
	return strings.TrimSpace(strings.SplitN(content, "\n\n", 2)[0])
}
