package markdown

import "github.com/goliatone/go-deck/slides"

// Assemble converts markdown text into an ordered slide sequence. The section
// at position i uses kinds[i mod len(kinds)], and slide IDs run 1..N with no
// gaps. Markdown that yields no sections still produces a single default slide
// of the first requested kind. Pure: identical input always yields an
// identical sequence.
func Assemble(markdown string, kinds []slides.Kind) []slides.Slide {
	if len(kinds) == 0 {
		return nil
	}

	sections := SplitSections(markdown)
	out := make([]slides.Slide, 0, len(sections))

	for i, section := range sections {
		kind := kinds[i%len(kinds)]
		out = append(out, BuildSlide(section, kind, i+1))
	}

	if len(out) == 0 {
		out = append(out, defaultSlide(kinds[0]))
	}

	return out
}

// AssembleAuto converts markdown into slides, picking the template kind per
// section with DetectKind instead of a caller-supplied cycle.
func AssembleAuto(markdown string) []slides.Slide {
	sections := SplitSections(markdown)
	out := make([]slides.Slide, 0, len(sections))
	for i, section := range sections {
		out = append(out, BuildSlide(section, DetectKind(section), i+1))
	}
	return out
}

const defaultDeckTitle = "New Presentation"

// defaultSlide builds the placeholder slide emitted when markdown yields no
// sections. It is constructed directly rather than through BuildSlide so the
// placeholder title never leaks into subtitle or quote fields.
func defaultSlide(kind slides.Kind) slides.Slide {
	switch kind {
	case slides.KindHeadline:
		return slides.NewHeadline(1, slides.Headline{Headline: defaultDeckTitle})
	case slides.KindQuote:
		return slides.NewQuote(1, slides.Quote{Quote: defaultDeckTitle})
	case slides.KindSection:
		return slides.NewSection(1, slides.Section{Title: defaultDeckTitle})
	case slides.KindBulletList:
		return slides.NewBulletList(1, slides.BulletList{Title: defaultDeckTitle, Items: []string{"Item"}})
	case slides.KindImage:
		return slides.NewImage(1, slides.Image{Title: defaultDeckTitle})
	case slides.KindBlank:
		return slides.NewBlank(1, slides.Blank{Title: defaultDeckTitle})
	case slides.KindTwoColumn:
		return slides.NewTwoColumn(1, slides.Columns{Title: defaultDeckTitle})
	case slides.KindThreeColumn:
		return slides.NewThreeColumn(1, slides.Columns{Title: defaultDeckTitle})
	case slides.KindTimeline:
		return slides.NewTimeline(1, slides.Timeline{Title: defaultDeckTitle})
	case slides.KindIconList:
		return slides.NewIconList(1, slides.IconList{Title: defaultDeckTitle})
	default:
		return slides.NewTitle(1, slides.Title{Title: defaultDeckTitle})
	}
}
