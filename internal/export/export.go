// Package export renders decks back into Go composite-literal source so a
// deck authored at runtime can be promoted into the built-in registry.
package export

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-deck/decks"
	"github.com/goliatone/go-deck/slides"
)

// Render produces a single snippet with the deck record followed by its
// slide sequence.
func Render(deck *decks.Deck, slideSeq []slides.Slide) string {
	var b strings.Builder
	b.WriteString(RenderDeck(deck))
	b.WriteString("\n")
	b.WriteString(RenderSlides(slideSeq))
	return b.String()
}

// RenderDeck renders the deck metadata record.
func RenderDeck(deck *decks.Deck) string {
	if deck == nil {
		return "nil\n"
	}

	var b strings.Builder
	b.WriteString("&decks.Deck{\n")
	fmt.Fprintf(&b, "\tSlug:  %q,\n", deck.Slug)
	fmt.Fprintf(&b, "\tTitle: %q,\n", deck.Title)
	if deck.Description != "" {
		fmt.Fprintf(&b, "\tDescription: %q,\n", deck.Description)
	}
	if deck.ImageURL != "" {
		fmt.Fprintf(&b, "\tImageURL: %q,\n", deck.ImageURL)
	}
	b.WriteString("}\n")
	return b.String()
}

// RenderSlides renders the slide sequence as constructor calls, one per
// slide, preserving IDs and order.
func RenderSlides(slideSeq []slides.Slide) string {
	var b strings.Builder
	b.WriteString("[]slides.Slide{\n")
	for i := range slideSeq {
		renderSlide(&b, &slideSeq[i])
	}
	b.WriteString("}\n")
	return b.String()
}

func renderSlide(b *strings.Builder, slide *slides.Slide) {
	switch slide.Kind {
	case slides.KindTitle:
		v := valueOrZero(slide.Title)
		openCall(b, "NewTitle", slide.ID, "Title")
		field(b, "Title", v.Title)
		field(b, "Subtitle", v.Subtitle)
		field(b, "BackgroundImage", v.BackgroundImage)
		closeCall(b)
	case slides.KindHeadline:
		v := valueOrZero(slide.Headline)
		openCall(b, "NewHeadline", slide.ID, "Headline")
		field(b, "Headline", v.Headline)
		closeCall(b)
	case slides.KindSection:
		v := valueOrZero(slide.Section)
		openCall(b, "NewSection", slide.ID, "Section")
		field(b, "Title", v.Title)
		field(b, "Description", v.Description)
		closeCall(b)
	case slides.KindBulletList:
		v := valueOrZero(slide.BulletList)
		openCall(b, "NewBulletList", slide.ID, "BulletList")
		field(b, "Title", v.Title)
		stringSlice(b, "Items", v.Items)
		closeCall(b)
	case slides.KindImage:
		v := valueOrZero(slide.Image)
		openCall(b, "NewImage", slide.ID, "Image")
		field(b, "Title", v.Title)
		field(b, "Src", v.Src)
		field(b, "Alt", v.Alt)
		field(b, "Caption", v.Caption)
		closeCall(b)
	case slides.KindQuote:
		v := valueOrZero(slide.Quote)
		openCall(b, "NewQuote", slide.ID, "Quote")
		field(b, "Quote", v.Quote)
		field(b, "Attribution", v.Attribution)
		closeCall(b)
	case slides.KindBlank:
		v := valueOrZero(slide.Blank)
		openCall(b, "NewBlank", slide.ID, "Blank")
		field(b, "Title", v.Title)
		closeCall(b)
	case slides.KindTwoColumn:
		renderColumns(b, "NewTwoColumn", slide.ID, valueOrZero(slide.TwoColumn))
	case slides.KindThreeColumn:
		renderColumns(b, "NewThreeColumn", slide.ID, valueOrZero(slide.ThreeColumn))
	case slides.KindTimeline:
		v := valueOrZero(slide.Timeline)
		openCall(b, "NewTimeline", slide.ID, "Timeline")
		field(b, "Title", v.Title)
		if len(v.Items) > 0 {
			b.WriteString("\t\tItems: []slides.TimelineItem{\n")
			for _, item := range v.Items {
				fmt.Fprintf(b, "\t\t\t{Label: %q", item.Label)
				if item.Description != "" {
					fmt.Fprintf(b, ", Description: %q", item.Description)
				}
				b.WriteString("},\n")
			}
			b.WriteString("\t\t},\n")
		}
		closeCall(b)
	case slides.KindIconList:
		v := valueOrZero(slide.IconList)
		openCall(b, "NewIconList", slide.ID, "IconList")
		field(b, "Title", v.Title)
		if len(v.Items) > 0 {
			b.WriteString("\t\tItems: []slides.IconItem{\n")
			for _, item := range v.Items {
				fmt.Fprintf(b, "\t\t\t{Text: %q", item.Text)
				if item.Icon != "" {
					fmt.Fprintf(b, ", Icon: %q", item.Icon)
				}
				b.WriteString("},\n")
			}
			b.WriteString("\t\t},\n")
		}
		closeCall(b)
	default:
		fmt.Fprintf(b, "\t// unknown slide kind %q (id %d) skipped\n", slide.Kind, slide.ID)
	}
}

func renderColumns(b *strings.Builder, constructor string, id int, v slides.Columns) {
	openCall(b, constructor, id, "Columns")
	field(b, "Title", v.Title)
	if v.ShowBottomBar != nil {
		fmt.Fprintf(b, "\t\tShowBottomBar: boolPtr(%t),\n", *v.ShowBottomBar)
	}
	if len(v.Columns) > 0 {
		b.WriteString("\t\tColumns: []slides.Column{\n")
		for _, column := range v.Columns {
			fmt.Fprintf(b, "\t\t\t{\n\t\t\t\tHeading: %q,\n", column.Heading)
			if column.Body != "" {
				fmt.Fprintf(b, "\t\t\t\tBody: %q,\n", column.Body)
			}
			if len(column.Bullets) > 0 {
				b.WriteString("\t\t\t\tBullets: []string{\n")
				for _, bullet := range column.Bullets {
					fmt.Fprintf(b, "\t\t\t\t\t%q,\n", bullet)
				}
				b.WriteString("\t\t\t\t},\n")
			}
			if column.BackgroundColor != "" {
				fmt.Fprintf(b, "\t\t\t\tBackgroundColor: %q,\n", column.BackgroundColor)
			}
			b.WriteString("\t\t\t},\n")
		}
		b.WriteString("\t\t},\n")
	}
	closeCall(b)
}

func openCall(b *strings.Builder, constructor string, id int, variant string) {
	fmt.Fprintf(b, "\tslides.%s(%d, slides.%s{\n", constructor, id, variant)
}

func closeCall(b *strings.Builder) {
	b.WriteString("\t}),\n")
}

func field(b *strings.Builder, name, value string) {
	if value == "" {
		return
	}
	fmt.Fprintf(b, "\t\t%s: %q,\n", name, value)
}

func stringSlice(b *strings.Builder, name string, values []string) {
	if len(values) == 0 {
		return
	}
	fmt.Fprintf(b, "\t\t%s: []string{\n", name)
	for _, value := range values {
		fmt.Fprintf(b, "\t\t\t%q,\n", value)
	}
	b.WriteString("\t\t},\n")
}

func valueOrZero[T any](ptr *T) T {
	if ptr == nil {
		var zero T
		return zero
	}
	return *ptr
}
