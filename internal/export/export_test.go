package export

import (
	"strings"
	"testing"

	"github.com/goliatone/go-deck/decks"
	"github.com/goliatone/go-deck/slides"
)

func TestRenderDeck(t *testing.T) {
	deck := &decks.Deck{
		Slug:        "launch-plan",
		Title:       "Launch Plan",
		Description: "Q2 rollout",
	}

	got := RenderDeck(deck)
	for _, want := range []string{`Slug:  "launch-plan"`, `Title: "Launch Plan"`, `Description: "Q2 rollout"`} {
		if !strings.Contains(got, want) {
			t.Errorf("RenderDeck() missing %q in:\n%s", want, got)
		}
	}
	if strings.Contains(got, "ImageURL") {
		t.Errorf("RenderDeck() should omit empty ImageURL:\n%s", got)
	}
}

func TestRenderDeckNil(t *testing.T) {
	if got := RenderDeck(nil); got != "nil\n" {
		t.Errorf("RenderDeck(nil) = %q", got)
	}
}

func TestRenderSlides(t *testing.T) {
	hide := false
	seq := []slides.Slide{
		slides.NewTitle(1, slides.Title{Title: "Hello", Subtitle: "World"}),
		slides.NewBulletList(2, slides.BulletList{Title: "Points", Items: []string{"one", "two"}}),
		slides.NewTwoColumn(3, slides.Columns{
			Title:         "Compare",
			ShowBottomBar: &hide,
			Columns: []slides.Column{
				{Heading: "Left", Bullets: []string{"a"}},
				{Heading: "Right", Bullets: []string{"b"}},
			},
		}),
		slides.NewIconList(4, slides.IconList{
			Title: "Values",
			Items: []slides.IconItem{{Text: "Ship it", Icon: "rocket"}},
		}),
	}

	got := RenderSlides(seq)
	for _, want := range []string{
		"slides.NewTitle(1, slides.Title{",
		`Subtitle: "World"`,
		"slides.NewBulletList(2, slides.BulletList{",
		`"one",`,
		"slides.NewTwoColumn(3, slides.Columns{",
		"ShowBottomBar: boolPtr(false)",
		`Heading: "Left"`,
		"slides.NewIconList(4, slides.IconList{",
		`{Text: "Ship it", Icon: "rocket"}`,
	} {
		if !strings.Contains(got, want) {
			t.Errorf("RenderSlides() missing %q in:\n%s", want, got)
		}
	}
}

func TestRenderEscapesQuotes(t *testing.T) {
	seq := []slides.Slide{
		slides.NewQuote(1, slides.Quote{Quote: `say "hello"`, Attribution: "someone"}),
	}
	got := RenderSlides(seq)
	if !strings.Contains(got, `"say \"hello\""`) {
		t.Errorf("RenderSlides() should escape quotes:\n%s", got)
	}
}
