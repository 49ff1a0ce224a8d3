package deckconfig

import (
	"testing"

	"github.com/goliatone/go-deck/slides"
)

func TestDecksReturnsCopies(t *testing.T) {
	first := Decks()
	if len(first) != 2 {
		t.Fatalf("Decks() len = %d, want 2", len(first))
	}

	first[0].Title = "mutated"
	second := Decks()
	if second[0].Title == "mutated" {
		t.Error("Decks() shares state between calls")
	}
}

func TestDecksAreMarkedBuiltin(t *testing.T) {
	for _, deck := range Decks() {
		if !deck.Builtin {
			t.Errorf("deck %q not marked builtin", deck.Slug)
		}
		if deck.ID.String() == "00000000-0000-0000-0000-000000000000" {
			t.Errorf("deck %q has zero ID", deck.Slug)
		}
	}
}

func TestGet(t *testing.T) {
	if deck := Get(ExampleDeckSlug); deck == nil || deck.Title != "Example Deck" {
		t.Errorf("Get(%q) = %+v", ExampleDeckSlug, deck)
	}
	if deck := Get("missing"); deck != nil {
		t.Errorf("Get(missing) = %+v, want nil", deck)
	}
}

func TestIsBuiltin(t *testing.T) {
	if !IsBuiltin(DesignProcessDeckSlug) {
		t.Errorf("IsBuiltin(%q) = false, want true", DesignProcessDeckSlug)
	}
	if IsBuiltin("user-deck") {
		t.Error("IsBuiltin(user-deck) = true, want false")
	}
}

func TestExampleDeckContent(t *testing.T) {
	content := Content(ExampleDeckSlug)
	if len(content) != 5 {
		t.Fatalf("Content() len = %d, want 5", len(content))
	}

	wantKinds := []slides.Kind{
		slides.KindTitle,
		slides.KindHeadline,
		slides.KindSection,
		slides.KindBulletList,
		slides.KindQuote,
	}
	for i, slide := range content {
		if slide.Kind != wantKinds[i] {
			t.Errorf("slide %d kind = %q, want %q", i, slide.Kind, wantKinds[i])
		}
		if slide.ID != i+1 {
			t.Errorf("slide %d id = %d, want %d", i, slide.ID, i+1)
		}
	}
}

func TestDesignProcessDeckContent(t *testing.T) {
	content := Content(DesignProcessDeckSlug)
	if len(content) != 12 {
		t.Fatalf("Content() len = %d, want 12", len(content))
	}

	var twoCol *slides.Slide
	for i := range content {
		if content[i].Kind == slides.KindTwoColumn {
			twoCol = &content[i]
			break
		}
	}
	if twoCol == nil {
		t.Fatal("no twoColumn slide in design process deck")
	}
	if twoCol.TwoColumn.ShowBottomBar == nil || *twoCol.TwoColumn.ShowBottomBar {
		t.Error("twoColumn slide should hide the bottom bar")
	}
	if !twoCol.TwoColumn.ComparisonMode() {
		t.Error("twoColumn slide should qualify for comparison mode")
	}
}

func TestContentUnknownSlug(t *testing.T) {
	if content := Content("missing"); content != nil {
		t.Errorf("Content(missing) = %v, want nil", content)
	}
}
