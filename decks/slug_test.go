package decks

import (
	"testing"

	"github.com/goliatone/go-deck/slides"
)

func TestGenerateSlug(t *testing.T) {
	if got := GenerateSlug("My Deck!! Title"); got != "my-deck-title" {
		t.Fatalf("GenerateSlug: got %q", got)
	}
	if got := GenerateSlug("  --Leading--  "); got != "leading" {
		t.Fatalf("GenerateSlug leading hyphens: got %q", got)
	}
	if got := GenerateSlug("Q3   Review (Final)"); got != "q3-review-final" {
		t.Fatalf("GenerateSlug whitespace runs: got %q", got)
	}
	if got := GenerateSlug(""); got != "" {
		t.Fatalf("GenerateSlug empty input: got %q", got)
	}
}

func TestEnsureUniqueSlug(t *testing.T) {
	existing := []*Deck{{Slug: "demo"}, {Slug: "demo-1"}}

	if got := EnsureUniqueSlug("demo", existing); got != "demo-2" {
		t.Fatalf("EnsureUniqueSlug collision: got %q", got)
	}
	if got := EnsureUniqueSlug("fresh", existing); got != "fresh" {
		t.Fatalf("EnsureUniqueSlug no collision: got %q", got)
	}
	if got := EnsureUniqueSlug("demo", nil); got != "demo" {
		t.Fatalf("EnsureUniqueSlug empty store: got %q", got)
	}
}

func TestRequestValidation(t *testing.T) {
	if err := (CreateDeckRequest{}).Validate(); err == nil {
		t.Fatalf("empty create request should fail validation")
	}
	if err := (CreateDeckRequest{Title: "   "}).Validate(); err == nil {
		t.Fatalf("blank title should fail validation")
	}
	if err := (CreateDeckRequest{Title: "Demo"}).Validate(); err != nil {
		// zero templates are allowed: the service falls back to defaults
		t.Fatalf("create request without templates should pass: %v", err)
	}
	if err := (CreateDeckRequest{Title: "Demo", Templates: []slides.Kind{"carousel"}}).Validate(); err == nil {
		t.Fatalf("unknown template kind should fail validation")
	}
	if err := (DeleteDeckRequest{Slug: "demo"}).Validate(); err != nil {
		t.Fatalf("delete request should pass: %v", err)
	}
	if err := (UpdateDeckRequest{Slug: "demo"}).Validate(); err == nil {
		t.Fatalf("update without title should fail validation")
	}
}
