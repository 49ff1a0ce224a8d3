package slides

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestSlideJSONEnvelope(t *testing.T) {
	slide := NewBulletList(2, BulletList{
		Title: "Key Points",
		Items: []string{"one", "two"},
	})

	data, err := json.Marshal(slide)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	got := string(data)
	if !strings.Contains(got, `"id":2`) || !strings.Contains(got, `"type":"bulletList"`) {
		t.Fatalf("envelope missing id/type tags: %s", got)
	}
	if strings.Contains(got, "quote") || strings.Contains(got, "columns") {
		t.Fatalf("envelope should omit fields from other kinds: %s", got)
	}

	var decoded Slide
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if decoded.Kind != KindBulletList || decoded.BulletList == nil {
		t.Fatalf("decoded slide lost its variant: %#v", decoded)
	}
	if decoded.BulletList.Title != "Key Points" || len(decoded.BulletList.Items) != 2 {
		t.Fatalf("decoded bullet list mismatch: %#v", decoded.BulletList)
	}
}

func TestSlideJSONDropsForeignFields(t *testing.T) {
	// A flat payload mixing quote fields into a title record must come back
	// as a clean title variant.
	payload := `{"id":1,"type":"title","title":"Hello","quote":"ignored","items":["ignored"]}`

	var decoded Slide
	if err := json.Unmarshal([]byte(payload), &decoded); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if decoded.Title == nil || decoded.Title.Title != "Hello" {
		t.Fatalf("expected title variant, got %#v", decoded)
	}
	if decoded.Quote != nil || decoded.BulletList != nil {
		t.Fatalf("foreign variants should stay nil: %#v", decoded)
	}
}

func TestSlideJSONRejectsUnknownKind(t *testing.T) {
	var decoded Slide
	err := json.Unmarshal([]byte(`{"id":1,"type":"carousel"}`), &decoded)
	if !errors.Is(err, ErrUnknownKind) {
		t.Fatalf("expected ErrUnknownKind, got %v", err)
	}
}

func TestSlideJSONTwoColumnRoundTrip(t *testing.T) {
	show := true
	slide := NewTwoColumn(3, Columns{
		Title: "Tradeoffs",
		Columns: []Column{
			{Heading: "Pros", Bullets: []string{"fast", "simple"}},
			{Heading: "Cons", Bullets: []string{"rigid", "manual"}},
		},
		ShowBottomBar: &show,
	})

	data, err := json.Marshal(slide)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	var decoded Slide
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if decoded.TwoColumn == nil || len(decoded.TwoColumn.Columns) != 2 {
		t.Fatalf("two column slide lost columns: %#v", decoded)
	}
	if decoded.TwoColumn.ShowBottomBar == nil || !*decoded.TwoColumn.ShowBottomBar {
		t.Fatalf("showBottomBar flag should survive the round trip")
	}
	if !decoded.TwoColumn.ComparisonMode() {
		t.Fatalf("equal bullet counts should enable comparison mode after decode")
	}
}
