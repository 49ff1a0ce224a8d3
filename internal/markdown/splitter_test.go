package markdown

import "testing"

func TestSplitSectionsHorizontalRules(t *testing.T) {
	input := "First slide\n---\nSecond slide\n-----\nThird slide"

	sections := SplitSections(input)
	if len(sections) != 3 {
		t.Fatalf("expected 3 sections, got %d: %#v", len(sections), sections)
	}
	if sections[0] != "First slide" || sections[1] != "Second slide" || sections[2] != "Third slide" {
		t.Fatalf("unexpected sections: %#v", sections)
	}
	for _, section := range sections {
		if section == "---" || section == "" {
			t.Fatalf("separator leaked into sections: %#v", sections)
		}
	}
}

func TestSplitSectionsSlideHeaders(t *testing.T) {
	input := "# Slide 1\nIntro content\n# slide 2\nMore content\n# SLIDE\nFinal"

	sections := SplitSections(input)
	if len(sections) != 3 {
		t.Fatalf("expected 3 sections, got %d: %#v", len(sections), sections)
	}
	if sections[0] != "Intro content" || sections[1] != "More content" || sections[2] != "Final" {
		t.Fatalf("unexpected sections: %#v", sections)
	}
}

func TestSplitSectionsFreeformHeaders(t *testing.T) {
	input := "# Welcome\nSome intro\n\n## Agenda\n- first\n- second"

	sections := SplitSections(input)
	if len(sections) != 2 {
		t.Fatalf("expected 2 sections, got %d: %#v", len(sections), sections)
	}
	if sections[0] != "# Welcome\nSome intro" {
		t.Fatalf("first section should keep its header: %q", sections[0])
	}
	if sections[1] != "## Agenda\n- first\n- second" {
		t.Fatalf("second section should keep its header: %q", sections[1])
	}
}

func TestSplitSectionsRulePriority(t *testing.T) {
	// Horizontal rules win even when headers are present.
	input := "# One\nbody\n---\n# Two\nbody"

	sections := SplitSections(input)
	if len(sections) != 2 {
		t.Fatalf("expected 2 sections, got %d: %#v", len(sections), sections)
	}
	if sections[0] != "# One\nbody" || sections[1] != "# Two\nbody" {
		t.Fatalf("horizontal rule should take priority: %#v", sections)
	}
}

func TestSplitSectionsFallbacks(t *testing.T) {
	single := SplitSections("Just one block of text\nwith two lines")
	if len(single) != 1 {
		t.Fatalf("input without separators should be one section: %#v", single)
	}

	if sections := SplitSections("   \n\t\n"); sections != nil {
		t.Fatalf("whitespace-only input should yield no sections: %#v", sections)
	}
	if sections := SplitSections(""); sections != nil {
		t.Fatalf("empty input should yield no sections: %#v", sections)
	}
}

func TestSplitSectionsIgnoresDeepHeaders(t *testing.T) {
	input := "### Minor heading\ntext\n### Another\nmore"

	sections := SplitSections(input)
	if len(sections) != 1 {
		t.Fatalf("### headers should not split sections: %#v", sections)
	}
}
