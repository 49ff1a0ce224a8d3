package markdown

import (
	"strings"
	"testing"
)

func TestGoldmarkParserParse(t *testing.T) {
	parser := NewGoldmarkParser(ParseOptions{})

	html, err := parser.Parse([]byte("# Heading\n\nHello **world**"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	got := string(html)
	if !strings.Contains(got, "<h1") || !strings.Contains(got, "Heading</h1>") {
		t.Fatalf("expected rendered HTML to include <h1>Heading</h1>, got %q", got)
	}
	if !strings.Contains(got, "<strong>world</strong>") {
		t.Fatalf("expected rendered HTML to include <strong>, got %q", got)
	}
}

func TestGoldmarkParserSafeMode(t *testing.T) {
	parser := NewGoldmarkParser(ParseOptions{})

	unsafe, err := parser.Parse([]byte("<em>raw</em>"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !strings.Contains(string(unsafe), "<em>raw</em>") {
		t.Fatalf("default mode should pass raw HTML through, got %q", unsafe)
	}

	safe, err := parser.ParseWithOptions([]byte("<em>raw</em>"), ParseOptions{SafeMode: true})
	if err != nil {
		t.Fatalf("ParseWithOptions: %v", err)
	}
	if strings.Contains(string(safe), "<em>raw</em>") {
		t.Fatalf("safe mode should not emit raw HTML, got %q", safe)
	}
}

func TestGoldmarkParserExtensions(t *testing.T) {
	parser := NewGoldmarkParser(ParseOptions{Extensions: []string{"strikethrough"}})

	html, err := parser.Parse([]byte("~~gone~~"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !strings.Contains(string(html), "<del>gone</del>") {
		t.Fatalf("strikethrough extension should render <del>, got %q", html)
	}
}

func TestParseFrontMatter(t *testing.T) {
	source := []byte("---\ntitle: Launch Plan\ndescription: Rollout overview\nslug: launch-plan\ntemplates:\n  - title\n  - bulletList\n---\n# Welcome\nbody")

	meta, body, err := ParseFrontMatter(source)
	if err != nil {
		t.Fatalf("ParseFrontMatter: %v", err)
	}
	if meta.Title != "Launch Plan" || meta.Slug != "launch-plan" {
		t.Fatalf("frontmatter mismatch: %#v", meta)
	}
	if len(meta.Templates) != 2 || meta.Templates[1] != "bulletList" {
		t.Fatalf("templates mismatch: %#v", meta.Templates)
	}
	if !strings.Contains(string(body), "# Welcome") {
		t.Fatalf("body should survive frontmatter stripping: %q", body)
	}
}

func TestParseFrontMatterAbsent(t *testing.T) {
	source := []byte("# Plain Document\nno metadata")

	meta, body, err := ParseFrontMatter(source)
	if err != nil {
		t.Fatalf("ParseFrontMatter: %v", err)
	}
	if meta.Title != "" {
		t.Fatalf("expected empty frontmatter, got %#v", meta)
	}
	if string(body) != string(source) {
		t.Fatalf("body should be unchanged: %q", body)
	}
}
