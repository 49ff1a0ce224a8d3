package markdown

import (
	"bytes"
	"fmt"

	"github.com/adrg/frontmatter"
)

// FrontMatter is the structured metadata a deck document can carry ahead of
// its markdown body. Every field is optional; the importer falls back to
// extraction heuristics when a field is missing.
type FrontMatter struct {
	Title       string         `yaml:"title"`
	Description string         `yaml:"description"`
	Slug        string         `yaml:"slug"`
	Templates   []string       `yaml:"templates"`
	ImageURL    string         `yaml:"image_url"`
	Custom      map[string]any `yaml:",inline"`
}

// ParseFrontMatter extracts metadata and the markdown body from the provided
// source bytes. Documents without a frontmatter block return a zero-valued
// FrontMatter and the source unchanged.
func ParseFrontMatter(source []byte) (FrontMatter, []byte, error) {
	var meta FrontMatter

	reader := bytes.NewReader(source)
	body, err := frontmatter.Parse(reader, &meta)
	if err != nil {
		return FrontMatter{}, nil, fmt.Errorf("parse frontmatter: %w", err)
	}

	return meta, body, nil
}
