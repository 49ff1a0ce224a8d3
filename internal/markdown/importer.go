package markdown

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goliatone/go-deck/decks"
	"github.com/goliatone/go-deck/internal/logging"
	"github.com/goliatone/go-deck/pkg/interfaces"
	"github.com/goliatone/go-deck/slides"
)

// ImportOptions tunes how a markdown document becomes a deck.
type ImportOptions struct {
	// Title overrides the document-derived title.
	Title string
	// Description overrides the document-derived description.
	Description string
	// Templates is the slide template cycle. Frontmatter templates take
	// precedence; when both are empty the importer detects kinds per section.
	Templates []slides.Kind
	// DryRun assembles the slides without persisting the deck.
	DryRun bool
	// FallbackTitle is used only when options, frontmatter, and the document
	// itself yield no title. ImportFile seeds it with the file name.
	FallbackTitle string
}

// Importer turns markdown documents into stored decks.
type Importer struct {
	service decks.Service
	logger  interfaces.Logger
}

// NewImporter constructs an importer bound to the supplied deck service.
func NewImporter(service decks.Service, logger interfaces.Logger) *Importer {
	if logger == nil {
		logger = logging.NoOp()
	}
	return &Importer{service: service, logger: logger}
}

// ImportFile reads a markdown file and imports it as a deck. The file name
// (without extension) becomes the title of last resort when options,
// frontmatter, and the document itself provide none.
func (im *Importer) ImportFile(ctx context.Context, path string, opts ImportOptions) (*decks.DeckWithContent, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("markdown import: read %s: %w", path, err)
	}

	if opts.FallbackTitle == "" {
		base := filepath.Base(path)
		opts.FallbackTitle = strings.TrimSuffix(base, filepath.Ext(base))
	}

	return im.Import(ctx, source, opts)
}

// Import builds a deck from raw markdown bytes. A YAML frontmatter block can
// supply title, description, slug, image_url, and the template cycle; the
// markdown body feeds the slide assembler.
func (im *Importer) Import(ctx context.Context, source []byte, opts ImportOptions) (*decks.DeckWithContent, error) {
	meta, body, err := ParseFrontMatter(source)
	if err != nil {
		// Deck markdown legitimately uses --- as a slide separator, which can
		// masquerade as a frontmatter fence. Fall back to the raw document.
		im.logger.Debug("markdown.import.frontmatter_skipped", "error", err)
		meta = FrontMatter{}
		body = source
	}

	title := firstNonEmpty(meta.Title, opts.Title)
	description := firstNonEmpty(meta.Description, opts.Description)

	if title == "" {
		if extracted, _ := ExtractTitle(string(body)); extracted != "" {
			title = extracted
		}
	}
	if title == "" {
		title = strings.TrimSpace(opts.FallbackTitle)
	}

	templates := opts.Templates
	if len(meta.Templates) > 0 {
		templates = make([]slides.Kind, 0, len(meta.Templates))
		for _, raw := range meta.Templates {
			kind, err := slides.ParseKind(raw)
			if err != nil {
				return nil, fmt.Errorf("markdown import: %w", err)
			}
			templates = append(templates, kind)
		}
	}

	if len(templates) == 0 {
		// No explicit cycle: detect a kind per section so the service applies
		// exactly the detected sequence.
		for _, section := range SplitSections(string(body)) {
			templates = append(templates, DetectKind(section))
		}
	}

	if opts.DryRun {
		var content []slides.Slide
		if len(templates) > 0 {
			content = Assemble(string(body), templates)
		} else {
			content = AssembleAuto(string(body))
		}
		im.logger.Info("markdown.import.dry_run", "title", title, "slides", len(content))
		return &decks.DeckWithContent{
			Deck:   &decks.Deck{Slug: meta.Slug, Title: title, Description: description, ImageURL: meta.ImageURL},
			Slides: content,
		}, nil
	}

	req := decks.CreateDeckRequest{
		Title:       title,
		Description: description,
		Markdown:    string(body),
		Templates:   templates,
		ImageURL:    meta.ImageURL,
		Slug:        meta.Slug,
	}

	created, err := im.service.Create(ctx, req)
	if err != nil {
		return nil, err
	}

	im.logger.Info("markdown.import.created", "slug", created.Deck.Slug, "slides", len(created.Slides))
	return created, nil
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if strings.TrimSpace(value) != "" {
			return value
		}
	}
	return ""
}
