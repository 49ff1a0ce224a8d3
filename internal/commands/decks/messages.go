package deckscmd

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/goliatone/go-deck/slides"
)

const (
	importDeckMessageType = "deck.decks.import"
	deleteDeckMessageType = "deck.decks.delete"
	exportDeckMessageType = "deck.decks.export"
)

// ImportDeckCommand turns a markdown document on disk into a stored deck.
type ImportDeckCommand struct {
	// Path selects the markdown file to import.
	Path string `json:"path"`
	// Title overrides the deck title derived from frontmatter or filename.
	Title string `json:"title,omitempty"`
	// Description overrides the deck description.
	Description string `json:"description,omitempty"`
	// Templates fixes the slide kind rotation instead of auto-detection.
	Templates []string `json:"templates,omitempty"`
	// DryRun assembles slides without persisting the deck.
	DryRun bool `json:"dry_run,omitempty"`
}

// Type implements command.Message.
func (ImportDeckCommand) Type() string { return importDeckMessageType }

// Validate ensures the import input is usable before handlers execute.
func (cmd ImportDeckCommand) Validate() error {
	return validation.ValidateStruct(&cmd,
		validation.Field(&cmd.Path, validation.Required, validation.By(notBlank("deck.decks.import.path_required", "path is required"))),
		validation.Field(&cmd.Templates, validation.By(knownTemplates)),
	)
}

// DeleteDeckCommand removes a stored deck and its slide content.
type DeleteDeckCommand struct {
	// Slug identifies the deck to delete.
	Slug string `json:"slug"`
}

// Type implements command.Message.
func (DeleteDeckCommand) Type() string { return deleteDeckMessageType }

// Validate ensures a slug is present before handlers execute.
func (cmd DeleteDeckCommand) Validate() error {
	return validation.ValidateStruct(&cmd,
		validation.Field(&cmd.Slug, validation.Required, validation.By(notBlank("deck.decks.delete.slug_required", "slug is required"))),
	)
}

// ExportDeckCommand renders a deck as registry source code and writes it to
// OutputPath.
type ExportDeckCommand struct {
	// Slug identifies the deck to export.
	Slug string `json:"slug"`
	// OutputPath selects the file the rendered snippet is written to.
	OutputPath string `json:"output_path"`
}

// Type implements command.Message.
func (ExportDeckCommand) Type() string { return exportDeckMessageType }

// Validate ensures slug and destination are present before handlers execute.
func (cmd ExportDeckCommand) Validate() error {
	return validation.ValidateStruct(&cmd,
		validation.Field(&cmd.Slug, validation.Required, validation.By(notBlank("deck.decks.export.slug_required", "slug is required"))),
		validation.Field(&cmd.OutputPath, validation.Required, validation.By(notBlank("deck.decks.export.output_required", "output path is required"))),
	)
}

func notBlank(code, message string) validation.RuleFunc {
	return func(value any) error {
		if text, ok := value.(string); ok && strings.TrimSpace(text) == "" {
			return validation.NewError(code, message)
		}
		return nil
	}
}

func knownTemplates(value any) error {
	names, ok := value.([]string)
	if !ok {
		return nil
	}
	for _, name := range names {
		if _, err := slides.ParseKind(name); err != nil {
			return validation.NewError("deck.decks.templates.unknown_kind", "unknown slide template "+name)
		}
	}
	return nil
}
