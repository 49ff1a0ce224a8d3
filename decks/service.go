package decks

import (
	"context"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/goliatone/go-deck/slides"
)

// Service exposes deck management use cases. User-created decks live in the
// configured store; builtin example decks are read-only and resolved alongside
// stored records.
type Service interface {
	Create(ctx context.Context, req CreateDeckRequest) (*DeckWithContent, error)
	Update(ctx context.Context, req UpdateDeckRequest) (*Deck, error)
	Delete(ctx context.Context, req DeleteDeckRequest) error
	Get(ctx context.Context, slug string) (*Deck, error)
	List(ctx context.Context) ([]*Deck, error)
	Content(ctx context.Context, slug string) ([]slides.Slide, error)
	Export(ctx context.Context, slug string) (string, error)
}

// DeckWithContent pairs a deck record with its ordered slide sequence.
type DeckWithContent struct {
	Deck   *Deck
	Slides []slides.Slide
}

// CreateDeckRequest captures the payload for the deck creation flow. Markdown
// is optional; when empty the deck starts with a single title slide built from
// Title and Description.
type CreateDeckRequest struct {
	Title       string
	Description string
	Markdown    string
	Templates   []slides.Kind
	ImageURL    string
	// Slug overrides the generated slug when set. It still goes through
	// uniqueness enforcement.
	Slug string
}

// Validate rejects the request before any persistence is attempted.
func (r CreateDeckRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required, validation.By(notBlank("decks.create.title_required", "title is required"))),
		validation.Field(&r.Templates, validation.By(validTemplates)),
	)
}

// UpdateDeckRequest captures the mutable fields of an existing deck.
type UpdateDeckRequest struct {
	Slug        string
	Title       string
	Description string
	ImageURL    string
}

// Validate rejects the request before any persistence is attempted.
func (r UpdateDeckRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Slug, validation.Required, validation.By(notBlank("decks.update.slug_required", "slug is required"))),
		validation.Field(&r.Title, validation.Required, validation.By(notBlank("decks.update.title_required", "title is required"))),
	)
}

// DeleteDeckRequest identifies the deck to remove.
type DeleteDeckRequest struct {
	Slug string
}

// Validate rejects the request before any persistence is attempted.
func (r DeleteDeckRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Slug, validation.Required, validation.By(notBlank("decks.delete.slug_required", "slug is required"))),
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

func validTemplates(value any) error {
	kinds, ok := value.([]slides.Kind)
	if !ok {
		return nil
	}
	for _, kind := range kinds {
		if !kind.Valid() {
			return validation.NewError("decks.templates.unknown_kind", "unknown slide template "+string(kind))
		}
	}
	return nil
}
