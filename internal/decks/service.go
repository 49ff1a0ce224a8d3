package decks

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/goliatone/go-deck/deckconfig"
	deckapi "github.com/goliatone/go-deck/decks"
	"github.com/goliatone/go-deck/internal/export"
	"github.com/goliatone/go-deck/internal/identity"
	"github.com/goliatone/go-deck/internal/logging"
	"github.com/goliatone/go-deck/internal/markdown"
	"github.com/goliatone/go-deck/pkg/interfaces"
	"github.com/goliatone/go-deck/slides"
)

// DefaultTemplates is the slide kind rotation used when a create request
// does not pick templates explicitly.
var DefaultTemplates = []slides.Kind{
	slides.KindTitle,
	slides.KindHeadline,
	slides.KindBulletList,
}

const defaultDescription = "A new presentation deck"

// Store abstracts deck persistence for the service.
type Store interface {
	Save(ctx context.Context, deck *deckapi.Deck, slideSeq []slides.Slide) error
	List(ctx context.Context) ([]*deckapi.Deck, error)
	GetBySlug(ctx context.Context, slug string) (*deckapi.Deck, error)
	GetContentBySlug(ctx context.Context, slug string) ([]slides.Slide, error)
	Delete(ctx context.Context, slug string) error
}

// ServiceOption configures the service at construction time.
type ServiceOption func(*service)

// WithClock overrides the clock used to stamp records.
func WithClock(clock func() time.Time) ServiceOption {
	return func(s *service) {
		if clock != nil {
			s.now = clock
		}
	}
}

// IDGenerator derives a deck ID from its slug.
type IDGenerator func(slug string) uuid.UUID

// WithIDGenerator overrides deck ID derivation.
func WithIDGenerator(generator IDGenerator) ServiceOption {
	return func(s *service) {
		if generator != nil {
			s.id = generator
		}
	}
}

// WithLogger attaches a logger to the service.
func WithLogger(logger interfaces.Logger) ServiceOption {
	return func(s *service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

type service struct {
	store  Store
	logger interfaces.Logger
	now    func() time.Time
	id     IDGenerator
}

// NewService constructs the deck service over a persistence store.
func NewService(store Store, opts ...ServiceOption) deckapi.Service {
	svc := &service{
		store:  store,
		logger: logging.NoOp(),
		now:    time.Now,
		id:     identity.DeckUUID,
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc
}

func (s *service) Create(ctx context.Context, req deckapi.CreateDeckRequest) (*deckapi.DeckWithContent, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	title := strings.TrimSpace(req.Title)
	description := strings.TrimSpace(req.Description)

	existing, err := s.store.List(ctx)
	if err != nil {
		return nil, err
	}
	existing = append(deckconfig.Decks(), existing...)

	base := strings.TrimSpace(req.Slug)
	if base != "" && !deckapi.IsValidSlug(base) {
		return nil, fmt.Errorf("%w: %q", deckapi.ErrSlugInvalid, base)
	}
	if base == "" {
		base = deckapi.GenerateSlug(title)
	}
	if base == "" {
		base = "deck"
	}
	slug := deckapi.EnsureUniqueSlug(base, existing)

	kinds := req.Templates
	if len(kinds) == 0 {
		kinds = DefaultTemplates
	}

	var slideSeq []slides.Slide
	if strings.TrimSpace(req.Markdown) != "" {
		slideSeq = markdown.Assemble(req.Markdown, kinds)
	} else {
		slideSeq = []slides.Slide{slides.NewTitle(1, slides.Title{
			Title:    title,
			Subtitle: description,
		})}
	}
	slideSeq = applyCover(slideSeq, req.ImageURL, title, description)

	if description == "" {
		description = defaultDescription
	}

	deck := &deckapi.Deck{
		ID:          s.id(slug),
		Slug:        slug,
		Title:       title,
		Description: description,
		CreatedAt:   s.now(),
		ImageURL:    req.ImageURL,
	}

	if err := s.store.Save(ctx, deck, slideSeq); err != nil {
		return nil, err
	}

	s.logger.Info("deck created", "slug", slug, "slides", len(slideSeq))
	return &deckapi.DeckWithContent{Deck: deck, Slides: slideSeq}, nil
}

func (s *service) Update(ctx context.Context, req deckapi.UpdateDeckRequest) (*deckapi.Deck, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if deckconfig.IsBuiltin(req.Slug) {
		return nil, deckapi.ErrBuiltinImmutable
	}

	deck, err := s.store.GetBySlug(ctx, req.Slug)
	if err != nil {
		return nil, err
	}

	slideSeq, err := s.store.GetContentBySlug(ctx, req.Slug)
	if err != nil {
		return nil, err
	}

	title := strings.TrimSpace(req.Title)
	description := strings.TrimSpace(req.Description)
	slideSeq = applyCover(slideSeq, req.ImageURL, title, description)

	deck.Title = title
	if description != "" {
		deck.Description = description
	}
	deck.ImageURL = req.ImageURL
	updatedAt := s.now()
	deck.UpdatedAt = &updatedAt

	if err := s.store.Save(ctx, deck, slideSeq); err != nil {
		return nil, err
	}

	s.logger.Info("deck updated", "slug", deck.Slug)
	return deck, nil
}

func (s *service) Delete(ctx context.Context, req deckapi.DeleteDeckRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	if deckconfig.IsBuiltin(req.Slug) {
		return deckapi.ErrBuiltinImmutable
	}

	if err := s.store.Delete(ctx, req.Slug); err != nil {
		return err
	}

	s.logger.Info("deck deleted", "slug", req.Slug)
	return nil
}

func (s *service) Get(ctx context.Context, slug string) (*deckapi.Deck, error) {
	if deck := deckconfig.Get(slug); deck != nil {
		return deck, nil
	}
	return s.store.GetBySlug(ctx, slug)
}

func (s *service) List(ctx context.Context) ([]*deckapi.Deck, error) {
	stored, err := s.store.List(ctx)
	if err != nil {
		return nil, err
	}
	return append(deckconfig.Decks(), stored...), nil
}

func (s *service) Content(ctx context.Context, slug string) ([]slides.Slide, error) {
	if deckconfig.IsBuiltin(slug) {
		return deckconfig.Content(slug), nil
	}
	return s.store.GetContentBySlug(ctx, slug)
}

// Export renders a deck and its slides as source code ready to be pasted
// into the built-in registry.
func (s *service) Export(ctx context.Context, slug string) (string, error) {
	deck, err := s.Get(ctx, slug)
	if err != nil {
		return "", err
	}
	slideSeq, err := s.Content(ctx, slug)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "// Register %q in deckconfig: add the deck record to\n", deck.Slug)
	b.WriteString("// builtinDecks and wire the slide sequence into Content.\n\n")
	b.WriteString(export.Render(deck, slideSeq))
	return b.String(), nil
}

// applyCover enforces the cover-slide rules tied to the deck thumbnail.
// When an image is set the first slide becomes a title slide carrying it;
// when the image is cleared any stale background on the first slide goes
// with it.
func applyCover(slideSeq []slides.Slide, imageURL, title, description string) []slides.Slide {
	if imageURL == "" {
		if len(slideSeq) > 0 && slideSeq[0].Kind == slides.KindTitle && slideSeq[0].Title != nil {
			cover := *slideSeq[0].Title
			if cover.BackgroundImage != "" {
				cover.BackgroundImage = ""
				slideSeq[0] = slides.NewTitle(slideSeq[0].ID, cover)
			}
		}
		return slideSeq
	}

	if len(slideSeq) == 0 {
		return []slides.Slide{slides.NewTitle(1, slides.Title{
			Title:           title,
			Subtitle:        description,
			BackgroundImage: imageURL,
		})}
	}

	first := slideSeq[0]
	cover := slides.Title{BackgroundImage: imageURL}
	switch {
	case first.Kind == slides.KindTitle && first.Title != nil:
		cover.Title = first.Title.Title
		cover.Subtitle = first.Title.Subtitle
	case first.Kind == slides.KindHeadline && first.Headline != nil:
		cover.Title = first.Headline.Headline
	case first.Kind == slides.KindSection && first.Section != nil:
		cover.Title = first.Section.Title
		cover.Subtitle = first.Section.Description
	default:
		cover.Title = firstTitleOf(first)
	}
	if cover.Title == "" {
		cover.Title = title
	}
	if cover.Subtitle == "" {
		cover.Subtitle = description
	}

	slideSeq[0] = slides.NewTitle(first.ID, cover)
	return slideSeq
}

func firstTitleOf(slide slides.Slide) string {
	switch slide.Kind {
	case slides.KindBulletList:
		if slide.BulletList != nil {
			return slide.BulletList.Title
		}
	case slides.KindImage:
		if slide.Image != nil {
			return slide.Image.Title
		}
	case slides.KindBlank:
		if slide.Blank != nil {
			return slide.Blank.Title
		}
	case slides.KindTwoColumn:
		if slide.TwoColumn != nil {
			return slide.TwoColumn.Title
		}
	case slides.KindThreeColumn:
		if slide.ThreeColumn != nil {
			return slide.ThreeColumn.Title
		}
	case slides.KindTimeline:
		if slide.Timeline != nil {
			return slide.Timeline.Title
		}
	case slides.KindIconList:
		if slide.IconList != nil {
			return slide.IconList.Title
		}
	}
	return ""
}
