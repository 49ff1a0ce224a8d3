package deckstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/goliatone/go-deck/decks"
	"github.com/goliatone/go-deck/internal/logging"
	"github.com/goliatone/go-deck/pkg/interfaces"
	"github.com/goliatone/go-deck/pkg/storage"
	"github.com/goliatone/go-deck/slides"
)

const (
	// DecksKey holds the JSON array of deck metadata records.
	DecksKey = "presentation-decks"
	// ContentKeyPrefix namespaces per-deck slide payloads.
	ContentKeyPrefix = "presentation-deck-content-"
)

// ContentKey returns the storage key for a deck's slide payload.
func ContentKey(slug string) string {
	return ContentKeyPrefix + slug
}

// Store persists deck metadata and slide content through a storage port.
// Metadata lives under a single key as a JSON array; each deck's slides live
// under their own content key. Save and Delete touch both keys in one
// atomic batch so the two never drift apart.
type Store struct {
	port   storage.Port
	logger interfaces.Logger
}

// Option configures a store instance.
type Option func(*Store)

// WithLogger attaches a logger to the store.
func WithLogger(logger interfaces.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// New constructs a deck store over the supplied port.
func New(port storage.Port, opts ...Option) (*Store, error) {
	if port == nil {
		return nil, errors.New("deckstore: storage port is required")
	}

	store := &Store{
		port:   port,
		logger: logging.NoOp(),
	}
	for _, opt := range opts {
		opt(store)
	}
	return store, nil
}

// Save upserts the deck record and its slide content in one atomic batch.
func (s *Store) Save(ctx context.Context, deck *decks.Deck, slideSeq []slides.Slide) error {
	if deck == nil {
		return errors.New("deckstore: deck is required")
	}
	if deck.Slug == "" {
		return decks.ErrSlugRequired
	}

	records, err := s.loadDecks(ctx)
	if err != nil {
		return err
	}

	replaced := false
	for i, record := range records {
		if record.Slug == deck.Slug {
			records[i] = deck.Clone()
			replaced = true
			break
		}
	}
	if !replaced {
		records = append(records, deck.Clone())
	}

	deckPayload, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("deckstore: encode deck list: %w", err)
	}
	contentPayload, err := json.Marshal(normalizeSlides(slideSeq))
	if err != nil {
		return fmt.Errorf("deckstore: encode slides for %s: %w", deck.Slug, err)
	}

	ops := []storage.Op{
		storage.SetOp(DecksKey, deckPayload),
		storage.SetOp(ContentKey(deck.Slug), contentPayload),
	}
	if err := s.port.Apply(ctx, ops); err != nil {
		return fmt.Errorf("deckstore: persist deck %s: %w", deck.Slug, err)
	}

	s.logger.Debug("deck saved", "slug", deck.Slug, "slides", len(slideSeq))
	return nil
}

// List returns every stored deck record. A missing or unreadable deck list
// yields an empty result rather than an error; corruption is logged and the
// store behaves as if empty.
func (s *Store) List(ctx context.Context) ([]*decks.Deck, error) {
	records, err := s.loadDecks(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]*decks.Deck, 0, len(records))
	for _, record := range records {
		out = append(out, record.Clone())
	}
	return out, nil
}

// GetBySlug returns the stored deck with the given slug.
func (s *Store) GetBySlug(ctx context.Context, slug string) (*decks.Deck, error) {
	records, err := s.loadDecks(ctx)
	if err != nil {
		return nil, err
	}

	for _, record := range records {
		if record.Slug == slug {
			return record.Clone(), nil
		}
	}
	return nil, &decks.NotFoundError{Resource: "deck", Key: slug}
}

// GetContentBySlug returns the slide sequence stored for a deck. Absence is
// not an error: a deck without content simply yields nil. Payloads that fail
// schema validation or decoding are treated as absent and logged.
func (s *Store) GetContentBySlug(ctx context.Context, slug string) ([]slides.Slide, error) {
	data, err := s.port.Get(ctx, ContentKey(slug))
	if err != nil {
		if errors.Is(err, storage.ErrKeyNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("deckstore: read content for %s: %w", slug, err)
	}

	if err := validateSlidePayload(data); err != nil {
		s.logger.Warn("invalid slide payload, treating as empty", "slug", slug, "error", err)
		return nil, nil
	}

	var slideSeq []slides.Slide
	if err := json.Unmarshal(data, &slideSeq); err != nil {
		s.logger.Warn("corrupt slide payload, treating as empty", "slug", slug, "error", err)
		return nil, nil
	}
	return slideSeq, nil
}

// Delete removes the deck record and its content key. Deleting an unknown
// slug is a no-op; the content key is removed eagerly either way.
func (s *Store) Delete(ctx context.Context, slug string) error {
	records, err := s.loadDecks(ctx)
	if err != nil {
		return err
	}

	remaining := make([]*decks.Deck, 0, len(records))
	for _, record := range records {
		if record.Slug != slug {
			remaining = append(remaining, record)
		}
	}

	deckPayload, err := json.Marshal(remaining)
	if err != nil {
		return fmt.Errorf("deckstore: encode deck list: %w", err)
	}

	ops := []storage.Op{
		storage.SetOp(DecksKey, deckPayload),
		storage.DeleteOp(ContentKey(slug)),
	}
	if err := s.port.Apply(ctx, ops); err != nil {
		return fmt.Errorf("deckstore: delete deck %s: %w", slug, err)
	}

	s.logger.Debug("deck deleted", "slug", slug, "removed", len(records) != len(remaining))
	return nil
}

func (s *Store) loadDecks(ctx context.Context) ([]*decks.Deck, error) {
	data, err := s.port.Get(ctx, DecksKey)
	if err != nil {
		if errors.Is(err, storage.ErrKeyNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("deckstore: read deck list: %w", err)
	}

	var records []*decks.Deck
	if err := json.Unmarshal(data, &records); err != nil {
		s.logger.Warn("corrupt deck list, treating as empty", "error", err)
		return nil, nil
	}

	filtered := records[:0]
	for _, record := range records {
		if record != nil && record.Slug != "" {
			filtered = append(filtered, record)
		}
	}
	return filtered, nil
}

// normalizeSlides keeps stored payloads as flat arrays, never null.
func normalizeSlides(slideSeq []slides.Slide) []slides.Slide {
	if slideSeq == nil {
		return []slides.Slide{}
	}
	return slideSeq
}
