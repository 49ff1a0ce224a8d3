package deck

import (
	"context"
	"fmt"
	"strings"

	"github.com/goliatone/go-deck/decks"
	deckservice "github.com/goliatone/go-deck/internal/decks"
	"github.com/goliatone/go-deck/internal/deckstore"
	"github.com/goliatone/go-deck/internal/logging"
	"github.com/goliatone/go-deck/internal/logging/gologger"
	"github.com/goliatone/go-deck/internal/markdown"
	internalstorage "github.com/goliatone/go-deck/internal/storage"
	"github.com/goliatone/go-deck/pkg/interfaces"
	"github.com/goliatone/go-deck/pkg/storage"
)

// DeckService exports the deck service contract for consumers of the deck
// package.
type DeckService = decks.Service

// Module is the top level deck runtime façade. It owns the storage port, the
// deck store, the deck service, and the markdown tooling built from a Config.
type Module struct {
	config   Config
	provider interfaces.LoggerProvider
	port     storage.Port
	store    *deckstore.Store
	service  decks.Service
	parser   *markdown.GoldmarkParser
	importer *markdown.Importer
}

// Option overrides module wiring before services are constructed.
type Option func(*Module)

// WithLoggerProvider injects a logger provider, bypassing the provider the
// logging config would build.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(m *Module) {
		if provider != nil {
			m.provider = provider
		}
	}
}

// WithStoragePort injects a storage port, bypassing the backend the storage
// config selects.
func WithStoragePort(port storage.Port) Option {
	return func(m *Module) {
		if port != nil {
			m.port = port
		}
	}
}

// New constructs a deck module from the provided configuration.
func New(ctx context.Context, cfg Config, opts ...Option) (*Module, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	m := &Module{config: cfg}
	for _, opt := range opts {
		opt(m)
	}

	if m.provider == nil && cfg.Features.Logger && strings.EqualFold(strings.TrimSpace(cfg.Logging.Provider), "gologger") {
		provider, err := gologger.NewProvider(gologger.Config{
			Level:     cfg.Logging.Level,
			Format:    cfg.Logging.Format,
			AddSource: cfg.Logging.AddSource,
			Focus:     cfg.Logging.Focus,
		})
		if err != nil {
			return nil, err
		}
		m.provider = provider
	}

	if m.port == nil {
		port, err := buildPort(ctx, cfg.Storage)
		if err != nil {
			return nil, err
		}
		m.port = port
	}

	store, err := deckstore.New(m.port, deckstore.WithLogger(logging.StoreLogger(m.provider)))
	if err != nil {
		return nil, err
	}
	m.store = store

	m.service = deckservice.NewService(store,
		deckservice.WithLogger(logging.DecksLogger(m.provider)),
	)

	m.parser = markdown.NewGoldmarkParser(markdown.ParseOptions{
		Extensions: cfg.Markdown.Parser.Extensions,
		HardWraps:  cfg.Markdown.Parser.HardWraps,
		SafeMode:   cfg.Markdown.Parser.SafeMode,
	})
	m.importer = markdown.NewImporter(m.service, logging.MarkdownLogger(m.provider))

	return m, nil
}

// Decks returns the configured deck service.
func (m *Module) Decks() DeckService {
	return m.service
}

// Store exposes the deck store for advanced integrations.
func (m *Module) Store() *deckstore.Store {
	return m.store
}

// Parser returns the markdown preview renderer.
func (m *Module) Parser() *markdown.GoldmarkParser {
	return m.parser
}

// Importer returns the markdown deck importer.
func (m *Module) Importer() *markdown.Importer {
	return m.importer
}

// LoggerProvider exposes the configured logger provider; nil when logging is
// disabled.
func (m *Module) LoggerProvider() interfaces.LoggerProvider {
	if m == nil {
		return nil
	}
	return m.provider
}

func buildPort(ctx context.Context, cfg StorageConfig) (storage.Port, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Provider)) {
	case "", "memory":
		return internalstorage.NewMemoryPort(), nil
	case "file":
		return internalstorage.NewFilePort(cfg.Dir)
	case "sqlite":
		return internalstorage.OpenSQLite(ctx, cfg.DSN)
	default:
		return nil, fmt.Errorf("%w: %s", ErrStorageProviderUnknown, cfg.Provider)
	}
}
