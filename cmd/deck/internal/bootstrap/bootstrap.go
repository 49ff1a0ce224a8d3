package bootstrap

import (
	"context"
	"fmt"
	"strings"
	"time"

	command "github.com/goliatone/go-command"

	deck "github.com/goliatone/go-deck"
	"github.com/goliatone/go-deck/decks"
	"github.com/goliatone/go-deck/internal/commands"
	"github.com/goliatone/go-deck/pkg/interfaces"
)

// Options captures configuration shared by the deck CLI entry points.
type Options struct {
	StorageProvider string
	StorageDir      string
	StorageDSN      string
	CommandTimeout  time.Duration
	LogLevel        string
	Verbose         bool
	LoggerProvider  interfaces.LoggerProvider
}

// Module wraps the deck module and the configured service/logger.
type Module struct {
	Module         *deck.Module
	Service        decks.Service
	Logger         interfaces.Logger
	CommandTimeout time.Duration
}

// BuildModule constructs a deck module configured from CLI options.
func BuildModule(ctx context.Context, opts Options) (*Module, error) {
	cfg := deck.DefaultConfig()

	if provider := strings.TrimSpace(opts.StorageProvider); provider != "" {
		cfg.Storage.Provider = provider
	}
	cfg.Storage.Dir = strings.TrimSpace(opts.StorageDir)
	cfg.Storage.DSN = strings.TrimSpace(opts.StorageDSN)
	cfg.Commands.Timeout = opts.CommandTimeout

	if opts.Verbose {
		cfg.Features.Logger = true
		cfg.Logging.Provider = "gologger"
		cfg.Logging.Level = "debug"
	}
	if level := strings.TrimSpace(opts.LogLevel); level != "" {
		cfg.Features.Logger = true
		cfg.Logging.Provider = "gologger"
		cfg.Logging.Level = level
	}

	moduleOpts := []deck.Option{}
	if opts.LoggerProvider != nil {
		moduleOpts = append(moduleOpts, deck.WithLoggerProvider(opts.LoggerProvider))
	}

	module, err := deck.New(ctx, cfg, moduleOpts...)
	if err != nil {
		return nil, fmt.Errorf("initialise deck module: %w", err)
	}

	service := module.Decks()
	if service == nil {
		return nil, fmt.Errorf("deck service not configured")
	}

	logger := commands.CommandLogger(module.LoggerProvider(), "decks")

	return &Module{
		Module:         module,
		Service:        service,
		Logger:         logger,
		CommandTimeout: cfg.Commands.Timeout,
	}, nil
}

// HandlerOptions derives shared handler options from the bootstrapped module.
// A zero CommandTimeout keeps the handler default.
func HandlerOptions[T command.Message](m *Module) []commands.HandlerOption[T] {
	if m == nil || m.CommandTimeout <= 0 {
		return nil
	}
	return []commands.HandlerOption[T]{
		commands.WithTimeout[T](m.CommandTimeout),
	}
}

// SplitTemplates parses a comma separated template list into a trimmed slice.
func SplitTemplates(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	templates := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			templates = append(templates, trimmed)
		}
	}
	return templates
}
