package deckscmd

import (
	"context"
	"fmt"
	"os"

	command "github.com/goliatone/go-command"

	"github.com/goliatone/go-deck/decks"
	"github.com/goliatone/go-deck/internal/commands"
	"github.com/goliatone/go-deck/internal/logging"
	"github.com/goliatone/go-deck/internal/markdown"
	"github.com/goliatone/go-deck/pkg/interfaces"
	"github.com/goliatone/go-deck/slides"
)

const (
	importOperation = "decks.import"
	deleteOperation = "decks.delete"
	exportOperation = "decks.export"
)

var (
	_ command.Commander[ImportDeckCommand] = (*ImportDeckHandler)(nil)
	_ command.Commander[DeleteDeckCommand] = (*DeleteDeckHandler)(nil)
	_ command.Commander[ExportDeckCommand] = (*ExportDeckHandler)(nil)
)

// ImportDeckHandler orchestrates markdown deck imports through the shared
// command handler foundation.
type ImportDeckHandler struct {
	inner *commands.Handler[ImportDeckCommand]
}

// NewImportDeckHandler creates a handler bound to the supplied deck service.
func NewImportDeckHandler(service decks.Service, logger interfaces.Logger, opts ...commands.HandlerOption[ImportDeckCommand]) *ImportDeckHandler {
	baseLogger := logger
	if baseLogger == nil {
		baseLogger = logging.NoOp()
	}

	importer := markdown.NewImporter(service, baseLogger)

	exec := func(ctx context.Context, msg ImportDeckCommand) error {
		kinds := make([]slides.Kind, 0, len(msg.Templates))
		for _, name := range msg.Templates {
			kind, err := slides.ParseKind(name)
			if err != nil {
				return err
			}
			kinds = append(kinds, kind)
		}

		result, err := importer.ImportFile(ctx, msg.Path, markdown.ImportOptions{
			Title:       msg.Title,
			Description: msg.Description,
			Templates:   kinds,
			DryRun:      msg.DryRun,
		})
		if err != nil {
			return err
		}
		if result != nil {
			logging.WithFields(baseLogger, map[string]any{
				"slug":    result.Deck.Slug,
				"slides":  len(result.Slides),
				"dry_run": msg.DryRun,
			}).Info("deck.command.import.completed")
		}
		return nil
	}

	handlerOpts := []commands.HandlerOption[ImportDeckCommand]{
		commands.WithLogger[ImportDeckCommand](baseLogger),
		commands.WithOperation[ImportDeckCommand](importOperation),
		commands.WithMessageFields(func(msg ImportDeckCommand) map[string]any {
			return map[string]any{"path": msg.Path, "dry_run": msg.DryRun}
		}),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &ImportDeckHandler{inner: commands.NewHandler(exec, handlerOpts...)}
}

// Execute implements command.Commander.
func (h *ImportDeckHandler) Execute(ctx context.Context, msg ImportDeckCommand) error {
	return h.inner.Execute(ctx, msg)
}

// DeleteDeckHandler removes stored decks through the shared handler.
type DeleteDeckHandler struct {
	inner *commands.Handler[DeleteDeckCommand]
}

// NewDeleteDeckHandler creates a handler bound to the supplied deck service.
func NewDeleteDeckHandler(service decks.Service, logger interfaces.Logger, opts ...commands.HandlerOption[DeleteDeckCommand]) *DeleteDeckHandler {
	baseLogger := logger
	if baseLogger == nil {
		baseLogger = logging.NoOp()
	}

	exec := func(ctx context.Context, msg DeleteDeckCommand) error {
		return service.Delete(ctx, decks.DeleteDeckRequest{Slug: msg.Slug})
	}

	handlerOpts := []commands.HandlerOption[DeleteDeckCommand]{
		commands.WithLogger[DeleteDeckCommand](baseLogger),
		commands.WithOperation[DeleteDeckCommand](deleteOperation),
		commands.WithMessageFields(func(msg DeleteDeckCommand) map[string]any {
			return map[string]any{"slug": msg.Slug}
		}),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &DeleteDeckHandler{inner: commands.NewHandler(exec, handlerOpts...)}
}

// Execute implements command.Commander.
func (h *DeleteDeckHandler) Execute(ctx context.Context, msg DeleteDeckCommand) error {
	return h.inner.Execute(ctx, msg)
}

// ExportDeckHandler renders decks to registry source files.
type ExportDeckHandler struct {
	inner *commands.Handler[ExportDeckCommand]
}

// NewExportDeckHandler creates a handler bound to the supplied deck service.
func NewExportDeckHandler(service decks.Service, logger interfaces.Logger, opts ...commands.HandlerOption[ExportDeckCommand]) *ExportDeckHandler {
	baseLogger := logger
	if baseLogger == nil {
		baseLogger = logging.NoOp()
	}

	exec := func(ctx context.Context, msg ExportDeckCommand) error {
		code, err := service.Export(ctx, msg.Slug)
		if err != nil {
			return err
		}
		if err := os.WriteFile(msg.OutputPath, []byte(code), 0o644); err != nil {
			return fmt.Errorf("deckscmd: write export to %s: %w", msg.OutputPath, err)
		}
		return nil
	}

	handlerOpts := []commands.HandlerOption[ExportDeckCommand]{
		commands.WithLogger[ExportDeckCommand](baseLogger),
		commands.WithOperation[ExportDeckCommand](exportOperation),
		commands.WithMessageFields(func(msg ExportDeckCommand) map[string]any {
			return map[string]any{"slug": msg.Slug, "output": msg.OutputPath}
		}),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &ExportDeckHandler{inner: commands.NewHandler(exec, handlerOpts...)}
}

// Execute implements command.Commander.
func (h *ExportDeckHandler) Execute(ctx context.Context, msg ExportDeckCommand) error {
	return h.inner.Execute(ctx, msg)
}
