package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/goliatone/go-deck/cmd/deck/internal/bootstrap"
	deckscmd "github.com/goliatone/go-deck/internal/commands/decks"
)

var moduleBuilder = bootstrap.BuildModule

func main() {
	if err := runImport(os.Args[1:]); err != nil {
		log.Fatalf("deck import: %v", err)
	}
}

func runImport(args []string) error {
	fs := flag.NewFlagSet("deck-import", flag.ExitOnError)
	file := fs.String("file", "", "Markdown file to import as a deck")
	title := fs.String("title", "", "Deck title (defaults to the document title)")
	description := fs.String("description", "", "Deck description (defaults to the first paragraph)")
	templates := fs.String("templates", "", "Comma separated slide templates applied per section")
	dryRun := fs.Bool("dry-run", false, "Assemble the deck without persisting it")
	storage := fs.String("storage", "", "Storage provider: memory, file, or sqlite")
	storageDir := fs.String("storage-dir", "", "Directory for the file storage provider")
	storageDSN := fs.String("storage-dsn", "", "DSN for the sqlite storage provider")
	commandTimeout := fs.Duration("command-timeout", 0, "Deadline for the import command (0 keeps the default)")
	verbose := fs.Bool("verbose", false, "Enable debug logging")

	if err := fs.Parse(args); err != nil {
		return err
	}

	module, err := moduleBuilder(context.Background(), bootstrap.Options{
		StorageProvider: *storage,
		StorageDir:      *storageDir,
		StorageDSN:      *storageDSN,
		CommandTimeout:  *commandTimeout,
		Verbose:         *verbose,
	})
	if err != nil {
		return fmt.Errorf("bootstrap module: %w", err)
	}

	handler := deckscmd.NewImportDeckHandler(module.Service, module.Logger,
		bootstrap.HandlerOptions[deckscmd.ImportDeckCommand](module)...)
	cmd := deckscmd.ImportDeckCommand{
		Path:        *file,
		Title:       *title,
		Description: *description,
		Templates:   bootstrap.SplitTemplates(*templates),
		DryRun:      *dryRun,
	}
	if err := handler.Execute(context.Background(), cmd); err != nil {
		return fmt.Errorf("execute import command: %w", err)
	}

	if *dryRun {
		fmt.Fprintln(os.Stdout, "deck import dry run completed")
		return nil
	}
	fmt.Fprintln(os.Stdout, "deck imported successfully")
	return nil
}
