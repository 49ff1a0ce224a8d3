package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/goliatone/go-deck/cmd/deck/internal/bootstrap"
	deckscmd "github.com/goliatone/go-deck/internal/commands/decks"
)

var moduleBuilder = bootstrap.BuildModule

func main() {
	if err := runExport(os.Args[1:], os.Stdout); err != nil {
		log.Fatalf("deck export: %v", err)
	}
}

func runExport(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("deck-export", flag.ExitOnError)
	slug := fs.String("slug", "", "Slug of the deck to export")
	output := fs.String("output", "", "File to write the generated Go source to (stdout when empty)")
	storage := fs.String("storage", "", "Storage provider: memory, file, or sqlite")
	storageDir := fs.String("storage-dir", "", "Directory for the file storage provider")
	storageDSN := fs.String("storage-dsn", "", "DSN for the sqlite storage provider")
	commandTimeout := fs.Duration("command-timeout", 0, "Deadline for the export command (0 keeps the default)")
	verbose := fs.Bool("verbose", false, "Enable debug logging")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if *slug == "" {
		return fmt.Errorf("--slug is required")
	}

	ctx := context.Background()

	module, err := moduleBuilder(ctx, bootstrap.Options{
		StorageProvider: *storage,
		StorageDir:      *storageDir,
		StorageDSN:      *storageDSN,
		CommandTimeout:  *commandTimeout,
		Verbose:         *verbose,
	})
	if err != nil {
		return fmt.Errorf("bootstrap module: %w", err)
	}

	if *output == "" {
		code, err := module.Service.Export(ctx, *slug)
		if err != nil {
			return fmt.Errorf("export deck: %w", err)
		}
		_, err = io.WriteString(out, code)
		return err
	}

	handler := deckscmd.NewExportDeckHandler(module.Service, module.Logger,
		bootstrap.HandlerOptions[deckscmd.ExportDeckCommand](module)...)
	cmd := deckscmd.ExportDeckCommand{
		Slug:       *slug,
		OutputPath: *output,
	}
	if err := handler.Execute(ctx, cmd); err != nil {
		return fmt.Errorf("execute export command: %w", err)
	}
	fmt.Fprintf(out, "deck %q exported to %s\n", *slug, *output)
	return nil
}
