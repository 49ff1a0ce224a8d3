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
	if err := runDelete(os.Args[1:]); err != nil {
		log.Fatalf("deck delete: %v", err)
	}
}

func runDelete(args []string) error {
	fs := flag.NewFlagSet("deck-delete", flag.ExitOnError)
	slug := fs.String("slug", "", "Slug of the deck to delete")
	storage := fs.String("storage", "", "Storage provider: memory, file, or sqlite")
	storageDir := fs.String("storage-dir", "", "Directory for the file storage provider")
	storageDSN := fs.String("storage-dsn", "", "DSN for the sqlite storage provider")
	commandTimeout := fs.Duration("command-timeout", 0, "Deadline for the delete command (0 keeps the default)")
	verbose := fs.Bool("verbose", false, "Enable debug logging")

	if err := fs.Parse(args); err != nil {
		return err
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

	handler := deckscmd.NewDeleteDeckHandler(module.Service, module.Logger,
		bootstrap.HandlerOptions[deckscmd.DeleteDeckCommand](module)...)
	if err := handler.Execute(ctx, deckscmd.DeleteDeckCommand{Slug: *slug}); err != nil {
		return fmt.Errorf("execute delete command: %w", err)
	}
	fmt.Fprintf(os.Stdout, "deck %q deleted\n", *slug)
	return nil
}
