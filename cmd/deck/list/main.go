package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"text/tabwriter"

	"github.com/goliatone/go-deck/cmd/deck/internal/bootstrap"
)

var moduleBuilder = bootstrap.BuildModule

func main() {
	if err := runList(os.Args[1:], os.Stdout); err != nil {
		log.Fatalf("deck list: %v", err)
	}
}

func runList(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("deck-list", flag.ExitOnError)
	storage := fs.String("storage", "", "Storage provider: memory, file, or sqlite")
	storageDir := fs.String("storage-dir", "", "Directory for the file storage provider")
	storageDSN := fs.String("storage-dsn", "", "DSN for the sqlite storage provider")
	verbose := fs.Bool("verbose", false, "Enable debug logging")

	if err := fs.Parse(args); err != nil {
		return err
	}

	ctx := context.Background()

	module, err := moduleBuilder(ctx, bootstrap.Options{
		StorageProvider: *storage,
		StorageDir:      *storageDir,
		StorageDSN:      *storageDSN,
		Verbose:         *verbose,
	})
	if err != nil {
		return fmt.Errorf("bootstrap module: %w", err)
	}

	records, err := module.Service.List(ctx)
	if err != nil {
		return fmt.Errorf("list decks: %w", err)
	}

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "SLUG\tTITLE\tBUILTIN\tUPDATED")
	for _, record := range records {
		builtin := ""
		if record.Builtin {
			builtin = "yes"
		}
		updated := record.CreatedAt
		if record.UpdatedAt != nil {
			updated = *record.UpdatedAt
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", record.Slug, record.Title, builtin, updated.Format("2006-01-02"))
	}
	return w.Flush()
}
