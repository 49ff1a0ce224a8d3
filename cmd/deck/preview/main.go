package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/goliatone/go-deck/cmd/deck/internal/bootstrap"
	"github.com/goliatone/go-deck/internal/markdown"
)

var moduleBuilder = bootstrap.BuildModule

func main() {
	if err := runPreview(os.Args[1:], os.Stdout); err != nil {
		log.Fatalf("deck preview: %v", err)
	}
}

func runPreview(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("deck-preview", flag.ExitOnError)
	file := fs.String("file", "", "Markdown file to preview")
	renderHTML := fs.Bool("render-html", true, "Render each section into HTML")
	showSlides := fs.Bool("slides", true, "Show the slide kinds the assembler would produce")
	verbose := fs.Bool("verbose", false, "Enable debug logging")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if *file == "" {
		return fmt.Errorf("--file is required")
	}

	source, err := os.ReadFile(*file)
	if err != nil {
		return fmt.Errorf("read markdown file: %w", err)
	}

	module, err := moduleBuilder(context.Background(), bootstrap.Options{Verbose: *verbose})
	if err != nil {
		return fmt.Errorf("bootstrap module: %w", err)
	}

	meta, body, err := markdown.ParseFrontMatter(source)
	if err != nil {
		return fmt.Errorf("parse frontmatter: %w", err)
	}

	fmt.Fprintf(out, "File: %s\n\n", *file)

	if fields := frontmatterFields(meta); len(fields) > 0 {
		encoded, err := json.MarshalIndent(fields, "", "  ")
		if err == nil {
			fmt.Fprintf(out, "Frontmatter:\n%s\n\n", encoded)
		}
	}

	if *showSlides {
		assembled := markdown.AssembleAuto(string(body))
		fmt.Fprintln(out, "Slides:")
		for _, slide := range assembled {
			fmt.Fprintf(out, "  %2d. %s\n", slide.ID, slide.Kind)
		}
		fmt.Fprintln(out)
	}

	if *renderHTML {
		html, err := module.Module.Parser().Parse(body)
		if err != nil {
			return fmt.Errorf("render markdown: %w", err)
		}
		fmt.Fprintf(out, "Rendered HTML:\n%s\n", html)
	} else {
		fmt.Fprintf(out, "Markdown Body:\n%s\n", body)
	}
	return nil
}

func frontmatterFields(meta markdown.FrontMatter) map[string]any {
	fields := map[string]any{}
	if meta.Title != "" {
		fields["title"] = meta.Title
	}
	if meta.Description != "" {
		fields["description"] = meta.Description
	}
	if meta.Slug != "" {
		fields["slug"] = meta.Slug
	}
	if len(meta.Templates) > 0 {
		fields["templates"] = meta.Templates
	}
	if meta.ImageURL != "" {
		fields["image_url"] = meta.ImageURL
	}
	for key, value := range meta.Custom {
		fields[key] = value
	}
	return fields
}
