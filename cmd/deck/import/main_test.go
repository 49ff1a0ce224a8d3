package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/goliatone/go-deck/cmd/deck/internal/bootstrap"
	"github.com/goliatone/go-deck/decks"
	"github.com/goliatone/go-deck/internal/logging"
	"github.com/goliatone/go-deck/slides"
)

type stubDeckService struct {
	createCalls int
	lastRequest decks.CreateDeckRequest
}

func (s *stubDeckService) Create(_ context.Context, req decks.CreateDeckRequest) (*decks.DeckWithContent, error) {
	s.createCalls++
	s.lastRequest = req
	return &decks.DeckWithContent{Deck: &decks.Deck{Slug: "stub", Title: req.Title}}, nil
}

func (s *stubDeckService) Update(context.Context, decks.UpdateDeckRequest) (*decks.Deck, error) {
	return nil, nil
}

func (s *stubDeckService) Delete(context.Context, decks.DeleteDeckRequest) error {
	return nil
}

func (s *stubDeckService) Get(context.Context, string) (*decks.Deck, error) {
	return nil, nil
}

func (s *stubDeckService) List(context.Context) ([]*decks.Deck, error) {
	return nil, nil
}

func (s *stubDeckService) Content(context.Context, string) ([]slides.Slide, error) {
	return nil, nil
}

func (s *stubDeckService) Export(context.Context, string) (string, error) {
	return "", nil
}

func TestRunImportUsesCommandHandler(t *testing.T) {
	original := moduleBuilder
	defer func() { moduleBuilder = original }()

	svc := &stubDeckService{}
	moduleBuilder = func(context.Context, bootstrap.Options) (*bootstrap.Module, error) {
		return &bootstrap.Module{
			Service: svc,
			Logger:  logging.NoOp(),
		}, nil
	}

	path := filepath.Join(t.TempDir(), "roadmap.md")
	if err := os.WriteFile(path, []byte("# Roadmap\nWhere we are headed\n\n---\n\n- milestones"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	if err := runImport([]string{
		"-file", path,
		"-templates", "title,bulletList",
	}); err != nil {
		t.Fatalf("runImport returned error: %v", err)
	}
	if svc.createCalls != 1 {
		t.Fatalf("expected create to be called once, got %d", svc.createCalls)
	}
	if svc.lastRequest.Title != "Roadmap" {
		t.Fatalf("expected title Roadmap, got %s", svc.lastRequest.Title)
	}
	if len(svc.lastRequest.Templates) != 2 {
		t.Fatalf("expected 2 templates, got %d", len(svc.lastRequest.Templates))
	}
}

func TestRunImportRequiresFile(t *testing.T) {
	original := moduleBuilder
	defer func() { moduleBuilder = original }()

	moduleBuilder = func(context.Context, bootstrap.Options) (*bootstrap.Module, error) {
		return &bootstrap.Module{
			Service: &stubDeckService{},
			Logger:  logging.NoOp(),
		}, nil
	}

	if err := runImport(nil); err == nil {
		t.Fatal("expected error when no file is supplied")
	}
}
