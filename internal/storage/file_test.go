package storage

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/goliatone/go-deck/pkg/storage"
)

func newTestFilePort(t *testing.T) storage.Port {
	t.Helper()
	port, err := NewFilePort(t.TempDir())
	if err != nil {
		t.Fatalf("NewFilePort() error = %v", err)
	}
	return port
}

func TestFilePortRoundTrip(t *testing.T) {
	ctx := context.Background()
	port := newTestFilePort(t)

	if err := port.Set(ctx, "presentation-decks", []byte(`[]`)); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	got, err := port.Get(ctx, "presentation-decks")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if string(got) != `[]` {
		t.Errorf("Get() = %q, want %q", got, `[]`)
	}

	if err := port.Delete(ctx, "presentation-decks"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, err := port.Get(ctx, "presentation-decks"); !errors.Is(err, storage.ErrKeyNotFound) {
		t.Errorf("Get() after delete error = %v, want ErrKeyNotFound", err)
	}
}

func TestFilePortGetMissing(t *testing.T) {
	port := newTestFilePort(t)
	if _, err := port.Get(context.Background(), "absent"); !errors.Is(err, storage.ErrKeyNotFound) {
		t.Errorf("Get() error = %v, want ErrKeyNotFound", err)
	}
}

func TestFilePortDeleteMissingIsNoop(t *testing.T) {
	port := newTestFilePort(t)
	if err := port.Delete(context.Background(), "absent"); err != nil {
		t.Errorf("Delete() error = %v, want nil", err)
	}
}

func TestFilePortEscapesKeys(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	port, err := NewFilePort(dir)
	if err != nil {
		t.Fatalf("NewFilePort() error = %v", err)
	}

	key := "presentation-deck-content/with slash"
	if err := port.Set(ctx, key, []byte("v")); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir() error = %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("entries = %d, want 1", len(entries))
	}
	if name := entries[0].Name(); filepath.Dir(filepath.Join(dir, name)) != dir {
		t.Errorf("key escaped outside storage dir: %q", name)
	}

	keys, err := port.Keys(ctx, "")
	if err != nil {
		t.Fatalf("Keys() error = %v", err)
	}
	if !reflect.DeepEqual(keys, []string{key}) {
		t.Errorf("Keys() = %v, want [%q]", keys, key)
	}
}

func TestFilePortKeysPrefix(t *testing.T) {
	ctx := context.Background()
	port := newTestFilePort(t)

	for _, key := range []string{
		"presentation-deck-content-alpha",
		"presentation-deck-content-beta",
		"presentation-decks",
	} {
		if err := port.Set(ctx, key, []byte("v")); err != nil {
			t.Fatalf("Set(%q) error = %v", key, err)
		}
	}

	keys, err := port.Keys(ctx, "presentation-deck-content-")
	if err != nil {
		t.Fatalf("Keys() error = %v", err)
	}
	want := []string{"presentation-deck-content-alpha", "presentation-deck-content-beta"}
	if !reflect.DeepEqual(keys, want) {
		t.Errorf("Keys() = %v, want %v", keys, want)
	}
}

func TestFilePortApply(t *testing.T) {
	ctx := context.Background()
	port := newTestFilePort(t)

	if err := port.Set(ctx, "stale", []byte("old")); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	err := port.Apply(ctx, []storage.Op{
		storage.SetOp("decks", []byte("[1]")),
		storage.SetOp("content", []byte("[2]")),
		storage.DeleteOp("stale"),
	})
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}

	for key, want := range map[string]string{"decks": "[1]", "content": "[2]"} {
		got, err := port.Get(ctx, key)
		if err != nil {
			t.Fatalf("Get(%q) error = %v", key, err)
		}
		if string(got) != want {
			t.Errorf("Get(%q) = %q, want %q", key, got, want)
		}
	}
	if _, err := port.Get(ctx, "stale"); !errors.Is(err, storage.ErrKeyNotFound) {
		t.Errorf("Get(stale) error = %v, want ErrKeyNotFound", err)
	}
}

func TestFilePortApplyLeavesNoTempFiles(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	port, err := NewFilePort(dir)
	if err != nil {
		t.Fatalf("NewFilePort() error = %v", err)
	}

	err = port.Apply(ctx, []storage.Op{
		storage.SetOp("a", []byte("1")),
		storage.SetOp("b", []byte("2")),
	})
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir() error = %v", err)
	}
	for _, entry := range entries {
		if filepath.Ext(entry.Name()) == ".tmp" {
			t.Errorf("leftover temp file: %s", entry.Name())
		}
	}
}
