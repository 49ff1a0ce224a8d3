package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/goliatone/go-deck/pkg/storage"
)

type filePort struct {
	mu  sync.Mutex
	dir string
}

// NewFilePort constructs a port persisting each key as a file inside dir.
// Keys are percent-encoded into file names, so any key is representable.
// Writes go through a temp file plus rename to stay crash-safe per key.
func NewFilePort(dir string) (storage.Port, error) {
	if strings.TrimSpace(dir) == "" {
		return nil, errors.New("storage: file port requires a directory")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: create dir %s: %w", dir, err)
	}
	return &filePort{dir: dir}, nil
}

func (f *filePort) Get(_ context.Context, key string) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	data, err := os.ReadFile(f.path(key))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, storage.ErrKeyNotFound
		}
		return nil, fmt.Errorf("storage: read key %s: %w", key, err)
	}
	return data, nil
}

func (f *filePort) Set(ctx context.Context, key string, value []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.write(key, value)
}

func (f *filePort) Delete(_ context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := os.Remove(f.path(key)); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("storage: delete key %s: %w", key, err)
	}
	return nil
}

func (f *filePort) Keys(_ context.Context, prefix string) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	entries, err := os.ReadDir(f.dir)
	if err != nil {
		return nil, fmt.Errorf("storage: list keys: %w", err)
	}

	keys := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || strings.HasSuffix(entry.Name(), ".tmp") {
			continue
		}
		key, err := url.PathUnescape(entry.Name())
		if err != nil {
			continue
		}
		if strings.HasPrefix(key, prefix) {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
	return keys, nil
}

// Apply stages every write to a temp file before any rename, so a failure
// during staging leaves the directory untouched. Renames themselves are
// atomic per key on POSIX filesystems.
func (f *filePort) Apply(_ context.Context, ops []storage.Op) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	type staged struct {
		tmp    string
		target string
	}

	var writes []staged
	cleanup := func() {
		for _, w := range writes {
			os.Remove(w.tmp)
		}
	}

	for _, op := range ops {
		if op.Delete {
			continue
		}
		target := f.path(op.Key)
		tmp := target + ".tmp"
		if err := os.WriteFile(tmp, op.Value, 0o644); err != nil {
			cleanup()
			return fmt.Errorf("storage: stage key %s: %w", op.Key, err)
		}
		writes = append(writes, staged{tmp: tmp, target: target})
	}

	for _, w := range writes {
		if err := os.Rename(w.tmp, w.target); err != nil {
			cleanup()
			return fmt.Errorf("storage: commit %s: %w", w.target, err)
		}
	}

	for _, op := range ops {
		if !op.Delete {
			continue
		}
		if err := os.Remove(f.path(op.Key)); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("storage: delete key %s: %w", op.Key, err)
		}
	}
	return nil
}

func (f *filePort) write(key string, value []byte) error {
	target := f.path(key)
	tmp := target + ".tmp"
	if err := os.WriteFile(tmp, value, 0o644); err != nil {
		return fmt.Errorf("storage: write key %s: %w", key, err)
	}
	if err := os.Rename(tmp, target); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("storage: commit key %s: %w", key, err)
	}
	return nil
}

func (f *filePort) path(key string) string {
	return filepath.Join(f.dir, url.PathEscape(key))
}
