package deck_test

import (
	"errors"
	"testing"

	deck "github.com/goliatone/go-deck"
)

func TestDefaultConfig(t *testing.T) {
	cfg := deck.DefaultConfig()

	if !cfg.Enabled {
		t.Error("expected module to be enabled by default")
	}
	if cfg.Storage.Provider != "memory" {
		t.Errorf("Storage.Provider = %q, want %q", cfg.Storage.Provider, "memory")
	}
	if len(cfg.Markdown.Parser.Extensions) == 0 {
		t.Error("expected default markdown extensions")
	}
	if cfg.Logging.Provider != "console" {
		t.Errorf("Logging.Provider = %q, want %q", cfg.Logging.Provider, "console")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() on defaults = %v", err)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*deck.Config)
		wantErr error
	}{
		{
			name:    "unknown storage provider",
			mutate:  func(cfg *deck.Config) { cfg.Storage.Provider = "redis" },
			wantErr: deck.ErrStorageProviderUnknown,
		},
		{
			name:    "file storage needs a directory",
			mutate:  func(cfg *deck.Config) { cfg.Storage.Provider = "file" },
			wantErr: deck.ErrStorageDirRequired,
		},
		{
			name:    "sqlite storage needs a dsn",
			mutate:  func(cfg *deck.Config) { cfg.Storage.Provider = "sqlite" },
			wantErr: deck.ErrStorageDSNRequired,
		},
		{
			name:    "negative command timeout",
			mutate:  func(cfg *deck.Config) { cfg.Commands.Timeout = -1 },
			wantErr: deck.ErrCommandTimeoutInvalid,
		},
		{
			name: "logger feature needs a known provider",
			mutate: func(cfg *deck.Config) {
				cfg.Features.Logger = true
				cfg.Logging.Provider = "syslog"
			},
			wantErr: deck.ErrLoggingProviderUnknown,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := deck.DefaultConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, tc.wantErr) {
				t.Fatalf("Validate() = %v, want %v", err, tc.wantErr)
			}
		})
	}
}
