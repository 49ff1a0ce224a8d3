package runtimeconfig

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var ErrStorageProviderUnknown = errors.New("deck config: storage provider is invalid")
var ErrStorageDirRequired = errors.New("deck config: storage directory is required for the file provider")
var ErrStorageDSNRequired = errors.New("deck config: storage dsn is required for the sqlite provider")
var ErrLoggingProviderRequired = errors.New("deck config: logging provider is required when logging feature is enabled")
var ErrLoggingProviderUnknown = errors.New("deck config: logging provider is invalid")
var ErrLoggingLevelInvalid = errors.New("deck config: logging level is invalid")
var ErrLoggingFormatInvalid = errors.New("deck config: logging format is invalid")
var ErrCommandTimeoutInvalid = errors.New("deck config: command timeout must be zero or positive")

// Config aggregates feature flags and adapter bindings for the deck module.
// Fields intentionally use simple types so host applications can extend them
// later.
type Config struct {
	Enabled  bool
	Storage  StorageConfig
	Markdown MarkdownConfig
	Commands CommandsConfig
	Logging  LoggingConfig
	Features Features
}

// StorageConfig selects and parameterises the persistence backend.
type StorageConfig struct {
	// Provider is one of "memory", "file", or "sqlite".
	Provider string
	// Dir is the storage directory for the file provider.
	Dir string
	// DSN is the database source name for the sqlite provider.
	DSN string
}

// MarkdownConfig captures parser behaviour for preview rendering.
type MarkdownConfig struct {
	Parser MarkdownParserConfig
}

// MarkdownParserConfig mirrors markdown.ParseOptions for runtime
// configuration.
type MarkdownParserConfig struct {
	Extensions []string
	HardWraps  bool
	SafeMode   bool
}

// CommandsConfig captures optional command-layer behaviour. A zero Timeout
// keeps the handler default.
type CommandsConfig struct {
	Timeout time.Duration
}

// LoggingConfig captures provider-specific options for runtime logging.
type LoggingConfig struct {
	Provider  string
	Level     string
	Format    string
	AddSource bool
	Focus     []string
}

// Features toggles module functionality.
type Features struct {
	Logger bool
}

// DefaultConfig returns opinionated defaults: in-memory storage, GFM preview
// parsing, console logging.
func DefaultConfig() Config {
	return Config{
		Enabled: true,
		Storage: StorageConfig{
			Provider: "memory",
		},
		Markdown: MarkdownConfig{
			Parser: MarkdownParserConfig{
				Extensions: []string{"gfm", "linkify", "tasklist"},
			},
		},
		Commands: CommandsConfig{},
		Logging: LoggingConfig{
			Provider: "console",
			Level:    "info",
			Format:   "",
		},
		Features: Features{},
	}
}

// Validate performs high-level consistency checks.
func (cfg Config) Validate() error {
	switch normalize(cfg.Storage.Provider) {
	case "", "memory":
	case "file":
		if strings.TrimSpace(cfg.Storage.Dir) == "" {
			return ErrStorageDirRequired
		}
	case "sqlite":
		if strings.TrimSpace(cfg.Storage.DSN) == "" {
			return ErrStorageDSNRequired
		}
	default:
		return fmt.Errorf("%w: %s", ErrStorageProviderUnknown, cfg.Storage.Provider)
	}

	if cfg.Commands.Timeout < 0 {
		return ErrCommandTimeoutInvalid
	}

	if cfg.Features.Logger {
		provider := normalize(cfg.Logging.Provider)
		if provider == "" {
			return ErrLoggingProviderRequired
		}
		if !isSupportedProvider(provider) {
			return fmt.Errorf("%w: %s", ErrLoggingProviderUnknown, provider)
		}
		if level := strings.TrimSpace(cfg.Logging.Level); level != "" && !isSupportedLevel(level) {
			return fmt.Errorf("%w: %s", ErrLoggingLevelInvalid, level)
		}
		if provider == "gologger" {
			if format := strings.TrimSpace(cfg.Logging.Format); format != "" && !isSupportedFormat(format) {
				return fmt.Errorf("%w: %s", ErrLoggingFormatInvalid, format)
			}
		}
	}
	return nil
}

func normalize(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}

func isSupportedProvider(provider string) bool {
	switch provider {
	case "console", "gologger":
		return true
	default:
		return false
	}
}

func isSupportedLevel(level string) bool {
	switch normalize(level) {
	case "trace", "debug", "info", "warn", "warning", "error", "fatal":
		return true
	default:
		return false
	}
}

func isSupportedFormat(format string) bool {
	switch normalize(format) {
	case "json", "console", "pretty":
		return true
	default:
		return false
	}
}
