// Package ports defines the interfaces (ports) for the hexagonal architecture.
//
// This package establishes the contract between the application core and external
// adapters (infrastructure). Following the Ports and Adapters (Hexagonal) pattern,
// these interfaces allow the application to remain independent of specific
// implementations like databases, HTTP clients, or CLI frameworks.
//
// Key architectural concepts:
//   - Ports: Interfaces defined here (e.g., Generator, HistoryRepository)
//   - Adapters: Concrete implementations in the infrastructure layer
//   - Dependency inversion: Application depends on abstractions, not implementations
package ports

import (
	"context"
	"io"

	"github.com/doeshing/bddgen/internal/domain"
)

// ConfigProvider loads the latest configuration from persistent storage.
// Implementations typically read from ~/.bddgen/config.yaml.
type ConfigProvider interface {
	Load(context.Context) (domain.Config, error)
}

// Generator turns a normalized document into BDD test scenarios.
// Implementations wrap a structured-output model API. A single call produces
// the whole batch; there are no partial results and no retries.
type Generator interface {
	Generate(ctx context.Context, documentText string) (domain.GenerationResult, error)
}

// DocumentExtractor pulls plain text out of a binary document format.
// The normalizer delegates .docx uploads to this collaborator.
type DocumentExtractor interface {
	Extract(r io.Reader) (string, error)
}

// HistoryRepository persists the generation session history. The collection
// is loaded once at startup and rewritten in full after every mutation.
// Load returns an empty slice when no history exists or the stored data
// cannot be read.
type HistoryRepository interface {
	Load() ([]domain.HistoryEntry, error)
	Save(entries []domain.HistoryEntry) error
}

// SettingsStore persists the user preference record. Load merges stored
// values over defaults so partially written or older records stay usable.
type SettingsStore interface {
	Load() (domain.Settings, error)
	Save(settings domain.Settings) error
}

// EffectHandle is a running background effect instance. Stop tears it down
// and must be safe to call exactly once.
type EffectHandle interface {
	Stop()
}

// EffectFactory instantiates background effects by name. Instantiation
// failures are reported so the caller can degrade to the "none" effect.
type EffectFactory interface {
	New(effect domain.Effect, theme domain.Theme, accent domain.AccentColor) (EffectHandle, error)
}

// Logger provides structured logging abstraction for the application layer.
// Implementations can route to different backends (stdout, files, external services).
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, err error, fields map[string]interface{})
}
