// Package settings persists the user preference record as a small JSON file.
package settings

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/doeshing/bddgen/internal/domain"
	"github.com/doeshing/bddgen/internal/ports"
)

// FileStore reads and writes the preference record. Stored values are merged
// over factory defaults on load so older or partial records stay usable;
// unknown JSON keys are ignored.
type FileStore struct {
	path string
	mu   sync.Mutex
}

var _ ports.SettingsStore = (*FileStore)(nil)

// NewFileStore creates a store backed by the given JSON file path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Load returns the stored preferences merged over defaults. A missing or
// corrupt file yields the defaults.
func (f *FileStore) Load() (domain.Settings, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	settings := domain.DefaultSettings()
	data, err := os.ReadFile(f.path)
	if err != nil {
		return settings, nil
	}
	if err := json.Unmarshal(data, &settings); err != nil {
		return domain.DefaultSettings(), nil
	}

	defaults := domain.DefaultSettings()
	if !domain.ValidTheme(settings.Theme) {
		settings.Theme = defaults.Theme
	}
	if !domain.ValidAccent(settings.Accent) {
		settings.Accent = defaults.Accent
	}
	if !domain.ValidEffect(settings.Effect) {
		settings.Effect = defaults.Effect
	}
	return settings, nil
}

// Save overwrites the stored record in full.
func (f *FileStore) Save(settings domain.Settings) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(f.path), domain.DirectoryPermissions); err != nil {
		return err
	}
	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(f.path, data, domain.SecureFilePermissions)
}

// Path returns the backing file path.
func (f *FileStore) Path() string {
	return f.path
}
