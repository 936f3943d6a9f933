// Package history persists generation session history.
//
// Two backends implement the same port: a JSON file store (the default) and
// an opt-in SQLite store. Both hold the full collection in order; every
// mutation rewrites the whole collection.
package history

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/doeshing/bddgen/internal/domain"
	"github.com/doeshing/bddgen/internal/ports"
)

// FileStore keeps the history collection in a single JSON document.
type FileStore struct {
	path string
	mu   sync.Mutex
}

var _ ports.HistoryRepository = (*FileStore)(nil)

// NewFileStore creates a store backed by the given JSON file path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Load reads the full collection. A missing or unreadable file yields an
// empty collection rather than an error so a corrupt store never blocks
// startup.
func (f *FileStore) Load() ([]domain.HistoryEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	var entries []domain.HistoryEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, nil
	}
	return entries, nil
}

// Save rewrites the full collection.
func (f *FileStore) Save(entries []domain.HistoryEntry) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(f.path), domain.DirectoryPermissions); err != nil {
		return err
	}
	if entries == nil {
		entries = []domain.HistoryEntry{}
	}
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(f.path, data, domain.SecureFilePermissions)
}

// Path returns the backing file path.
func (f *FileStore) Path() string {
	return f.path
}
