package history

import (
	"database/sql"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	_ "modernc.org/sqlite"

	"github.com/doeshing/bddgen/internal/domain"
	"github.com/doeshing/bddgen/internal/ports"
)

// SQLiteStore persists history in a SQLite database. It implements the same
// load-all / save-all contract as FileStore; a save replaces the table
// contents inside one transaction.
type SQLiteStore struct {
	db   *sql.DB
	path string
	mu   sync.Mutex
}

var _ ports.HistoryRepository = (*SQLiteStore)(nil)

// NewSQLiteStore creates (or opens) the history database at path.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), domain.DirectoryPermissions); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	store := &SQLiteStore{db: db, path: path}
	if err := store.init(); err != nil {
		db.Close()
		return nil, err
	}
	return store, nil
}

func (s *SQLiteStore) init() error {
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS entries (
		id INTEGER PRIMARY KEY,
		position INTEGER NOT NULL,
		source_text TEXT NOT NULL,
		source_label TEXT NOT NULL,
		result TEXT NOT NULL,
		created_at TEXT NOT NULL
	);`)
	return err
}

// Load reads the full collection in stored order.
func (s *SQLiteStore) Load() ([]domain.HistoryEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.db.Query(`SELECT id, source_text, source_label, result, created_at
		FROM entries ORDER BY position ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []domain.HistoryEntry
	for rows.Next() {
		var entry domain.HistoryEntry
		var resultJSON string
		if err := rows.Scan(&entry.ID, &entry.SourceText, &entry.SourceLabel, &resultJSON, &entry.CreatedAt); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(resultJSON), &entry.Result); err != nil {
			continue
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

// Save replaces the table contents with entries, preserving their order.
func (s *SQLiteStore) Save(entries []domain.HistoryEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM entries"); err != nil {
		return err
	}
	stmt, err := tx.Prepare(`INSERT INTO entries
		(id, position, source_text, source_label, result, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, entry := range entries {
		resultJSON, err := json.Marshal(entry.Result)
		if err != nil {
			return err
		}
		if _, err := stmt.Exec(entry.ID, i, entry.SourceText, entry.SourceLabel, string(resultJSON), entry.CreatedAt); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// Path returns the sqlite database path.
func (s *SQLiteStore) Path() string {
	return s.path
}

// Close releases the database handle.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
