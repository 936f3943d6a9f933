package history

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/doeshing/bddgen/internal/domain"
)

func sampleEntries() []domain.HistoryEntry {
	return []domain.HistoryEntry{
		{
			ID:          1756710000001,
			SourceText:  "Checkout flow design",
			SourceLabel: "checkout.docx",
			Result: domain.GenerationResult{
				{Title: "Scenario: Pay with a saved card", Steps: []string{"Given a saved card", "When checkout completes", "Then the order is placed"}},
			},
			CreatedAt: "2026-09-01 10:20:00",
		},
		{
			ID:         1756700000002,
			SourceText: "Login user story",
			Result: domain.GenerationResult{
				{Title: "Scenario: Successful login", Steps: []string{"Given a registered user", "When credentials are valid", "Then the dashboard loads"}},
			},
			CreatedAt: "2026-09-01 07:33:12",
		},
	}
}

func TestFileStoreRoundTrip(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "history.json"))
	want := sampleEntries()

	if err := store.Save(want); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}
	got, err := store.Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestFileStoreMissingFileIsEmpty(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "history.json"))

	got, err := store.Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("Load = %v, want empty", got)
	}
}

func TestFileStoreCorruptFileIsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o600); err != nil {
		t.Fatal(err)
	}

	store := NewFileStore(path)
	got, err := store.Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("Load = %v, want empty", got)
	}
}

func TestFileStoreSaveEmptyClears(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "history.json"))

	if err := store.Save(sampleEntries()); err != nil {
		t.Fatal(err)
	}
	if err := store.Save(nil); err != nil {
		t.Fatalf("Save(nil) returned error: %v", err)
	}
	got, err := store.Load()
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Errorf("Load after clear = %v, want empty", got)
	}
}

func TestSQLiteStoreRoundTrip(t *testing.T) {
	store, err := NewSQLiteStore(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("NewSQLiteStore returned error: %v", err)
	}
	defer store.Close()

	want := sampleEntries()
	if err := store.Save(want); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}
	got, err := store.Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestSQLiteStoreSaveReplaces(t *testing.T) {
	store, err := NewSQLiteStore(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	entries := sampleEntries()
	if err := store.Save(entries); err != nil {
		t.Fatal(err)
	}
	if err := store.Save(entries[:1]); err != nil {
		t.Fatal(err)
	}
	got, err := store.Load()
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(entries[:1], got); diff != "" {
		t.Errorf("Save did not replace contents (-want +got):\n%s", diff)
	}
}
