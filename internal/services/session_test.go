package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/doeshing/bddgen/internal/domain"
	"github.com/doeshing/bddgen/internal/ports"
)

type stubGenerator struct {
	result  domain.GenerationResult
	err     error
	release chan struct{} // when set, Generate blocks until closed
	calls   int
	mu      sync.Mutex
}

func (g *stubGenerator) Generate(ctx context.Context, documentText string) (domain.GenerationResult, error) {
	g.mu.Lock()
	g.calls++
	release := g.release
	g.mu.Unlock()
	if release != nil {
		<-release
	}
	return g.result, g.err
}

func (g *stubGenerator) callCount() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.calls
}

type stubNormalizer struct{}

func (stubNormalizer) FromText(text string) domain.Document    { return domain.Document{Text: text} }
func (stubNormalizer) FromExcerpt(text string) domain.Document { return domain.Document{Text: text} }
func (stubNormalizer) FromFile(path string) (domain.Document, error) {
	return domain.Document{Text: "file body", Label: path}, nil
}

type memHistory struct {
	entries []domain.HistoryEntry
	saveErr error
	saves   int
}

func (m *memHistory) Load() ([]domain.HistoryEntry, error) { return m.entries, nil }
func (m *memHistory) Save(entries []domain.HistoryEntry) error {
	m.saves++
	if m.saveErr != nil {
		return m.saveErr
	}
	m.entries = entries
	return nil
}

type memSettings struct {
	stored domain.Settings
	saves  int
}

func (m *memSettings) Load() (domain.Settings, error) { return m.stored, nil }
func (m *memSettings) Save(settings domain.Settings) error {
	m.stored = settings
	m.saves++
	return nil
}

type stubEffectHandle struct{ stops int }

func (h *stubEffectHandle) Stop() { h.stops++ }

type stubEffects struct {
	err     error
	handles []*stubEffectHandle
}

func (f *stubEffects) New(effect domain.Effect, theme domain.Theme, accent domain.AccentColor) (ports.EffectHandle, error) {
	if f.err != nil && effect != domain.EffectNone {
		return nil, f.err
	}
	h := &stubEffectHandle{}
	f.handles = append(f.handles, h)
	return h, nil
}

type nopLogger struct{}

func (nopLogger) Debug(string, map[string]interface{})        {}
func (nopLogger) Info(string, map[string]interface{})         {}
func (nopLogger) Warn(string, map[string]interface{})         {}
func (nopLogger) Error(string, error, map[string]interface{}) {}

func sampleResult() domain.GenerationResult {
	return domain.GenerationResult{
		{Title: "Scenario: Successful login", Steps: []string{"Given a user", "When they log in", "Then it works"}},
	}
}

func newTestSession(gen *stubGenerator, hist *memHistory, prefs *memSettings, effects *stubEffects) *SessionService {
	if hist == nil {
		hist = &memHistory{}
	}
	if prefs == nil {
		prefs = &memSettings{stored: domain.DefaultSettings()}
	}
	if effects == nil {
		effects = &stubEffects{}
	}
	return NewSessionService(gen, stubNormalizer{}, hist, prefs, effects, nopLogger{})
}

func TestGenerateSuccessRecordsHistory(t *testing.T) {
	gen := &stubGenerator{result: sampleResult()}
	hist := &memHistory{}
	s := newTestSession(gen, hist, nil, nil)
	s.now = func() time.Time { return time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC) }

	s.SetDocument("login user story")
	result, err := s.Generate(context.Background())
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if diff := cmp.Diff(sampleResult(), result); diff != "" {
		t.Errorf("result mismatch (-want +got):\n%s", diff)
	}

	entries := s.History()
	if len(entries) != 1 {
		t.Fatalf("history has %d entries, want 1", len(entries))
	}
	entry := entries[0]
	if entry.SourceText != "login user story" {
		t.Errorf("SourceText = %q", entry.SourceText)
	}
	if entry.SourceLabel != "" {
		t.Errorf("SourceLabel = %q, want empty for pasted text", entry.SourceLabel)
	}
	if entry.CreatedAt != "2026-09-01 12:00:00" {
		t.Errorf("CreatedAt = %q", entry.CreatedAt)
	}
	if diff := cmp.Diff(sampleResult(), entry.Result); diff != "" {
		t.Errorf("entry result mismatch (-want +got):\n%s", diff)
	}

	active, ok := s.ActiveResult()
	if !ok {
		t.Fatal("no active result after successful generation")
	}
	if active.HistoryID != entry.ID {
		t.Errorf("active HistoryID = %d, want %d", active.HistoryID, entry.ID)
	}
	if hist.saves != 1 {
		t.Errorf("history persisted %d times, want 1", hist.saves)
	}
}

func TestGenerateNewestFirst(t *testing.T) {
	gen := &stubGenerator{result: sampleResult()}
	s := newTestSession(gen, nil, nil, nil)

	s.SetDocument("first")
	if _, err := s.Generate(context.Background()); err != nil {
		t.Fatal(err)
	}
	s.SetDocument("second")
	if _, err := s.Generate(context.Background()); err != nil {
		t.Fatal(err)
	}

	entries := s.History()
	if len(entries) != 2 {
		t.Fatalf("history has %d entries, want 2", len(entries))
	}
	if entries[0].SourceText != "second" || entries[1].SourceText != "first" {
		t.Errorf("history order = [%q, %q], want newest first", entries[0].SourceText, entries[1].SourceText)
	}
	if entries[0].ID <= entries[1].ID {
		t.Errorf("ids not increasing: %d then %d", entries[1].ID, entries[0].ID)
	}
}

func TestGenerateIDCollisionBumps(t *testing.T) {
	gen := &stubGenerator{result: sampleResult()}
	s := newTestSession(gen, nil, nil, nil)
	fixed := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return fixed }

	s.SetDocument("doc")
	for i := 0; i < 3; i++ {
		if _, err := s.Generate(context.Background()); err != nil {
			t.Fatal(err)
		}
	}

	seen := map[int64]bool{}
	for _, entry := range s.History() {
		if seen[entry.ID] {
			t.Fatalf("duplicate id %d", entry.ID)
		}
		seen[entry.ID] = true
	}
}

func TestGenerateEmptyDocument(t *testing.T) {
	gen := &stubGenerator{result: sampleResult()}
	s := newTestSession(gen, nil, nil, nil)

	s.SetDocument("   \n\t ")
	if _, err := s.Generate(context.Background()); !errors.Is(err, domain.ErrEmptyDocument) {
		t.Fatalf("error = %v, want ErrEmptyDocument", err)
	}
	if gen.callCount() != 0 {
		t.Errorf("generator called %d times for empty document, want 0", gen.callCount())
	}
}

func TestGenerateSingleFlight(t *testing.T) {
	release := make(chan struct{})
	gen := &stubGenerator{result: sampleResult(), release: release}
	s := newTestSession(gen, nil, nil, nil)
	s.SetDocument("doc")

	done := make(chan error, 1)
	go func() {
		_, err := s.Generate(context.Background())
		done <- err
	}()

	// Wait for the first attempt to reach the generator.
	for gen.callCount() == 0 {
		time.Sleep(time.Millisecond)
	}

	if _, err := s.Generate(context.Background()); !errors.Is(err, domain.ErrGenerationInFlight) {
		t.Fatalf("second attempt error = %v, want ErrGenerationInFlight", err)
	}
	if gen.callCount() != 1 {
		t.Errorf("generator called %d times, want 1 (second attempt must not queue)", gen.callCount())
	}

	close(release)
	if err := <-done; err != nil {
		t.Fatalf("first attempt failed: %v", err)
	}
	if len(s.History()) != 1 {
		t.Errorf("history has %d entries, want 1", len(s.History()))
	}
}

func TestAbandonedCompletionIsDiscarded(t *testing.T) {
	release := make(chan struct{})
	gen := &stubGenerator{result: sampleResult(), release: release}
	s := newTestSession(gen, nil, nil, nil)
	s.SetDocument("doc")

	done := make(chan struct{})
	go func() {
		s.Generate(context.Background())
		close(done)
	}()
	for gen.callCount() == 0 {
		time.Sleep(time.Millisecond)
	}

	s.Abandon()
	close(release)
	<-done

	if len(s.History()) != 0 {
		t.Errorf("abandoned completion created %d history entries, want 0", len(s.History()))
	}
	if _, ok := s.ActiveResult(); ok {
		t.Error("abandoned completion set an active result")
	}
}

func TestGenerateFailureClearsActive(t *testing.T) {
	gen := &stubGenerator{result: sampleResult()}
	s := newTestSession(gen, nil, nil, nil)

	s.SetDocument("doc")
	if _, err := s.Generate(context.Background()); err != nil {
		t.Fatal(err)
	}
	if _, ok := s.ActiveResult(); !ok {
		t.Fatal("no active result after success")
	}

	gen.result = nil
	gen.err = fmt.Errorf("%w: quota exceeded", domain.ErrServiceUnavailable)
	s.SetDocument("doc again")
	if _, err := s.Generate(context.Background()); !errors.Is(err, domain.ErrServiceUnavailable) {
		t.Fatalf("error = %v, want ErrServiceUnavailable", err)
	}

	if _, ok := s.ActiveResult(); ok {
		t.Error("active result survived a failed generation")
	}
	if len(s.History()) != 1 {
		t.Errorf("failed generation changed history: %d entries, want 1", len(s.History()))
	}
}

func TestSetDocumentClearsActive(t *testing.T) {
	gen := &stubGenerator{result: sampleResult()}
	s := newTestSession(gen, nil, nil, nil)

	s.SetDocument("doc")
	if _, err := s.Generate(context.Background()); err != nil {
		t.Fatal(err)
	}
	s.SetDocument("new doc")
	if _, ok := s.ActiveResult(); ok {
		t.Error("active result survived a document change")
	}
}

func TestSelectEntry(t *testing.T) {
	gen := &stubGenerator{result: sampleResult()}
	s := newTestSession(gen, nil, nil, nil)

	s.SetDocument("original doc")
	if _, err := s.Generate(context.Background()); err != nil {
		t.Fatal(err)
	}
	id := s.History()[0].ID

	s.SetDocument("something else")
	if err := s.SelectEntry(id); err != nil {
		t.Fatalf("SelectEntry returned error: %v", err)
	}

	active, ok := s.ActiveResult()
	if !ok || active.HistoryID != id {
		t.Errorf("active = %+v, ok = %v, want entry %d replayed", active, ok, id)
	}
	if s.Document().Text != "original doc" {
		t.Errorf("Document = %q, want restored source text", s.Document().Text)
	}

	if err := s.SelectEntry(42); !errors.Is(err, domain.ErrEntryNotFound) {
		t.Errorf("SelectEntry(42) error = %v, want ErrEntryNotFound", err)
	}
}

func TestDeleteEntry(t *testing.T) {
	gen := &stubGenerator{result: sampleResult()}
	hist := &memHistory{}
	s := newTestSession(gen, hist, nil, nil)

	s.SetDocument("doc")
	if _, err := s.Generate(context.Background()); err != nil {
		t.Fatal(err)
	}
	id := s.History()[0].ID
	savesBefore := hist.saves

	// Unknown id is a no-op.
	s.DeleteEntry(id + 999)
	if len(s.History()) != 1 {
		t.Fatalf("unknown id delete changed history")
	}
	if hist.saves != savesBefore {
		t.Errorf("unknown id delete persisted: %d saves, want %d", hist.saves, savesBefore)
	}

	s.DeleteEntry(id)
	if len(s.History()) != 0 {
		t.Errorf("history has %d entries after delete, want 0", len(s.History()))
	}
	if _, ok := s.ActiveResult(); ok {
		t.Error("active result survived deletion of its backing entry")
	}
}

func TestClearHistory(t *testing.T) {
	gen := &stubGenerator{result: sampleResult()}
	s := newTestSession(gen, nil, nil, nil)

	s.SetDocument("doc")
	if _, err := s.Generate(context.Background()); err != nil {
		t.Fatal(err)
	}

	s.ClearHistory()
	if len(s.History()) != 0 {
		t.Error("history not empty after clear")
	}
	if _, ok := s.ActiveResult(); ok {
		t.Error("active result survived history clear")
	}
}

func TestPersistenceFailureNotSurfaced(t *testing.T) {
	gen := &stubGenerator{result: sampleResult()}
	hist := &memHistory{saveErr: fmt.Errorf("disk full")}
	s := newTestSession(gen, hist, nil, nil)

	s.SetDocument("doc")
	if _, err := s.Generate(context.Background()); err != nil {
		t.Fatalf("Generate surfaced a persistence failure: %v", err)
	}
	if len(s.History()) != 1 {
		t.Errorf("in-memory history has %d entries, want 1", len(s.History()))
	}
}

func TestApplySettingsRestartsEffect(t *testing.T) {
	gen := &stubGenerator{}
	effects := &stubEffects{}
	prefs := &memSettings{stored: domain.DefaultSettings()}
	s := newTestSession(gen, nil, prefs, effects)

	s.StartEffect()
	if len(effects.handles) != 1 {
		t.Fatalf("StartEffect created %d handles, want 1", len(effects.handles))
	}
	first := effects.handles[0]

	want := domain.Settings{Theme: domain.ThemeLight, Accent: domain.AccentRose, Effect: domain.EffectHalo}
	s.ApplySettings(want)

	if first.stops != 1 {
		t.Errorf("previous effect stopped %d times, want 1", first.stops)
	}
	if len(effects.handles) != 2 {
		t.Errorf("new effect not instantiated: %d handles", len(effects.handles))
	}
	if diff := cmp.Diff(want, s.Settings()); diff != "" {
		t.Errorf("settings mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(want, prefs.stored); diff != "" {
		t.Errorf("persisted settings mismatch (-want +got):\n%s", diff)
	}
}

func TestApplySettingsDegradesToNone(t *testing.T) {
	gen := &stubGenerator{}
	effects := &stubEffects{err: fmt.Errorf("terminal too dumb")}
	prefs := &memSettings{stored: domain.DefaultSettings()}
	s := newTestSession(gen, nil, prefs, effects)

	s.ApplySettings(domain.Settings{Theme: domain.ThemeDark, Accent: domain.AccentTeal, Effect: domain.EffectBirds})

	got := s.Settings()
	if got.Effect != domain.EffectNone {
		t.Errorf("Effect = %q, want none after degrade", got.Effect)
	}
	if got.Theme != domain.ThemeDark || got.Accent != domain.AccentTeal {
		t.Errorf("theme/accent changed during degrade: %+v", got)
	}
	if prefs.stored.Effect != domain.EffectNone {
		t.Errorf("persisted Effect = %q, want none", prefs.stored.Effect)
	}
}
