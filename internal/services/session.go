// Package services contains the application core orchestrating the
// generation pipeline: document state, single-flight generation, history
// bookkeeping and user preferences.
package services

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/doeshing/bddgen/internal/domain"
	"github.com/doeshing/bddgen/internal/ports"
)

// DocumentNormalizer builds documents from the supported input sources.
// Implemented by the normalizer infrastructure package.
type DocumentNormalizer interface {
	FromText(text string) domain.Document
	FromExcerpt(text string) domain.Document
	FromFile(path string) (domain.Document, error)
}

// SessionService owns the mutable session state: the current document, the
// active result, the history collection and the preference record. All state
// transitions go through it; persistence failures are logged and never
// surfaced to callers.
type SessionService struct {
	generator  ports.Generator
	normalizer DocumentNormalizer
	history    ports.HistoryRepository
	settings   ports.SettingsStore
	effects    ports.EffectFactory
	logger     ports.Logger

	mu       sync.Mutex
	document domain.Document
	active   *domain.ActiveResult
	entries  []domain.HistoryEntry
	prefs    domain.Settings
	effect   ports.EffectHandle
	inFlight bool
	attempt  string

	now func() time.Time
}

// NewSessionService creates the session core and loads persisted state.
// History and settings load failures degrade to empty state and defaults.
func NewSessionService(
	generator ports.Generator,
	normalizer DocumentNormalizer,
	history ports.HistoryRepository,
	settings ports.SettingsStore,
	effects ports.EffectFactory,
	logger ports.Logger,
) *SessionService {
	s := &SessionService{
		generator:  generator,
		normalizer: normalizer,
		history:    history,
		settings:   settings,
		effects:    effects,
		logger:     logger,
		prefs:      domain.DefaultSettings(),
		now:        time.Now,
	}

	entries, err := history.Load()
	if err != nil {
		logger.Warn("history load failed, starting empty", map[string]interface{}{
			"error": err.Error(),
		})
		entries = nil
	}
	s.entries = entries

	prefs, err := settings.Load()
	if err != nil {
		logger.Warn("settings load failed, using defaults", map[string]interface{}{
			"error": err.Error(),
		})
		prefs = domain.DefaultSettings()
	}
	s.prefs = prefs

	return s
}

// SetDocument loads pasted text as the current document. Any active result
// is discarded.
func (s *SessionService) SetDocument(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.document = s.normalizer.FromText(text)
	s.active = nil
}

// SetExcerpt loads a manually pasted page excerpt as the current document.
func (s *SessionService) SetExcerpt(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.document = s.normalizer.FromExcerpt(text)
	s.active = nil
}

// SetDocumentFromFile loads a .txt or .docx file as the current document.
// An unsupported file type leaves the previously loaded content untouched;
// an extraction failure clears it. Either way the error carries the reason.
func (s *SessionService) SetDocumentFromFile(path string) error {
	doc, err := s.normalizer.FromFile(path)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		if errors.Is(err, domain.ErrUnsupportedFileType) {
			return err
		}
		s.document = domain.Document{}
		s.active = nil
		return err
	}
	s.document = doc
	s.active = nil
	return nil
}

// Document returns the current document.
func (s *SessionService) Document() domain.Document {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.document
}

// Generate runs one generation attempt over the current document. At most
// one attempt may be in flight; a second call fails with
// ErrGenerationInFlight instead of queueing. On success the result is stored
// as a new history entry at the head of the collection and becomes the
// active result. A completion belonging to an abandoned attempt leaves all
// state untouched.
func (s *SessionService) Generate(ctx context.Context) (domain.GenerationResult, error) {
	s.mu.Lock()
	if s.inFlight {
		s.mu.Unlock()
		return nil, domain.ErrGenerationInFlight
	}
	if s.document.Empty() {
		s.mu.Unlock()
		return nil, domain.ErrEmptyDocument
	}
	doc := s.document
	token := uuid.NewString()
	s.inFlight = true
	s.attempt = token
	s.mu.Unlock()

	result, err := s.generator.Generate(ctx, doc.Text)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.attempt != token {
		s.logger.Debug("stale generation completion discarded", map[string]interface{}{
			"attempt": token,
		})
		return result, err
	}
	s.inFlight = false
	s.attempt = ""

	if err != nil {
		s.active = nil
		return nil, err
	}

	entry := domain.HistoryEntry{
		ID:          s.nextIDLocked(),
		SourceText:  doc.Text,
		SourceLabel: doc.Label,
		Result:      result,
		CreatedAt:   s.now().Format(domain.CreatedAtFormat),
	}
	s.entries = append([]domain.HistoryEntry{entry}, s.entries...)
	s.persistHistoryLocked()
	s.active = &domain.ActiveResult{Result: result, HistoryID: entry.ID}
	return result, nil
}

// Abandon gives up on an in-flight generation attempt. The underlying call
// is not cancelled; its completion is discarded when it arrives.
func (s *SessionService) Abandon() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.inFlight {
		return
	}
	s.inFlight = false
	s.attempt = ""
}

// ActiveResult returns the currently displayed result, if any.
func (s *SessionService) ActiveResult() (domain.ActiveResult, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.active == nil {
		return domain.ActiveResult{}, false
	}
	return *s.active, true
}

// History returns a copy of the history collection, most recent first.
func (s *SessionService) History() []domain.HistoryEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	entries := make([]domain.HistoryEntry, len(s.entries))
	copy(entries, s.entries)
	return entries
}

// Entry returns the history entry with the given id.
func (s *SessionService) Entry(id int64) (domain.HistoryEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, entry := range s.entries {
		if entry.ID == id {
			return entry, nil
		}
	}
	return domain.HistoryEntry{}, domain.ErrEntryNotFound
}

// SelectEntry replays a history entry: its result becomes the active result
// and its source document is restored as the current document.
func (s *SessionService) SelectEntry(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, entry := range s.entries {
		if entry.ID == id {
			s.document = domain.Document{Text: entry.SourceText, Label: entry.SourceLabel}
			s.active = &domain.ActiveResult{Result: entry.Result, HistoryID: entry.ID}
			return nil
		}
	}
	return domain.ErrEntryNotFound
}

// DeleteEntry removes a history entry. Unknown ids are a no-op. When the
// active result was backed by the deleted entry it is cleared as well.
func (s *SessionService) DeleteEntry(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, entry := range s.entries {
		if entry.ID == id {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			if s.active != nil && s.active.HistoryID == id {
				s.active = nil
			}
			s.persistHistoryLocked()
			return
		}
	}
}

// ClearHistory removes all history entries and the active result.
func (s *SessionService) ClearHistory() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = nil
	s.active = nil
	s.persistHistoryLocked()
}

// Settings returns the current preference record.
func (s *SessionService) Settings() domain.Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.prefs
}

// ApplySettings replaces the preference record and restarts the background
// effect. The previous effect handle is torn down first. When the new effect
// cannot be instantiated the record degrades to the "none" effect and the
// degraded record is what gets persisted.
func (s *SessionService) ApplySettings(settings domain.Settings) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.effect != nil {
		s.effect.Stop()
		s.effect = nil
	}
	s.prefs = settings

	handle, err := s.effects.New(settings.Effect, settings.Theme, settings.Accent)
	if err != nil {
		s.logger.Warn("background effect unavailable, disabling", map[string]interface{}{
			"effect": string(settings.Effect),
			"error":  err.Error(),
		})
		s.prefs.Effect = domain.EffectNone
		if fallback, ferr := s.effects.New(domain.EffectNone, settings.Theme, settings.Accent); ferr == nil {
			s.effect = fallback
		}
	} else {
		s.effect = handle
	}

	if err := s.settings.Save(s.prefs); err != nil {
		s.logger.Warn("settings save failed", map[string]interface{}{
			"error": err.Error(),
		})
	}
}

// StartEffect starts the background effect from the current preferences,
// degrading to "none" (persisted) when instantiation fails. A running effect
// is left alone.
func (s *SessionService) StartEffect() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.effect != nil {
		return
	}
	handle, err := s.effects.New(s.prefs.Effect, s.prefs.Theme, s.prefs.Accent)
	if err != nil {
		s.logger.Warn("background effect unavailable, disabling", map[string]interface{}{
			"effect": string(s.prefs.Effect),
			"error":  err.Error(),
		})
		s.prefs.Effect = domain.EffectNone
		if err := s.settings.Save(s.prefs); err != nil {
			s.logger.Warn("settings save failed", map[string]interface{}{
				"error": err.Error(),
			})
		}
		return
	}
	s.effect = handle
}

// StopEffect tears down the running background effect, if any.
func (s *SessionService) StopEffect() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.effect != nil {
		s.effect.Stop()
		s.effect = nil
	}
}

// nextIDLocked derives a unique entry id from the current wall clock in
// milliseconds, bumping on collision so ids stay unique even within one
// millisecond.
func (s *SessionService) nextIDLocked() int64 {
	id := s.now().UnixMilli()
	for s.hasIDLocked(id) {
		id++
	}
	return id
}

func (s *SessionService) hasIDLocked(id int64) bool {
	for _, entry := range s.entries {
		if entry.ID == id {
			return true
		}
	}
	return false
}

func (s *SessionService) persistHistoryLocked() {
	if err := s.history.Save(s.entries); err != nil {
		s.logger.Warn("history save failed", map[string]interface{}{
			"error": err.Error(),
		})
	}
}
