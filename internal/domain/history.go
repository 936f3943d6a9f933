package domain

// HistoryEntry is one persisted generation session: the normalized input
// document together with the scenarios it produced.
//
// Entries are immutable after creation. The collection is ordered
// most-recent-first and is rewritten in full after every mutation.
type HistoryEntry struct {
	ID          int64            `json:"id"`
	SourceText  string           `json:"sourceText"`
	SourceLabel string           `json:"sourceLabel,omitempty"`
	Result      GenerationResult `json:"result"`
	CreatedAt   string           `json:"createdAt"`
}
