// Package domain defines core business entities and value objects for bddgen.
//
// The domain layer is independent of infrastructure concerns and represents pure
// business logic and data structures: generated scenarios, history entries,
// user settings, and the error taxonomy shared across the pipeline.
package domain

// ScenarioRecord is one generated BDD test scenario.
//
// Steps are Gherkin lines ("Given ...", "When ...", "Then ...", "And ...") and
// their order is semantically meaningful; it is preserved exactly as produced
// by the model. A record with no steps is malformed and is rejected at the
// parse boundary, never stored.
type ScenarioRecord struct {
	Title string   `json:"title"`
	Steps []string `json:"steps"`
}

// GenerationResult is the ordered output of a single generator invocation.
// Order reflects generation order and is never re-sorted.
type GenerationResult []ScenarioRecord

// ActiveResult is the scenario list currently displayed, either freshly
// generated or replayed from history. HistoryID is the backing entry id, or
// zero when the result is not backed by a history entry.
type ActiveResult struct {
	Result    GenerationResult
	HistoryID int64
}
