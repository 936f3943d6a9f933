package commands

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/doeshing/bddgen/internal/domain"
)

// renderResult prints a generation result with the scenario titles in the
// configured accent color and steps indented beneath them.
func renderResult(out io.Writer, prefs domain.Settings, result domain.GenerationResult) {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(domain.AccentHex(prefs.Theme, prefs.Accent)))

	for i, rec := range result {
		if i > 0 {
			fmt.Fprintln(out)
		}
		fmt.Fprintln(out, titleStyle.Render(rec.Title))
		for _, step := range rec.Steps {
			fmt.Fprintf(out, "  %s\n", step)
		}
	}
}

// renderHistoryList prints one line per entry: id, label or text snippet,
// scenario count and a humanized age.
func renderHistoryList(out io.Writer, entries []domain.HistoryEntry) {
	for _, entry := range entries {
		label := entry.SourceLabel
		if label == "" {
			label = domain.Snippet(entry.SourceText, domain.HistorySnippetLength)
		}
		fmt.Fprintf(out, "%d | %s | %d scenarios | %s\n",
			entry.ID, label, len(entry.Result), humanizeCreatedAt(entry.CreatedAt))
	}
}

// humanizeCreatedAt turns a stored timestamp into a relative age. Timestamps
// that fail to parse are shown verbatim.
func humanizeCreatedAt(createdAt string) string {
	t, err := time.ParseInLocation(domain.CreatedAtFormat, createdAt, time.Local)
	if err != nil {
		return createdAt
	}
	return humanize.Time(t)
}
