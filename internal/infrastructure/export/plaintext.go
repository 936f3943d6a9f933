// Package export renders generation results and history into the three
// supported output formats: plain text, CSV and PDF.
package export

import (
	"strings"

	"github.com/doeshing/bddgen/internal/domain"
)

// PlainText renders a result as displayed text: the title line followed by
// its steps indented with two spaces, scenarios separated by a blank line.
// The same form backs the .txt download and the clipboard copy.
func PlainText(result domain.GenerationResult) string {
	blocks := make([]string, 0, len(result))
	for _, rec := range result {
		lines := make([]string, 0, len(rec.Steps)+1)
		lines = append(lines, rec.Title)
		for _, step := range rec.Steps {
			lines = append(lines, "  "+step)
		}
		blocks = append(blocks, strings.Join(lines, "\n"))
	}
	return strings.Join(blocks, "\n\n")
}
