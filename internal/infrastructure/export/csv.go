package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/doeshing/bddgen/internal/domain"
)

var csvHeader = []string{"id", "createdAt", "sourceLabel", "sourceText", "scenarioTitle", "steps"}

// HistoryCSV writes the full history as CSV, one row per scenario with its
// entry's metadata repeated. Steps within a row are joined by newlines;
// quoting follows RFC 4180. An empty history writes nothing and returns
// ErrNothingToExport.
func HistoryCSV(w io.Writer, entries []domain.HistoryEntry) error {
	if len(entries) == 0 {
		return fmt.Errorf("%w: history is empty", domain.ErrNothingToExport)
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, entry := range entries {
		for _, rec := range entry.Result {
			row := []string{
				strconv.FormatInt(entry.ID, 10),
				entry.CreatedAt,
				entry.SourceLabel,
				entry.SourceText,
				rec.Title,
				strings.Join(rec.Steps, "\n"),
			}
			if err := cw.Write(row); err != nil {
				return err
			}
		}
	}
	cw.Flush()
	return cw.Error()
}
