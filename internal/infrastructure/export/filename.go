package export

import (
	"fmt"
	"time"

	"github.com/doeshing/bddgen/internal/domain"
)

// Filename builds a download file name as <prefix>-YYYYMMDD-HHMMSS.<ext>.
func Filename(prefix, ext string, t time.Time) string {
	return fmt.Sprintf("%s-%s.%s", prefix, t.Format(domain.ExportTimestampFormat), ext)
}

// ScenarioFilename names a txt or pdf scenario export at time t.
func ScenarioFilename(ext string, t time.Time) string {
	return Filename(domain.ScenarioExportPrefix, ext, t)
}

// HistoryFilename names a csv history export at time t.
func HistoryFilename(t time.Time) string {
	return Filename(domain.HistoryExportPrefix, "csv", t)
}
