package export

import (
	"fmt"
	"io"

	"github.com/go-pdf/fpdf"

	"github.com/doeshing/bddgen/internal/domain"
)

// PDF layout constants. A4 portrait with 10mm margins leaves 190mm of
// usable width; Courier keeps step indentation aligned.
const (
	pdfFontFamily = "Courier"
	pdfFontSize   = 10
	pdfLineHeight = 5
	pdfMargin     = 10
)

// PDF renders the plain-text form of a result into a PDF document and writes
// it to w in one synchronous call. Long lines wrap automatically and page
// breaks are inserted as needed.
func PDF(w io.Writer, result domain.GenerationResult) error {
	if len(result) == 0 {
		return fmt.Errorf("%w: no scenarios to render", domain.ErrNothingToExport)
	}

	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetMargins(pdfMargin, pdfMargin, pdfMargin)
	doc.SetAutoPageBreak(true, pdfMargin)
	doc.SetFont(pdfFontFamily, "", pdfFontSize)
	doc.AddPage()

	doc.MultiCell(0, pdfLineHeight, PlainText(result), "", "L", false)

	if err := doc.Output(w); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}
