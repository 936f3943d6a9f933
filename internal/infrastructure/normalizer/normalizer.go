// Package normalizer turns raw user input into a normalized document.
//
// Three input paths converge on the same domain.Document: pasted text, file
// uploads (.txt and .docx) and manually pasted page excerpts. Binary formats
// are delegated to a DocumentExtractor collaborator.
package normalizer

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/doeshing/bddgen/internal/domain"
	"github.com/doeshing/bddgen/internal/ports"
)

// Normalizer builds documents from the supported input sources.
type Normalizer struct {
	extractor ports.DocumentExtractor
	logger    ports.Logger
}

// New creates a normalizer using extractor for binary document formats.
func New(extractor ports.DocumentExtractor, logger ports.Logger) *Normalizer {
	return &Normalizer{extractor: extractor, logger: logger}
}

// FromText normalizes pasted text. Pasted content carries no source label.
func (n *Normalizer) FromText(text string) domain.Document {
	return domain.Document{Text: text}
}

// FromExcerpt normalizes a manually pasted page excerpt. Excerpts are treated
// exactly like pasted text; fetching pages directly is out of scope.
func (n *Normalizer) FromExcerpt(text string) domain.Document {
	return domain.Document{Text: text}
}

// FromFile normalizes a file upload. Only .txt and .docx are supported; any
// other extension returns ErrUnsupportedFileType without reading the file.
// Read and extraction failures return ErrExtractionFailed with the cause.
func (n *Normalizer) FromFile(path string) (domain.Document, error) {
	label := filepath.Base(path)

	switch strings.ToLower(filepath.Ext(path)) {
	case ".txt":
		data, err := os.ReadFile(path)
		if err != nil {
			return domain.Document{}, fmt.Errorf("%w: %v", domain.ErrExtractionFailed, err)
		}
		if !utf8.Valid(data) {
			return domain.Document{}, fmt.Errorf("%w: %s is not valid UTF-8", domain.ErrExtractionFailed, label)
		}
		return domain.Document{Text: string(data), Label: label}, nil

	case ".docx":
		f, err := os.Open(path)
		if err != nil {
			return domain.Document{}, fmt.Errorf("%w: %v", domain.ErrExtractionFailed, err)
		}
		defer f.Close()

		text, err := n.extractor.Extract(f)
		if err != nil {
			n.logger.Warn("docx extraction failed", map[string]interface{}{
				"file": label,
			})
			return domain.Document{}, fmt.Errorf("%w: %v", domain.ErrExtractionFailed, err)
		}
		return domain.Document{Text: text, Label: label}, nil

	default:
		return domain.Document{}, fmt.Errorf("%w: %s (only .txt and .docx are supported)", domain.ErrUnsupportedFileType, label)
	}
}
