package normalizer

import (
	"fmt"
	"io"
	"strings"

	"code.sajari.com/docconv"

	"github.com/doeshing/bddgen/internal/ports"
)

// DocxExtractor extracts plain text from .docx documents.
type DocxExtractor struct{}

var _ ports.DocumentExtractor = (*DocxExtractor)(nil)

// NewDocxExtractor creates the default .docx extractor.
func NewDocxExtractor() *DocxExtractor {
	return &DocxExtractor{}
}

// Extract reads a .docx stream and returns its text content.
func (e *DocxExtractor) Extract(r io.Reader) (string, error) {
	text, _, err := docconv.ConvertDocx(r)
	if err != nil {
		return "", fmt.Errorf("convert docx: %w", err)
	}
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("document contains no text")
	}
	return text, nil
}
