package domain

import "strings"

// Document is the normalized input to the generator: plain UTF-8 text plus an
// optional label describing where it came from (a file name, for uploads).
// Pasted text and page excerpts carry an empty label.
type Document struct {
	Text  string
	Label string
}

// Empty reports whether the document contains no usable content.
func (d Document) Empty() bool {
	return strings.TrimSpace(d.Text) == ""
}

// Snippet returns a short single-line preview of the document text, used in
// history listings when no label is available.
func (d Document) Snippet(max int) string {
	return Snippet(d.Text, max)
}

// Snippet collapses whitespace in s and truncates it to max runes with an
// ellipsis.
func Snippet(s string, max int) string {
	s = strings.Join(strings.Fields(s), " ")
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}
