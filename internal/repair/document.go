// Package repair rejoins statements that an upstream generation step broke
// across two physical lines. It offers two strategies over a single file: a
// line-scan pass that merges marker-matched consecutive line pairs, and a
// whole-content substitution of known literal text blocks.
package repair

import (
	"fmt"
	"os"
	"strings"
)

// Document holds one text file as an ordered sequence of physical lines.
// Lines are split on "\n" only; a carriage return before the break stays part
// of its line's content, so CRLF files survive a load/save cycle byte for
// byte. Whether the file ended with a final newline is recorded and
// reproduced on save.
type Document struct {
	path         string
	lines        []string
	finalNewline bool
}

// LoadDocument reads the file at path into memory.
func LoadDocument(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return parseDocument(path, string(data)), nil
}

// parseDocument splits content into physical lines. An empty file has zero
// lines, not one empty line.
func parseDocument(path, content string) *Document {
	doc := &Document{path: path}
	if content == "" {
		return doc
	}
	doc.finalNewline = strings.HasSuffix(content, "\n")
	if doc.finalNewline {
		content = strings.TrimSuffix(content, "\n")
	}
	doc.lines = strings.Split(content, "\n")
	return doc
}

// Save writes the document back to its path, overwriting it in place.
// There is no backup and no atomic rename; an interrupted write can leave the
// file truncated.
func (d *Document) Save() error {
	if err := os.WriteFile(d.path, []byte(d.Content()), 0644); err != nil {
		return fmt.Errorf("write %s: %w", d.path, err)
	}
	return nil
}

// Content renders the document back into a single string, reversing the split
// performed at load time.
func (d *Document) Content() string {
	if len(d.lines) == 0 {
		return ""
	}
	content := strings.Join(d.lines, "\n")
	if d.finalNewline {
		content += "\n"
	}
	return content
}

// Path returns the file path the document was loaded from.
func (d *Document) Path() string {
	return d.path
}

// Lines returns the document's physical lines.
func (d *Document) Lines() []string {
	return d.lines
}

// SetLines replaces the document's lines, keeping the recorded final-newline
// state.
func (d *Document) SetLines(lines []string) {
	d.lines = lines
}

// LineCount returns the number of physical lines.
func (d *Document) LineCount() int {
	return len(d.lines)
}

// Hash returns the SHA-256 hex digest of the rendered content.
func (d *Document) Hash() string {
	return contentHash(d.Content())
}

// lineCount reports the number of physical lines in content. A trailing
// fragment without a final newline counts as a line.
func lineCount(content string) int {
	if content == "" {
		return 0
	}
	n := strings.Count(content, "\n")
	if !strings.HasSuffix(content, "\n") {
		n++
	}
	return n
}
