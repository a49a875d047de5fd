package repair

import (
	"fmt"
	"os"
	"strings"
)

// Replacement is one literal before/after text pair applied to the whole
// document. Old typically spans the line break of a known split; matching is
// byte for byte, so any drift in the surrounding text (indentation included)
// means the pair silently does nothing.
type Replacement struct {
	Old string
	New string
}

// applyReplacements substitutes every occurrence of each pair in content and
// reports how many occurrences were replaced in total.
func applyReplacements(content string, fixes []Replacement) (string, int) {
	count := 0
	for _, fix := range fixes {
		n := strings.Count(content, fix.Old)
		if n == 0 {
			continue
		}
		content = strings.ReplaceAll(content, fix.Old, fix.New)
		count += n
	}
	return content, count
}

// ReplaceFile loads the file at path as one string, applies the literal
// replacements, and writes the result back in place. Content that matches no
// pair is written back unchanged; that is not an error.
func ReplaceFile(path string, fixes []Replacement) (*Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	content := string(data)

	res := &Result{
		Path:        path,
		LinesBefore: lineCount(content),
		OldHash:     contentHash(content),
	}

	fixedContent, n := applyReplacements(content, fixes)

	res.Replacements = n
	res.LinesAfter = lineCount(fixedContent)
	res.NewHash = contentHash(fixedContent)
	res.Changed = res.NewHash != res.OldHash

	if err := os.WriteFile(path, []byte(fixedContent), 0644); err != nil {
		return nil, fmt.Errorf("write %s: %w", path, err)
	}
	return res, nil
}
