package repair

import (
	"crypto/sha256"
	"fmt"
)

// Join records one repaired split: the 1-indexed number of the first physical
// line of the pair in the input, and the merged line that replaced the pair.
type Join struct {
	Line   int
	Merged string
}

// Result reports one repair run over a single file. Joins is populated by the
// line-scan strategy, Replacements by the literal strategy; the rest is common
// to both.
type Result struct {
	Path         string
	LinesBefore  int
	LinesAfter   int
	Joins        []Join
	Replacements int
	OldHash      string
	NewHash      string
	Changed      bool
}

// contentHash returns the SHA-256 hex digest of content.
func contentHash(content string) string {
	sum := sha256.Sum256([]byte(content))
	return fmt.Sprintf("%x", sum)
}
