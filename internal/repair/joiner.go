package repair

import (
	"strings"
	"unicode"
)

// SplitPattern identifies a statement that was broken across two physical
// lines. First and Second are literal, case-sensitive substrings: a line
// containing First immediately followed by a line containing Second marks one
// split point. A line that already contains both is a complete statement and
// is never touched, which keeps the pass idempotent.
type SplitPattern struct {
	First  string
	Second string
}

// JoinLines rejoins every split occurrence of pat in lines.
//
// The scan is a single pass in file order. At each match the pair is replaced
// by one line built from the first line with trailing whitespace removed, a
// single space, and the second line with leading whitespace removed; the
// consumed second line is skipped, not re-examined. All other lines pass
// through unchanged and in order.
func JoinLines(lines []string, pat SplitPattern) ([]string, []Join) {
	fixed := make([]string, 0, len(lines))
	var joins []Join

	for i := 0; i < len(lines); i++ {
		line := lines[i]

		if strings.Contains(line, pat.First) {
			if strings.Contains(line, pat.Second) {
				// Already one logical line, keep it.
				fixed = append(fixed, line)
				continue
			}
			if i+1 < len(lines) && strings.Contains(lines[i+1], pat.Second) {
				merged := stripTrailing(line) + " " + stripLeading(lines[i+1])
				fixed = append(fixed, merged)
				joins = append(joins, Join{Line: i + 1, Merged: merged})
				i++ // skip the consumed second line
				continue
			}
		}

		fixed = append(fixed, line)
	}

	return fixed, joins
}

// JoinFile loads the file at path, rejoins split occurrences of pat, and
// writes the result back in place. The file is rewritten even when no join
// was needed.
func JoinFile(path string, pat SplitPattern) (*Result, error) {
	doc, err := LoadDocument(path)
	if err != nil {
		return nil, err
	}

	res := &Result{
		Path:        path,
		LinesBefore: doc.LineCount(),
		OldHash:     doc.Hash(),
	}

	lines, joins := JoinLines(doc.Lines(), pat)
	doc.SetLines(lines)

	res.Joins = joins
	res.LinesAfter = doc.LineCount()
	res.NewHash = doc.Hash()
	res.Changed = res.NewHash != res.OldHash

	if err := doc.Save(); err != nil {
		return nil, err
	}
	return res, nil
}

func stripTrailing(s string) string {
	return strings.TrimRightFunc(s, unicode.IsSpace)
}

func stripLeading(s string) string {
	return strings.TrimLeftFunc(s, unicode.IsSpace)
}
