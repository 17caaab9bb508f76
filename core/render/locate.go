// ABOUTME: Snippet locator finds anchor-snippet occurrences within segment text
// ABOUTME: Pure function over explicit consumed ranges, no shared scan state

package render

import "strings"

// Range is a half-open [Start, End) character range within a segment's text
type Range struct {
	Start int
	End   int
}

// Overlaps reports whether two ranges intersect
func (r Range) Overlaps(other Range) bool {
	return r.Start < other.End && other.Start < r.End
}

// Contains reports whether r fully encloses other (equal ranges count)
func (r Range) Contains(other Range) bool {
	return r.Start <= other.Start && other.End <= r.End
}

// Locate returns all non-overlapping occurrences of snippet in text, in
// order, skipping any occurrence that intersects a consumed range. Matching
// is literal and case-sensitive. Zero-length or whitespace-only snippets
// are never matched.
func Locate(text, snippet string, consumed []Range) []Range {
	if strings.TrimSpace(snippet) == "" {
		return nil
	}

	var matches []Range
	pos := 0
	for pos <= len(text)-len(snippet) {
		idx := strings.Index(text[pos:], snippet)
		if idx < 0 {
			break
		}

		candidate := Range{Start: pos + idx, End: pos + idx + len(snippet)}
		if intersectsAny(candidate, consumed) {
			// Try again past the start of this occurrence.
			pos = candidate.Start + 1
			continue
		}

		matches = append(matches, candidate)
		pos = candidate.End
	}

	return matches
}

func intersectsAny(r Range, ranges []Range) bool {
	for _, c := range ranges {
		if r.Overlaps(c) {
			return true
		}
	}
	return false
}
