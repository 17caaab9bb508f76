// ABOUTME: JumpToAnchor locates an annotation's anchor within the segment list
// ABOUTME: Returns the segment index and character offset for scroll targeting

package session

import (
	"strings"

	"marginalia-api/core/domain"
)

// Anchor is the position of an annotation's snippet within an article
type Anchor struct {
	SegmentIndex int
	Offset       int
}

// JumpToAnchor finds the first annotatable segment containing the snippet.
// The offset is the byte position of the snippet within the segment text.
func JumpToAnchor(segments []domain.Segment, snippet string) (Anchor, bool) {
	if strings.TrimSpace(snippet) == "" {
		return Anchor{}, false
	}

	for i, seg := range segments {
		if !seg.Annotatable() {
			continue
		}
		if off := strings.Index(seg.Text, snippet); off >= 0 {
			return Anchor{SegmentIndex: i, Offset: off}, true
		}
	}

	return Anchor{}, false
}
