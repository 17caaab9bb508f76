// ABOUTME: Segment domain model for block-level units of parsed article content
// ABOUTME: Segments are derived on every render and never persisted or mutated

package domain

// Segment kinds
const (
	SegmentHeading    = "heading"
	SegmentSubheading = "subheading"
	SegmentParagraph  = "paragraph"
	SegmentMedia      = "media"
)

// Segment is one block-level unit of parsed article content.
// Concatenating segment texts preserves the reading order of the source.
type Segment struct {
	// Type is one of heading, subheading, paragraph, media
	Type string `json:"type"`

	// Text is the plain text used as the annotation-matching target.
	// Media segments carry no matchable text.
	Text string `json:"text"`

	// HTML is the fallback markup used when no annotation applies
	HTML string `json:"html"`
}

// Annotatable reports whether the segment participates in annotation matching.
// Headings, subheadings and media render their fallback markup unchanged.
func (s Segment) Annotatable() bool {
	return s.Type == SegmentParagraph
}

// RenderedSegment is a segment after annotation composition
type RenderedSegment struct {
	Type string `json:"type"`
	HTML string `json:"html"`
}

// ComposedArticle is the result of rendering an article with its annotations
type ComposedArticle struct {
	// Segments holds the rendered segments in document order
	Segments []RenderedSegment `json:"segments"`

	// TotalSearchMatches counts search-term occurrences across the whole
	// document, for prev/next navigation
	TotalSearchMatches int `json:"totalSearchMatches"`

	// DroppedAnchors counts annotations whose anchor snippet was not found
	// in any segment. Not an error; reported for diagnostics.
	DroppedAnchors int `json:"droppedAnchors,omitempty"`
}
