// ABOUTME: Request DTOs for annotation API endpoints
// ABOUTME: Covers highlights, thoughts, underlines, sticky notes and bookmarks

package requests

// CreateHighlightRequest creates a color highlight over a text selection
type CreateHighlightRequest struct {
	// Text is the anchor snippet captured from the user's selection
	Text string `json:"text" required:"true" doc:"Selected text to anchor the highlight to"`

	// Color is one of the highlight palette colors
	Color string `json:"color" required:"true" enum:"yellow,green,red,blue,orange,purple" doc:"Highlight color"`

	StartOffset int `json:"startOffset,omitempty" minimum:"0" doc:"Selection start offset within its paragraph"`
	EndOffset   int `json:"endOffset,omitempty" minimum:"0" doc:"Selection end offset within its paragraph"`
}

// CreateThoughtRequest attaches a margin comment to a text selection
type CreateThoughtRequest struct {
	// HighlightedText is the anchor snippet and cannot be changed later
	HighlightedText string `json:"highlightedText" required:"true" doc:"Selected text to anchor the thought to"`

	// Text is the comment body
	Text string `json:"text" required:"true" doc:"Thought text"`

	// HighlightID optionally links the thought to an existing highlight
	HighlightID string `json:"highlightId,omitempty" doc:"Highlight created alongside this thought"`

	Position int `json:"position,omitempty" minimum:"0" doc:"Paragraph index of the selection"`
}

// CreateAnnotationRequest creates an underline or sticky note
type CreateAnnotationRequest struct {
	// Type selects the annotation kind
	Type string `json:"type" required:"true" enum:"underline,sticky_note" doc:"Annotation kind"`

	// Text is the anchor snippet and cannot be changed later
	Text string `json:"text" required:"true" doc:"Selected text to anchor the annotation to"`

	// Content is required for sticky notes and ignored for underlines
	Content string `json:"content,omitempty" doc:"Sticky note body"`

	// Color is the sticky-note background color
	Color string `json:"color,omitempty" enum:",yellow,pink,blue,green,purple" doc:"Sticky note color"`

	Position int `json:"position,omitempty" minimum:"0" doc:"Paragraph index of the selection"`
}

// CreateBookmarkRequest marks a reading position
type CreateBookmarkRequest struct {
	// Text is the snippet at the reading position. Saving a bookmark with
	// the same text replaces the existing one.
	Text string `json:"text" required:"true" doc:"Selected text marking the position"`

	Position int `json:"position,omitempty" minimum:"0" doc:"Paragraph index of the selection"`
}

// UpdateThoughtRequest replaces a thought's comment text
type UpdateThoughtRequest struct {
	Text string `json:"text" required:"true" doc:"New thought text"`
}

// UpdateAnnotationRequest replaces a sticky note's body
type UpdateAnnotationRequest struct {
	Content string `json:"content" required:"true" doc:"New sticky note body"`
}
