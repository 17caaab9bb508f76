// ABOUTME: Request DTOs for article composition endpoints
// ABOUTME: Carries the search layer and font options into a render pass

package requests

// ComposeArticleRequest controls a render pass over a download
type ComposeArticleRequest struct {
	// SearchTerm enables the live search layer when non-empty
	SearchTerm string `json:"searchTerm,omitempty" doc:"Text to highlight as search matches"`

	// CurrentSearchIndex selects which match carries the current-match emphasis
	CurrentSearchIndex int `json:"currentSearchIndex,omitempty" minimum:"0" doc:"0-based index of the current search match"`

	// FontFamily overrides the saved preference for this render
	FontFamily string `json:"fontFamily,omitempty" doc:"Font family class applied to rendered paragraphs"`
}
