// ABOUTME: Response DTOs for annotation API endpoints
// ABOUTME: Bundles all annotation layers for a download into one payload

package responses

import "marginalia-api/core/domain"

// AnnotationBundleResponse holds every annotation layer for one download
type AnnotationBundleResponse struct {
	Highlights  []domain.Highlight  `json:"highlights"`
	Thoughts    []domain.Thought    `json:"thoughts"`
	Annotations []domain.Annotation `json:"annotations"`
	Bookmarks   []domain.Bookmark   `json:"bookmarks"`
}

// ExportResponse carries a Markdown rendering of a download
type ExportResponse struct {
	Markdown string `json:"markdown"`
}
