// ABOUTME: Response DTOs for search, library and article endpoints
// ABOUTME: Wraps domain types into the shapes the reader client consumes

package responses

import "marginalia-api/core/domain"

// SearchResponse lists suggestions across local and external sources
type SearchResponse struct {
	Suggestions []domain.SearchSuggestion `json:"suggestions"`
}

// DownloadListResponse lists the saved library, newest first
type DownloadListResponse struct {
	Downloads []domain.Download `json:"downloads"`
}
