// ABOUTME: Search domain models for article discovery results
// ABOUTME: Defines suggestion structures aggregated from local and external sources

package domain

// Article sources
const (
	SourceLocal           = "local"
	SourcePubMed          = "pubmed"
	SourceMedRxiv         = "medrxiv"
	SourceSemanticScholar = "semantic_scholar"
	SourceWikipedia       = "wikipedia"
	SourceJournal         = "journal"
	SourceImport          = "import"
)

// SearchSuggestion represents a candidate article surfaced by search
type SearchSuggestion struct {
	// ID identifies the article within its source (PMID, DOI, page title)
	ID string `json:"id"`

	// Title is the article title
	Title string `json:"title"`

	// Source is the origin of the suggestion
	Source string `json:"source"`

	// URL links to the article when the source provides one
	URL string `json:"url,omitempty"`

	// IsDownloaded reports whether a download with the same title exists
	IsDownloaded bool `json:"isDownloaded"`
}
