// ABOUTME: Request DTOs for article search, fetch, download and import endpoints
// ABOUTME: Defines the structures accepted by the article-facing API

package requests

// FetchArticleRequest asks the server to fetch an article from an external
// source and persist it to the library
type FetchArticleRequest struct {
	// Source is the external source the suggestion came from
	Source string `json:"source" required:"true" enum:"pubmed,medrxiv,semantic_scholar,wikipedia" doc:"External source to fetch from"`

	// ID identifies the article within its source (PMID, DOI, page title)
	ID string `json:"id" required:"true" doc:"Source-specific article identifier"`

	// Title is the suggestion title, used by sources that key on it
	Title string `json:"title,omitempty" doc:"Article title from the suggestion"`
}

// DownloadArticleRequest saves an already-fetched article to the library
type DownloadArticleRequest struct {
	ArticleID string `json:"articleId" required:"true" doc:"ID of the article to download"`
}

// ImportArticleRequest imports an arbitrary web page as a download
type ImportArticleRequest struct {
	URL string `json:"url" required:"true" format:"uri" example:"https://example.com/article" doc:"Page URL to import"`
}
