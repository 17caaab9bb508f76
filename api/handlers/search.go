// ABOUTME: Search handlers for the Huma API
// ABOUTME: Provides endpoints for article search, external fetch and journal feeds

package handlers

import (
	"context"
	"net/http"

	"marginalia-api/api/dto/requests"
	"marginalia-api/api/dto/responses"
	"marginalia-api/core/domain"
	"github.com/danielgtaylor/huma/v2"
)

// SearchService interface defines the methods needed from the search service
type SearchService interface {
	SearchArticles(ctx context.Context, query string) ([]domain.SearchSuggestion, error)
	FetchArticle(ctx context.Context, source, id, title string) (*domain.Article, error)
	DiscoverJournalFeed(ctx context.Context, feedURL string) ([]domain.SearchSuggestion, error)
}

// SearchHandler handles search-related HTTP requests
type SearchHandler struct {
	searchService SearchService
}

// NewSearchHandler creates a new search handler
func NewSearchHandler(searchService SearchService) *SearchHandler {
	return &SearchHandler{
		searchService: searchService,
	}
}

// RegisterRoutes registers all search-related routes
func (h *SearchHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "searchArticles",
		Method:      http.MethodGet,
		Path:        "/search",
		Summary:     "Search for articles",
		Description: "Searches the local library and external sources, returning deduplicated suggestions",
		Tags:        []string{"Search"},
	}, h.SearchArticles)

	huma.Register(api, huma.Operation{
		OperationID: "fetchArticle",
		Method:      http.MethodPost,
		Path:        "/articles/fetch",
		Summary:     "Fetch an article from an external source",
		Description: "Retrieves the full article for a search suggestion and saves it",
		Tags:        []string{"Search"},
	}, h.FetchArticle)

	huma.Register(api, huma.Operation{
		OperationID: "discoverJournalFeed",
		Method:      http.MethodGet,
		Path:        "/journal/feed",
		Summary:     "List articles from a journal feed",
		Description: "Parses an RSS/Atom journal feed and returns its entries as suggestions",
		Tags:        []string{"Search"},
	}, h.DiscoverJournalFeed)
}

// SearchArticlesInput defines the input for the SearchArticles operation
type SearchArticlesInput struct {
	Query string `query:"q" required:"true" minLength:"2" maxLength:"100" doc:"Search query"`
}

// SearchArticlesOutput defines the output for the SearchArticles operation
type SearchArticlesOutput struct {
	Body responses.SearchResponse
}

// SearchArticles handles the GET /search endpoint
func (h *SearchHandler) SearchArticles(ctx context.Context, input *SearchArticlesInput) (*SearchArticlesOutput, error) {
	suggestions, err := h.searchService.SearchArticles(ctx, input.Query)
	if err != nil {
		return nil, toHumaError(err)
	}

	return &SearchArticlesOutput{
		Body: responses.SearchResponse{Suggestions: suggestions},
	}, nil
}

// FetchArticleInput defines the input for the FetchArticle operation
type FetchArticleInput struct {
	Body requests.FetchArticleRequest
}

// FetchArticleOutput defines the output for the FetchArticle operation
type FetchArticleOutput struct {
	Body domain.Article
}

// FetchArticle handles the POST /articles/fetch endpoint
func (h *SearchHandler) FetchArticle(ctx context.Context, input *FetchArticleInput) (*FetchArticleOutput, error) {
	article, err := h.searchService.FetchArticle(ctx, input.Body.Source, input.Body.ID, input.Body.Title)
	if err != nil {
		return nil, toHumaError(err)
	}

	return &FetchArticleOutput{
		Body: *article,
	}, nil
}

// DiscoverJournalFeedInput defines the input for the DiscoverJournalFeed operation
type DiscoverJournalFeedInput struct {
	URL string `query:"url" required:"true" format:"uri" doc:"Journal feed URL"`
}

// DiscoverJournalFeedOutput defines the output for the DiscoverJournalFeed operation
type DiscoverJournalFeedOutput struct {
	Body responses.SearchResponse
}

// DiscoverJournalFeed handles the GET /journal/feed endpoint
func (h *SearchHandler) DiscoverJournalFeed(ctx context.Context, input *DiscoverJournalFeedInput) (*DiscoverJournalFeedOutput, error) {
	suggestions, err := h.searchService.DiscoverJournalFeed(ctx, input.URL)
	if err != nil {
		return nil, toHumaError(err)
	}

	return &DiscoverJournalFeedOutput{
		Body: responses.SearchResponse{Suggestions: suggestions},
	}, nil
}
