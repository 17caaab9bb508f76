// ABOUTME: Library handlers for the Huma API
// ABOUTME: Provides endpoints for downloads, article saving and web imports

package handlers

import (
	"context"
	"net/http"

	"marginalia-api/api/dto/requests"
	"marginalia-api/api/dto/responses"
	"marginalia-api/core/domain"
	"github.com/danielgtaylor/huma/v2"
)

// ArticleService interface defines the methods needed from the article service
type ArticleService interface {
	DownloadArticle(ctx context.Context, articleID string) (*domain.Download, error)
	ImportFromURL(ctx context.Context, pageURL string) (*domain.Download, error)
	GetDownload(ctx context.Context, id string) (*domain.Download, error)
	ListDownloads(ctx context.Context) ([]domain.Download, error)
	DeleteDownload(ctx context.Context, id string) error
}

// ArticleHandler handles library-related HTTP requests
type ArticleHandler struct {
	articleService ArticleService
}

// NewArticleHandler creates a new article handler
func NewArticleHandler(articleService ArticleService) *ArticleHandler {
	return &ArticleHandler{
		articleService: articleService,
	}
}

// RegisterRoutes registers all library-related routes
func (h *ArticleHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "listDownloads",
		Method:      http.MethodGet,
		Path:        "/downloads",
		Summary:     "List the saved library",
		Description: "Returns all downloaded articles, newest first",
		Tags:        []string{"Library"},
	}, h.ListDownloads)

	huma.Register(api, huma.Operation{
		OperationID: "getDownload",
		Method:      http.MethodGet,
		Path:        "/downloads/{id}",
		Summary:     "Get a downloaded article",
		Tags:        []string{"Library"},
	}, h.GetDownload)

	huma.Register(api, huma.Operation{
		OperationID: "downloadArticle",
		Method:      http.MethodPost,
		Path:        "/downloads",
		Summary:     "Save a fetched article to the library",
		Tags:        []string{"Library"},
	}, h.DownloadArticle)

	huma.Register(api, huma.Operation{
		OperationID: "deleteDownload",
		Method:      http.MethodDelete,
		Path:        "/downloads/{id}",
		Summary:     "Delete a downloaded article",
		Description: "Removes the download and every annotation attached to it",
		Tags:        []string{"Library"},
	}, h.DeleteDownload)

	huma.Register(api, huma.Operation{
		OperationID: "importArticle",
		Method:      http.MethodPost,
		Path:        "/import",
		Summary:     "Import a web page as an article",
		Description: "Extracts clean article content from a web page and saves it to the library",
		Tags:        []string{"Library"},
	}, h.ImportArticle)
}

// ListDownloadsOutput defines the output for the ListDownloads operation
type ListDownloadsOutput struct {
	Body responses.DownloadListResponse
}

// ListDownloads handles the GET /downloads endpoint
func (h *ArticleHandler) ListDownloads(ctx context.Context, _ *struct{}) (*ListDownloadsOutput, error) {
	downloads, err := h.articleService.ListDownloads(ctx)
	if err != nil {
		return nil, toHumaError(err)
	}

	return &ListDownloadsOutput{
		Body: responses.DownloadListResponse{Downloads: downloads},
	}, nil
}

// GetDownloadInput defines the input for the GetDownload operation
type GetDownloadInput struct {
	ID string `path:"id" doc:"Download ID"`
}

// GetDownloadOutput defines the output for the GetDownload operation
type GetDownloadOutput struct {
	Body domain.Download
}

// GetDownload handles the GET /downloads/{id} endpoint
func (h *ArticleHandler) GetDownload(ctx context.Context, input *GetDownloadInput) (*GetDownloadOutput, error) {
	download, err := h.articleService.GetDownload(ctx, input.ID)
	if err != nil {
		return nil, toHumaError(err)
	}

	return &GetDownloadOutput{
		Body: *download,
	}, nil
}

// DownloadArticleInput defines the input for the DownloadArticle operation
type DownloadArticleInput struct {
	Body requests.DownloadArticleRequest
}

// DownloadArticleOutput defines the output for the DownloadArticle operation
type DownloadArticleOutput struct {
	Body domain.Download
}

// DownloadArticle handles the POST /downloads endpoint
func (h *ArticleHandler) DownloadArticle(ctx context.Context, input *DownloadArticleInput) (*DownloadArticleOutput, error) {
	download, err := h.articleService.DownloadArticle(ctx, input.Body.ArticleID)
	if err != nil {
		return nil, toHumaError(err)
	}

	return &DownloadArticleOutput{
		Body: *download,
	}, nil
}

// DeleteDownloadInput defines the input for the DeleteDownload operation
type DeleteDownloadInput struct {
	ID string `path:"id" doc:"Download ID"`
}

// DeleteDownload handles the DELETE /downloads/{id} endpoint
func (h *ArticleHandler) DeleteDownload(ctx context.Context, input *DeleteDownloadInput) (*struct{}, error) {
	if err := h.articleService.DeleteDownload(ctx, input.ID); err != nil {
		return nil, toHumaError(err)
	}

	return &struct{}{}, nil
}

// ImportArticleInput defines the input for the ImportArticle operation
type ImportArticleInput struct {
	Body requests.ImportArticleRequest
}

// ImportArticleOutput defines the output for the ImportArticle operation
type ImportArticleOutput struct {
	Body domain.Download
}

// ImportArticle handles the POST /import endpoint
func (h *ArticleHandler) ImportArticle(ctx context.Context, input *ImportArticleInput) (*ImportArticleOutput, error) {
	download, err := h.articleService.ImportFromURL(ctx, input.Body.URL)
	if err != nil {
		return nil, toHumaError(err)
	}

	return &ImportArticleOutput{
		Body: *download,
	}, nil
}
