// ABOUTME: Render handlers for the Huma API
// ABOUTME: Composes downloads with their annotations and exports them as Markdown

package handlers

import (
	"context"
	"net/http"

	"marginalia-api/api/dto/requests"
	"marginalia-api/api/dto/responses"
	"marginalia-api/core/domain"
	"marginalia-api/core/interfaces"
	"github.com/danielgtaylor/huma/v2"
)

// PreferenceService interface defines the methods needed from the preference service
type PreferenceService interface {
	Get(ctx context.Context) (*domain.Preferences, error)
	Update(ctx context.Context, prefs *domain.Preferences) (*domain.Preferences, error)
}

// ExportService interface defines the methods needed from the export service
type ExportService interface {
	ExportMarkdown(ctx context.Context, downloadID string, includeAnnotations bool) (string, error)
}

// RenderHandler handles article composition requests
type RenderHandler struct {
	articleService    ArticleService
	annotationService interfaces.AnnotationService
	renderService     interfaces.RenderService
	preferenceService PreferenceService
	exportService     ExportService
}

// NewRenderHandler creates a new render handler
func NewRenderHandler(
	articleService ArticleService,
	annotationService interfaces.AnnotationService,
	renderService interfaces.RenderService,
	preferenceService PreferenceService,
	exportService ExportService,
) *RenderHandler {
	return &RenderHandler{
		articleService:    articleService,
		annotationService: annotationService,
		renderService:     renderService,
		preferenceService: preferenceService,
		exportService:     exportService,
	}
}

// RegisterRoutes registers all render-related routes
func (h *RenderHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "composeArticle",
		Method:      http.MethodPost,
		Path:        "/downloads/{id}/compose",
		Summary:     "Render a download with its annotations",
		Description: "Composes the article content with every annotation layer and the optional search layer applied",
		Tags:        []string{"Render"},
	}, h.ComposeArticle)

	huma.Register(api, huma.Operation{
		OperationID: "exportMarkdown",
		Method:      http.MethodGet,
		Path:        "/downloads/{id}/export",
		Summary:     "Export a download as Markdown",
		Tags:        []string{"Render"},
	}, h.ExportMarkdown)
}

// ComposeArticleInput defines the input for the ComposeArticle operation
type ComposeArticleInput struct {
	ID   string `path:"id" doc:"Download ID"`
	Body requests.ComposeArticleRequest
}

// ComposeArticleOutput defines the output for the ComposeArticle operation
type ComposeArticleOutput struct {
	Body domain.ComposedArticle
}

// ComposeArticle handles the POST /downloads/{id}/compose endpoint
func (h *RenderHandler) ComposeArticle(ctx context.Context, input *ComposeArticleInput) (*ComposeArticleOutput, error) {
	download, err := h.articleService.GetDownload(ctx, input.ID)
	if err != nil {
		return nil, toHumaError(err)
	}

	highlights, err := h.annotationService.ListHighlights(ctx, input.ID)
	if err != nil {
		return nil, toHumaError(err)
	}

	thoughts, err := h.annotationService.ListThoughts(ctx, input.ID)
	if err != nil {
		return nil, toHumaError(err)
	}

	annotations, err := h.annotationService.ListAnnotations(ctx, input.ID)
	if err != nil {
		return nil, toHumaError(err)
	}

	fontFamily := input.Body.FontFamily
	if fontFamily == "" {
		// Fall back to the saved preference; composition proceeds on the
		// default font if preferences are unavailable.
		if prefs, err := h.preferenceService.Get(ctx); err == nil {
			fontFamily = prefs.FontFamily
		}
	}

	composed := h.renderService.ComposeArticle(download.Content, highlights, thoughts, annotations,
		interfaces.RenderOptions{
			SearchTerm:         input.Body.SearchTerm,
			CurrentSearchIndex: input.Body.CurrentSearchIndex,
			FontFamily:         fontFamily,
		})

	return &ComposeArticleOutput{Body: composed}, nil
}

// ExportMarkdownInput defines the input for the ExportMarkdown operation
type ExportMarkdownInput struct {
	ID                 string `path:"id" doc:"Download ID"`
	IncludeAnnotations bool   `query:"include_annotations" doc:"Append an annotations appendix"`
}

// ExportMarkdownOutput defines the output for the ExportMarkdown operation
type ExportMarkdownOutput struct {
	Body responses.ExportResponse
}

// ExportMarkdown handles the GET /downloads/{id}/export endpoint
func (h *RenderHandler) ExportMarkdown(ctx context.Context, input *ExportMarkdownInput) (*ExportMarkdownOutput, error) {
	markdown, err := h.exportService.ExportMarkdown(ctx, input.ID, input.IncludeAnnotations)
	if err != nil {
		return nil, toHumaError(err)
	}

	return &ExportMarkdownOutput{
		Body: responses.ExportResponse{Markdown: markdown},
	}, nil
}
