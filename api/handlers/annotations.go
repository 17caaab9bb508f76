// ABOUTME: Annotation handlers for the Huma API
// ABOUTME: CRUD endpoints for highlights, thoughts, underlines, sticky notes and bookmarks

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

// AnnotationHandler handles annotation-related HTTP requests
type AnnotationHandler struct {
	annotationService interfaces.AnnotationService
}

// NewAnnotationHandler creates a new annotation handler
func NewAnnotationHandler(annotationService interfaces.AnnotationService) *AnnotationHandler {
	return &AnnotationHandler{
		annotationService: annotationService,
	}
}

// RegisterRoutes registers all annotation-related routes
func (h *AnnotationHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "listAnnotations",
		Method:      http.MethodGet,
		Path:        "/downloads/{downloadId}/annotations",
		Summary:     "List all annotations for a download",
		Description: "Returns every annotation layer for the download in creation order",
		Tags:        []string{"Annotations"},
	}, h.ListAnnotations)

	huma.Register(api, huma.Operation{
		OperationID: "createHighlight",
		Method:      http.MethodPost,
		Path:        "/downloads/{downloadId}/highlights",
		Summary:     "Create a highlight",
		Tags:        []string{"Annotations"},
	}, h.CreateHighlight)

	huma.Register(api, huma.Operation{
		OperationID: "deleteHighlight",
		Method:      http.MethodDelete,
		Path:        "/highlights/{id}",
		Summary:     "Delete a highlight",
		Tags:        []string{"Annotations"},
	}, h.DeleteHighlight)

	huma.Register(api, huma.Operation{
		OperationID: "createThought",
		Method:      http.MethodPost,
		Path:        "/downloads/{downloadId}/thoughts",
		Summary:     "Create a thought",
		Tags:        []string{"Annotations"},
	}, h.CreateThought)

	huma.Register(api, huma.Operation{
		OperationID: "updateThought",
		Method:      http.MethodPatch,
		Path:        "/thoughts/{id}",
		Summary:     "Edit a thought's text",
		Description: "Replaces the comment text. The anchor snippet never changes.",
		Tags:        []string{"Annotations"},
	}, h.UpdateThought)

	huma.Register(api, huma.Operation{
		OperationID: "deleteThought",
		Method:      http.MethodDelete,
		Path:        "/thoughts/{id}",
		Summary:     "Delete a thought",
		Tags:        []string{"Annotations"},
	}, h.DeleteThought)

	huma.Register(api, huma.Operation{
		OperationID: "createAnnotation",
		Method:      http.MethodPost,
		Path:        "/downloads/{downloadId}/annotations",
		Summary:     "Create an underline or sticky note",
		Tags:        []string{"Annotations"},
	}, h.CreateAnnotation)

	huma.Register(api, huma.Operation{
		OperationID: "updateAnnotation",
		Method:      http.MethodPatch,
		Path:        "/annotations/{id}",
		Summary:     "Edit a sticky note's body",
		Tags:        []string{"Annotations"},
	}, h.UpdateAnnotation)

	huma.Register(api, huma.Operation{
		OperationID: "deleteAnnotation",
		Method:      http.MethodDelete,
		Path:        "/annotations/{id}",
		Summary:     "Delete an underline or sticky note",
		Tags:        []string{"Annotations"},
	}, h.DeleteAnnotation)

	huma.Register(api, huma.Operation{
		OperationID: "createBookmark",
		Method:      http.MethodPost,
		Path:        "/downloads/{downloadId}/bookmarks",
		Summary:     "Create a bookmark",
		Description: "Saving a bookmark with the same text replaces the existing one",
		Tags:        []string{"Annotations"},
	}, h.CreateBookmark)

	huma.Register(api, huma.Operation{
		OperationID: "deleteBookmark",
		Method:      http.MethodDelete,
		Path:        "/bookmarks/{id}",
		Summary:     "Delete a bookmark",
		Tags:        []string{"Annotations"},
	}, h.DeleteBookmark)
}

// ListAnnotationsInput defines the input for the ListAnnotations operation
type ListAnnotationsInput struct {
	DownloadID string `path:"downloadId" doc:"Download ID"`
}

// ListAnnotationsOutput defines the output for the ListAnnotations operation
type ListAnnotationsOutput struct {
	Body responses.AnnotationBundleResponse
}

// ListAnnotations handles the GET /downloads/{downloadId}/annotations endpoint
func (h *AnnotationHandler) ListAnnotations(ctx context.Context, input *ListAnnotationsInput) (*ListAnnotationsOutput, error) {
	highlights, err := h.annotationService.ListHighlights(ctx, input.DownloadID)
	if err != nil {
		return nil, toHumaError(err)
	}

	thoughts, err := h.annotationService.ListThoughts(ctx, input.DownloadID)
	if err != nil {
		return nil, toHumaError(err)
	}

	annotations, err := h.annotationService.ListAnnotations(ctx, input.DownloadID)
	if err != nil {
		return nil, toHumaError(err)
	}

	bookmarks, err := h.annotationService.ListBookmarks(ctx, input.DownloadID)
	if err != nil {
		return nil, toHumaError(err)
	}

	return &ListAnnotationsOutput{
		Body: responses.AnnotationBundleResponse{
			Highlights:  highlights,
			Thoughts:    thoughts,
			Annotations: annotations,
			Bookmarks:   bookmarks,
		},
	}, nil
}

// CreateHighlightInput defines the input for the CreateHighlight operation
type CreateHighlightInput struct {
	DownloadID string `path:"downloadId" doc:"Download ID"`
	Body       requests.CreateHighlightRequest
}

// CreateHighlightOutput defines the output for the CreateHighlight operation
type CreateHighlightOutput struct {
	Body domain.Highlight
}

// CreateHighlight handles the POST /downloads/{downloadId}/highlights endpoint
func (h *AnnotationHandler) CreateHighlight(ctx context.Context, input *CreateHighlightInput) (*CreateHighlightOutput, error) {
	highlight, err := h.annotationService.CreateHighlight(ctx, &domain.Highlight{
		DownloadID:  input.DownloadID,
		Text:        input.Body.Text,
		Color:       input.Body.Color,
		StartOffset: input.Body.StartOffset,
		EndOffset:   input.Body.EndOffset,
	})
	if err != nil {
		return nil, toHumaError(err)
	}

	return &CreateHighlightOutput{Body: *highlight}, nil
}

// DeleteByIDInput defines the input for delete operations keyed by ID
type DeleteByIDInput struct {
	ID string `path:"id" doc:"Entity ID"`
}

// DeleteHighlight handles the DELETE /highlights/{id} endpoint
func (h *AnnotationHandler) DeleteHighlight(ctx context.Context, input *DeleteByIDInput) (*struct{}, error) {
	if err := h.annotationService.DeleteHighlight(ctx, input.ID); err != nil {
		return nil, toHumaError(err)
	}
	return &struct{}{}, nil
}

// CreateThoughtInput defines the input for the CreateThought operation
type CreateThoughtInput struct {
	DownloadID string `path:"downloadId" doc:"Download ID"`
	Body       requests.CreateThoughtRequest
}

// CreateThoughtOutput defines the output for the CreateThought operation
type CreateThoughtOutput struct {
	Body domain.Thought
}

// CreateThought handles the POST /downloads/{downloadId}/thoughts endpoint
func (h *AnnotationHandler) CreateThought(ctx context.Context, input *CreateThoughtInput) (*CreateThoughtOutput, error) {
	thought, err := h.annotationService.CreateThought(ctx, &domain.Thought{
		DownloadID:      input.DownloadID,
		HighlightID:     input.Body.HighlightID,
		HighlightedText: input.Body.HighlightedText,
		Text:            input.Body.Text,
		Position:        input.Body.Position,
	})
	if err != nil {
		return nil, toHumaError(err)
	}

	return &CreateThoughtOutput{Body: *thought}, nil
}

// UpdateThoughtInput defines the input for the UpdateThought operation
type UpdateThoughtInput struct {
	ID   string `path:"id" doc:"Thought ID"`
	Body requests.UpdateThoughtRequest
}

// UpdateThought handles the PATCH /thoughts/{id} endpoint
func (h *AnnotationHandler) UpdateThought(ctx context.Context, input *UpdateThoughtInput) (*struct{}, error) {
	if err := h.annotationService.UpdateThought(ctx, input.ID, input.Body.Text); err != nil {
		return nil, toHumaError(err)
	}
	return &struct{}{}, nil
}

// DeleteThought handles the DELETE /thoughts/{id} endpoint
func (h *AnnotationHandler) DeleteThought(ctx context.Context, input *DeleteByIDInput) (*struct{}, error) {
	if err := h.annotationService.DeleteThought(ctx, input.ID); err != nil {
		return nil, toHumaError(err)
	}
	return &struct{}{}, nil
}

// CreateAnnotationInput defines the input for the CreateAnnotation operation
type CreateAnnotationInput struct {
	DownloadID string `path:"downloadId" doc:"Download ID"`
	Body       requests.CreateAnnotationRequest
}

// CreateAnnotationOutput defines the output for the CreateAnnotation operation
type CreateAnnotationOutput struct {
	Body domain.Annotation
}

// CreateAnnotation handles the POST /downloads/{downloadId}/annotations endpoint
func (h *AnnotationHandler) CreateAnnotation(ctx context.Context, input *CreateAnnotationInput) (*CreateAnnotationOutput, error) {
	annotation, err := h.annotationService.CreateAnnotation(ctx, &domain.Annotation{
		DownloadID: input.DownloadID,
		Type:       input.Body.Type,
		Text:       input.Body.Text,
		Content:    input.Body.Content,
		Color:      input.Body.Color,
		Position:   input.Body.Position,
	})
	if err != nil {
		return nil, toHumaError(err)
	}

	return &CreateAnnotationOutput{Body: *annotation}, nil
}

// UpdateAnnotationInput defines the input for the UpdateAnnotation operation
type UpdateAnnotationInput struct {
	ID   string `path:"id" doc:"Annotation ID"`
	Body requests.UpdateAnnotationRequest
}

// UpdateAnnotation handles the PATCH /annotations/{id} endpoint
func (h *AnnotationHandler) UpdateAnnotation(ctx context.Context, input *UpdateAnnotationInput) (*struct{}, error) {
	if err := h.annotationService.UpdateAnnotation(ctx, input.ID, input.Body.Content); err != nil {
		return nil, toHumaError(err)
	}
	return &struct{}{}, nil
}

// DeleteAnnotation handles the DELETE /annotations/{id} endpoint
func (h *AnnotationHandler) DeleteAnnotation(ctx context.Context, input *DeleteByIDInput) (*struct{}, error) {
	if err := h.annotationService.DeleteAnnotation(ctx, input.ID); err != nil {
		return nil, toHumaError(err)
	}
	return &struct{}{}, nil
}

// CreateBookmarkInput defines the input for the CreateBookmark operation
type CreateBookmarkInput struct {
	DownloadID string `path:"downloadId" doc:"Download ID"`
	Body       requests.CreateBookmarkRequest
}

// CreateBookmarkOutput defines the output for the CreateBookmark operation
type CreateBookmarkOutput struct {
	Body domain.Bookmark
}

// CreateBookmark handles the POST /downloads/{downloadId}/bookmarks endpoint
func (h *AnnotationHandler) CreateBookmark(ctx context.Context, input *CreateBookmarkInput) (*CreateBookmarkOutput, error) {
	bookmark, err := h.annotationService.CreateBookmark(ctx, &domain.Bookmark{
		DownloadID: input.DownloadID,
		Text:       input.Body.Text,
		Position:   input.Body.Position,
	})
	if err != nil {
		return nil, toHumaError(err)
	}

	return &CreateBookmarkOutput{Body: *bookmark}, nil
}

// DeleteBookmark handles the DELETE /bookmarks/{id} endpoint
func (h *AnnotationHandler) DeleteBookmark(ctx context.Context, input *DeleteByIDInput) (*struct{}, error) {
	if err := h.annotationService.DeleteBookmark(ctx, input.ID); err != nil {
		return nil, toHumaError(err)
	}
	return &struct{}{}, nil
}
