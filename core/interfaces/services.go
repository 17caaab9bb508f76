// ABOUTME: Service interfaces for the core business logic
// ABOUTME: Defines contracts for services used throughout the application

package interfaces

import (
	"context"

	"marginalia-api/core/domain"
)

// RenderOptions controls search highlighting and the font-class container
type RenderOptions struct {
	// SearchTerm is the live search text; empty disables the search layer
	SearchTerm string

	// CurrentSearchIndex selects which 0-based search match carries the
	// current-match emphasis
	CurrentSearchIndex int

	// FontFamily is applied as a font-<name> class on rendered segments
	FontFamily string
}

// RenderService composes an article's content with its annotations
type RenderService interface {
	// ComposeArticle renders content into segments with all annotation
	// layers applied. The result is byte-identical for identical inputs.
	ComposeArticle(content string, highlights []domain.Highlight, thoughts []domain.Thought,
		annotations []domain.Annotation, opts RenderOptions) domain.ComposedArticle
}

// AnnotationService manages annotation entities for a download
type AnnotationService interface {
	CreateHighlight(ctx context.Context, h *domain.Highlight) (*domain.Highlight, error)
	ListHighlights(ctx context.Context, downloadID string) ([]domain.Highlight, error)
	DeleteHighlight(ctx context.Context, id string) error

	CreateThought(ctx context.Context, t *domain.Thought) (*domain.Thought, error)
	ListThoughts(ctx context.Context, downloadID string) ([]domain.Thought, error)
	UpdateThought(ctx context.Context, id string, text string) error
	DeleteThought(ctx context.Context, id string) error

	CreateAnnotation(ctx context.Context, a *domain.Annotation) (*domain.Annotation, error)
	ListAnnotations(ctx context.Context, downloadID string) ([]domain.Annotation, error)
	UpdateAnnotation(ctx context.Context, id string, content string) error
	DeleteAnnotation(ctx context.Context, id string) error

	CreateBookmark(ctx context.Context, b *domain.Bookmark) (*domain.Bookmark, error)
	ListBookmarks(ctx context.Context, downloadID string) ([]domain.Bookmark, error)
	DeleteBookmark(ctx context.Context, id string) error
}

// AccentColorService extracts a prominent color from thumbnail images
type AccentColorService interface {
	// ExtractColor returns the dominant color of the image as a hex string
	ExtractColor(ctx context.Context, imageURL string) (string, error)
}
