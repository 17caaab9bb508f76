// ABOUTME: Storage interfaces for persisting domain entities
// ABOUTME: Defines contracts for data persistence operations

package interfaces

import (
	"context"

	"marginalia-api/core/domain"
)

// ArticleStorage defines the interface for fetched-article persistence
type ArticleStorage interface {
	// SaveArticle persists a fetched article
	SaveArticle(ctx context.Context, article *domain.Article) error

	// GetArticle retrieves an article by ID
	GetArticle(ctx context.Context, id string) (*domain.Article, error)

	// SearchArticlesByTitle finds articles whose title contains the query
	SearchArticlesByTitle(ctx context.Context, query string) ([]domain.Article, error)
}

// DownloadStorage defines the interface for saved-article persistence.
// Deleting a download cascades to all annotation entities referencing it.
type DownloadStorage interface {
	SaveDownload(ctx context.Context, download *domain.Download) error
	GetDownload(ctx context.Context, id string) (*domain.Download, error)
	ListDownloads(ctx context.Context) ([]domain.Download, error)
	SearchDownloads(ctx context.Context, query string) ([]domain.Download, error)
	DeleteDownload(ctx context.Context, id string) error
	DownloadExistsByTitle(ctx context.Context, title string) (bool, error)
}

// HighlightStorage defines the interface for highlight persistence
type HighlightStorage interface {
	SaveHighlight(ctx context.Context, highlight *domain.Highlight) error
	ListHighlights(ctx context.Context, downloadID string) ([]domain.Highlight, error)
	DeleteHighlight(ctx context.Context, id string) error
}

// BookmarkStorage defines the interface for bookmark persistence
type BookmarkStorage interface {
	SaveBookmark(ctx context.Context, bookmark *domain.Bookmark) error
	ListBookmarks(ctx context.Context, downloadID string) ([]domain.Bookmark, error)
	DeleteBookmark(ctx context.Context, id string) error
}

// ThoughtStorage defines the interface for thought persistence
type ThoughtStorage interface {
	SaveThought(ctx context.Context, thought *domain.Thought) error
	ListThoughts(ctx context.Context, downloadID string) ([]domain.Thought, error)
	UpdateThoughtText(ctx context.Context, id string, text string) error
	DeleteThought(ctx context.Context, id string) error
}

// AnnotationStorage defines the interface for underline/sticky-note persistence
type AnnotationStorage interface {
	SaveAnnotation(ctx context.Context, annotation *domain.Annotation) error
	ListAnnotations(ctx context.Context, downloadID string) ([]domain.Annotation, error)
	UpdateAnnotationContent(ctx context.Context, id string, content string) error
	DeleteAnnotation(ctx context.Context, id string) error
}

// PreferenceStorage defines the interface for reader preference persistence
type PreferenceStorage interface {
	GetPreferences(ctx context.Context) (*domain.Preferences, error)
	SavePreferences(ctx context.Context, prefs *domain.Preferences) error
}

// Storage aggregates every persistence contract the application needs.
// The SQLite implementation satisfies all of them with one handle.
type Storage interface {
	ArticleStorage
	DownloadStorage
	HighlightStorage
	BookmarkStorage
	ThoughtStorage
	AnnotationStorage
	PreferenceStorage
}
