package handlers

import (
	"context"

	"marginalia-api/core/domain"
	"marginalia-api/core/interfaces"
)

// mockSearchService is a mock implementation of the search service
type mockSearchService struct {
	searchArticlesFunc func(ctx context.Context, query string) ([]domain.SearchSuggestion, error)
	fetchArticleFunc   func(ctx context.Context, source, id, title string) (*domain.Article, error)
	journalFeedFunc    func(ctx context.Context, feedURL string) ([]domain.SearchSuggestion, error)
}

func (m *mockSearchService) SearchArticles(ctx context.Context, query string) ([]domain.SearchSuggestion, error) {
	if m.searchArticlesFunc != nil {
		return m.searchArticlesFunc(ctx, query)
	}
	return nil, nil
}

func (m *mockSearchService) FetchArticle(ctx context.Context, source, id, title string) (*domain.Article, error) {
	if m.fetchArticleFunc != nil {
		return m.fetchArticleFunc(ctx, source, id, title)
	}
	return &domain.Article{}, nil
}

func (m *mockSearchService) DiscoverJournalFeed(ctx context.Context, feedURL string) ([]domain.SearchSuggestion, error) {
	if m.journalFeedFunc != nil {
		return m.journalFeedFunc(ctx, feedURL)
	}
	return nil, nil
}

// mockArticleService is a mock implementation of the article service
type mockArticleService struct {
	downloadArticleFunc func(ctx context.Context, articleID string) (*domain.Download, error)
	importFromURLFunc   func(ctx context.Context, pageURL string) (*domain.Download, error)
	getDownloadFunc     func(ctx context.Context, id string) (*domain.Download, error)
	listDownloadsFunc   func(ctx context.Context) ([]domain.Download, error)
	deleteDownloadFunc  func(ctx context.Context, id string) error
}

func (m *mockArticleService) DownloadArticle(ctx context.Context, articleID string) (*domain.Download, error) {
	if m.downloadArticleFunc != nil {
		return m.downloadArticleFunc(ctx, articleID)
	}
	return &domain.Download{}, nil
}

func (m *mockArticleService) ImportFromURL(ctx context.Context, pageURL string) (*domain.Download, error) {
	if m.importFromURLFunc != nil {
		return m.importFromURLFunc(ctx, pageURL)
	}
	return &domain.Download{}, nil
}

func (m *mockArticleService) GetDownload(ctx context.Context, id string) (*domain.Download, error) {
	if m.getDownloadFunc != nil {
		return m.getDownloadFunc(ctx, id)
	}
	return &domain.Download{}, nil
}

func (m *mockArticleService) ListDownloads(ctx context.Context) ([]domain.Download, error) {
	if m.listDownloadsFunc != nil {
		return m.listDownloadsFunc(ctx)
	}
	return nil, nil
}

func (m *mockArticleService) DeleteDownload(ctx context.Context, id string) error {
	if m.deleteDownloadFunc != nil {
		return m.deleteDownloadFunc(ctx, id)
	}
	return nil
}

// mockAnnotationService is a mock implementation of the annotation service
type mockAnnotationService struct {
	createHighlightFunc  func(ctx context.Context, h *domain.Highlight) (*domain.Highlight, error)
	listHighlightsFunc   func(ctx context.Context, downloadID string) ([]domain.Highlight, error)
	deleteHighlightFunc  func(ctx context.Context, id string) error
	createThoughtFunc    func(ctx context.Context, t *domain.Thought) (*domain.Thought, error)
	listThoughtsFunc     func(ctx context.Context, downloadID string) ([]domain.Thought, error)
	updateThoughtFunc    func(ctx context.Context, id string, text string) error
	createAnnotationFunc func(ctx context.Context, a *domain.Annotation) (*domain.Annotation, error)
	listAnnotationsFunc  func(ctx context.Context, downloadID string) ([]domain.Annotation, error)
	createBookmarkFunc   func(ctx context.Context, b *domain.Bookmark) (*domain.Bookmark, error)
	listBookmarksFunc    func(ctx context.Context, downloadID string) ([]domain.Bookmark, error)
}

func (m *mockAnnotationService) CreateHighlight(ctx context.Context, h *domain.Highlight) (*domain.Highlight, error) {
	if m.createHighlightFunc != nil {
		return m.createHighlightFunc(ctx, h)
	}
	return h, nil
}

func (m *mockAnnotationService) ListHighlights(ctx context.Context, downloadID string) ([]domain.Highlight, error) {
	if m.listHighlightsFunc != nil {
		return m.listHighlightsFunc(ctx, downloadID)
	}
	return nil, nil
}

func (m *mockAnnotationService) DeleteHighlight(ctx context.Context, id string) error {
	if m.deleteHighlightFunc != nil {
		return m.deleteHighlightFunc(ctx, id)
	}
	return nil
}

func (m *mockAnnotationService) CreateThought(ctx context.Context, t *domain.Thought) (*domain.Thought, error) {
	if m.createThoughtFunc != nil {
		return m.createThoughtFunc(ctx, t)
	}
	return t, nil
}

func (m *mockAnnotationService) ListThoughts(ctx context.Context, downloadID string) ([]domain.Thought, error) {
	if m.listThoughtsFunc != nil {
		return m.listThoughtsFunc(ctx, downloadID)
	}
	return nil, nil
}

func (m *mockAnnotationService) UpdateThought(ctx context.Context, id string, text string) error {
	if m.updateThoughtFunc != nil {
		return m.updateThoughtFunc(ctx, id, text)
	}
	return nil
}

func (m *mockAnnotationService) DeleteThought(ctx context.Context, id string) error {
	return nil
}

func (m *mockAnnotationService) CreateAnnotation(ctx context.Context, a *domain.Annotation) (*domain.Annotation, error) {
	if m.createAnnotationFunc != nil {
		return m.createAnnotationFunc(ctx, a)
	}
	return a, nil
}

func (m *mockAnnotationService) ListAnnotations(ctx context.Context, downloadID string) ([]domain.Annotation, error) {
	if m.listAnnotationsFunc != nil {
		return m.listAnnotationsFunc(ctx, downloadID)
	}
	return nil, nil
}

func (m *mockAnnotationService) UpdateAnnotation(ctx context.Context, id string, content string) error {
	return nil
}

func (m *mockAnnotationService) DeleteAnnotation(ctx context.Context, id string) error {
	return nil
}

func (m *mockAnnotationService) CreateBookmark(ctx context.Context, b *domain.Bookmark) (*domain.Bookmark, error) {
	if m.createBookmarkFunc != nil {
		return m.createBookmarkFunc(ctx, b)
	}
	return b, nil
}

func (m *mockAnnotationService) ListBookmarks(ctx context.Context, downloadID string) ([]domain.Bookmark, error) {
	if m.listBookmarksFunc != nil {
		return m.listBookmarksFunc(ctx, downloadID)
	}
	return nil, nil
}

func (m *mockAnnotationService) DeleteBookmark(ctx context.Context, id string) error {
	return nil
}

// mockPreferenceService is a mock implementation of the preference service
type mockPreferenceService struct {
	getFunc    func(ctx context.Context) (*domain.Preferences, error)
	updateFunc func(ctx context.Context, prefs *domain.Preferences) (*domain.Preferences, error)
}

func (m *mockPreferenceService) Get(ctx context.Context) (*domain.Preferences, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx)
	}
	return domain.DefaultPreferences(), nil
}

func (m *mockPreferenceService) Update(ctx context.Context, prefs *domain.Preferences) (*domain.Preferences, error) {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, prefs)
	}
	return prefs, nil
}

// mockExportService is a mock implementation of the export service
type mockExportService struct {
	exportMarkdownFunc func(ctx context.Context, downloadID string, includeAnnotations bool) (string, error)
}

func (m *mockExportService) ExportMarkdown(ctx context.Context, downloadID string, includeAnnotations bool) (string, error) {
	if m.exportMarkdownFunc != nil {
		return m.exportMarkdownFunc(ctx, downloadID, includeAnnotations)
	}
	return "", nil
}

// mockRenderService records the options of the last compose call
type mockRenderService struct {
	lastOpts interfaces.RenderOptions
	result   domain.ComposedArticle
}

func (m *mockRenderService) ComposeArticle(content string, highlights []domain.Highlight,
	thoughts []domain.Thought, annotations []domain.Annotation,
	opts interfaces.RenderOptions) domain.ComposedArticle {
	m.lastOpts = opts
	return m.result
}
