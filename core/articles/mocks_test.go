package articles

import (
	"context"

	"marginalia-api/core/domain"
	coreerrors "marginalia-api/core/errors"
)

// mockStorage is a mock implementation of interfaces.Storage; only the
// methods the article service touches do real work
type mockStorage struct {
	getArticleFunc   func(ctx context.Context, id string) (*domain.Article, error)
	saveDownloadFunc func(ctx context.Context, download *domain.Download) error
	getDownloadFunc  func(ctx context.Context, id string) (*domain.Download, error)
	deleteFunc       func(ctx context.Context, id string) error
}

func (m *mockStorage) GetArticle(ctx context.Context, id string) (*domain.Article, error) {
	if m.getArticleFunc != nil {
		return m.getArticleFunc(ctx, id)
	}
	return nil, &coreerrors.NotFoundError{Resource: "article", ID: id}
}

func (m *mockStorage) SaveDownload(ctx context.Context, download *domain.Download) error {
	if m.saveDownloadFunc != nil {
		return m.saveDownloadFunc(ctx, download)
	}
	return nil
}

func (m *mockStorage) GetDownload(ctx context.Context, id string) (*domain.Download, error) {
	if m.getDownloadFunc != nil {
		return m.getDownloadFunc(ctx, id)
	}
	return nil, &coreerrors.NotFoundError{Resource: "download", ID: id}
}

func (m *mockStorage) DeleteDownload(ctx context.Context, id string) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return nil
}

func (m *mockStorage) SaveArticle(ctx context.Context, article *domain.Article) error { return nil }

func (m *mockStorage) SearchArticlesByTitle(ctx context.Context, query string) ([]domain.Article, error) {
	return nil, nil
}

func (m *mockStorage) ListDownloads(ctx context.Context) ([]domain.Download, error) {
	return nil, nil
}

func (m *mockStorage) SearchDownloads(ctx context.Context, query string) ([]domain.Download, error) {
	return nil, nil
}

func (m *mockStorage) DownloadExistsByTitle(ctx context.Context, title string) (bool, error) {
	return false, nil
}

func (m *mockStorage) SaveHighlight(ctx context.Context, highlight *domain.Highlight) error {
	return nil
}

func (m *mockStorage) ListHighlights(ctx context.Context, downloadID string) ([]domain.Highlight, error) {
	return nil, nil
}

func (m *mockStorage) DeleteHighlight(ctx context.Context, id string) error { return nil }

func (m *mockStorage) SaveBookmark(ctx context.Context, bookmark *domain.Bookmark) error { return nil }

func (m *mockStorage) ListBookmarks(ctx context.Context, downloadID string) ([]domain.Bookmark, error) {
	return nil, nil
}

func (m *mockStorage) DeleteBookmark(ctx context.Context, id string) error { return nil }

func (m *mockStorage) SaveThought(ctx context.Context, thought *domain.Thought) error { return nil }

func (m *mockStorage) ListThoughts(ctx context.Context, downloadID string) ([]domain.Thought, error) {
	return nil, nil
}

func (m *mockStorage) UpdateThoughtText(ctx context.Context, id string, text string) error {
	return nil
}

func (m *mockStorage) DeleteThought(ctx context.Context, id string) error { return nil }

func (m *mockStorage) SaveAnnotation(ctx context.Context, annotation *domain.Annotation) error {
	return nil
}

func (m *mockStorage) ListAnnotations(ctx context.Context, downloadID string) ([]domain.Annotation, error) {
	return nil, nil
}

func (m *mockStorage) UpdateAnnotationContent(ctx context.Context, id string, content string) error {
	return nil
}

func (m *mockStorage) DeleteAnnotation(ctx context.Context, id string) error { return nil }

func (m *mockStorage) GetPreferences(ctx context.Context) (*domain.Preferences, error) {
	return domain.DefaultPreferences(), nil
}

func (m *mockStorage) SavePreferences(ctx context.Context, prefs *domain.Preferences) error {
	return nil
}

// mockColorService is a mock implementation of AccentColorService
type mockColorService struct {
	extractFunc func(ctx context.Context, imageURL string) (string, error)
}

func (m *mockColorService) ExtractColor(ctx context.Context, imageURL string) (string, error) {
	if m.extractFunc != nil {
		return m.extractFunc(ctx, imageURL)
	}
	return "#808080", nil
}

// mockLogger is a mock implementation of the Logger interface
type mockLogger struct {
	debugFunc func(msg string, fields map[string]interface{})
	infoFunc  func(msg string, fields map[string]interface{})
	warnFunc  func(msg string, fields map[string]interface{})
	errorFunc func(msg string, fields map[string]interface{})
}

func (m *mockLogger) Debug(msg string, fields map[string]interface{}) {
	if m.debugFunc != nil {
		m.debugFunc(msg, fields)
	}
}

func (m *mockLogger) Info(msg string, fields map[string]interface{}) {
	if m.infoFunc != nil {
		m.infoFunc(msg, fields)
	}
}

func (m *mockLogger) Warn(msg string, fields map[string]interface{}) {
	if m.warnFunc != nil {
		m.warnFunc(msg, fields)
	}
}

func (m *mockLogger) Error(msg string, fields map[string]interface{}) {
	if m.errorFunc != nil {
		m.errorFunc(msg, fields)
	}
}
