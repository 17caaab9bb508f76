package search

import (
	"context"
	"io"
	"strings"
	"time"

	"marginalia-api/core/domain"
	coreerrors "marginalia-api/core/errors"
	"marginalia-api/core/interfaces"
)

// mockHTTPClient is a mock implementation of the HTTPClient interface
type mockHTTPClient struct {
	getFunc  func(ctx context.Context, url string) (interfaces.Response, error)
	postFunc func(ctx context.Context, url string, body io.Reader) (interfaces.Response, error)
}

func (m *mockHTTPClient) Get(ctx context.Context, url string) (interfaces.Response, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, url)
	}
	return nil, nil
}

func (m *mockHTTPClient) Post(ctx context.Context, url string, body io.Reader) (interfaces.Response, error) {
	if m.postFunc != nil {
		return m.postFunc(ctx, url, body)
	}
	return nil, nil
}

// mockResponse is a mock implementation of the Response interface
type mockResponse struct {
	statusCode int
	body       string
	headers    map[string]string
}

func (m *mockResponse) StatusCode() int {
	return m.statusCode
}

func (m *mockResponse) Body() io.ReadCloser {
	return io.NopCloser(strings.NewReader(m.body))
}

func (m *mockResponse) Header(key string) string {
	if m.headers != nil {
		return m.headers[key]
	}
	return ""
}

// mockCache is a mock implementation of the Cache interface
type mockCache struct {
	getFunc    func(ctx context.Context, key string) ([]byte, error)
	setFunc    func(ctx context.Context, key string, value []byte, ttl time.Duration) error
	deleteFunc func(ctx context.Context, key string) error
}

func (m *mockCache) Get(ctx context.Context, key string) ([]byte, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, key)
	}
	return nil, nil
}

func (m *mockCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if m.setFunc != nil {
		return m.setFunc(ctx, key, value, ttl)
	}
	return nil
}

func (m *mockCache) Delete(ctx context.Context, key string) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, key)
	}
	return nil
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

// mockStorage is a mock implementation of interfaces.Storage; only the
// methods the search service touches do real work
type mockStorage struct {
	searchDownloadsFunc func(ctx context.Context, query string) ([]domain.Download, error)
	saveArticleFunc     func(ctx context.Context, article *domain.Article) error
	existsByTitleFunc   func(ctx context.Context, title string) (bool, error)
}

func (m *mockStorage) SearchDownloads(ctx context.Context, query string) ([]domain.Download, error) {
	if m.searchDownloadsFunc != nil {
		return m.searchDownloadsFunc(ctx, query)
	}
	return nil, nil
}

func (m *mockStorage) SaveArticle(ctx context.Context, article *domain.Article) error {
	if m.saveArticleFunc != nil {
		return m.saveArticleFunc(ctx, article)
	}
	return nil
}

func (m *mockStorage) DownloadExistsByTitle(ctx context.Context, title string) (bool, error) {
	if m.existsByTitleFunc != nil {
		return m.existsByTitleFunc(ctx, title)
	}
	return false, nil
}

func (m *mockStorage) GetArticle(ctx context.Context, id string) (*domain.Article, error) {
	return nil, &coreerrors.NotFoundError{Resource: "article", ID: id}
}

func (m *mockStorage) SearchArticlesByTitle(ctx context.Context, query string) ([]domain.Article, error) {
	return nil, nil
}

func (m *mockStorage) SaveDownload(ctx context.Context, download *domain.Download) error {
	return nil
}

func (m *mockStorage) GetDownload(ctx context.Context, id string) (*domain.Download, error) {
	return nil, &coreerrors.NotFoundError{Resource: "download", ID: id}
}

func (m *mockStorage) ListDownloads(ctx context.Context) ([]domain.Download, error) {
	return nil, nil
}

func (m *mockStorage) DeleteDownload(ctx context.Context, id string) error { return nil }

func (m *mockStorage) SaveHighlight(ctx context.Context, highlight *domain.Highlight) error {
	return nil
}

func (m *mockStorage) ListHighlights(ctx context.Context, downloadID string) ([]domain.Highlight, error) {
	return nil, nil
}

func (m *mockStorage) DeleteHighlight(ctx context.Context, id string) error { return nil }

func (m *mockStorage) SaveBookmark(ctx context.Context, bookmark *domain.Bookmark) error {
	return nil
}

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
