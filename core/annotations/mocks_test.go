package annotations

import (
	"context"
	"sort"

	"marginalia-api/core/domain"
	coreerrors "marginalia-api/core/errors"
)

// mockStorage is an in-memory implementation of interfaces.Storage
type mockStorage struct {
	articles    map[string]*domain.Article
	downloads   map[string]*domain.Download
	highlights  map[string]*domain.Highlight
	bookmarks   map[string]*domain.Bookmark
	thoughts    map[string]*domain.Thought
	annotations map[string]*domain.Annotation
	prefs       *domain.Preferences

	saveHighlightErr error
	saveThoughtErr   error
	saveBookmarkErr  error
}

func newMockStorage() *mockStorage {
	return &mockStorage{
		articles:    make(map[string]*domain.Article),
		downloads:   make(map[string]*domain.Download),
		highlights:  make(map[string]*domain.Highlight),
		bookmarks:   make(map[string]*domain.Bookmark),
		thoughts:    make(map[string]*domain.Thought),
		annotations: make(map[string]*domain.Annotation),
	}
}

func (m *mockStorage) SaveArticle(ctx context.Context, article *domain.Article) error {
	m.articles[article.ID] = article
	return nil
}

func (m *mockStorage) GetArticle(ctx context.Context, id string) (*domain.Article, error) {
	a, ok := m.articles[id]
	if !ok {
		return nil, &coreerrors.NotFoundError{Resource: "article", ID: id}
	}
	return a, nil
}

func (m *mockStorage) SearchArticlesByTitle(ctx context.Context, query string) ([]domain.Article, error) {
	return nil, nil
}

func (m *mockStorage) SaveDownload(ctx context.Context, download *domain.Download) error {
	m.downloads[download.ID] = download
	return nil
}

func (m *mockStorage) GetDownload(ctx context.Context, id string) (*domain.Download, error) {
	d, ok := m.downloads[id]
	if !ok {
		return nil, &coreerrors.NotFoundError{Resource: "download", ID: id}
	}
	return d, nil
}

func (m *mockStorage) ListDownloads(ctx context.Context) ([]domain.Download, error) {
	out := make([]domain.Download, 0, len(m.downloads))
	for _, d := range m.downloads {
		out = append(out, *d)
	}
	return out, nil
}

func (m *mockStorage) SearchDownloads(ctx context.Context, query string) ([]domain.Download, error) {
	return nil, nil
}

func (m *mockStorage) DeleteDownload(ctx context.Context, id string) error {
	delete(m.downloads, id)
	return nil
}

func (m *mockStorage) DownloadExistsByTitle(ctx context.Context, title string) (bool, error) {
	for _, d := range m.downloads {
		if d.Title == title {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockStorage) SaveHighlight(ctx context.Context, highlight *domain.Highlight) error {
	if m.saveHighlightErr != nil {
		return m.saveHighlightErr
	}
	m.highlights[highlight.ID] = highlight
	return nil
}

func (m *mockStorage) ListHighlights(ctx context.Context, downloadID string) ([]domain.Highlight, error) {
	var out []domain.Highlight
	for _, h := range m.highlights {
		if h.DownloadID == downloadID {
			out = append(out, *h)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (m *mockStorage) DeleteHighlight(ctx context.Context, id string) error {
	if _, ok := m.highlights[id]; !ok {
		return &coreerrors.NotFoundError{Resource: "highlight", ID: id}
	}
	delete(m.highlights, id)
	return nil
}

func (m *mockStorage) SaveBookmark(ctx context.Context, bookmark *domain.Bookmark) error {
	if m.saveBookmarkErr != nil {
		return m.saveBookmarkErr
	}
	m.bookmarks[bookmark.ID] = bookmark
	return nil
}

func (m *mockStorage) ListBookmarks(ctx context.Context, downloadID string) ([]domain.Bookmark, error) {
	var out []domain.Bookmark
	for _, b := range m.bookmarks {
		if b.DownloadID == downloadID {
			out = append(out, *b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (m *mockStorage) DeleteBookmark(ctx context.Context, id string) error {
	if _, ok := m.bookmarks[id]; !ok {
		return &coreerrors.NotFoundError{Resource: "bookmark", ID: id}
	}
	delete(m.bookmarks, id)
	return nil
}

func (m *mockStorage) SaveThought(ctx context.Context, thought *domain.Thought) error {
	if m.saveThoughtErr != nil {
		return m.saveThoughtErr
	}
	m.thoughts[thought.ID] = thought
	return nil
}

func (m *mockStorage) ListThoughts(ctx context.Context, downloadID string) ([]domain.Thought, error) {
	var out []domain.Thought
	for _, t := range m.thoughts {
		if t.DownloadID == downloadID {
			out = append(out, *t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (m *mockStorage) UpdateThoughtText(ctx context.Context, id string, text string) error {
	t, ok := m.thoughts[id]
	if !ok {
		return &coreerrors.NotFoundError{Resource: "thought", ID: id}
	}
	t.Text = text
	return nil
}

func (m *mockStorage) DeleteThought(ctx context.Context, id string) error {
	if _, ok := m.thoughts[id]; !ok {
		return &coreerrors.NotFoundError{Resource: "thought", ID: id}
	}
	delete(m.thoughts, id)
	return nil
}

func (m *mockStorage) SaveAnnotation(ctx context.Context, annotation *domain.Annotation) error {
	m.annotations[annotation.ID] = annotation
	return nil
}

func (m *mockStorage) ListAnnotations(ctx context.Context, downloadID string) ([]domain.Annotation, error) {
	var out []domain.Annotation
	for _, a := range m.annotations {
		if a.DownloadID == downloadID {
			out = append(out, *a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (m *mockStorage) UpdateAnnotationContent(ctx context.Context, id string, content string) error {
	a, ok := m.annotations[id]
	if !ok {
		return &coreerrors.NotFoundError{Resource: "annotation", ID: id}
	}
	a.Content = content
	return nil
}

func (m *mockStorage) DeleteAnnotation(ctx context.Context, id string) error {
	if _, ok := m.annotations[id]; !ok {
		return &coreerrors.NotFoundError{Resource: "annotation", ID: id}
	}
	delete(m.annotations, id)
	return nil
}

func (m *mockStorage) GetPreferences(ctx context.Context) (*domain.Preferences, error) {
	if m.prefs == nil {
		return domain.DefaultPreferences(), nil
	}
	return m.prefs, nil
}

func (m *mockStorage) SavePreferences(ctx context.Context, prefs *domain.Preferences) error {
	m.prefs = prefs
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
