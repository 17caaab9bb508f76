// ABOUTME: Annotation service manages highlights, thoughts, underlines, sticky notes, bookmarks
// ABOUTME: Validates anchors on creation and delegates persistence to storage

package annotations

import (
	"context"
	"time"

	"github.com/google/uuid"

	"marginalia-api/core/domain"
	coreerrors "marginalia-api/core/errors"
	"marginalia-api/core/interfaces"
)

// Service manages annotation entities for downloads
type Service struct {
	storage interfaces.Storage
	logger  interfaces.Logger
}

// NewService creates a new annotation service
func NewService(storage interfaces.Storage, logger interfaces.Logger) *Service {
	return &Service{
		storage: storage,
		logger:  logger,
	}
}

// CreateHighlight validates and persists a new highlight. The anchor
// snippet is captured once here and never recomputed.
func (s *Service) CreateHighlight(ctx context.Context, h *domain.Highlight) (*domain.Highlight, error) {
	if err := h.Validate(); err != nil {
		return nil, &coreerrors.ValidationError{Field: "highlight", Message: err.Error()}
	}

	if _, err := s.storage.GetDownload(ctx, h.DownloadID); err != nil {
		return nil, err
	}

	h.ID = uuid.New().String()
	h.CreatedAt = time.Now()

	if err := s.storage.SaveHighlight(ctx, h); err != nil {
		return nil, coreerrors.WrapError(err, "failed to save highlight")
	}

	s.logger.Info("Highlight created", map[string]interface{}{
		"id":          h.ID,
		"download_id": h.DownloadID,
		"color":       h.Color,
	})

	return h, nil
}

// ListHighlights returns the download's highlights in creation order
func (s *Service) ListHighlights(ctx context.Context, downloadID string) ([]domain.Highlight, error) {
	return s.storage.ListHighlights(ctx, downloadID)
}

// DeleteHighlight removes a highlight by id
func (s *Service) DeleteHighlight(ctx context.Context, id string) error {
	return s.storage.DeleteHighlight(ctx, id)
}

// CreateThought validates and persists a new thought
func (s *Service) CreateThought(ctx context.Context, t *domain.Thought) (*domain.Thought, error) {
	if err := t.Validate(); err != nil {
		return nil, &coreerrors.ValidationError{Field: "thought", Message: err.Error()}
	}

	if _, err := s.storage.GetDownload(ctx, t.DownloadID); err != nil {
		return nil, err
	}

	t.ID = uuid.New().String()
	t.CreatedAt = time.Now()

	if err := s.storage.SaveThought(ctx, t); err != nil {
		return nil, coreerrors.WrapError(err, "failed to save thought")
	}

	return t, nil
}

// ListThoughts returns the download's thoughts in creation order
func (s *Service) ListThoughts(ctx context.Context, downloadID string) ([]domain.Thought, error) {
	return s.storage.ListThoughts(ctx, downloadID)
}

// UpdateThought replaces the comment text. The anchor snippet is immutable.
func (s *Service) UpdateThought(ctx context.Context, id string, text string) error {
	if text == "" {
		return &coreerrors.ValidationError{Field: "text", Message: "thought text cannot be empty"}
	}
	return s.storage.UpdateThoughtText(ctx, id, text)
}

// DeleteThought removes a thought by id
func (s *Service) DeleteThought(ctx context.Context, id string) error {
	return s.storage.DeleteThought(ctx, id)
}

// CreateAnnotation validates and persists a new underline or sticky note
func (s *Service) CreateAnnotation(ctx context.Context, a *domain.Annotation) (*domain.Annotation, error) {
	if err := a.Validate(); err != nil {
		return nil, &coreerrors.ValidationError{Field: "annotation", Message: err.Error()}
	}

	if _, err := s.storage.GetDownload(ctx, a.DownloadID); err != nil {
		return nil, err
	}

	a.ID = uuid.New().String()
	a.CreatedAt = time.Now()

	if err := s.storage.SaveAnnotation(ctx, a); err != nil {
		return nil, coreerrors.WrapError(err, "failed to save annotation")
	}

	return a, nil
}

// ListAnnotations returns the download's underlines and sticky notes
func (s *Service) ListAnnotations(ctx context.Context, downloadID string) ([]domain.Annotation, error) {
	return s.storage.ListAnnotations(ctx, downloadID)
}

// UpdateAnnotation replaces a sticky note's content. The anchor is immutable.
func (s *Service) UpdateAnnotation(ctx context.Context, id string, content string) error {
	if content == "" {
		return &coreerrors.ValidationError{Field: "content", Message: "annotation content cannot be empty"}
	}
	return s.storage.UpdateAnnotationContent(ctx, id, content)
}

// DeleteAnnotation removes an annotation by id
func (s *Service) DeleteAnnotation(ctx context.Context, id string) error {
	return s.storage.DeleteAnnotation(ctx, id)
}

// CreateBookmark persists a new bookmark. An existing bookmark with the
// same selected text on the same download is replaced.
func (s *Service) CreateBookmark(ctx context.Context, b *domain.Bookmark) (*domain.Bookmark, error) {
	if err := b.Validate(); err != nil {
		return nil, &coreerrors.ValidationError{Field: "bookmark", Message: err.Error()}
	}

	if _, err := s.storage.GetDownload(ctx, b.DownloadID); err != nil {
		return nil, err
	}

	existing, err := s.storage.ListBookmarks(ctx, b.DownloadID)
	if err != nil {
		return nil, coreerrors.WrapError(err, "failed to list bookmarks")
	}
	for _, old := range existing {
		if old.Text == b.Text {
			if err := s.storage.DeleteBookmark(ctx, old.ID); err != nil {
				return nil, coreerrors.WrapError(err, "failed to replace bookmark")
			}
			s.logger.Debug("Replaced existing bookmark", map[string]interface{}{
				"id": old.ID,
			})
		}
	}

	if b.Label == "" {
		b.Label = bookmarkLabel(b.Text)
	}
	b.ID = uuid.New().String()
	b.CreatedAt = time.Now()

	if err := s.storage.SaveBookmark(ctx, b); err != nil {
		return nil, coreerrors.WrapError(err, "failed to save bookmark")
	}

	return b, nil
}

// ListBookmarks returns the download's bookmarks in creation order
func (s *Service) ListBookmarks(ctx context.Context, downloadID string) ([]domain.Bookmark, error) {
	return s.storage.ListBookmarks(ctx, downloadID)
}

// DeleteBookmark removes a bookmark by id
func (s *Service) DeleteBookmark(ctx context.Context, id string) error {
	return s.storage.DeleteBookmark(ctx, id)
}

// bookmarkLabel derives a short label from the selected text
func bookmarkLabel(text string) string {
	const maxLabel = 50
	if len(text) <= maxLabel {
		return text
	}
	return text[:maxLabel]
}
