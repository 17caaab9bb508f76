// ABOUTME: Highlight, bookmark, thought, and annotation persistence over SQLite
// ABOUTME: Lists return rows in creation order for stable rendering

package sqlite

import (
	"context"
	"fmt"

	"marginalia-api/core/domain"
	coreerrors "marginalia-api/core/errors"
)

// SaveHighlight persists a highlight
func (s *Store) SaveHighlight(ctx context.Context, highlight *domain.Highlight) error {
	query := `
		INSERT INTO highlights (id, download_id, text, color, start_offset, end_offset, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query,
		highlight.ID, highlight.DownloadID, highlight.Text, highlight.Color,
		highlight.StartOffset, highlight.EndOffset, highlight.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to save highlight: %w", err)
	}

	return nil
}

// ListHighlights returns the download's highlights in creation order
func (s *Store) ListHighlights(ctx context.Context, downloadID string) ([]domain.Highlight, error) {
	query := `
		SELECT id, download_id, text, color, start_offset, end_offset, created_at
		FROM highlights WHERE download_id = ? ORDER BY created_at
	`

	rows, err := s.db.QueryContext(ctx, query, downloadID)
	if err != nil {
		return nil, fmt.Errorf("failed to query highlights: %w", err)
	}
	defer rows.Close()

	var highlights []domain.Highlight
	for rows.Next() {
		var h domain.Highlight
		if err := rows.Scan(&h.ID, &h.DownloadID, &h.Text, &h.Color,
			&h.StartOffset, &h.EndOffset, &h.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan highlight: %w", err)
		}
		highlights = append(highlights, h)
	}

	return highlights, rows.Err()
}

// DeleteHighlight removes a highlight by id
func (s *Store) DeleteHighlight(ctx context.Context, id string) error {
	return s.deleteByID(ctx, "highlights", "highlight", id)
}

// SaveBookmark persists a bookmark
func (s *Store) SaveBookmark(ctx context.Context, bookmark *domain.Bookmark) error {
	query := `
		INSERT INTO bookmarks (id, download_id, text, position, label, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query,
		bookmark.ID, bookmark.DownloadID, bookmark.Text,
		bookmark.Position, bookmark.Label, bookmark.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to save bookmark: %w", err)
	}

	return nil
}

// ListBookmarks returns the download's bookmarks in creation order
func (s *Store) ListBookmarks(ctx context.Context, downloadID string) ([]domain.Bookmark, error) {
	query := `
		SELECT id, download_id, text, position, label, created_at
		FROM bookmarks WHERE download_id = ? ORDER BY created_at
	`

	rows, err := s.db.QueryContext(ctx, query, downloadID)
	if err != nil {
		return nil, fmt.Errorf("failed to query bookmarks: %w", err)
	}
	defer rows.Close()

	var bookmarks []domain.Bookmark
	for rows.Next() {
		var b domain.Bookmark
		if err := rows.Scan(&b.ID, &b.DownloadID, &b.Text,
			&b.Position, &b.Label, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan bookmark: %w", err)
		}
		bookmarks = append(bookmarks, b)
	}

	return bookmarks, rows.Err()
}

// DeleteBookmark removes a bookmark by id
func (s *Store) DeleteBookmark(ctx context.Context, id string) error {
	return s.deleteByID(ctx, "bookmarks", "bookmark", id)
}

// SaveThought persists a thought
func (s *Store) SaveThought(ctx context.Context, thought *domain.Thought) error {
	query := `
		INSERT INTO thoughts (id, download_id, highlight_id, highlighted_text, text, position, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query,
		thought.ID, thought.DownloadID, thought.HighlightID,
		thought.HighlightedText, thought.Text, thought.Position, thought.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to save thought: %w", err)
	}

	return nil
}

// ListThoughts returns the download's thoughts in creation order
func (s *Store) ListThoughts(ctx context.Context, downloadID string) ([]domain.Thought, error) {
	query := `
		SELECT id, download_id, highlight_id, highlighted_text, text, position, created_at
		FROM thoughts WHERE download_id = ? ORDER BY created_at
	`

	rows, err := s.db.QueryContext(ctx, query, downloadID)
	if err != nil {
		return nil, fmt.Errorf("failed to query thoughts: %w", err)
	}
	defer rows.Close()

	var thoughts []domain.Thought
	for rows.Next() {
		var t domain.Thought
		if err := rows.Scan(&t.ID, &t.DownloadID, &t.HighlightID,
			&t.HighlightedText, &t.Text, &t.Position, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan thought: %w", err)
		}
		thoughts = append(thoughts, t)
	}

	return thoughts, rows.Err()
}

// UpdateThoughtText replaces a thought's comment text
func (s *Store) UpdateThoughtText(ctx context.Context, id string, text string) error {
	result, err := s.db.ExecContext(ctx,
		"UPDATE thoughts SET text = ? WHERE id = ?", text, id)
	if err != nil {
		return fmt.Errorf("failed to update thought: %w", err)
	}

	if n, err := result.RowsAffected(); err == nil && n == 0 {
		return &coreerrors.NotFoundError{Resource: "thought", ID: id}
	}

	return nil
}

// DeleteThought removes a thought by id
func (s *Store) DeleteThought(ctx context.Context, id string) error {
	return s.deleteByID(ctx, "thoughts", "thought", id)
}

// SaveAnnotation persists an underline or sticky note
func (s *Store) SaveAnnotation(ctx context.Context, annotation *domain.Annotation) error {
	query := `
		INSERT INTO annotations (id, download_id, type, text, content, color, position, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query,
		annotation.ID, annotation.DownloadID, annotation.Type, annotation.Text,
		annotation.Content, annotation.Color, annotation.Position, annotation.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to save annotation: %w", err)
	}

	return nil
}

// ListAnnotations returns the download's annotations in creation order
func (s *Store) ListAnnotations(ctx context.Context, downloadID string) ([]domain.Annotation, error) {
	query := `
		SELECT id, download_id, type, text, content, color, position, created_at
		FROM annotations WHERE download_id = ? ORDER BY created_at
	`

	rows, err := s.db.QueryContext(ctx, query, downloadID)
	if err != nil {
		return nil, fmt.Errorf("failed to query annotations: %w", err)
	}
	defer rows.Close()

	var annotations []domain.Annotation
	for rows.Next() {
		var a domain.Annotation
		if err := rows.Scan(&a.ID, &a.DownloadID, &a.Type, &a.Text,
			&a.Content, &a.Color, &a.Position, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan annotation: %w", err)
		}
		annotations = append(annotations, a)
	}

	return annotations, rows.Err()
}

// UpdateAnnotationContent replaces a sticky note's content
func (s *Store) UpdateAnnotationContent(ctx context.Context, id string, content string) error {
	result, err := s.db.ExecContext(ctx,
		"UPDATE annotations SET content = ? WHERE id = ?", content, id)
	if err != nil {
		return fmt.Errorf("failed to update annotation: %w", err)
	}

	if n, err := result.RowsAffected(); err == nil && n == 0 {
		return &coreerrors.NotFoundError{Resource: "annotation", ID: id}
	}

	return nil
}

// DeleteAnnotation removes an annotation by id
func (s *Store) DeleteAnnotation(ctx context.Context, id string) error {
	return s.deleteByID(ctx, "annotations", "annotation", id)
}

func (s *Store) deleteByID(ctx context.Context, table, resource, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM "+table+" WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete %s: %w", resource, err)
	}

	if n, err := result.RowsAffected(); err == nil && n == 0 {
		return &coreerrors.NotFoundError{Resource: resource, ID: id}
	}

	return nil
}
