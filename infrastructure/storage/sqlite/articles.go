// ABOUTME: Article and download persistence over SQLite
// ABOUTME: Authors and images are stored as JSON-encoded columns

package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"marginalia-api/core/domain"
	coreerrors "marginalia-api/core/errors"
)

func encodeJSON(v interface{}) string {
	data, err := json.Marshal(v)
	if err != nil {
		return "[]"
	}
	return string(data)
}

func decodeAuthors(data string) []string {
	var authors []string
	if err := json.Unmarshal([]byte(data), &authors); err != nil {
		return []string{}
	}
	if authors == nil {
		authors = []string{}
	}
	return authors
}

func decodeImages(data string) []domain.ArticleImage {
	var images []domain.ArticleImage
	if err := json.Unmarshal([]byte(data), &images); err != nil {
		return []domain.ArticleImage{}
	}
	if images == nil {
		images = []domain.ArticleImage{}
	}
	return images
}

// SaveArticle persists a fetched article
func (s *Store) SaveArticle(ctx context.Context, article *domain.Article) error {
	query := `
		INSERT OR REPLACE INTO articles
			(id, title, content, abstract, authors, source, source_url, category, images, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query,
		article.ID, article.Title, article.Content, article.Abstract,
		encodeJSON(article.Authors), article.Source, article.SourceURL,
		article.Category, encodeJSON(article.Images), article.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to save article: %w", err)
	}

	return nil
}

// GetArticle retrieves an article by ID
func (s *Store) GetArticle(ctx context.Context, id string) (*domain.Article, error) {
	query := `
		SELECT id, title, content, abstract, authors, source, source_url, category, images, created_at
		FROM articles WHERE id = ?
	`

	var a domain.Article
	var authors, images string
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&a.ID, &a.Title, &a.Content, &a.Abstract, &authors,
		&a.Source, &a.SourceURL, &a.Category, &images, &a.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, &coreerrors.NotFoundError{Resource: "article", ID: id}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get article: %w", err)
	}

	a.Authors = decodeAuthors(authors)
	a.Images = decodeImages(images)
	return &a, nil
}

// SearchArticlesByTitle finds articles whose title contains the query
func (s *Store) SearchArticlesByTitle(ctx context.Context, query string) ([]domain.Article, error) {
	stmt := `
		SELECT id, title, content, abstract, authors, source, source_url, category, images, created_at
		FROM articles WHERE title LIKE ? ORDER BY created_at DESC
	`

	rows, err := s.db.QueryContext(ctx, stmt, "%"+query+"%")
	if err != nil {
		return nil, fmt.Errorf("failed to search articles: %w", err)
	}
	defer rows.Close()

	var articles []domain.Article
	for rows.Next() {
		var a domain.Article
		var authors, images string
		if err := rows.Scan(&a.ID, &a.Title, &a.Content, &a.Abstract, &authors,
			&a.Source, &a.SourceURL, &a.Category, &images, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan article: %w", err)
		}
		a.Authors = decodeAuthors(authors)
		a.Images = decodeImages(images)
		articles = append(articles, a)
	}

	return articles, rows.Err()
}

func (s *Store) scanDownload(row interface{ Scan(...interface{}) error }) (*domain.Download, error) {
	var d domain.Download
	var authors, images string
	err := row.Scan(&d.ID, &d.Title, &d.Content, &d.Abstract, &authors,
		&d.Source, &d.SourceURL, &d.Category, &d.Thumbnail, &d.AccentColor,
		&images, &d.DownloadedAt)
	if err != nil {
		return nil, err
	}
	d.Authors = decodeAuthors(authors)
	d.Images = decodeImages(images)
	return &d, nil
}

const downloadColumns = `id, title, content, abstract, authors, source, source_url,
	category, thumbnail, accent_color, images, downloaded_at`

// SaveDownload persists a download
func (s *Store) SaveDownload(ctx context.Context, download *domain.Download) error {
	query := `
		INSERT OR REPLACE INTO downloads
			(id, title, content, abstract, authors, source, source_url,
			 category, thumbnail, accent_color, images, downloaded_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query,
		download.ID, download.Title, download.Content, download.Abstract,
		encodeJSON(download.Authors), download.Source, download.SourceURL,
		download.Category, download.Thumbnail, download.AccentColor,
		encodeJSON(download.Images), download.DownloadedAt)
	if err != nil {
		return fmt.Errorf("failed to save download: %w", err)
	}

	return nil
}

// GetDownload retrieves a download by ID
func (s *Store) GetDownload(ctx context.Context, id string) (*domain.Download, error) {
	query := "SELECT " + downloadColumns + " FROM downloads WHERE id = ?"

	d, err := s.scanDownload(s.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, &coreerrors.NotFoundError{Resource: "download", ID: id}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get download: %w", err)
	}

	return d, nil
}

// ListDownloads returns all downloads, newest first
func (s *Store) ListDownloads(ctx context.Context) ([]domain.Download, error) {
	query := "SELECT " + downloadColumns + " FROM downloads ORDER BY downloaded_at DESC"
	return s.queryDownloads(ctx, query)
}

// SearchDownloads finds downloads whose title contains the query
func (s *Store) SearchDownloads(ctx context.Context, query string) ([]domain.Download, error) {
	stmt := "SELECT " + downloadColumns + " FROM downloads WHERE title LIKE ? ORDER BY downloaded_at DESC"
	return s.queryDownloads(ctx, stmt, "%"+query+"%")
}

func (s *Store) queryDownloads(ctx context.Context, query string, args ...interface{}) ([]domain.Download, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query downloads: %w", err)
	}
	defer rows.Close()

	var downloads []domain.Download
	for rows.Next() {
		d, err := s.scanDownload(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan download: %w", err)
		}
		downloads = append(downloads, *d)
	}

	return downloads, rows.Err()
}

// DeleteDownload removes a download; annotation rows cascade
func (s *Store) DeleteDownload(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM downloads WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete download: %w", err)
	}

	if n, err := result.RowsAffected(); err == nil && n == 0 {
		return &coreerrors.NotFoundError{Resource: "download", ID: id}
	}

	return nil
}

// DownloadExistsByTitle reports whether a download with the title exists
func (s *Store) DownloadExistsByTitle(ctx context.Context, title string) (bool, error) {
	var count int
	err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(1) FROM downloads WHERE title = ?", title).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("failed to check download title: %w", err)
	}
	return count > 0, nil
}
