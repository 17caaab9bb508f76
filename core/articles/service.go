// ABOUTME: Article service manages saved downloads for offline reading
// ABOUTME: Converts fetched articles into downloads with thumbnail and accent color

package articles

import (
	"context"
	"time"

	"github.com/google/uuid"

	"marginalia-api/core/domain"
	coreerrors "marginalia-api/core/errors"
	"marginalia-api/core/interfaces"
)

// ColorWarmer precomputes accent colors for image URLs in the background
type ColorWarmer interface {
	WarmColors(imageURLs []string)
}

// Service manages download persistence and article imports
type Service struct {
	deps    interfaces.Dependencies
	storage interfaces.Storage
	colors  interfaces.AccentColorService
	warmer  ColorWarmer
}

// NewService creates a new article service
func NewService(deps interfaces.Dependencies, storage interfaces.Storage, colors interfaces.AccentColorService) *Service {
	return &Service{
		deps:    deps,
		storage: storage,
		colors:  colors,
	}
}

// SetColorWarmer attaches a background warmer that precomputes accent
// colors for the remaining article images after a download is saved
func (s *Service) SetColorWarmer(warmer ColorWarmer) {
	s.warmer = warmer
}

// DownloadArticle saves a previously fetched article for offline reading
func (s *Service) DownloadArticle(ctx context.Context, articleID string) (*domain.Download, error) {
	article, err := s.storage.GetArticle(ctx, articleID)
	if err != nil {
		return nil, err
	}

	download := &domain.Download{
		Title:     article.Title,
		Content:   article.Content,
		Abstract:  article.Abstract,
		Authors:   article.Authors,
		Source:    article.Source,
		SourceURL: article.SourceURL,
		Category:  article.Category,
		Images:    article.Images,
	}

	return s.CreateDownload(ctx, download)
}

// CreateDownload validates and persists a download. The thumbnail defaults
// to the first article image, and an accent color is extracted from it for
// placeholder rendering.
func (s *Service) CreateDownload(ctx context.Context, download *domain.Download) (*domain.Download, error) {
	if err := download.Validate(); err != nil {
		return nil, &coreerrors.ValidationError{Field: "download", Message: err.Error()}
	}

	if download.Thumbnail == "" && len(download.Images) > 0 {
		download.Thumbnail = download.Images[0].URL
	}

	if download.AccentColor == "" && download.Thumbnail != "" && s.colors != nil {
		color, err := s.colors.ExtractColor(ctx, download.Thumbnail)
		if err == nil {
			download.AccentColor = color
		}
	}

	download.ID = uuid.New().String()
	download.DownloadedAt = time.Now()

	if err := s.storage.SaveDownload(ctx, download); err != nil {
		return nil, coreerrors.WrapError(err, "failed to save download")
	}

	if s.warmer != nil && len(download.Images) > 0 {
		urls := make([]string, 0, len(download.Images))
		for _, img := range download.Images {
			urls = append(urls, img.URL)
		}
		s.warmer.WarmColors(urls)
	}

	s.deps.Logger.Info("Download created", map[string]interface{}{
		"id":     download.ID,
		"title":  download.Title,
		"source": download.Source,
	})

	return download, nil
}

// GetDownload retrieves a download by id
func (s *Service) GetDownload(ctx context.Context, id string) (*domain.Download, error) {
	return s.storage.GetDownload(ctx, id)
}

// ListDownloads returns all downloads, newest first
func (s *Service) ListDownloads(ctx context.Context) ([]domain.Download, error) {
	return s.storage.ListDownloads(ctx)
}

// DeleteDownload removes a download and, through storage cascades, every
// annotation entity referencing it
func (s *Service) DeleteDownload(ctx context.Context, id string) error {
	if _, err := s.storage.GetDownload(ctx, id); err != nil {
		return err
	}

	if err := s.storage.DeleteDownload(ctx, id); err != nil {
		return coreerrors.WrapError(err, "failed to delete download")
	}

	s.deps.Logger.Info("Download deleted", map[string]interface{}{
		"id": id,
	})

	return nil
}
