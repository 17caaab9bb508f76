// ABOUTME: Article and Download domain models for fetched and locally saved articles
// ABOUTME: Provides validation logic to ensure article data integrity

package domain

import (
	"errors"
	"time"
)

// ArticleImage represents an image referenced by an article
type ArticleImage struct {
	URL     string `json:"url"`
	Caption string `json:"caption,omitempty"`
}

// Article represents a fetched article. Content is immutable after creation.
type Article struct {
	// ID is the unique identifier for the article
	ID string `json:"id"`

	// Title is the article title
	Title string `json:"title"`

	// Content is the raw article body. It may be plain text with
	// ==Section== fence markers or structured markup with media embeds.
	Content string `json:"content"`

	// Abstract is an optional short summary
	Abstract string `json:"abstract,omitempty"`

	// Authors lists the article authors in citation order
	Authors []string `json:"authors"`

	// Source identifies where the article came from
	// ("pubmed", "medrxiv", "semantic_scholar", "wikipedia", "import")
	Source string `json:"source"`

	// SourceURL links back to the original publication
	SourceURL string `json:"sourceUrl,omitempty"`

	// Category is an optional topical category
	Category string `json:"category,omitempty"`

	// Images holds article images with optional captions
	Images []ArticleImage `json:"images"`

	// CreatedAt is when the article was fetched
	CreatedAt time.Time `json:"createdAt"`
}

// Download represents an article saved for offline reading. All annotation
// entities reference a Download and are cascade-deleted with it.
type Download struct {
	ID        string         `json:"id"`
	Title     string         `json:"title"`
	Content   string         `json:"content"`
	Abstract  string         `json:"abstract,omitempty"`
	Authors   []string       `json:"authors"`
	Source    string         `json:"source"`
	SourceURL string         `json:"sourceUrl,omitempty"`
	Category  string         `json:"category,omitempty"`

	// Thumbnail is the first article image or empty when none exists
	Thumbnail string `json:"thumbnail,omitempty"`

	// AccentColor is a hex color extracted from the thumbnail, used for
	// placeholder rendering when the thumbnail itself is unavailable
	AccentColor string `json:"accentColor,omitempty"`

	Images       []ArticleImage `json:"images"`
	DownloadedAt time.Time      `json:"downloadedAt"`
}

// Validate checks if the article has valid required fields
func (a *Article) Validate() error {
	if a.Title == "" {
		return errors.New("article title cannot be empty")
	}

	if a.Content == "" {
		return errors.New("article content cannot be empty")
	}

	if a.Source == "" {
		return errors.New("article source cannot be empty")
	}

	return nil
}

// Validate checks if the download has valid required fields
func (d *Download) Validate() error {
	if d.Title == "" {
		return errors.New("download title cannot be empty")
	}

	if d.Content == "" {
		return errors.New("download content cannot be empty")
	}

	if d.Source == "" {
		return errors.New("download source cannot be empty")
	}

	return nil
}
