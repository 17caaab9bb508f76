// ABOUTME: ImportFromURL turns an arbitrary web page into a readable download
// ABOUTME: Readability extracts the article body; colly scrapes captioned images

package articles

import (
	"context"
	"net/url"
	"strings"
	"time"

	"github.com/gocolly/colly"

	"marginalia-api/core/domain"
	coreerrors "marginalia-api/core/errors"

	readability "github.com/go-shiori/go-readability"
)

const (
	readabilityTimeout = 30 * time.Second
	maxScrapedImages   = 10
	importUserAgent    = "Mozilla/5.0 (compatible; MarginaliaReader/1.0)"
)

// ImportFromURL extracts a readable article from a web page and saves it
// as a download
func (s *Service) ImportFromURL(ctx context.Context, pageURL string) (*domain.Download, error) {
	parsed, err := url.Parse(pageURL)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") {
		return nil, &coreerrors.ValidationError{Field: "url", Message: "import URL must be a valid http(s) URL"}
	}

	article, err := readability.FromURL(pageURL, readabilityTimeout)
	if err != nil {
		return nil, &coreerrors.ExternalAPIError{
			API:     "import",
			Message: "failed to extract readable content: " + err.Error(),
		}
	}

	if article.Title == "" || article.Content == "" {
		return nil, &coreerrors.ExternalAPIError{
			API:     "import",
			Message: "page has no extractable article content",
		}
	}

	images := s.scrapeImages(pageURL)
	if len(images) == 0 && article.Image != "" {
		images = append(images, domain.ArticleImage{URL: article.Image, Caption: article.Title})
	}

	abstract := article.Excerpt
	if abstract == "" {
		abstract = firstSentence(article.TextContent)
	}

	download := &domain.Download{
		Title:     article.Title,
		Content:   article.Content,
		Abstract:  abstract,
		Authors:   splitByline(article.Byline),
		Source:    domain.SourceImport,
		SourceURL: pageURL,
		Category:  "imported",
		Thumbnail: article.Image,
		Images:    images,
	}

	return s.CreateDownload(ctx, download)
}

// scrapeImages collects captioned images from the page. Scraping is best
// effort; an empty slice is fine.
func (s *Service) scrapeImages(pageURL string) []domain.ArticleImage {
	var images []domain.ArticleImage
	seen := make(map[string]bool)

	c := colly.NewCollector(
		colly.UserAgent(importUserAgent),
		colly.MaxDepth(1),
	)
	c.SetRequestTimeout(readabilityTimeout)

	add := func(src, caption string) {
		if src == "" || seen[src] || len(images) >= maxScrapedImages {
			return
		}
		seen[src] = true
		images = append(images, domain.ArticleImage{URL: src, Caption: caption})
	}

	// figure/figcaption pairs carry the most useful captions
	c.OnHTML("figure", func(e *colly.HTMLElement) {
		src := e.Request.AbsoluteURL(e.ChildAttr("img", "src"))
		caption := strings.TrimSpace(e.ChildText("figcaption"))
		if caption == "" {
			caption = strings.TrimSpace(e.ChildAttr("img", "alt"))
		}
		add(src, caption)
	})

	c.OnHTML("img[src]", func(e *colly.HTMLElement) {
		add(e.Request.AbsoluteURL(e.Attr("src")), strings.TrimSpace(e.Attr("alt")))
	})

	c.OnError(func(r *colly.Response, err error) {
		s.deps.Logger.Debug("Image scrape failed", map[string]interface{}{
			"url":   pageURL,
			"error": err.Error(),
		})
	})

	_ = c.Visit(pageURL)

	return images
}

// splitByline splits a readability byline into individual author names
func splitByline(byline string) []string {
	var authors []string
	for _, part := range strings.FieldsFunc(byline, func(r rune) bool {
		return r == ',' || r == ';'
	}) {
		part = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(part), "by "))
		if part != "" {
			authors = append(authors, part)
		}
	}
	return authors
}

// firstSentence returns a short abstract from plain text
func firstSentence(text string) string {
	text = strings.TrimSpace(text)
	if len(text) > 200 {
		return text[:200] + "..."
	}
	return text
}
