// ABOUTME: Journal feed discovery turns an RSS/Atom feed into article suggestions
// ABOUTME: Lets readers follow a journal's feed and pick articles to import

package search

import (
	"context"
	"fmt"
	"net/url"

	"github.com/mmcdole/gofeed"

	"marginalia-api/core/domain"
	coreerrors "marginalia-api/core/errors"
)

const maxFeedSuggestions = 20

// DiscoverJournalFeed fetches a journal's RSS/Atom feed and returns its
// entries as article suggestions
func (s *SearchService) DiscoverJournalFeed(ctx context.Context, feedURL string) ([]domain.SearchSuggestion, error) {
	parsed, err := url.Parse(feedURL)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") {
		return nil, &coreerrors.ValidationError{Field: "feedUrl", Message: "feed URL must be a valid http(s) URL"}
	}

	resp, err := s.deps.HTTPClient.Get(ctx, feedURL)
	if err != nil {
		return nil, &coreerrors.ExternalAPIError{API: "journal", Message: err.Error()}
	}
	defer resp.Body().Close()

	if resp.StatusCode() != 200 {
		return nil, &coreerrors.ExternalAPIError{
			API:        "journal",
			StatusCode: resp.StatusCode(),
			Message:    "feed request failed",
		}
	}

	feed, err := gofeed.NewParser().Parse(resp.Body())
	if err != nil {
		return nil, &coreerrors.ExternalAPIError{
			API:     "journal",
			Message: fmt.Sprintf("failed to parse feed: %s", err),
		}
	}

	suggestions := make([]domain.SearchSuggestion, 0, len(feed.Items))
	for i, item := range feed.Items {
		if i >= maxFeedSuggestions {
			break
		}
		if item.Title == "" {
			continue
		}

		downloaded, err := s.storage.DownloadExistsByTitle(ctx, item.Title)
		if err != nil {
			downloaded = false
		}

		suggestions = append(suggestions, domain.SearchSuggestion{
			ID:           item.Link,
			Title:        item.Title,
			Source:       domain.SourceJournal,
			URL:          item.Link,
			IsDownloaded: downloaded,
		})
	}

	s.deps.Logger.Debug("Journal feed parsed", map[string]interface{}{
		"feed_url": feedURL,
		"title":    feed.Title,
		"items":    len(suggestions),
	})

	return suggestions, nil
}
