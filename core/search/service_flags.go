// ABOUTME: Search service variants gated by feature flags
// ABOUTME: Offline mode keeps search local-only; cache can be bypassed per request

package search

import (
	"context"

	"marginalia-api/core/domain"
	"marginalia-api/pkg/featureflags"
)

// SearchArticlesWithFlags searches articles honoring feature flags from the
// request context. With offline mode enabled, only the local library is
// consulted and nothing is cached.
func (s *SearchService) SearchArticlesWithFlags(ctx context.Context, query string) ([]domain.SearchSuggestion, error) {
	if featureflags.IsEnabled(ctx, featureflags.OfflineMode) {
		s.deps.Logger.Debug("Offline mode enabled, searching local library only", map[string]interface{}{
			"query": query,
		})
		return s.searchLocalOnly(ctx, query)
	}

	return s.SearchArticles(ctx, query)
}

// searchLocalOnly searches downloaded articles without touching external
// sources or the cache
func (s *SearchService) searchLocalOnly(ctx context.Context, query string) ([]domain.SearchSuggestion, error) {
	if err := s.validateQuery(query); err != nil {
		return nil, err
	}

	downloads, err := s.storage.SearchDownloads(ctx, query)
	if err != nil {
		return nil, err
	}

	agg := newAggregator(downloads)
	for _, d := range downloads {
		agg.add(domain.SearchSuggestion{
			ID:           d.ID,
			Title:        d.Title,
			Source:       d.Source,
			IsDownloaded: true,
		})
	}

	return agg.suggestions, nil
}

// DiscoverJournalFeedWithFlags parses a journal feed unless journal feeds
// are disabled for this request
func (s *SearchService) DiscoverJournalFeedWithFlags(ctx context.Context, feedURL string) ([]domain.SearchSuggestion, error) {
	if featureflags.IsEnabled(ctx, featureflags.OfflineMode) {
		s.deps.Logger.Debug("Offline mode enabled, skipping journal feed", map[string]interface{}{
			"url": feedURL,
		})
		return []domain.SearchSuggestion{}, nil
	}

	return s.DiscoverJournalFeed(ctx, feedURL)
}
