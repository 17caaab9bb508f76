// ABOUTME: Search service aggregates article suggestions from local downloads and external APIs
// ABOUTME: Provides business logic for article discovery independent of the HTTP layer

package search

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"marginalia-api/core/domain"
	"marginalia-api/core/interfaces"
)

const (
	maxSuggestions = 10

	// External sources are consulted in a fixed order; cheaper sources
	// are skipped once earlier ones produced enough suggestions.
	medrxivThreshold   = 5
	semanticThreshold  = 5
	wikipediaThreshold = 3

	searchCacheTTL = 1 * time.Hour
)

// SearchService handles article discovery operations
type SearchService struct {
	deps    interfaces.Dependencies
	storage interfaces.Storage
}

// NewSearchService creates a new search service instance
func NewSearchService(deps interfaces.Dependencies, storage interfaces.Storage) *SearchService {
	return &SearchService{
		deps:    deps,
		storage: storage,
	}
}

// validateQuery validates search query parameters
func (s *SearchService) validateQuery(query string) error {
	if query == "" {
		return errors.New("search query cannot be empty")
	}

	if len(query) < 2 {
		return errors.New("search query must be at least 2 characters")
	}

	if len(query) > 100 {
		return errors.New("search query cannot exceed 100 characters")
	}

	return nil
}

// SearchArticles searches local downloads and external article sources.
// Per-source failures are logged and skipped so one slow or broken API
// never empties the suggestion list.
func (s *SearchService) SearchArticles(ctx context.Context, query string) ([]domain.SearchSuggestion, error) {
	if err := s.validateQuery(query); err != nil {
		return nil, err
	}

	cacheKey := fmt.Sprintf("search:articles:%s", query)
	if s.deps.Cache != nil {
		data, err := s.deps.Cache.Get(ctx, cacheKey)
		if err == nil && data != nil {
			var cached []domain.SearchSuggestion
			if err := json.Unmarshal(data, &cached); err == nil {
				return cached, nil
			}
		}
	}

	downloads, err := s.storage.SearchDownloads(ctx, query)
	if err != nil {
		s.deps.Logger.Warn("Local download search failed", map[string]interface{}{
			"error": err.Error(),
		})
		downloads = nil
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

	if s.deps.HTTPClient == nil {
		return agg.suggestions, nil
	}

	if err := s.searchPubMed(ctx, query, agg); err != nil {
		s.deps.Logger.Warn("PubMed search failed", map[string]interface{}{
			"query": query,
			"error": err.Error(),
		})
	}

	if agg.len() < medrxivThreshold {
		if err := s.searchMedRxiv(ctx, query, agg); err != nil {
			s.deps.Logger.Warn("medRxiv search failed", map[string]interface{}{
				"query": query,
				"error": err.Error(),
			})
		}
	}

	if agg.len() < semanticThreshold {
		if err := s.searchSemanticScholar(ctx, query, agg); err != nil {
			s.deps.Logger.Warn("Semantic Scholar search failed", map[string]interface{}{
				"query": query,
				"error": err.Error(),
			})
		}
	}

	if agg.len() < wikipediaThreshold {
		if err := s.searchWikipedia(ctx, query, agg); err != nil {
			s.deps.Logger.Warn("Wikipedia search failed", map[string]interface{}{
				"query": query,
				"error": err.Error(),
			})
		}
	}

	if s.deps.Cache != nil && agg.len() > 0 {
		if data, err := json.Marshal(agg.suggestions); err == nil {
			_ = s.deps.Cache.Set(ctx, cacheKey, data, searchCacheTTL)
		}
	}

	return agg.suggestions, nil
}

// aggregator collects suggestions, deduplicating by title and flagging
// titles that already exist as downloads
type aggregator struct {
	suggestions []domain.SearchSuggestion
	seen        map[string]bool
	downloaded  map[string]bool
}

func newAggregator(downloads []domain.Download) *aggregator {
	downloaded := make(map[string]bool, len(downloads))
	for _, d := range downloads {
		downloaded[d.Title] = true
	}
	return &aggregator{
		suggestions: make([]domain.SearchSuggestion, 0, maxSuggestions),
		seen:        make(map[string]bool),
		downloaded:  downloaded,
	}
}

func (a *aggregator) add(s domain.SearchSuggestion) {
	if s.Title == "" || a.seen[s.Title] {
		return
	}
	a.seen[s.Title] = true
	if a.downloaded[s.Title] {
		s.IsDownloaded = true
	}
	a.suggestions = append(a.suggestions, s)
}

func (a *aggregator) len() int {
	return len(a.suggestions)
}
