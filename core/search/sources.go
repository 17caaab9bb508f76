// ABOUTME: Per-source search helpers for PubMed, medRxiv, Semantic Scholar, Wikipedia
// ABOUTME: Each source decodes its own wire format and feeds the shared aggregator

package search

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"strings"
	"time"

	"marginalia-api/core/domain"
	htmlutils "marginalia-api/pkg/utils/html"
)

const (
	eutilsBaseURL    = "https://eutils.ncbi.nlm.nih.gov/entrez/eutils"
	biorxivBaseURL   = "https://api.biorxiv.org"
	semanticBaseURL  = "https://api.semanticscholar.org/graph/v1"
	wikipediaAPIURL  = "https://en.wikipedia.org/w/api.php"
	pubmedArticleURL = "https://pubmed.ncbi.nlm.nih.gov"
)

// getJSON performs a GET request and decodes the JSON response into v
func (s *SearchService) getJSON(ctx context.Context, requestURL string, v interface{}) error {
	resp, err := s.deps.HTTPClient.Get(ctx, requestURL)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body().Close()

	if resp.StatusCode() != 200 {
		return fmt.Errorf("unexpected status %d", resp.StatusCode())
	}

	body, err := io.ReadAll(resp.Body())
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}

	return nil
}

// searchPubMed queries NCBI E-Utilities: esearch for PMIDs, then esummary
// for their titles
func (s *SearchService) searchPubMed(ctx context.Context, query string, agg *aggregator) error {
	searchURL := fmt.Sprintf("%s/esearch.fcgi?db=pubmed&term=%s&retmode=json&retmax=10",
		eutilsBaseURL, url.QueryEscape(query))

	var esearch struct {
		ESearchResult struct {
			IDList []string `json:"idlist"`
		} `json:"esearchresult"`
	}
	if err := s.getJSON(ctx, searchURL, &esearch); err != nil {
		return err
	}

	pmids := esearch.ESearchResult.IDList
	if len(pmids) > 5 {
		pmids = pmids[:5]
	}
	if len(pmids) == 0 {
		return nil
	}

	summaryURL := fmt.Sprintf("%s/esummary.fcgi?db=pubmed&id=%s&retmode=json",
		eutilsBaseURL, strings.Join(pmids, ","))

	// esummary keys the result object by PMID alongside a "uids" list,
	// so the per-article entries decode through RawMessage
	var esummary struct {
		Result map[string]json.RawMessage `json:"result"`
	}
	if err := s.getJSON(ctx, summaryURL, &esummary); err != nil {
		return err
	}

	for _, pmid := range pmids {
		raw, ok := esummary.Result[pmid]
		if !ok {
			continue
		}
		var paper struct {
			Title string `json:"title"`
		}
		if err := json.Unmarshal(raw, &paper); err != nil || paper.Title == "" {
			continue
		}
		// esummary titles can carry markup like <i> and HTML entities
		agg.add(domain.SearchSuggestion{
			ID:     pmid,
			Title:  htmlutils.StripHTML(paper.Title),
			Source: domain.SourcePubMed,
			URL:    fmt.Sprintf("%s/%s/", pubmedArticleURL, pmid),
		})
	}

	return nil
}

// searchMedRxiv lists the last month of medRxiv preprints and filters them
// by title or abstract. The bioRxiv API has no query endpoint.
func (s *SearchService) searchMedRxiv(ctx context.Context, query string, agg *aggregator) error {
	today := time.Now().Format("2006-01-02")
	monthAgo := time.Now().AddDate(0, 0, -30).Format("2006-01-02")
	listURL := fmt.Sprintf("%s/details/medrxiv/%s/%s/0", biorxivBaseURL, monthAgo, today)

	var details struct {
		Collection []struct {
			DOI      string `json:"doi"`
			Title    string `json:"title"`
			Abstract string `json:"abstract"`
		} `json:"collection"`
	}
	if err := s.getJSON(ctx, listURL, &details); err != nil {
		return err
	}

	lowered := strings.ToLower(query)
	added := 0
	for _, paper := range details.Collection {
		if added >= 3 {
			break
		}
		if !strings.Contains(strings.ToLower(paper.Title), lowered) &&
			!strings.Contains(strings.ToLower(paper.Abstract), lowered) {
			continue
		}
		agg.add(domain.SearchSuggestion{
			ID:     paper.DOI,
			Title:  htmlutils.StripHTML(paper.Title),
			Source: domain.SourceMedRxiv,
			URL:    fmt.Sprintf("https://www.medrxiv.org/content/%s", paper.DOI),
		})
		added++
	}

	return nil
}

// searchSemanticScholar queries the Semantic Scholar graph API
func (s *SearchService) searchSemanticScholar(ctx context.Context, query string, agg *aggregator) error {
	searchURL := fmt.Sprintf("%s/paper/search?query=%s&limit=5&fields=%s",
		semanticBaseURL, url.QueryEscape(query), url.QueryEscape("title,abstract,authors,url"))

	var result struct {
		Data []struct {
			PaperID string `json:"paperId"`
			Title   string `json:"title"`
			URL     string `json:"url"`
		} `json:"data"`
	}
	if err := s.getJSON(ctx, searchURL, &result); err != nil {
		return err
	}

	for _, paper := range result.Data {
		if paper.PaperID == "" {
			continue
		}
		agg.add(domain.SearchSuggestion{
			ID:     paper.PaperID,
			Title:  paper.Title,
			Source: domain.SourceSemanticScholar,
			URL:    paper.URL,
		})
	}

	return nil
}

// searchWikipedia uses the opensearch endpoint as a general-interest fallback
func (s *SearchService) searchWikipedia(ctx context.Context, query string, agg *aggregator) error {
	searchURL := fmt.Sprintf("%s?action=opensearch&search=%s&limit=5&namespace=0&format=json",
		wikipediaAPIURL, url.QueryEscape(query))

	// opensearch responds with a positional array:
	// [query, [titles...], [descriptions...], [urls...]]
	var result []json.RawMessage
	if err := s.getJSON(ctx, searchURL, &result); err != nil {
		return err
	}
	if len(result) < 2 {
		return nil
	}

	var titles []string
	if err := json.Unmarshal(result[1], &titles); err != nil {
		return fmt.Errorf("failed to parse opensearch titles: %w", err)
	}

	var urls []string
	if len(result) >= 4 {
		_ = json.Unmarshal(result[3], &urls)
	}

	for i, title := range titles {
		pageURL := ""
		if i < len(urls) {
			pageURL = urls[i]
		}
		agg.add(domain.SearchSuggestion{
			ID:     title,
			Title:  title,
			Source: domain.SourceWikipedia,
			URL:    pageURL,
		})
	}

	return nil
}
