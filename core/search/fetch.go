// ABOUTME: FetchArticle retrieves full article details from an external source by id
// ABOUTME: PubMed responses are XML (efetch); the other sources answer in JSON

package search

import (
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"marginalia-api/core/domain"
	coreerrors "marginalia-api/core/errors"
)

// FetchArticle retrieves an article from the named source and persists it.
// For Wikipedia the id is the page title; title is a fallback when callers
// only know the display title.
func (s *SearchService) FetchArticle(ctx context.Context, source, id, title string) (*domain.Article, error) {
	if id == "" && title == "" {
		return nil, &coreerrors.ValidationError{Field: "id", Message: "article id cannot be empty"}
	}

	var (
		article *domain.Article
		err     error
	)

	switch source {
	case domain.SourcePubMed:
		article, err = s.fetchPubMed(ctx, id)
	case domain.SourceMedRxiv:
		article, err = s.fetchMedRxiv(ctx, id)
	case domain.SourceSemanticScholar:
		article, err = s.fetchSemanticScholar(ctx, id)
	case domain.SourceWikipedia:
		article, err = s.fetchWikipedia(ctx, id, title)
	default:
		return nil, &coreerrors.ValidationError{Field: "source", Message: fmt.Sprintf("unknown article source %q", source)}
	}

	if err != nil {
		return nil, err
	}
	if article == nil {
		return nil, &coreerrors.NotFoundError{Resource: "article", ID: id}
	}

	article.ID = uuid.New().String()
	article.CreatedAt = time.Now()

	if err := article.Validate(); err != nil {
		return nil, &coreerrors.ExternalAPIError{
			API:        source,
			StatusCode: 200,
			Message:    err.Error(),
		}
	}

	if err := s.storage.SaveArticle(ctx, article); err != nil {
		return nil, coreerrors.WrapError(err, "failed to save article")
	}

	s.deps.Logger.Info("Article fetched", map[string]interface{}{
		"id":     article.ID,
		"source": source,
		"title":  article.Title,
	})

	return article, nil
}

// pubmedArticleSet mirrors the efetch XML layout down to the fields we keep
type pubmedArticleSet struct {
	Articles []struct {
		MedlineCitation struct {
			Article struct {
				ArticleTitle string `xml:"ArticleTitle"`
				Abstract     struct {
					AbstractText []string `xml:"AbstractText"`
				} `xml:"Abstract"`
				AuthorList struct {
					Authors []struct {
						LastName string `xml:"LastName"`
						ForeName string `xml:"ForeName"`
					} `xml:"Author"`
				} `xml:"AuthorList"`
			} `xml:"Article"`
		} `xml:"MedlineCitation"`
	} `xml:"PubmedArticle"`
}

func (s *SearchService) fetchPubMed(ctx context.Context, pmid string) (*domain.Article, error) {
	fetchURL := fmt.Sprintf("%s/efetch.fcgi?db=pubmed&id=%s&retmode=xml&rettype=abstract",
		eutilsBaseURL, url.QueryEscape(pmid))

	resp, err := s.deps.HTTPClient.Get(ctx, fetchURL)
	if err != nil {
		return nil, &coreerrors.ExternalAPIError{API: "pubmed", Message: err.Error()}
	}
	defer resp.Body().Close()

	if resp.StatusCode() != 200 {
		return nil, &coreerrors.ExternalAPIError{
			API:        "pubmed",
			StatusCode: resp.StatusCode(),
			Message:    "efetch request failed",
		}
	}

	body, err := io.ReadAll(resp.Body())
	if err != nil {
		return nil, &coreerrors.ExternalAPIError{API: "pubmed", Message: err.Error()}
	}

	var set pubmedArticleSet
	if err := xml.Unmarshal(body, &set); err != nil {
		return nil, &coreerrors.ExternalAPIError{API: "pubmed", Message: "failed to parse efetch response"}
	}
	if len(set.Articles) == 0 {
		return nil, nil
	}

	a := set.Articles[0].MedlineCitation.Article
	if a.ArticleTitle == "" {
		return nil, nil
	}

	abstract := strings.Join(a.Abstract.AbstractText, "\n\n")
	if abstract == "" {
		abstract = "No abstract available."
	}

	var authors []string
	for _, author := range a.AuthorList.Authors {
		if author.LastName != "" && author.ForeName != "" {
			authors = append(authors, author.ForeName+" "+author.LastName)
		}
	}

	return &domain.Article{
		Title:     a.ArticleTitle,
		Content:   abstract,
		Abstract:  abstract,
		Authors:   authors,
		Source:    domain.SourcePubMed,
		SourceURL: fmt.Sprintf("%s/%s/", pubmedArticleURL, pmid),
		Category:  "scientific",
		Images:    []domain.ArticleImage{},
	}, nil
}

func (s *SearchService) fetchMedRxiv(ctx context.Context, doi string) (*domain.Article, error) {
	detailURL := fmt.Sprintf("%s/details/medrxiv/%s", biorxivBaseURL, doi)

	var details struct {
		Collection []struct {
			DOI      string `json:"doi"`
			Title    string `json:"title"`
			Abstract string `json:"abstract"`
			Authors  string `json:"authors"`
		} `json:"collection"`
	}
	if err := s.getJSON(ctx, detailURL, &details); err != nil {
		return nil, &coreerrors.ExternalAPIError{API: "medrxiv", Message: err.Error()}
	}
	if len(details.Collection) == 0 {
		return nil, nil
	}

	paper := details.Collection[0]
	content := paper.Abstract
	if content == "" {
		content = "No abstract available."
	}

	// medRxiv lists authors as one semicolon-separated string
	var authors []string
	for _, a := range strings.Split(paper.Authors, ";") {
		if a = strings.TrimSpace(a); a != "" {
			authors = append(authors, a)
		}
	}

	return &domain.Article{
		Title:     paper.Title,
		Content:   content,
		Abstract:  paper.Abstract,
		Authors:   authors,
		Source:    domain.SourceMedRxiv,
		SourceURL: fmt.Sprintf("https://www.medrxiv.org/content/%s", paper.DOI),
		Category:  "preprint",
		Images:    []domain.ArticleImage{},
	}, nil
}

func (s *SearchService) fetchSemanticScholar(ctx context.Context, paperID string) (*domain.Article, error) {
	detailURL := fmt.Sprintf("%s/paper/%s?fields=%s",
		semanticBaseURL, url.PathEscape(paperID), url.QueryEscape("title,abstract,authors,url"))

	var paper struct {
		Title    string `json:"title"`
		Abstract string `json:"abstract"`
		URL      string `json:"url"`
		Authors  []struct {
			Name string `json:"name"`
		} `json:"authors"`
	}
	if err := s.getJSON(ctx, detailURL, &paper); err != nil {
		return nil, &coreerrors.ExternalAPIError{API: "semanticscholar", Message: err.Error()}
	}
	if paper.Title == "" {
		return nil, nil
	}

	content := paper.Abstract
	if content == "" {
		content = "No content available."
	}

	authors := make([]string, 0, len(paper.Authors))
	for _, a := range paper.Authors {
		authors = append(authors, a.Name)
	}

	return &domain.Article{
		Title:     paper.Title,
		Content:   content,
		Abstract:  paper.Abstract,
		Authors:   authors,
		Source:    domain.SourceSemanticScholar,
		SourceURL: paper.URL,
		Category:  "scientific",
		Images:    []domain.ArticleImage{},
	}, nil
}

func (s *SearchService) fetchWikipedia(ctx context.Context, id, title string) (*domain.Article, error) {
	pageTitle := title
	if pageTitle == "" {
		pageTitle = id
	}

	queryURL := fmt.Sprintf("%s?action=query&titles=%s&prop=%s&exintro=true&explaintext=true&piprop=original&format=json",
		wikipediaAPIURL, url.QueryEscape(pageTitle), url.QueryEscape("extracts|pageimages"))

	var result struct {
		Query struct {
			Pages map[string]struct {
				Title    string `json:"title"`
				Extract  string `json:"extract"`
				Original *struct {
					Source string `json:"source"`
				} `json:"original"`
			} `json:"pages"`
		} `json:"query"`
	}
	if err := s.getJSON(ctx, queryURL, &result); err != nil {
		return nil, &coreerrors.ExternalAPIError{API: "wikipedia", Message: err.Error()}
	}

	for pageID, page := range result.Query.Pages {
		if pageID == "-1" || page.Title == "" {
			continue
		}

		content := page.Extract
		if content == "" {
			content = "No content available."
		}

		abstract := page.Extract
		if len(abstract) > 200 {
			abstract = abstract[:200] + "..."
		}

		images := []domain.ArticleImage{}
		if page.Original != nil && page.Original.Source != "" {
			images = append(images, domain.ArticleImage{URL: page.Original.Source, Caption: pageTitle})
		}

		return &domain.Article{
			Title:     page.Title,
			Content:   content,
			Abstract:  abstract,
			Authors:   []string{},
			Source:    domain.SourceWikipedia,
			SourceURL: fmt.Sprintf("https://en.wikipedia.org/wiki/%s", url.PathEscape(page.Title)),
			Category:  "general",
			Images:    images,
		}, nil
	}

	return nil, nil
}
