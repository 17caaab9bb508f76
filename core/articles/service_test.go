package articles

import (
	"context"
	"reflect"
	"testing"

	"marginalia-api/core/domain"
	coreerrors "marginalia-api/core/errors"
	"marginalia-api/core/interfaces"
)

func newTestService(storage *mockStorage, colors interfaces.AccentColorService) *Service {
	deps := interfaces.Dependencies{Logger: &mockLogger{}}
	return NewService(deps, storage, colors)
}

func TestCreateDownload_AssignsIDAndThumbnail(t *testing.T) {
	var saved *domain.Download
	storage := &mockStorage{
		saveDownloadFunc: func(ctx context.Context, download *domain.Download) error {
			saved = download
			return nil
		},
	}
	colors := &mockColorService{
		extractFunc: func(ctx context.Context, imageURL string) (string, error) {
			return "#4a6fa5", nil
		},
	}
	service := newTestService(storage, colors)

	download, err := service.CreateDownload(context.Background(), &domain.Download{
		Title:   "Cat Paper",
		Content: "The cat sat on the mat.",
		Source:  "pubmed",
		Images: []domain.ArticleImage{
			{URL: "https://example.com/cat.jpg", Caption: "A cat"},
		},
	})

	if err != nil {
		t.Fatalf("CreateDownload returned error: %v", err)
	}
	if len(download.ID) != 36 {
		t.Errorf("Download ID length = %d, want 36 (UUID)", len(download.ID))
	}
	if download.Thumbnail != "https://example.com/cat.jpg" {
		t.Errorf("Download thumbnail = %q, want first image URL", download.Thumbnail)
	}
	if download.AccentColor != "#4a6fa5" {
		t.Errorf("Download accent color = %q, want extracted color", download.AccentColor)
	}
	if download.DownloadedAt.IsZero() {
		t.Error("CreateDownload did not set DownloadedAt")
	}
	if saved == nil {
		t.Error("CreateDownload did not persist the download")
	}
}

func TestCreateDownload_NoImagesSkipsColorExtraction(t *testing.T) {
	colorCalled := false
	colors := &mockColorService{
		extractFunc: func(ctx context.Context, imageURL string) (string, error) {
			colorCalled = true
			return "#000000", nil
		},
	}
	service := newTestService(&mockStorage{}, colors)

	download, err := service.CreateDownload(context.Background(), &domain.Download{
		Title:   "Plain Paper",
		Content: "No images here.",
		Source:  "wikipedia",
	})

	if err != nil {
		t.Fatalf("CreateDownload returned error: %v", err)
	}
	if download.Thumbnail != "" || download.AccentColor != "" {
		t.Errorf("download = %+v, want no thumbnail or accent color", download)
	}
	if colorCalled {
		t.Error("ExtractColor should not be called without a thumbnail")
	}
}

func TestCreateDownload_ColorFailureIsNotFatal(t *testing.T) {
	colors := &mockColorService{
		extractFunc: func(ctx context.Context, imageURL string) (string, error) {
			return "", &coreerrors.ExternalAPIError{API: "accent", Message: "decode failed"}
		},
	}
	service := newTestService(&mockStorage{}, colors)

	download, err := service.CreateDownload(context.Background(), &domain.Download{
		Title:     "Cat Paper",
		Content:   "The cat sat on the mat.",
		Source:    "pubmed",
		Thumbnail: "https://example.com/cat.jpg",
	})

	if err != nil {
		t.Fatalf("CreateDownload returned error: %v", err)
	}
	if download.AccentColor != "" {
		t.Errorf("Download accent color = %q, want empty after extraction failure", download.AccentColor)
	}
}

func TestCreateDownload_MissingTitle(t *testing.T) {
	service := newTestService(&mockStorage{}, nil)

	_, err := service.CreateDownload(context.Background(), &domain.Download{
		Content: "Body without a title.",
		Source:  "pubmed",
	})

	if !coreerrors.IsValidation(err) {
		t.Errorf("CreateDownload error = %v, want validation error", err)
	}
}

func TestDownloadArticle_CopiesArticleFields(t *testing.T) {
	article := &domain.Article{
		ID:        "art-1",
		Title:     "Feline Contact Pressure",
		Content:   "Cats exert measurable pressure on mats.",
		Abstract:  "Cats exert pressure.",
		Authors:   []string{"Tom Whiskers"},
		Source:    domain.SourcePubMed,
		SourceURL: "https://pubmed.ncbi.nlm.nih.gov/111/",
		Category:  "scientific",
		Images:    []domain.ArticleImage{},
	}
	storage := &mockStorage{
		getArticleFunc: func(ctx context.Context, id string) (*domain.Article, error) {
			if id != "art-1" {
				return nil, &coreerrors.NotFoundError{Resource: "article", ID: id}
			}
			return article, nil
		},
	}
	service := newTestService(storage, nil)

	download, err := service.DownloadArticle(context.Background(), "art-1")
	if err != nil {
		t.Fatalf("DownloadArticle returned error: %v", err)
	}
	if download.Title != article.Title || download.Content != article.Content {
		t.Errorf("download = %+v, want article fields copied", download)
	}
	if !reflect.DeepEqual(download.Authors, article.Authors) {
		t.Errorf("download authors = %v, want %v", download.Authors, article.Authors)
	}
	if download.ID == article.ID {
		t.Error("download should get its own ID")
	}
}

func TestDownloadArticle_UnknownArticle(t *testing.T) {
	service := newTestService(&mockStorage{}, nil)

	_, err := service.DownloadArticle(context.Background(), "missing")
	if !coreerrors.IsNotFound(err) {
		t.Errorf("DownloadArticle error = %v, want not found error", err)
	}
}

func TestDeleteDownload_UnknownID(t *testing.T) {
	service := newTestService(&mockStorage{}, nil)

	err := service.DeleteDownload(context.Background(), "missing")
	if !coreerrors.IsNotFound(err) {
		t.Errorf("DeleteDownload error = %v, want not found error", err)
	}
}

func TestDeleteDownload_RemovesExisting(t *testing.T) {
	deleted := ""
	storage := &mockStorage{
		getDownloadFunc: func(ctx context.Context, id string) (*domain.Download, error) {
			return &domain.Download{ID: id, Title: "t", Content: "c", Source: "pubmed"}, nil
		},
		deleteFunc: func(ctx context.Context, id string) error {
			deleted = id
			return nil
		},
	}
	service := newTestService(storage, nil)

	if err := service.DeleteDownload(context.Background(), "dl-1"); err != nil {
		t.Fatalf("DeleteDownload returned error: %v", err)
	}
	if deleted != "dl-1" {
		t.Errorf("deleted id = %q, want dl-1", deleted)
	}
}

func TestImportFromURL_InvalidURL(t *testing.T) {
	service := newTestService(&mockStorage{}, nil)

	_, err := service.ImportFromURL(context.Background(), "not a url")
	if !coreerrors.IsValidation(err) {
		t.Errorf("ImportFromURL error = %v, want validation error", err)
	}
}

func TestSplitByline(t *testing.T) {
	tests := []struct {
		byline string
		want   []string
	}{
		{"by Jane Doe", []string{"Jane Doe"}},
		{"Jane Doe, John Roe", []string{"Jane Doe", "John Roe"}},
		{"Jane Doe; John Roe", []string{"Jane Doe", "John Roe"}},
		{"", nil},
	}

	for _, tt := range tests {
		got := splitByline(tt.byline)
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("splitByline(%q) = %v, want %v", tt.byline, got, tt.want)
		}
	}
}

func TestFirstSentence_TruncatesLongText(t *testing.T) {
	long := ""
	for i := 0; i < 30; i++ {
		long += "0123456789"
	}
	got := firstSentence(long)
	if len(got) != 203 {
		t.Errorf("firstSentence length = %d, want 203", len(got))
	}
}

type recordingWarmer struct {
	urls []string
}

func (w *recordingWarmer) WarmColors(imageURLs []string) {
	w.urls = append(w.urls, imageURLs...)
}

func TestCreateDownload_WarmsImageColors(t *testing.T) {
	warmer := &recordingWarmer{}
	service := newTestService(&mockStorage{}, nil)
	service.SetColorWarmer(warmer)

	_, err := service.CreateDownload(context.Background(), &domain.Download{
		Title:   "Cat Paper",
		Content: "The cat sat on the mat.",
		Source:  "pubmed",
		Images: []domain.ArticleImage{
			{URL: "https://example.com/cat.jpg"},
			{URL: "https://example.com/whiskers.png"},
		},
	})

	if err != nil {
		t.Fatalf("CreateDownload returned error: %v", err)
	}
	want := []string{"https://example.com/cat.jpg", "https://example.com/whiskers.png"}
	if !reflect.DeepEqual(warmer.urls, want) {
		t.Errorf("warmed URLs = %v, want %v", warmer.urls, want)
	}
}
