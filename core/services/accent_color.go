// ABOUTME: Accent color extraction service for download thumbnails
// ABOUTME: Uses K-means clustering to find the most prominent color in an image

package services

import (
	"context"
	"fmt"
	"image"
	"image/draw"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/EdlinOrg/prominentcolor"
	_ "golang.org/x/image/webp" // WebP support

	"marginalia-api/core/interfaces"
)

const (
	defaultAccentColor = "#808080"
	colorHTTPTimeout   = 10 * time.Second
	colorUserAgent     = "Mozilla/5.0 (compatible; MarginaliaReader/1.0)"
	colorCacheTTL      = 24 * time.Hour
)

// AccentColorService extracts prominent colors from thumbnail images.
// The color backs placeholder rendering when a thumbnail is unavailable.
type AccentColorService struct {
	deps       interfaces.Dependencies
	httpClient *http.Client
}

// NewAccentColorService creates a new accent color service
func NewAccentColorService(deps interfaces.Dependencies) *AccentColorService {
	return &AccentColorService{
		deps: deps,
		httpClient: &http.Client{
			Timeout: colorHTTPTimeout,
		},
	}
}

// ExtractColor returns the dominant color of the image as a hex string.
// Extraction failures degrade to a neutral gray rather than erroring;
// the accent color is cosmetic.
func (s *AccentColorService) ExtractColor(ctx context.Context, imageURL string) (string, error) {
	if imageURL == "" {
		return defaultAccentColor, nil
	}

	if s.deps.Cache != nil {
		cacheKey := fmt.Sprintf("accent:color:%s", imageURL)
		if data, err := s.deps.Cache.Get(ctx, cacheKey); err == nil && len(data) > 0 {
			return string(data), nil
		}
	}

	color, err := s.extractColorFromURL(ctx, imageURL)
	if err != nil {
		s.deps.Logger.Debug("Failed to extract accent color", map[string]interface{}{
			"url":   imageURL,
			"error": err.Error(),
		})
		color = defaultAccentColor
	}

	if s.deps.Cache != nil {
		cacheKey := fmt.Sprintf("accent:color:%s", imageURL)
		_ = s.deps.Cache.Set(ctx, cacheKey, []byte(color), colorCacheTTL)
	}

	return color, nil
}

// extractColorFromURL downloads the image and runs K-means clustering
func (s *AccentColorService) extractColorFromURL(ctx context.Context, imageURL string) (color string, err error) {
	// prominentcolor can panic on degenerate images
	defer func() {
		if rec := recover(); rec != nil {
			s.deps.Logger.Debug("Recovered from panic in color extraction", map[string]interface{}{
				"url":   imageURL,
				"panic": fmt.Sprintf("%v", rec),
			})
			color = defaultAccentColor
			err = fmt.Errorf("panic recovered: %v", rec)
		}
	}()

	parsedURL, parseErr := url.Parse(imageURL)
	if parseErr != nil || parsedURL.Scheme == "" || parsedURL.Host == "" {
		return "", fmt.Errorf("invalid image URL: %s", imageURL)
	}

	// SVG cannot be decoded as a raster image
	if strings.HasSuffix(strings.ToLower(parsedURL.Path), ".svg") {
		return "", fmt.Errorf("SVG images are not supported")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, imageURL, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", colorUserAgent)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to download image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	img, _, err := image.Decode(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to decode image: %w", err)
	}

	bounds := img.Bounds()
	if bounds.Empty() {
		return "", fmt.Errorf("image has empty bounds")
	}

	imgNRGBA := image.NewNRGBA(bounds)
	draw.Draw(imgNRGBA, bounds, img, bounds.Min, draw.Src)

	colors, err := prominentcolor.KmeansWithAll(
		prominentcolor.ArgumentDefault,
		imgNRGBA,
		prominentcolor.DefaultK,
		1,
		prominentcolor.GetDefaultMasks(),
	)

	// Masks can reject every pixel on small or uniform images
	if err != nil || len(colors) == 0 {
		colors, err = prominentcolor.KmeansWithAll(
			prominentcolor.ArgumentDefault,
			imgNRGBA,
			prominentcolor.DefaultK,
			1,
			nil,
		)
		if err != nil || len(colors) == 0 {
			return "", fmt.Errorf("no colors extracted from image")
		}
	}

	c := colors[0].Color
	return fmt.Sprintf("#%02x%02x%02x", uint8(c.R), uint8(c.G), uint8(c.B)), nil
}
