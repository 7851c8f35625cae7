// Package vision extracts deterministic visual features from artwork images
// and maps them onto the search vocabulary. Feature math is plain pixel
// statistics, not a vision model.
package vision

import (
	"context"
	"fmt"
	"image"
	"net/http"
	"time"

	// Registered decoders for the common artwork image formats.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"go.uber.org/zap"

	"github.com/galleria-cloud/galleria/internal/domain"
)

// Extractor fetches and analyzes artwork images.
type Extractor struct {
	client *http.Client
	logger *zap.Logger
}

// New creates an extractor with the given fetch timeout.
func New(fetchTimeout time.Duration, logger *zap.Logger) *Extractor {
	if fetchTimeout <= 0 {
		fetchTimeout = 15 * time.Second
	}
	return &Extractor{
		client: &http.Client{Timeout: fetchTimeout},
		logger: logger,
	}
}

// Extract downloads and decodes the image, then computes its features.
// Unreachable or corrupt images yield domain.ErrImageDecode; callers treat
// that as "no visual match".
func (e *Extractor) Extract(ctx context.Context, imageURL string) (*Features, error) {
	img, err := e.fetch(ctx, imageURL)
	if err != nil {
		return nil, err
	}
	return Analyze(img), nil
}

func (e *Extractor) fetch(ctx context.Context, imageURL string) (image.Image, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, imageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: build request: %w", domain.ErrImageDecode, err)
	}

	resp, err := e.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: fetch %s: %w", domain.ErrImageDecode, imageURL, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: fetch %s: status %d", domain.ErrImageDecode, imageURL, resp.StatusCode)
	}

	img, format, err := image.Decode(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: decode %s: %w", domain.ErrImageDecode, imageURL, err)
	}
	if e.logger != nil {
		e.logger.Debug("Decoded artwork image",
			zap.String("url", imageURL),
			zap.String("format", format),
			zap.Int("width", img.Bounds().Dx()),
			zap.Int("height", img.Bounds().Dy()),
		)
	}
	return img, nil
}
