package provider

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// ImageFetcher downloads logo images chosen by the resolver.
type ImageFetcher struct {
	client   *http.Client
	maxBytes int64
}

// NewImageFetcher creates a fetcher that refuses bodies larger than maxBytes.
func NewImageFetcher(timeout time.Duration, maxBytes int64) *ImageFetcher {
	return &ImageFetcher{
		client: &http.Client{
			Timeout: timeout,
		},
		maxBytes: maxBytes,
	}
}

// Download returns the raw image bytes at url.
func (f *ImageFetcher) Download(ctx context.Context, url string) ([]byte, error) {
	body, err := doGet(ctx, f.client, url, nil)
	if err != nil {
		return nil, fmt.Errorf("downloading %s: %w", url, err)
	}
	defer body.Close()

	// Read one byte past the cap so oversized bodies are detected, not truncated.
	data, err := io.ReadAll(io.LimitReader(body, f.maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("%w: reading body: %v", ErrTransport, err)
	}
	if int64(len(data)) > f.maxBytes {
		return nil, fmt.Errorf("image at %s exceeds %d bytes", url, f.maxBytes)
	}

	return data, nil
}
