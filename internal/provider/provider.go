// Package provider adapts upstream metadata APIs into typed candidate sets.
// Each adapter decodes its provider's JSON once, here, so the rest of the
// gateway only ever sees model.LogoCandidate values.
package provider

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/fleveque/media-gateway/internal/model"
)

// Sentinel errors for the upstream failure taxonomy. Adapters wrap them with
// context; callers match with errors.Is.
var (
	// ErrTransport covers unreachable upstreams and non-2xx responses.
	ErrTransport = errors.New("upstream transport error")
	// ErrMalformedPayload is returned when a response body cannot be decoded.
	ErrMalformedPayload = errors.New("malformed upstream payload")
	// ErrNotConfigured is returned when a provider has no credentials.
	ErrNotConfigured = errors.New("provider not configured")
)

// LogoSource is implemented by every provider that can offer logo candidates.
// Keep it small: the orchestrator needs nothing else, and fakes stay trivial.
type LogoSource interface {
	// FetchLogos returns the provider's candidates in provider order.
	// An empty slice with a nil error means the provider has nothing.
	FetchLogos(ctx context.Context, kind model.MediaKind, id string) ([]model.LogoCandidate, error)

	// Name returns a short name used in logs and metrics.
	Name() string
}

const userAgent = "media-gateway/1.0"

// doGet performs a GET and returns the response body for 2xx statuses.
// The caller must close the body.
func doGet(ctx context.Context, client *http.Client, url string, header http.Header) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	for k, vs := range header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTransport, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		resp.Body.Close()
		return nil, fmt.Errorf("%w: HTTP %d", ErrTransport, resp.StatusCode)
	}

	return resp.Body, nil
}
