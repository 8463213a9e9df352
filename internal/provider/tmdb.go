package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/fleveque/media-gateway/internal/config"
	"github.com/fleveque/media-gateway/internal/model"
)

// TMDBProvider talks to The Movie Database v3 API. It is the primary logo
// source for both movies and tv, and also backs the catalog passthrough routes.
type TMDBProvider struct {
	baseURL string
	token   string
	client  *http.Client
	logger  *zap.Logger
}

// NewTMDBProvider creates a TMDB client from its config section.
func NewTMDBProvider(cfg config.TMDBConfig, logger *zap.Logger) *TMDBProvider {
	return &TMDBProvider{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		token:   cfg.AccessToken,
		client: &http.Client{
			Timeout: cfg.Timeout,
		},
		logger: logger,
	}
}

func (p *TMDBProvider) Name() string { return "tmdb" }

// tmdbImage is one entry of the /images response. Every field may be missing.
type tmdbImage struct {
	FilePath    string  `json:"file_path"`
	ISO6391     *string `json:"iso_639_1"`
	VoteAverage float64 `json:"vote_average"`
	Width       int     `json:"width"`
	Height      int     `json:"height"`
}

type tmdbImagesResponse struct {
	Logos []tmdbImage `json:"logos"`
}

// FetchLogos returns the logos listed under /{movie|tv}/{id}/images.
// No language parameter is sent so every logo comes back; ranking happens later.
func (p *TMDBProvider) FetchLogos(ctx context.Context, kind model.MediaKind, id string) ([]model.LogoCandidate, error) {
	endpoint := fmt.Sprintf("%s/%s/%s/images", p.baseURL, kind, url.PathEscape(id))

	var payload tmdbImagesResponse
	if err := p.getJSON(ctx, endpoint, &payload); err != nil {
		return nil, fmt.Errorf("tmdb images for %s/%s: %w", kind, id, err)
	}

	candidates := make([]model.LogoCandidate, 0, len(payload.Logos))
	for _, logo := range payload.Logos {
		if logo.FilePath == "" {
			continue
		}
		c := model.LogoCandidate{
			ImagePath:    logo.FilePath,
			QualityScore: logo.VoteAverage,
		}
		if logo.ISO6391 != nil {
			c.LanguageCode = *logo.ISO6391
		}
		candidates = append(candidates, c)
	}

	p.logger.Debug("tmdb logos fetched",
		zap.String("kind", string(kind)),
		zap.String("id", id),
		zap.Int("count", len(candidates)),
	)
	return candidates, nil
}

// SearchMovies forwards a title search and returns TMDB's JSON untouched.
func (p *TMDBProvider) SearchMovies(ctx context.Context, query string) (json.RawMessage, error) {
	q := url.Values{}
	q.Set("query", query)
	q.Set("include_adult", "false")
	q.Set("language", "en-US")
	q.Set("page", "1")
	return p.getRaw(ctx, p.baseURL+"/search/movie?"+q.Encode())
}

// DiscoverByGenre returns the first page of movies for a TMDB genre ID.
func (p *TMDBProvider) DiscoverByGenre(ctx context.Context, genreID int) (json.RawMessage, error) {
	q := url.Values{}
	q.Set("with_genres", strconv.Itoa(genreID))
	q.Set("language", "en-US")
	q.Set("page", "1")
	return p.getRaw(ctx, p.baseURL+"/discover/movie?"+q.Encode())
}

// Video is one entry of a movie's /videos listing.
type Video struct {
	ID       string `json:"id"`
	Key      string `json:"key"`
	Name     string `json:"name"`
	Site     string `json:"site"`
	Type     string `json:"type"`
	Official bool   `json:"official"`
	ISO6391  string `json:"iso_639_1,omitempty"`
}

type tmdbVideosResponse struct {
	Results []Video `json:"results"`
}

// MovieVideos lists the videos attached to a movie.
func (p *TMDBProvider) MovieVideos(ctx context.Context, id string) ([]Video, error) {
	endpoint := fmt.Sprintf("%s/movie/%s/videos", p.baseURL, url.PathEscape(id))

	var payload tmdbVideosResponse
	if err := p.getJSON(ctx, endpoint, &payload); err != nil {
		return nil, fmt.Errorf("tmdb videos for %s: %w", id, err)
	}
	return payload.Results, nil
}

func (p *TMDBProvider) getJSON(ctx context.Context, endpoint string, out any) error {
	body, err := p.open(ctx, endpoint)
	if err != nil {
		return err
	}
	defer body.Close()

	if err := json.NewDecoder(body).Decode(out); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}
	return nil
}

func (p *TMDBProvider) getRaw(ctx context.Context, endpoint string) (json.RawMessage, error) {
	body, err := p.open(ctx, endpoint)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	data, err := io.ReadAll(io.LimitReader(body, 10<<20))
	if err != nil {
		return nil, fmt.Errorf("%w: reading body: %v", ErrTransport, err)
	}
	if !json.Valid(data) {
		return nil, ErrMalformedPayload
	}
	return json.RawMessage(data), nil
}

func (p *TMDBProvider) open(ctx context.Context, endpoint string) (io.ReadCloser, error) {
	if p.token == "" {
		return nil, fmt.Errorf("tmdb: %w", ErrNotConfigured)
	}
	header := http.Header{}
	header.Set("Authorization", "Bearer "+p.token)
	header.Set("Accept", "application/json")
	return doGet(ctx, p.client, endpoint, header)
}
