package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/fleveque/media-gateway/internal/config"
	"github.com/fleveque/media-gateway/internal/model"
)

// FanartProvider fetches branding artwork from fanart.tv. Only the movie
// endpoint is used; tv lookups on fanart.tv are keyed by TVDB IDs, which this
// gateway never receives.
type FanartProvider struct {
	baseURL string
	apiKey  string
	client  *http.Client
	logger  *zap.Logger
}

// NewFanartProvider creates a fanart.tv client from its config section.
func NewFanartProvider(cfg config.FanartConfig, logger *zap.Logger) *FanartProvider {
	return &FanartProvider{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		client: &http.Client{
			Timeout: cfg.Timeout,
		},
		logger: logger,
	}
}

func (p *FanartProvider) Name() string { return "fanart" }

// FanartImage is one artwork entry as fanart.tv returns it. Likes arrives as a
// decimal string.
type FanartImage struct {
	ID    string `json:"id"`
	URL   string `json:"url"`
	Lang  string `json:"lang"`
	Likes string `json:"likes"`
}

type fanartMovieResponse struct {
	HDMovieLogos []FanartImage `json:"hdmovielogo"`
	MovieLogos   []FanartImage `json:"movielogo"`
}

// MovieLogos returns the HD logo list for a TMDB movie ID, or the standard
// logo list when no HD logos exist.
func (p *FanartProvider) MovieLogos(ctx context.Context, tmdbID string) ([]FanartImage, error) {
	if p.apiKey == "" {
		return nil, fmt.Errorf("fanart: %w", ErrNotConfigured)
	}

	q := url.Values{}
	q.Set("api_key", p.apiKey)
	endpoint := fmt.Sprintf("%s/movies/%s?%s", p.baseURL, url.PathEscape(tmdbID), q.Encode())

	body, err := doGet(ctx, p.client, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("fanart movie %s: %w", tmdbID, err)
	}
	defer body.Close()

	var payload fanartMovieResponse
	if err := json.NewDecoder(body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("fanart movie %s: %w: %v", tmdbID, ErrMalformedPayload, err)
	}

	if len(payload.HDMovieLogos) > 0 {
		return payload.HDMovieLogos, nil
	}
	if payload.MovieLogos == nil {
		return []FanartImage{}, nil
	}
	return payload.MovieLogos, nil
}

// FetchLogos adapts MovieLogos to the LogoSource interface. Any kind other
// than movie yields no candidates.
func (p *FanartProvider) FetchLogos(ctx context.Context, kind model.MediaKind, id string) ([]model.LogoCandidate, error) {
	if kind != model.KindMovie {
		return []model.LogoCandidate{}, nil
	}

	images, err := p.MovieLogos(ctx, id)
	if err != nil {
		return nil, err
	}

	candidates := make([]model.LogoCandidate, 0, len(images))
	for _, img := range images {
		if img.URL == "" {
			continue
		}
		likes, _ := strconv.ParseFloat(img.Likes, 64)
		candidates = append(candidates, model.LogoCandidate{
			ImagePath:    img.URL,
			LanguageCode: img.Lang,
			QualityScore: likes,
		})
	}

	p.logger.Debug("fanart logos fetched",
		zap.String("id", id),
		zap.Int("count", len(candidates)),
	)
	return candidates, nil
}
