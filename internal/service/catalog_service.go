package service

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/fleveque/media-gateway/internal/provider"
)

// ErrUnknownGenre is returned for genre names outside Genres.
var ErrUnknownGenre = errors.New("unknown genre")

// Genres maps the browsable genre names to TMDB genre IDs.
var Genres = map[string]int{
	"crime":       80,
	"romance":     10749,
	"documentary": 99,
}

// GenreNames returns the keys of Genres in a stable order.
func GenreNames() []string {
	names := make([]string, 0, len(Genres))
	for name := range Genres {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

var emptyResults = json.RawMessage(`{"results":[]}`)

// MovieCatalog is the slice of the TMDB adapter the catalog passthrough needs.
type MovieCatalog interface {
	SearchMovies(ctx context.Context, query string) (json.RawMessage, error)
	DiscoverByGenre(ctx context.Context, genreID int) (json.RawMessage, error)
	MovieVideos(ctx context.Context, id string) ([]provider.Video, error)
}

// BrandingCatalog is the slice of the fanart.tv adapter the passthrough needs.
type BrandingCatalog interface {
	MovieLogos(ctx context.Context, tmdbID string) ([]provider.FanartImage, error)
}

// CatalogService forwards catalog browsing to the upstream APIs, passing
// their payloads through mostly untouched.
type CatalogService struct {
	movies   MovieCatalog
	branding BrandingCatalog
	logger   *zap.Logger
}

func NewCatalogService(movies MovieCatalog, branding BrandingCatalog, logger *zap.Logger) *CatalogService {
	return &CatalogService{movies: movies, branding: branding, logger: logger}
}

// Search returns TMDB's search payload. A blank query short-circuits to an
// empty result set.
func (s *CatalogService) Search(ctx context.Context, query string) (json.RawMessage, error) {
	if strings.TrimSpace(query) == "" {
		return emptyResults, nil
	}
	return s.movies.SearchMovies(ctx, query)
}

// Genre returns TMDB's discover payload for a named genre.
func (s *CatalogService) Genre(ctx context.Context, name string) (json.RawMessage, error) {
	id, ok := Genres[strings.ToLower(name)]
	if !ok {
		return nil, ErrUnknownGenre
	}
	return s.movies.DiscoverByGenre(ctx, id)
}

// Trailer returns the first YouTube trailer for a movie, or nil if there is
// none.
func (s *CatalogService) Trailer(ctx context.Context, id string) (*provider.Video, error) {
	videos, err := s.movies.MovieVideos(ctx, id)
	if err != nil {
		return nil, err
	}
	for i := range videos {
		if videos[i].Type == "Trailer" && videos[i].Site == "YouTube" {
			return &videos[i], nil
		}
	}
	return nil, nil
}

// FanartLogos returns the raw fanart.tv logo list for a movie. Upstream
// rejections (missing key, unknown movie, outage) produce an empty list;
// only an unreadable payload is an error.
func (s *CatalogService) FanartLogos(ctx context.Context, tmdbID string) ([]provider.FanartImage, error) {
	logos, err := s.branding.MovieLogos(ctx, tmdbID)
	switch {
	case err == nil:
		return logos, nil
	case errors.Is(err, provider.ErrTransport), errors.Is(err, provider.ErrNotConfigured):
		s.logger.Debug("fanart lookup failed, returning no logos",
			zap.String("tmdb_id", tmdbID),
			zap.Error(err),
		)
		return []provider.FanartImage{}, nil
	default:
		return nil, err
	}
}
