package handler

import (
	"context"
	"encoding/json"

	"github.com/gin-gonic/gin"

	"github.com/fleveque/media-gateway/internal/model"
	"github.com/fleveque/media-gateway/internal/provider"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubSource struct {
	name       string
	candidates []model.LogoCandidate
	err        error
	calls      int
}

func (s *stubSource) FetchLogos(_ context.Context, _ model.MediaKind, _ string) ([]model.LogoCandidate, error) {
	s.calls++
	return s.candidates, s.err
}

func (s *stubSource) Name() string { return s.name }

type stubCatalog struct {
	search json.RawMessage
	err    error
	videos []provider.Video
	logos  []provider.FanartImage
	fanErr error
}

func (s *stubCatalog) SearchMovies(_ context.Context, _ string) (json.RawMessage, error) {
	return s.search, s.err
}

func (s *stubCatalog) DiscoverByGenre(_ context.Context, _ int) (json.RawMessage, error) {
	return s.search, s.err
}

func (s *stubCatalog) MovieVideos(_ context.Context, _ string) ([]provider.Video, error) {
	return s.videos, s.err
}

func (s *stubCatalog) MovieLogos(_ context.Context, _ string) ([]provider.FanartImage, error) {
	return s.logos, s.fanErr
}

type stubModel struct {
	text string
	err  error
}

func (s *stubModel) Complete(_ context.Context, _ string) (string, error) { return s.text, s.err }
func (s *stubModel) ProviderName() string                                  { return "stub" }
func (s *stubModel) ModelName() string                                     { return "stub-1" }
