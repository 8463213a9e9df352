// Package service contains the gateway's decision-making: logo resolution
// across providers, title suggestions from a generative model, and the thin
// catalog passthrough.
//
// AssetService runs the logo cascade:
//
//	Step 1: Primary: catalog images for the media kind (TMDB)
//	Step 2: Secondary: branding assets (fanart.tv), movies only
//
// A provider that fails is treated as having no candidates; the cascade never
// turns a missing logo into an error.
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/fleveque/media-gateway/internal/metrics"
	"github.com/fleveque/media-gateway/internal/model"
	"github.com/fleveque/media-gateway/internal/provider"
	"github.com/fleveque/media-gateway/internal/resolver"
)

// ErrLogoNotFound is returned by RenderLogo when the cascade found nothing.
var ErrLogoNotFound = errors.New("logo not found")

// AssetService resolves one logo per media item. It holds no per-request
// state and is safe for concurrent use.
type AssetService struct {
	primary      provider.LogoSource
	secondary    provider.LogoSource // nil disables the branding fallback
	images       *provider.ImageFetcher
	processor    *ImageProcessor
	imageBaseURL string
	logger       *zap.Logger
}

// NewAssetService wires the cascade. images and processor are only needed by
// RenderLogo and may be nil for callers that only resolve.
func NewAssetService(
	primary provider.LogoSource,
	secondary provider.LogoSource,
	images *provider.ImageFetcher,
	processor *ImageProcessor,
	imageBaseURL string,
	logger *zap.Logger,
) *AssetService {
	return &AssetService{
		primary:      primary,
		secondary:    secondary,
		images:       images,
		processor:    processor,
		imageBaseURL: strings.TrimRight(imageBaseURL, "/"),
		logger:       logger,
	}
}

// Resolve returns the best logo for kind/id. Validation errors are returned
// before any provider call; every other outcome is a valid ResolvedAsset.
func (s *AssetService) Resolve(ctx context.Context, kind model.MediaKind, id string) (model.ResolvedAsset, error) {
	if kind != model.KindMovie && kind != model.KindTV {
		return model.NoAsset(), model.ErrUnsupportedMediaKind
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return model.NoAsset(), model.ErrMissingMediaID
	}

	asset := s.cascade(ctx, kind, id)
	metrics.LogoResolutions.WithLabelValues(string(kind), string(asset.Provenance)).Inc()
	return asset, nil
}

func (s *AssetService) cascade(ctx context.Context, kind model.MediaKind, id string) model.ResolvedAsset {
	if best := s.fromSource(ctx, s.primary, kind, id, resolver.CatalogRules); best != nil {
		s.logger.Debug("logo resolved from primary",
			zap.String("kind", string(kind)),
			zap.String("id", id),
		)
		return model.NewResolvedAsset(model.ProvenancePrimary, best.ImagePath)
	}

	// Branding fallback exists for movies only. tv stops after the primary.
	if kind == model.KindMovie && s.secondary != nil {
		if best := s.fromSource(ctx, s.secondary, kind, id, resolver.BrandingRules); best != nil {
			s.logger.Debug("logo resolved from secondary",
				zap.String("kind", string(kind)),
				zap.String("id", id),
			)
			return model.NewResolvedAsset(model.ProvenanceSecondary, best.ImagePath)
		}
	}

	return model.NoAsset()
}

// fromSource asks one provider and ranks its answer. Failures count as empty.
func (s *AssetService) fromSource(ctx context.Context, src provider.LogoSource, kind model.MediaKind, id string, rules resolver.Rules) *model.LogoCandidate {
	if src == nil {
		return nil
	}

	candidates, err := src.FetchLogos(ctx, kind, id)
	if err != nil {
		metrics.ProviderFailures.WithLabelValues(src.Name()).Inc()
		level := zap.WarnLevel
		if errors.Is(err, provider.ErrNotConfigured) {
			level = zap.DebugLevel
		}
		s.logger.Log(level, "logo provider failed, treating as empty",
			zap.String("provider", src.Name()),
			zap.String("kind", string(kind)),
			zap.String("id", id),
			zap.Error(err),
		)
		return nil
	}

	return resolver.Resolve(candidates, rules)
}

// ImageURL turns a resolved asset into a downloadable URL. Catalog paths are
// relative to the configured image base; branding paths are already absolute.
func (s *AssetService) ImageURL(asset model.ResolvedAsset) string {
	if !asset.Found() {
		return ""
	}
	path := *asset.Logo
	if asset.Provenance == model.ProvenancePrimary && strings.HasPrefix(path, "/") {
		return s.imageBaseURL + path
	}
	return path
}

// RenderLogo resolves the logo, downloads it, and renders it as a PNG at size,
// optionally flattened onto bgHex.
func (s *AssetService) RenderLogo(ctx context.Context, kind model.MediaKind, id string, size model.LogoSize, bgHex string) ([]byte, error) {
	if s.images == nil || s.processor == nil {
		return nil, fmt.Errorf("logo rendering not configured")
	}

	asset, err := s.Resolve(ctx, kind, id)
	if err != nil {
		return nil, err
	}
	if !asset.Found() {
		return nil, ErrLogoNotFound
	}

	url := s.ImageURL(asset)
	data, err := s.images.Download(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("fetching logo for %s/%s: %w", kind, id, err)
	}

	return s.processor.Render(data, size, bgHex)
}
