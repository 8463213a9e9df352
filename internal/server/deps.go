package server

import (
	"go.uber.org/zap"

	"github.com/fleveque/media-gateway/internal/config"
	"github.com/fleveque/media-gateway/internal/llm"
	"github.com/fleveque/media-gateway/internal/provider"
	"github.com/fleveque/media-gateway/internal/service"
)

// NewDeps builds every service from configuration. Both binaries use it, so
// the CLI resolves logos exactly the way the HTTP API does.
func NewDeps(cfg *config.Config, logger *zap.Logger) Deps {
	tmdb := provider.NewTMDBProvider(cfg.TMDB, logger)
	fanart := provider.NewFanartProvider(cfg.Fanart, logger)
	images := provider.NewImageFetcher(cfg.Images.Timeout, cfg.Images.DownloadLimitBytes)

	clients := llm.FromConfig(cfg.LLM, logger)
	if len(clients) == 0 {
		logger.Warn("no model providers configured; title suggestions will be empty")
	}

	return Deps{
		Assets:      service.NewAssetService(tmdb, fanart, images, service.NewImageProcessor(), cfg.TMDB.ImageBaseURL, logger),
		Suggestions: service.NewSuggestionService(clients, cfg.LLM.RatePerMinute, cfg.LLM.Timeout, logger),
		Catalog:     service.NewCatalogService(tmdb, fanart, logger),
	}
}
