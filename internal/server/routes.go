package server

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/fleveque/media-gateway/internal/handler"
	"github.com/fleveque/media-gateway/internal/metrics"
	"github.com/fleveque/media-gateway/internal/service"
)

// Deps carries the services the routes need. cmd/server builds them.
type Deps struct {
	Assets      *service.AssetService
	Suggestions *service.SuggestionService
	Catalog     *service.CatalogService
}

// RegisterRoutes sets up all HTTP routes on the Gin engine.
func RegisterRoutes(r *gin.Engine, deps Deps, logger *zap.Logger) {
	healthHandler := handler.NewHealthHandler()
	logoHandler := handler.NewLogoHandler(deps.Assets, logger)
	suggestionHandler := handler.NewSuggestionHandler(deps.Suggestions)
	catalogHandler := handler.NewCatalogHandler(deps.Catalog, logger)

	r.GET("/", healthHandler.Root)
	r.GET("/healthz", healthHandler.Healthz)
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	api := r.Group("/api")
	{
		api.GET("/logos/:kind/:id", logoHandler.GetLogo)
		api.GET("/logos/:kind/:id/image", logoHandler.GetLogoImage)

		api.POST("/gpt/movies", suggestionHandler.Suggest)

		api.GET("/movies/search", catalogHandler.Search)
		for _, genre := range service.GenreNames() {
			api.GET("/movies/"+genre, catalogHandler.Genre(genre))
		}
		api.GET("/movies/:id/trailer", catalogHandler.Trailer)

		api.GET("/fanart/movie/:tmdbId", catalogHandler.FanartLogos)
	}
}
