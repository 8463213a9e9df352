package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/fleveque/media-gateway/internal/service"
)

// CatalogHandler exposes the TMDB and fanart.tv passthrough routes.
type CatalogHandler struct {
	catalog *service.CatalogService
	logger  *zap.Logger
}

func NewCatalogHandler(catalog *service.CatalogService, logger *zap.Logger) *CatalogHandler {
	return &CatalogHandler{catalog: catalog, logger: logger}
}

func (h *CatalogHandler) upstreamError(c *gin.Context, route string, err error) {
	h.logger.Warn("catalog upstream failed",
		zap.String("route", route),
		zap.Error(err),
	)
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}

// Search handles GET /api/movies/search?q=
func (h *CatalogHandler) Search(c *gin.Context) {
	raw, err := h.catalog.Search(c.Request.Context(), c.Query("q"))
	if err != nil {
		h.upstreamError(c, "search", err)
		return
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", raw)
}

// Genre returns a handler for GET /api/movies/<name>.
func (h *CatalogHandler) Genre(name string) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, err := h.catalog.Genre(c.Request.Context(), name)
		if err != nil {
			h.upstreamError(c, "genre/"+name, err)
			return
		}
		c.Data(http.StatusOK, "application/json; charset=utf-8", raw)
	}
}

// Trailer handles GET /api/movies/:id/trailer. The body is the video object
// or null.
func (h *CatalogHandler) Trailer(c *gin.Context) {
	video, err := h.catalog.Trailer(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.upstreamError(c, "trailer", err)
		return
	}
	c.JSON(http.StatusOK, video)
}

// FanartLogos handles GET /api/fanart/movie/:tmdbId.
func (h *CatalogHandler) FanartLogos(c *gin.Context) {
	logos, err := h.catalog.FanartLogos(c.Request.Context(), c.Param("tmdbId"))
	if err != nil {
		h.upstreamError(c, "fanart", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"logos": logos})
}
