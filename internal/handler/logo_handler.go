package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/fleveque/media-gateway/internal/model"
	"github.com/fleveque/media-gateway/internal/service"
)

// LogoHandler serves resolved logos, either as JSON or as a rendered PNG.
type LogoHandler struct {
	assets *service.AssetService
	logger *zap.Logger
}

func NewLogoHandler(assets *service.AssetService, logger *zap.Logger) *LogoHandler {
	return &LogoHandler{
		assets: assets,
		logger: logger,
	}
}

// invalidAsset keeps the ResolvedAsset shape on validation failures so
// clients can always read provenance and logo.
type invalidAsset struct {
	model.ResolvedAsset
	Error string `json:"error"`
}

func (h *LogoHandler) badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, invalidAsset{ResolvedAsset: model.NoAsset(), Error: err.Error()})
}

// GetLogo resolves the best logo for a movie or series.
// Route: GET /api/logos/:kind/:id
func (h *LogoHandler) GetLogo(c *gin.Context) {
	kind, err := model.ParseMediaKind(c.Param("kind"))
	if err != nil {
		h.badRequest(c, err)
		return
	}

	asset, err := h.assets.Resolve(c.Request.Context(), kind, c.Param("id"))
	if err != nil {
		h.badRequest(c, err)
		return
	}

	c.JSON(http.StatusOK, asset)
}

// GetLogoImage renders the resolved logo as a PNG.
// Route: GET /api/logos/:kind/:id/image?size=m&bg=ffffff
func (h *LogoHandler) GetLogoImage(c *gin.Context) {
	kind, err := model.ParseMediaKind(c.Param("kind"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sizeStr := c.DefaultQuery("size", "m")
	if !model.ValidSize(sizeStr) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "invalid size: must be one of " + model.SizeNames(),
		})
		return
	}

	bg := c.Query("bg")
	if bg != "" {
		if _, _, _, err := service.ParseHexColor(bg); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "invalid background color: " + err.Error(),
			})
			return
		}
	}

	id := c.Param("id")
	data, err := h.assets.RenderLogo(c.Request.Context(), kind, id, model.LogoSize(sizeStr), bg)
	switch {
	case err == nil:
	case errors.Is(err, model.ErrMissingMediaID), errors.Is(err, model.ErrUnsupportedMediaKind):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	case errors.Is(err, service.ErrLogoNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "logo not found"})
		return
	default:
		h.logger.Warn("logo render failed",
			zap.String("kind", string(kind)),
			zap.String("id", id),
			zap.Error(err),
		)
		c.JSON(http.StatusBadGateway, gin.H{"error": "logo could not be rendered"})
		return
	}

	c.Header("Cache-Control", "public, max-age=86400")
	c.Data(http.StatusOK, "image/png", data)
}
