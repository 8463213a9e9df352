// Package handler contains HTTP request handlers. Each handler is a thin
// struct around one service; request parsing and status mapping live here,
// decisions live in the service package.
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const serviceName = "media-gateway"

// HealthHandler handles liveness requests.
type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// Root answers GET / with a plain-text banner.
func (h *HealthHandler) Root(c *gin.Context) {
	c.String(http.StatusOK, "%s is running", serviceName)
}

// Healthz responds with service status.
func (h *HealthHandler) Healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": serviceName,
	})
}
