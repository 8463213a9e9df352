package handler

import (
	"net/http"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestHealthHandler(t *testing.T) {
	h := NewHealthHandler()
	r := gin.New()
	r.GET("/", h.Root)
	r.GET("/healthz", h.Healthz)

	if w := serve(r, "/healthz"); w.Body.String() != `{"service":"media-gateway","status":"ok"}` {
		t.Errorf("unexpected healthz body %s", w.Body.String())
	}

	w := serve(r, "/")
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "running") {
		t.Errorf("unexpected banner %d %q", w.Code, w.Body.String())
	}
}
