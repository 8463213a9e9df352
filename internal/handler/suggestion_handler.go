package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fleveque/media-gateway/internal/service"
)

// SuggestionHandler answers free-text movie queries with a title list.
type SuggestionHandler struct {
	suggestions *service.SuggestionService
}

func NewSuggestionHandler(suggestions *service.SuggestionService) *SuggestionHandler {
	return &SuggestionHandler{suggestions: suggestions}
}

type suggestRequest struct {
	Query string `json:"query"`
}

// Suggest handles POST /api/gpt/movies with body {"query": "..."}.
// The response is always a JSON array, empty when nothing could be suggested.
func (h *SuggestionHandler) Suggest(c *gin.Context) {
	var req suggestRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, h.suggestions.Suggest(c.Request.Context(), req.Query))
}
