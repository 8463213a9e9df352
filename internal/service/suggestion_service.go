package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/fleveque/media-gateway/internal/llm"
	"github.com/fleveque/media-gateway/internal/metrics"
	"github.com/fleveque/media-gateway/internal/titles"
)

// suggestionPrompt asks for a bare list so the normalizer has little to undo.
const suggestionPrompt = `Return ONLY a comma-separated list of valid movie titles.
No numbering.
No explanations.
No extra text.
Give at least 25 Movies.
User query: %q`

// SuggestionService turns a free-text query into a clean list of titles.
// Model providers are tried in order; the first one that answers wins.
type SuggestionService struct {
	clients []llm.Client
	limiter *rate.Limiter
	timeout time.Duration
	logger  *zap.Logger
}

// NewSuggestionService paces outbound model calls to ratePerMinute across all
// clients. timeout bounds each individual call; zero means no extra bound.
func NewSuggestionService(clients []llm.Client, ratePerMinute int, timeout time.Duration, logger *zap.Logger) *SuggestionService {
	if ratePerMinute <= 0 {
		ratePerMinute = 1
	}
	rps := rate.Every(time.Minute / time.Duration(ratePerMinute))

	return &SuggestionService{
		clients: clients,
		limiter: rate.NewLimiter(rps, 1),
		timeout: timeout,
		logger:  logger,
	}
}

// BuildPrompt renders the instruction sent to the model for query.
func BuildPrompt(query string) string {
	return fmt.Sprintf(suggestionPrompt, query)
}

// Suggest never fails: an empty query, no configured providers, or every
// provider failing all yield an empty (non-nil) list.
func (s *SuggestionService) Suggest(ctx context.Context, query string) []string {
	query = strings.TrimSpace(query)
	if query == "" {
		return []string{}
	}

	blob := s.complete(ctx, BuildPrompt(query))
	result := titles.Normalize(blob)

	outcome := "ok"
	if len(result) == 0 {
		outcome = "empty"
	}
	metrics.TitleSuggestions.WithLabelValues(outcome).Inc()

	return result
}

// complete returns the first non-error answer, or "" when nobody answered.
func (s *SuggestionService) complete(ctx context.Context, prompt string) string {
	for _, client := range s.clients {
		if err := s.limiter.Wait(ctx); err != nil {
			s.logger.Warn("suggestion rate limiter aborted", zap.Error(err))
			return ""
		}

		start := time.Now()
		text, err := s.call(ctx, client, prompt)

		if err != nil {
			metrics.ProviderFailures.WithLabelValues(client.ProviderName()).Inc()
			s.logger.Warn("model provider failed, trying next",
				zap.String("provider", client.ProviderName()),
				zap.String("model", client.ModelName()),
				zap.Duration("duration", time.Since(start)),
				zap.Error(err),
			)
			continue
		}

		s.logger.Info("model answered",
			zap.String("provider", client.ProviderName()),
			zap.String("model", client.ModelName()),
			zap.Duration("duration", time.Since(start)),
			zap.Int("chars", len(text)),
		)
		return text
	}

	if len(s.clients) == 0 {
		s.logger.Warn("no model providers configured, returning no suggestions")
	}
	return ""
}

func (s *SuggestionService) call(ctx context.Context, client llm.Client, prompt string) (string, error) {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}
	return client.Complete(ctx, prompt)
}
