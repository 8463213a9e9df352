package llm

import (
	"strings"

	"go.uber.org/zap"

	"github.com/fleveque/media-gateway/internal/config"
)

// FromConfig builds the clients named in cfg.ProviderOrder, in that order.
// Providers without an API key are skipped; unknown names are logged and
// skipped.
func FromConfig(cfg config.LLMConfig, logger *zap.Logger) []Client {
	var clients []Client
	for _, name := range cfg.ProviderOrder {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "openrouter":
			if cfg.OpenRouter.APIKey == "" {
				logger.Info("openrouter disabled: no API key")
				continue
			}
			clients = append(clients, NewOpenAIClient("openrouter", cfg.OpenRouter.APIKey, cfg.OpenRouter.BaseURL, cfg.OpenRouter.Model))
		case "anthropic":
			if cfg.Anthropic.APIKey == "" {
				logger.Info("anthropic disabled: no API key")
				continue
			}
			clients = append(clients, NewAnthropicClient(cfg.Anthropic.APIKey, cfg.Anthropic.Model))
		default:
			logger.Warn("unknown model provider in provider_order", zap.String("provider", name))
		}
	}
	return clients
}
