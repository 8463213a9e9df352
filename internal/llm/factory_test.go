package llm

import (
	"testing"

	"go.uber.org/zap"

	"github.com/fleveque/media-gateway/internal/config"
)

func TestFromConfig(t *testing.T) {
	cfg := config.LLMConfig{
		ProviderOrder: []string{"anthropic", "bogus", "openrouter"},
		OpenRouter:    config.OpenRouterConfig{APIKey: "or", BaseURL: "https://openrouter.ai/api/v1", Model: "m1"},
		Anthropic:     config.AnthropicConfig{APIKey: "an", Model: "m2"},
	}

	clients := FromConfig(cfg, zap.NewNop())
	if len(clients) != 2 {
		t.Fatalf("expected 2 clients, got %d", len(clients))
	}
	if clients[0].ProviderName() != "anthropic" || clients[1].ProviderName() != "openrouter" {
		t.Errorf("order not preserved: %s, %s", clients[0].ProviderName(), clients[1].ProviderName())
	}
	if clients[1].ModelName() != "m1" {
		t.Errorf("unexpected model %q", clients[1].ModelName())
	}
}

func TestFromConfig_SkipsMissingKeys(t *testing.T) {
	cfg := config.LLMConfig{
		ProviderOrder: []string{"openrouter", "anthropic"},
		Anthropic:     config.AnthropicConfig{APIKey: "an", Model: "m2"},
	}

	clients := FromConfig(cfg, zap.NewNop())
	if len(clients) != 1 || clients[0].ProviderName() != "anthropic" {
		t.Errorf("expected only anthropic, got %d clients", len(clients))
	}
}
