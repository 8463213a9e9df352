// Package llm provides a provider-agnostic interface for asking a generative
// model a free-text question and getting its raw text answer back.
package llm

import (
	"context"
	"errors"
)

// ErrEmptyResponse is returned when a model answers with no text at all.
var ErrEmptyResponse = errors.New("model returned no text")

// Client is the interface for text-generation providers. The OpenAI-compatible
// client and the Anthropic client both implement it, allowing the caller to
// fall back from one to the other.
//
// Keep interfaces small: one call plus two names for logging.
type Client interface {
	Complete(ctx context.Context, prompt string) (string, error)
	ProviderName() string
	ModelName() string
}
