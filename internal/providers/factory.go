package providers

import (
	"fmt"
	"strings"
	"time"
)

// DefaultModel reports the model a backend falls back to when no override is
// configured.
func DefaultModel(provider string) string {
	switch strings.ToLower(strings.TrimSpace(provider)) {
	case "openai":
		return defaultOpenAIModel
	case "openrouter":
		return defaultOpenRouterModel
	case "claude":
		return defaultClaudeModel
	default:
		return "mock-classifier-v1"
	}
}

// New builds the backend selected by the provider name. Model may be empty,
// in which case each backend falls back to its cost-effective default.
func New(provider, model string, timeout time.Duration) (Backend, error) {
	switch strings.ToLower(strings.TrimSpace(provider)) {
	case "openai":
		return NewOpenAIBackend(model, timeout), nil
	case "openrouter":
		return NewOpenRouterBackend(model, timeout), nil
	case "claude":
		return NewClaudeBackend(model, timeout), nil
	case "mock", "":
		return NewMockBackend(), nil
	default:
		return nil, fmt.Errorf("unsupported provider: %s", provider)
	}
}
