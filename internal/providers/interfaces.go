package providers

import "context"

type ProviderInfo struct {
	Name  string `json:"name"`
	Model string `json:"model"`
}

type CompletionRequest struct {
	System      string  `json:"system"`
	Prompt      string  `json:"prompt"`
	MaxTokens   int     `json:"max_tokens"`
	Temperature float64 `json:"temperature"`
}

// Backend is a remote LLM endpoint able to complete a single prompt into raw
// text. Implementations own their HTTP timeout.
type Backend interface {
	Complete(ctx context.Context, req CompletionRequest) (string, ProviderInfo, error)
}
