package providers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

const (
	openAIBaseURL     = "https://api.openai.com/v1"
	openRouterBaseURL = "https://openrouter.ai/api/v1"

	defaultOpenAIModel     = "gpt-4o-mini"
	defaultOpenRouterModel = "openai/gpt-4o-mini"
)

// OpenAIBackend calls an OpenAI-compatible chat-completions endpoint.
// OpenRouter reuses it with a different base URL and attribution headers.
type OpenAIBackend struct {
	name    string
	baseURL string
	apiKey  string
	model   string
	headers map[string]string
	client  *http.Client
}

func NewOpenAIBackend(model string, timeout time.Duration) *OpenAIBackend {
	if model == "" {
		model = defaultOpenAIModel
	}
	return &OpenAIBackend{
		name:    "openai",
		baseURL: openAIBaseURL,
		apiKey:  os.Getenv("OPENAI_API_KEY"),
		model:   model,
		client:  &http.Client{Timeout: timeout},
	}
}

func NewOpenRouterBackend(model string, timeout time.Duration) *OpenAIBackend {
	if model == "" {
		model = defaultOpenRouterModel
	}
	return &OpenAIBackend{
		name:    "openrouter",
		baseURL: openRouterBaseURL,
		apiKey:  os.Getenv("OPENROUTER_API_KEY"),
		model:   model,
		headers: map[string]string{
			"HTTP-Referer": "http://localhost:8080",
			"X-Title":      "fieldscope",
		},
		client: &http.Client{Timeout: timeout},
	}
}

func (o *OpenAIBackend) Complete(ctx context.Context, req CompletionRequest) (string, ProviderInfo, error) {
	info := ProviderInfo{Name: o.name, Model: o.model}
	if o.apiKey == "" {
		return "", info, fmt.Errorf("%s api key missing", o.name)
	}
	payload, _ := json.Marshal(map[string]any{
		"model": o.model,
		"messages": []map[string]string{
			{"role": "system", "content": req.System},
			{"role": "user", "content": req.Prompt},
		},
		"temperature": req.Temperature,
		"max_tokens":  req.MaxTokens,
	})
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, o.baseURL+"/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return "", info, fmt.Errorf("build %s request: %w", o.name, err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+o.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")
	for k, v := range o.headers {
		httpReq.Header.Set(k, v)
	}
	resp, err := o.client.Do(httpReq)
	if err != nil {
		return "", info, fmt.Errorf("%s completion request failed: %w", o.name, err)
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode >= 400 {
		return "", info, fmt.Errorf("%s completion error %d: %s", o.name, resp.StatusCode, string(body))
	}
	var parsed struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", info, fmt.Errorf("decode %s response: %w", o.name, err)
	}
	if len(parsed.Choices) == 0 {
		return "", info, fmt.Errorf("%s returned empty choices", o.name)
	}
	return parsed.Choices[0].Message.Content, info, nil
}
