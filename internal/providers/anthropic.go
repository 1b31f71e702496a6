package providers

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

const defaultClaudeModel = "claude-3-haiku-20240307"

// ClaudeBackend completes prompts through the Anthropic Messages API.
type ClaudeBackend struct {
	client anthropic.Client
	model  string
}

func NewClaudeBackend(model string, timeout time.Duration) *ClaudeBackend {
	if model == "" {
		model = defaultClaudeModel
	}
	return &ClaudeBackend{
		client: anthropic.NewClient(
			option.WithAPIKey(os.Getenv("ANTHROPIC_API_KEY")),
			option.WithRequestTimeout(timeout),
		),
		model: model,
	}
}

func (c *ClaudeBackend) Complete(ctx context.Context, req CompletionRequest) (string, ProviderInfo, error) {
	info := ProviderInfo{Name: "claude", Model: c.model}
	message, err := c.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:       anthropic.Model(c.model),
		MaxTokens:   int64(req.MaxTokens),
		Temperature: anthropic.Float(req.Temperature),
		System: []anthropic.TextBlockParam{
			{Text: req.System},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(req.Prompt)),
		},
	})
	if err != nil {
		return "", info, fmt.Errorf("anthropic completion failed: %w", err)
	}
	for _, block := range message.Content {
		if block.Type == "text" {
			return block.Text, info, nil
		}
	}
	return "", info, fmt.Errorf("no text content in anthropic response")
}
