// Package anthropic adapts the Anthropic Messages API to the llm.Client
// interface.
package anthropic

import (
	"context"
	"fmt"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

const DefaultModel = anthropic.ModelClaude4Sonnet20250514

type Client struct {
	client *anthropic.Client
	model  anthropic.Model
}

func New(apiKey, model string, requestOpts ...option.RequestOption) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("anthropic API key is required")
	}

	opts := append([]option.RequestOption{option.WithAPIKey(apiKey)}, requestOpts...)
	client := anthropic.NewClient(opts...)

	m := DefaultModel
	if model != "" {
		m = anthropic.Model(model)
	}

	return &Client{client: &client, model: m}, nil
}

func (c *Client) Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	response, err := c.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     c.model,
		MaxTokens: 4096,
		System: []anthropic.TextBlockParam{
			{Text: systemPrompt},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(userPrompt)),
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to call Anthropic API: %w", err)
	}

	text := ""
	for _, block := range response.Content {
		switch block := block.AsAny().(type) {
		case anthropic.TextBlock:
			text += block.Text
		}
	}

	if text == "" {
		return "", fmt.Errorf("no text content in Anthropic response")
	}

	return text, nil
}
