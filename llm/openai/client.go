// Package openai adapts the OpenAI chat API to the llm.Client interface.
package openai

import (
	"context"
	"fmt"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
	"github.com/tmc/langchaingo/schema"
)

const DefaultModel = "gpt-4o-mini"

type Client struct {
	llm llms.Model
}

type Option func(*settings)

type settings struct {
	baseURL string
}

// WithBaseURL points the client at an alternative API endpoint.
func WithBaseURL(url string) Option {
	return func(s *settings) {
		s.baseURL = url
	}
}

func New(apiKey, model string, opts ...Option) (*Client, error) {
	if model == "" {
		model = DefaultModel
	}

	var s settings
	for _, opt := range opts {
		opt(&s)
	}

	llmOpts := []openai.Option{
		openai.WithModel(model),
		openai.WithToken(apiKey),
	}
	if s.baseURL != "" {
		llmOpts = append(llmOpts, openai.WithBaseURL(s.baseURL))
	}

	llm, err := openai.New(llmOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create OpenAI client: %w", err)
	}

	return &Client{llm: llm}, nil
}

func (c *Client) Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	messageHistory := []llms.MessageContent{
		llms.TextParts(schema.ChatMessageTypeSystem, systemPrompt),
		llms.TextParts(schema.ChatMessageTypeHuman, userPrompt),
	}

	resp, err := c.llm.GenerateContent(ctx, messageHistory, llms.WithTemperature(0.7))
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no choices in LLM response")
	}

	return resp.Choices[0].Content, nil
}
