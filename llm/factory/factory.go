// Package factory builds the configured llm.Client. It lives outside the
// llm package so provider subpackages and the interface stay import-cycle
// free.
package factory

import (
	"fmt"

	"github.com/solex2006/astra-social-tutor/config"
	"github.com/solex2006/astra-social-tutor/llm"
	"github.com/solex2006/astra-social-tutor/llm/anthropic"
	"github.com/solex2006/astra-social-tutor/llm/openai"
)

// NewClient builds the llm.Client selected by cfg.LLMProvider. The mock
// provider needs no credentials and keeps the whole stack runnable offline.
func NewClient(cfg *config.Config) (llm.Client, error) {
	switch cfg.LLMProvider {
	case "openai":
		if cfg.OpenAIAPIKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY is required for the openai provider")
		}
		return openai.New(cfg.OpenAIAPIKey, cfg.LLMModel)
	case "anthropic":
		if cfg.AnthropicAPIKey == "" {
			return nil, fmt.Errorf("ANTHROPIC_API_KEY is required for the anthropic provider")
		}
		return anthropic.New(cfg.AnthropicAPIKey, cfg.LLMModel)
	case "mock", "":
		return llm.NewMockClient(), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.LLMProvider)
	}
}
