// Package llm defines how the tutoring core talks to a text-generation
// backend. Provider adapters live in the subpackages; the core depends
// only on the Client interface.
package llm

import "context"

// Client is a single synchronous text-generation call. Implementations
// do not retry; the caller owns any retry or timeout policy.
type Client interface {
	Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}
