package llm

import "context"

// MockClient is an offline Client for development and tests. When
// GenerateFunc is nil it returns a canned tutoring reply so the chat
// loop stays usable without an API key.
type MockClient struct {
	GenerateFunc func(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

func NewMockClient() *MockClient {
	return &MockClient{}
}

func (m *MockClient) Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	if m.GenerateFunc != nil {
		return m.GenerateFunc(ctx, systemPrompt, userPrompt)
	}
	return "That's a good starting point. What do you expect the function to return for n=3, and what does it actually return?\nACTION_TAG: QUESTION", nil
}
