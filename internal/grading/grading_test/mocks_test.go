package grading_test

import (
	"context"

	"github.com/avasari/GraderAPI/internal/llm"
)

// MockProvider implements llm.Provider
type MockProvider struct {
	OnGenerate func(ctx context.Context, prompt string) (string, error)

	// LastPrompt records the prompt of the most recent call for assertions.
	LastPrompt string
}

func (m *MockProvider) Generate(ctx context.Context, prompt string) (string, error) {
	m.LastPrompt = prompt
	if m.OnGenerate != nil {
		return m.OnGenerate(ctx, prompt)
	}
	return "mocked feedback", nil
}

// StubFactory wires a MockProvider in as the production factory would wire a
// vendor SDK client.
func StubFactory(p *MockProvider, err error) llm.Factory {
	return func(kind llm.ProviderKind, creds llm.Credentials) (llm.Provider, error) {
		if err != nil {
			return nil, err
		}
		return p, nil
	}
}
