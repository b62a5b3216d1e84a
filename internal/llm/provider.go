// Package llm dispatches feedback generation to one of the supported model
// providers. The provider set is a closed enumeration; callers never branch
// on raw strings.
package llm

import (
	"context"
	"fmt"
	"slices"

	"github.com/avasari/GraderAPI/internal/config"
	"github.com/avasari/GraderAPI/internal/llm/anthropic"
	"github.com/avasari/GraderAPI/internal/llm/openai"
)

type ProviderKind string

const (
	ProviderOpenAI    ProviderKind = "openai"
	ProviderAnthropic ProviderKind = "anthropic"
)

type Provider interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Credentials travel with each submission. The key is the caller's own and is
// never logged or stored.
type Credentials struct {
	APIKey string
	Model  string
}

// Factory builds a provider client per request; injected so tests can swap in
// a stub without touching vendor SDKs.
type Factory func(kind ProviderKind, creds Credentials) (Provider, error)

func ParseProviderKind(value string) (ProviderKind, error) {
	switch ProviderKind(value) {
	case ProviderOpenAI:
		return ProviderOpenAI, nil
	case ProviderAnthropic:
		return ProviderAnthropic, nil
	default:
		return "", fmt.Errorf("unknown provider %q", value)
	}
}

// Models returns the fixed model list offered for a provider; the first entry
// is the default.
func Models(kind ProviderKind) []string {
	switch kind {
	case ProviderOpenAI:
		return config.OpenAIModels
	case ProviderAnthropic:
		return config.AnthropicModels
	default:
		return nil
	}
}

// ResolveModel validates a requested model against the provider's fixed list.
// An empty request selects the default.
func ResolveModel(kind ProviderKind, requested string) (string, error) {
	models := Models(kind)
	if len(models) == 0 {
		return "", fmt.Errorf("unknown provider %q", kind)
	}
	if requested == "" {
		return models[0], nil
	}
	if !slices.Contains(models, requested) {
		return "", fmt.Errorf("model %q is not offered for provider %q", requested, kind)
	}
	return requested, nil
}

// New is the production Factory.
func New(kind ProviderKind, creds Credentials) (Provider, error) {
	switch kind {
	case ProviderOpenAI:
		return openai.NewClient(creds.APIKey, creds.Model), nil
	case ProviderAnthropic:
		return anthropic.NewClient(creds.APIKey, creds.Model), nil
	default:
		return nil, fmt.Errorf("unknown provider %q", kind)
	}
}
