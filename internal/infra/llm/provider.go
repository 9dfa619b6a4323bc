// Package llm adapts hosted text-generation services to domain.Generator.
package llm

import (
	"context"
	"fmt"
	"strings"

	"pdf-ask-server/internal/domain"
)

// Provider names a generation backend
type Provider string

const (
	ProviderGemini Provider = "gemini"
	ProviderVertex Provider = "vertex"
	ProviderOpenAI Provider = "openai"
)

// Settings selects and configures a provider
type Settings struct {
	Provider     Provider
	GeminiAPIKey string
	GCPProjectID string
	GCPLocation  string
	OpenAIAPIKey string
	// BaseURL overrides the provider endpoint (Gemini and OpenAI only).
	BaseURL string
}

// New builds the generator for s.Provider. Missing credentials yield
// domain.ErrAINotConfigured so callers can start without a model.
func New(ctx context.Context, s Settings, logger domain.Logger) (domain.Generator, error) {
	provider := Provider(strings.ToLower(strings.TrimSpace(string(s.Provider))))
	if provider == "" {
		provider = ProviderGemini
	}

	switch provider {
	case ProviderGemini:
		if s.GeminiAPIKey == "" {
			return nil, fmt.Errorf("%w: GEMINI_API_KEY is not set", domain.ErrAINotConfigured)
		}
		client, err := NewGeminiClient(ctx, s.GeminiAPIKey, s.BaseURL, logger)
		if err != nil {
			return nil, err
		}
		return client, nil
	case ProviderVertex:
		if s.GCPProjectID == "" {
			return nil, fmt.Errorf("%w: GCP_PROJECT_ID is not set", domain.ErrAINotConfigured)
		}
		client, err := NewVertexClient(ctx, s.GCPProjectID, s.GCPLocation, logger)
		if err != nil {
			return nil, err
		}
		return client, nil
	case ProviderOpenAI:
		if s.OpenAIAPIKey == "" {
			return nil, fmt.Errorf("%w: OPENAI_API_KEY is not set", domain.ErrAINotConfigured)
		}
		return NewOpenAIClient(s.OpenAIAPIKey, s.BaseURL, logger), nil
	default:
		return nil, fmt.Errorf("unknown AI provider %q", s.Provider)
	}
}

// classifyStatus maps an upstream HTTP status onto the domain error kinds.
// Client errors other than auth and throttling mean the request itself was
// rejected; everything else is treated as the service being unavailable.
func classifyStatus(status int, err error) error {
	switch {
	case status == 401 || status == 403 || status == 408 || status == 429:
		return fmt.Errorf("%w: %w", domain.ErrServiceUnavailable, err)
	case status >= 400 && status < 500:
		return fmt.Errorf("%w: %w", domain.ErrMalformedInput, err)
	default:
		return fmt.Errorf("%w: %w", domain.ErrServiceUnavailable, err)
	}
}
