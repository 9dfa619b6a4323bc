package llm

import (
	"context"
	"errors"
	"fmt"

	"pdf-ask-server/internal/domain"

	"google.golang.org/genai"
)

// GeminiClient calls the Gemini Developer API with an API key
type GeminiClient struct {
	client *genai.Client
	logger domain.Logger
}

// NewGeminiClient creates a Gemini API client. baseURL may be empty.
func NewGeminiClient(ctx context.Context, apiKey, baseURL string, logger domain.Logger) (*GeminiClient, error) {
	cfg := &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	}
	if baseURL != "" {
		cfg.HTTPOptions = genai.HTTPOptions{BaseURL: baseURL}
	}

	client, err := genai.NewClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	return &GeminiClient{client: client, logger: logger}, nil
}

// Generate sends a single prompt and returns the response text
func (c *GeminiClient) Generate(ctx context.Context, req domain.GenerateRequest) (string, error) {
	var config *genai.GenerateContentConfig
	if req.SystemInstruction != "" {
		config = &genai.GenerateContentConfig{
			SystemInstruction: genai.NewContentFromText(req.SystemInstruction, genai.RoleUser),
		}
	}

	resp, err := c.client.Models.GenerateContent(ctx, req.Model, genai.Text(req.Prompt), config)
	if err != nil {
		c.logger.Warn("Gemini request failed", "model", req.Model, "error", err)
		return "", classifyGeminiError(err)
	}
	return resp.Text(), nil
}

func classifyGeminiError(err error) error {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return classifyStatus(apiErr.Code, err)
	}
	var apiErrPtr *genai.APIError
	if errors.As(err, &apiErrPtr) {
		return classifyStatus(apiErrPtr.Code, err)
	}
	return fmt.Errorf("%w: %w", domain.ErrServiceUnavailable, err)
}
