package llm

import (
	"context"
	"errors"
	"fmt"

	"pdf-ask-server/internal/domain"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// OpenAIClient calls any OpenAI-compatible chat completions endpoint
type OpenAIClient struct {
	client *openai.Client
	logger domain.Logger
}

// NewOpenAIClient creates a chat completions client. baseURL may be empty.
func NewOpenAIClient(apiKey, baseURL string, logger domain.Logger) *OpenAIClient {
	opts := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(0),
	}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}

	client := openai.NewClient(opts...)
	return &OpenAIClient{client: &client, logger: logger}
}

// Generate sends a single prompt and returns the first choice's content
func (c *OpenAIClient) Generate(ctx context.Context, req domain.GenerateRequest) (string, error) {
	var messages []openai.ChatCompletionMessageParamUnion
	if req.SystemInstruction != "" {
		messages = append(messages, openai.SystemMessage(req.SystemInstruction))
	}
	messages = append(messages, openai.UserMessage(req.Prompt))

	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:    req.Model,
		Messages: messages,
	})
	if err != nil {
		c.logger.Warn("OpenAI request failed", "model", req.Model, "error", err)
		var apiErr *openai.Error
		if errors.As(err, &apiErr) {
			return "", classifyStatus(apiErr.StatusCode, err)
		}
		return "", fmt.Errorf("%w: %w", domain.ErrServiceUnavailable, err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: response has no choices", domain.ErrServiceUnavailable)
	}
	return resp.Choices[0].Message.Content, nil
}
