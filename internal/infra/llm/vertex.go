package llm

import (
	"context"
	"fmt"
	"strings"

	"pdf-ask-server/internal/domain"

	"cloud.google.com/go/vertexai/genai"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const defaultVertexLocation = "us-central1"

// VertexClient calls Gemini models through Vertex AI using application
// default credentials
type VertexClient struct {
	client *genai.Client
	logger domain.Logger
}

// NewVertexClient creates a Vertex AI client for projectID in location
func NewVertexClient(ctx context.Context, projectID, location string, logger domain.Logger) (*VertexClient, error) {
	if location == "" {
		location = defaultVertexLocation
	}
	client, err := genai.NewClient(ctx, projectID, location)
	if err != nil {
		return nil, fmt.Errorf("failed to create vertex ai client: %w", err)
	}
	return &VertexClient{client: client, logger: logger}, nil
}

// Generate sends a single prompt and returns the response text
func (c *VertexClient) Generate(ctx context.Context, req domain.GenerateRequest) (string, error) {
	model := c.client.GenerativeModel(req.Model)
	if req.SystemInstruction != "" {
		model.SystemInstruction = &genai.Content{
			Parts: []genai.Part{genai.Text(req.SystemInstruction)},
		}
	}

	resp, err := model.GenerateContent(ctx, genai.Text(req.Prompt))
	if err != nil {
		c.logger.Warn("Vertex AI request failed", "model", req.Model, "error", err)
		return "", classifyVertexError(err)
	}
	return vertexResponseText(resp), nil
}

// Close releases the underlying connection
func (c *VertexClient) Close() error {
	return c.client.Close()
}

func vertexResponseText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if t, ok := part.(genai.Text); ok {
			sb.WriteString(string(t))
		}
	}
	return sb.String()
}

func classifyVertexError(err error) error {
	switch status.Code(err) {
	case codes.InvalidArgument, codes.FailedPrecondition, codes.NotFound, codes.OutOfRange:
		return fmt.Errorf("%w: %w", domain.ErrMalformedInput, err)
	default:
		return fmt.Errorf("%w: %w", domain.ErrServiceUnavailable, err)
	}
}
