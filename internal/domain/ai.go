package domain

import "context"

// GenerateRequest is a single prompt sent to the generation service.
type GenerateRequest struct {
	Model             string
	SystemInstruction string
	Prompt            string
}

// Generator calls a hosted text-generation model.
type Generator interface {
	Generate(ctx context.Context, req GenerateRequest) (string, error)
}

// AIService defines operations for the ask feature.
type AIService interface {
	Ask(ctx context.Context, sessionID string, question string) (*AskResponse, error)
}

// DTOs

type AskRequest struct {
	Question string `json:"question"`
}

type AskResponse struct {
	Answer string `json:"answer"`
}
