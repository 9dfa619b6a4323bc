package service

import (
	"context"
	"errors"
	"fmt"

	"pdf-ask-server/internal/domain"
)

const (
	DefaultModel             = "gemini-2.5-flash-lite"
	DefaultSystemInstruction = "Be clear and simple"
	EmptyQuestionAnswer      = "Please ask a question."
)

// AIOptions configures how questions are turned into generation requests
type AIOptions struct {
	Model             string
	SystemInstruction string
	MaxDocumentChars  int
}

// AIService answers questions grounded in the session's current document
type AIService struct {
	generator domain.Generator
	sessions  domain.SessionRepository
	logger    domain.Logger
	opts      AIOptions
}

// NewAIService creates the ask use case. A nil generator makes every
// non-empty question fail with domain.ErrAINotConfigured.
func NewAIService(
	generator domain.Generator,
	sessions domain.SessionRepository,
	logger domain.Logger,
	opts AIOptions,
) *AIService {
	if opts.Model == "" {
		opts.Model = DefaultModel
	}
	if opts.SystemInstruction == "" {
		opts.SystemInstruction = DefaultSystemInstruction
	}
	return &AIService{
		generator: generator,
		sessions:  sessions,
		logger:    logger,
		opts:      opts,
	}
}

// Ask sends one generation request for question, passed through verbatim.
// Empty questions are answered locally without contacting the generator.
func (s *AIService) Ask(ctx context.Context, sessionID string, question string) (*domain.AskResponse, error) {
	if question == "" {
		return &domain.AskResponse{Answer: EmptyQuestionAnswer}, nil
	}
	if s.generator == nil {
		return nil, domain.ErrAINotConfigured
	}

	var documentText string
	if doc, ok := s.sessions.Get(sessionID); ok && doc.HasText() {
		documentText = doc.Text
	}

	prompt := BuildPrompt(documentText, question, s.opts.MaxDocumentChars)
	s.logger.Debug("Ask AI",
		"session_id", sessionID,
		"model", s.opts.Model,
		"grounded", documentText != "",
		"prompt_chars", len(prompt),
	)

	answer, err := s.generator.Generate(ctx, domain.GenerateRequest{
		Model:             s.opts.Model,
		SystemInstruction: s.opts.SystemInstruction,
		Prompt:            prompt,
	})
	if err != nil {
		if !errors.Is(err, domain.ErrMalformedInput) && !errors.Is(err, domain.ErrServiceUnavailable) {
			err = fmt.Errorf("%w: %w", domain.ErrServiceUnavailable, err)
		}
		return nil, err
	}

	return &domain.AskResponse{Answer: answer}, nil
}
