package config

import (
	"context"
	"errors"
	"strings"

	"pdf-ask-server/internal/domain"
	"pdf-ask-server/internal/infra/llm"
	"pdf-ask-server/internal/repository"
	"pdf-ask-server/internal/service"
	"pdf-ask-server/pkg/logger"
)

// Container holds all application dependencies
type Container struct {
	Config          domain.Config
	Logger          domain.Logger
	Sessions        domain.SessionRepository
	Uploads         domain.FileHandler
	Extractor       domain.TextExtractor
	Validator       domain.PDFValidator
	Generator       domain.Generator
	DocumentService domain.DocumentService
	AIService       domain.AIService
}

// NewContainer creates a new dependency injection container. A missing AI
// credential is logged and leaves Generator nil; other wiring errors are
// returned.
func NewContainer(ctx context.Context) (*Container, error) {
	cfg := NewConfig()
	appLogger := logger.NewLogger(cfg.GetLogLevel(), cfg.GetLogFormat())

	sessions := repository.NewInMemorySessionRepository(cfg.GetSessionMaxEntries(), cfg.GetSessionTTL(), appLogger)
	uploads := service.NewUploadStorage(cfg.GetUploadPath(), cfg.GetMaxFileSize(), appLogger)

	extractor, err := service.NewTextExtractor(cfg.GetPDFBackend(), appLogger)
	if err != nil {
		return nil, err
	}

	var validator domain.PDFValidator
	if cfg.GetPDFValidate() {
		validator = service.NewPDFValidator()
	}

	provider := llm.Provider(strings.ToLower(cfg.GetAIProvider()))
	var baseURL string
	if provider == llm.ProviderOpenAI {
		baseURL = cfg.GetOpenAIBaseURL()
	}
	generator, err := llm.New(ctx, llm.Settings{
		Provider:     provider,
		GeminiAPIKey: cfg.GetGeminiAPIKey(),
		GCPProjectID: cfg.GetGCPProjectID(),
		GCPLocation:  cfg.GetGCPLocation(),
		OpenAIAPIKey: cfg.GetOpenAIAPIKey(),
		BaseURL:      baseURL,
	}, appLogger)
	switch {
	case errors.Is(err, domain.ErrAINotConfigured):
		appLogger.Warn("AI service disabled", "reason", err.Error())
		generator = nil
	case err != nil:
		return nil, err
	}

	documentService := service.NewDocumentService(uploads, validator, extractor, sessions, appLogger)
	aiService := service.NewAIService(generator, sessions, appLogger, service.AIOptions{
		Model:             cfg.GetAIModel(),
		SystemInstruction: cfg.GetAISystemInstruction(),
		MaxDocumentChars:  cfg.GetMaxDocumentChars(),
	})

	return &Container{
		Config:          cfg,
		Logger:          appLogger,
		Sessions:        sessions,
		Uploads:         uploads,
		Extractor:       extractor,
		Validator:       validator,
		Generator:       generator,
		DocumentService: documentService,
		AIService:       aiService,
	}, nil
}
