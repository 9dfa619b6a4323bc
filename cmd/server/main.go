package main

import (
	"context"
	"errors"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pdf-ask-server/internal/config"
	"pdf-ask-server/internal/handler"

	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found or could not be loaded: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Wiring
	container, err := config.NewContainer(ctx)
	if err != nil {
		log.Fatalf("Failed to initialise: %v", err)
	}
	cfg := container.Config

	// Handlers
	pageHandler := handler.NewPageHandler(container.Logger, cfg.GetMaxFileSize())
	documentHandler := handler.NewDocumentHandler(container.DocumentService, container.Logger, cfg.GetMaxFileSize())
	aiHandler := handler.NewAIHandler(container.AIService, container.Logger)
	sessionMiddleware := handler.NewSessionMiddleware(container.Logger, cfg.GetCookieSecure())

	// Router
	router := handler.NewRouter(pageHandler, documentHandler, aiHandler, handler.RouterOptions{
		Sessions:       sessionMiddleware.Middleware,
		AskLimiter:     handler.RateLimit(cfg.GetAskRateLimit(), cfg.GetAskRateBurst()),
		Logger:         container.Logger,
		AllowedOrigins: cfg.GetCORSAllowedOrigins(),
	})

	server := &http.Server{
		Addr:              "0.0.0.0:" + cfg.GetServerPort(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Run server
	go func() {
		container.Logger.Info("Server listening",
			"address", server.Addr,
			"pdf_backend", string(container.Extractor.Backend()),
			"ai_provider", cfg.GetAIProvider(),
			"ai_enabled", container.Generator != nil,
		)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			container.Logger.Error("Server failed to start", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	<-ctx.Done()
	container.Logger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		container.Logger.Error("Graceful shutdown failed", err)
		_ = server.Close()
	}

	if closer, ok := container.Generator.(io.Closer); ok {
		_ = closer.Close()
	}

	container.Logger.Info("Server exited")
}
