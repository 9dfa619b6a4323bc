package service

import (
	"context"
	"errors"
	"io"
	"time"

	"pdf-ask-server/internal/domain"
)

// DocumentService ingests uploads into a session's current document
type DocumentService struct {
	uploads   domain.FileHandler
	validator domain.PDFValidator
	extractor domain.TextExtractor
	sessions  domain.SessionRepository
	logger    domain.Logger
	now       func() time.Time
}

// NewDocumentService creates a new document service. validator may be nil.
func NewDocumentService(
	uploads domain.FileHandler,
	validator domain.PDFValidator,
	extractor domain.TextExtractor,
	sessions domain.SessionRepository,
	logger domain.Logger,
) *DocumentService {
	return &DocumentService{
		uploads:   uploads,
		validator: validator,
		extractor: extractor,
		sessions:  sessions,
		logger:    logger,
		now:       time.Now,
	}
}

// Ingest stages, extracts and stores file as the session's current document.
// When the extracted text is blank the session is left with an empty
// document and domain.ErrNoReadableText is returned. Extraction failures
// leave the previous document untouched.
func (s *DocumentService) Ingest(ctx context.Context, sessionID string, file io.Reader, originalName string) (*domain.Document, error) {
	if file == nil {
		return nil, errors.New("file is required")
	}

	staged, err := s.uploads.SaveUpload(ctx, file)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := s.uploads.CleanupTemporary(staged.ID); err != nil {
			s.logger.Warn("Failed to clean up staged upload", "file_id", staged.ID, "error", err)
		}
	}()

	// Validation is advisory; only an extraction failure fails the upload.
	var validationErr error
	if s.validator != nil {
		if validationErr = s.validator.Validate(staged.Path); validationErr != nil {
			s.logger.Warn("Staged upload failed validation",
				"session_id", sessionID,
				"file", originalName,
				"error", validationErr,
			)
		}
	}

	extracted, err := s.extractor.ExtractText(ctx, staged.Path)
	if err != nil {
		if validationErr != nil {
			return nil, errors.Join(err, validationErr)
		}
		return nil, err
	}

	doc := &domain.Document{
		Text:         extracted.Content,
		OriginalName: originalName,
		PageCount:    extracted.PageCount,
		IngestedAt:   s.now(),
	}

	if doc.IsBlank() {
		doc.Text = ""
		s.sessions.Replace(sessionID, doc)
		s.logger.Info("Uploaded document has no readable text",
			"session_id", sessionID,
			"file", originalName,
			"pages", extracted.PageCount,
		)
		return nil, domain.ErrNoReadableText
	}

	s.sessions.Replace(sessionID, doc)
	s.logger.Info("Document ingested",
		"session_id", sessionID,
		"file", originalName,
		"backend", string(s.extractor.Backend()),
		"pages", extracted.PageCount,
		"text_pages", extracted.TextPages,
		"chars", len(doc.Text),
		"bytes", staged.Size,
		"active_sessions", s.sessions.Len(),
	)
	return doc, nil
}
