package handler

import (
	"errors"
	"net/http"
	"path/filepath"
	"strings"

	"pdf-ask-server/internal/domain"
)

// multipartOverhead is the allowance on top of the file limit for form
// boundaries and headers.
const multipartOverhead = 1 << 20

type DocumentHandler struct {
	documentService domain.DocumentService
	logger          domain.Logger
	maxUploadSize   int64
}

func NewDocumentHandler(documentService domain.DocumentService, logger domain.Logger, maxUploadSize int64) *DocumentHandler {
	return &DocumentHandler{
		documentService: documentService,
		logger:          logger,
		maxUploadSize:   maxUploadSize,
	}
}

// UploadDocument handles POST /upload
func (h *DocumentHandler) UploadDocument(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := GetSessionFromContext(r)
	if !ok {
		writeError(w, http.StatusInternalServerError, "Session not found in context")
		return
	}

	if h.maxUploadSize > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize+multipartOverhead)
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			writeAppError(w, domain.ErrFileTooLarge)
			return
		}
		writeError(w, http.StatusBadRequest, "File is required")
		return
	}
	defer file.Close()

	// Strip any path components from the client-provided name
	originalName := strings.TrimSpace(filepath.Base(header.Filename))
	if originalName == "" || originalName == "." || originalName == string(filepath.Separator) {
		originalName = "document.pdf"
	}

	if _, err := h.documentService.Ingest(r.Context(), sessionID, file, originalName); err != nil {
		if errors.Is(err, domain.ErrNoReadableText) {
			writeJSON(w, http.StatusBadRequest, domain.UploadResponse{Message: domain.NoReadableTextMessage})
			return
		}
		logFailure(h.logger, "Upload failed", err, "session_id", sessionID, "file", originalName)
		writeAppError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, domain.UploadResponse{Message: domain.UploadSuccessMessage})
}
