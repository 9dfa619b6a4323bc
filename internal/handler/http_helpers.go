package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"pdf-ask-server/internal/domain"
	apperrors "pdf-ask-server/pkg/errors"
)

type contextKey string

const sessionContextKey contextKey = "session"

// GetSessionFromContext extracts the session id placed by SessionMiddleware
func GetSessionFromContext(r *http.Request) (string, bool) {
	id, ok := r.Context().Value(sessionContextKey).(string)
	return id, ok && id != ""
}

// writeJSON writes a JSON response
func writeJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(data)
}

// writeError writes an error response
func writeError(w http.ResponseWriter, statusCode int, message string) {
	writeJSON(w, statusCode, map[string]string{"error": message})
}

// writeAppError writes err using the status and message of its AppError
// translation
func writeAppError(w http.ResponseWriter, err error) {
	appErr := toAppError(err)
	writeError(w, apperrors.GetStatusCode(appErr), appErr.Message)
}

// logFailure logs unexpected failures as errors and client or upstream
// failures as warnings
func logFailure(logger domain.Logger, msg string, err error, fields ...interface{}) {
	if apperrors.IsType(toAppError(err), apperrors.ErrorTypeInternal) {
		logger.Error(msg, err, fields...)
		return
	}
	logger.Warn(msg, append(fields, "error", err)...)
}

// toAppError maps domain failures onto client-facing errors
func toAppError(err error) *apperrors.AppError {
	var appErr *apperrors.AppError
	switch {
	case errors.As(err, &appErr):
		return appErr
	case errors.Is(err, domain.ErrFileTooLarge):
		return apperrors.NewTooLargeError("File too large")
	case errors.Is(err, domain.ErrInvalidFile):
		return apperrors.NewProcessingError("Uploaded file is not a readable PDF", err)
	case errors.Is(err, domain.ErrAINotConfigured):
		return apperrors.NewNetworkError("AI service not configured", err)
	case errors.Is(err, domain.ErrMalformedInput):
		return apperrors.NewValidationError("The AI service rejected the request")
	case errors.Is(err, domain.ErrServiceUnavailable):
		return apperrors.NewNetworkError("AI service unavailable", err)
	default:
		return apperrors.NewInternalError("Internal server error", err)
	}
}
