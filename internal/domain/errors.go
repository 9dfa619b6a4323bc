package domain

import "errors"

// Domain errors
var (
	ErrNoReadableText     = errors.New("no readable text found in document")
	ErrInvalidFile        = errors.New("invalid file")
	ErrFileTooLarge       = errors.New("file too large")
	ErrAINotConfigured    = errors.New("ai service not configured")
	ErrServiceUnavailable = errors.New("generation service unavailable")
	ErrMalformedInput     = errors.New("generation service rejected the request")
)
