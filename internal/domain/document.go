package domain

import (
	"context"
	"io"
	"strings"
	"time"
)

const (
	UploadSuccessMessage  = "Document uploaded successfully"
	NoReadableTextMessage = "No readable text found in document"
)

// Document is the current document of a session.
type Document struct {
	Text         string    `json:"-"`
	OriginalName string    `json:"original_name"`
	PageCount    int       `json:"page_count"`
	IngestedAt   time.Time `json:"ingested_at"`
}

// HasText reports whether the document can ground an answer.
func (d *Document) HasText() bool {
	return d != nil && d.Text != ""
}

// IsBlank reports whether the extracted text holds nothing but whitespace.
func (d *Document) IsBlank() bool {
	return d == nil || strings.TrimSpace(d.Text) == ""
}

// UploadResponse is the payload returned by the upload endpoint.
type UploadResponse struct {
	Message string `json:"message"`
}

// DocumentService defines the use-case operations for documents.
type DocumentService interface {
	Ingest(ctx context.Context, sessionID string, file io.Reader, originalName string) (*Document, error)
}
