package domain

import (
	"context"
	"io"
	"time"
)

// TextExtractor defines the strategy interface for PDF text extraction
type TextExtractor interface {
	ExtractText(ctx context.Context, path string) (*ExtractedText, error)
	Backend() PDFBackend
}

// PDFValidator checks that a staged file is structurally a PDF
type PDFValidator interface {
	Validate(path string) error
}

// FileHandler defines the interface for staging uploaded files
type FileHandler interface {
	SaveUpload(ctx context.Context, file io.Reader) (*FileInfo, error)
	CleanupTemporary(fileID string) error
}

// SessionRepository holds the current document of every session.
// Implementations must be safe for concurrent use.
type SessionRepository interface {
	Get(sessionID string) (*Document, bool)
	Replace(sessionID string, document *Document)
	Len() int
}

// Logger defines the interface for logging operations
type Logger interface {
	Info(msg string, fields ...interface{})
	Error(msg string, err error, fields ...interface{})
	Debug(msg string, fields ...interface{})
	Warn(msg string, fields ...interface{})
}

// Config defines the interface for configuration management
type Config interface {
	GetServerPort() string
	GetUploadPath() string
	GetMaxFileSize() int64
	GetLogLevel() string
	GetLogFormat() string

	GetPDFBackend() string
	GetPDFValidate() bool
	GetMaxDocumentChars() int

	GetAIProvider() string
	GetAIModel() string
	GetAISystemInstruction() string
	GetGeminiAPIKey() string
	GetGCPProjectID() string
	GetGCPLocation() string
	GetOpenAIAPIKey() string
	GetOpenAIBaseURL() string

	GetSessionMaxEntries() int
	GetSessionTTL() time.Duration
	GetAskRateLimit() float64
	GetAskRateBurst() int
	GetCORSAllowedOrigins() []string
	GetCookieSecure() bool
}
