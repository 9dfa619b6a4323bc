package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"pdf-ask-server/internal/domain"
)

// AppConfig implements the domain.Config interface
type AppConfig struct {
	ServerPort  string
	UploadPath  string
	MaxFileSize int64
	LogLevel    string
	LogFormat   string

	PDFBackend       string
	PDFValidate      bool
	MaxDocumentChars int

	AIProvider          string
	AIModel             string
	AISystemInstruction string
	GeminiAPIKey        string
	GCPProjectID        string
	GCPLocation         string
	OpenAIAPIKey        string
	OpenAIBaseURL       string

	SessionMaxEntries  int
	SessionTTL         time.Duration
	AskRateLimit       float64
	AskRateBurst       int
	CORSAllowedOrigins []string
	CookieSecure       bool
}

// NewConfig creates a new configuration instance with default values
func NewConfig() domain.Config {
	return &AppConfig{
		ServerPort:  getEnvOrDefault("PORT", "5000"),
		UploadPath:  getEnvOrDefault("UPLOAD_PATH", filepath.Join(os.TempDir(), "pdf-ask-uploads")),
		MaxFileSize: getEnvInt64OrDefault("MAX_FILE_SIZE", 32*1024*1024), // 32MB default
		LogLevel:    getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:   getEnvOrDefault("LOG_FORMAT", "text"),

		PDFBackend:       getEnvOrDefault("PDF_BACKEND", "fitz"),
		PDFValidate:      getEnvBoolOrDefault("PDF_VALIDATE", true),
		MaxDocumentChars: getEnvIntOrDefault("MAX_DOCUMENT_CHARS", 12000),

		AIProvider:          getEnvOrDefault("AI_PROVIDER", "gemini"),
		AIModel:             getEnvOrDefault("AI_MODEL", "gemini-2.5-flash-lite"),
		AISystemInstruction: getEnvOrDefault("AI_SYSTEM_INSTRUCTION", "Be clear and simple"),
		GeminiAPIKey:        getEnvOrDefault("GEMINI_API_KEY", ""),
		GCPProjectID:        getEnvOrDefault("GCP_PROJECT_ID", ""),
		GCPLocation:         getEnvOrDefault("GCP_LOCATION", "us-central1"),
		OpenAIAPIKey:        getEnvOrDefault("OPENAI_API_KEY", ""),
		OpenAIBaseURL:       getEnvOrDefault("OPENAI_BASE_URL", ""),

		SessionMaxEntries:  getEnvIntOrDefault("SESSION_MAX_ENTRIES", 1024),
		SessionTTL:         getEnvDurationOrDefault("SESSION_TTL", 24*time.Hour),
		AskRateLimit:       getEnvFloatOrDefault("ASK_RATE_LIMIT", 0),
		AskRateBurst:       getEnvIntOrDefault("ASK_RATE_BURST", 5),
		CORSAllowedOrigins: getEnvListOrDefault("CORS_ALLOWED_ORIGINS", nil),
		CookieSecure:       getEnvBoolOrDefault("COOKIE_SECURE", false),
	}
}

// GetServerPort returns the server port
func (c *AppConfig) GetServerPort() string {
	return c.ServerPort
}

// GetUploadPath returns the upload staging directory
func (c *AppConfig) GetUploadPath() string {
	return c.UploadPath
}

// GetMaxFileSize returns the maximum allowed upload size in bytes
func (c *AppConfig) GetMaxFileSize() int64 {
	return c.MaxFileSize
}

// GetLogLevel returns the logging level
func (c *AppConfig) GetLogLevel() string {
	return c.LogLevel
}

// GetLogFormat returns "text" or "json"
func (c *AppConfig) GetLogFormat() string {
	return c.LogFormat
}

// GetPDFBackend returns the text extraction backend name
func (c *AppConfig) GetPDFBackend() string {
	return c.PDFBackend
}

// GetPDFValidate reports whether uploads are structurally validated
func (c *AppConfig) GetPDFValidate() bool {
	return c.PDFValidate
}

// GetMaxDocumentChars returns how many document characters go into a prompt
func (c *AppConfig) GetMaxDocumentChars() int {
	return c.MaxDocumentChars
}

func (c *AppConfig) GetAIProvider() string {
	return c.AIProvider
}

func (c *AppConfig) GetAIModel() string {
	return c.AIModel
}

func (c *AppConfig) GetAISystemInstruction() string {
	return c.AISystemInstruction
}

func (c *AppConfig) GetGeminiAPIKey() string {
	return c.GeminiAPIKey
}

func (c *AppConfig) GetGCPProjectID() string {
	return c.GCPProjectID
}

func (c *AppConfig) GetGCPLocation() string {
	return c.GCPLocation
}

func (c *AppConfig) GetOpenAIAPIKey() string {
	return c.OpenAIAPIKey
}

func (c *AppConfig) GetOpenAIBaseURL() string {
	return c.OpenAIBaseURL
}

// GetSessionMaxEntries returns the session store capacity
func (c *AppConfig) GetSessionMaxEntries() int {
	return c.SessionMaxEntries
}

// GetSessionTTL returns how long a document is kept after its upload.
// Reads do not extend it.
func (c *AppConfig) GetSessionTTL() time.Duration {
	return c.SessionTTL
}

// GetAskRateLimit returns the allowed ask requests per second, 0 for unlimited
func (c *AppConfig) GetAskRateLimit() float64 {
	return c.AskRateLimit
}

func (c *AppConfig) GetAskRateBurst() int {
	return c.AskRateBurst
}

// GetCORSAllowedOrigins returns the origins allowed to call the API
func (c *AppConfig) GetCORSAllowedOrigins() []string {
	return c.CORSAllowedOrigins
}

// GetCookieSecure reports whether the session cookie is HTTPS-only
func (c *AppConfig) GetCookieSecure() bool {
	return c.CookieSecure
}

// Helper functions for environment variable handling
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt64OrDefault(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

func getEnvListOrDefault(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var out []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
