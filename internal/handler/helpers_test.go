package handler

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"pdf-ask-server/internal/domain"
	"pdf-ask-server/internal/repository"
	"pdf-ask-server/internal/service"

	"github.com/stretchr/testify/require"
)

// Mock logger used by handler package tests.
type MockHandlerLogger struct{}

func NewMockHandlerLogger() domain.Logger {
	return &MockHandlerLogger{}
}

func (l *MockHandlerLogger) Info(msg string, fields ...interface{})             {}
func (l *MockHandlerLogger) Error(msg string, err error, fields ...interface{}) {}
func (l *MockHandlerLogger) Debug(msg string, fields ...interface{})            {}
func (l *MockHandlerLogger) Warn(msg string, fields ...interface{})             {}

// plainTextExtractor reads the staged upload as text, one page per form feed.
// Uploads starting with "CORRUPT" fail like an unparsable PDF.
type plainTextExtractor struct{}

func (plainTextExtractor) Backend() domain.PDFBackend { return "plain" }

func (plainTextExtractor) ExtractText(_ context.Context, path string) (*domain.ExtractedText, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if bytes.HasPrefix(data, []byte("CORRUPT")) {
		return nil, domain.ErrInvalidFile
	}
	var sb strings.Builder
	pages := strings.Split(string(data), "\f")
	for _, p := range pages {
		if p != "" {
			sb.WriteString(p)
			sb.WriteString("\n")
		}
	}
	return &domain.ExtractedText{Content: sb.String(), PageCount: len(pages)}, nil
}

// echoGenerator returns the prompt it was given and counts calls.
type echoGenerator struct {
	mu    sync.Mutex
	calls int
	err   error
}

func (g *echoGenerator) Generate(_ context.Context, req domain.GenerateRequest) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.calls++
	if g.err != nil {
		return "", g.err
	}
	return req.Prompt, nil
}

func (g *echoGenerator) Calls() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.calls
}

type testApp struct {
	handler   http.Handler
	generator *echoGenerator
}

// newTestApp wires the real services behind the router. A nil generator
// leaves the AI service unconfigured.
func newTestApp(t *testing.T, generator *echoGenerator, maxUpload int64) *testApp {
	t.Helper()
	logger := NewMockHandlerLogger()
	sessions := repository.NewInMemorySessionRepository(100, time.Hour, logger)
	uploads := service.NewUploadStorage(t.TempDir(), maxUpload, logger)
	documents := service.NewDocumentService(uploads, nil, plainTextExtractor{}, sessions, logger)

	var gen domain.Generator
	if generator != nil {
		gen = generator
	}
	ai := service.NewAIService(gen, sessions, logger, service.AIOptions{MaxDocumentChars: service.DefaultMaxDocumentChars})

	router := NewRouter(
		NewPageHandler(logger, maxUpload),
		NewDocumentHandler(documents, logger, maxUpload),
		NewAIHandler(ai, logger),
		RouterOptions{
			Sessions: NewSessionMiddleware(logger, false).Middleware,
			Logger:   logger,
		},
	)
	return &testApp{handler: router, generator: generator}
}

func (a *testApp) do(req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	a.handler.ServeHTTP(rr, req)
	return rr
}

func uploadRequest(t *testing.T, field, filename, content string) *http.Request {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/upload", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func askRequest(body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/ask", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func withSession(req *http.Request, cookie *http.Cookie) *http.Request {
	if cookie != nil {
		req.AddCookie(cookie)
	}
	return req
}

func sessionCookie(rr *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range rr.Result().Cookies() {
		if c.Name == SessionCookieName {
			return c
		}
	}
	return nil
}
