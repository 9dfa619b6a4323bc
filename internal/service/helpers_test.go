package service

import (
	"context"
	"os"
	"strings"
	"sync"

	"pdf-ask-server/internal/domain"
)

type mockLogger struct{}

func (mockLogger) Info(string, ...interface{})         {}
func (mockLogger) Error(string, error, ...interface{}) {}
func (mockLogger) Debug(string, ...interface{})        {}
func (mockLogger) Warn(string, ...interface{})         {}

// echoGenerator answers with the prompt it received.
type echoGenerator struct {
	mu       sync.Mutex
	requests []domain.GenerateRequest
	err      error
}

func (g *echoGenerator) Generate(_ context.Context, req domain.GenerateRequest) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.requests = append(g.requests, req)
	if g.err != nil {
		return "", g.err
	}
	return req.Prompt, nil
}

func (g *echoGenerator) calls() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.requests)
}

// formFeedExtractor treats the staged file as plain text with pages
// separated by form feeds.
type formFeedExtractor struct {
	err      error
	lastPath string
}

func (e *formFeedExtractor) Backend() domain.PDFBackend { return "stub" }

func (e *formFeedExtractor) ExtractText(ctx context.Context, path string) (*domain.ExtractedText, error) {
	e.lastPath = path
	if e.err != nil {
		return nil, e.err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return joinPages(ctx, slicePages(strings.Split(string(data), "\f")), mockLogger{})
}

type slicePages []string

func (p slicePages) NumPage() int { return len(p) }

func (p slicePages) PageText(i int) (string, error) { return p[i], nil }

type stubValidator struct {
	err error
}

func (v stubValidator) Validate(string) error { return v.err }

// mapSessions is a minimal SessionRepository for service tests.
type mapSessions struct {
	mu   sync.Mutex
	docs map[string]domain.Document
}

func newMapSessions() *mapSessions {
	return &mapSessions{docs: make(map[string]domain.Document)}
}

func (m *mapSessions) Get(id string) (*domain.Document, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	doc, ok := m.docs[id]
	if !ok {
		return nil, false
	}
	return &doc, true
}

func (m *mapSessions) Replace(id string, doc *domain.Document) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.docs[id] = *doc
}

func (m *mapSessions) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.docs)
}
