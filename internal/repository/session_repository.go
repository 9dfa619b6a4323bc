package repository

import (
	"time"

	"pdf-ask-server/internal/domain"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

const (
	DefaultSessionMaxEntries = 1024
	DefaultSessionTTL        = 24 * time.Hour
)

// InMemorySessionRepository keeps one current document per session in a
// bounded, expiring LRU. Documents are copied on the way in and out so
// callers never share mutable state.
type InMemorySessionRepository struct {
	cache  *expirable.LRU[string, domain.Document]
	logger domain.Logger
}

// NewInMemorySessionRepository creates a session store holding at most
// maxEntries sessions, each expiring ttl after its last ingest.
func NewInMemorySessionRepository(maxEntries int, ttl time.Duration, logger domain.Logger) *InMemorySessionRepository {
	if maxEntries <= 0 {
		maxEntries = DefaultSessionMaxEntries
	}
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}

	repo := &InMemorySessionRepository{logger: logger}
	repo.cache = expirable.NewLRU[string, domain.Document](maxEntries, repo.onEvict, ttl)
	return repo
}

// Get returns a copy of the session's current document
func (r *InMemorySessionRepository) Get(sessionID string) (*domain.Document, bool) {
	doc, ok := r.cache.Get(sessionID)
	if !ok {
		return nil, false
	}
	return &doc, true
}

// Replace swaps the session's current document wholesale
func (r *InMemorySessionRepository) Replace(sessionID string, document *domain.Document) {
	if document == nil {
		document = &domain.Document{}
	}
	r.cache.Add(sessionID, *document)
}

// Len returns the number of live sessions
func (r *InMemorySessionRepository) Len() int {
	return r.cache.Len()
}

func (r *InMemorySessionRepository) onEvict(sessionID string, _ domain.Document) {
	r.logger.Debug("Session evicted", "session_id", sessionID)
}
