package handler

import (
	"context"
	"net/http"

	"pdf-ask-server/internal/domain"
	apperrors "pdf-ask-server/pkg/errors"

	"github.com/felixge/httpsnoop"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"golang.org/x/time/rate"
)

// SessionCookieName is the cookie carrying the session id
const SessionCookieName = "pdfask_session"

// SessionMiddleware assigns every client a session id so each one gets its
// own current document
type SessionMiddleware struct {
	logger domain.Logger
	secure bool
}

// NewSessionMiddleware creates a session middleware. secure marks the cookie
// HTTPS-only.
func NewSessionMiddleware(logger domain.Logger, secure bool) *SessionMiddleware {
	return &SessionMiddleware{logger: logger, secure: secure}
}

// Middleware reads or issues the session cookie
func (m *SessionMiddleware) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var id string
		if c, err := r.Cookie(SessionCookieName); err == nil {
			if _, err := uuid.Parse(c.Value); err == nil {
				id = c.Value
			}
		}

		if id == "" {
			id = uuid.NewString()
			http.SetCookie(w, &http.Cookie{
				Name:     SessionCookieName,
				Value:    id,
				Path:     "/",
				HttpOnly: true,
				Secure:   m.secure,
				SameSite: http.SameSiteLaxMode,
			})
			m.logger.Debug("Session started", "session_id", id)
		}

		ctx := context.WithValue(r.Context(), sessionContextKey, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequestLogger logs one line per request
func RequestLogger(logger domain.Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			m := httpsnoop.CaptureMetrics(next, w, r)
			logger.Info("HTTP request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", m.Code,
				"bytes", m.Written,
				"duration_ms", m.Duration.Milliseconds(),
			)
		})
	}
}

// RateLimit throttles requests with a shared token bucket. A limit of zero
// or less disables throttling.
func RateLimit(perSecond float64, burst int) mux.MiddlewareFunc {
	if perSecond <= 0 {
		return func(next http.Handler) http.Handler { return next }
	}
	if burst < 1 {
		burst = 1
	}
	limiter := rate.NewLimiter(rate.Limit(perSecond), burst)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				writeAppError(w, apperrors.NewRateLimitedError("Too many requests, please slow down"))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
