package handler

import (
	"net/http"

	"pdf-ask-server/internal/domain"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

// RouterOptions carries the cross-cutting pieces of the router
type RouterOptions struct {
	Sessions       mux.MiddlewareFunc
	AskLimiter     mux.MiddlewareFunc
	Logger         domain.Logger
	AllowedOrigins []string
}

// NewRouter creates a new HTTP router with all routes configured
func NewRouter(
	pageHandler *PageHandler,
	documentHandler *DocumentHandler,
	aiHandler *AIHandler,
	opts RouterOptions,
) http.Handler {
	router := mux.NewRouter()
	if opts.Logger != nil {
		router.Use(RequestLogger(opts.Logger))
	}

	// Health check endpoint (no session)
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok","service":"pdf-ask-server"}`))
	}).Methods(http.MethodGet)

	router.PathPrefix("/static/").HandlerFunc(pageHandler.Static).Methods(http.MethodGet)

	// Session-scoped routes stay on the root router so a method mismatch
	// still answers 405.
	withSession := func(h http.Handler) http.Handler {
		if opts.Sessions == nil {
			return h
		}
		return opts.Sessions(h)
	}

	router.Handle("/", withSession(http.HandlerFunc(pageHandler.Index))).Methods(http.MethodGet)
	router.Handle("/upload", withSession(http.HandlerFunc(documentHandler.UploadDocument))).Methods(http.MethodPost)

	var ask http.Handler = http.HandlerFunc(aiHandler.Ask)
	if opts.AskLimiter != nil {
		ask = opts.AskLimiter(ask)
	}
	router.Handle("/ask", withSession(ask)).Methods(http.MethodPost)

	if len(opts.AllowedOrigins) == 0 {
		return router
	}

	c := cors.New(cors.Options{
		AllowedOrigins: opts.AllowedOrigins,
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodOptions,
		},
		AllowedHeaders: []string{
			"Accept",
			"Content-Type",
		},
		AllowCredentials: true,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	})

	return c.Handler(router)
}
