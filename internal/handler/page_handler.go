package handler

import (
	"bytes"
	"embed"
	"html/template"
	"io/fs"
	"net/http"

	"pdf-ask-server/internal/domain"
)

//go:embed web/templates/*.html web/static/*
var webFS embed.FS

var indexTemplate = template.Must(template.ParseFS(webFS, "web/templates/index.html"))

type indexData struct {
	MaxUploadMB int64
}

// PageHandler serves the single-page UI
type PageHandler struct {
	logger        domain.Logger
	maxUploadSize int64
	static        http.Handler
}

func NewPageHandler(logger domain.Logger, maxUploadSize int64) *PageHandler {
	staticFS, err := fs.Sub(webFS, "web/static")
	if err != nil {
		panic(err)
	}
	return &PageHandler{
		logger:        logger,
		maxUploadSize: maxUploadSize,
		static:        http.StripPrefix("/static/", http.FileServer(http.FS(staticFS))),
	}
}

// Index renders the upload-and-chat page
func (h *PageHandler) Index(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := indexTemplate.Execute(&buf, indexData{MaxUploadMB: h.maxUploadSize >> 20}); err != nil {
		h.logger.Error("Failed to render index", err)
		writeError(w, http.StatusInternalServerError, "Failed to render page")
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

// Static serves embedded scripts and styles
func (h *PageHandler) Static(w http.ResponseWriter, r *http.Request) {
	h.static.ServeHTTP(w, r)
}
