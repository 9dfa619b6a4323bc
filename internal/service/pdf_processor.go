package service

import (
	"context"
	"fmt"
	"strings"

	"pdf-ask-server/internal/domain"

	"github.com/gen2brain/go-fitz"
	"github.com/ledongthuc/pdf"
)

// pageSource is a random-access view over the pages of an opened PDF.
// Indexes are zero-based.
type pageSource interface {
	NumPage() int
	PageText(index int) (string, error)
}

// joinPages concatenates page texts in page order, each followed by a newline.
// Pages yielding no text contribute nothing. Any page error aborts the whole
// extraction.
func joinPages(ctx context.Context, src pageSource, logger domain.Logger) (*domain.ExtractedText, error) {
	numPages := src.NumPage()
	result := &domain.ExtractedText{PageCount: numPages}

	var sb strings.Builder
	for i := 0; i < numPages; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		text, err := src.PageText(i)
		if err != nil {
			return nil, fmt.Errorf("extract page %d: %w: %w", i+1, domain.ErrInvalidFile, err)
		}
		if text == "" {
			logger.Debug("PDF page has no text", "page", i+1, "total", numPages)
			continue
		}
		sb.WriteString(text)
		sb.WriteString("\n")
		result.TextPages++
	}

	result.Content = sb.String()
	return result, nil
}

// NewTextExtractor returns the extractor for the configured backend
func NewTextExtractor(backend string, logger domain.Logger) (domain.TextExtractor, error) {
	switch domain.PDFBackend(strings.ToLower(strings.TrimSpace(backend))) {
	case "", domain.PDFBackendFitz:
		return NewFitzExtractor(logger), nil
	case domain.PDFBackendPure:
		return NewPureExtractor(logger), nil
	default:
		return nil, fmt.Errorf("unknown PDF backend %q", backend)
	}
}

// FitzExtractor extracts text with MuPDF
type FitzExtractor struct {
	logger domain.Logger
}

// NewFitzExtractor creates a new MuPDF-backed extractor
func NewFitzExtractor(logger domain.Logger) *FitzExtractor {
	return &FitzExtractor{logger: logger}
}

// Backend identifies the extraction engine
func (e *FitzExtractor) Backend() domain.PDFBackend {
	return domain.PDFBackendFitz
}

// ExtractText opens the PDF at path and returns its page-ordered text
func (e *FitzExtractor) ExtractText(ctx context.Context, path string) (*domain.ExtractedText, error) {
	doc, err := fitz.New(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF: %w: %w", domain.ErrInvalidFile, err)
	}
	defer doc.Close()

	return joinPages(ctx, fitzPages{doc: doc}, e.logger)
}

type fitzPages struct {
	doc *fitz.Document
}

func (p fitzPages) NumPage() int { return p.doc.NumPage() }

// PageText drops the block and line terminators MuPDF appends to a page,
// so a page contributes the same text under either backend.
func (p fitzPages) PageText(index int) (string, error) {
	text, err := p.doc.Text(index)
	if err != nil {
		return "", err
	}
	return strings.TrimRight(text, "\r\n"), nil
}

// PureExtractor extracts text with a pure Go PDF parser, for builds without MuPDF
type PureExtractor struct {
	logger domain.Logger
}

// NewPureExtractor creates a new pure Go extractor
func NewPureExtractor(logger domain.Logger) *PureExtractor {
	return &PureExtractor{logger: logger}
}

// Backend identifies the extraction engine
func (e *PureExtractor) Backend() domain.PDFBackend {
	return domain.PDFBackendPure
}

// ExtractText opens the PDF at path and returns its page-ordered text
func (e *PureExtractor) ExtractText(ctx context.Context, path string) (result *domain.ExtractedText, err error) {
	// The parser panics on some corrupt cross-reference tables.
	defer func() {
		if r := recover(); r != nil {
			result = nil
			err = fmt.Errorf("failed to parse PDF: %w: %v", domain.ErrInvalidFile, r)
		}
	}()

	f, reader, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF: %w: %w", domain.ErrInvalidFile, err)
	}
	defer f.Close()

	return joinPages(ctx, purePages{reader: reader}, e.logger)
}

type purePages struct {
	reader *pdf.Reader
}

func (p purePages) NumPage() int { return p.reader.NumPage() }

func (p purePages) PageText(index int) (string, error) {
	page := p.reader.Page(index + 1)
	if page.V.IsNull() {
		return "", nil
	}
	return page.GetPlainText(nil)
}
