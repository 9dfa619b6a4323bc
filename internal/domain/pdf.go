package domain

// PDFBackend names a text extraction engine
type PDFBackend string

const (
	// PDFBackendFitz extracts text with MuPDF.
	PDFBackendFitz PDFBackend = "fitz"
	// PDFBackendPure extracts text with a pure Go parser.
	PDFBackendPure PDFBackend = "pure"
)

// ExtractedText is the page-ordered text of a PDF
type ExtractedText struct {
	Content   string `json:"content"`
	PageCount int    `json:"page_count"`
	// TextPages counts the pages that contributed text.
	TextPages int `json:"text_pages"`
}

// FileInfo represents information about a staged upload
type FileInfo struct {
	ID       string `json:"id"`
	Filename string `json:"filename"`
	Size     int64  `json:"size"`
	Path     string `json:"path"`
}
