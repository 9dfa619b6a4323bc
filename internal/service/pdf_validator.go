package service

import (
	"fmt"

	"pdf-ask-server/internal/domain"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// PDFCPUValidator runs a relaxed structural validation over staged uploads
type PDFCPUValidator struct {
	conf *model.Configuration
}

// NewPDFValidator creates a validator that never touches the user config dir
func NewPDFValidator() *PDFCPUValidator {
	api.DisableConfigDir()
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed
	return &PDFCPUValidator{conf: conf}
}

// Validate returns domain.ErrInvalidFile when path is not a usable PDF
func (v *PDFCPUValidator) Validate(path string) error {
	if err := api.ValidateFile(path, v.conf); err != nil {
		return fmt.Errorf("validate PDF: %w: %w", domain.ErrInvalidFile, err)
	}
	return nil
}
