package pdf

import (
	"fmt"
	"io"
	"strings"

	wkhtmltopdf "github.com/SebastiaanKlippert/go-wkhtmltopdf"
)

// Converter turns one rendered HTML document into PDF bytes.
type Converter interface {
	Convert(w io.Writer, html string) error
}

// WKHTMLToPDF converts through the wkhtmltopdf binary, which must be on
// PATH (or named by the WKHTMLTOPDF_PATH environment variable).
type WKHTMLToPDF struct{}

func (WKHTMLToPDF) Convert(w io.Writer, html string) error {
	generator, err := wkhtmltopdf.NewPDFGenerator()
	if err != nil {
		return fmt.Errorf("locate wkhtmltopdf: %w", err)
	}
	generator.PageSize.Set(wkhtmltopdf.PageSizeA4)
	generator.MarginTop.Set(12)
	generator.MarginBottom.Set(12)
	generator.AddPage(wkhtmltopdf.NewPageReader(strings.NewReader(html)))
	generator.SetOutput(w)
	if err := generator.Create(); err != nil {
		return fmt.Errorf("convert to pdf: %w", err)
	}
	return nil
}
