package extract

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
	"golang.org/x/text/unicode/norm"
)

// TextExtractor returns the text content of a document on disk.
type TextExtractor interface {
	ExtractText(ctx context.Context, path string) (string, error)
}

// PDFTextExtractor reads the embedded text layer of a PDF. Scanned, image-only
// pages produce no text.
type PDFTextExtractor struct{}

func NewPDFTextExtractor() *PDFTextExtractor {
	return &PDFTextExtractor{}
}

// ExtractText concatenates the plain text of every page, each non-empty page
// followed by a newline. A valid PDF without a text layer yields "".
func (e *PDFTextExtractor) ExtractText(ctx context.Context, path string) (string, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("open pdf %s: %w", filepath.Base(path), err)
	}
	defer func() { _ = f.Close() }()

	fonts := make(map[string]*pdf.Font)
	var text strings.Builder

	for i := 1; i <= r.NumPage(); i++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		p := r.Page(i)
		if p.V.IsNull() {
			continue
		}
		for _, name := range p.Fonts() {
			if _, ok := fonts[name]; !ok {
				font := p.Font(name)
				fonts[name] = &font
			}
		}

		pageText, err := p.GetPlainText(fonts)
		if err != nil {
			return "", fmt.Errorf("read pdf page %d: %w", i, err)
		}
		if pageText == "" {
			continue
		}
		text.WriteString(pageText)
		text.WriteString("\n")
	}

	// Some PDFs store accented letters decomposed.
	return norm.NFC.String(text.String()), nil
}
