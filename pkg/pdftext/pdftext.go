// Package pdftext extracts plain text from gazette PDF bytes. It wraps the
// ledongthuc/pdf reader and exposes both a linear text stream and per-page
// segments; the extraction core never touches PDF bytes itself.
package pdftext

import (
	"fmt"
	"io"
	"strings"

	"github.com/ledongthuc/pdf"
)

// Page is the extracted text of one PDF page.
type Page struct {
	// Number is the 1-based page number.
	Number int

	// Text is the page's plain text; empty for image-only pages.
	Text string
}

// ExtractPages extracts per-page text from PDF bytes. Pages that fail to
// parse are skipped rather than failing the whole document; only an
// unreadable PDF surfaces as an error.
func ExtractPages(content []byte) ([]Page, error) {
	reader, err := pdf.NewReader(newBytesReaderAt(content), int64(len(content)))
	if err != nil {
		return nil, fmt.Errorf("open PDF: %w", err)
	}

	var pages []Page
	totalPages := reader.NumPage()
	for pageNumber := 1; pageNumber <= totalPages; pageNumber++ {
		page := reader.Page(pageNumber)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		pages = append(pages, Page{Number: pageNumber, Text: text})
	}

	if len(pages) == 0 {
		return nil, fmt.Errorf("no text content extracted from %d-page PDF", totalPages)
	}
	return pages, nil
}

// Extract extracts the document's linear text stream: all pages joined in
// order with blank lines at page boundaries.
func Extract(content []byte) (string, error) {
	pages, err := ExtractPages(content)
	if err != nil {
		return "", err
	}
	var textBuilder strings.Builder
	for _, page := range pages {
		if textBuilder.Len() > 0 {
			textBuilder.WriteString("\n\n")
		}
		textBuilder.WriteString(page.Text)
	}
	return textBuilder.String(), nil
}

// bytesReaderAt implements io.ReaderAt over a byte slice; the pdf reader
// wants random access, not a stream.
type bytesReaderAt struct {
	data []byte
}

func newBytesReaderAt(data []byte) *bytesReaderAt {
	return &bytesReaderAt{data: data}
}

func (r *bytesReaderAt) ReadAt(p []byte, off int64) (n int, err error) {
	if off < 0 {
		return 0, fmt.Errorf("negative offset")
	}
	if off >= int64(len(r.data)) {
		return 0, io.EOF
	}
	n = copy(p, r.data[off:])
	if n < len(p) {
		err = io.EOF
	}
	return n, err
}
