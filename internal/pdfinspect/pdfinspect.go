// Package pdfinspect reads generated PDFs back for tests.
package pdfinspect

import (
	"bytes"
	"fmt"
	"os"

	pdflib "github.com/ledongthuc/pdf"
)

// Summary is what a reader sees in a PDF: the page count and the plain text
// of each page, in page order.
type Summary struct {
	Pages int
	Text  []string
}

// Inspect parses an in-memory PDF.
func Inspect(data []byte) (Summary, error) {
	r, err := pdflib.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return Summary{}, fmt.Errorf("open pdf: %w", err)
	}
	return summarize(r)
}

// InspectFile parses the PDF at path.
func InspectFile(path string) (Summary, error) {
	f, r, err := pdflib.Open(path)
	if err != nil {
		return Summary{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return summarize(r)
}

func summarize(r *pdflib.Reader) (Summary, error) {
	n := r.NumPage()
	s := Summary{Pages: n, Text: make([]string, 0, n)}
	for i := 1; i <= n; i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			s.Text = append(s.Text, "")
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			return Summary{}, fmt.Errorf("page %d: %w", i, err)
		}
		s.Text = append(s.Text, text)
	}
	return s, nil
}

// HasMagic reports whether data starts with a PDF header.
func HasMagic(data []byte) bool {
	return bytes.HasPrefix(data, []byte("%PDF-"))
}

// ReadFile returns the contents of path and checks the PDF header.
func ReadFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if !HasMagic(data) {
		return nil, fmt.Errorf("%s: not a PDF", path)
	}
	return data, nil
}
