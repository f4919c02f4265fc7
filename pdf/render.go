package pdf

import (
	"fmt"
	"io"

	"pkt.systems/brochure"
)

// RenderRequest contains inputs for PDF rendering.
type RenderRequest struct {
	Document brochure.Document
	Writer   io.Writer
	Theme    brochure.Theme
	Config   Config
}

// Render draws a cover page and the classified body of req.Document and
// writes the finished PDF to req.Writer. Font files are checked before any
// page is drawn.
func Render(req RenderRequest) error {
	_, err := render(req)
	return err
}

// render returns the number of pages written.
func render(req RenderRequest) (int, error) {
	if req.Writer == nil {
		return 0, fmt.Errorf("pdf render: writer is nil")
	}
	cfg := DefaultConfig()
	applyConfig(&cfg, req.Config)
	fonts, err := cfg.FontSetFor(req.Document.Lang)
	if err != nil {
		return 0, fmt.Errorf("pdf render: %w", err)
	}
	if err := CheckFonts(fonts.Files()...); err != nil {
		return 0, fmt.Errorf("pdf render: %w", err)
	}
	theme := req.Theme
	if theme == nil {
		theme = brochure.DefaultTheme()
	}

	c, err := newFPDFCanvas(cfg, fonts)
	if err != nil {
		return 0, fmt.Errorf("pdf render: %w", err)
	}
	c.setMetadata(req.Document, cfg.Creator)
	if err := drawDocument(c, req.Document, theme.Styles()); err != nil {
		return 0, fmt.Errorf("pdf render: %w", err)
	}
	if err := c.err(); err != nil {
		return 0, fmt.Errorf("pdf render: %w", err)
	}
	pages := c.PageNo()
	if err := c.output(req.Writer); err != nil {
		return 0, fmt.Errorf("pdf render: output: %w", err)
	}
	return pages, nil
}
