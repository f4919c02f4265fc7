package pdf

import (
	"fmt"
	"io"
	"os"

	"github.com/jung-kurt/gofpdf"
	"pkt.systems/brochure"
)

// bezierArc is the control point distance, as a fraction of the radius, of a
// cubic Bézier approximating a quarter circle.
const bezierArc = 0.5523

const pageCountAlias = "{nb}"

// fpdfCanvas implements Canvas on top of gofpdf.
type fpdfCanvas struct {
	pdf    *gofpdf.Fpdf
	family string
	tr     func(string) string
}

func newFPDFCanvas(cfg Config, fonts FontSet) (*fpdfCanvas, error) {
	pdf := gofpdf.New("P", cfg.Unit, cfg.PageSize, "")
	pdf.SetMargins(cfg.MarginLeft, cfg.MarginTop, cfg.MarginRight)
	pdf.SetAutoPageBreak(true, cfg.MarginBottom)
	pdf.AliasNbPages(pageCountAlias)
	pdf.SetCompression(!cfg.DisableCompression)
	c := &fpdfCanvas{pdf: pdf, family: fonts.Family, tr: func(s string) string { return s }}
	if fonts.Regular != "" {
		regular, err := os.ReadFile(fonts.Regular)
		if err != nil {
			return nil, fmt.Errorf("font setup failed: %w", err)
		}
		bold := regular
		if fonts.Bold != "" && fonts.Bold != fonts.Regular {
			if bold, err = os.ReadFile(fonts.Bold); err != nil {
				return nil, fmt.Errorf("font setup failed: %w", err)
			}
		}
		pdf.AddUTF8FontFromBytes(fonts.Family, "", regular)
		pdf.AddUTF8FontFromBytes(fonts.Family, "B", bold)
	} else {
		if !isCoreFont(fonts.Family) {
			return nil, fmt.Errorf("core font family required when font paths are empty, got %q", fonts.Family)
		}
		c.tr = pdf.UnicodeTranslatorFromDescriptor("")
	}
	pdf.SetFont(fonts.Family, "", 11)
	if err := pdf.Error(); err != nil {
		return nil, fmt.Errorf("font setup failed: %w", err)
	}
	return c, nil
}

func (c *fpdfCanvas) AddPage() { c.pdf.AddPage() }
func (c *fpdfCanvas) PageNo() int { return c.pdf.PageNo() }
func (c *fpdfCanvas) PageCountAlias() string { return pageCountAlias }
func (c *fpdfCanvas) PageSize() (float64, float64) {
	return c.pdf.GetPageSize()
}

func (c *fpdfCanvas) Margins() (left, top, right float64) {
	left, top, right, _ = c.pdf.GetMargins()
	return left, top, right
}

func (c *fpdfCanvas) GetY() float64 { return c.pdf.GetY() }
func (c *fpdfCanvas) SetX(x float64) { c.pdf.SetX(x) }
func (c *fpdfCanvas) SetY(y float64) { c.pdf.SetY(y) }
func (c *fpdfCanvas) SetXY(x, y float64) { c.pdf.SetXY(x, y) }
func (c *fpdfCanvas) Ln(h float64) { c.pdf.Ln(h) }
func (c *fpdfCanvas) SetLineWidth(w float64) { c.pdf.SetLineWidth(w) }

func (c *fpdfCanvas) SetFont(face Face) {
	style := ""
	if face.Bold {
		style = "B"
	}
	c.pdf.SetFont(c.family, style, face.Size)
}

func (c *fpdfCanvas) SetTextColor(rgb brochure.RGB) { c.pdf.SetTextColor(rgb[0], rgb[1], rgb[2]) }
func (c *fpdfCanvas) SetFillColor(rgb brochure.RGB) { c.pdf.SetFillColor(rgb[0], rgb[1], rgb[2]) }
func (c *fpdfCanvas) SetDrawColor(rgb brochure.RGB) { c.pdf.SetDrawColor(rgb[0], rgb[1], rgb[2]) }

func (c *fpdfCanvas) Cell(w, h float64, text, align string, newline bool) {
	ln := 0
	if newline {
		ln = 1
	}
	c.pdf.CellFormat(w, h, c.tr(text), "", ln, align, false, 0, "")
}

func (c *fpdfCanvas) MultiCell(w, h float64, text, align string) {
	c.pdf.MultiCell(w, h, c.tr(text), "", align, false)
}

func (c *fpdfCanvas) Line(x1, y1, x2, y2 float64) { c.pdf.Line(x1, y1, x2, y2) }

func (c *fpdfCanvas) Rect(x, y, w, h float64, style string) { c.pdf.Rect(x, y, w, h, style) }

// RoundedRect traces the outline with four quarter arcs of radius r. The
// radius is clamped to half of the shorter side.
func (c *fpdfCanvas) RoundedRect(x, y, w, h, r float64, style string) {
	if r > w/2 {
		r = w / 2
	}
	if r > h/2 {
		r = h / 2
	}
	if r <= 0 {
		c.pdf.Rect(x, y, w, h, style)
		return
	}
	k := r * bezierArc
	p := c.pdf
	p.MoveTo(x+r, y)
	p.LineTo(x+w-r, y)
	p.CurveBezierCubicTo(x+w-r+k, y, x+w, y+r-k, x+w, y+r)
	p.LineTo(x+w, y+h-r)
	p.CurveBezierCubicTo(x+w, y+h-r+k, x+w-r+k, y+h, x+w-r, y+h)
	p.LineTo(x+r, y+h)
	p.CurveBezierCubicTo(x+r-k, y+h, x, y+h-r+k, x, y+h-r)
	p.LineTo(x, y+r)
	p.CurveBezierCubicTo(x, y+r-k, x+r-k, y, x+r, y)
	p.ClosePath()
	p.DrawPath(style)
}

func (c *fpdfCanvas) SetPageDecorations(header, footer func()) {
	c.pdf.SetHeaderFunc(header)
	c.pdf.SetFooterFunc(footer)
}

func (c *fpdfCanvas) setMetadata(doc brochure.Document, creator string) {
	c.pdf.SetTitle(doc.Title, true)
	c.pdf.SetSubject(doc.Subtitle, true)
	if creator != "" {
		c.pdf.SetCreator(creator, true)
	}
}

func (c *fpdfCanvas) err() error { return c.pdf.Error() }

func (c *fpdfCanvas) output(w io.Writer) error { return c.pdf.Output(w) }
