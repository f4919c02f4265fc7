package pdf

import "pkt.systems/brochure"

// Face selects the weight and size of the canvas font. The family is fixed
// when the canvas is created.
type Face struct {
	Bold bool
	Size float64
}

func faceOf(ts brochure.TextStyle) Face {
	return Face{Bold: ts.Bold, Size: ts.Size}
}

// Canvas is the paginated drawing surface the layout targets. Coordinates
// are in page units with the origin at the top left corner. Text calls
// advance the vertical cursor; the canvas breaks pages by itself when the
// cursor passes the bottom margin and runs the header and footer hooks on
// every page.
type Canvas interface {
	AddPage()
	PageNo() int
	// PageCountAlias returns a placeholder that is replaced by the total
	// number of pages when the document is finished.
	PageCountAlias() string
	PageSize() (w, h float64)
	Margins() (left, top, right float64)

	GetY() float64
	SetX(x float64)
	// SetY moves the cursor to y and the left margin. Negative values are
	// measured from the bottom of the page.
	SetY(y float64)
	SetXY(x, y float64)
	Ln(h float64)

	SetFont(face Face)
	SetTextColor(c brochure.RGB)
	SetFillColor(c brochure.RGB)
	SetDrawColor(c brochure.RGB)
	SetLineWidth(w float64)

	// Cell draws a single line of text in a box of width w (0 extends to
	// the right margin). With newline the cursor moves to the start of the
	// next line, otherwise to the right of the box.
	Cell(w, h float64, text, align string, newline bool)
	// MultiCell draws wrapped text in lines of height h.
	MultiCell(w, h float64, text, align string)
	Line(x1, y1, x2, y2 float64)
	// Rect and RoundedRect take a style of "F" (fill), "D" (draw) or "DF".
	Rect(x, y, w, h float64, style string)
	RoundedRect(x, y, w, h, r float64, style string)

	SetPageDecorations(header, footer func())
}
