package pdf

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"pkt.systems/brochure"
)

// Card geometry. CardRunesPerLine is a rough wrap width tuned to the
// overview texts of the built-in documents, not a general text metric.
const (
	CardRunesPerLine = 60
	cardPadding      = 10
	cardTitleHeight  = 8
	cardLineHeight   = 6
	cardRadius       = 3
	cardBorderWidth  = 0.2
	cardTop          = 70
)

const (
	bannerHeight     = 50
	pageInset        = 18
	coverTextY       = 18
	headerTextY      = 8
	headerRuleY      = 16
	headerRuleWidth  = 0.4
	footerOffset     = -15
	headingBarWidth  = 3
	headingBarHeight = 9
	headingGap       = 3
	bulletIndent     = 3
	bulletGlyphWidth = 4
	bulletGlyph      = "•"

	// headingWrapLineHeight is the line height used when a heading paragraph
	// spans several source lines.
	headingWrapLineHeight = 7
)

// EstimateCardLines returns the number of body lines the overview card
// reserves for body.
func EstimateCardLines(body string) int {
	return max(1, utf8.RuneCountInString(body)/CardRunesPerLine)
}

// CardHeight returns the height of the overview card for body: top padding,
// title, estimated body lines plus two spare lines, bottom padding.
func CardHeight(body string) float64 {
	lines := EstimateCardLines(body)
	return cardPadding + cardTitleHeight + float64(lines+2)*cardLineHeight + cardPadding
}

// layout draws one document onto a canvas.
type layout struct {
	c      Canvas
	doc    brochure.Document
	prof   brochure.Profile
	styles brochure.Styles
}

func drawDocument(c Canvas, doc brochure.Document, styles brochure.Styles) error {
	prof, ok := brochure.ProfileFor(doc.Lang)
	if !ok {
		return fmt.Errorf("unknown language %q", doc.Lang)
	}
	l := &layout{c: c, doc: doc, prof: prof, styles: styles}
	c.SetPageDecorations(l.header, l.footer)
	l.cover()
	c.AddPage()
	for _, b := range brochure.Classify(doc.Lang, doc.Body) {
		l.block(b)
	}
	return nil
}

func (l *layout) header() {
	c := l.c
	w, _ := c.PageSize()
	s := l.styles.Header
	c.SetDrawColor(l.styles.HeaderRule)
	c.SetLineWidth(headerRuleWidth)
	c.Line(pageInset, headerRuleY, w-pageInset, headerRuleY)
	c.SetTextColor(s.Color)
	c.SetXY(pageInset, headerTextY)
	c.SetFont(faceOf(s))
	c.Cell(0, s.LineHeight, fmt.Sprintf("%s — %s", l.doc.Title, l.doc.Lang), "R", true)
	c.Ln(s.SpaceAfter)
}

func (l *layout) footer() {
	c := l.c
	s := l.styles.Footer
	c.SetY(footerOffset)
	c.SetTextColor(s.Color)
	c.SetFont(faceOf(s))
	c.Cell(0, s.LineHeight, fmt.Sprintf("Page %d/%s", c.PageNo(), c.PageCountAlias()), "C", false)
}

func (l *layout) cover() {
	c := l.c
	st := l.styles
	c.AddPage()
	w, _ := c.PageSize()
	c.SetFillColor(st.Banner)
	c.Rect(0, 0, w, bannerHeight, "F")

	c.SetXY(pageInset, coverTextY)
	c.SetTextColor(st.CoverTitle.Color)
	c.SetFont(faceOf(st.CoverTitle))
	c.Cell(0, st.CoverTitle.LineHeight, l.doc.Title, "", true)
	c.SetX(pageInset)
	c.SetFont(faceOf(st.CoverSubtitle))
	c.SetTextColor(st.CoverSubtitle.Color)
	c.Cell(0, st.CoverSubtitle.LineHeight, l.doc.Subtitle, "", true)

	c.SetY(cardTop)
	l.card(l.prof.OverviewTitle, l.prof.OverviewBody)
}

func (l *layout) card(title, body string) {
	c := l.c
	st := l.styles
	pageW, _ := c.PageSize()
	x, y := float64(pageInset), c.GetY()
	w := pageW - 2*pageInset

	c.SetXY(x, y)
	c.SetFillColor(st.CardFill)
	c.SetDrawColor(st.CardBorder)
	c.SetLineWidth(cardBorderWidth)
	c.RoundedRect(x, y, w, CardHeight(body), cardRadius, "DF")

	c.SetXY(x+cardPadding, y+cardPadding)
	c.SetTextColor(st.CardTitle.Color)
	c.SetFont(faceOf(st.CardTitle))
	c.Cell(w-2*cardPadding, cardTitleHeight, title, "", true)

	c.SetXY(x+cardPadding, y+cardPadding+cardTitleHeight+st.CardTitle.SpaceAfter)
	c.SetFont(faceOf(st.CardBody))
	c.SetTextColor(st.CardBody.Color)
	c.MultiCell(w-2*cardPadding, cardLineHeight, body, "")
	c.Ln(st.CardBody.SpaceAfter)
}

func (l *layout) block(b brochure.Block) {
	switch b.Role {
	case brochure.RoleHeading:
		l.heading(b.Text)
	case brochure.RoleSubheading:
		l.subheading(b.Text)
	case brochure.RoleBullets:
		l.bullets(b.Items)
	default:
		l.body(b.Text)
	}
}

func (l *layout) heading(text string) {
	text = strings.TrimSpace(text)
	if text == "" {
		return
	}
	c := l.c
	s := l.styles.Heading
	x, _, _ := c.Margins()
	y := c.GetY() + 2
	c.SetFillColor(l.styles.HeadingBar)
	c.Rect(x, y, headingBarWidth, headingBarHeight, "F")
	c.SetXY(x+headingBarWidth+headingGap, y-1)
	c.SetTextColor(s.Color)
	c.SetFont(faceOf(s))
	if strings.Contains(text, "\n") {
		c.MultiCell(0, headingWrapLineHeight, text, "")
	} else {
		c.Cell(0, s.LineHeight, text, "", true)
	}
	c.Ln(s.SpaceAfter)
}

func (l *layout) subheading(text string) {
	c := l.c
	s := l.styles.Subheading
	c.SetTextColor(s.Color)
	c.SetFont(faceOf(s))
	c.MultiCell(0, s.LineHeight, text, "")
	c.Ln(s.SpaceAfter)
}

func (l *layout) body(text string) {
	c := l.c
	s := l.styles.Body
	c.SetTextColor(s.Color)
	c.SetFont(faceOf(s))
	c.MultiCell(0, s.LineHeight, text, "")
	c.Ln(s.SpaceAfter)
}

func (l *layout) bullets(items []string) {
	c := l.c
	s := l.styles.Bullet
	c.SetTextColor(s.Color)
	c.SetFont(faceOf(s))
	for _, it := range items {
		c.Cell(bulletIndent, 0, "", "", false)
		c.Cell(bulletGlyphWidth, s.LineHeight, bulletGlyph, "", false)
		c.MultiCell(0, s.LineHeight, it, "")
	}
	c.Ln(s.SpaceAfter)
}
