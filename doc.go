// Package brochure models the IMS Hub master plan brochures and turns their
// text into a sequence of layout blocks.
//
// The text of each built-in document is normalized, split into paragraphs on
// blank lines and every paragraph is assigned a render role: heading,
// subheading, bullet list or body. Classification only looks at the shape of
// the paragraph (length, trailing colon, leading bullet markers and a small
// per-language keyword table), so the same text always yields the same
// blocks.
//
// Example:
//
//	doc, err := brochure.Builtin(brochure.EN)
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, b := range brochure.Classify(doc.Lang, doc.Body) {
//		fmt.Println(b.Role, b.Text)
//	}
//
// The pdf subpackage draws the blocks onto paginated A4 pages.
package brochure
