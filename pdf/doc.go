// Package pdf renders brochure documents to paginated A4 PDF files.
//
// Each document gets a cover page with a colored banner and an overview card,
// followed by the classified body blocks. Every page carries a header rule
// with the document title and language tag, and a "Page X/Y" footer. Layout
// calls go through the Canvas interface; the default canvas is backed by
// gofpdf, which also takes care of automatic page breaks.
//
// Example:
//
//	doc, _ := brochure.Builtin(brochure.EN)
//	err := pdf.Render(pdf.RenderRequest{
//		Document: doc,
//		Writer:   outFile,
//		Theme:    brochure.DefaultTheme(),
//		Config:   pdf.DefaultConfig(),
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//
// Generate renders several documents to files and checks every required font
// file before the first one is created.
package pdf
