package brochure

import (
	"github.com/muesli/reflow/ansi"
	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/reflow/wrap"
)

// wrapText wraps on word boundaries first and then hard-wraps what is still
// too wide, which is the common case for CJK text without spaces.
func wrapText(text string, width int) string {
	if ansi.PrintableRuneWidth(text) <= width {
		return text
	}
	return wrap.String(wordwrap.String(text, width), width)
}

func truncateWithEllipsis(text string, limit int) string {
	if ansi.PrintableRuneWidth(text) <= limit {
		return text
	}
	if limit <= 0 {
		return ""
	}
	if limit == 1 {
		return "…"
	}
	runes := []rune(text)
	for len(runes) > 0 && ansi.PrintableRuneWidth(string(runes)) > limit-1 {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "…"
}
