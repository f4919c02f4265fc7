package brochure

import (
	"strings"
	"unicode/utf8"
)

// supplementaryPlane is the first rune outside the Basic Multilingual Plane.
// Emoji and most pictographs live at or above it.
const supplementaryPlane = 0x10000

// Normalize prepares raw document text for paragraph splitting. It removes
// every supplementary-plane rune, converts CRLF and CR line endings to LF and
// collapses runs of three or more newlines into a single blank line.
// Normalize is idempotent.
func Normalize(text string) string {
	return collapseNewlines(unifyNewlines(StripSupplementary(text)))
}

// StripSupplementary drops runes at or above U+10000. Invalid UTF-8 bytes are
// kept as they are.
func StripSupplementary(text string) string {
	i := indexSupplementary(text)
	if i < 0 {
		return text
	}
	var b strings.Builder
	b.Grow(len(text))
	b.WriteString(text[:i])
	for i < len(text) {
		r, size := utf8.DecodeRuneInString(text[i:])
		if r == utf8.RuneError && size == 1 {
			b.WriteByte(text[i])
			i++
			continue
		}
		if r < supplementaryPlane {
			b.WriteString(text[i : i+size])
		}
		i += size
	}
	return b.String()
}

func indexSupplementary(text string) int {
	for i, r := range text {
		if r >= supplementaryPlane {
			return i
		}
	}
	return -1
}

func unifyNewlines(text string) string {
	if strings.IndexByte(text, '\r') < 0 {
		return text
	}
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.ReplaceAll(text, "\r", "\n")
}

func collapseNewlines(text string) string {
	if !strings.Contains(text, "\n\n\n") {
		return text
	}
	var b strings.Builder
	b.Grow(len(text))
	run := 0
	for i := 0; i < len(text); i++ {
		c := text[i]
		if c == '\n' {
			run++
			if run <= 2 {
				b.WriteByte(c)
			}
			continue
		}
		run = 0
		b.WriteByte(c)
	}
	return b.String()
}

// Paragraphs normalizes text and returns its non-empty paragraphs, trimmed of
// surrounding whitespace, in document order.
func Paragraphs(text string) []string {
	parts := strings.Split(Normalize(text), "\n\n")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}
