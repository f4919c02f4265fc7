package brochure

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Role is the render category of a paragraph.
type Role uint8

const (
	RoleBody Role = iota
	RoleHeading
	RoleSubheading
	RoleBullets
)

func (r Role) String() string {
	switch r {
	case RoleHeading:
		return "heading"
	case RoleSubheading:
		return "subheading"
	case RoleBullets:
		return "bullets"
	default:
		return "body"
	}
}

// Classification thresholds, in runes. They are tuned to the two built-in
// documents and are not general document-layout heuristics.
const (
	MaxSubheadingRunes = 60
	MaxHeadingRunes    = 48
)

// Block is a classified paragraph. Items is only set for RoleBullets.
type Block struct {
	Role  Role
	Text  string
	Items []string
}

// Classify normalizes text, splits it into paragraphs and classifies each one
// with the heading keywords of lang. Unknown languages classify without
// keywords.
func Classify(lang Lang, text string) []Block {
	profile, _ := ProfileFor(lang)
	paragraphs := Paragraphs(text)
	blocks := make([]Block, 0, len(paragraphs))
	for _, p := range paragraphs {
		blocks = append(blocks, ClassifyParagraph(profile, p))
	}
	return blocks
}

// ClassifyParagraph assigns a role to a single trimmed paragraph. Rules are
// tried in order and the first match wins: bullets, subheading, heading, body.
func ClassifyParagraph(profile Profile, p string) Block {
	if items, ok := bulletItems(p); ok {
		return Block{Role: RoleBullets, Text: p, Items: items}
	}
	n := utf8.RuneCountInString(p)
	if n <= MaxSubheadingRunes && (strings.HasSuffix(p, ":") || strings.HasSuffix(p, "：")) {
		return Block{Role: RoleSubheading, Text: p}
	}
	if n <= MaxHeadingRunes && (isUpper(p) || profile.MatchesHeadingKeyword(p)) {
		return Block{Role: RoleHeading, Text: p}
	}
	return Block{Role: RoleBody, Text: p}
}

// bulletItems returns the marker-stripped lines of a multi-line paragraph in
// which at least one line starts with "-" or "•". Blank lines are dropped.
func bulletItems(p string) ([]string, bool) {
	if !strings.Contains(p, "\n") {
		return nil, false
	}
	lines := strings.Split(p, "\n")
	marked := false
	for _, line := range lines {
		if _, ok := cutBulletMarker(strings.TrimSpace(line)); ok {
			marked = true
			break
		}
	}
	if !marked {
		return nil, false
	}
	items := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if rest, ok := cutBulletMarker(line); ok {
			line = strings.TrimLeftFunc(rest, unicode.IsSpace)
		}
		items = append(items, line)
	}
	return items, true
}

func cutBulletMarker(line string) (string, bool) {
	if rest, ok := strings.CutPrefix(line, "-"); ok {
		return rest, true
	}
	return strings.CutPrefix(line, "•")
}

// isUpper reports whether s has at least one cased letter and no lower or
// title case letters.
func isUpper(s string) bool {
	cased := false
	for _, r := range s {
		switch {
		case unicode.IsLower(r), unicode.IsTitle(r):
			return false
		case unicode.IsUpper(r):
			cased = true
		}
	}
	return cased
}
