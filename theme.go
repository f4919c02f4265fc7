package brochure

import (
	"sort"
	"strings"
)

// RGB is a color with 0-255 components.
type RGB [3]int

// TextStyle is the visual treatment of a run of text. Sizes are in points,
// LineHeight and SpaceAfter in page units (millimetres).
type TextStyle struct {
	Bold       bool
	Size       float64
	LineHeight float64
	Color      RGB
	SpaceAfter float64
}

// Styles groups the styles used by the PDF renderer.
type Styles struct {
	Heading    TextStyle
	Subheading TextStyle
	Bullet     TextStyle
	Body       TextStyle

	Header        TextStyle
	Footer        TextStyle
	CoverTitle    TextStyle
	CoverSubtitle TextStyle
	CardTitle     TextStyle
	CardBody      TextStyle

	HeadingBar RGB
	HeaderRule RGB
	Banner     RGB
	CardFill   RGB
	CardBorder RGB
}

// ForRole returns the text style of a block role.
func (s Styles) ForRole(role Role) TextStyle {
	switch role {
	case RoleHeading:
		return s.Heading
	case RoleSubheading:
		return s.Subheading
	case RoleBullets:
		return s.Bullet
	default:
		return s.Body
	}
}

// Theme provides named styles for brochure rendering.
type Theme interface {
	Name() string
	Styles() Styles
}

type theme struct {
	name   string
	styles Styles
}

func (t theme) Name() string   { return t.name }
func (t theme) Styles() Styles { return t.styles }

// NewTheme returns a Theme from a Styles definition.
func NewTheme(name string, styles Styles) Theme {
	return theme{name: name, styles: styles}
}

// Brand palette.
var (
	ColorPrimary = RGB{15, 98, 254}
	ColorDark    = RGB{22, 28, 36}
	ColorMuted   = RGB{102, 112, 128}
	ColorLightBg = RGB{245, 247, 250}
	ColorAccent  = RGB{124, 58, 237}
	ColorWhite   = RGB{255, 255, 255}
	colorText    = RGB{31, 41, 55}
	colorCard    = RGB{55, 65, 81}
	colorBorder  = RGB{230, 235, 240}
	colorSubtle  = RGB{230, 240, 255}
)

func defaultStyles() Styles {
	return Styles{
		Heading:       TextStyle{Bold: true, Size: 15, LineHeight: 11, Color: ColorDark, SpaceAfter: 2},
		Subheading:    TextStyle{Bold: true, Size: 12.5, LineHeight: 6.5, Color: ColorPrimary, SpaceAfter: 1},
		Bullet:        TextStyle{Size: 11.3, LineHeight: 6.2, Color: colorText, SpaceAfter: 1},
		Body:          TextStyle{Size: 11.3, LineHeight: 6.2, Color: colorText, SpaceAfter: 1},
		Header:        TextStyle{Size: 9, LineHeight: 6, Color: ColorMuted, SpaceAfter: 2},
		Footer:        TextStyle{Size: 9, LineHeight: 10, Color: ColorMuted},
		CoverTitle:    TextStyle{Bold: true, Size: 24, LineHeight: 12, Color: ColorWhite},
		CoverSubtitle: TextStyle{Size: 13, LineHeight: 8, Color: colorSubtle},
		CardTitle:     TextStyle{Bold: true, Size: 14, LineHeight: 8, Color: ColorDark, SpaceAfter: 2},
		CardBody:      TextStyle{Size: 11, LineHeight: 6, Color: colorCard, SpaceAfter: 6},
		HeadingBar:    ColorAccent,
		HeaderRule:    ColorPrimary,
		Banner:        ColorPrimary,
		CardFill:      ColorLightBg,
		CardBorder:    colorBorder,
	}
}

// boringStyles keeps the layout of the default theme but prints black on
// white with gray rules.
func boringStyles() Styles {
	s := defaultStyles()
	black := RGB{0, 0, 0}
	gray := RGB{160, 160, 160}
	for _, ts := range []*TextStyle{&s.Heading, &s.Subheading, &s.Bullet, &s.Body, &s.CoverTitle, &s.CoverSubtitle, &s.CardTitle, &s.CardBody} {
		ts.Color = black
	}
	s.Header.Color = gray
	s.Footer.Color = gray
	s.HeadingBar = black
	s.HeaderRule = gray
	s.Banner = ColorWhite
	s.CardFill = ColorWhite
	s.CardBorder = gray
	return s
}

var builtinThemes = map[string]Theme{
	"default": theme{name: "default", styles: defaultStyles()},
	"boring":  theme{name: "boring", styles: boringStyles()},
}

// AvailableThemes returns the names of built-in themes.
func AvailableThemes() []string {
	names := make([]string, 0, len(builtinThemes))
	for name := range builtinThemes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ThemeByName returns a built-in theme by name.
func ThemeByName(name string) (Theme, bool) {
	if name == "" {
		return builtinThemes["default"], true
	}
	normalized := strings.ToLower(strings.TrimSpace(name))
	theme, ok := builtinThemes[normalized]
	return theme, ok
}

// DefaultTheme returns the default built-in theme.
func DefaultTheme() Theme {
	return builtinThemes["default"]
}
