package pdf

import (
	"fmt"

	"pkt.systems/brochure"
)

// FontSet names the font files of one language. Bold may be empty, in which
// case the regular file is registered for bold text too. When Regular is
// empty Family must name a core PDF font such as Helvetica.
type FontSet struct {
	Family  string
	Regular string
	Bold    string
}

// Files returns the font files the set needs on disk.
func (f FontSet) Files() []string {
	var files []string
	if f.Regular != "" {
		files = append(files, f.Regular)
	}
	if f.Bold != "" && f.Bold != f.Regular {
		files = append(files, f.Bold)
	}
	return files
}

// Config holds PDF rendering settings. Lengths are in Unit.
type Config struct {
	PageSize           string
	Unit               string
	MarginLeft         float64
	MarginTop          float64
	MarginRight        float64
	MarginBottom       float64
	Fonts              map[brochure.Lang]FontSet
	DisableCompression bool
	Creator            string
}

// DefaultConfig returns A4 portrait in millimetres with the default font
// locations of every language profile.
func DefaultConfig() Config {
	fonts := make(map[brochure.Lang]FontSet, 2)
	for _, lang := range brochure.Langs() {
		p, _ := brochure.ProfileFor(lang)
		fonts[lang] = FontSet{Family: p.FontFamily, Regular: p.FontPath}
	}
	return Config{
		PageSize:     "A4",
		Unit:         "mm",
		MarginLeft:   18,
		MarginTop:    16,
		MarginRight:  18,
		MarginBottom: 18,
		Fonts:        fonts,
	}
}

func applyConfig(dst *Config, src Config) {
	if src.PageSize != "" {
		dst.PageSize = src.PageSize
	}
	if src.Unit != "" {
		dst.Unit = src.Unit
	}
	if src.MarginLeft > 0 {
		dst.MarginLeft = src.MarginLeft
	}
	if src.MarginTop > 0 {
		dst.MarginTop = src.MarginTop
	}
	if src.MarginRight > 0 {
		dst.MarginRight = src.MarginRight
	}
	if src.MarginBottom > 0 {
		dst.MarginBottom = src.MarginBottom
	}
	if len(src.Fonts) > 0 {
		merged := make(map[brochure.Lang]FontSet, len(dst.Fonts)+len(src.Fonts))
		for lang, fs := range dst.Fonts {
			merged[lang] = fs
		}
		for lang, fs := range src.Fonts {
			merged[lang] = fs
		}
		dst.Fonts = merged
	}
	if src.DisableCompression {
		dst.DisableCompression = true
	}
	if src.Creator != "" {
		dst.Creator = src.Creator
	}
}

// FontSetFor returns the font set configured for lang.
func (c Config) FontSetFor(lang brochure.Lang) (FontSet, error) {
	fs, ok := c.Fonts[lang]
	if !ok {
		return FontSet{}, fmt.Errorf("no fonts configured for language %q", lang)
	}
	if fs.Family == "" {
		return FontSet{}, fmt.Errorf("font set for %s has no family", lang)
	}
	if fs.Regular == "" && !isCoreFont(fs.Family) {
		return FontSet{}, fmt.Errorf("font set for %s: core font family required when font paths are empty", lang)
	}
	return fs, nil
}

// FontFiles returns the distinct font files needed to render langs, in
// order of first use.
func (c Config) FontFiles(langs ...brochure.Lang) ([]string, error) {
	seen := make(map[string]bool)
	var files []string
	for _, lang := range langs {
		fs, err := c.FontSetFor(lang)
		if err != nil {
			return nil, err
		}
		for _, f := range fs.Files() {
			if seen[f] {
				continue
			}
			seen[f] = true
			files = append(files, f)
		}
	}
	return files, nil
}

func isCoreFont(name string) bool {
	switch name {
	case "Courier", "Helvetica", "Arial", "Times", "Symbol", "ZapfDingbats":
		return true
	default:
		return false
	}
}
