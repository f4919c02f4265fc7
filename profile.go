package brochure

import (
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/text/language"
)

// Lang identifies one of the supported brochure languages.
type Lang string

const (
	// EN is the English brochure.
	EN Lang = "EN"
	// ZH is the Simplified Chinese brochure.
	ZH Lang = "ZH"
)

// Profile holds everything that differs between the languages: fonts, heading
// keywords, cover card copy and the output file name.
type Profile struct {
	Lang Lang
	Tag  language.Tag
	// FontFamily is the family name the fonts are registered under.
	FontFamily string
	// FontPath is the default location of the TrueType font, relative to the
	// working directory.
	FontPath        string
	HeadingPatterns []*regexp.Regexp
	OverviewTitle   string
	OverviewBody    string
	FileName        string
}

// MatchesHeadingKeyword reports whether text starts with one of the profile's
// heading keywords.
func (p Profile) MatchesHeadingKeyword(text string) bool {
	for _, re := range p.HeadingPatterns {
		if re.MatchString(text) {
			return true
		}
	}
	return false
}

var (
	latinHeadingPattern   = regexp.MustCompile(`(?i)^(IMS|Mission|Goal|Strategic Goal|Integration|Ecosystem|Revenue|Global Vision)\b`)
	chineseHeadingPattern = regexp.MustCompile(`^(IMS|使命|目标|战略目标|整合|生态系统|收益|全球愿景)`)
)

// Default font locations.
const (
	EnglishFontPath = "fonts/DejaVuSans.ttf"
	ChineseFontPath = "fonts/NotoSansSC-Regular.ttf"
)

var profiles = map[Lang]Profile{
	EN: {
		Lang:            EN,
		Tag:             language.English,
		FontFamily:      "EN",
		FontPath:        EnglishFontPath,
		HeadingPatterns: []*regexp.Regexp{latinHeadingPattern},
		OverviewTitle:   "Overview",
		OverviewBody: "An AI-driven ecosystem connecting people and opportunities " +
			"across education, healthcare, beauty, travel, business and trade.",
		FileName: "IMS_Hub_English.pdf",
	},
	ZH: {
		Lang:            ZH,
		Tag:             language.SimplifiedChinese,
		FontFamily:      "ZH",
		FontPath:        ChineseFontPath,
		HeadingPatterns: []*regexp.Regexp{chineseHeadingPattern, latinHeadingPattern},
		OverviewTitle:   "概览",
		OverviewBody:    "一个由 AI 驱动的生态系统，连接教育、医疗、美容、旅游、商业和贸易领域的人才与机会。",
		FileName:        "IMS_Hub_Chinese.pdf",
	},
}

// Langs returns the supported languages in render order.
func Langs() []Lang {
	return []Lang{EN, ZH}
}

// ProfileFor returns the profile of lang.
func ProfileFor(lang Lang) (Profile, bool) {
	p, ok := profiles[lang]
	return p, ok
}

var langMatcher = language.NewMatcher([]language.Tag{language.English, language.SimplifiedChinese})

// ParseLang resolves a BCP 47 tag such as "en", "en-GB", "zh" or "zh-Hans" to
// a supported language.
func ParseLang(value string) (Lang, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", fmt.Errorf("empty language")
	}
	tag, err := language.Parse(value)
	if err != nil {
		return "", fmt.Errorf("language %q: %w", value, err)
	}
	_, idx, conf := langMatcher.Match(tag)
	if conf == language.No {
		return "", fmt.Errorf("language %q is not supported (expected en or zh)", value)
	}
	return Langs()[idx], nil
}

// ParseLangs resolves a comma separated language list. "all" or an empty
// string selects every language. Duplicates are dropped and the result keeps
// the order of Langs.
func ParseLangs(list string) ([]Lang, error) {
	list = strings.TrimSpace(list)
	if list == "" || strings.EqualFold(list, "all") {
		return Langs(), nil
	}
	seen := make(map[Lang]bool, 2)
	for _, part := range strings.Split(list, ",") {
		lang, err := ParseLang(part)
		if err != nil {
			return nil, err
		}
		seen[lang] = true
	}
	out := make([]Lang, 0, len(seen))
	for _, lang := range Langs() {
		if seen[lang] {
			out = append(out, lang)
		}
	}
	return out, nil
}
