package brochure

import (
	"embed"
	"fmt"
)

// Document is one brochure: its language, cover copy and raw body text.
type Document struct {
	Lang     Lang
	Title    string
	Subtitle string
	Body     string
}

// Profile returns the language profile of the document.
func (d Document) Profile() Profile {
	p, _ := ProfileFor(d.Lang)
	return p
}

//go:embed content/en.txt content/zh.txt
var contentFS embed.FS

type builtinMeta struct {
	path     string
	title    string
	subtitle string
}

var builtins = map[Lang]builtinMeta{
	EN: {
		path:     "content/en.txt",
		title:    "IMS Hub Ecosystem Master Plan",
		subtitle: "Smart Matching. Global Connections.",
	},
	ZH: {
		path:     "content/zh.txt",
		title:    "IMS Hub 生态系统总体规划",
		subtitle: "智能匹配，全球连接",
	},
}

// Builtin loads the embedded brochure for lang.
func Builtin(lang Lang) (Document, error) {
	meta, ok := builtins[lang]
	if !ok {
		return Document{}, fmt.Errorf("no built-in document for language %q", lang)
	}
	data, err := contentFS.ReadFile(meta.path)
	if err != nil {
		return Document{}, fmt.Errorf("built-in document %s: %w", lang, err)
	}
	if err := ValidateInput(data); err != nil {
		return Document{}, fmt.Errorf("built-in document %s: %w", lang, err)
	}
	return Document{
		Lang:     lang,
		Title:    meta.title,
		Subtitle: meta.subtitle,
		Body:     string(data),
	}, nil
}

// Documents loads the built-in brochures for langs, in the given order.
func Documents(langs ...Lang) ([]Document, error) {
	if len(langs) == 0 {
		langs = Langs()
	}
	docs := make([]Document, 0, len(langs))
	for _, lang := range langs {
		doc, err := Builtin(lang)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, nil
}
