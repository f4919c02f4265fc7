package pdf

import (
	"reflect"
	"testing"

	"pkt.systems/brochure"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.PageSize != "A4" || cfg.Unit != "mm" {
		t.Fatalf("unexpected page setup: %s %s", cfg.PageSize, cfg.Unit)
	}
	if cfg.MarginLeft != 18 || cfg.MarginTop != 16 || cfg.MarginRight != 18 || cfg.MarginBottom != 18 {
		t.Fatalf("unexpected margins: %+v", cfg)
	}
	files, err := cfg.FontFiles(brochure.Langs()...)
	if err != nil {
		t.Fatalf("font files: %v", err)
	}
	want := []string{brochure.EnglishFontPath, brochure.ChineseFontPath}
	if !reflect.DeepEqual(files, want) {
		t.Fatalf("font files = %v, want %v", files, want)
	}
}

func TestApplyConfigMergesFonts(t *testing.T) {
	cfg := DefaultConfig()
	applyConfig(&cfg, Config{
		MarginLeft: 20,
		Fonts: map[brochure.Lang]FontSet{
			brochure.ZH: {Family: "Custom", Regular: "x/custom.ttf", Bold: "x/custom-bold.ttf"},
		},
		DisableCompression: true,
	})
	if cfg.MarginLeft != 20 || cfg.MarginRight != 18 {
		t.Fatalf("unexpected margins: %v %v", cfg.MarginLeft, cfg.MarginRight)
	}
	if !cfg.DisableCompression {
		t.Fatalf("expected compression disabled")
	}
	en, err := cfg.FontSetFor(brochure.EN)
	if err != nil || en.Regular != brochure.EnglishFontPath {
		t.Fatalf("english font set lost: %+v %v", en, err)
	}
	files, err := cfg.FontFiles(brochure.ZH, brochure.EN, brochure.ZH)
	if err != nil {
		t.Fatalf("font files: %v", err)
	}
	want := []string{"x/custom.ttf", "x/custom-bold.ttf", brochure.EnglishFontPath}
	if !reflect.DeepEqual(files, want) {
		t.Fatalf("font files = %v, want %v", files, want)
	}
}

func TestFontSetFor(t *testing.T) {
	cfg := Config{Fonts: map[brochure.Lang]FontSet{
		brochure.EN: {Family: "Helvetica"},
		brochure.ZH: {Family: "Noto"},
	}}
	fs, err := cfg.FontSetFor(brochure.EN)
	if err != nil || len(fs.Files()) != 0 {
		t.Fatalf("expected core font set without files, got %+v %v", fs, err)
	}
	if _, err := cfg.FontSetFor(brochure.ZH); err == nil {
		t.Fatalf("expected error for non-core family without files")
	}
	if _, err := cfg.FontSetFor("FR"); err == nil {
		t.Fatalf("expected error for unconfigured language")
	}
	same := FontSet{Family: "X", Regular: "a.ttf", Bold: "a.ttf"}
	if got := same.Files(); !reflect.DeepEqual(got, []string{"a.ttf"}) {
		t.Fatalf("files = %v", got)
	}
}
