package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
	"golang.org/x/term"
	"pkt.systems/brochure"
	"pkt.systems/brochure/pdf"
	"pkt.systems/version"
)

const (
	defaultThemeName = "default"
	defaultWidth     = 80
)

func init() {
	version.SetDefaultModule("pkt.systems/brochure")
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

type options struct {
	langs       string
	outputDir   string
	fontDir     string
	enFont      string
	zhFont      string
	coreFont    string
	themeName   string
	listThemes  bool
	boring      bool
	outline     bool
	width       int
	verbose     bool
	showVersion bool
}

func run(args []string, stdout, stderr io.Writer) int {
	var opts options
	flags := pflag.NewFlagSet("brochure", pflag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.StringVarP(&opts.langs, "lang", "l", "all", "Languages to render: en, zh or all (comma separated)")
	flags.StringVarP(&opts.outputDir, "output-dir", "o", ".", "Directory for the generated PDF files")
	flags.StringVar(&opts.fontDir, "font-dir", "", "Directory holding DejaVuSans.ttf and NotoSansSC-Regular.ttf (default ./fonts)")
	flags.StringVar(&opts.enFont, "en-font", "", "TTF path for the English document")
	flags.StringVar(&opts.zhFont, "zh-font", "", "TTF path for the Chinese document")
	flags.StringVar(&opts.coreFont, "core-font", "", "Use a built-in PDF font (Helvetica, Times, Courier) instead of TTF files; Latin-1 text only")
	flags.StringVarP(&opts.themeName, "theme", "t", defaultThemeName, "Theme name")
	flags.BoolVar(&opts.listThemes, "list-themes", false, "List available themes")
	flags.BoolVarP(&opts.boring, "boring", "b", false, "Black on white output (same as --theme boring)")
	flags.BoolVar(&opts.outline, "outline", false, "Print the classified document structure instead of writing PDFs")
	flags.IntVarP(&opts.width, "width", "w", 0, "Outline width override (0 uses terminal width if available)")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Log rendering details to stderr")
	flags.BoolVar(&opts.showVersion, "version", false, "Print version and exit")
	flags.Usage = func() {
		fmt.Fprintln(stderr, version.Module(), version.Current())
		fmt.Fprintf(stderr, "Usage: brochure [flags]\n")
		fmt.Fprintln(stderr, "\nRenders the IMS Hub brochures as PDF files. Fonts are read from ./fonts unless overridden.")
		fmt.Fprintln(stderr, "\nFlags:")
		flags.PrintDefaults()
	}

	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		return 2
	}
	if flags.NArg() > 0 {
		fmt.Fprintf(stderr, "unexpected arguments: %s\n", strings.Join(flags.Args(), " "))
		return 2
	}
	if opts.showVersion {
		fmt.Fprintln(stdout, version.Module(), version.Current())
		return 0
	}
	if opts.listThemes {
		printThemes(stdout)
		return 0
	}

	langs, err := brochure.ParseLangs(opts.langs)
	if err != nil {
		fmt.Fprintf(stderr, "invalid --lang %q: %v\n", opts.langs, err)
		return 2
	}
	themeName := opts.themeName
	if opts.boring {
		themeName = "boring"
	}
	theme, ok := brochure.ThemeByName(themeName)
	if !ok {
		fmt.Fprintf(stderr, "unknown theme %q\n\n", themeName)
		printThemes(stderr)
		return 2
	}
	docs, err := brochure.Documents(langs...)
	if err != nil {
		fmt.Fprintf(stderr, "load documents: %v\n", err)
		return 1
	}

	if opts.outline {
		if err := writeOutlines(stdout, docs, resolveWidth(stdout, opts.width)); err != nil {
			fmt.Fprintf(stderr, "outline: %v\n", err)
			return 1
		}
		return 0
	}

	cfg, err := pdfConfig(opts)
	if err != nil {
		fmt.Fprintf(stderr, "fonts: %v\n", err)
		return 2
	}
	jobs, err := pdf.JobsFor(opts.outputDir, docs)
	if err != nil {
		fmt.Fprintf(stderr, "%v\n", err)
		return 1
	}
	results, err := pdf.Generate(pdf.GenerateRequest{
		Jobs:   jobs,
		Theme:  theme,
		Config: cfg,
		Logger: newLogger(stderr, opts.verbose),
	})
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	names := make([]string, 0, len(results))
	for _, res := range results {
		names = append(names, res.Path)
	}
	fmt.Fprintf(stdout, "Created: %s\n", strings.Join(names, ", "))
	return 0
}

// pdfConfig applies the font flags to the default configuration. Default
// font paths stay relative so error messages name them as configured.
func pdfConfig(opts options) (pdf.Config, error) {
	cfg := pdf.DefaultConfig()
	cfg.Creator = fmt.Sprintf("%s %s", version.Module(), version.Current())
	if family := strings.TrimSpace(opts.coreFont); family != "" {
		if opts.enFont != "" || opts.zhFont != "" || opts.fontDir != "" {
			return pdf.Config{}, fmt.Errorf("--core-font cannot be combined with font paths")
		}
		family = canonicalCoreFont(family)
		for _, lang := range brochure.Langs() {
			cfg.Fonts[lang] = pdf.FontSet{Family: family}
		}
		return cfg, nil
	}
	overrides := map[brochure.Lang]string{brochure.EN: opts.enFont, brochure.ZH: opts.zhFont}
	for _, lang := range brochure.Langs() {
		fs := cfg.Fonts[lang]
		switch {
		case strings.TrimSpace(overrides[lang]) != "":
			fs.Regular = normalizePath(strings.TrimSpace(overrides[lang]))
		case opts.fontDir != "":
			fs.Regular = filepath.Join(normalizePath(opts.fontDir), filepath.Base(fs.Regular))
		default:
			continue
		}
		if err := ensureFontExt(fs.Regular); err != nil {
			return pdf.Config{}, fmt.Errorf("%s font: %w", lang, err)
		}
		cfg.Fonts[lang] = fs
	}
	return cfg, nil
}

func canonicalCoreFont(name string) string {
	switch strings.ToLower(name) {
	case "helvetica", "arial":
		return "Helvetica"
	case "times":
		return "Times"
	case "courier":
		return "Courier"
	default:
		return name
	}
}

func ensureFontExt(path string) error {
	if !strings.HasSuffix(strings.ToLower(path), ".ttf") {
		return fmt.Errorf("expected .ttf font file, got %s", path)
	}
	return nil
}

func writeOutlines(w io.Writer, docs []brochure.Document, width int) error {
	for i, doc := range docs {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "%s (%s)\n\n", doc.Title, doc.Lang); err != nil {
			return err
		}
		if err := brochure.WriteOutline(w, brochure.Classify(doc.Lang, doc.Body), width); err != nil {
			return err
		}
	}
	return nil
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func printThemes(w io.Writer) {
	for _, name := range brochure.AvailableThemes() {
		fmt.Fprintln(w, name)
	}
}

func resolveWidth(w io.Writer, width int) int {
	if width > 0 {
		return width
	}
	return terminalWidth(w, defaultWidth)
}

func terminalWidth(w io.Writer, fallback int) int {
	if f, ok := w.(*os.File); ok {
		fd := int(f.Fd())
		if term.IsTerminal(fd) {
			if width, _, err := term.GetSize(fd); err == nil && width > 0 {
				return width
			}
		}
	}
	if value := os.Getenv("COLUMNS"); value != "" {
		if width, err := strconv.Atoi(value); err == nil && width > 0 {
			return width
		}
	}
	return fallback
}

func normalizePath(path string) string {
	if strings.HasPrefix(path, "~/") || path == "~" {
		home, err := os.UserHomeDir()
		if err == nil {
			if path == "~" {
				path = home
			} else {
				path = filepath.Join(home, path[2:])
			}
		}
	}
	abs, err := filepath.Abs(path)
	if err == nil {
		return abs
	}
	return path
}
