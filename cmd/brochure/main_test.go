package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"pkt.systems/brochure"
	"pkt.systems/brochure/internal/pdfinspect"
)

func runCLI(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func assertNoPDFs(t *testing.T, dir string) {
	t.Helper()
	matches, err := filepath.Glob(filepath.Join(dir, "*.pdf"))
	if err != nil {
		t.Fatalf("glob: %v", err)
	}
	if len(matches) != 0 {
		t.Fatalf("expected no output files, found %v", matches)
	}
}

func TestRunMissingFontsListsEveryPath(t *testing.T) {
	fontDir := t.TempDir()
	outDir := t.TempDir()
	code, stdout, stderr := runCLI(t, "--font-dir", fontDir, "-o", outDir)
	if code != 1 {
		t.Fatalf("exit code = %d, want 1 (stderr %q)", code, stderr)
	}
	if stdout != "" {
		t.Fatalf("unexpected stdout: %q", stdout)
	}
	for _, name := range []string{"DejaVuSans.ttf", "NotoSansSC-Regular.ttf"} {
		if !strings.Contains(stderr, "- "+filepath.Join(fontDir, name)) {
			t.Fatalf("stderr does not list %s: %q", name, stderr)
		}
	}
	assertNoPDFs(t, outDir)
}

func TestRunMissingOneFontNamesOnlyThatPath(t *testing.T) {
	fontDir := t.TempDir()
	outDir := t.TempDir()
	present := filepath.Join(fontDir, "DejaVuSans.ttf")
	if err := os.WriteFile(present, []byte("font"), 0o644); err != nil {
		t.Fatalf("write font: %v", err)
	}
	code, _, stderr := runCLI(t, "--font-dir", fontDir, "-o", outDir)
	if code != 1 {
		t.Fatalf("exit code = %d, want 1", code)
	}
	if !strings.Contains(stderr, "- "+filepath.Join(fontDir, "NotoSansSC-Regular.ttf")) {
		t.Fatalf("stderr does not list missing font: %q", stderr)
	}
	if strings.Contains(stderr, "- "+present) {
		t.Fatalf("stderr lists a present font: %q", stderr)
	}
	assertNoPDFs(t, outDir)
}

func TestRunOnlyChecksSelectedLanguage(t *testing.T) {
	fontDir := t.TempDir()
	code, _, stderr := runCLI(t, "--font-dir", fontDir, "-o", t.TempDir(), "-l", "zh")
	if code != 1 {
		t.Fatalf("exit code = %d, want 1", code)
	}
	if strings.Contains(stderr, "DejaVuSans.ttf") {
		t.Fatalf("english font checked for a chinese-only run: %q", stderr)
	}
	if !strings.Contains(stderr, "NotoSansSC-Regular.ttf") {
		t.Fatalf("chinese font not reported: %q", stderr)
	}
}

func TestRunWithCoreFont(t *testing.T) {
	outDir := t.TempDir()
	code, stdout, stderr := runCLI(t, "--core-font", "helvetica", "-o", outDir, "-v")
	if code != 0 {
		t.Fatalf("exit code = %d, stderr %q", code, stderr)
	}
	en := filepath.Join(outDir, "IMS_Hub_English.pdf")
	zh := filepath.Join(outDir, "IMS_Hub_Chinese.pdf")
	if want := "Created: " + en + ", " + zh + "\n"; stdout != want {
		t.Fatalf("stdout = %q, want %q", stdout, want)
	}
	for _, path := range []string{en, zh} {
		summary, err := pdfinspect.InspectFile(path)
		if err != nil {
			t.Fatalf("inspect %s: %v", path, err)
		}
		if summary.Pages < 2 {
			t.Fatalf("%s: expected cover and content pages, got %d", path, summary.Pages)
		}
	}
	if !strings.Contains(stderr, "wrote pdf") {
		t.Fatalf("expected verbose log records, got %q", stderr)
	}
}

func copyFont(t *testing.T, dst string) {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("..", "..", "pdf", "testdata", "DejaVuSansCondensed.ttf"))
	if err != nil {
		t.Fatalf("read test font: %v", err)
	}
	if err := os.WriteFile(dst, data, 0o644); err != nil {
		t.Fatalf("write font: %v", err)
	}
}

func TestRunWithAbsoluteFontDir(t *testing.T) {
	fontDir := t.TempDir()
	for _, name := range []string{"DejaVuSans.ttf", "NotoSansSC-Regular.ttf"} {
		copyFont(t, filepath.Join(fontDir, name))
	}
	outDir := t.TempDir()
	code, stdout, stderr := runCLI(t, "--font-dir", fontDir, "-o", outDir)
	if code != 0 {
		t.Fatalf("exit code = %d, stderr %q", code, stderr)
	}
	en := filepath.Join(outDir, "IMS_Hub_English.pdf")
	zh := filepath.Join(outDir, "IMS_Hub_Chinese.pdf")
	if want := "Created: " + en + ", " + zh + "\n"; stdout != want {
		t.Fatalf("stdout = %q, want %q", stdout, want)
	}
	for _, path := range []string{en, zh} {
		data, err := pdfinspect.ReadFile(path)
		if err != nil {
			t.Fatalf("read %s: %v", path, err)
		}
		summary, err := pdfinspect.Inspect(data)
		if err != nil {
			t.Fatalf("inspect %s: %v", path, err)
		}
		last := fmt.Sprintf("Page %d/%d", summary.Pages, summary.Pages)
		if summary.Pages < 2 || !strings.Contains(summary.Text[summary.Pages-1], last) {
			t.Fatalf("%s: expected footer %q on the last of %d pages", path, last, summary.Pages)
		}
	}
}

func TestRunWithAbsoluteFontOverride(t *testing.T) {
	font := filepath.Join(t.TempDir(), "body.ttf")
	copyFont(t, font)
	outDir := t.TempDir()
	code, stdout, stderr := runCLI(t, "--en-font", font, "-l", "en", "-o", outDir)
	if code != 0 {
		t.Fatalf("exit code = %d, stderr %q", code, stderr)
	}
	path := filepath.Join(outDir, "IMS_Hub_English.pdf")
	if stdout != "Created: "+path+"\n" {
		t.Fatalf("unexpected stdout: %q", stdout)
	}
	if _, err := pdfinspect.ReadFile(path); err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
}

func TestRunSingleLanguage(t *testing.T) {
	outDir := t.TempDir()
	code, stdout, stderr := runCLI(t, "--core-font", "Times", "-o", outDir, "--lang", "en-GB", "--boring")
	if code != 0 {
		t.Fatalf("exit code = %d, stderr %q", code, stderr)
	}
	if stdout != "Created: "+filepath.Join(outDir, "IMS_Hub_English.pdf")+"\n" {
		t.Fatalf("unexpected stdout: %q", stdout)
	}
	if _, err := pdfinspect.ReadFile(filepath.Join(outDir, "IMS_Hub_Chinese.pdf")); !os.IsNotExist(err) {
		t.Fatalf("chinese pdf should not exist, stat err = %v", err)
	}
}

func TestRunCoreFontConflictsWithPaths(t *testing.T) {
	code, _, stderr := runCLI(t, "--core-font", "Helvetica", "--en-font", "x.ttf")
	if code != 2 || !strings.Contains(stderr, "--core-font") {
		t.Fatalf("expected usage error, got %d %q", code, stderr)
	}
}

func TestRunRejectsNonTTFFont(t *testing.T) {
	code, _, stderr := runCLI(t, "--en-font", "font.otf", "-o", t.TempDir())
	if code != 2 || !strings.Contains(stderr, ".ttf") {
		t.Fatalf("expected ttf error, got %d %q", code, stderr)
	}
}

func TestRunOutline(t *testing.T) {
	code, stdout, stderr := runCLI(t, "--outline", "-l", "en", "-w", "60")
	if code != 0 {
		t.Fatalf("exit code = %d, stderr %q", code, stderr)
	}
	doc, _ := brochure.Builtin(brochure.EN)
	if !strings.HasPrefix(stdout, doc.Title+" (EN)\n\n") {
		t.Fatalf("outline missing document title: %q", stdout[:min(len(stdout), 80)])
	}
	if !strings.Contains(stdout, "## It is the core engine that powers all branches with:") {
		t.Fatalf("outline missing subheading")
	}
	for _, line := range strings.Split(stdout, "\n") {
		if n := len([]rune(line)); n > 60 {
			t.Fatalf("line exceeds width (%d): %q", n, line)
		}
	}
}

func TestRunOutlineNeedsNoFonts(t *testing.T) {
	code, stdout, _ := runCLI(t, "--outline", "--font-dir", t.TempDir(), "-w", "80")
	if code != 0 {
		t.Fatalf("exit code = %d", code)
	}
	if !strings.Contains(stdout, "(EN)") || !strings.Contains(stdout, "(ZH)") {
		t.Fatalf("expected both documents in outline")
	}
}

func TestRunListThemes(t *testing.T) {
	code, stdout, _ := runCLI(t, "--list-themes")
	if code != 0 {
		t.Fatalf("exit code = %d", code)
	}
	if stdout != "boring\ndefault\n" {
		t.Fatalf("unexpected themes: %q", stdout)
	}
}

func TestRunUsageErrors(t *testing.T) {
	cases := [][]string{
		{"--lang", "fr"},
		{"--theme", "neon"},
		{"--no-such-flag"},
		{"extra"},
	}
	for _, args := range cases {
		code, stdout, _ := runCLI(t, args...)
		if code != 2 {
			t.Fatalf("%v: exit code = %d, want 2", args, code)
		}
		if stdout != "" {
			t.Fatalf("%v: unexpected stdout %q", args, stdout)
		}
	}
}

func TestRunVersion(t *testing.T) {
	code, stdout, _ := runCLI(t, "--version")
	if code != 0 || !strings.Contains(stdout, "brochure") {
		t.Fatalf("unexpected version output: %d %q", code, stdout)
	}
}

func TestTerminalWidthFallback(t *testing.T) {
	t.Setenv("COLUMNS", "")
	if got := terminalWidth(&bytes.Buffer{}, 72); got != 72 {
		t.Fatalf("terminalWidth = %d, want 72", got)
	}
	t.Setenv("COLUMNS", "100")
	if got := resolveWidth(&bytes.Buffer{}, 0); got != 100 {
		t.Fatalf("resolveWidth = %d, want 100", got)
	}
	if got := resolveWidth(&bytes.Buffer{}, 50); got != 50 {
		t.Fatalf("resolveWidth override = %d, want 50", got)
	}
}
