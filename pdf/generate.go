package pdf

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"pkt.systems/brochure"
)

// Job pairs a document with the file it is rendered to.
type Job struct {
	Document brochure.Document
	Path     string
}

// JobsFor returns one job per document, writing each profile's file name
// under dir.
func JobsFor(dir string, docs []brochure.Document) ([]Job, error) {
	jobs := make([]Job, 0, len(docs))
	for _, doc := range docs {
		prof, ok := brochure.ProfileFor(doc.Lang)
		if !ok {
			return nil, fmt.Errorf("unknown language %q", doc.Lang)
		}
		jobs = append(jobs, Job{Document: doc, Path: filepath.Join(dir, prof.FileName)})
	}
	return jobs, nil
}

// GenerateRequest describes a batch of documents to render to files.
type GenerateRequest struct {
	Jobs   []Job
	Theme  brochure.Theme
	Config Config
	// Logger receives per-file debug records. Nil disables logging.
	Logger *slog.Logger
}

// Result describes one written file.
type Result struct {
	Path  string
	Pages int
	Bytes int64
}

// Generate renders every job to its file, in order. The fonts of all jobs are
// checked first; when any is missing no file is created and the returned
// error, a *MissingResourceError, lists every missing path.
func Generate(req GenerateRequest) ([]Result, error) {
	cfg := DefaultConfig()
	applyConfig(&cfg, req.Config)
	langs := make([]brochure.Lang, 0, len(req.Jobs))
	for _, job := range req.Jobs {
		langs = append(langs, job.Document.Lang)
	}
	files, err := cfg.FontFiles(langs...)
	if err != nil {
		return nil, err
	}
	if err := CheckFonts(files...); err != nil {
		return nil, err
	}
	logger := req.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	results := make([]Result, 0, len(req.Jobs))
	for _, job := range req.Jobs {
		res, err := generateFile(job, req.Theme, cfg)
		if err != nil {
			return results, err
		}
		logger.Debug("wrote pdf", "path", res.Path, "lang", job.Document.Lang, "pages", res.Pages, "bytes", res.Bytes)
		results = append(results, res)
	}
	return results, nil
}

func generateFile(job Job, theme brochure.Theme, cfg Config) (res Result, err error) {
	if dir := filepath.Dir(job.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return Result{}, fmt.Errorf("create output directory: %w", err)
		}
	}
	f, err := os.Create(job.Path)
	if err != nil {
		return Result{}, fmt.Errorf("create %s: %w", job.Path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", job.Path, cerr)
		}
		if err != nil {
			_ = os.Remove(job.Path)
		}
	}()
	cw := &countingWriter{w: f}
	pages, err := render(RenderRequest{
		Document: job.Document,
		Writer:   cw,
		Theme:    theme,
		Config:   cfg,
	})
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", job.Path, err)
	}
	return Result{Path: job.Path, Pages: pages, Bytes: cw.n}, nil
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}

// IsMissingResource reports whether err is caused by missing font files.
func IsMissingResource(err error) bool {
	return errors.Is(err, ErrMissingResource)
}
