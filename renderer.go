package html2pdf

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/alnah/go-html2pdf/internal/fileutil"
	"github.com/alnah/go-html2pdf/internal/pipeline"
)

// Option configures a Renderer.
type Option func(*Renderer)

// rendererConfig holds internal configuration for Renderer.
type rendererConfig struct {
	timeout time.Duration
}

// WithTimeout bounds a whole render, browser launch included.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("html2pdf: WithTimeout duration must be positive")
	}
	return func(r *Renderer) {
		r.cfg.timeout = d
	}
}

// WithLogger sets the logger used for progress and diagnostics.
func WithLogger(log *zap.SugaredLogger) Option {
	return func(r *Renderer) {
		if log != nil {
			r.log = log
		}
	}
}

// withBrowser injects a browser driver (tests).
func withBrowser(b browserDriver) Option {
	return func(r *Renderer) {
		r.browser = b
	}
}

// Renderer drives one headless browser through the render steps.
// Create with NewRenderer, call Render, and Close when done.
type Renderer struct {
	cfg           rendererConfig
	log           *zap.SugaredLogger
	browser       browserDriver
	htmlConverter pipeline.HTMLConverter
}

// NewRenderer creates a Renderer. The browser is launched on first Render.
func NewRenderer(opts ...Option) *Renderer {
	r := &Renderer{
		cfg:           rendererConfig{timeout: defaultTimeout},
		log:           zap.NewNop().Sugar(),
		htmlConverter: pipeline.NewGoldmarkConverter(),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.browser == nil {
		r.browser = newRodBrowser()
	}
	return r
}

// Close releases the browser and its process.
func (r *Renderer) Close() error {
	if r.browser == nil {
		return nil
	}
	return r.browser.Close()
}

// Render loads req.InputPath, writes the PDF to req.OutputPath and, unless
// req.Hydrate is set, the heading estimates to req.BookmarksPath().
// Recovers from internal panics to prevent crashes from propagating to callers.
func (r *Renderer) Render(ctx context.Context, req Request) (result *Result, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			result = nil
			err = fmt.Errorf("internal error: %v", rec)
		}
	}()

	req = req.withDefaults()
	if err := req.Validate(); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, r.cfg.timeout)
	defer cancel()

	inputPath, cleanup, err := r.prepareInput(ctx, req.InputPath)
	if err != nil {
		return nil, err
	}
	defer cleanup()

	start := time.Now()
	session, err := r.browser.Open(ctx, fileURL(inputPath))
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := session.Close(); cerr != nil {
			r.log.Debugw("closing page", "error", cerr)
		}
	}()
	r.log.Debugw("page loaded", "input", inputPath, "elapsed", time.Since(start).Round(time.Millisecond))

	result = &Result{PDFPath: req.OutputPath}

	result.DiagramsReady, err = r.waitDiagrams(ctx, session, req)
	if err != nil {
		return nil, err
	}

	if !req.Hydrate {
		samples, err := session.SampleHeadings(ctx, req.HeadingSelector)
		if err != nil {
			return nil, err
		}
		result.Headings = buildHeadings(samples, req.Mode)
		if err := writeBookmarks(req.BookmarksPath(), result.Headings); err != nil {
			return nil, err
		}
		result.BookmarksPath = req.BookmarksPath()
		r.log.Infow("bookmarks written", "path", result.BookmarksPath, "headings", len(result.Headings))
	}

	var scrollHeight float64
	if req.Mode == PaperFreeScroll {
		if scrollHeight, err = session.ScrollHeight(ctx); err != nil {
			return nil, err
		}
	}

	result.Options, err = buildPDFOptions(req.Mode, req.Width, scrollHeight)
	if err != nil {
		return nil, err
	}
	r.log.Debugw("page geometry",
		"format", result.Options.Format,
		"widthIn", result.Options.PaperWidth,
		"heightIn", result.Options.PaperHeight,
	)

	pdfBuf, err := session.PDF(ctx, result.Options)
	if err != nil {
		return nil, err
	}

	// #nosec G306 -- PDF output files are intended to be readable
	if err := os.WriteFile(req.OutputPath, pdfBuf, 0o644); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrWritePDF, err)
	}
	r.log.Infow("PDF written", "path", req.OutputPath, "bytes", len(pdfBuf))

	if req.Outline && !req.Hydrate {
		if err := embedOutline(req.OutputPath, result.Headings); err != nil {
			return nil, err
		}
		r.log.Debugw("outline embedded", "path", req.OutputPath)
	}

	return result, nil
}

// waitDiagrams waits, best-effort, for the diagram selector.
// A timeout is not an error; a cancelled render is.
func (r *Renderer) waitDiagrams(ctx context.Context, session pageSession, req Request) (bool, error) {
	err := session.WaitForSelector(ctx, req.DiagramSelector, req.DiagramTimeout)
	if err == nil {
		r.log.Debugw("diagram rendered", "selector", req.DiagramSelector)
		return true, nil
	}
	if ctx.Err() != nil {
		return false, fmt.Errorf("%w: %v", ErrPageLoad, ctx.Err())
	}
	r.log.Infow("no diagram rendered, continuing",
		"selector", req.DiagramSelector,
		"timeout", req.DiagramTimeout,
	)
	return false, nil
}

// prepareInput resolves path to an absolute HTML file.
// Markdown input is converted to a temporary HTML file in the same directory
// so relative images and links keep resolving; cleanup removes it.
func (r *Renderer) prepareInput(ctx context.Context, path string) (string, func(), error) {
	noop := func() {}

	abs, err := filepath.Abs(path)
	if err != nil {
		return "", noop, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}
	if !fileutil.FileExists(abs) {
		return "", noop, fmt.Errorf("%w: %s", ErrInputNotFound, abs)
	}
	if !pipeline.IsMarkdownPath(abs) {
		return abs, noop, nil
	}

	content, err := os.ReadFile(abs) // #nosec G304 -- path is user-provided
	if err != nil {
		return "", noop, fmt.Errorf("reading markdown: %w", err)
	}
	htmlContent, err := r.htmlConverter.ToHTML(ctx, string(content))
	if err != nil {
		if errors.Is(err, pipeline.ErrHTMLConversion) {
			return "", noop, fmt.Errorf("%w: %v", ErrHTMLConversion, err)
		}
		return "", noop, err
	}

	tmpPath, cleanup, err := fileutil.WriteTempFile(filepath.Dir(abs), htmlContent, "html")
	if err != nil {
		return "", noop, err
	}
	r.log.Debugw("markdown converted", "input", abs, "html", tmpPath)
	return tmpPath, cleanup, nil
}

// fileURL builds a file:// URL for an absolute path, escaping as needed.
func fileURL(abs string) string {
	p := filepath.ToSlash(abs)
	if !strings.HasPrefix(p, "/") {
		p = "/" + p // Windows drive paths
	}
	return (&url.URL{Scheme: "file", Path: p}).String()
}
