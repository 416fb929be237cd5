package html2pdf

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"

	"github.com/alnah/go-html2pdf/internal/process"
)

// browserDriver abstracts the headless browser to allow rendering without Chrome in tests.
type browserDriver interface {
	Open(ctx context.Context, url string) (pageSession, error)
	Close() error
}

// pageSession is one document loaded in an isolated browser context.
type pageSession interface {
	WaitForSelector(ctx context.Context, selector string, timeout time.Duration) error
	SampleHeadings(ctx context.Context, selector string) ([]headingSample, error)
	ScrollHeight(ctx context.Context) (float64, error)
	PDF(ctx context.Context, opts PDFOptions) ([]byte, error)
	Close() error
}

// Compile-time interface checks
var (
	_ browserDriver = (*rodBrowser)(nil)
	_ pageSession   = (*rodSession)(nil)
)

// Page scripts. Offsets are absolute: viewport top plus current scroll.
// The root element's scrollHeight includes body margins, so the last line
// of a free scroll page is never clipped.
const (
	sampleHeadingsJS = `(sel) => Array.from(document.querySelectorAll(sel)).map((el) => ({
	tag: el.tagName.toLowerCase(),
	text: el.innerText || el.textContent || "",
	top: el.getBoundingClientRect().top + window.scrollY,
}))`

	scrollHeightJS = `() => document.documentElement.scrollHeight`
)

// rodBrowser implements browserDriver using go-rod.
// Rod downloads Chromium on first run if no browser is found.
type rodBrowser struct {
	launcher *launcher.Launcher
	browser  *rod.Browser
	pid      int
}

// newRodBrowser returns a browser that launches lazily on first Open.
func newRodBrowser() *rodBrowser {
	return &rodBrowser{}
}

// ensureBrowser launches and connects to Chrome once.
func (b *rodBrowser) ensureBrowser(ctx context.Context) error {
	if b.browser != nil {
		return nil
	}

	l := launcher.New().Context(ctx).Headless(true)

	// Use pre-installed browser if specified (Docker/containerized environments)
	if bin := os.Getenv("ROD_BROWSER_BIN"); bin != "" {
		l = l.Bin(bin)
	}

	if noSandbox(os.Getenv) {
		l = l.NoSandbox(true)
	}

	u, err := l.Launch()
	if err != nil {
		l.Kill()
		return fmt.Errorf("%w: %v", ErrBrowserConnect, err)
	}
	b.launcher = l
	b.pid = l.PID()

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		b.killLauncher()
		return fmt.Errorf("%w: %v", ErrBrowserConnect, err)
	}
	b.browser = browser
	return nil
}

// noSandbox reports whether Chrome must run without its sandbox.
// Required for CI and containerized environments; off elsewhere.
func noSandbox(getenv func(string) string) bool {
	return getenv("CI") == "true" || getenv("ROD_NO_SANDBOX") == "1"
}

// Open loads url in a fresh incognito context and waits for network idle.
func (b *rodBrowser) Open(ctx context.Context, url string) (pageSession, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := b.ensureBrowser(ctx); err != nil {
		return nil, err
	}

	incognito, err := b.browser.Incognito()
	if err != nil {
		return nil, fmt.Errorf("%w: incognito context: %v", ErrPageCreate, err)
	}

	page, err := incognito.Page(proto.TargetCreateTarget{})
	if err != nil {
		_ = incognito.Close()
		return nil, fmt.Errorf("%w: %v", ErrPageCreate, err)
	}
	s := &rodSession{page: page, context: incognito}

	loaded := page.Context(ctx)
	wait := loaded.WaitNavigation(proto.PageLifecycleEventNameNetworkIdle)
	if err := loaded.Navigate(url); err != nil {
		_ = s.Close()
		return nil, fmt.Errorf("%w: %v", ErrPageLoad, err)
	}
	wait()

	if err := ctx.Err(); err != nil {
		_ = s.Close()
		return nil, fmt.Errorf("%w: waiting for network idle: %v", ErrPageLoad, err)
	}
	return s, nil
}

// Close releases browser resources. Safe to call more than once.
func (b *rodBrowser) Close() error {
	var err error
	if b.browser != nil {
		err = b.browser.Close()
		b.browser = nil
	}
	b.killLauncher()
	return err
}

// killLauncher stops the Chrome process tree and removes its profile directory.
func (b *rodBrowser) killLauncher() {
	if b.launcher == nil {
		return
	}
	b.launcher.Kill()
	if b.pid > 0 {
		process.KillProcessGroup(b.pid)
	}
	b.launcher.Cleanup()
	b.launcher = nil
	b.pid = 0
}

// rodSession implements pageSession for one rod page.
type rodSession struct {
	page    *rod.Page
	context *rod.Browser // incognito context owning page
}

// WaitForSelector blocks until selector matches or timeout elapses.
func (s *rodSession) WaitForSelector(ctx context.Context, selector string, timeout time.Duration) error {
	_, err := s.page.Context(ctx).Timeout(timeout).Element(selector)
	return err
}

// SampleHeadings reads tag, text and absolute offset of every selector match.
func (s *rodSession) SampleHeadings(ctx context.Context, selector string) ([]headingSample, error) {
	res, err := s.page.Context(ctx).Eval(sampleHeadingsJS, selector)
	if err != nil {
		return nil, fmt.Errorf("%w: sampling headings: %v", ErrEvaluate, err)
	}
	var samples []headingSample
	if err := res.Value.Unmarshal(&samples); err != nil {
		return nil, fmt.Errorf("%w: decoding headings: %v", ErrEvaluate, err)
	}
	return samples, nil
}

// ScrollHeight returns the total scrollable height of the document in CSS pixels.
func (s *rodSession) ScrollHeight(ctx context.Context) (float64, error) {
	res, err := s.page.Context(ctx).Eval(scrollHeightJS)
	if err != nil {
		return 0, fmt.Errorf("%w: reading scroll height: %v", ErrEvaluate, err)
	}
	return res.Value.Num(), nil
}

// PDF prints the page with opts and returns the PDF bytes.
func (s *rodSession) PDF(ctx context.Context, opts PDFOptions) ([]byte, error) {
	reader, err := s.page.Context(ctx).PDF(toPrintParams(opts))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPDFGeneration, err)
	}

	pdfBuf, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("%w: reading PDF stream: %v", ErrPDFGeneration, err)
	}
	return pdfBuf, nil
}

// Close closes the page and disposes its incognito context.
func (s *rodSession) Close() error {
	var err error
	if s.page != nil {
		err = s.page.Close()
		s.page = nil
	}
	if s.context != nil {
		if cerr := s.context.Close(); err == nil {
			err = cerr
		}
		s.context = nil
	}
	return err
}

// toPrintParams converts geometry to Page.printToPDF parameters.
// Header and footer chrome is always off.
func toPrintParams(opts PDFOptions) *proto.PagePrintToPDF {
	return &proto.PagePrintToPDF{
		PaperWidth:          floatPtr(opts.PaperWidth),
		PaperHeight:         floatPtr(opts.PaperHeight),
		MarginTop:           floatPtr(opts.Margin.Top),
		MarginRight:         floatPtr(opts.Margin.Right),
		MarginBottom:        floatPtr(opts.Margin.Bottom),
		MarginLeft:          floatPtr(opts.Margin.Left),
		PrintBackground:     opts.PrintBackground,
		DisplayHeaderFooter: false,
	}
}

// floatPtr returns a pointer to a float64 value.
func floatPtr(v float64) *float64 {
	return &v
}
