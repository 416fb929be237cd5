package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"go.uber.org/zap"

	html2pdf "github.com/alnah/go-html2pdf"
	"github.com/alnah/go-html2pdf/internal/config"
	"github.com/alnah/go-html2pdf/internal/fileutil"
	"github.com/alnah/go-html2pdf/internal/hints"
	"github.com/alnah/go-html2pdf/internal/yamlutil"
)

// Sentinel errors for CLI operations.
var (
	ErrUsage          = errors.New("usage error")
	ErrInvalidTimeout = errors.New("invalid timeout")
)

// runRender builds the request from args, flags and config, then renders once.
// The renderer is closed on every path, releasing the browser.
func runRender(ctx context.Context, positional []string, flags *renderFlags, env *Environment, log *zap.SugaredLogger) error {
	cfg, err := loadConfig(flags)
	if err != nil {
		return err
	}

	req, err := buildRequest(positional, flags, cfg)
	if err != nil {
		return err
	}
	if len(positional) > 3 {
		log.Warnw("ignoring extra arguments", "args", positional[3:])
	}

	timeout, err := resolveTimeout(flags.timeout, cfg)
	if err != nil {
		return err
	}

	if err := fileutil.CheckParentDir(req.OutputPath); err != nil {
		return fmt.Errorf("%w: %v%s", html2pdf.ErrWritePDF, err, hints.ForOutputDirectory())
	}

	r := env.NewRenderer(timeout, log)
	defer func() {
		if cerr := r.Close(); cerr != nil {
			log.Debugw("closing browser", "error", cerr)
		}
	}()

	log.Infow("rendering", "input", req.InputPath, "output", req.OutputPath, "paper", string(req.Mode))
	res, err := r.Render(ctx, req)
	if err != nil {
		return withHint(err)
	}

	if res.BookmarksPath != "" {
		log.Infow("done", "pdf", res.PDFPath, "bookmarks", res.BookmarksPath, "headings", len(res.Headings))
	} else {
		log.Infow("done", "pdf", res.PDFPath)
	}
	return nil
}

// loadConfig returns the file config when --config is set, else the defaults.
func loadConfig(flags *renderFlags) (*config.Config, error) {
	if flags.config == "" {
		return config.DefaultConfig(), nil
	}
	cfg, err := config.LoadConfig(flags.config)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// mergeFlags merges CLI flags into config. CLI values override config values.
// --a4 is checked before --a3, so it wins when both are given.
func mergeFlags(flags *renderFlags, cfg *config.Config) {
	switch {
	case flags.a4:
		cfg.Paper = string(html2pdf.PaperA4)
	case flags.a3:
		cfg.Paper = string(html2pdf.PaperA3)
	}
	if flags.outline {
		cfg.Outline = true
	}
	if flags.timeout != "" {
		cfg.Timeout = flags.timeout
	}
	if flags.diagramSelector != "" {
		cfg.Diagram.Selector = flags.diagramSelector
	}
	if flags.headingSelector != "" {
		cfg.Headings.Selector = flags.headingSelector
	}
}

// buildRequest creates the render request. positional must hold at least
// input and output; the optional third value is the page width, which is
// only read in free scroll mode.
func buildRequest(positional []string, flags *renderFlags, cfg *config.Config) (html2pdf.Request, error) {
	if len(positional) < 2 {
		return html2pdf.Request{}, fmt.Errorf("%w: need <input> and <output>", ErrUsage)
	}

	mergeFlags(flags, cfg)

	mode, err := html2pdf.ParsePaperMode(cfg.Paper)
	if err != nil {
		return html2pdf.Request{}, err
	}

	width := cfg.Width
	if len(positional) > 2 {
		width = positional[2]
	}
	if mode == html2pdf.PaperFreeScroll {
		if _, err := html2pdf.ParseLength(width); err != nil {
			return html2pdf.Request{}, fmt.Errorf("%w%s", err, hints.ForWidth())
		}
	}

	return html2pdf.Request{
		InputPath:       positional[0],
		OutputPath:      positional[1],
		Width:           width,
		Mode:            mode,
		Hydrate:         flags.hydrate,
		Outline:         cfg.Outline,
		DiagramSelector: cfg.Diagram.Selector,
		DiagramTimeout:  cfg.DiagramTimeoutDuration(),
		HeadingSelector: cfg.Headings.Selector,
	}, nil
}

// resolveTimeout determines the render timeout.
// Priority: --timeout flag > config timeout > built-in default.
func resolveTimeout(flagValue string, cfg *config.Config) (time.Duration, error) {
	if flagValue != "" {
		d, err := time.ParseDuration(flagValue)
		if err != nil {
			return 0, fmt.Errorf("%w: %q: %v", ErrInvalidTimeout, flagValue, err)
		}
		if d <= 0 {
			return 0, fmt.Errorf("%w: must be positive, got %s", ErrInvalidTimeout, flagValue)
		}
		return d, nil
	}
	if d := cfg.TimeoutDuration(); d > 0 {
		return d, nil
	}
	return time.ParseDuration(config.DefaultTimeout)
}

// printEffectiveConfig writes the merged configuration as YAML.
func printEffectiveConfig(flags *renderFlags, w io.Writer) error {
	cfg, err := loadConfig(flags)
	if err != nil {
		return err
	}
	mergeFlags(flags, cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}
	out, err := yamlutil.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = w.Write(out)
	return err
}

// withHint appends an actionable hint for browser and timeout failures.
// The original error stays in the chain for exit code mapping.
func withHint(err error) error {
	switch {
	case errors.Is(err, html2pdf.ErrBrowserConnect):
		return fmt.Errorf("%w%s", err, hints.ForBrowserConnect())
	case errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("%w%s", err, hints.ForTimeout())
	case errors.Is(err, html2pdf.ErrPageLoad):
		return fmt.Errorf("%w%s", err, hints.ForPageLoad())
	}
	return err
}
