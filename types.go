package html2pdf

import (
	"fmt"
	"strings"
	"time"
)

// PaperMode selects the output page geometry.
type PaperMode string

// Paper mode constants.
const (
	PaperA4         PaperMode = "a4"
	PaperA3         PaperMode = "a3"
	PaperFreeScroll PaperMode = "free"
)

// Defaults applied when a Request leaves a field empty.
const (
	DefaultWidth           = "210mm"
	DefaultDiagramSelector = ".mermaid svg"
	DefaultDiagramTimeout  = 10 * time.Second
	DefaultHeadingSelector = "h1, h2, .spec-title"
	defaultTimeout         = 60 * time.Second
)

// ParsePaperMode parses a mode name (case-insensitive).
// Accepts "a4", "a3", "free" and the alias "scroll".
func ParsePaperMode(s string) (PaperMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "a4":
		return PaperA4, nil
	case "a3":
		return PaperA3, nil
	case "free", "scroll", "":
		return PaperFreeScroll, nil
	}
	return "", fmt.Errorf("%w: %q (must be a4, a3, or free)", ErrInvalidMode, s)
}

// Request describes a single render. Construct it once and treat it as immutable.
type Request struct {
	InputPath  string    // HTML (or Markdown) file to render
	OutputPath string    // PDF destination
	Width      string    // page width with unit, used in free scroll mode (default "210mm")
	Mode       PaperMode // A4, A3 or free scroll (default free scroll)

	// Hydrate is the legacy switch. It only disables bookmark output.
	Hydrate bool

	// Outline embeds the estimated headings as a PDF outline.
	Outline bool

	// DiagramSelector is waited for, best-effort, before sampling.
	// Empty uses DefaultDiagramSelector.
	DiagramSelector string
	DiagramTimeout  time.Duration

	// HeadingSelector selects the elements recorded as bookmarks.
	HeadingSelector string
}

// withDefaults returns a copy of r with empty fields filled in.
func (r Request) withDefaults() Request {
	if r.Width == "" {
		r.Width = DefaultWidth
	}
	if r.Mode == "" {
		r.Mode = PaperFreeScroll
	}
	if r.DiagramSelector == "" {
		r.DiagramSelector = DefaultDiagramSelector
	}
	if r.DiagramTimeout <= 0 {
		r.DiagramTimeout = DefaultDiagramTimeout
	}
	if r.HeadingSelector == "" {
		r.HeadingSelector = DefaultHeadingSelector
	}
	return r
}

// Validate checks that the request can be rendered.
// Does not touch the filesystem.
func (r Request) Validate() error {
	if strings.TrimSpace(r.InputPath) == "" {
		return fmt.Errorf("%w: input path is required", ErrInvalidRequest)
	}
	if strings.TrimSpace(r.OutputPath) == "" {
		return fmt.Errorf("%w: output path is required", ErrInvalidRequest)
	}
	switch r.Mode {
	case "", PaperA4, PaperA3, PaperFreeScroll:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidMode, r.Mode)
	}
	// A4 and A3 print at a fixed size whatever the width says.
	if r.usesWidth() && r.Width != "" {
		if _, err := ParseLength(r.Width); err != nil {
			return err
		}
	}
	return nil
}

// usesWidth reports whether the page width depends on Width.
func (r Request) usesWidth() bool {
	return r.Mode == PaperFreeScroll || r.Mode == ""
}

// BookmarksPath returns the sidecar file written next to the PDF.
func (r Request) BookmarksPath() string {
	return r.OutputPath + ".bookmarks.json"
}

// Heading is one sampled heading with its estimated page.
type Heading struct {
	Title            string  `json:"title"`
	PageEstimate     int     `json:"pageEstimate"`
	Level            int     `json:"level"`
	VerticalOffsetPx float64 `json:"verticalOffsetPx"`
}

// Result reports what a render produced.
type Result struct {
	PDFPath       string
	BookmarksPath string // empty when no bookmarks file was written
	Headings      []Heading
	Options       PDFOptions
	DiagramsReady bool
}
