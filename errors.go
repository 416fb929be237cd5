package html2pdf

import "errors"

// Sentinel errors for library operations.
var (
	ErrInvalidRequest = errors.New("invalid render request")
	ErrInvalidWidth   = errors.New("invalid page width")
	ErrInvalidMode    = errors.New("invalid paper mode")
	ErrInputNotFound  = errors.New("input file not found")

	// Browser errors.
	ErrBrowserConnect = errors.New("failed to connect to browser")
	ErrPageCreate     = errors.New("failed to create browser page")
	ErrPageLoad       = errors.New("failed to load page")
	ErrEvaluate       = errors.New("failed to evaluate page script")
	ErrPDFGeneration  = errors.New("PDF generation failed")

	// Output errors.
	ErrWritePDF       = errors.New("failed to write PDF file")
	ErrWriteBookmarks = errors.New("failed to write bookmarks file")
	ErrOutline        = errors.New("failed to embed PDF outline")

	// Markdown input errors.
	ErrHTMLConversion = errors.New("HTML conversion failed")
)
