package main

// Notes:
// - exitCodeFor: every sentinel the library, config and CLI can return is
//   listed, plus wrapped variants to verify the errors.Is chain.

import (
	"errors"
	"fmt"
	"os"
	"testing"

	html2pdf "github.com/alnah/go-html2pdf"
	"github.com/alnah/go-html2pdf/internal/config"
	"github.com/alnah/go-html2pdf/internal/fileutil"
)

// ---------------------------------------------------------------------------
// TestExitCodeFor - Error to exit code mapping
// ---------------------------------------------------------------------------

func TestExitCodeFor(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil error", nil, ExitSuccess},

		// Browser errors (exit 4)
		{"browser connect", html2pdf.ErrBrowserConnect, ExitBrowser},
		{"page create", html2pdf.ErrPageCreate, ExitBrowser},
		{"page load", html2pdf.ErrPageLoad, ExitBrowser},
		{"evaluate", html2pdf.ErrEvaluate, ExitBrowser},
		{"pdf generation", html2pdf.ErrPDFGeneration, ExitBrowser},
		{"wrapped browser connect with hint", fmt.Errorf("%w\n  hint: x", html2pdf.ErrBrowserConnect), ExitBrowser},

		// I/O errors (exit 3)
		{"file not exist", os.ErrNotExist, ExitIO},
		{"permission denied", os.ErrPermission, ExitIO},
		{"input not found", html2pdf.ErrInputNotFound, ExitIO},
		{"write pdf", html2pdf.ErrWritePDF, ExitIO},
		{"write bookmarks", html2pdf.ErrWriteBookmarks, ExitIO},
		{"not a directory", fileutil.ErrNotDirectory, ExitIO},

		// Usage/config errors (exit 2)
		{"usage", ErrUsage, ExitUsage},
		{"invalid timeout", ErrInvalidTimeout, ExitUsage},
		{"config not found", config.ErrConfigNotFound, ExitUsage},
		{"empty config name", config.ErrEmptyConfigName, ExitUsage},
		{"config parse", config.ErrConfigParse, ExitUsage},
		{"config invalid", config.ErrConfigInvalid, ExitUsage},
		{"invalid request", html2pdf.ErrInvalidRequest, ExitUsage},
		{"invalid width", html2pdf.ErrInvalidWidth, ExitUsage},
		{"invalid mode", html2pdf.ErrInvalidMode, ExitUsage},
		{"wrapped config parse", fmt.Errorf("loading config: %w", config.ErrConfigParse), ExitUsage},

		// General errors (exit 1)
		{"outline", html2pdf.ErrOutline, ExitGeneral},
		{"unknown error", errors.New("something unexpected"), ExitGeneral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := exitCodeFor(tt.err); got != tt.want {
				t.Errorf("exitCodeFor(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestExitCodes_Conventions(t *testing.T) {
	t.Parallel()

	if ExitSuccess != 0 || ExitGeneral != 1 || ExitUsage != 2 {
		t.Error("exit codes must follow Unix conventions 0/1/2")
	}
	for _, code := range []int{ExitIO, ExitBrowser} {
		if code <= ExitUsage || code >= 126 {
			t.Errorf("custom exit code %d must be in (2, 126)", code)
		}
	}
}
