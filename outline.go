package html2pdf

import (
	"fmt"

	"github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
)

// pageCount returns the number of pages in the PDF at path.
func pageCount(path string) (int, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return 0, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()
	return r.NumPage(), nil
}

// clampPage keeps a zero-based estimate inside [0, pages-1].
// pages <= 0 disables the upper bound.
func clampPage(page, pages int) int {
	if page < 0 {
		return 0
	}
	if pages > 0 && page >= pages {
		return pages - 1
	}
	return page
}

// buildOutline nests level-2 headings under the preceding level-1 heading.
// Level-2 headings before any level-1 heading stay at the top level.
// Headings with empty titles are skipped.
func buildOutline(headings []Heading, pages int) []pdfcpu.Bookmark {
	var roots []pdfcpu.Bookmark
	parent := -1
	for _, h := range headings {
		if h.Title == "" {
			continue
		}
		bm := pdfcpu.Bookmark{
			Title:    h.Title,
			PageFrom: clampPage(h.PageEstimate, pages) + 1,
		}
		switch {
		case h.Level <= 1:
			bm.Bold = true
			roots = append(roots, bm)
			parent = len(roots) - 1
		case parent >= 0:
			roots[parent].Kids = append(roots[parent].Kids, bm)
		default:
			roots = append(roots, bm)
		}
	}
	return roots
}

// embedOutline writes headings into the PDF at path as its document outline,
// replacing any outline Chrome generated.
func embedOutline(path string, headings []Heading) error {
	pages, err := pageCount(path)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrOutline, err)
	}

	bms := buildOutline(headings, pages)
	if len(bms) == 0 {
		return nil
	}

	// Empty outFile rewrites inFile in place.
	if err := api.AddBookmarksFile(path, "", bms, true, nil); err != nil {
		return fmt.Errorf("%w: %v", ErrOutline, err)
	}
	return nil
}
