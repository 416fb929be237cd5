package html2pdf

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"strings"
)

// Nominal page heights in CSS pixels at 96 DPI, and the allowance for the
// 20mm top and bottom print margins. Chrome's A4 sheet is 1123px tall, one
// more than the nominal height, so the first page break lands at 972px.
const (
	a4PageHeightPx = 1122
	a3PageHeightPx = 1587
	marginAllowPx  = 151
	pageEdgePx     = 1
)

// appendixPrefix is dropped from heading titles.
const appendixPrefix = "Appendix: "

// headingSample is what the page script reports for one element.
type headingSample struct {
	Tag  string  `json:"tag"`
	Text string  `json:"text"`
	Top  float64 `json:"top"`
}

// contentHeightPx is the printable height of one page for mode:
// 972px for A4, 1437px for A3. Free scroll uses the A4 height since the
// estimate is only a hint there.
func contentHeightPx(mode PaperMode) float64 {
	if mode == PaperA3 {
		return a3PageHeightPx - marginAllowPx + pageEdgePx
	}
	return a4PageHeightPx - marginAllowPx + pageEdgePx
}

// estimatePage maps an absolute document offset to a zero-based page index.
// The value is an approximation: real page breaks are decided by the print
// engine, which Page.printToPDF does not report.
func estimatePage(offsetPx float64, mode PaperMode) int {
	if offsetPx <= 0 || math.IsNaN(offsetPx) {
		return 0
	}
	return int(math.Floor(offsetPx / contentHeightPx(mode)))
}

// cleanTitle strips the appendix prefix and surrounding whitespace.
func cleanTitle(text string) string {
	t := strings.TrimSpace(text)
	t = strings.TrimPrefix(t, appendixPrefix)
	return strings.TrimSpace(t)
}

// headingLevel is 1 for H1 and 2 for everything else.
func headingLevel(tag string) int {
	if strings.EqualFold(tag, "h1") {
		return 1
	}
	return 2
}

// buildHeadings turns raw samples into heading records, keeping document order.
func buildHeadings(samples []headingSample, mode PaperMode) []Heading {
	headings := make([]Heading, 0, len(samples))
	for _, s := range samples {
		headings = append(headings, Heading{
			Title:            cleanTitle(s.Text),
			PageEstimate:     estimatePage(s.Top, mode),
			Level:            headingLevel(s.Tag),
			VerticalOffsetPx: s.Top,
		})
	}
	return headings
}

// writeBookmarks writes headings as an indented JSON array.
// A nil slice is written as [] so consumers always get an array.
func writeBookmarks(path string, headings []Heading) error {
	if headings == nil {
		headings = []Heading{}
	}
	data, err := json.MarshalIndent(headings, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrWriteBookmarks, err)
	}
	data = append(data, '\n')

	// #nosec G306 -- bookmark files are intended to be readable
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteBookmarks, err)
	}
	return nil
}

// ReadBookmarks loads a bookmarks file written by a previous render.
func ReadBookmarks(path string) ([]Heading, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- path is user-provided
	if err != nil {
		return nil, err
	}
	var headings []Heading
	if err := json.Unmarshal(data, &headings); err != nil {
		return nil, fmt.Errorf("parsing bookmarks %s: %w", path, err)
	}
	return headings, nil
}
