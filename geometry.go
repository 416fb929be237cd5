package html2pdf

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// CSS reference pixels per inch. Chrome prints at this density.
const pxPerInch = 96.0

// Paper sizes in inches, matching Chrome's named formats.
const (
	a4WidthInches  = 8.27
	a4HeightInches = 11.7
	a3WidthInches  = 11.7
	a3HeightInches = 16.54
)

// Fixed-format margins in millimetres.
const (
	marginVerticalMM   = 20
	marginHorizontalMM = 15
)

// freeScrollPadPx is added below the content so the last line is not clipped.
const freeScrollPadPx = 50

// unitToPx maps supported CSS length units to reference pixels.
var unitToPx = map[string]float64{
	"px": 1,
	"in": pxPerInch,
	"cm": pxPerInch / 2.54,
	"mm": pxPerInch / 25.4,
	"pt": pxPerInch / 72,
	"pc": pxPerInch / 6,
}

// Margins holds page margins in inches.
type Margins struct {
	Top, Right, Bottom, Left float64
}

// PDFOptions is the page geometry handed to the print engine.
// All lengths are in inches, the unit of Page.printToPDF.
type PDFOptions struct {
	Format          string // "A4", "A3" or "free"
	PaperWidth      float64
	PaperHeight     float64
	Margin          Margins
	PrintBackground bool
}

// ParseLength converts a length such as "210mm", "8.5in" or "1200px" to CSS pixels.
// A bare number is read as pixels.
func ParseLength(s string) (float64, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	if v == "" {
		return 0, fmt.Errorf("%w: empty", ErrInvalidWidth)
	}

	factor := 1.0
	for unit, f := range unitToPx {
		if strings.HasSuffix(v, unit) {
			v = strings.TrimSpace(strings.TrimSuffix(v, unit))
			factor = f
			break
		}
	}

	n, err := strconv.ParseFloat(v, 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidWidth, s)
	}
	if n <= 0 {
		return 0, fmt.Errorf("%w: %q (must be positive)", ErrInvalidWidth, s)
	}
	return n * factor, nil
}

// mmToInches converts millimetres to inches.
func mmToInches(mm float64) float64 {
	return mm / 25.4
}

// pxToInches converts CSS pixels to inches.
func pxToInches(px float64) float64 {
	return px / pxPerInch
}

// fixedMargins are used by both A4 and A3.
func fixedMargins() Margins {
	return Margins{
		Top:    mmToInches(marginVerticalMM),
		Right:  mmToInches(marginHorizontalMM),
		Bottom: mmToInches(marginVerticalMM),
		Left:   mmToInches(marginHorizontalMM),
	}
}

// buildPDFOptions derives the output geometry for mode.
// width and scrollHeightPx are only read in free scroll mode.
func buildPDFOptions(mode PaperMode, width string, scrollHeightPx float64) (PDFOptions, error) {
	switch mode {
	case PaperA4:
		return PDFOptions{
			Format:          "A4",
			PaperWidth:      a4WidthInches,
			PaperHeight:     a4HeightInches,
			Margin:          fixedMargins(),
			PrintBackground: true,
		}, nil
	case PaperA3:
		return PDFOptions{
			Format:          "A3",
			PaperWidth:      a3WidthInches,
			PaperHeight:     a3HeightInches,
			Margin:          fixedMargins(),
			PrintBackground: true,
		}, nil
	case PaperFreeScroll, "":
		widthPx, err := ParseLength(width)
		if err != nil {
			return PDFOptions{}, err
		}
		return PDFOptions{
			Format:          "free",
			PaperWidth:      pxToInches(widthPx),
			PaperHeight:     pxToInches(scrollHeightPx + freeScrollPadPx),
			PrintBackground: true,
		}, nil
	}
	return PDFOptions{}, fmt.Errorf("%w: %q", ErrInvalidMode, mode)
}
