// Package html2pdf renders an HTML document to PDF using headless Chrome,
// and records where its headings land.
//
// # Quick Start
//
// Create a renderer, render once, and close when done:
//
//	r := html2pdf.NewRenderer(html2pdf.WithTimeout(2 * time.Minute))
//	defer r.Close()
//
//	res, err := r.Render(ctx, html2pdf.Request{
//	    InputPath:  "report.html",
//	    OutputPath: "report.pdf",
//	    Mode:       html2pdf.PaperA4,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.BookmarksPath) // report.pdf.bookmarks.json
//
// # Render Steps
//
//  1. Load the file in an isolated browser context and wait for network idle
//  2. Wait, best-effort, for diagrams (DiagramSelector, DiagramTimeout)
//  3. Sample headings and estimate their pages (skipped when Hydrate is set)
//  4. Print with fixed A4/A3 geometry, or one tall page in free scroll mode
//  5. Optionally embed the headings as the PDF outline
//
// Markdown input (.md, .markdown) is converted to HTML first.
//
// # Page Estimates
//
// Page numbers in the bookmarks file are zero-based estimates:
// floor(offset / (nominal page height - 151 + 1)), with a nominal height of
// 1122px for A4 and 1587px for A3, giving divisors of 972 and 1437. Free
// scroll uses the A4 divisor. The print engine decides real page breaks, so
// estimates can drift on long documents.
//
// # Error Handling
//
// Errors wrap the sentinels in errors.go; test them with errors.Is:
//
//	if errors.Is(err, html2pdf.ErrBrowserConnect) {
//	    // Chrome could not be launched
//	}
package html2pdf
