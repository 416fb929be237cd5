package main

import (
	"fmt"
	"io"
)

// printUsage prints the usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: render <input> <output.pdf> [width] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Render an HTML (or Markdown) file to PDF with headless Chrome.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  input     HTML file (.md/.markdown is converted first)")
	fmt.Fprintln(w, "  output    PDF file; <output>.bookmarks.json is written next to it")
	fmt.Fprintln(w, "  width     Page width in free scroll mode (default 210mm)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Paper:")
	fmt.Fprintln(w, "      --a4                  A4 pages, margins 20mm/15mm")
	fmt.Fprintln(w, "      --a3                  A3 pages, margins 20mm/15mm")
	fmt.Fprintln(w, "                            Without either: one continuous page")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Bookmarks:")
	fmt.Fprintln(w, "      --hydrate             Skip the bookmarks file (legacy)")
	fmt.Fprintln(w, "      --outline             Also embed headings as PDF outline")
	fmt.Fprintln(w, "      --heading-selector <s> Elements to bookmark (default \"h1, h2, .spec-title\")")
	fmt.Fprintln(w, "      --diagram-selector <s> Waited for up to 10s (default \".mermaid svg\")")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "General:")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -t, --timeout <dur>       Render timeout (default 60s)")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show debug output")
	fmt.Fprintln(w, "      --print-config        Print effective config and exit")
	fmt.Fprintln(w, "      --version             Print version and exit")
	fmt.Fprintln(w, "  -h, --help                Show this help")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  ROD_BROWSER_BIN           Chrome/Chromium binary to launch")
	fmt.Fprintln(w, "  ROD_NO_SANDBOX=1          Disable the Chrome sandbox (Docker/CI)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Exit codes: 0 ok, 1 error, 2 usage, 3 I/O, 4 browser")
}
