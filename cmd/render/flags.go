package main

import (
	"io"

	flag "github.com/spf13/pflag"
)

// renderFlags holds all flags for the render command.
type renderFlags struct {
	// Paper mode
	a4 bool
	a3 bool

	// Legacy switch: disables bookmark output only
	hydrate bool

	outline         bool
	config          string
	timeout         string
	diagramSelector string
	headingSelector string

	quiet       bool
	verbose     bool
	version     bool
	printConfig bool
}

// parseFlags parses args (program name excluded) and returns positional args.
// Flags may appear before, between or after positional arguments.
func parseFlags(args []string) (*renderFlags, []string, error) {
	fs := flag.NewFlagSet("render", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	f := &renderFlags{}

	fs.BoolVar(&f.a4, "a4", false, "fixed A4 pages with 20mm/15mm margins")
	fs.BoolVar(&f.a3, "a3", false, "fixed A3 pages with 20mm/15mm margins")
	fs.BoolVar(&f.hydrate, "hydrate", false, "legacy mode: skip the bookmarks file")
	fs.BoolVar(&f.outline, "outline", false, "embed estimated headings as PDF outline")

	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.StringVarP(&f.timeout, "timeout", "t", "", "render timeout (e.g., 60s, 2m)")
	fs.StringVar(&f.diagramSelector, "diagram-selector", "", "CSS selector waited for before sampling")
	fs.StringVar(&f.headingSelector, "heading-selector", "", "CSS selector for bookmarked headings")

	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show debug output")
	fs.BoolVar(&f.version, "version", false, "print version and exit")
	fs.BoolVar(&f.printConfig, "print-config", false, "print effective config as YAML and exit")

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}
