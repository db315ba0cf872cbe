package main

import (
	flag "github.com/spf13/pflag"
)

// cliFlags holds all parsed command-line options.
type cliFlags struct {
	config  string
	style   string
	output  string
	html    bool
	workers int
	quiet   bool
	verbose bool
	version bool
}

// parseFlags parses args (including the program name) and returns the
// options plus the positional input files.
func parseFlags(args []string) (cliFlags, []string, error) {
	var f cliFlags

	fs := flag.NewFlagSet("snakedoc", flag.ContinueOnError)
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.StringVarP(&f.style, "style", "s", "", "force docstring dialect (google, numpy, sphinx, epytext)")
	fs.StringVarP(&f.output, "output", "o", "", "output file (single input only)")
	fs.BoolVar(&f.html, "html", false, "also write an HTML preview per input")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel conversions (0 = number of CPUs)")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show per-file progress")
	fs.BoolVar(&f.version, "version", false, "print version and exit")

	if err := fs.Parse(args[1:]); err != nil {
		return cliFlags{}, nil, err
	}
	return f, fs.Args(), nil
}
