package main

import (
	"io"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// convertFlags holds all flags for the convert command.
type convertFlags struct {
	common  commonFlags
	input   string
	output  string
	theme   string
	workers int
	yes     bool
}

// parseConvertFlags parses convert command flags and returns them together
// with the remaining positional arguments.
func parseConvertFlags(args []string) (*convertFlags, []string, error) {
	f := &convertFlags{}

	fs := flag.NewFlagSet("convert", flag.ContinueOnError)
	fs.SetOutput(io.Discard) // usage is printed by the caller

	fs.StringVarP(&f.input, "input", "i", "", "input markdown file or directory")
	fs.StringVarP(&f.output, "output", "o", "", "output file or directory")
	fs.StringVarP(&f.theme, "theme", "t", "", "document theme: default, professional")
	fs.StringVarP(&f.common.config, "config", "c", "", "config file name or path")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers for directory input (0 = auto)")
	fs.BoolVarP(&f.yes, "yes", "y", false, "skip confirmation prompts")
	fs.BoolVarP(&f.common.quiet, "quiet", "q", false, "suppress banner and progress output")
	fs.BoolVar(&f.common.verbose, "verbose", false, "verbose diagnostics to stderr")

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}
