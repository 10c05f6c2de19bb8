package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2docx [command] [flags] [input]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  convert    Convert markdown files to DOCX (default)")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Running md2docx with no arguments starts the interactive wizard.")
	fmt.Fprintln(w, "Run 'md2docx help convert' for conversion flags.")
}

// printConvertUsage prints usage for the convert command.
func printConvertUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2docx convert [input] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Convert markdown files to DOCX. A directory input converts every")
	fmt.Fprintln(w, "markdown file beneath it; missing values are prompted interactively.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -i, --input <path>     Markdown file or directory")
	fmt.Fprintln(w, "  -o, --output <path>    Output file or directory")
	fmt.Fprintln(w, "  -t, --theme <name>     Document theme: default, professional")
	fmt.Fprintln(w, "  -c, --config <name>    Config file name or path")
	fmt.Fprintln(w, "  -w, --workers <n>      Parallel workers for directory input (0 = auto)")
	fmt.Fprintln(w, "  -y, --yes              Skip confirmation prompts")
	fmt.Fprintln(w, "  -q, --quiet            Suppress banner and progress output")
	fmt.Fprintln(w, "      --verbose          Verbose diagnostics to stderr")
}
