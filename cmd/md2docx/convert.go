package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	md2docx "github.com/mdwizard/go-md2docx"
	"github.com/mdwizard/go-md2docx/internal/config"
	"github.com/mdwizard/go-md2docx/internal/fileutil"
)

// Sentinel errors for CLI operations.
var (
	ErrNoInput            = errors.New("no input specified")
	ErrReadMarkdown       = errors.New("failed to read markdown file")
	ErrWriteDocument      = errors.New("failed to write document")
	ErrInvalidWorkerCount = errors.New("invalid worker count")
)

// File permission constants.
const (
	dirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	filePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

// maxWorkers bounds the --workers flag.
const maxWorkers = 32

// runConvert orchestrates the conversion process: config loading, flag
// merging, interactive resolution of missing inputs, and the single-file
// or batch path.
func runConvert(ctx context.Context, flags *convertFlags, positional []string, env *Environment) error {
	if err := validateWorkers(flags.workers); err != nil {
		return err
	}

	// Load configuration
	cfg := config.DefaultConfig()
	var err error
	if flags.common.config != "" {
		cfg, err = config.LoadConfig(flags.common.config)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
	}

	// Merge CLI flags into config (CLI wins)
	mergeFlags(flags, cfg)

	quiet := flags.common.quiet
	interactive := !flags.yes && !quiet

	if !quiet && !cfg.Console.NoBanner {
		printBanner(env.Stdout)
	}

	pr := newPrompter(env.Stdin, env.Stdout)

	// Theme comes from the flag or config file when either is given;
	// otherwise the wizard asks.
	theme := cfg.Theme
	if flags.theme == "" && flags.common.config == "" && interactive {
		theme, err = pr.selectTheme()
		if err != nil {
			return err
		}
	}

	// Resolve input
	input := flags.input
	if input == "" && len(positional) > 0 {
		input = positional[0]
	}
	if input == "" {
		input = cfg.Input.DefaultDir
	}
	if input == "" {
		if !interactive {
			return ErrNoInput
		}
		input, err = pr.selectInputFile()
		if err != nil {
			return err
		}
	}

	if fileutil.DirExists(input) {
		outputDir := flags.output
		if outputDir == "" {
			outputDir = cfg.Output.DefaultDir
		}
		if outputDir == "" {
			outputDir = input
		}
		return runBatch(ctx, theme, cfg.Workers, input, outputDir, env, quiet)
	}

	if !fileutil.FileExists(input) {
		return fmt.Errorf("input %s: %w", input, os.ErrNotExist)
	}

	// Resolve output. The wizard and the non-interactive path share one
	// default: input with a .docx extension, relocated to the configured
	// output directory when one is set.
	output := flags.output
	if output == "" {
		output = fileutil.SwapExtension(input, ".docx")
		if cfg.Output.DefaultDir != "" {
			output = filepath.Join(cfg.Output.DefaultDir, filepath.Base(output))
		}
		if interactive {
			output, err = pr.selectOutputPath(output, cfg.Output.Overwrite)
			if err != nil {
				return err
			}
		}
	}

	content, err := fileutil.ReadTextFile(input)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrReadMarkdown, err)
	}

	if !quiet {
		printPreview(env.Stdout, content)
	}

	// Both paths on the command line mean "just do it"; otherwise the
	// wizard confirms before writing.
	if interactive && !(flags.input != "" && flags.output != "") {
		ok, err := pr.confirm("Proceed with conversion?", true)
		if err != nil {
			return err
		}
		if !ok {
			printWarning(env.Stdout, "Conversion cancelled.")
			return nil
		}
	}

	conv, err := md2docx.NewConverter(md2docx.WithTheme(theme))
	if err != nil {
		return err
	}

	result, err := conv.Convert(ctx, md2docx.Input{Markdown: content})
	if err != nil {
		return err
	}

	if err := writeDocument(output, result.DOCX); err != nil {
		return err
	}

	if !quiet {
		printSuccess(env.Stdout, "Document successfully saved to "+output)
	}
	return nil
}

// mergeFlags applies CLI flags over the loaded config.
func mergeFlags(flags *convertFlags, cfg *config.Config) {
	if flags.theme != "" {
		cfg.Theme = flags.theme
	}
	if flags.workers > 0 {
		cfg.Workers = flags.workers
	}
}

// validateWorkers bounds the worker count early, before any work starts.
func validateWorkers(n int) error {
	if n < 0 || n > maxWorkers {
		return fmt.Errorf("%w: %d (must be 0 to %d)", ErrInvalidWorkerCount, n, maxWorkers)
	}
	return nil
}

// writeDocument writes the serialized package, creating the target
// directory when needed.
func writeDocument(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, dirPermissions); err != nil {
			return fmt.Errorf("%w: %v", ErrWriteDocument, err)
		}
	}
	if err := os.WriteFile(path, data, filePermissions); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteDocument, err)
	}
	return nil
}
