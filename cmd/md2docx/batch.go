package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"sync"
	"time"

	md2docx "github.com/mdwizard/go-md2docx"
	"github.com/mdwizard/go-md2docx/internal/fileutil"
)

// fileToConvert is a single batch job.
type fileToConvert struct {
	inputPath  string
	outputPath string
}

// conversionResult holds the outcome of a single conversion.
type conversionResult struct {
	inputPath  string
	outputPath string
	err        error
	duration   time.Duration
}

// discoverFiles walks inputDir and pairs every markdown file with an output
// path that mirrors its relative location under outputDir.
func discoverFiles(inputDir, outputDir string) ([]fileToConvert, error) {
	var files []fileToConvert

	err := filepath.WalkDir(inputDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !fileutil.IsMarkdownFile(path) {
			return nil
		}
		rel, err := filepath.Rel(inputDir, path)
		if err != nil {
			return err
		}
		files = append(files, fileToConvert{
			inputPath:  path,
			outputPath: filepath.Join(outputDir, fileutil.SwapExtension(rel, ".docx")),
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	return files, nil
}

// runBatch converts every markdown file under inputDir using a pool of
// converters. Individual failures do not stop the batch; they are reported
// per file and aggregated into the returned error.
func runBatch(ctx context.Context, theme string, workers int, inputDir, outputDir string, env *Environment, quiet bool) error {
	files, err := discoverFiles(inputDir, outputDir)
	if err != nil {
		return fmt.Errorf("discovering files: %w", err)
	}
	if len(files) == 0 {
		return fmt.Errorf("%w: no markdown files in %s", ErrNoInput, inputDir)
	}

	poolSize := md2docx.ResolvePoolSize(workers)
	if poolSize > len(files) {
		poolSize = len(files)
	}

	pool, err := md2docx.NewConverterPool(poolSize, md2docx.WithTheme(theme))
	if err != nil {
		return err
	}

	if !quiet {
		fmt.Fprintf(env.Stdout, "Converting %d file(s) with %d worker(s)\n", len(files), poolSize)
	}

	jobs := make(chan fileToConvert)
	results := make(chan conversionResult, len(files))

	var wg sync.WaitGroup
	for i := 0; i < poolSize; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for job := range jobs {
				start := time.Now()
				conv := pool.Acquire()
				err := convertFile(ctx, conv, job)
				pool.Release(conv)
				results <- conversionResult{
					inputPath:  job.inputPath,
					outputPath: job.outputPath,
					err:        err,
					duration:   time.Since(start),
				}
			}
		}()
	}

feed:
	for _, f := range files {
		select {
		case jobs <- f:
		case <-ctx.Done():
			break feed
		}
	}
	close(jobs)
	wg.Wait()
	close(results)

	var errs []error
	for r := range results {
		if r.err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", r.inputPath, r.err))
			if !quiet {
				printError(env.Stderr, fmt.Errorf("%s: %v", r.inputPath, r.err))
			}
			continue
		}
		if !quiet {
			fmt.Fprintf(env.Stdout, "  %s -> %s (%s)\n", r.inputPath, r.outputPath, r.duration.Round(time.Millisecond))
		}
	}

	if ctxErr := ctx.Err(); ctxErr != nil {
		errs = append(errs, ctxErr)
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	if !quiet {
		printSuccess(env.Stdout, fmt.Sprintf("Converted %d document(s) to %s", len(files), outputDir))
	}
	return nil
}

// convertFile reads, converts, and writes one document.
func convertFile(ctx context.Context, conv *md2docx.Converter, job fileToConvert) error {
	content, err := fileutil.ReadTextFile(job.inputPath)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrReadMarkdown, err)
	}

	result, err := conv.Convert(ctx, md2docx.Input{Markdown: content})
	if err != nil {
		return err
	}

	return writeDocument(job.outputPath, result.DOCX)
}
