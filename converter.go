package md2docx

import (
	"context"
	"fmt"

	"github.com/mdwizard/go-md2docx/internal/docx"
	"github.com/mdwizard/go-md2docx/internal/pipeline"
)

// Compile-time interface implementation checks.
var (
	_ pipeline.MarkdownPreprocessor = (*pipeline.SourcePreprocessor)(nil)
	_ pipeline.Sink                 = (*docx.Document)(nil)
)

// Converter orchestrates the markdown-to-DOCX pipeline.
type Converter struct {
	cfg          converterConfig
	theme        docx.Theme
	preprocessor pipeline.MarkdownPreprocessor
}

// NewConverter creates a Converter with default configuration.
// Use options to customize behavior (e.g., WithTheme).
func NewConverter(opts ...Option) (*Converter, error) {
	c := &Converter{
		cfg:          converterConfig{theme: ThemeDefault},
		preprocessor: &pipeline.SourcePreprocessor{},
	}

	for _, opt := range opts {
		opt(c)
	}

	theme, err := docx.ParseTheme(c.cfg.theme)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidTheme, c.cfg.theme)
	}
	c.theme = theme

	return c, nil
}

// Convert runs the full pipeline and returns the serialized document.
// The context is used for cancellation; it is checked between stages, as
// the stages themselves are synchronous.
func (c *Converter) Convert(ctx context.Context, input Input) (*Result, error) {
	sink, err := docx.NewDocument(c.theme)
	if err != nil {
		return nil, err
	}

	if err := c.ConvertToSink(ctx, input.Markdown, sink); err != nil {
		return nil, err
	}

	out, err := sink.Bytes()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDocumentWrite, err)
	}

	return &Result{DOCX: out}, nil
}

// ConvertToSink runs the pipeline and executes the resulting document
// operations against sink. Sink errors abort the pass and are returned
// unchanged; operations already executed are not rolled back.
func (c *Converter) ConvertToSink(ctx context.Context, markdown string, sink Sink) error {
	if markdown == "" {
		return ErrEmptyMarkdown
	}
	if sink == nil {
		return ErrNilSink
	}

	content := c.preprocessor.PreprocessMarkdown(ctx, markdown)
	if ctx.Err() != nil {
		return ctx.Err()
	}

	blocks := pipeline.ParseLines(content)
	if ctx.Err() != nil {
		return ctx.Err()
	}

	ops := pipeline.MapBlocks(blocks)
	if ctx.Err() != nil {
		return ctx.Err()
	}

	return pipeline.ApplyOps(sink, ops)
}

// Theme returns the resolved theme name.
func (c *Converter) Theme() string {
	return string(c.theme)
}
