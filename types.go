package md2docx

import (
	"github.com/mdwizard/go-md2docx/internal/docx"
	"github.com/mdwizard/go-md2docx/internal/pipeline"
)

// Theme names accepted by WithTheme.
const (
	ThemeDefault      = string(docx.ThemeDefault)
	ThemeProfessional = string(docx.ThemeProfessional)
)

// ThemeNames returns the valid theme names in presentation order.
func ThemeNames() []string {
	themes := docx.Themes()
	names := make([]string, len(themes))
	for i, t := range themes {
		names[i] = string(t)
	}
	return names
}

// Run is one contiguous styled stretch of text passed to a Sink.
type Run = pipeline.Run

// RunStyle identifies how a run is styled.
type RunStyle = pipeline.RunStyle

// Run style constants.
const (
	RunPlain  = pipeline.RunPlain
	RunBold   = pipeline.RunBold
	RunItalic = pipeline.RunItalic
	RunCode   = pipeline.RunCode
	RunLink   = pipeline.RunLink
)

// Sink receives document operations from the conversion pipeline. The
// built-in DOCX sink is used by Convert; ConvertToSink accepts any
// implementation.
type Sink = pipeline.Sink

// Input contains conversion parameters.
type Input struct {
	Markdown string // Markdown content (required)
}

// Result holds the output of a conversion.
type Result struct {
	DOCX []byte // serialized .docx package
}

// Option configures a Converter.
type Option func(*Converter)

// converterConfig holds internal configuration for Converter.
type converterConfig struct {
	theme string
}

// WithTheme selects the document theme by name ("default", "professional").
// The name is validated by NewConverter.
func WithTheme(name string) Option {
	return func(c *Converter) {
		c.cfg.theme = name
	}
}
