package pipeline

import (
	"context"
	"regexp"
	"strings"
)

// Line ending normalization.
var crlfOrCR = regexp.MustCompile(`\r\n?`)

// mojibakeRepairs maps UTF-8 text mis-decoded as a single-byte encoding back
// to the intended characters. The table covers the accented characters seen
// in the wild in Spanish-language documents.
var mojibakeRepairs = strings.NewReplacer(
	"Ã³", "ó",
	"Ã¡", "á",
	"Ã©", "é",
	"Ã­", "í",
	"Ãº", "ú",
	"Ã±", "ñ",
	"Ãƒ", "í",
	"Ã‰", "É",
	"Ã�", "Á",
)

// MarkdownPreprocessor defines the contract for markdown preprocessing.
type MarkdownPreprocessor interface {
	PreprocessMarkdown(ctx context.Context, content string) string
}

// SourcePreprocessor normalizes decoded text before classification.
type SourcePreprocessor struct{}

// PreprocessMarkdown applies all transformations ahead of line
// classification.
func (p *SourcePreprocessor) PreprocessMarkdown(ctx context.Context, content string) string {
	// Check for cancellation before processing
	if ctx.Err() != nil {
		return content
	}

	content = NormalizeLineEndings(content)
	content = RepairMojibake(content)
	return content
}

// NormalizeLineEndings converts \r\n and \r to \n.
func NormalizeLineEndings(content string) string {
	return crlfOrCR.ReplaceAllString(content, "\n")
}

// RepairMojibake fixes common double-encoding artifacts via literal
// substitution.
func RepairMojibake(content string) string {
	return mojibakeRepairs.Replace(content)
}
