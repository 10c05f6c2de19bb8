package pipeline

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// BlockKind identifies the structural class of a classified line.
type BlockKind int

const (
	BlockEmpty BlockKind = iota
	BlockHeader
	BlockListItem
	BlockNumberedListItem
	BlockBlockquote
	BlockHorizontalRule
	BlockParagraph
)

// String returns the kind name for error messages and test output.
func (k BlockKind) String() string {
	switch k {
	case BlockEmpty:
		return "empty"
	case BlockHeader:
		return "header"
	case BlockListItem:
		return "list_item"
	case BlockNumberedListItem:
		return "numbered_list"
	case BlockBlockquote:
		return "blockquote"
	case BlockHorizontalRule:
		return "horizontal_rule"
	case BlockParagraph:
		return "paragraph"
	}
	return "unknown"
}

// Block is one classified source line.
// Level is set for headers (1-6), Number for numbered list items
// (the literal ordinal from the source, never recomputed).
// Spans is populated by ParseLines for text-bearing blocks.
type Block struct {
	Kind   BlockKind
	Level  int
	Number int
	Text   string
	Spans  []Span
}

// Precompiled line patterns. ClassifyLine tries them in declaration order
// and returns on the first match; the order is part of the grammar.
var (
	headerPattern         = regexp.MustCompile(`^(#{1,6})\s+(.+)$`)
	listItemPattern       = regexp.MustCompile(`^\s*[-*+]\s+(.+)$`)
	numberedListPattern   = regexp.MustCompile(`^\s*(\d+)[.)]\s+(.+)$`)
	blockquotePattern     = regexp.MustCompile(`^\s*>\s+(.+)$`)
	horizontalRulePattern = regexp.MustCompile(`^(\s*[-*_]\s*){3,}$`)
)

// ClassifyLine converts one raw line into a Block. Classification is total:
// any line that matches no structural pattern falls through to a paragraph,
// or to an empty block when the line is blank. Trailing whitespace is
// stripped before matching.
func ClassifyLine(line string) Block {
	line = strings.TrimRightFunc(line, unicode.IsSpace)

	if m := headerPattern.FindStringSubmatch(line); m != nil {
		return Block{Kind: BlockHeader, Level: len(m[1]), Text: m[2]}
	}

	if m := listItemPattern.FindStringSubmatch(line); m != nil {
		return Block{Kind: BlockListItem, Text: m[1]}
	}

	if m := numberedListPattern.FindStringSubmatch(line); m != nil {
		// The ordinal is display-only. A digit run too long for int is not
		// a list marker under this grammar; let it fall through.
		if n, err := strconv.Atoi(m[1]); err == nil {
			return Block{Kind: BlockNumberedListItem, Number: n, Text: m[2]}
		}
	}

	if m := blockquotePattern.FindStringSubmatch(line); m != nil {
		return Block{Kind: BlockBlockquote, Text: m[1]}
	}

	if horizontalRulePattern.MatchString(line) {
		return Block{Kind: BlockHorizontalRule}
	}

	if strings.TrimSpace(line) != "" {
		return Block{Kind: BlockParagraph, Text: line}
	}

	return Block{Kind: BlockEmpty}
}

// ParseLines splits decoded text into lines, classifies each one, and
// annotates text-bearing blocks with their inline spans.
func ParseLines(text string) []Block {
	lines := strings.Split(text, "\n")
	blocks := make([]Block, len(lines))
	for i, line := range lines {
		b := ClassifyLine(line)
		switch b.Kind {
		case BlockEmpty, BlockHorizontalRule:
			// No text to scan.
		default:
			b.Spans = FindSpans(b.Text)
		}
		blocks[i] = b
	}
	return blocks
}
