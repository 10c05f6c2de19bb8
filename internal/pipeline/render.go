package pipeline

import "strconv"

// RunStyle identifies how a run of text is styled in the output document.
type RunStyle int

const (
	RunPlain RunStyle = iota
	RunBold
	RunItalic
	RunCode
	RunLink
)

// Run is one contiguous styled stretch of text inside a document operation.
// URL is set for RunLink runs.
type Run struct {
	Text  string
	Style RunStyle
	URL   string
}

// OpKind identifies a document operation.
type OpKind int

const (
	OpHeading OpKind = iota
	OpParagraph
	OpListItem
	OpBlockquote
	OpRule
	OpSpacer
)

// Op is one abstract document-construction operation, independent of the
// concrete authoring backend. Level is set for OpHeading; Prefix, Indent,
// and the Ordered/Ordinal pair for OpListItem.
type Op struct {
	Kind    OpKind
	Level   int
	Ordered bool
	Ordinal int
	Indent  int
	Prefix  Run
	Runs    []Run
}

// Sink executes document operations against a concrete document model.
// The sink owns all visual styling and serialization; errors it returns
// are propagated unchanged by ApplyOps.
type Sink interface {
	AddHeading(level int, runs []Run) error
	AddParagraph(runs []Run) error
	AddListParagraph(prefix Run, runs []Run, indent int) error
	AddBlockquote(runs []Run) error
	AddHorizontalRule() error
	AddSpacer() error
}

// listState tracks list membership across the block sequence. The dialect
// has no nested lists, so level stays 0; it is carried for forward
// compatibility with an indented-list grammar.
type listState struct {
	inList bool
	level  int
}

// BulletGlyph prefixes unordered list items in the output.
const BulletGlyph = "• "

// MapBlocks converts the classified, span-annotated block sequence into an
// ordered list of document operations. List membership is tracked as a fold
// over the sequence: entering a list item sets the state, and the state
// resets as soon as the following block is not a list item. The last block
// never resets, which is harmless since no operation depends on the final
// state.
func MapBlocks(blocks []Block) []Op {
	ops := make([]Op, 0, len(blocks))
	var st listState

	for i, b := range blocks {
		switch b.Kind {
		case BlockEmpty:
			// Runs of empty lines collapse to a single spacer; a leading
			// empty line produces nothing.
			if i > 0 && blocks[i-1].Kind != BlockEmpty {
				ops = append(ops, Op{Kind: OpSpacer})
			}

		case BlockHeader:
			ops = append(ops, Op{
				Kind:  OpHeading,
				Level: b.Level,
				Runs:  BuildRuns(b.Text, b.Spans),
			})

		case BlockParagraph:
			ops = append(ops, Op{
				Kind: OpParagraph,
				Runs: BuildRuns(b.Text, b.Spans),
			})

		case BlockListItem:
			st.inList = true
			ops = append(ops, Op{
				Kind:   OpListItem,
				Indent: st.level,
				Prefix: Run{Text: BulletGlyph, Style: RunBold},
				Runs:   BuildRuns(b.Text, b.Spans),
			})

		case BlockNumberedListItem:
			st.inList = true
			ops = append(ops, Op{
				Kind:    OpListItem,
				Ordered: true,
				Ordinal: b.Number,
				Indent:  st.level,
				Prefix:  Run{Text: strconv.Itoa(b.Number) + ". ", Style: RunBold},
				Runs:    BuildRuns(b.Text, b.Spans),
			})

		case BlockBlockquote:
			ops = append(ops, Op{
				Kind: OpBlockquote,
				Runs: BuildRuns(b.Text, b.Spans),
			})

		case BlockHorizontalRule:
			ops = append(ops, Op{Kind: OpRule})
		}

		st = nextListState(st, blocks, i)
	}

	return ops
}

// nextListState returns the list tracking state after block i, resetting
// when the block that follows is neither kind of list item.
func nextListState(st listState, blocks []Block, i int) listState {
	if !st.inList || i >= len(blocks)-1 {
		return st
	}
	switch blocks[i+1].Kind {
	case BlockListItem, BlockNumberedListItem:
		return st
	}
	return listState{}
}

// BuildRuns walks the sorted span list against the block text, emitting a
// plain run for every gap between spans and a styled run for every span.
// Image spans emit no run but still advance the cursor past their range;
// when image and link syntax overlap (always the case for ![alt](url),
// whose tail also matches the link pattern), the later-starting link span
// still emits its hyperlink run, so image syntax degrades to a plain
// hyperlink. That mirrors the historical behavior of running the two
// patterns independently and is kept for output compatibility.
func BuildRuns(text string, spans []Span) []Run {
	if len(spans) == 0 {
		return []Run{{Text: text}}
	}

	var runs []Run
	last := 0

	for _, sp := range spans {
		if sp.Start > last {
			runs = append(runs, Run{Text: text[last:sp.Start]})
		}

		switch sp.Kind {
		case SpanBold:
			runs = append(runs, Run{Text: sp.Content, Style: RunBold})
		case SpanItalic:
			runs = append(runs, Run{Text: sp.Content, Style: RunItalic})
		case SpanCode:
			runs = append(runs, Run{Text: sp.Content, Style: RunCode})
		case SpanLink:
			runs = append(runs, Run{Text: sp.Content, Style: RunLink, URL: sp.URL})
		case SpanImage:
			// Suppressed: the dialect never embeds pictures.
		}

		last = sp.End
	}

	if last < len(text) {
		runs = append(runs, Run{Text: text[last:]})
	}

	return runs
}

// ApplyOps executes the operation sequence against sink in order. The first
// sink error aborts the pass and is returned unchanged; operations already
// executed are not rolled back.
func ApplyOps(sink Sink, ops []Op) error {
	for _, op := range ops {
		var err error
		switch op.Kind {
		case OpHeading:
			err = sink.AddHeading(op.Level, op.Runs)
		case OpParagraph:
			err = sink.AddParagraph(op.Runs)
		case OpListItem:
			err = sink.AddListParagraph(op.Prefix, op.Runs, op.Indent)
		case OpBlockquote:
			err = sink.AddBlockquote(op.Runs)
		case OpRule:
			err = sink.AddHorizontalRule()
		case OpSpacer:
			err = sink.AddSpacer()
		}
		if err != nil {
			return err
		}
	}
	return nil
}
