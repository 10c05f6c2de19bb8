package pipeline

import (
	"regexp"
	"sort"
)

// SpanKind identifies an inline formatting construct.
type SpanKind int

const (
	SpanBold SpanKind = iota
	SpanItalic
	SpanCode
	SpanLink
	SpanImage
)

// String returns the kind name for error messages and test output.
func (k SpanKind) String() string {
	switch k {
	case SpanBold:
		return "bold"
	case SpanItalic:
		return "italic"
	case SpanCode:
		return "code"
	case SpanLink:
		return "link"
	case SpanImage:
		return "image"
	}
	return "unknown"
}

// Span is one inline-formatted substring of a block's text.
// Start and End are half-open byte offsets into the block text, covering
// the delimiters; Content is the enclosed text without them. URL is set
// for link and image spans.
type Span struct {
	Kind    SpanKind
	Start   int
	End     int
	Content string
	URL     string
}

// Precompiled inline patterns. All quantifiers are non-greedy so the
// shortest enclosed run wins; a line with several ** pairs produces
// several bold spans, not one outer span.
var (
	boldPattern   = regexp.MustCompile(`\*\*(.*?)\*\*`)
	italicPattern = regexp.MustCompile(`\*(.*?)\*`)
	codePattern   = regexp.MustCompile("`(.*?)`")
	linkPattern   = regexp.MustCompile(`\[(.*?)\]\((.*?)\)`)
	imagePattern  = regexp.MustCompile(`!\[(.*?)\]\((.*?)\)`)
)

// FindSpans scans text with the five inline patterns and returns the
// surviving spans sorted ascending by start offset. Ties keep discovery
// order: bold, italic, code, link, image.
//
// The single-asterisk italic pattern also fires on the markers of an
// already-formed **bold** run, so italic spans whose range lies completely
// inside an accepted bold span are discarded. No other pair of overlapping
// spans is resolved here; notably the image pattern and the link pattern
// both match ![...](...) text, and the rendering pass decides which wins.
func FindSpans(text string) []Span {
	var spans []Span

	for _, m := range boldPattern.FindAllStringSubmatchIndex(text, -1) {
		spans = append(spans, Span{
			Kind:    SpanBold,
			Start:   m[0],
			End:     m[1],
			Content: text[m[2]:m[3]],
		})
	}

	bolds := spans[:len(spans):len(spans)]

	for _, m := range italicPattern.FindAllStringSubmatchIndex(text, -1) {
		if insideBold(bolds, m[0], m[1]) {
			continue
		}
		spans = append(spans, Span{
			Kind:    SpanItalic,
			Start:   m[0],
			End:     m[1],
			Content: text[m[2]:m[3]],
		})
	}

	for _, m := range codePattern.FindAllStringSubmatchIndex(text, -1) {
		spans = append(spans, Span{
			Kind:    SpanCode,
			Start:   m[0],
			End:     m[1],
			Content: text[m[2]:m[3]],
		})
	}

	for _, m := range linkPattern.FindAllStringSubmatchIndex(text, -1) {
		spans = append(spans, Span{
			Kind:    SpanLink,
			Start:   m[0],
			End:     m[1],
			Content: text[m[2]:m[3]],
			URL:     text[m[4]:m[5]],
		})
	}

	for _, m := range imagePattern.FindAllStringSubmatchIndex(text, -1) {
		spans = append(spans, Span{
			Kind:    SpanImage,
			Start:   m[0],
			End:     m[1],
			Content: text[m[2]:m[3]],
			URL:     text[m[4]:m[5]],
		})
	}

	sort.SliceStable(spans, func(i, j int) bool {
		return spans[i].Start < spans[j].Start
	})

	return spans
}

// insideBold reports whether [start,end) is fully contained in any of the
// given bold spans.
func insideBold(bolds []Span, start, end int) bool {
	for _, b := range bolds {
		if start >= b.Start && end <= b.End {
			return true
		}
	}
	return false
}
