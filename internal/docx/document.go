package docx

import (
	"fmt"
	"strconv"

	"github.com/mdwizard/go-md2docx/internal/pipeline"
)

// Compile-time interface implementation check.
var _ pipeline.Sink = (*Document)(nil)

// Paragraph style identifiers registered in styles.xml.
const (
	styleTitle      = "MDTitle"
	styleSubtitle   = "MDSubtitle"
	styleHeading3   = "MDHeading3"
	styleBlockquote = "MDBlockquote"
	styleCode       = "MDCode"
	styleListItem   = "MDListItem"
)

// Indentation units in twentieths of a point (twips).
const (
	listIndentTwips  = 360 // 0.25"
	quoteIndentTwips = 720 // 0.5"
	ruleSpacingTwips = 240 // 12pt after a horizontal rule
)

// run is one styled stretch of paragraph text. A non-empty relID wraps the
// run in a hyperlink element referencing an external relationship.
type run struct {
	text      string
	bold      bool
	italic    bool
	charStyle string
	relID     string
}

// paragraph is one block-level element of the document body.
type paragraph struct {
	style        string
	indentLeft   int // twips, 0 = inherit from style
	hangingLeft  int // twips
	bottomBorder bool
	spaceAfter   int // twips
	runs         []run
}

// Document is an in-memory word-processing document. The zero value is not
// usable; construct with NewDocument.
type Document struct {
	theme      Theme
	paragraphs []paragraph
	relTargets []string // hyperlink URLs, in relationship order
}

// NewDocument creates an empty document styled with the given theme.
func NewDocument(theme Theme) (*Document, error) {
	if _, err := ParseTheme(string(theme)); err != nil {
		return nil, err
	}
	return &Document{theme: theme}, nil
}

// ParagraphCount reports how many paragraphs the body holds.
func (d *Document) ParagraphCount() int {
	return len(d.paragraphs)
}

// AddHeading appends a heading paragraph. Levels 1-3 use the dedicated
// title styles; levels 4-6 use the generic numbered heading styles.
func (d *Document) AddHeading(level int, runs []pipeline.Run) error {
	style, err := headingStyle(level)
	if err != nil {
		return err
	}
	p := paragraph{style: style}
	d.appendRuns(&p, runs)
	d.paragraphs = append(d.paragraphs, p)
	return nil
}

// AddParagraph appends a body paragraph.
func (d *Document) AddParagraph(runs []pipeline.Run) error {
	var p paragraph
	d.appendRuns(&p, runs)
	d.paragraphs = append(d.paragraphs, p)
	return nil
}

// AddListParagraph appends a list entry: the marker prefix run followed by
// the item content, indented one unit per level beyond the base.
func (d *Document) AddListParagraph(prefix pipeline.Run, runs []pipeline.Run, indent int) error {
	if indent < 0 {
		indent = 0
	}
	p := paragraph{
		style:       styleListItem,
		indentLeft:  listIndentTwips * (indent + 1),
		hangingLeft: listIndentTwips,
	}
	d.appendRuns(&p, []pipeline.Run{prefix})
	d.appendRuns(&p, runs)
	d.paragraphs = append(d.paragraphs, p)
	return nil
}

// AddBlockquote appends a quoted paragraph.
func (d *Document) AddBlockquote(runs []pipeline.Run) error {
	p := paragraph{style: styleBlockquote}
	d.appendRuns(&p, runs)
	d.paragraphs = append(d.paragraphs, p)
	return nil
}

// AddHorizontalRule appends an empty paragraph carrying a bottom border.
func (d *Document) AddHorizontalRule() error {
	d.paragraphs = append(d.paragraphs, paragraph{
		bottomBorder: true,
		spaceAfter:   ruleSpacingTwips,
	})
	return nil
}

// AddSpacer appends an empty paragraph for vertical spacing.
func (d *Document) AddSpacer() error {
	d.paragraphs = append(d.paragraphs, paragraph{})
	return nil
}

// appendRuns converts pipeline runs to document runs, registering hyperlink
// relationships as needed.
func (d *Document) appendRuns(p *paragraph, runs []pipeline.Run) {
	for _, r := range runs {
		dr := run{text: r.Text}
		switch r.Style {
		case pipeline.RunBold:
			dr.bold = true
		case pipeline.RunItalic:
			dr.italic = true
		case pipeline.RunCode:
			dr.charStyle = styleCode
		case pipeline.RunLink:
			dr.relID = d.addHyperlinkRel(r.URL)
		}
		p.runs = append(p.runs, dr)
	}
}

// addHyperlinkRel registers an external hyperlink target and returns its
// relationship ID. rId1 is reserved for the styles part.
func (d *Document) addHyperlinkRel(url string) string {
	d.relTargets = append(d.relTargets, url)
	return "rId" + strconv.Itoa(len(d.relTargets)+1)
}

// headingStyle maps a heading level to its paragraph style ID.
func headingStyle(level int) (string, error) {
	switch level {
	case 1:
		return styleTitle, nil
	case 2:
		return styleSubtitle, nil
	case 3:
		return styleHeading3, nil
	case 4, 5, 6:
		return "Heading" + strconv.Itoa(level), nil
	}
	return "", fmt.Errorf("%w: %d", ErrHeadingLevel, level)
}
