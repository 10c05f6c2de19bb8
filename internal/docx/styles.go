package docx

import (
	"strconv"
	"strings"
)

// styleDef describes one entry in styles.xml.
type styleDef struct {
	id        string
	name      string
	character bool // character style instead of paragraph style
	bold      bool
	italic    bool
	sizeHalf  int    // font size in half-points, 0 = inherit
	color     string // RRGGBB, empty = inherit
	font      string // run font override, empty = inherit
	indent    int    // left indent in twips (paragraph styles)
	hanging   int    // hanging indent in twips (paragraph styles)
}

// styleDefs builds the style catalog for a theme: 24pt titles, 18pt
// subtitles, 14pt third-level headings, descending from there.
func styleDefs(theme Theme) []styleDef {
	colors := paletteFor(theme)
	return []styleDef{
		{id: styleTitle, name: "MD Title", bold: true, sizeHalf: 48, color: colors.title},
		{id: styleSubtitle, name: "MD Subtitle", bold: true, sizeHalf: 36, color: colors.subtitle},
		{id: styleHeading3, name: "MD Heading 3", bold: true, sizeHalf: 28, color: colors.heading3},
		{id: "Heading4", name: "heading 4", bold: true, sizeHalf: 24},
		{id: "Heading5", name: "heading 5", bold: true, sizeHalf: 22},
		{id: "Heading6", name: "heading 6", bold: true, sizeHalf: 20},
		{id: styleBlockquote, name: "MD Blockquote", italic: true, color: colors.blockquote, indent: quoteIndentTwips},
		{id: styleListItem, name: "MD List Item", indent: listIndentTwips, hanging: listIndentTwips},
		{id: styleCode, name: "MD Code", character: true, font: "Courier New", color: colors.code},
	}
}

// stylesXML renders the styles part for a theme.
func stylesXML(theme Theme) string {
	var b strings.Builder
	b.WriteString(xmlHeader)
	b.WriteString(`<w:styles xmlns:w="` + wordNS + `">`)

	// Document defaults: Calibri 11pt.
	b.WriteString(`<w:docDefaults><w:rPrDefault><w:rPr>` +
		`<w:rFonts w:ascii="Calibri" w:hAnsi="Calibri"/><w:sz w:val="22"/>` +
		`</w:rPr></w:rPrDefault></w:docDefaults>`)

	b.WriteString(`<w:style w:type="paragraph" w:default="1" w:styleId="Normal">` +
		`<w:name w:val="Normal"/></w:style>`)

	for _, s := range styleDefs(theme) {
		writeStyle(&b, s)
	}

	b.WriteString(`</w:styles>`)
	return b.String()
}

func writeStyle(b *strings.Builder, s styleDef) {
	kind := "paragraph"
	if s.character {
		kind = "character"
	}
	b.WriteString(`<w:style w:type="` + kind + `" w:styleId="` + s.id + `">`)
	b.WriteString(`<w:name w:val="` + esc(s.name) + `"/>`)
	if !s.character {
		b.WriteString(`<w:basedOn w:val="Normal"/>`)
		if s.indent > 0 {
			b.WriteString(`<w:pPr><w:ind w:left="` + strconv.Itoa(s.indent) + `"`)
			if s.hanging > 0 {
				b.WriteString(` w:hanging="` + strconv.Itoa(s.hanging) + `"`)
			}
			b.WriteString(`/></w:pPr>`)
		}
	}

	if s.bold || s.italic || s.sizeHalf > 0 || s.color != "" || s.font != "" {
		b.WriteString(`<w:rPr>`)
		if s.font != "" {
			b.WriteString(`<w:rFonts w:ascii="` + s.font + `" w:hAnsi="` + s.font + `"/>`)
		}
		if s.bold {
			b.WriteString(`<w:b/>`)
		}
		if s.italic {
			b.WriteString(`<w:i/>`)
		}
		if s.color != "" {
			b.WriteString(`<w:color w:val="` + s.color + `"/>`)
		}
		if s.sizeHalf > 0 {
			b.WriteString(`<w:sz w:val="` + strconv.Itoa(s.sizeHalf) + `"/>`)
		}
		b.WriteString(`</w:rPr>`)
	}

	b.WriteString(`</w:style>`)
}
