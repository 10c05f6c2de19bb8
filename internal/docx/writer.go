package docx

import (
	"archive/zip"
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

const xmlHeader = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n"

const wordNS = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"

const contentTypesXML = xmlHeader +
	`<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">` +
	`<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>` +
	`<Default Extension="xml" ContentType="application/xml"/>` +
	`<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>` +
	`<Override PartName="/word/styles.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.styles+xml"/>` +
	`</Types>`

const rootRelsXML = xmlHeader +
	`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">` +
	`<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>` +
	`</Relationships>`

// xmlEscaper escapes text for both element content and attribute values.
var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
)

func esc(s string) string {
	return xmlEscaper.Replace(s)
}

// Bytes serializes the document as a .docx (OPC zip) package.
func (d *Document) Bytes() ([]byte, error) {
	parts := []struct {
		name    string
		content string
	}{
		{"[Content_Types].xml", contentTypesXML},
		{"_rels/.rels", rootRelsXML},
		{"word/document.xml", d.documentXML()},
		{"word/_rels/document.xml.rels", d.documentRelsXML()},
		{"word/styles.xml", stylesXML(d.theme)},
	}

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, part := range parts {
		w, err := zw.Create(part.name)
		if err != nil {
			return nil, fmt.Errorf("%w: creating %s: %v", ErrDocumentEncode, part.name, err)
		}
		if _, err := w.Write([]byte(part.content)); err != nil {
			return nil, fmt.Errorf("%w: writing %s: %v", ErrDocumentEncode, part.name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDocumentEncode, err)
	}
	return buf.Bytes(), nil
}

// documentXML renders the main document part.
func (d *Document) documentXML() string {
	var b strings.Builder
	b.WriteString(xmlHeader)
	b.WriteString(`<w:document xmlns:w="` + wordNS + `" xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships">`)
	b.WriteString(`<w:body>`)

	for _, p := range d.paragraphs {
		writeParagraph(&b, p)
	}

	// US letter, 1" margins.
	b.WriteString(`<w:sectPr><w:pgSz w:w="12240" w:h="15840"/>` +
		`<w:pgMar w:top="1440" w:right="1440" w:bottom="1440" w:left="1440" w:header="720" w:footer="720" w:gutter="0"/></w:sectPr>`)

	b.WriteString(`</w:body></w:document>`)
	return b.String()
}

func writeParagraph(b *strings.Builder, p paragraph) {
	b.WriteString(`<w:p>`)

	if p.style != "" || p.bottomBorder || p.spaceAfter > 0 || p.indentLeft > 0 {
		b.WriteString(`<w:pPr>`)
		if p.style != "" {
			b.WriteString(`<w:pStyle w:val="` + p.style + `"/>`)
		}
		if p.bottomBorder {
			b.WriteString(`<w:pBdr><w:bottom w:val="single" w:sz="6" w:space="1" w:color="auto"/></w:pBdr>`)
		}
		if p.spaceAfter > 0 {
			b.WriteString(`<w:spacing w:after="` + strconv.Itoa(p.spaceAfter) + `"/>`)
		}
		if p.indentLeft > 0 {
			b.WriteString(`<w:ind w:left="` + strconv.Itoa(p.indentLeft) + `"`)
			if p.hangingLeft > 0 {
				b.WriteString(` w:hanging="` + strconv.Itoa(p.hangingLeft) + `"`)
			}
			b.WriteString(`/>`)
		}
		b.WriteString(`</w:pPr>`)
	}

	for _, r := range p.runs {
		writeRun(b, r)
	}

	b.WriteString(`</w:p>`)
}

func writeRun(b *strings.Builder, r run) {
	if r.relID != "" {
		b.WriteString(`<w:hyperlink r:id="` + r.relID + `">`)
	}

	b.WriteString(`<w:r>`)

	// Hyperlink runs carry the conventional blue underline directly.
	if r.bold || r.italic || r.charStyle != "" || r.relID != "" {
		b.WriteString(`<w:rPr>`)
		if r.charStyle != "" {
			b.WriteString(`<w:rStyle w:val="` + r.charStyle + `"/>`)
		}
		if r.bold {
			b.WriteString(`<w:b/>`)
		}
		if r.italic {
			b.WriteString(`<w:i/>`)
		}
		if r.relID != "" {
			b.WriteString(`<w:color w:val="0000FF"/><w:u w:val="single"/>`)
		}
		b.WriteString(`</w:rPr>`)
	}

	b.WriteString(`<w:t xml:space="preserve">` + esc(r.text) + `</w:t>`)
	b.WriteString(`</w:r>`)

	if r.relID != "" {
		b.WriteString(`</w:hyperlink>`)
	}
}

// documentRelsXML renders the document part's relationships: the styles
// part plus one external relationship per hyperlink.
func (d *Document) documentRelsXML() string {
	var b strings.Builder
	b.WriteString(xmlHeader)
	b.WriteString(`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">`)
	b.WriteString(`<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/styles" Target="styles.xml"/>`)
	for i, target := range d.relTargets {
		b.WriteString(`<Relationship Id="rId` + strconv.Itoa(i+2) + `" ` +
			`Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/hyperlink" ` +
			`Target="` + esc(target) + `" TargetMode="External"/>`)
	}
	b.WriteString(`</Relationships>`)
	return b.String()
}
