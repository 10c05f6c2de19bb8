// Package md2docx converts a restricted dialect of Markdown into styled
// Word documents.
//
// # Quick Start
//
// Create a converter and convert markdown:
//
//	conv, err := md2docx.NewConverter()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := conv.Convert(ctx, md2docx.Input{
//	    Markdown: "# Hello\n\nWorld",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("output.docx", result.DOCX, 0644)
//
// # Conversion Pipeline
//
// The conversion process follows these stages:
//
//  1. Preprocessing (line ending normalization, mojibake repair)
//  2. Line classification into blocks (headers, lists, quotes, rules)
//  3. Inline span extraction (bold, italic, code, links, images)
//  4. Mapping blocks onto document operations
//  5. Executing operations against the DOCX sink and serializing
//
// # Dialect
//
// The supported dialect is deliberately small: ATX headers (#..######),
// unordered (-, *, +) and ordered (1. / 1)) single-level lists, > quotes,
// horizontal rules, and the inline constructs **bold**, *italic*, `code`,
// [text](url), and ![alt](url). There are no nested lists, code fences,
// tables, or reference links. Image syntax degrades to a hyperlink; the
// dialect never embeds pictures.
//
// # Configuration
//
// Use functional options to customize the converter:
//
//	conv, err := md2docx.NewConverter(
//	    md2docx.WithTheme(md2docx.ThemeProfessional),
//	)
//
// # Custom Sinks
//
// ConvertToSink runs the pipeline against any Sink implementation, which
// receives the abstract document operations instead of DOCX bytes:
//
//	err := conv.ConvertToSink(ctx, markdown, mySink)
//
// # Parallel Processing
//
// For batch conversion, use ConverterPool to share converters across
// workers:
//
//	pool, err := md2docx.NewConverterPool(4)
//	conv := pool.Acquire()
//	defer pool.Release(conv)
package md2docx
