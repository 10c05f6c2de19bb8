// Package docx authors Office Open XML word-processing documents.
//
// It implements the pipeline.Sink contract: document operations append
// styled paragraphs to an in-memory model, and Bytes serializes the model
// as a minimal .docx package (archive/zip over WordprocessingML parts).
// The package owns every visual decision - fonts, colors, indentation,
// hyperlink styling - so the conversion core stays format-agnostic.
package docx
