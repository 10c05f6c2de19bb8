// Package pipeline implements the Markdown-to-document conversion core.
//
// The core is a two-stage text transformation followed by a deterministic
// mapping onto document operations:
//   - Line classification into typed blocks (ClassifyLine)
//   - Inline formatting span extraction per block (FindSpans)
//   - Stateful block-to-operation mapping (MapBlocks)
//
// Document construction is handled separately by a Sink implementation
// (see internal/docx). This separation keeps the pipeline focused on the
// dialect's structure, while the sink owns visual styling and file format
// concerns.
package pipeline
