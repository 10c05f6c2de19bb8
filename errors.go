package md2docx

import "errors"

// Sentinel errors for library operations.
var (
	ErrEmptyMarkdown = errors.New("markdown content cannot be empty")
	ErrInvalidTheme  = errors.New("invalid theme")
	ErrNilSink       = errors.New("sink cannot be nil")
	ErrDocumentWrite = errors.New("document serialization failed")
)
