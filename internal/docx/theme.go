package docx

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for document construction.
var (
	ErrUnknownTheme   = errors.New("unknown theme")
	ErrHeadingLevel   = errors.New("heading level must be between 1 and 6")
	ErrDocumentEncode = errors.New("failed to encode document package")
)

// Theme selects a document color scheme.
type Theme string

const (
	// ThemeDefault keeps Word's standard black-on-white styling.
	ThemeDefault Theme = "default"
	// ThemeProfessional uses blue headings, gray quotes, and rust-colored
	// code for business documents.
	ThemeProfessional Theme = "professional"
)

// Themes lists the valid theme names in presentation order.
func Themes() []Theme {
	return []Theme{ThemeDefault, ThemeProfessional}
}

// ParseTheme resolves a theme name case-insensitively.
func ParseTheme(name string) (Theme, error) {
	switch strings.ToLower(name) {
	case string(ThemeDefault):
		return ThemeDefault, nil
	case string(ThemeProfessional):
		return ThemeProfessional, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownTheme, name)
}

// palette holds the theme-dependent run colors as RRGGBB hex values.
// Empty means inherit the document default.
type palette struct {
	title      string // H1
	subtitle   string // H2
	heading3   string // H3
	blockquote string
	code       string
}

// paletteFor returns the color palette for a theme.
func paletteFor(theme Theme) palette {
	if theme == ThemeProfessional {
		return palette{
			title:      "003366", // dark blue
			subtitle:   "006699", // medium blue
			heading3:   "0080C0", // light blue
			blockquote: "666666", // gray
			code:       "993300", // rust
		}
	}
	return palette{}
}
