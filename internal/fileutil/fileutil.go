// Package fileutil provides file reading with character-encoding fallback
// and small path helpers.
package fileutil

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
)

// ErrUndecodable is returned when no supported encoding can decode a file.
var ErrUndecodable = errors.New("could not decode file with any supported encoding")

// fallbackEncodings are tried, in order, when a file is not valid UTF-8.
// Windows-1252 is a superset of ISO-8859-1 over the printable range and
// covers the usual "saved from Windows" case. Its decoder substitutes
// U+FFFD for the five undefined bytes instead of failing, so every byte
// sequence decodes on the first rung; the second rung and ErrUndecodable
// stay as a guard for future stricter encodings.
var fallbackEncodings = []encoding.Encoding{
	charmap.Windows1252,
	charmap.ISO8859_1,
}

// ReadTextFile reads path and decodes its contents to UTF-8. Valid UTF-8 is
// returned as-is; otherwise the fallback encodings are tried in order.
func ReadTextFile(path string) (string, error) {
	raw, err := os.ReadFile(path) // #nosec G304 -- user-provided path
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}

	if utf8.Valid(raw) {
		return string(raw), nil
	}

	for _, enc := range fallbackEncodings {
		decoded, err := enc.NewDecoder().Bytes(raw)
		if err == nil {
			return string(decoded), nil
		}
	}

	return "", fmt.Errorf("%w: %s", ErrUndecodable, path)
}

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// DirExists returns true if the path exists and is a directory.
func DirExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// IsMarkdownFile reports whether the path carries a markdown extension.
func IsMarkdownFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".markdown":
		return true
	}
	return false
}

// SwapExtension replaces the path's extension (if any) with ext, which must
// include the leading dot.
func SwapExtension(path, ext string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + ext
}
