package main

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func newTestPrompter(input string) *prompter {
	return newPrompter(strings.NewReader(input), io.Discard)
}

func TestAsk(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		def   string
		want  string
	}{
		{name: "answer given", input: "hello\n", def: "fallback", want: "hello"},
		{name: "empty uses default", input: "\n", def: "fallback", want: "fallback"},
		{name: "whitespace uses default", input: "   \n", def: "fallback", want: "fallback"},
		{name: "answer trimmed", input: "  spaced  \n", def: "", want: "spaced"},
		{name: "eof after answer", input: "last", def: "", want: "last"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := newTestPrompter(tt.input).ask("q", tt.def)
			if err != nil {
				t.Fatalf("ask() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("ask() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestAskEOF(t *testing.T) {
	t.Parallel()

	if _, err := newTestPrompter("").ask("q", ""); err == nil {
		t.Error("ask() error = nil, want EOF error")
	}
}

func TestConfirm(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		def   bool
		want  bool
	}{
		{name: "yes", input: "y\n", def: false, want: true},
		{name: "yes word", input: "yes\n", def: false, want: true},
		{name: "uppercase yes", input: "Y\n", def: false, want: true},
		{name: "no", input: "n\n", def: true, want: false},
		{name: "anything else is no", input: "maybe\n", def: true, want: false},
		{name: "empty uses default true", input: "\n", def: true, want: true},
		{name: "empty uses default false", input: "\n", def: false, want: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := newTestPrompter(tt.input).confirm("sure?", tt.def)
			if err != nil {
				t.Fatalf("confirm() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("confirm() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSelectTheme(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "professional", input: "professional\n", want: "professional"},
		{name: "case insensitive", input: "PROFESSIONAL\n", want: "professional"},
		{name: "empty picks default", input: "\n", want: "default"},
		{name: "retries until valid", input: "neon\ndefault\n", want: "default"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := newTestPrompter(tt.input).selectTheme()
			if err != nil {
				t.Fatalf("selectTheme() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("selectTheme() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSelectInputFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	mdPath := filepath.Join(dir, "notes.md")
	if err := os.WriteFile(mdPath, []byte("# x"), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	t.Run("existing markdown file", func(t *testing.T) {
		t.Parallel()

		got, err := newTestPrompter(mdPath + "\n").selectInputFile()
		if err != nil {
			t.Fatalf("selectInputFile() error = %v", err)
		}
		if got != mdPath {
			t.Errorf("selectInputFile() = %q, want %q", got, mdPath)
		}
	})

	t.Run("directory accepted", func(t *testing.T) {
		t.Parallel()

		got, err := newTestPrompter(dir + "\n").selectInputFile()
		if err != nil {
			t.Fatalf("selectInputFile() error = %v", err)
		}
		if got != dir {
			t.Errorf("selectInputFile() = %q, want %q", got, dir)
		}
	})

	t.Run("retries on missing file", func(t *testing.T) {
		t.Parallel()

		missing := filepath.Join(dir, "nope.md")
		got, err := newTestPrompter(missing + "\n" + mdPath + "\n").selectInputFile()
		if err != nil {
			t.Fatalf("selectInputFile() error = %v", err)
		}
		if got != mdPath {
			t.Errorf("selectInputFile() = %q, want %q", got, mdPath)
		}
	})

	t.Run("non-markdown needs confirmation", func(t *testing.T) {
		t.Parallel()

		txtPath := filepath.Join(dir, "notes.txt")
		if err := os.WriteFile(txtPath, []byte("x"), 0o644); err != nil {
			t.Fatalf("writing fixture: %v", err)
		}

		got, err := newTestPrompter(txtPath + "\ny\n").selectInputFile()
		if err != nil {
			t.Fatalf("selectInputFile() error = %v", err)
		}
		if got != txtPath {
			t.Errorf("selectInputFile() = %q, want %q", got, txtPath)
		}

		// Declining the confirmation loops back to the path prompt.
		got, err = newTestPrompter(txtPath + "\nn\n" + mdPath + "\n").selectInputFile()
		if err != nil {
			t.Fatalf("selectInputFile() error = %v", err)
		}
		if got != mdPath {
			t.Errorf("selectInputFile() = %q, want %q", got, mdPath)
		}
	})
}

func TestSelectOutputPath(t *testing.T) {
	t.Parallel()

	t.Run("empty answer takes the default", func(t *testing.T) {
		t.Parallel()

		got, err := newTestPrompter("\n").selectOutputPath("report.docx", false)
		if err != nil {
			t.Fatalf("selectOutputPath() error = %v", err)
		}
		if got != "report.docx" {
			t.Errorf("selectOutputPath() = %q, want %q", got, "report.docx")
		}
	})

	t.Run("overwrite declined retries", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		existing := filepath.Join(dir, "taken.docx")
		if err := os.WriteFile(existing, []byte("x"), 0o644); err != nil {
			t.Fatalf("writing fixture: %v", err)
		}
		fresh := filepath.Join(dir, "fresh.docx")

		got, err := newTestPrompter(existing+"\nn\n"+fresh+"\n").selectOutputPath("in.docx", false)
		if err != nil {
			t.Fatalf("selectOutputPath() error = %v", err)
		}
		if got != fresh {
			t.Errorf("selectOutputPath() = %q, want %q", got, fresh)
		}
	})

	t.Run("overwrite accepted", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		existing := filepath.Join(dir, "taken.docx")
		if err := os.WriteFile(existing, []byte("x"), 0o644); err != nil {
			t.Fatalf("writing fixture: %v", err)
		}

		got, err := newTestPrompter(existing+"\ny\n").selectOutputPath("in.docx", false)
		if err != nil {
			t.Fatalf("selectOutputPath() error = %v", err)
		}
		if got != existing {
			t.Errorf("selectOutputPath() = %q, want %q", got, existing)
		}
	})

	t.Run("allowOverwrite skips the confirmation", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		existing := filepath.Join(dir, "taken.docx")
		if err := os.WriteFile(existing, []byte("x"), 0o644); err != nil {
			t.Fatalf("writing fixture: %v", err)
		}

		// Only the path answer is scripted; a confirmation prompt would
		// hit EOF and fail.
		got, err := newTestPrompter(existing+"\n").selectOutputPath("in.docx", true)
		if err != nil {
			t.Fatalf("selectOutputPath() error = %v", err)
		}
		if got != existing {
			t.Errorf("selectOutputPath() = %q, want %q", got, existing)
		}
	})
}
