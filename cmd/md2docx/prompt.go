package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	md2docx "github.com/mdwizard/go-md2docx"
	"github.com/mdwizard/go-md2docx/internal/fileutil"
)

// prompter reads interactive answers line by line.
type prompter struct {
	in  *bufio.Reader
	out io.Writer
}

func newPrompter(in io.Reader, out io.Writer) *prompter {
	return &prompter{in: bufio.NewReader(in), out: out}
}

// ask prints a question and reads one line. An empty answer returns def.
func (p *prompter) ask(question, def string) (string, error) {
	q := promptStyle.Render(question)
	if def != "" {
		q += dimStyle.Render(" (" + def + ")")
	}
	fmt.Fprint(p.out, q+": ")

	line, err := p.in.ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("reading answer: %w", err)
	}
	answer := strings.TrimSpace(line)
	if answer == "" {
		return def, nil
	}
	return answer, nil
}

// confirm asks a yes/no question. An empty answer returns def.
func (p *prompter) confirm(question string, def bool) (bool, error) {
	hint := "y/N"
	if def {
		hint = "Y/n"
	}
	answer, err := p.ask(question+" ["+hint+"]", "")
	if err != nil {
		return false, err
	}
	switch strings.ToLower(answer) {
	case "":
		return def, nil
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

// selectInputFile prompts for a markdown path until a usable one is given.
// A non-.md extension asks for confirmation instead of rejecting the file.
func (p *prompter) selectInputFile() (string, error) {
	for {
		path, err := p.ask("Enter the path to your Markdown file", "")
		if err != nil {
			return "", err
		}
		if path == "" {
			printWarning(p.out, "File path cannot be empty")
			continue
		}
		if !fileutil.FileExists(path) {
			if fileutil.DirExists(path) {
				return path, nil
			}
			printWarning(p.out, "File "+path+" does not exist")
			continue
		}
		if !fileutil.IsMarkdownFile(path) {
			ok, err := p.confirm(path+" doesn't have a .md extension. Convert it anyway?", false)
			if err != nil {
				return "", err
			}
			if !ok {
				continue
			}
		}
		return path, nil
	}
}

// selectOutputPath prompts for the output path, defaulting to def, and
// confirms overwrites. allowOverwrite skips the overwrite confirmation.
func (p *prompter) selectOutputPath(def string, allowOverwrite bool) (string, error) {
	for {
		path, err := p.ask("Enter output DOCX file path", def)
		if err != nil {
			return "", err
		}
		if !allowOverwrite && fileutil.FileExists(path) {
			ok, err := p.confirm("File "+path+" already exists. Overwrite?", false)
			if err != nil {
				return "", err
			}
			if !ok {
				continue
			}
		}
		return path, nil
	}
}

// selectTheme shows the theme table and prompts for a choice.
func (p *prompter) selectTheme() (string, error) {
	printThemeTable(p.out)
	for {
		name, err := p.ask("Select a theme", md2docx.ThemeDefault)
		if err != nil {
			return "", err
		}
		for _, valid := range md2docx.ThemeNames() {
			if strings.EqualFold(name, valid) {
				return valid, nil
			}
		}
		printWarning(p.out, "Unknown theme: "+name)
	}
}
