package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	md2docx "github.com/mdwizard/go-md2docx"
)

// previewBytes limits how much of the source is shown before conversion.
const previewBytes = 500

// Console styles.
var (
	bannerStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("33")).
			Padding(1, 10)

	bannerTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("33"))

	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	promptStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("35"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("178"))
	errorStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("160"))
	successStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("35")).
			Padding(0, 2).
			Foreground(lipgloss.Color("35"))

	previewStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
)

// themeDescriptions pairs each theme name with its one-line summary, in
// presentation order.
var themeDescriptions = map[string]string{
	md2docx.ThemeDefault:      "Standard formatting with minimal styling",
	md2docx.ThemeProfessional: "Business-oriented with blue headings",
}

// printBanner shows the application banner.
func printBanner(w io.Writer) {
	body := bannerTitleStyle.Render("MD Wizard") + "\n" +
		dimStyle.Render("Markdown to DOCX Converter")
	fmt.Fprintln(w, bannerStyle.Render(body))
}

// printThemeTable lists the available themes.
func printThemeTable(w io.Writer) {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(dimStyle).
		Headers("THEME", "DESCRIPTION")
	for _, name := range md2docx.ThemeNames() {
		t.Row(name, themeDescriptions[name])
	}
	fmt.Fprintln(w, t.Render())
}

// printPreview shows the head of the markdown source.
func printPreview(w io.Writer, content string) {
	preview := content
	truncated := false
	if len(preview) > previewBytes {
		preview = preview[:previewBytes]
		truncated = true
	}
	preview = strings.TrimRight(preview, "\n")
	if truncated {
		preview += "\n" + dimStyle.Render("...")
	}
	fmt.Fprintln(w, bannerTitleStyle.Render("Markdown Preview:"))
	fmt.Fprintln(w, previewStyle.Render(preview))
}

// printSuccess shows a completion message.
func printSuccess(w io.Writer, msg string) {
	fmt.Fprintln(w, successStyle.Render(msg))
}

// printWarning shows a cautionary message.
func printWarning(w io.Writer, msg string) {
	fmt.Fprintln(w, warnStyle.Render(msg))
}

// printError shows a failure message.
func printError(w io.Writer, err error) {
	fmt.Fprintln(w, errorStyle.Render("error: ")+err.Error())
}
