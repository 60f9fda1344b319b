package output

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color palette.
var (
	ColorCyan       = lipgloss.Color("14")
	ColorGreen      = lipgloss.Color("82")
	ColorBoldRed    = lipgloss.Color("204")
	ColorGreenCheck = lipgloss.Color("10")
)

// Semantic styles.
var (
	// StyleNoun styles identifiable nouns (component names, paths).
	StyleNoun = lipgloss.NewStyle().Foreground(ColorCyan)

	// StyleDim styles structural chrome (file list indentation, separators).
	StyleDim = lipgloss.NewStyle().Faint(true)

	// StyleSummary styles completion and summary lines.
	StyleSummary = lipgloss.NewStyle().Bold(true)
)

// Component status constants.
const (
	StatusCreated = "created"
	StatusFailed  = "failed"
)

// StatusStyle returns the style for a status word.
func StatusStyle(status string) lipgloss.Style {
	switch status {
	case StatusCreated:
		return lipgloss.NewStyle().Foreground(ColorGreen)
	case StatusFailed:
		return lipgloss.NewStyle().Bold(true).Foreground(ColorBoldRed)
	default:
		return lipgloss.NewStyle()
	}
}

// minNameColumnWidth keeps status words aligned across lines.
const minNameColumnWidth = 32

// FormatComponentLine renders "<name>  <status>" with a right-aligned,
// color-coded status.
func FormatComponentLine(name, status string) string {
	padding := minNameColumnWidth - len(name)
	if padding < 2 {
		padding = 2
	}
	return StyleNoun.Render(name) + strings.Repeat(" ", padding) + StatusStyle(status).Render(status)
}

// FormatFileList renders one indented line per file.
func FormatFileList(files []string) string {
	var b strings.Builder
	for _, f := range files {
		b.WriteString(StyleDim.Render("  └─ "))
		b.WriteString(f)
		b.WriteString("\n")
	}
	return b.String()
}

// FormatCheckmark renders a green checkmark with a message.
func FormatCheckmark(msg string) string {
	check := lipgloss.NewStyle().Foreground(ColorGreenCheck).Render("✔")
	return check + " " + msg
}

// FormatSummary renders the closing line of a batch.
func FormatSummary(created, failed int) string {
	msg := fmt.Sprintf("%d created, %d failed", created, failed)
	if failed == 0 {
		return FormatCheckmark(StyleSummary.Render(msg))
	}
	return StyleSummary.Render(msg)
}
