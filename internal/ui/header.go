package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// HeaderInfo contains information to display in the header.
type HeaderInfo struct {
	Version string // Version string (e.g., "v0.4.0")
	Tagline string // Optional tagline
}

// HeaderWidth is the default width of the header divider
const HeaderWidth = 40

// RenderHeader renders the program name, version and an optional tagline
// above a divider.
func RenderHeader(info HeaderInfo) string {
	titleStyle := lipgloss.NewStyle().
		Foreground(ColorNormal).
		Bold(true)

	versionStyle := lipgloss.NewStyle().
		Foreground(ColorInfo)

	var output strings.Builder

	output.WriteString(titleStyle.Render("sysdash"))
	output.WriteString(" ")
	output.WriteString(versionStyle.Render(info.Version))
	output.WriteString("\n")

	if info.Tagline != "" {
		output.WriteString(MutedStyle().Render(info.Tagline))
		output.WriteString("\n")
	}

	output.WriteString(MutedStyle().Render(strings.Repeat("─", HeaderWidth)))
	output.WriteString("\n")

	return output.String()
}
