package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Severity colors are the light ANSI variants so they stay readable on both
// dark and light terminal themes.
const (
	ColorNormal   lipgloss.Color = "10" // Light green
	ColorElevated lipgloss.Color = "11" // Light yellow
	ColorCritical lipgloss.Color = "9"  // Light red
)

// Semantic colors for CLI output
const (
	ColorSuccess lipgloss.Color = "2" // Green
	ColorError   lipgloss.Color = "1" // Red
	ColorWarning lipgloss.Color = "3" // Yellow
	ColorInfo    lipgloss.Color = "6" // Cyan
)

// Text colors for content hierarchy
const (
	ColorPrimary lipgloss.Color = "7" // White/default
	ColorMuted   lipgloss.Color = "8" // Gray (bright black)
)

// ErrorStyle returns the style for error messages.
func ErrorStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(ColorError)
}

// WarningStyle returns the style for warnings.
func WarningStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(ColorWarning)
}

// MutedStyle returns the style for secondary text.
func MutedStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(ColorMuted)
}

// DisableColors switches lipgloss to plain output. Used when stdout is not a
// terminal, and by tests that compare rendered text.
func DisableColors() {
	lipgloss.SetColorProfile(termenv.Ascii)
}
