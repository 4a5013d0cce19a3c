package monitor

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/rileyhilliard/sysdash/internal/ui"
)

// Palette maps severities and roles to terminal styles.
type Palette struct {
	Normal   lipgloss.Color
	Elevated lipgloss.Color
	Critical lipgloss.Color
	Border   lipgloss.Color
	Title    lipgloss.Color
	Header   lipgloss.Color
}

// DefaultPalette uses the light ANSI colors: green, yellow and red for the
// severities, default foreground for structure.
func DefaultPalette() Palette {
	return Palette{
		Normal:   ui.ColorNormal,
		Elevated: ui.ColorElevated,
		Critical: ui.ColorCritical,
		Border:   ui.ColorPrimary,
		Title:    ui.ColorPrimary,
		Header:   ui.ColorPrimary,
	}
}

// Color returns the color for a tier. SeverityNone has no color.
func (p Palette) Color(s Severity) (lipgloss.Color, bool) {
	switch s {
	case SeverityNormal:
		return p.Normal, true
	case SeverityElevated:
		return p.Elevated, true
	case SeverityCritical:
		return p.Critical, true
	default:
		return "", false
	}
}

// Style returns the style for text with the given role and tier. A tier color
// wins over the role color.
func (p Palette) Style(role Role, tier Severity) lipgloss.Style {
	style := lipgloss.NewStyle()

	switch role {
	case RoleBorder:
		style = style.Foreground(p.Border)
	case RoleTitle:
		style = style.Foreground(p.Title).Bold(true)
	case RoleHeader:
		style = style.Foreground(p.Header).Bold(true)
	}

	if c, ok := p.Color(tier); ok {
		style = style.Foreground(c)
	}
	return style
}
