// Package ui provides the colors, symbols and small print helpers shared by
// the dashboard and the sysdash subcommands.
//
// # Color Scheme
//
// Colors are ANSI codes for broad terminal compatibility:
//
//	ColorNormal    (light green)  - Normal severity
//	ColorElevated  (light yellow) - Elevated severity
//	ColorCritical  (light red)    - Critical severity
//	ColorError     (red)          - Failures printed by the CLI
//	ColorMuted     (gray)         - Borders, secondary text
//
// Use DisableColors() to switch to monochrome output.
package ui
