package monitor

import (
	"fmt"
	"math"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rileyhilliard/sysdash/internal/metrics"
)

// Byte scales are decimal: 1 GB is 10^9 bytes.
const (
	bytesPerGB = 1_000_000_000
	bytesPerMB = 1_000_000
)

// Bar delimiters and fill glyph.
const (
	barOpen  = "[ "
	barClose = " ]"
	barGlyph = "|"
)

// FormatGB formats a byte count as gigabytes with two decimals.
func FormatGB(bytes uint64) string {
	return fmt.Sprintf("%.2f GB", float64(bytes)/bytesPerGB)
}

// FormatMB formats a byte count as megabytes with two decimals.
func FormatMB(bytes uint64) string {
	return fmt.Sprintf("%.2f MB", float64(bytes)/bytesPerMB)
}

// FormatMBValue is FormatMB without the unit, for table cells whose header
// already names it.
func FormatMBValue(bytes uint64) string {
	return fmt.Sprintf("%.2f", float64(bytes)/bytesPerMB)
}

// FormatPercent formats a percentage with two decimals. Values over 100 are
// printed as given.
func FormatPercent(p float64) string {
	return fmt.Sprintf("%.2f%%", p)
}

// BarFill returns how many of width cells a bar for p fills. Each cell covers
// 100/width percent of the rounded value and any started cell counts. The
// result is clamped to [0, width].
func BarFill(p float64, width int) int {
	if width <= 0 || math.IsNaN(p) || p <= 0 {
		return 0
	}
	filled := int(math.Ceil(math.Round(p) * float64(width) / 100))
	return max(0, min(filled, width))
}

// BarTrack returns the fill glyphs for p padded with spaces to width cells.
func BarTrack(p float64, width int) string {
	filled := BarFill(p, width)
	return strings.Repeat(barGlyph, filled) + strings.Repeat(" ", max(width-filled, 0))
}

// Bar returns the complete bar glyph, delimiters included.
func Bar(p float64, width int) string {
	return barOpen + BarTrack(p, width) + barClose
}

// TruncateName keeps the first n characters of a process name. No ellipsis is
// added.
func TruncateName(name string, n int) string {
	if n <= 0 {
		return ""
	}
	runes := []rune(name)
	if len(runes) <= n {
		return name
	}
	return string(runes[:n])
}

// FormatOwner renders the effective user and group as "uid/gid", or "-" when
// the OS didn't report them.
func FormatOwner(owner *metrics.ProcessOwner) string {
	if owner == nil {
		return "-"
	}
	return fmt.Sprintf("%d/%d", owner.EUID, owner.EGID)
}

// textWidth is the number of terminal cells s occupies.
func textWidth(s string) int {
	return runewidth.StringWidth(s)
}
