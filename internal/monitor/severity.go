package monitor

import "github.com/rileyhilliard/sysdash/internal/config"

// Severity is the tier a percentage falls into.
type Severity int

const (
	// SeverityNone marks text that isn't classified at all (labels, borders).
	SeverityNone Severity = iota
	SeverityNormal
	SeverityElevated
	SeverityCritical
)

// String returns a human-readable tier name.
func (s Severity) String() string {
	switch s {
	case SeverityNormal:
		return "normal"
	case SeverityElevated:
		return "elevated"
	case SeverityCritical:
		return "critical"
	default:
		return "none"
	}
}

var defaultThresholds = config.Thresholds{
	Elevated: config.ElevatedThreshold,
	Critical: config.CriticalThreshold,
}

// Classify maps a percentage to a tier using the compiled-in thresholds.
func Classify(percent float64) Severity {
	return ClassifyWith(defaultThresholds, percent)
}

// ClassifyWith maps a percentage to a tier. Both bounds are exclusive: a
// value equal to a threshold stays in the lower tier. NaN and negative values
// are Normal. Values above 100 are classified as given.
func ClassifyWith(t config.Thresholds, percent float64) Severity {
	switch {
	case percent > t.Critical:
		return SeverityCritical
	case percent > t.Elevated:
		return SeverityElevated
	default:
		return SeverityNormal
	}
}
