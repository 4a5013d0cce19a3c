package monitor

import (
	"github.com/rileyhilliard/sysdash/internal/config"
	"github.com/rileyhilliard/sysdash/internal/layout"
	"github.com/rileyhilliard/sysdash/internal/metrics"
)

// Panel renders one section of the dashboard into the region it is given.
// The set of panels is closed: only this package can implement it.
type Panel interface {
	// Name identifies the panel in logs and tests.
	Name() string

	render(p *pass, snap *metrics.Snapshot, area layout.Rect)
}

// pass carries the frame being built and the settings for one compose call.
type pass struct {
	frame *Frame
	cfg   *config.Config
}

func (p *pass) classify(percent float64) Severity {
	return ClassifyWith(p.cfg.Thresholds, percent)
}

// percentSpan is a percentage colored by its tier.
func (p *pass) percentSpan(percent float64) Span {
	return Classified(FormatPercent(percent), p.classify(percent))
}

// barSpans returns a bar whose fill is colored by tier and whose delimiters
// are plain.
func (p *pass) barSpans(percent float64) []Span {
	return []Span{
		Plain(barOpen),
		Classified(BarTrack(percent, p.cfg.Layout.BarWidth), p.classify(percent)),
		Plain(barClose),
	}
}

// labelValueRows splits area into two columns of n single-cell rows each.
// The columns are inset by one cell on every side.
func labelValueRows(area layout.Rect, n int) (labels, values []layout.Rect) {
	halves := layout.HorizontalSplit(layout.Percent(50), layout.Percent(50)).Split(area)
	rows := layout.VerticalSplit(layout.Repeat(layout.Fixed(1), n)...).WithMargin(layout.Uniform(1))
	return rows.Split(halves[0]), rows.Split(halves[1])
}
