package monitor

import (
	"github.com/rileyhilliard/sysdash/internal/layout"
	"github.com/rileyhilliard/sysdash/internal/metrics"
)

// CPUPanel shows global usage and one row per core.
type CPUPanel struct{}

func (CPUPanel) Name() string { return "cpu" }

func (CPUPanel) render(p *pass, snap *metrics.Snapshot, area layout.Rect) {
	parts := layout.VerticalSplit(layout.Fixed(2), layout.Min(1)).
		WithMargin(layout.Uniform(1)).
		Split(area)

	p.frame.Line(parts[0], AlignLeft,
		Plain("Global CPU Usage: "),
		p.percentSpan(snap.CPU.GlobalPercent),
	)

	cores := snap.CPU.Cores
	if len(cores) == 0 {
		return
	}

	//  CPU 0: 12.34%        [ ||         ]
	halves := layout.HorizontalSplit(layout.Percent(50), layout.Percent(50)).Split(parts[1])
	rows := layout.Repeat(layout.Fixed(1), len(cores))
	labels := layout.VerticalSplit(rows...).Split(halves[0])
	bars := layout.VerticalSplit(rows...).Split(halves[1])

	for i, core := range cores {
		if labels[i].IsEmpty() {
			break
		}
		p.frame.Line(labels[i], AlignLeft,
			Plain("CPU "+core.Label+": "),
			p.percentSpan(core.Percent),
		)
		p.frame.Line(bars[i], AlignRight, p.barSpans(core.Percent)...)
	}
}
