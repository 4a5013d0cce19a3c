package monitor

import (
	"github.com/rileyhilliard/sysdash/internal/config"
	"github.com/rileyhilliard/sysdash/internal/layout"
	"github.com/rileyhilliard/sysdash/internal/metrics"
)

// Composer turns a snapshot and a viewport into a frame.
type Composer struct {
	cfg       *config.Config
	column    []Panel // metrics column, top to bottom
	secondary Panel
}

// NewComposer returns a composer using cfg. A nil cfg uses the defaults.
func NewComposer(cfg *config.Config) *Composer {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	return &Composer{
		cfg:       cfg,
		column:    []Panel{CPUPanel{}, MemoryPanel{}, SwapPanel{}, DiskPanel{}, HostPanel{}},
		secondary: ProcessPanel{},
	}
}

// Panels returns every panel in render order.
func (c *Composer) Panels() []Panel {
	panels := make([]Panel, 0, len(c.column)+1)
	panels = append(panels, c.column...)
	return append(panels, c.secondary)
}

// Compose lays the dashboard out over viewport. The result depends only on
// the arguments, so composing the same snapshot twice gives identical frames.
// A nil snapshot renders as an empty one.
func (c *Composer) Compose(snap *metrics.Snapshot, viewport layout.Rect) Frame {
	if snap == nil {
		snap = &metrics.Snapshot{}
	}
	l := c.cfg.Layout
	p := &pass{frame: NewFrame(viewport), cfg: c.cfg}

	columns := layout.HorizontalSplit(
		layout.Fixed(l.MetricsColumnWidth),
		layout.Fixed(l.SecondaryColumnWidth),
	).WithMargin(layout.Uniform(l.ViewportMargin)).Split(viewport)

	stats := p.frame.Block(columns[0], "Stats")
	sections := layout.VerticalSplit(
		layout.Percent(l.CPUPercent(len(snap.CPU.Cores))),
		layout.Percent(l.MemoryPercent),
		layout.Percent(l.SwapPercent),
		layout.Percent(l.DiskPercent),
		layout.Percent(l.HostPercent),
	).Split(stats)

	for i, panel := range c.column {
		panel.render(p, snap, sections[i])
	}
	c.secondary.render(p, snap, columns[1])

	return *p.frame
}

// Compose renders with the compiled-in configuration.
func Compose(snap *metrics.Snapshot, viewport layout.Rect) Frame {
	return NewComposer(nil).Compose(snap, viewport)
}
