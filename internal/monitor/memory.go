package monitor

import (
	"github.com/rileyhilliard/sysdash/internal/layout"
	"github.com/rileyhilliard/sysdash/internal/metrics"
)

// MemoryPanel shows physical memory usage.
type MemoryPanel struct{}

func (MemoryPanel) Name() string { return "memory" }

func (MemoryPanel) render(p *pass, snap *metrics.Snapshot, area layout.Rect) {
	mem := snap.Memory
	pct := mem.UsedPercent()

	// percentage, spacer, total, available, used, free
	labels, values := labelValueRows(area, 6)

	p.frame.Line(labels[0], AlignLeft, Plain("Memory: "), p.percentSpan(pct))
	p.frame.Line(values[0], AlignRight, p.barSpans(pct)...)

	p.frame.LabelValue(labels[2], values[2], "Total Memory: ", Plain(FormatGB(mem.TotalBytes)))
	p.frame.LabelValue(labels[3], values[3], "Avail Memory: ", Plain(FormatGB(mem.AvailableBytes)))
	p.frame.LabelValue(labels[4], values[4], "Used Memory: ", Plain(FormatGB(mem.UsedBytes)))
	p.frame.LabelValue(labels[5], values[5], "Free Memory: ", Plain(FormatMB(mem.FreeBytes)))
}

// SwapPanel shows swap usage. Hosts without swap show 0.00%.
type SwapPanel struct{}

func (SwapPanel) Name() string { return "swap" }

func (SwapPanel) render(p *pass, snap *metrics.Snapshot, area layout.Rect) {
	swap := snap.Swap
	pct := swap.UsedPercent()

	// percentage, spacer, total, used, free
	labels, values := labelValueRows(area, 5)

	p.frame.Line(labels[0], AlignLeft, Plain("Swap: "), p.percentSpan(pct))
	p.frame.Line(values[0], AlignRight, p.barSpans(pct)...)

	p.frame.LabelValue(labels[2], values[2], "Total Swap: ", Plain(FormatGB(swap.TotalBytes)))
	p.frame.LabelValue(labels[3], values[3], "Used Swap: ", Plain(FormatGB(swap.UsedBytes)))
	p.frame.LabelValue(labels[4], values[4], "Free Swap: ", Plain(FormatGB(swap.FreeBytes)))
}
