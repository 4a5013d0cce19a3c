package monitor

import (
	"fmt"

	"github.com/rileyhilliard/sysdash/internal/layout"
	"github.com/rileyhilliard/sysdash/internal/metrics"
)

// DiskPanel shows one titled block per disk, splitting the height evenly.
type DiskPanel struct{}

func (DiskPanel) Name() string { return "disk" }

func (DiskPanel) render(p *pass, snap *metrics.Snapshot, area layout.Rect) {
	disks := snap.Disks
	if len(disks) == 0 {
		p.frame.Line(area.Inner(layout.Uniform(1)), AlignLeft, Plain("No disks detected"))
		return
	}

	share := layout.Percent(uint16(100 / len(disks)))
	blocks := layout.VerticalSplit(layout.Repeat(share, len(disks))...).
		WithMargin(layout.Uniform(1)).
		Split(area)

	for i, d := range disks {
		if blocks[i].IsEmpty() {
			break
		}
		renderDisk(p, i, d, blocks[i])
	}
}

func renderDisk(p *pass, index int, d metrics.Disk, area layout.Rect) {
	p.frame.Block(area, fmt.Sprintf("Disk %d", index))

	halves := layout.HorizontalSplit(layout.Percent(50), layout.Percent(50)).
		WithMargin(layout.Margin{Horizontal: 1}).
		Split(area)
	rows := layout.VerticalSplit(layout.Repeat(layout.Fixed(1), 5)...).WithMargin(layout.Uniform(1))
	labels, values := rows.Split(halves[0]), rows.Split(halves[1])

	pct := d.UsedPercent()
	usage := []Span{p.percentSpan(pct)}
	// The bar only joins the percentage when both fit in the column.
	if bar := p.barSpans(pct); spansWidth(usage)+1+spansWidth(bar) <= values[2].Width {
		usage = append(append(usage, Plain(" ")), bar...)
	}

	p.frame.LabelValue(labels[0], values[0], "Mount Point:", Plain(d.MountPoint))
	p.frame.LabelValue(labels[1], values[1], "Name: ", Plain(d.Name))
	p.frame.LabelValue(labels[2], values[2], "Usage: ", usage...)
	p.frame.LabelValue(labels[3], values[3], "Filesystem: ", Plain(d.Filesystem))
	p.frame.LabelValue(labels[4], values[4], "Kind: ", Plain(d.Kind))
}

func spansWidth(spans []Span) int {
	w := 0
	for _, s := range spans {
		w += textWidth(s.Text)
	}
	return w
}
