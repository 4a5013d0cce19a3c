package monitor

import (
	"strconv"

	"github.com/rileyhilliard/sysdash/internal/layout"
	"github.com/rileyhilliard/sysdash/internal/metrics"
)

// unknownArch is shown when the OS doesn't report a CPU architecture.
const unknownArch = "unknown"

// HostPanel shows host metadata in a block titled "System".
type HostPanel struct{}

func (HostPanel) Name() string { return "host" }

func (HostPanel) render(p *pass, snap *metrics.Snapshot, area layout.Rect) {
	host := snap.Host

	padded := layout.HorizontalSplit(layout.Min(1)).
		WithMargin(layout.Margin{Horizontal: 1}).
		Split(area)[0]
	p.frame.Block(padded, "System")

	columns := layout.HorizontalSplit(layout.Percent(33), layout.Percent(67)).
		WithMargin(layout.Uniform(1)).
		Split(padded)
	rows := layout.VerticalSplit(layout.Repeat(layout.Fixed(1), 5)...).WithMargin(layout.Uniform(1))
	labels, values := rows.Split(columns[0]), rows.Split(columns[1])

	arch := host.CPUArch
	if arch == "" {
		arch = unknownArch
	}

	p.frame.LabelValue(labels[0], values[0], "Hostname: ", Plain(host.Hostname))
	p.frame.LabelValue(labels[1], values[1], "Version: ", Plain(host.OSVersion))
	p.frame.LabelValue(labels[2], values[2], "Up-time: ", Plain(strconv.FormatUint(host.UptimeSeconds, 10)))
	p.frame.LabelValue(labels[3], values[3], "CPU Arch: ", Plain(arch))
	p.frame.LabelValue(labels[4], values[4], "OS: ", Plain(host.OSName))
}
