package monitor

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/rileyhilliard/sysdash/internal/layout"
	"github.com/rileyhilliard/sysdash/internal/metrics"
)

// processHeader names the process table columns, in order.
var processHeader = []string{"PID", "Name", "Mem (MB)", "CPU", "Uptime (s)", "EUID/EGID"}

// FilterProcesses returns the processes using strictly more than floor bytes
// of memory. The input is not modified.
func FilterProcesses(procs []metrics.Process, floor uint64) []metrics.Process {
	out := make([]metrics.Process, 0, len(procs))
	for _, proc := range procs {
		if proc.MemoryBytes > floor {
			out = append(out, proc)
		}
	}
	return out
}

// SortProcesses orders processes by memory, largest first. Processes using
// the same amount keep their relative order. The input is not modified.
func SortProcesses(procs []metrics.Process) []metrics.Process {
	out := make([]metrics.Process, len(procs))
	copy(out, procs)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].MemoryBytes > out[j].MemoryBytes
	})
	return out
}

// ProcessRow returns the table cells for one process.
func ProcessRow(proc metrics.Process, nameMax int) []string {
	return []string{
		strconv.FormatUint(uint64(proc.PID), 10),
		TruncateName(proc.Name, nameMax),
		FormatMBValue(proc.MemoryBytes),
		FormatPercent(proc.CPUPercent),
		strconv.FormatUint(proc.UptimeSeconds, 10),
		FormatOwner(proc.Owner),
	}
}

// ProcessPanel is the process table shown in the secondary column.
type ProcessPanel struct{}

func (ProcessPanel) Name() string { return "processes" }

func (ProcessPanel) render(p *pass, snap *metrics.Snapshot, area layout.Rect) {
	settings := p.cfg.Processes
	procs := SortProcesses(FilterProcesses(snap.Processes, settings.MemoryFloorBytes))

	title := fmt.Sprintf("Processes (%s)", humanize.Comma(int64(len(procs))))
	inner := p.frame.Block(area, title)
	if inner.IsEmpty() {
		return
	}

	columns := make([]layout.Constraint, len(settings.ColumnPercents))
	for i, pct := range settings.ColumnPercents {
		columns[i] = layout.Percent(pct)
	}
	table := layout.HorizontalSplit(columns...)

	// Header plus as many rows as fit; the rest would be clipped anyway.
	visible := min(len(procs), inner.Height-1)
	rows := layout.VerticalSplit(layout.Repeat(layout.Fixed(1), visible+1)...).Split(inner)

	renderProcessRow(p, table.Split(rows[0]), processHeader, RoleHeader)
	for i := 0; i < visible; i++ {
		renderProcessRow(p, table.Split(rows[i+1]), ProcessRow(procs[i], settings.NameMaxChars), RoleText)
	}
}

func renderProcessRow(p *pass, cells []layout.Rect, values []string, role Role) {
	for i, cell := range cells {
		if i >= len(values) {
			break
		}
		p.frame.Line(cell, AlignLeft, Span{Text: values[i], Role: role})
	}
}
