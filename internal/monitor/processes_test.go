package monitor

import (
	"testing"

	"github.com/rileyhilliard/sysdash/internal/config"
	"github.com/rileyhilliard/sysdash/internal/layout"
	"github.com/rileyhilliard/sysdash/internal/metrics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func memories(procs []metrics.Process) []uint64 {
	out := make([]uint64, len(procs))
	for i, p := range procs {
		out[i] = p.MemoryBytes
	}
	return out
}

func TestFilterAndSortProcesses(t *testing.T) {
	procs := []metrics.Process{
		{PID: 1, MemoryBytes: 40_000_000},
		{PID: 2, MemoryBytes: 60_000_000},
		{PID: 3, MemoryBytes: 200_000_000},
		{PID: 4, MemoryBytes: 50_000_000},
	}

	got := SortProcesses(FilterProcesses(procs, config.ProcessMemoryFloorBytes))

	assert.Equal(t, []uint64{200_000_000, 60_000_000}, memories(got))
	// input untouched
	assert.Equal(t, uint32(1), procs[0].PID)
	assert.Len(t, procs, 4)
}

func TestSortProcesses_Stable(t *testing.T) {
	procs := []metrics.Process{
		{PID: 1, MemoryBytes: 100},
		{PID: 2, MemoryBytes: 300},
		{PID: 3, MemoryBytes: 100},
		{PID: 4, MemoryBytes: 300},
	}

	got := SortProcesses(procs)

	var pids []uint32
	for _, p := range got {
		pids = append(pids, p.PID)
	}
	assert.Equal(t, []uint32{2, 4, 1, 3}, pids)
	assert.Equal(t, uint32(1), procs[0].PID)
}

func TestFilterProcesses_Empty(t *testing.T) {
	assert.Empty(t, FilterProcesses(nil, 0))
	assert.NotNil(t, FilterProcesses(nil, 0))
}

func TestProcessRow(t *testing.T) {
	row := ProcessRow(metrics.Process{
		PID:           4242,
		Name:          "com.example.verylongprocessname",
		MemoryBytes:   734_000_000,
		CPUPercent:    12.345,
		UptimeSeconds: 3600,
		Owner:         &metrics.ProcessOwner{EUID: 501, EGID: 20},
	}, config.ProcessNameMaxChars)

	assert.Equal(t, []string{"4242", "com.example.verylongp", "734.00", "12.35%", "3600", "501/20"}, row)

	noOwner := ProcessRow(metrics.Process{PID: 1, Name: "init"}, config.ProcessNameMaxChars)
	assert.Equal(t, "-", noOwner[5])
}

func TestProcessPanel_RowsLimitedToHeight(t *testing.T) {
	procs := make([]metrics.Process, 50)
	for i := range procs {
		procs[i] = metrics.Process{PID: uint32(i), Name: "worker", MemoryBytes: uint64(100_000_000 + i)}
	}
	snap := &metrics.Snapshot{Processes: procs}

	p := &pass{frame: NewFrame(layout.NewRect(0, 0, 50, 10)), cfg: config.DefaultConfig()}
	ProcessPanel{}.render(p, snap, layout.NewRect(0, 0, 50, 10))

	lines := renderLines(t, p.frame)
	assert.Contains(t, lines[0], "Processes (50)")
	assert.Contains(t, lines[1], "PID")
	// largest first
	assert.Contains(t, lines[2], "49")
	// 8 interior rows: the header and 7 processes
	assert.Contains(t, lines[8], "43")
	assert.Contains(t, lines[9], "└")
}

func TestProcessPanel_TitleUsesThousandsSeparator(t *testing.T) {
	procs := make([]metrics.Process, 1234)
	for i := range procs {
		procs[i] = metrics.Process{PID: uint32(i), MemoryBytes: 60_000_000}
	}

	p := &pass{frame: NewFrame(layout.NewRect(0, 0, 50, 4)), cfg: config.DefaultConfig()}
	ProcessPanel{}.render(p, &metrics.Snapshot{Processes: procs}, layout.NewRect(0, 0, 50, 4))

	require.NotEmpty(t, p.frame.Runs)
	var title string
	for _, run := range p.frame.Runs {
		if run.Role == RoleTitle {
			title = run.Text
		}
	}
	assert.Equal(t, "Processes (1,234)", title)
}
