package monitor

import (
	"testing"

	"github.com/rileyhilliard/sysdash/internal/layout"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrame_AddDropsEmptyRegions(t *testing.T) {
	f := NewFrame(layout.NewRect(0, 0, 10, 10))

	f.Text(layout.NewRect(0, 0, 0, 1), "hidden", AlignLeft)
	f.Text(layout.NewRect(0, 0, 5, 0), "hidden", AlignLeft)
	f.Text(layout.NewRect(0, 0, 5, 1), "shown", AlignLeft)

	require.Len(t, f.Runs, 1)
	assert.Equal(t, "shown", f.Runs[0].Text)
}

func TestFrame_LineLeft(t *testing.T) {
	f := NewFrame(layout.NewRect(0, 0, 40, 5))

	f.Line(layout.NewRect(2, 3, 20, 2), AlignLeft, Plain("CPU 0: "), Classified("12.00%", SeverityNormal))

	require.Len(t, f.Runs, 2)
	assert.Equal(t, layout.Rect{X: 2, Y: 3, Width: 7, Height: 1}, f.Runs[0].Region)
	assert.Equal(t, layout.Rect{X: 9, Y: 3, Width: 6, Height: 1}, f.Runs[1].Region)
	assert.Equal(t, SeverityNone, f.Runs[0].Tier)
	assert.Equal(t, SeverityNormal, f.Runs[1].Tier)
}

func TestFrame_LineRight(t *testing.T) {
	f := NewFrame(layout.NewRect(0, 0, 40, 5))

	f.Line(layout.NewRect(10, 0, 20, 1), AlignRight, Plain("[ "), Classified("||  ", SeverityElevated), Plain(" ]"))

	require.Len(t, f.Runs, 3)
	// 8 cells wide, ending at column 30
	assert.Equal(t, 22, f.Runs[0].Region.X)
	assert.Equal(t, 24, f.Runs[1].Region.X)
	assert.Equal(t, 28, f.Runs[2].Region.X)
	assert.Equal(t, 30, f.Runs[2].Region.Right())
}

func TestFrame_LineOverflowClipsTail(t *testing.T) {
	f := NewFrame(layout.NewRect(0, 0, 40, 5))

	f.Line(layout.NewRect(0, 0, 8, 1), AlignRight, Plain("Global "), Plain("CPU"))

	require.Len(t, f.Runs, 2)
	assert.Equal(t, layout.Rect{X: 0, Y: 0, Width: 7, Height: 1}, f.Runs[0].Region)
	assert.Equal(t, layout.Rect{X: 7, Y: 0, Width: 1, Height: 1}, f.Runs[1].Region)
}

func TestFrame_Block(t *testing.T) {
	f := NewFrame(layout.NewRect(0, 0, 20, 10))

	inner := f.Block(layout.NewRect(1, 1, 10, 5), "Disk 0")

	assert.Equal(t, layout.NewRect(2, 2, 8, 3), inner)
	require.Len(t, f.Runs, 5)
	assert.Equal(t, "┌────────┐", f.Runs[0].Text)
	assert.Equal(t, "└────────┘", f.Runs[1].Text)
	assert.Equal(t, "│\n│\n│", f.Runs[2].Text)
	assert.Equal(t, 10, f.Runs[3].Region.X)
	assert.Equal(t, "Disk 0", f.Runs[4].Text)
	assert.Equal(t, RoleTitle, f.Runs[4].Role)
	for _, run := range f.Runs[:4] {
		assert.Equal(t, RoleBorder, run.Role)
	}
}

func TestFrame_BlockTitleTruncated(t *testing.T) {
	f := NewFrame(layout.NewRect(0, 0, 20, 10))

	f.Block(layout.NewRect(0, 0, 6, 3), "Processes (12)")

	title := f.Runs[len(f.Runs)-1]
	assert.Equal(t, "Proc", title.Text)
}

func TestFrame_BlockTooSmall(t *testing.T) {
	f := NewFrame(layout.NewRect(0, 0, 20, 10))

	inner := f.Block(layout.NewRect(3, 3, 1, 5), "x")

	assert.Empty(t, f.Runs)
	assert.True(t, inner.IsEmpty())
}

func TestFrame_LabelValue(t *testing.T) {
	f := NewFrame(layout.NewRect(0, 0, 40, 5))

	f.LabelValue(layout.NewRect(0, 0, 20, 1), layout.NewRect(20, 0, 20, 1), "Total Memory: ", Plain("8.00 GB"))

	require.Len(t, f.Runs, 2)
	assert.Equal(t, 0, f.Runs[0].Region.X)
	assert.Equal(t, 33, f.Runs[1].Region.X)
}
