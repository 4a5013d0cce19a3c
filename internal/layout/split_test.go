package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplit_HalvesTileParent(t *testing.T) {
	for height := 0; height <= 120; height++ {
		parent := Rect{X: 3, Y: 2, Width: 40, Height: height}
		rects := Split(parent, Vertical, Margin{}, []Constraint{Percent(50), Percent(50)})

		require.Len(t, rects, 2)
		sum := rects[0].Height + rects[1].Height
		assert.LessOrEqual(t, abs(sum-height), 1, "height=%d", height)
		assert.False(t, rects[0].Intersects(rects[1]), "height=%d", height)
		assert.Equal(t, rects[0].Bottom(), rects[1].Y, "children should be contiguous (height=%d)", height)
		assert.True(t, parent.Contains(rects[0]))
		assert.True(t, parent.Contains(rects[1]))
	}
}

func TestSplit(t *testing.T) {
	tests := []struct {
		name        string
		parent      Rect
		dir         Direction
		margin      Margin
		constraints []Constraint
		expect      []Rect
	}{
		{
			name:        "fixed then min fills remainder",
			parent:      Rect{Width: 40, Height: 3},
			dir:         Horizontal,
			constraints: []Constraint{Fixed(10), Min(5)},
			expect: []Rect{
				{X: 0, Y: 0, Width: 10, Height: 3},
				{X: 10, Y: 0, Width: 30, Height: 3},
			},
		},
		{
			name:        "last min absorbs leftover",
			parent:      Rect{Width: 20, Height: 1},
			dir:         Horizontal,
			constraints: []Constraint{Min(2), Min(3), Fixed(5)},
			expect: []Rect{
				{X: 0, Width: 2, Height: 1},
				{X: 2, Width: 13, Height: 1},
				{X: 15, Width: 5, Height: 1},
			},
		},
		{
			name:        "uniform margin",
			parent:      Rect{Width: 40, Height: 10},
			dir:         Vertical,
			margin:      Uniform(1),
			constraints: []Constraint{Fixed(2), Fixed(3)},
			expect: []Rect{
				{X: 1, Y: 1, Width: 38, Height: 2},
				{X: 1, Y: 3, Width: 38, Height: 3},
			},
		},
		{
			name:        "horizontal margin only",
			parent:      Rect{X: 5, Y: 5, Width: 12, Height: 4},
			dir:         Vertical,
			margin:      Margin{Horizontal: 1},
			constraints: []Constraint{Min(1)},
			expect: []Rect{
				{X: 6, Y: 5, Width: 10, Height: 4},
			},
		},
		{
			name:        "percent rounds to nearest cell",
			parent:      Rect{Width: 38, Height: 1},
			dir:         Horizontal,
			constraints: []Constraint{Percent(33), Percent(67)},
			expect: []Rect{
				{X: 0, Width: 13, Height: 1},
				{X: 13, Width: 25, Height: 1},
			},
		},
		{
			name:        "percent shortfall leaves trailing space",
			parent:      Rect{Width: 10, Height: 1},
			dir:         Horizontal,
			constraints: []Constraint{Percent(20), Percent(30)},
			expect: []Rect{
				{X: 0, Width: 2, Height: 1},
				{X: 2, Width: 3, Height: 1},
			},
		},
		{
			name:        "overflow is clipped to the interior",
			parent:      Rect{Width: 10, Height: 1},
			dir:         Horizontal,
			constraints: []Constraint{Fixed(6), Fixed(6), Fixed(3)},
			expect: []Rect{
				{X: 0, Width: 6, Height: 1},
				{X: 6, Width: 4, Height: 1},
				{X: 10, Width: 0, Height: 1},
			},
		},
		{
			name:        "percent over 100 is clipped",
			parent:      Rect{Width: 10, Height: 2},
			dir:         Horizontal,
			constraints: []Constraint{Percent(150)},
			expect: []Rect{
				{X: 0, Width: 10, Height: 2},
			},
		},
		{
			name:        "margin larger than parent degenerates",
			parent:      Rect{Width: 1, Height: 1},
			dir:         Horizontal,
			margin:      Uniform(1),
			constraints: []Constraint{Percent(50), Fixed(3)},
			expect: []Rect{
				{X: 0, Y: 0, Width: 0, Height: 0},
				{X: 0, Y: 0, Width: 0, Height: 0},
			},
		},
		{
			name:        "zero-sized parent",
			parent:      Rect{X: 4, Y: 4},
			dir:         Vertical,
			constraints: []Constraint{Min(1), Fixed(1)},
			expect: []Rect{
				{X: 4, Y: 4},
				{X: 4, Y: 4},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rects := Split(tt.parent, tt.dir, tt.margin, tt.constraints)
			assert.Equal(t, tt.expect, rects)
		})
	}
}

func TestSplit_EmptyConstraints(t *testing.T) {
	rects := Split(Rect{Width: 10, Height: 10}, Vertical, Margin{}, nil)
	assert.NotNil(t, rects)
	assert.Empty(t, rects)
}

func TestSplit_NoOverlapAndInsideParent(t *testing.T) {
	parent := Rect{X: 1, Y: 1, Width: 38, Height: 22}
	constraints := []Constraint{Percent(15), Percent(16), Percent(14), Percent(31), Percent(20)}

	rects := Split(parent, Vertical, Margin{}, constraints)
	require.Len(t, rects, len(constraints))

	for i := range rects {
		assert.True(t, parent.Contains(rects[i]), "rect %d %s escapes parent", i, rects[i])
		for j := i + 1; j < len(rects); j++ {
			assert.False(t, rects[i].Intersects(rects[j]), "rects %d and %d overlap", i, j)
		}
	}
}

func TestSplit_Nested(t *testing.T) {
	viewport := Rect{Width: 80, Height: 24}

	columns := HorizontalSplit(Fixed(40), Fixed(50)).WithMargin(Uniform(1)).Split(viewport)
	require.Len(t, columns, 2)
	assert.Equal(t, Rect{X: 1, Y: 1, Width: 40, Height: 22}, columns[0])
	// Only 38 columns remain for the second column.
	assert.Equal(t, Rect{X: 41, Y: 1, Width: 38, Height: 22}, columns[1])

	halves := HorizontalSplit(Percent(50), Percent(50)).Split(columns[0])
	assert.Equal(t, Rect{X: 1, Y: 1, Width: 20, Height: 22}, halves[0])
	assert.Equal(t, Rect{X: 21, Y: 1, Width: 20, Height: 22}, halves[1])
}

func TestLayout_Builder(t *testing.T) {
	l := VerticalSplit(Fixed(1), Min(0)).WithMargin(Margin{Vertical: 2})

	assert.Equal(t, Vertical, l.Direction)
	assert.Equal(t, Margin{Vertical: 2}, l.Margin)
	assert.Equal(t, []Constraint{Fixed(1), Min(0)}, l.Constraints)

	rects := l.Split(Rect{Width: 5, Height: 10})
	assert.Equal(t, Rect{X: 0, Y: 2, Width: 5, Height: 1}, rects[0])
	assert.Equal(t, Rect{X: 0, Y: 3, Width: 5, Height: 5}, rects[1])
}

func TestRepeat(t *testing.T) {
	assert.Equal(t, []Constraint{Fixed(1), Fixed(1), Fixed(1)}, Repeat(Fixed(1), 3))
	assert.Nil(t, Repeat(Fixed(1), 0))
}

func TestConstraint_String(t *testing.T) {
	assert.Equal(t, "Fixed(3)", Fixed(3).String())
	assert.Equal(t, "Percent(50)", Percent(50).String())
	assert.Equal(t, "Min(1)", Min(1).String())
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
