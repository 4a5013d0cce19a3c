package layout

import "fmt"

// Rect is a rectangle of character cells. All fields are non-negative.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// NewRect returns a Rect, clamping negative values to zero.
func NewRect(x, y, width, height int) Rect {
	return Rect{
		X:      max(x, 0),
		Y:      max(y, 0),
		Width:  max(width, 0),
		Height: max(height, 0),
	}
}

// Area returns the number of cells in the rectangle.
func (r Rect) Area() int {
	return r.Width * r.Height
}

// IsEmpty reports whether the rectangle covers no cells.
func (r Rect) IsEmpty() bool {
	return r.Width == 0 || r.Height == 0
}

// Right returns the first column past the rectangle.
func (r Rect) Right() int {
	return r.X + r.Width
}

// Bottom returns the first row past the rectangle.
func (r Rect) Bottom() int {
	return r.Y + r.Height
}

// Inner shrinks the rectangle by the margin on every side. A margin larger
// than the rectangle leaves a zero-sized rectangle rather than a negative one.
func (r Rect) Inner(m Margin) Rect {
	h, v := int(m.Horizontal), int(m.Vertical)

	inner := Rect{X: r.X + h, Y: r.Y + v, Width: r.Width - 2*h, Height: r.Height - 2*v}
	if inner.Width < 0 {
		inner.Width = 0
		inner.X = r.X + r.Width/2
	}
	if inner.Height < 0 {
		inner.Height = 0
		inner.Y = r.Y + r.Height/2
	}
	return inner
}

// Row returns the single-row rectangle at offset i from the top.
// Rows outside the rectangle come back empty.
func (r Rect) Row(i int) Rect {
	if i < 0 || i >= r.Height {
		return Rect{X: r.X, Y: r.Bottom(), Width: r.Width}
	}
	return Rect{X: r.X, Y: r.Y + i, Width: r.Width, Height: 1}
}

// Intersects reports whether two rectangles share at least one cell.
func (r Rect) Intersects(o Rect) bool {
	if r.IsEmpty() || o.IsEmpty() {
		return false
	}
	return r.X < o.Right() && o.X < r.Right() && r.Y < o.Bottom() && o.Y < r.Bottom()
}

// Contains reports whether o lies entirely inside r.
func (r Rect) Contains(o Rect) bool {
	return o.X >= r.X && o.Y >= r.Y && o.Right() <= r.Right() && o.Bottom() <= r.Bottom()
}

func (r Rect) String() string {
	return fmt.Sprintf("%dx%d+%d+%d", r.Width, r.Height, r.X, r.Y)
}
