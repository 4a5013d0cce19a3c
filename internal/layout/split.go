package layout

import "math"

// Layout is a reusable split description.
type Layout struct {
	Direction   Direction
	Margin      Margin
	Constraints []Constraint
}

// HorizontalSplit returns a layout that splits into columns.
func HorizontalSplit(constraints ...Constraint) Layout {
	return Layout{Direction: Horizontal, Constraints: constraints}
}

// VerticalSplit returns a layout that splits into rows.
func VerticalSplit(constraints ...Constraint) Layout {
	return Layout{Direction: Vertical, Constraints: constraints}
}

// WithMargin returns a copy of the layout using the given margin.
func (l Layout) WithMargin(m Margin) Layout {
	l.Margin = m
	return l
}

// Split partitions parent according to the layout.
func (l Layout) Split(parent Rect) []Rect {
	return Split(parent, l.Direction, l.Margin, l.Constraints)
}

// Split partitions parent into one Rect per constraint, in constraint order.
//
// The margin is removed first. Along the split axis each constraint resolves
// to a length: Fixed is literal, Percent is round(p/100 * interior), Min is its
// value. Space left over after that is added to the last Min constraint.
// Percentages are not normalized: a shortfall stays as unused trailing space,
// and children running past the interior are clipped to it (a child that
// starts past the end has zero length). Off-axis, every child spans the whole
// interior.
func Split(parent Rect, dir Direction, margin Margin, constraints []Constraint) []Rect {
	if len(constraints) == 0 {
		return []Rect{}
	}

	interior := parent.Inner(margin)
	length := interior.Width
	if dir == Vertical {
		length = interior.Height
	}

	sizes := resolve(constraints, length)

	rects := make([]Rect, len(constraints))
	cursor := 0
	for i, size := range sizes {
		start := min(cursor, length)
		size = min(size, length-start)
		cursor = start + size

		if dir == Horizontal {
			rects[i] = Rect{X: interior.X + start, Y: interior.Y, Width: size, Height: interior.Height}
		} else {
			rects[i] = Rect{X: interior.X, Y: interior.Y + start, Width: interior.Width, Height: size}
		}
	}
	return rects
}

// resolve turns constraints into lengths along an axis of the given size.
func resolve(constraints []Constraint, length int) []int {
	sizes := make([]int, len(constraints))
	if length <= 0 {
		return sizes
	}

	total := 0
	lastMin := -1
	for i, c := range constraints {
		switch c.Kind {
		case KindFixed:
			sizes[i] = int(c.Value)
		case KindPercent:
			sizes[i] = int(math.Round(float64(c.Value) / 100 * float64(length)))
		case KindMin:
			sizes[i] = int(c.Value)
			lastMin = i
		}
		total += sizes[i]
	}

	if lastMin >= 0 && total < length {
		sizes[lastMin] += length - total
	}
	return sizes
}
