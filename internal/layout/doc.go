// Package layout partitions rectangular terminal regions into child regions.
//
// A split is fully determined by a parent Rect, a Direction, a Margin and an
// ordered list of Constraints:
//
//	rows := layout.VerticalSplit(layout.Fixed(2), layout.Min(1)).
//		WithMargin(layout.Uniform(1)).
//		Split(area)
//
// Rects are plain values. Subdividing a Rect always produces new Rects, so
// splits can be nested as deeply as a panel needs.
package layout
