package layout

import "fmt"

// Direction is the axis a split divides along.
type Direction int

const (
	// Horizontal splits the width into side-by-side columns.
	Horizontal Direction = iota
	// Vertical splits the height into stacked rows.
	Vertical
)

func (d Direction) String() string {
	if d == Horizontal {
		return "horizontal"
	}
	return "vertical"
}

// ConstraintKind tags the variant of a Constraint.
type ConstraintKind int

const (
	KindFixed ConstraintKind = iota
	KindPercent
	KindMin
)

// Constraint is a sizing rule for one child of a split.
type Constraint struct {
	Kind  ConstraintKind
	Value uint16
}

// Fixed sizes a child to exactly n cells.
func Fixed(n uint16) Constraint {
	return Constraint{Kind: KindFixed, Value: n}
}

// Percent sizes a child to p percent of the interior, rounded to the nearest cell.
// Values over 100 are kept as given.
func Percent(p uint16) Constraint {
	return Constraint{Kind: KindPercent, Value: p}
}

// Min sizes a child to at least n cells. The last Min in a split also absorbs
// whatever space the other constraints leave unused.
func Min(n uint16) Constraint {
	return Constraint{Kind: KindMin, Value: n}
}

// Repeat returns n copies of c.
func Repeat(c Constraint, n int) []Constraint {
	if n <= 0 {
		return nil
	}
	out := make([]Constraint, n)
	for i := range out {
		out[i] = c
	}
	return out
}

func (c Constraint) String() string {
	switch c.Kind {
	case KindFixed:
		return fmt.Sprintf("Fixed(%d)", c.Value)
	case KindPercent:
		return fmt.Sprintf("Percent(%d)", c.Value)
	case KindMin:
		return fmt.Sprintf("Min(%d)", c.Value)
	default:
		return "Unknown"
	}
}

// Margin is the space trimmed from each side of the parent before splitting.
type Margin struct {
	Horizontal uint16
	Vertical   uint16
}

// Uniform returns a margin of n cells on all four sides.
func Uniform(n uint16) Margin {
	return Margin{Horizontal: n, Vertical: n}
}
