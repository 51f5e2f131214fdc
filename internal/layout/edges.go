package layout

// Edges represents values for four sides of a box.
type Edges struct {
	Top, Right, Bottom, Left int
}

// EdgeAll creates Edges with the same value on all sides.
func EdgeAll(n int) Edges {
	return Edges{Top: n, Right: n, Bottom: n, Left: n}
}

// EdgeSymmetric creates Edges with vertical (top/bottom) and horizontal (left/right) values.
func EdgeSymmetric(v, h int) Edges {
	return Edges{Top: v, Right: h, Bottom: v, Left: h}
}

// EdgeTRBL creates Edges following CSS order: Top, Right, Bottom, Left.
func EdgeTRBL(t, r, b, l int) Edges {
	return Edges{Top: t, Right: r, Bottom: b, Left: l}
}

// X returns the horizontal (left, right) pair.
func (e Edges) X() Pad {
	return Pad{Before: e.Left, After: e.Right}
}

// Y returns the vertical (top, bottom) pair.
func (e Edges) Y() Pad {
	return Pad{Before: e.Top, After: e.Bottom}
}

func (e Edges) negative() bool {
	return e.Top < 0 || e.Right < 0 || e.Bottom < 0 || e.Left < 0
}

// Pad is the external padding on one axis of a cell.
type Pad struct {
	Before, After int
}

// PadAll returns a Pad with n on both sides.
func PadAll(n int) Pad {
	return Pad{Before: n, After: n}
}

// Add returns the side-by-side sum of two pads.
func (p Pad) Add(other Pad) Pad {
	return Pad{Before: p.Before + other.Before, After: p.After + other.After}
}

// Total returns Before + After.
func (p Pad) Total() int {
	return p.Before + p.After
}

// Gap is the uniform spacing between neighbouring tracks.
type Gap struct {
	Column int // Horizontal space between columns
	Row    int // Vertical space between rows
}

// Uniform returns a Gap with the same spacing on both axes.
func Uniform(n int) Gap {
	return Gap{Column: n, Row: n}
}

// On returns the gap between tracks of the given axis.
func (g Gap) On(axis Axis) int {
	if axis == Columns {
		return g.Column
	}
	return g.Row
}
