package geometry

import "github.com/grindlemire/go-tracks/internal/layout"

// Rect represents a rectangle with integer coordinates.
// X and Y are the top-left corner; Width and Height are dimensions.
type Rect struct {
	X, Y          int
	Width, Height int
}

// NewRect creates a new Rect with the given position and dimensions.
func NewRect(x, y, width, height int) Rect {
	return Rect{X: x, Y: y, Width: width, Height: height}
}

// Right returns the x-coordinate of the right edge (exclusive).
func (r Rect) Right() int {
	return r.X + r.Width
}

// Bottom returns the y-coordinate of the bottom edge (exclusive).
func (r Rect) Bottom() int {
	return r.Y + r.Height
}

// IsEmpty returns true if the rectangle has zero or negative area.
func (r Rect) IsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Inset returns r shrunk by the horizontal and vertical padding.
// The result never has a negative size.
func (r Rect) Inset(x, y layout.Pad) Rect {
	return Rect{
		X:      r.X + x.Before,
		Y:      r.Y + y.Before,
		Width:  max(0, r.Width-x.Total()),
		Height: max(0, r.Height-y.Total()),
	}
}

// Intersect returns the intersection of two rectangles.
// If the rectangles don't overlap, returns an empty Rect.
func (r Rect) Intersect(other Rect) Rect {
	x := max(r.X, other.X)
	y := max(r.Y, other.Y)
	right := min(r.Right(), other.Right())
	bottom := min(r.Bottom(), other.Bottom())

	if right-x <= 0 || bottom-y <= 0 {
		return Rect{}
	}
	return Rect{X: x, Y: y, Width: right - x, Height: bottom - y}
}

// Intersects returns true if the two rectangles overlap.
// Touching edges do not count as overlapping.
func (r Rect) Intersects(other Rect) bool {
	return !r.Intersect(other).IsEmpty()
}

// Anchor places a width x height box inside r according to sticky.
// An axis anchored to both edges stretches, to one edge hugs it, and to
// neither is centered. The box never overflows r.
func (r Rect) Anchor(width, height int, sticky layout.Sticky) Rect {
	x, w := anchorAxis(r.X, r.Width, width, sticky&layout.StickyW != 0, sticky&layout.StickyE != 0)
	y, h := anchorAxis(r.Y, r.Height, height, sticky&layout.StickyN != 0, sticky&layout.StickyS != 0)
	return Rect{X: x, Y: y, Width: w, Height: h}
}

func anchorAxis(pos, avail, size int, start, end bool) (int, int) {
	size = min(max(size, 0), avail)
	switch {
	case start && end:
		return pos, avail
	case start:
		return pos, size
	case end:
		return pos + avail - size, size
	default:
		return pos + (avail-size)/2, size
	}
}
