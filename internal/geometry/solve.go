// Package geometry turns a container's tracks and placements into pixel
// rectangles. It is what a host without its own grid manager needs to draw a
// resolved layout.
package geometry

import "github.com/grindlemire/go-tracks/internal/layout"

// Span is the pixel extent of one track.
type Span struct {
	Offset, Size int
}

// End returns the offset one past the span.
func (s Span) End() int {
	return s.Offset + s.Size
}

// Solve sizes tracks along an axis of length available. Every track first
// gets its minimum size; what is left is split by weight, with the integer
// remainder going to the last weighted track. When the minimums alone exceed
// available the tracks overflow rather than shrink.
func Solve(tracks []layout.Track, available int) []Span {
	spans := make([]Span, len(tracks))
	used, totalWeight, last := 0, 0, -1
	for i, t := range tracks {
		spans[i].Size = t.MinSize
		used += t.MinSize
		if t.Weight > 0 {
			totalWeight += t.Weight
			last = i
		}
	}

	if free := available - used; free > 0 && totalWeight > 0 {
		given := 0
		for i, t := range tracks {
			if t.Weight == 0 {
				continue
			}
			extra := free * t.Weight / totalWeight
			spans[i].Size += extra
			given += extra
		}
		spans[last].Size += free - given
	}

	offset := 0
	for i := range spans {
		spans[i].Offset = offset
		offset += spans[i].Size
	}
	return spans
}

// Grid is a solved container: the pixel spans of its rows and columns.
type Grid struct {
	Bounds  Rect
	Rows    []Span
	Columns []Span
}

// Layout solves both axes of c inside bounds.
func Layout(c *layout.Container, bounds Rect) Grid {
	return Grid{
		Bounds:  bounds,
		Rows:    Solve(c.Tracks(layout.Rows), bounds.Height),
		Columns: Solve(c.Tracks(layout.Columns), bounds.Width),
	}
}

// SpanRect returns the rectangle covered by the tracks a placement spans,
// before padding. Tracks that don't exist have no extent.
func (g Grid) SpanRect(p layout.Placement) Rect {
	x0, x1 := spanRange(g.Columns, p.Col, p.ColSpan)
	y0, y1 := spanRange(g.Rows, p.Row, p.RowSpan)
	return Rect{X: g.Bounds.X + x0, Y: g.Bounds.Y + y0, Width: x1 - x0, Height: y1 - y0}
}

// CellRect returns the area a placement may draw in: its spanned tracks
// inset by its padding.
func (g Grid) CellRect(p layout.Placement) Rect {
	return g.SpanRect(p).Inset(p.PadX, p.PadY)
}

// ItemRect anchors an item of natural size width x height in its cell.
func (g Grid) ItemRect(p layout.Placement, width, height int) Rect {
	return g.CellRect(p).Anchor(width, height, p.Sticky)
}

func spanRange(spans []Span, start, n int) (int, int) {
	if len(spans) == 0 {
		return 0, 0
	}
	first := min(max(start, 0), len(spans)-1)
	last := min(max(start+n-1, 0), len(spans)-1)
	if start >= len(spans) {
		end := spans[len(spans)-1].End()
		return end, end
	}
	return spans[first].Offset, spans[last].End()
}
