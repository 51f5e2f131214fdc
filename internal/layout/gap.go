package layout

// GapMode selects how a uniform gap turns into per-cell padding.
type GapMode uint8

const (
	// GapSplit halves the gap between neighbours (before = gap/2, after = the
	// rest) and trims the shares that face the container's outer edges.
	GapSplit GapMode = iota
	// GapLeading puts the whole gap before every track except the first.
	GapLeading
)

// GapResolver renders a container's gap as cell padding.
type GapResolver struct {
	mode GapMode
	gap  Gap
}

// NewGapResolver creates a resolver for the given mode and gap.
func NewGapResolver(mode GapMode, gap Gap) GapResolver {
	return GapResolver{mode: mode, gap: gap}
}

// AxisPad returns the gap padding for a span starting at track index and
// covering span tracks, out of count tracks on that axis. trimmed reports
// that a trailing share was withheld because the span touches the last
// track; PromoteToInterior gives it back once the axis grows.
//
// count must be the track count after any growth caused by this span.
func (g GapResolver) AxisPad(axis Axis, index, span, count int) (pad Pad, trimmed bool) {
	gap := g.gap.On(axis)
	switch g.mode {
	case GapLeading:
		if index > 0 {
			pad.Before = gap
		}
		return pad, false
	default:
		pad.Before = gap / 2
		pad.After = gap - pad.Before
		if index == 0 {
			pad.Before = 0
		}
		if index+span >= count && pad.After > 0 {
			pad.After = 0
			trimmed = true
		}
		return pad, trimmed
	}
}

// Interior returns the trailing share a track receives once it stops being
// the last one on its axis.
func (g GapResolver) Interior(axis Axis) int {
	if g.mode == GapLeading {
		return 0
	}
	gap := g.gap.On(axis)
	return gap - gap/2
}

// Resolve computes the full padding of a cell: the gap shares on both axes,
// plus the item's margin, plus any explicit padding. Margin and explicit
// padding are added to the gap shares, never substituted for them.
func (g GapResolver) Resolve(cell Cell, rowSpan, colSpan, rowCount, colCount int, margin Edges, padX, padY Pad) (x, y Pad, trimmed [2]bool) {
	x, trimmed[Columns] = g.AxisPad(Columns, cell.Col, colSpan, colCount)
	y, trimmed[Rows] = g.AxisPad(Rows, cell.Row, rowSpan, rowCount)
	x = x.Add(margin.X()).Add(padX)
	y = y.Add(margin.Y()).Add(padY)
	return x, y, trimmed
}

// PromoteToInterior turns track into an interior track on axis: every item
// whose span ends there and whose trailing share was trimmed gets that share
// back. It returns the updated placements.
func (g GapResolver) PromoteToInterior(items []*item, axis Axis, track int) []Placement {
	share := g.Interior(axis)
	if share == 0 {
		return nil
	}
	var changed []Placement
	for _, it := range items {
		if !it.trimmed[axis] || it.lastTrack(axis) != track {
			continue
		}
		if axis == Columns {
			it.placement.PadX.After += share
		} else {
			it.placement.PadY.After += share
		}
		it.trimmed[axis] = false
		changed = append(changed, it.placement)
	}
	return changed
}
