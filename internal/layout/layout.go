package layout

// Placement is the resolved position of one item: everything a host needs
// to issue its native grid call.
type Placement struct {
	// ID identifies the item within its container. IDs are issued in attach
	// order starting at 0 and are never reused.
	ID int

	Row, Col         int
	RowSpan, ColSpan int

	// Sticky is the set of cell edges the item is anchored to.
	Sticky Sticky

	// PadX and PadY are the external (left, right) and (top, bottom)
	// padding: gap shares plus margin plus explicit padding.
	PadX Pad
	PadY Pad

	// Direction is the container's direction; it decides which of PadX and
	// PadY is the main axis.
	Direction Direction

	// Side and Expand are only set by stack containers.
	Side   Side
	Expand bool
}

// Cell returns the anchor cell.
func (p Placement) Cell() Cell {
	return Cell{Row: p.Row, Col: p.Col}
}

// Cells returns every cell the placement covers.
func (p Placement) Cells() []Cell {
	return p.Cell().Span(p.RowSpan, p.ColSpan)
}

// PadMain returns the padding on the main axis.
func (p Placement) PadMain() Pad {
	if p.Direction.IsRow() {
		return p.PadX
	}
	return p.PadY
}

// PadCross returns the padding on the cross axis.
func (p Placement) PadCross() Pad {
	if p.Direction.IsRow() {
		return p.PadY
	}
	return p.PadX
}

// Result is what one resolve call hands back to the host.
type Result struct {
	// Placement is the newly attached item.
	Placement Placement

	// Changed lists earlier items whose placement this call altered: items
	// re-indexed by a reversed flex direction, or items whose trailing gap was
	// restored when the grid grew past them. The host must re-apply them.
	Changed []Placement
}
