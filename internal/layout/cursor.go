package layout

// Bounds limits auto-placement. A zero count leaves that axis unbounded.
type Bounds struct {
	Rows, Cols int
}

// Cursor drives auto-placement for one container.
// Sparse flows remember where the previous item ended and never move
// backwards; dense flows rescan from (0,0) for every item.
type Cursor struct {
	flow AutoFlow
	next Cell
}

// NewCursor creates a cursor at (0,0) for the given flow.
func NewCursor(flow AutoFlow) *Cursor {
	return &Cursor{flow: flow}
}

// Flow returns the cursor's placement policy.
func (c *Cursor) Flow() AutoFlow {
	return c.flow
}

// Position returns the cell the next sparse placement starts scanning from.
func (c *Cursor) Position() Cell {
	return c.next
}

// Next picks the cell for a rowSpan x colSpan item and advances the cursor.
// It does not reserve the cells; the caller does that before mounting.
//
// offset skips that many tracks along the flow direction before the item.
func (c *Cursor) Next(occ *Occupancy, rowSpan, colSpan, offset int, b Bounds) Cell {
	switch c.flow {
	case FlowRow:
		cell := sparse(occ, c.next.Row, c.next.Col, rowSpan, colSpan, offset, b.Cols)
		c.next = Cell{Row: cell.Row, Col: cell.Col + colSpan}
		return cell
	case FlowColumn:
		t := sparse(transposed{occ}, c.next.Col, c.next.Row, colSpan, rowSpan, offset, b.Rows)
		cell := Cell{Row: t.Col, Col: t.Row}
		c.next = Cell{Row: cell.Row + rowSpan, Col: cell.Col}
		return cell
	case FlowDenseRow:
		return dense(occ, rowSpan, colSpan, offset, b.Cols)
	case FlowDenseColumn:
		t := dense(transposed{occ}, colSpan, rowSpan, offset, b.Rows)
		return Cell{Row: t.Col, Col: t.Row}
	case FlowSingleLine:
		col := c.next.Col + offset
		for !occ.Free(0, col, rowSpan, colSpan) {
			col++
		}
		c.next = Cell{Row: 0, Col: col + colSpan}
		return Cell{Row: 0, Col: col}
	default:
		return Cell{Row: 0, Col: offset}
	}
}

// freeChecker lets the row-major scans run over a transposed index.
type freeChecker interface {
	Free(row, col, rowSpan, colSpan int) bool
}

type transposed struct {
	occ *Occupancy
}

func (t transposed) Free(row, col, rowSpan, colSpan int) bool {
	return t.occ.Free(col, row, colSpan, rowSpan)
}

// sparse scans row-major from (row, start), never revisiting earlier cells.
// The wrap happens before placing: an item that would cross cols moves to
// the next row. An item wider than cols is placed at the start of a row.
func sparse(occ freeChecker, row, start, rowSpan, colSpan, offset, cols int) Cell {
	for {
		col := start + offset
		if cols > 0 && col+colSpan > cols && start > 0 {
			row++
			start = 0
			continue
		}
		if occ.Free(row, col, rowSpan, colSpan) {
			return Cell{Row: row, Col: col}
		}
		start++
	}
}

// dense returns the first free position in row-major order from (0,0).
// With cols unbounded every position lies on row 0. The scan always ends
// because rows and columns past the last reservation are free.
func dense(occ freeChecker, rowSpan, colSpan, offset, cols int) Cell {
	if cols <= 0 {
		for col := 0; ; col++ {
			if occ.Free(0, col+offset, rowSpan, colSpan) {
				return Cell{Row: 0, Col: col + offset}
			}
		}
	}
	last := max(0, cols-colSpan-offset)
	for row := 0; ; row++ {
		for col := 0; col <= last; col++ {
			if occ.Free(row, col+offset, rowSpan, colSpan) {
				return Cell{Row: row, Col: col + offset}
			}
		}
	}
}
