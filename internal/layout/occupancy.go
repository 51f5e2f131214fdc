package layout

// Occupancy is the set of cells reserved by placed items.
// Cells are reference counted so that releasing one of two overlapping
// explicit placements leaves the other's reservation intact.
type Occupancy struct {
	cells map[Cell]int
}

// NewOccupancy creates an empty index.
func NewOccupancy() *Occupancy {
	return &Occupancy{cells: make(map[Cell]int)}
}

// Free reports whether every cell of the span is unreserved.
func (o *Occupancy) Free(row, col, rowSpan, colSpan int) bool {
	for dr := 0; dr < rowSpan; dr++ {
		for dc := 0; dc < colSpan; dc++ {
			if o.cells[Cell{Row: row + dr, Col: col + dc}] > 0 {
				return false
			}
		}
	}
	return true
}

// Reserve marks every cell of the span as taken. It does not check for
// collisions; call Free first when they matter.
func (o *Occupancy) Reserve(row, col, rowSpan, colSpan int) {
	for dr := 0; dr < rowSpan; dr++ {
		for dc := 0; dc < colSpan; dc++ {
			o.cells[Cell{Row: row + dr, Col: col + dc}]++
		}
	}
}

// Release undoes one Reserve of the same span.
func (o *Occupancy) Release(row, col, rowSpan, colSpan int) {
	for dr := 0; dr < rowSpan; dr++ {
		for dc := 0; dc < colSpan; dc++ {
			c := Cell{Row: row + dr, Col: col + dc}
			if o.cells[c] <= 1 {
				delete(o.cells, c)
			} else {
				o.cells[c]--
			}
		}
	}
}

// Contains reports whether c is reserved.
func (o *Occupancy) Contains(c Cell) bool {
	return o.cells[c] > 0
}

// Len returns the number of distinct reserved cells.
func (o *Occupancy) Len() int {
	return len(o.cells)
}

// Extent returns one past the largest reserved row and column.
func (o *Occupancy) Extent() (rows, cols int) {
	for c := range o.cells {
		rows = max(rows, c.Row+1)
		cols = max(cols, c.Col+1)
	}
	return rows, cols
}
