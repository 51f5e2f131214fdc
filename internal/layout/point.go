package layout

// Cell is a (row, column) position in a container's grid.
type Cell struct {
	Row, Col int
}

// Span returns every cell covered by a rowSpan x colSpan block anchored at c,
// in row-major order.
func (c Cell) Span(rowSpan, colSpan int) []Cell {
	cells := make([]Cell, 0, rowSpan*colSpan)
	for dr := 0; dr < rowSpan; dr++ {
		for dc := 0; dc < colSpan; dc++ {
			cells = append(cells, Cell{Row: c.Row + dr, Col: c.Col + dc})
		}
	}
	return cells
}
