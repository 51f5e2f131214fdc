package layout

import "go.uber.org/zap"

func (c *Container) initGrid() {
	c.cols = NewTrackSet(c.cfg.Columns...)
	c.rows = NewTrackSet(c.cfg.Rows...)
	c.bounds = Bounds{Rows: len(c.cfg.Rows), Cols: len(c.cfg.Columns)}
	c.gaps = NewGapResolver(GapLeading, c.cfg.Gap)
	c.growSpec = [2]TrackSpec{Rows: Auto(), Columns: Auto()}
	c.applyExpand(Columns, 0, c.cols.Len())
	c.applyExpand(Rows, 0, c.rows.Len())
}

// resolveGrid places one item in a grid or smart grid container. The cells
// are reserved before the placement is returned, so the next resolve sees
// them even if the host has not mounted this item yet.
func (c *Container) resolveGrid(in Intent, id int) Result {
	rowSpan, colSpan := in.Spans()
	cell := c.gridCell(in, rowSpan, colSpan)
	c.occ.Reserve(cell.Row, cell.Col, rowSpan, colSpan)

	rowsBefore, colsBefore := c.rows.Len(), c.cols.Len()
	changed := mergeChanged(
		c.grow(Rows, cell.Row+rowSpan),
		c.grow(Columns, cell.Col+colSpan),
	)
	c.applyExpand(Rows, min(cell.Row, rowsBefore), cell.Row+rowSpan)
	c.applyExpand(Columns, min(cell.Col, colsBefore), cell.Col+colSpan)

	padX, padY, trimmed := c.gaps.Resolve(cell, rowSpan, colSpan, c.rows.Len(), c.cols.Len(),
		in.margin(), in.padX(), in.padY())
	it := &item{
		intent:  in,
		trimmed: trimmed,
		placement: Placement{
			ID:        id,
			Row:       cell.Row,
			Col:       cell.Col,
			RowSpan:   rowSpan,
			ColSpan:   colSpan,
			Sticky:    c.sticky(in),
			PadX:      padX,
			PadY:      padY,
			Direction: c.cfg.Direction,
		},
	}
	c.items = append(c.items, it)
	return Result{Placement: it.placement, Changed: changed}
}

// gridCell picks the anchor cell. Explicit coordinates bypass the cursor and
// may overlap earlier items; a single explicit coordinate overrides that half
// of the cursor's choice.
func (c *Container) gridCell(in Intent, rowSpan, colSpan int) Cell {
	if in.Row != nil && in.Col != nil {
		cell := Cell{Row: *in.Row, Col: *in.Col}
		if !c.occ.Free(cell.Row, cell.Col, rowSpan, colSpan) {
			c.log.Debug("explicit placement overlaps reserved cells",
				zap.Int("row", cell.Row), zap.Int("col", cell.Col),
				zap.Int("row_span", rowSpan), zap.Int("col_span", colSpan))
		}
		return cell
	}
	cell := c.cursor.Next(c.occ, rowSpan, colSpan, in.Offset, c.bounds)
	if in.Row != nil {
		cell.Row = *in.Row
	}
	if in.Col != nil {
		cell.Col = *in.Col
	}
	return cell
}

// grow extends axis to need tracks. When the axis already has tracks, its
// last track becomes interior and items ending there get their trailing gap
// share back first.
func (c *Container) grow(axis Axis, need int) []Placement {
	ts := c.tracks(axis)
	if need <= ts.Len() {
		return nil
	}
	var changed []Placement
	if ts.Len() > 0 {
		changed = c.gaps.PromoteToInterior(c.items, axis, ts.Len()-1)
		if len(changed) > 0 {
			c.log.Debug("promoted track to interior",
				zap.Stringer("axis", axis), zap.Int("track", ts.Len()-1), zap.Int("items", len(changed)))
		}
	}
	added := ts.EnsureLength(need, c.growSpec[axis])
	c.log.Debug("grew tracks", zap.Stringer("axis", axis), zap.Int("added", added), zap.Int("len", ts.Len()))
	return changed
}

// applyExpand sets the container's expand weight on tracks [from, to) of
// axis, if one is configured.
func (c *Container) applyExpand(axis Axis, from, to int) {
	w := c.cfg.Expand.Rows
	if axis == Columns {
		w = c.cfg.Expand.Columns
	}
	if w == nil {
		return
	}
	ts := c.tracks(axis)
	for i := from; i < to; i++ {
		ts.SetWeight(i, *w)
	}
}
