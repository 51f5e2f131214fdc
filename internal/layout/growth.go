package layout

// SelectGrowthMode picks how a smart grid grows from what was declared up
// front. columnsGiven reports whether column specs were supplied at all;
// rows is the number of declared rows.
func SelectGrowthMode(columnsGiven bool, rows int) GrowthMode {
	switch {
	case !columnsGiven && rows == 1:
		return GrowColumnsOnly
	case !columnsGiven && rows == 0:
		return GrowSingleColumn
	case rows > 1:
		return GrowRows
	default:
		return GrowFixedColumns
	}
}

// initSmartGrid sets up a smart grid: the growth mode decides the initial
// columns and how the cursor wraps.
//
//	fixed-columns  declared columns, rows appended on wrap
//	single-column  one weight-1 column, one row per item
//	columns-only   one declared row, columns appended per item
//	rows           declared rows and columns (at least one), rows appended on wrap
func (c *Container) initSmartGrid() {
	c.growth = SelectGrowthMode(c.cfg.Columns != nil, len(c.cfg.Rows))
	c.cols = NewTrackSet(c.cfg.Columns...)
	c.rows = NewTrackSet(c.cfg.Rows...)
	c.gaps = NewGapResolver(GapSplit, c.cfg.Gap)
	c.growSpec = [2]TrackSpec{
		Rows:    growSpecFrom(c.cfg.Rows, Auto()),
		Columns: growSpecFrom(c.cfg.Columns, Weight(1)),
	}

	if c.growth == GrowColumnsOnly {
		c.cursor = NewCursor(FlowSingleLine)
	} else {
		c.cols.EnsureLength(1, c.growSpec[Columns])
		c.cursor = NewCursor(FlowRow)
		// The wrap point stays put when explicit or over-wide items append columns.
		c.bounds = Bounds{Cols: c.cols.Len()}
	}
	c.applyExpand(Columns, 0, c.cols.Len())
	c.applyExpand(Rows, 0, c.rows.Len())
}

// growSpecFrom returns the spec appended tracks inherit: the first declared
// spec when it is weighted, def otherwise.
func growSpecFrom(declared []TrackSpec, def TrackSpec) TrackSpec {
	if len(declared) > 0 && declared[0].IsWeighted() {
		return declared[0]
	}
	return def
}
