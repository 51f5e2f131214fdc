package layout

func (c *Container) resolveStack(in Intent, id int) Result {
	c.items = append(c.items, &item{intent: in, placement: Placement{ID: id}})
	changed := c.relayoutStack(id)
	return Result{Placement: c.items[len(c.items)-1].placement, Changed: changed}
}

// relayoutStack re-derives every stack placement and the track weights. It
// returns the placements that moved, leaving out item fresh.
func (c *Container) relayoutStack(fresh int) []Placement {
	c.redistributeStack()
	var changed []Placement
	for i, it := range c.items {
		p := c.stackPlacement(it, i)
		if p != it.placement && p.ID != fresh {
			changed = append(changed, p)
		}
		it.placement = p
	}
	return changed
}

// redistributeStack gives each expanding item's main track weight 1. The
// single cross track fills whenever the stack holds anything.
func (c *Container) redistributeStack() {
	main, cross := c.mainTracks(), c.crossTracks()
	main.EnsureLength(len(c.items), Auto())
	main.resetWeights()
	for i, it := range c.items {
		if c.stackExpand(it.intent) {
			main.tracks[i].Weight = 1
		}
	}
	cross.EnsureLength(1, Auto())
	cross.resetWeights()
	if len(c.items) > 0 {
		cross.tracks[0].Weight = 1
	}
}

func (c *Container) stackExpand(in Intent) bool {
	if in.Expand != nil {
		return *in.Expand
	}
	return c.cfg.ExpandItems
}

// stackSide is the edge items pack against.
func stackSide(d Direction) Side {
	switch d {
	case RowReverse:
		return SideRight
	case Column:
		return SideTop
	case ColumnReverse:
		return SideBottom
	default:
		return SideLeft
	}
}

// stackPlacement puts item i on main track i. Every item but the first is
// separated from its predecessor by the main gap, on the side facing it.
func (c *Container) stackPlacement(it *item, i int) Placement {
	dir := c.cfg.Direction
	var gap Pad
	if i > 0 {
		if dir.IsReverse() {
			gap.After = c.mainGap()
		} else {
			gap.Before = c.mainGap()
		}
	}
	margin := it.intent.margin()
	p := Placement{
		ID:        it.placement.ID,
		RowSpan:   1,
		ColSpan:   1,
		Sticky:    c.sticky(it.intent),
		PadX:      margin.X().Add(it.intent.padX()),
		PadY:      margin.Y().Add(it.intent.padY()),
		Direction: dir,
		Side:      stackSide(dir),
		Expand:    c.stackExpand(it.intent),
	}
	if dir.IsRow() {
		p.Col = i
		p.PadX = p.PadX.Add(gap)
	} else {
		p.Row = i
		p.PadY = p.PadY.Add(gap)
	}
	return p
}
