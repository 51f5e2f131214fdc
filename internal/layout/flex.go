package layout

// CrossBands is the number of cross-axis tracks a flex container owns. Items
// sit in the middle band; the outer bands absorb free space.
const CrossBands = 3

// MainIndex returns the main-axis track of flex item i out of n. Items
// occupy the odd tracks of a 2n+1 sequence and spacers the even ones.
// Reversal mirrors the order, so every index moves when n changes.
func MainIndex(i, n int, reverse bool) int {
	if reverse {
		return 2*(n-1-i) + 1
	}
	return 2*i + 1
}

// DistributeMain rebuilds the main-axis weights for items with the given
// growth weights (in attach order) under a justify mode. Interior spacers
// keep gap as their minimum size; every other track is cleared first so
// tracks left over from removed items stop growing.
//
//	mode           item tracks     spacer tracks
//	stretch        item weights    0
//	start          0               last = 1
//	end            0               first = 1
//	center         0               first = last = 1
//	space-between  0               interior = 1
//	space-around   0               all = 1
func DistributeMain(ts *TrackSet, justify Content, gap int, weights []int, reverse bool) {
	for i := range ts.tracks {
		ts.tracks[i].Weight = 0
		ts.tracks[i].MinSize = 0
	}
	n := len(weights)
	if n == 0 {
		return
	}
	total := 2*n + 1
	ts.EnsureLength(total, Auto())
	for k := 2; k < total-1; k += 2 {
		ts.tracks[k].MinSize = gap
	}

	first, last := 0, total-1
	switch justify {
	case ContentStretch:
		for i, w := range weights {
			ts.tracks[MainIndex(i, n, reverse)].Weight = w
		}
	case ContentEnd:
		ts.tracks[first].Weight = 1
	case ContentCenter:
		ts.tracks[first].Weight = 1
		ts.tracks[last].Weight = 1
	case ContentSpaceBetween:
		for k := 2; k < total-1; k += 2 {
			ts.tracks[k].Weight = 1
		}
	case ContentSpaceAround:
		for k := 0; k < total; k += 2 {
			ts.tracks[k].Weight = 1
		}
	default:
		ts.tracks[last].Weight = 1
	}
}

// DistributeCross sets the weights of the three cross bands.
//
//	mode                            band 0  band 1  band 2
//	start                           0       0       1
//	end                             1       0       0
//	center, space-between/-around   1       0       1
//	stretch                         0       1       0
func DistributeCross(ts *TrackSet, align Content) {
	ts.EnsureLength(CrossBands, Auto())
	for b := range CrossBands {
		ts.tracks[b].Weight = 0
	}
	switch align {
	case ContentEnd:
		ts.tracks[0].Weight = 1
	case ContentCenter, ContentSpaceBetween, ContentSpaceAround:
		ts.tracks[0].Weight = 1
		ts.tracks[2].Weight = 1
	case ContentStretch:
		ts.tracks[1].Weight = 1
	default:
		ts.tracks[2].Weight = 1
	}
}

func (c *Container) initFlex() {
	c.rows, c.cols = NewTrackSet(), NewTrackSet()
	c.crossTracks().EnsureLength(CrossBands, Auto())
}

func (c *Container) mainTracks() *TrackSet {
	if c.cfg.Direction.IsRow() {
		return c.cols
	}
	return c.rows
}

func (c *Container) crossTracks() *TrackSet {
	if c.cfg.Direction.IsRow() {
		return c.rows
	}
	return c.cols
}

func (c *Container) mainGap() int {
	if c.cfg.Direction.IsRow() {
		return c.cfg.Gap.Column
	}
	return c.cfg.Gap.Row
}

func (c *Container) resolveFlex(in Intent, id int) Result {
	c.items = append(c.items, &item{intent: in, placement: Placement{ID: id}})
	changed := c.relayoutFlex(id)
	return Result{Placement: c.items[len(c.items)-1].placement, Changed: changed}
}

// relayoutFlex re-derives every flex placement and the track weights. It
// returns the placements that moved, leaving out item fresh.
func (c *Container) relayoutFlex(fresh int) []Placement {
	c.redistributeFlex()
	n := len(c.items)
	var changed []Placement
	for i, it := range c.items {
		p := c.flexPlacement(it, i, n)
		if p != it.placement && p.ID != fresh {
			changed = append(changed, p)
		}
		it.placement = p
	}
	return changed
}

func (c *Container) redistributeFlex() {
	weights := make([]int, len(c.items))
	for i, it := range c.items {
		weights[i] = it.intent.weight()
	}
	DistributeMain(c.mainTracks(), c.cfg.justifyContent(), c.mainGap(), weights, c.cfg.Direction.IsReverse())
	if len(weights) == 0 {
		c.crossTracks().resetWeights()
		return
	}
	DistributeCross(c.crossTracks(), c.cfg.alignContent())
}

func (c *Container) flexPlacement(it *item, i, n int) Placement {
	main := MainIndex(i, n, c.cfg.Direction.IsReverse())
	row, col := 1, main
	if !c.cfg.Direction.IsRow() {
		row, col = main, 1
	}
	margin := it.intent.margin()
	return Placement{
		ID:        it.placement.ID,
		Row:       row,
		Col:       col,
		RowSpan:   1,
		ColSpan:   1,
		Sticky:    c.sticky(it.intent),
		PadX:      margin.X().Add(it.intent.padX()),
		PadY:      margin.Y().Add(it.intent.padY()),
		Direction: c.cfg.Direction,
	}
}
