package layout

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func flexConfig(dir Direction) Config {
	cfg := DefaultConfig(FlavorFlex)
	cfg.Direction = dir
	return cfg
}

func TestMainIndex(t *testing.T) {
	type tc struct {
		n       int
		reverse bool
		want    []int
	}

	tests := map[string]tc{
		"forward single":  {n: 1, want: []int{1}},
		"forward three":   {n: 3, want: []int{1, 3, 5}},
		"reverse single":  {n: 1, reverse: true, want: []int{1}},
		"reverse three":   {n: 3, reverse: true, want: []int{5, 3, 1}},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := make([]int, tt.n)
			for i := range got {
				got[i] = MainIndex(i, tt.n, tt.reverse)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDistributeMain(t *testing.T) {
	type tc struct {
		justify Content
		want    []int
	}

	tests := map[string]tc{
		"start":         {justify: ContentStart, want: []int{0, 0, 0, 0, 1}},
		"end":           {justify: ContentEnd, want: []int{1, 0, 0, 0, 0}},
		"center":        {justify: ContentCenter, want: []int{1, 0, 0, 0, 1}},
		"space-between": {justify: ContentSpaceBetween, want: []int{0, 0, 1, 0, 0}},
		"space-around":  {justify: ContentSpaceAround, want: []int{1, 0, 1, 0, 1}},
		"stretch":       {justify: ContentStretch, want: []int{0, 1, 0, 1, 0}},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			ts := NewTrackSet()
			DistributeMain(ts, tt.justify, 6, []int{1, 1}, false)
			assert.Equal(t, tt.want, ts.Weights())
			assert.Equal(t, []int{0, 0, 6, 0, 0}, ts.MinSizes(), "only interior spacers carry the gap")
		})
	}
}

func TestDistributeMain_ClearsLeftoverTracks(t *testing.T) {
	ts := NewTrackSet()
	DistributeMain(ts, ContentStretch, 4, []int{1, 1, 1}, false)
	DistributeMain(ts, ContentStretch, 4, []int{1}, false)

	assert.Equal(t, []int{0, 1, 0, 0, 0, 0, 0}, ts.Weights())
	assert.Equal(t, []int{0, 0, 0, 0, 0, 0, 0}, ts.MinSizes())
}

func TestDistributeCross(t *testing.T) {
	type tc struct {
		align Content
		want  []int
	}

	tests := map[string]tc{
		"start":         {align: ContentStart, want: []int{0, 0, 1}},
		"end":           {align: ContentEnd, want: []int{1, 0, 0}},
		"center":        {align: ContentCenter, want: []int{1, 0, 1}},
		"space-between": {align: ContentSpaceBetween, want: []int{1, 0, 1}},
		"stretch":       {align: ContentStretch, want: []int{0, 1, 0}},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			ts := NewTrackSet()
			DistributeCross(ts, tt.align)
			assert.Equal(t, tt.want, ts.Weights())
		})
	}
}

func TestFlex_StretchWeights(t *testing.T) {
	cfg := flexConfig(Row)
	cfg.JustifyContent = Ptr(ContentStretch)
	cfg.Gap = Uniform(6)
	c := newTestContainer(t, cfg)

	results := resolveAll(t, c, Intent{Weight: Ptr(1)}, Intent{Weight: Ptr(0)}, Intent{Weight: Ptr(2)})

	cols := c.Tracks(Columns)
	require.Len(t, cols, 7)
	for i, want := range []int{1, 0, 2} {
		assert.Equal(t, 2*i+1, results[i].Placement.Col)
		assert.Equal(t, 1, results[i].Placement.Row)
		assert.Equal(t, want, cols[2*i+1].Weight, "item track %d", 2*i+1)
	}
	for _, k := range []int{0, 2, 4, 6} {
		assert.Zero(t, cols[k].Weight, "spacer track %d", k)
	}
	assert.Equal(t, []int{0, 0, 1}, weights(c.Tracks(Rows)), "default align-content is start")
}

func TestFlex_StretchWeightLaw(t *testing.T) {
	cfg := flexConfig(Column)
	cfg.JustifyContent = Ptr(ContentStretch)
	c := newTestContainer(t, cfg)

	declared := []int{3, 0, 1, 2, 5}
	intents := make([]Intent, 0, len(declared)+1)
	for _, w := range declared {
		intents = append(intents, Intent{Weight: Ptr(w)})
	}
	intents = append(intents, Intent{}) // default weight 1
	resolveAll(t, c, intents...)

	itemSum, spacerSum := 0, 0
	for i, tr := range c.Tracks(Rows) {
		if i%2 == 1 {
			itemSum += tr.Weight
		} else {
			spacerSum += tr.Weight
		}
	}
	assert.Equal(t, 3+0+1+2+5+1, itemSum)
	assert.Zero(t, spacerSum)
}

func TestFlex_ReverseReindexesEarlierItems(t *testing.T) {
	c := newTestContainer(t, flexConfig(RowReverse))

	first, err := c.Resolve(Intent{})
	require.NoError(t, err)
	assert.Equal(t, 1, first.Placement.Col)
	assert.Empty(t, first.Changed)

	second, err := c.Resolve(Intent{})
	require.NoError(t, err)
	assert.Equal(t, 1, second.Placement.Col)
	require.Len(t, second.Changed, 1)
	assert.Equal(t, first.Placement.ID, second.Changed[0].ID)
	assert.Equal(t, 3, second.Changed[0].Col)
}

func TestFlex_ForwardKeepsEarlierItems(t *testing.T) {
	c := newTestContainer(t, flexConfig(Row))
	results := resolveN(t, c, 3)
	for _, r := range results {
		assert.Empty(t, r.Changed)
	}
}

func TestFlex_ColumnDirection(t *testing.T) {
	cfg := flexConfig(Column)
	cfg.AlignContent = Ptr(ContentStretch)
	cfg.Gap = Gap{Column: 2, Row: 9}
	c := newTestContainer(t, cfg)
	results := resolveN(t, c, 2)

	assert.Equal(t, Cell{Row: 1, Col: 1}, results[0].Placement.Cell())
	assert.Equal(t, Cell{Row: 3, Col: 1}, results[1].Placement.Cell())
	assert.Equal(t, []int{0, 1, 0}, weights(c.Tracks(Columns)))
	assert.Equal(t, []int{0, 0, 9, 0, 0}, c.rows.MinSizes())
}

func TestFlex_EmptyContainer(t *testing.T) {
	cfg := flexConfig(Column)
	cfg.AlignContent = Ptr(ContentCenter)
	c := newTestContainer(t, cfg)

	c.Redistribute()
	assert.Equal(t, []int{0, 0, 0}, weights(c.Tracks(Columns)))
	assert.Empty(t, c.Tracks(Rows))

	res := resolveN(t, c, 1)
	assert.Equal(t, []int{1, 0, 1}, weights(c.Tracks(Columns)))

	_, err := c.Remove(res[0].Placement.ID)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 0, 0}, weights(c.Tracks(Columns)))
	assert.Equal(t, []int{0, 0, 0}, weights(c.Tracks(Rows)))
}

func TestFlex_RemoveShiftsLaterItems(t *testing.T) {
	c := newTestContainer(t, flexConfig(Row))
	results := resolveN(t, c, 3)

	changed, err := c.Remove(results[1].Placement.ID)
	require.NoError(t, err)
	require.Len(t, changed, 1)
	assert.Equal(t, results[2].Placement.ID, changed[0].ID)
	assert.Equal(t, 3, changed[0].Col)
	assert.Equal(t, 2, c.Len())
}

func TestFlex_Sticky(t *testing.T) {
	type tc struct {
		dir     Direction
		justify *Content
		align   *Content
		in      Intent
		want    string
	}

	tests := map[string]tc{
		"defaults fill the cell":  {dir: Row, want: "nsew"},
		"justify center":          {dir: Row, justify: Ptr(ContentCenter), align: Ptr(ContentStart), want: "n"},
		"reverse start is east":   {dir: RowReverse, justify: Ptr(ContentStart), want: "nse"},
		"column justify end":      {dir: Column, justify: Ptr(ContentEnd), align: Ptr(ContentCenter), want: "s"},
		"space modes stretch":     {dir: Row, justify: Ptr(ContentSpaceBetween), align: Ptr(ContentEnd), want: "sew"},
		"self beats content":      {dir: Row, justify: Ptr(ContentEnd), in: Intent{JustifySelf: Ptr(AlignStart)}, want: "nsw"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			cfg := flexConfig(tt.dir)
			cfg.JustifyContent, cfg.AlignContent = tt.justify, tt.align
			c := newTestContainer(t, cfg)
			res := resolveAll(t, c, tt.in)
			assert.Equal(t, tt.want, res[0].Placement.Sticky.String())
		})
	}
}

func TestFlex_RedistributeIsIdempotent(t *testing.T) {
	cfg := flexConfig(Row)
	cfg.JustifyContent = Ptr(ContentSpaceAround)
	cfg.AlignContent = Ptr(ContentEnd)
	c := newTestContainer(t, cfg)
	resolveN(t, c, 4)

	before := [][]Track{c.Tracks(Rows), c.Tracks(Columns)}
	c.Redistribute()
	c.Redistribute()
	after := [][]Track{c.Tracks(Rows), c.Tracks(Columns)}
	if diff := cmp.Diff(before, after); diff != "" {
		t.Errorf("Redistribute changed tracks (-before +after):\n%s", diff)
	}
}

func TestFlex_MarginBecomesPadding(t *testing.T) {
	c := newTestContainer(t, flexConfig(Row))
	res := resolveAll(t, c, Intent{Margin: Ptr(EdgeSymmetric(3, 5)), PadY: &Pad{After: 1}})

	assert.Equal(t, Pad{5, 5}, res[0].Placement.PadX)
	assert.Equal(t, Pad{3, 4}, res[0].Placement.PadY)
	assert.Equal(t, Pad{5, 5}, res[0].Placement.PadMain())
}
