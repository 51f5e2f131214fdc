package layout

import (
	"slices"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Expand is a uniform weight override for a container's own tracks. A
// non-nil value replaces the weight of every declared track, every appended
// track, and every track an item spans.
type Expand struct {
	Columns *int
	Rows    *int
}

// Config is the construction-time configuration of a container.
type Config struct {
	Flavor    Flavor
	Direction Direction
	Gap       Gap

	// JustifyContent and AlignContent distribute free space on the main and
	// cross axis (flex) and are the last per-item alignment fallback before
	// stretch. nil means start for distribution and no per-item fallback.
	JustifyContent *Content
	AlignContent   *Content

	// JustifyItems and AlignItems are per-item alignment defaults.
	JustifyItems *Align
	AlignItems   *Align

	// Columns and Rows declare tracks up front. nil means "not supplied",
	// which matters to the smart grid's growth mode.
	Columns []TrackSpec
	Rows    []TrackSpec

	// AutoFlow is the grid flavor's auto-placement policy.
	AutoFlow AutoFlow

	Expand Expand

	// StickyItems is used by items that declare no sticky of their own.
	StickyItems *Sticky

	// ExpandItems is the stack flavor's default for items that don't set Expand.
	ExpandItems bool
}

// DefaultConfig returns the defaults for a flavor.
func DefaultConfig(f Flavor) Config {
	return Config{
		Flavor:    f,
		Direction: defaultDirection(f),
		AutoFlow:  FlowRow,
	}
}

func defaultDirection(f Flavor) Direction {
	if f == FlavorStack {
		return Column
	}
	return Row
}

func (cfg Config) justifyContent() Content {
	if cfg.JustifyContent == nil {
		return ContentStart
	}
	return *cfg.JustifyContent
}

func (cfg Config) alignContent() Content {
	if cfg.AlignContent == nil {
		return ContentStart
	}
	return *cfg.AlignContent
}

// Validate reports the first inconsistency in cfg as a *ConfigError.
func (cfg Config) Validate() error {
	switch {
	case !enumValid(flavorNames, uint8(cfg.Flavor)):
		return &ConfigError{Field: "flavor", Value: uint8(cfg.Flavor), Reason: "unknown flavor"}
	case !enumValid(directionNames, uint8(cfg.Direction)):
		return &ConfigError{Field: "direction", Value: uint8(cfg.Direction), Reason: "unknown direction"}
	case !enumValid(autoFlowNames, uint8(cfg.AutoFlow)):
		return &ConfigError{Field: "auto_flow", Value: uint8(cfg.AutoFlow), Reason: "unknown auto-flow"}
	case cfg.Gap.Column < 0 || cfg.Gap.Row < 0:
		return &ConfigError{Field: "gap", Value: cfg.Gap, Reason: "must be >= 0"}
	case cfg.JustifyContent != nil && !enumValid(contentNames, uint8(*cfg.JustifyContent)):
		return &ConfigError{Field: "justify_content", Value: uint8(*cfg.JustifyContent), Reason: "unknown mode"}
	case cfg.AlignContent != nil && !enumValid(contentNames, uint8(*cfg.AlignContent)):
		return &ConfigError{Field: "align_content", Value: uint8(*cfg.AlignContent), Reason: "unknown mode"}
	case cfg.JustifyItems != nil && !enumValid(alignNames, uint8(*cfg.JustifyItems)):
		return &ConfigError{Field: "justify_items", Value: uint8(*cfg.JustifyItems), Reason: "unknown alignment"}
	case cfg.AlignItems != nil && !enumValid(alignNames, uint8(*cfg.AlignItems)):
		return &ConfigError{Field: "align_items", Value: uint8(*cfg.AlignItems), Reason: "unknown alignment"}
	case cfg.StickyItems != nil && *cfg.StickyItems > StickyAll:
		return &ConfigError{Field: "sticky_items", Value: uint8(*cfg.StickyItems), Reason: "unknown edge flags"}
	case cfg.Expand.Columns != nil && *cfg.Expand.Columns < 0:
		return &ConfigError{Field: "expand.columns", Value: *cfg.Expand.Columns, Reason: "must be >= 0"}
	case cfg.Expand.Rows != nil && *cfg.Expand.Rows < 0:
		return &ConfigError{Field: "expand.rows", Value: *cfg.Expand.Rows, Reason: "must be >= 0"}
	}
	for _, spec := range cfg.Columns {
		if err := spec.validate("columns"); err != nil {
			return err
		}
	}
	for _, spec := range cfg.Rows {
		if err := spec.validate("rows"); err != nil {
			return err
		}
	}
	if (cfg.Flavor == FlavorFlex || cfg.Flavor == FlavorStack) && (cfg.Columns != nil || cfg.Rows != nil) {
		return &ConfigError{Field: "columns/rows", Value: cfg.Flavor, Reason: "flex and stack containers derive their tracks from their items"}
	}
	return nil
}

// item is the container's record of one attached item.
type item struct {
	intent    Intent
	placement Placement
	trimmed   [2]bool // trailing gap share withheld, indexed by Axis
}

// lastTrack returns the index of the last track the item covers on axis.
func (it *item) lastTrack(axis Axis) int {
	if axis == Columns {
		return it.placement.Col + it.placement.ColSpan - 1
	}
	return it.placement.Row + it.placement.RowSpan - 1
}

// Container is the configuration and mutable placement state of one
// container. It is not safe for concurrent use: a host resolves items one at
// a time, mounting each before resolving the next.
type Container struct {
	id  uuid.UUID
	cfg Config
	log *zap.Logger

	rows, cols *TrackSet
	growSpec   [2]TrackSpec // default for appended tracks, indexed by Axis

	occ    *Occupancy
	cursor *Cursor
	bounds Bounds // auto-placement wrap limits, fixed at construction
	growth GrowthMode
	gaps   GapResolver

	items  []*item
	nextID int
}

// ContainerOption configures a Container.
type ContainerOption func(*Container)

// WithLogger sets the logger used for placement diagnostics.
func WithLogger(l *zap.Logger) ContainerOption {
	return func(c *Container) {
		if l != nil {
			c.log = l
		}
	}
}

// WithID sets the container's identity instead of a random one.
func WithID(id uuid.UUID) ContainerOption {
	return func(c *Container) {
		c.id = id
	}
}

// NewContainer validates cfg and builds an empty container.
func NewContainer(cfg Config, opts ...ContainerOption) (*Container, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	c := &Container{
		id:     uuid.New(),
		cfg:    cfg,
		log:    zap.NewNop(),
		occ:    NewOccupancy(),
		cursor: NewCursor(cfg.AutoFlow),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.log = c.log.With(zap.String("container", c.id.String()), zap.Stringer("flavor", cfg.Flavor))

	switch cfg.Flavor {
	case FlavorGrid:
		c.initGrid()
	case FlavorSmartGrid:
		c.initSmartGrid()
	case FlavorFlex:
		c.initFlex()
	case FlavorStack:
		c.rows, c.cols = NewTrackSet(), NewTrackSet()
	}
	return c, nil
}

// ID returns the container's identity.
func (c *Container) ID() uuid.UUID {
	return c.id
}

// Config returns the configuration the container was built with.
func (c *Container) Config() Config {
	return c.cfg
}

// GrowthMode returns the smart grid growth mode. Other flavors report
// GrowFixedColumns.
func (c *Container) GrowthMode() GrowthMode {
	return c.growth
}

// Cursor returns where the next sparse auto-placement starts.
func (c *Container) Cursor() Cell {
	return c.cursor.Position()
}

// Occupied reports whether a cell is reserved.
func (c *Container) Occupied(cell Cell) bool {
	return c.occ.Contains(cell)
}

// Extent returns one past the last reserved row and column: the part of
// the grid items actually cover. Flex and stack containers reserve nothing.
func (c *Container) Extent() Cell {
	rows, cols := c.occ.Extent()
	return Cell{Row: rows, Col: cols}
}

// Len returns the number of attached items.
func (c *Container) Len() int {
	return len(c.items)
}

// Tracks returns a copy of the tracks on axis.
func (c *Container) Tracks(axis Axis) []Track {
	return c.tracks(axis).Snapshot()
}

func (c *Container) tracks(axis Axis) *TrackSet {
	if axis == Columns {
		return c.cols
	}
	return c.rows
}

// Placements returns the current placement of every item in attach order.
func (c *Container) Placements() []Placement {
	out := make([]Placement, len(c.items))
	for i, it := range c.items {
		out[i] = it.placement
	}
	return out
}

// Placement returns the current placement of item id.
func (c *Container) Placement(id int) (Placement, bool) {
	if i := c.indexOf(id); i >= 0 {
		return c.items[i].placement, true
	}
	return Placement{}, false
}

func (c *Container) indexOf(id int) int {
	return slices.IndexFunc(c.items, func(it *item) bool { return it.placement.ID == id })
}

// Resolve validates in, places it, and returns the placement together with
// any earlier placements the call changed. A rejected intent leaves the
// container untouched.
func (c *Container) Resolve(in Intent) (Result, error) {
	if err := in.Validate(); err != nil {
		c.log.Warn("rejected intent", zap.Error(err))
		return Result{}, err
	}

	id := c.nextID
	c.nextID++

	var res Result
	switch c.cfg.Flavor {
	case FlavorGrid, FlavorSmartGrid:
		res = c.resolveGrid(in, id)
	case FlavorFlex:
		res = c.resolveFlex(in, id)
	case FlavorStack:
		res = c.resolveStack(in, id)
	}

	p := res.Placement
	c.log.Debug("resolved",
		zap.Int("id", p.ID),
		zap.Int("row", p.Row),
		zap.Int("col", p.Col),
		zap.Int("row_span", p.RowSpan),
		zap.Int("col_span", p.ColSpan),
		zap.Stringer("sticky", p.Sticky),
		zap.Int("changed", len(res.Changed)),
	)
	return res, nil
}

// Remove detaches item id. Grid containers release its cells and keep their
// tracks; flex and stack containers re-derive the remaining items and return
// the placements that moved.
func (c *Container) Remove(id int) ([]Placement, error) {
	i := c.indexOf(id)
	if i < 0 {
		return nil, ErrUnknownItem
	}
	it := c.items[i]
	c.items = slices.Delete(c.items, i, i+1)

	c.log.Debug("removed", zap.Int("id", id))
	switch c.cfg.Flavor {
	case FlavorFlex:
		return c.relayoutFlex(-1), nil
	case FlavorStack:
		return c.relayoutStack(-1), nil
	default:
		p := it.placement
		c.occ.Release(p.Row, p.Col, p.RowSpan, p.ColSpan)
		c.log.Debug("released cells",
			zap.Int("row", p.Row), zap.Int("col", p.Col),
			zap.Bool("backfill", c.cursor.Flow().IsDense()))
		return nil, nil
	}
}

// Redistribute re-derives every policy-owned track weight from the current
// items. Flex and stack containers already do this on every change; calling
// it again produces the same weights.
func (c *Container) Redistribute() {
	switch c.cfg.Flavor {
	case FlavorFlex:
		c.redistributeFlex()
	case FlavorStack:
		c.redistributeStack()
	default:
		c.applyExpand(Columns, 0, c.cols.Len())
		c.applyExpand(Rows, 0, c.rows.Len())
	}
	c.log.Debug("redistributed",
		zap.Int("row_weight", c.rows.TotalWeight()),
		zap.Int("column_weight", c.cols.TotalWeight()))
}

// ReconfigureRow overwrites one row track. Flex and stack containers
// overwrite policy-owned weights again on their next change.
func (c *Container) ReconfigureRow(index, weight, minSize int) error {
	return c.reconfigure(Rows, index, weight, minSize)
}

// ReconfigureColumn overwrites one column track.
func (c *Container) ReconfigureColumn(index, weight, minSize int) error {
	return c.reconfigure(Columns, index, weight, minSize)
}

func (c *Container) reconfigure(axis Axis, index, weight, minSize int) error {
	switch {
	case index < 0:
		return &ConfigError{Field: axis.String() + ".index", Value: index, Reason: "must be >= 0"}
	case weight < 0:
		return &ConfigError{Field: axis.String() + ".weight", Value: weight, Reason: "must be >= 0"}
	case minSize < 0:
		return &ConfigError{Field: axis.String() + ".min_size", Value: minSize, Reason: "must be >= 0"}
	}
	c.tracks(axis).Configure(index, weight, minSize)
	return nil
}

// EnsureTracks grows axis to at least n tracks. Growing a smart grid turns
// its previous last track into an interior one; the re-padded placements are
// returned.
func (c *Container) EnsureTracks(axis Axis, n int) ([]Placement, error) {
	if !enumValid(axisNames, uint8(axis)) {
		return nil, &ConfigError{Field: "axis", Value: uint8(axis), Reason: "unknown axis"}
	}
	if n < 0 {
		return nil, &ConfigError{Field: axis.String() + ".count", Value: n, Reason: "must be >= 0"}
	}
	before := c.tracks(axis).Len()
	changed := c.grow(axis, n)
	c.applyExpand(axis, before, c.tracks(axis).Len())
	return changed, nil
}

// sticky resolves an item's edge flags: explicit sticky, then the
// container's sticky default, then the justify/align fallback chains.
func (c *Container) sticky(in Intent) Sticky {
	if in.Sticky != nil {
		return *in.Sticky
	}
	if c.cfg.StickyItems != nil {
		return *c.cfg.StickyItems
	}
	justify := pickAlign(in.JustifySelf, c.cfg.JustifyItems, c.cfg.JustifyContent)
	align := pickAlign(in.AlignSelf, c.cfg.AlignItems, c.cfg.AlignContent)
	return ResolveSticky(c.cfg.Direction, justify, align)
}

// mergeChanged folds later updates of the same item into one entry,
// keeping first-seen order.
func mergeChanged(lists ...[]Placement) []Placement {
	var out []Placement
	for _, list := range lists {
		for _, p := range list {
			if i := slices.IndexFunc(out, func(q Placement) bool { return q.ID == p.ID }); i >= 0 {
				out[i] = p
				continue
			}
			out = append(out, p)
		}
	}
	return out
}
