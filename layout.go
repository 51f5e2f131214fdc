// layout.go re-exports layout types from internal/layout and
// internal/geometry. Any changes to those types must be mirrored here.
package tracks

import (
	"github.com/grindlemire/go-tracks/internal/geometry"
	"github.com/grindlemire/go-tracks/internal/layout"
)

// Flavor selects the placement policy a container applies.
type Flavor = layout.Flavor

const (
	FlavorStack     = layout.FlavorStack
	FlavorGrid      = layout.FlavorGrid
	FlavorFlex      = layout.FlavorFlex
	FlavorSmartGrid = layout.FlavorSmartGrid
)

// Direction specifies the main axis and its orientation.
type Direction = layout.Direction

const (
	Row           = layout.Row
	RowReverse    = layout.RowReverse
	Column        = layout.Column
	ColumnReverse = layout.ColumnReverse
)

// Content distributes free space across a container's tracks.
type Content = layout.Content

const (
	ContentStart        = layout.ContentStart
	ContentEnd          = layout.ContentEnd
	ContentCenter       = layout.ContentCenter
	ContentSpaceBetween = layout.ContentSpaceBetween
	ContentSpaceAround  = layout.ContentSpaceAround
	ContentStretch      = layout.ContentStretch
)

// Align positions an item inside its cell on one axis.
type Align = layout.Align

const (
	AlignStart   = layout.AlignStart
	AlignEnd     = layout.AlignEnd
	AlignCenter  = layout.AlignCenter
	AlignStretch = layout.AlignStretch
)

// AutoFlow is the auto-placement policy of grid containers.
type AutoFlow = layout.AutoFlow

const (
	FlowRow         = layout.FlowRow
	FlowColumn      = layout.FlowColumn
	FlowDenseRow    = layout.FlowDenseRow
	FlowDenseColumn = layout.FlowDenseColumn
	FlowSingleLine  = layout.FlowSingleLine
	FlowNone        = layout.FlowNone
)

// GrowthMode is how a smart grid extends when items overflow.
type GrowthMode = layout.GrowthMode

const (
	GrowFixedColumns = layout.GrowFixedColumns
	GrowSingleColumn = layout.GrowSingleColumn
	GrowColumnsOnly  = layout.GrowColumnsOnly
	GrowRows         = layout.GrowRows
)

// Axis names a container's row or column tracks.
type Axis = layout.Axis

const (
	Rows    = layout.Rows
	Columns = layout.Columns
)

// Side is the edge a stack item is packed against.
type Side = layout.Side

// Sticky is the set of cell edges an item is anchored to.
type Sticky = layout.Sticky

const (
	StickyN    = layout.StickyN
	StickyS    = layout.StickyS
	StickyE    = layout.StickyE
	StickyW    = layout.StickyW
	StickyNone = layout.StickyNone
	StickyNS   = layout.StickyNS
	StickyEW   = layout.StickyEW
	StickyAll  = layout.StickyAll
)

type (
	Config      = layout.Config
	Expand      = layout.Expand
	Intent      = layout.Intent
	Placement   = layout.Placement
	Result      = layout.Result
	Container   = layout.Container
	Host        = layout.Host
	Track       = layout.Track
	TrackSpec   = layout.TrackSpec
	Cell        = layout.Cell
	Edges       = layout.Edges
	Pad         = layout.Pad
	Gap         = layout.Gap
	ConfigError = layout.ConfigError
	IntentError = layout.IntentError
)

// Rect is a pixel rectangle.
type Rect = geometry.Rect

// Geometry is a container's tracks solved against a bounding rectangle.
type Geometry = geometry.Grid

var (
	ErrConfiguration = layout.ErrConfiguration
	ErrInvalidIntent = layout.ErrInvalidIntent
	ErrUnknownItem   = layout.ErrUnknownItem
)

// DefaultConfig returns the defaults for a container of flavor f.
func DefaultConfig(f Flavor) Config {
	return layout.DefaultConfig(f)
}

// At returns an intent with explicit coordinates.
func At(row, col int) Intent {
	return layout.At(row, col)
}

// Ptr returns a pointer to v, for the optional fields of Config and Intent.
func Ptr[T any](v T) *T {
	return layout.Ptr(v)
}

// Weight creates a track that takes a weight-proportional share of free space.
func Weight(w int) TrackSpec {
	return layout.Weight(w)
}

// Fixed creates a track with a minimum size of px that does not grow.
func Fixed(px int) TrackSpec {
	return layout.Fixed(px)
}

// Auto creates a track that neither grows nor reserves space.
func Auto() TrackSpec {
	return layout.Auto()
}

// Tracks returns n tracks of weight w.
func Tracks(n, w int) []TrackSpec {
	return layout.Tracks(n, w)
}

// EdgeAll creates Edges with the same value on all sides.
func EdgeAll(n int) Edges {
	return layout.EdgeAll(n)
}

// EdgeSymmetric creates Edges with v on top and bottom and h on left and right.
func EdgeSymmetric(v, h int) Edges {
	return layout.EdgeSymmetric(v, h)
}

// EdgeTRBL creates Edges from top, right, bottom and left values.
func EdgeTRBL(t, r, b, l int) Edges {
	return layout.EdgeTRBL(t, r, b, l)
}

// Uniform creates a Gap with the same value on both axes.
func Uniform(n int) Gap {
	return layout.Uniform(n)
}

// ParseTrackSpec parses "auto", "Npx" or an integer weight.
func ParseTrackSpec(s string) (TrackSpec, error) {
	return layout.ParseTrackSpec(s)
}

// ParseSticky parses any combination of the letters n, s, e and w.
func ParseSticky(s string) (Sticky, error) {
	return layout.ParseSticky(s)
}

// NewRect creates a Rect.
func NewRect(x, y, width, height int) Rect {
	return geometry.NewRect(x, y, width, height)
}
