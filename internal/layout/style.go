package layout

// Direction specifies the main axis and its orientation.
type Direction uint8

const (
	Row           Direction = iota // Items flow left-to-right
	RowReverse                     // Items flow right-to-left
	Column                         // Items flow top-to-bottom
	ColumnReverse                  // Items flow bottom-to-top
)

// IsRow reports whether the main axis is horizontal.
func (d Direction) IsRow() bool {
	return d == Row || d == RowReverse
}

// IsReverse reports whether the main axis runs end-to-start.
func (d Direction) IsReverse() bool {
	return d == RowReverse || d == ColumnReverse
}

// Content specifies how a container distributes free space across its tracks.
// It is used for both justify-content (main axis) and align-content (cross axis).
type Content uint8

const (
	ContentStart        Content = iota // Pack at start
	ContentEnd                         // Pack at end
	ContentCenter                      // Center the content
	ContentSpaceBetween                // Space between items, none at edges
	ContentSpaceAround                 // Space around every item
	ContentStretch                     // Items grow to fill
)

// Align returns the per-item alignment equivalent of c, if there is one.
// The space-* modes have no per-item meaning.
func (c Content) Align() (Align, bool) {
	switch c {
	case ContentStart:
		return AlignStart, true
	case ContentEnd:
		return AlignEnd, true
	case ContentCenter:
		return AlignCenter, true
	case ContentStretch:
		return AlignStretch, true
	default:
		return AlignStretch, false
	}
}

// Align specifies how an item sits inside its cell on one axis.
type Align uint8

const (
	AlignStart   Align = iota // Anchor to the start edge
	AlignEnd                  // Anchor to the end edge
	AlignCenter               // Center in the cell
	AlignStretch              // Fill the cell
)

// AutoFlow is the auto-placement policy for items without explicit coordinates.
type AutoFlow uint8

const (
	FlowRow         AutoFlow = iota // Sparse, row-major
	FlowColumn                      // Sparse, column-major
	FlowDenseRow                    // First free cell scanning row-major from (0,0)
	FlowDenseColumn                 // First free cell scanning column-major from (0,0)
	FlowNone                        // No auto-placement; missing coordinates are 0
	FlowSingleLine                  // Row 0 only, columns grow forever
)

// IsDense reports whether f backfills holes left by earlier placements.
func (f AutoFlow) IsDense() bool {
	return f == FlowDenseRow || f == FlowDenseColumn
}

// Flavor selects the placement policy a container applies.
type Flavor uint8

const (
	FlavorStack     Flavor = iota // Linear pack along one axis
	FlavorGrid                    // Grid with auto-flow and leading gaps
	FlavorFlex                    // Single-line flexbox on spacer tracks
	FlavorSmartGrid               // Grid with split, edge-trimmed gaps and growth modes
)

// GrowthMode decides which axis a smart grid extends when items overflow.
type GrowthMode uint8

const (
	GrowFixedColumns GrowthMode = iota // Columns fixed, rows appended on wrap
	GrowSingleColumn                   // One column, rows appended on wrap
	GrowColumnsOnly                    // One row, columns appended forever
	GrowRows                           // Declared rows, more appended on wrap
)

// Axis names one of a container's two track sets.
type Axis uint8

const (
	Rows    Axis = iota // The row tracks (vertical extent)
	Columns             // The column tracks (horizontal extent)
)

// Side is the edge a stack item is packed against.
type Side uint8

const (
	SideNone Side = iota
	SideLeft
	SideRight
	SideTop
	SideBottom
)
