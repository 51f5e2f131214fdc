package layout

// Intent is the declarative placement request for one item. Pointer fields
// are optional; nil means "use the container's default".
type Intent struct {
	// Row and Col pin the item to explicit coordinates. When both are set the
	// cursor is bypassed. When only one is set the other comes from the cursor.
	// Flex and stack containers ignore them.
	Row, Col *int

	// RowSpan and ColSpan default to 1 when 0.
	RowSpan, ColSpan int

	// Offset skips tracks along the flow direction before the item.
	Offset int

	JustifySelf *Align
	AlignSelf   *Align

	// Weight is the item's growth share under flex stretch. nil means 1.
	Weight *int

	// Sticky overrides the alignment-derived edge flags.
	Sticky *Sticky

	// Margin is added to the gap padding.
	Margin *Edges

	// PadX and PadY are added on top of gap and margin padding.
	PadX, PadY *Pad

	// Expand overrides the stack container's ExpandItems default.
	Expand *bool
}

// Ptr returns a pointer to v, for filling optional Intent and Config fields.
func Ptr[T any](v T) *T {
	return &v
}

// At returns an intent pinned to (row, col).
func At(row, col int) Intent {
	return Intent{Row: &row, Col: &col}
}

// Spans returns the effective row and column span.
func (in Intent) Spans() (rowSpan, colSpan int) {
	rowSpan, colSpan = in.RowSpan, in.ColSpan
	if rowSpan == 0 {
		rowSpan = 1
	}
	if colSpan == 0 {
		colSpan = 1
	}
	return rowSpan, colSpan
}

// weight returns the flex growth share.
func (in Intent) weight() int {
	if in.Weight == nil {
		return 1
	}
	return *in.Weight
}

// Validate checks the intent without touching any container.
func (in Intent) Validate() error {
	if in.RowSpan < 0 {
		return &IntentError{Field: "row_span", Value: in.RowSpan, Reason: "must be >= 1"}
	}
	if in.ColSpan < 0 {
		return &IntentError{Field: "col_span", Value: in.ColSpan, Reason: "must be >= 1"}
	}
	if in.Offset < 0 {
		return &IntentError{Field: "offset", Value: in.Offset, Reason: "must be >= 0"}
	}
	if in.Row != nil && *in.Row < 0 {
		return &IntentError{Field: "row", Value: *in.Row, Reason: "must be >= 0"}
	}
	if in.Col != nil && *in.Col < 0 {
		return &IntentError{Field: "col", Value: *in.Col, Reason: "must be >= 0"}
	}
	if in.Weight != nil && *in.Weight < 0 {
		return &IntentError{Field: "weight", Value: *in.Weight, Reason: "must be >= 0"}
	}
	if in.JustifySelf != nil && !enumValid(alignNames, uint8(*in.JustifySelf)) {
		return &IntentError{Field: "justify_self", Value: *in.JustifySelf, Reason: "unknown alignment"}
	}
	if in.AlignSelf != nil && !enumValid(alignNames, uint8(*in.AlignSelf)) {
		return &IntentError{Field: "align_self", Value: *in.AlignSelf, Reason: "unknown alignment"}
	}
	if in.Sticky != nil && *in.Sticky > StickyAll {
		return &IntentError{Field: "sticky", Value: uint8(*in.Sticky), Reason: "unknown edge flags"}
	}
	if in.Margin != nil && in.Margin.negative() {
		return &IntentError{Field: "margin", Value: *in.Margin, Reason: "must be >= 0 on every side"}
	}
	if in.PadX != nil && (in.PadX.Before < 0 || in.PadX.After < 0) {
		return &IntentError{Field: "pad_x", Value: *in.PadX, Reason: "must be >= 0"}
	}
	if in.PadY != nil && (in.PadY.Before < 0 || in.PadY.After < 0) {
		return &IntentError{Field: "pad_y", Value: *in.PadY, Reason: "must be >= 0"}
	}
	return nil
}

func (in Intent) margin() Edges {
	if in.Margin == nil {
		return Edges{}
	}
	return *in.Margin
}

func (in Intent) padX() Pad {
	if in.PadX == nil {
		return Pad{}
	}
	return *in.PadX
}

func (in Intent) padY() Pad {
	if in.PadY == nil {
		return Pad{}
	}
	return *in.PadY
}
