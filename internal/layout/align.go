package layout

import "strings"

// Sticky is the set of cell edges an item is anchored to. An item anchored
// to two opposite edges stretches between them; anchored to neither, it is
// centered.
type Sticky uint8

const (
	StickyN Sticky = 1 << iota
	StickyS
	StickyE
	StickyW

	StickyNone Sticky = 0
	StickyNS          = StickyN | StickyS
	StickyEW          = StickyE | StickyW
	StickyAll         = StickyNS | StickyEW
)

const stickyOrder = "nsew"

// String renders the flags in canonical n, s, e, w order.
func (s Sticky) String() string {
	var sb strings.Builder
	for i := range stickyOrder {
		if s&(1<<i) != 0 {
			sb.WriteByte(stickyOrder[i])
		}
	}
	return sb.String()
}

// ParseSticky parses any combination of the letters n, s, e and w.
// Repeated letters are accepted; the empty string means centered.
func ParseSticky(v string) (Sticky, error) {
	var s Sticky
	for _, r := range strings.ToLower(strings.TrimSpace(v)) {
		i := strings.IndexRune(stickyOrder, r)
		if i < 0 {
			return 0, &ConfigError{Field: "sticky", Value: v, Reason: "only n, s, e and w are allowed"}
		}
		s |= 1 << i
	}
	return s, nil
}

// MarshalText implements encoding.TextMarshaler.
func (s Sticky) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Sticky) UnmarshalText(text []byte) error {
	v, err := ParseSticky(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// horizontalSticky maps a semantic alignment to west/east flags.
// Reversal swaps which physical side start and end mean.
func horizontalSticky(a Align, reverse bool) Sticky {
	start, end := StickyW, StickyE
	if reverse {
		start, end = end, start
	}
	switch a {
	case AlignStart:
		return start
	case AlignEnd:
		return end
	case AlignCenter:
		return StickyNone
	default:
		return StickyEW
	}
}

// verticalSticky maps a semantic alignment to north/south flags.
func verticalSticky(a Align, reverse bool) Sticky {
	start, end := StickyN, StickyS
	if reverse {
		start, end = end, start
	}
	switch a {
	case AlignStart:
		return start
	case AlignEnd:
		return end
	case AlignCenter:
		return StickyNone
	default:
		return StickyNS
	}
}

// ResolveSticky maps a justify (main axis) and align (cross axis) value to
// edge flags. In row directions justify governs the horizontal axis; in
// column directions the vertical one. A reversed direction swaps start and
// end on the main axis only.
func ResolveSticky(dir Direction, justify, align Align) Sticky {
	if dir.IsRow() {
		return horizontalSticky(justify, dir.IsReverse()) | verticalSticky(align, false)
	}
	return verticalSticky(justify, dir.IsReverse()) | horizontalSticky(align, false)
}

// pickAlign walks the fallback chain: the item's own value, the container's
// item default, then the container's content default when one was set and
// has a per-item meaning. Without any of them the item stretches.
func pickAlign(self, items *Align, content *Content) Align {
	if self != nil {
		return *self
	}
	if items != nil {
		return *items
	}
	if content != nil {
		if a, ok := content.Align(); ok {
			return a
		}
	}
	return AlignStretch
}
