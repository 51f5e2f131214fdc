package layout

import (
	"strconv"
	"strings"
)

var (
	directionNames  = []string{"row", "row-reverse", "column", "column-reverse"}
	contentNames    = []string{"start", "end", "center", "space-between", "space-around", "stretch"}
	alignNames      = []string{"start", "end", "center", "stretch"}
	autoFlowNames   = []string{"row", "column", "dense-row", "dense-column", "none", "single-line"}
	flavorNames     = []string{"stack", "grid", "flex", "smart-grid"}
	growthModeNames = []string{"fixed-columns", "single-column", "columns-only", "rows"}
	axisNames       = []string{"rows", "columns"}
	sideNames       = []string{"", "left", "right", "top", "bottom"}
)

func enumName(names []string, v uint8) string {
	if int(v) < len(names) {
		return names[v]
	}
	return strconv.Itoa(int(v))
}

func enumValid(names []string, v uint8) bool {
	return int(v) < len(names)
}

func parseEnum(field string, names []string, s string) (uint8, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for i, name := range names {
		if name == key {
			return uint8(i), nil
		}
	}
	return 0, &ConfigError{Field: field, Value: s, Reason: "expected one of " + strings.Join(names, ", ")}
}

func (d Direction) String() string  { return enumName(directionNames, uint8(d)) }
func (c Content) String() string    { return enumName(contentNames, uint8(c)) }
func (a Align) String() string      { return enumName(alignNames, uint8(a)) }
func (f AutoFlow) String() string   { return enumName(autoFlowNames, uint8(f)) }
func (f Flavor) String() string     { return enumName(flavorNames, uint8(f)) }
func (g GrowthMode) String() string { return enumName(growthModeNames, uint8(g)) }
func (a Axis) String() string       { return enumName(axisNames, uint8(a)) }
func (s Side) String() string       { return enumName(sideNames, uint8(s)) }

// ParseDirection parses "row", "row-reverse", "column" or "column-reverse".
func ParseDirection(s string) (Direction, error) {
	v, err := parseEnum("direction", directionNames, s)
	return Direction(v), err
}

// ParseContent parses a justify-content / align-content mode.
func ParseContent(s string) (Content, error) {
	v, err := parseEnum("content", contentNames, s)
	return Content(v), err
}

// ParseAlign parses "start", "end", "center" or "stretch".
func ParseAlign(s string) (Align, error) {
	v, err := parseEnum("align", alignNames, s)
	return Align(v), err
}

// ParseAutoFlow parses an auto-flow policy name.
func ParseAutoFlow(s string) (AutoFlow, error) {
	v, err := parseEnum("auto_flow", autoFlowNames, s)
	return AutoFlow(v), err
}

// ParseFlavor parses a container flavor name.
func ParseFlavor(s string) (Flavor, error) {
	v, err := parseEnum("flavor", flavorNames, s)
	return Flavor(v), err
}

// ParseAxis parses "rows" or "columns".
func ParseAxis(s string) (Axis, error) {
	v, err := parseEnum("axis", axisNames, s)
	return Axis(v), err
}
