package layout

import (
	"strconv"
	"strings"
)

// Unit specifies how a TrackSpec is interpreted.
type Unit uint8

const (
	UnitAuto   Unit = iota // No growth, no minimum
	UnitWeight             // Grows by Amount shares of free space
	UnitFixed              // Minimum of Amount pixels, no growth
)

// TrackSpec declares the initial sizing of one track.
type TrackSpec struct {
	Amount int
	Unit   Unit
}

// Auto returns a TrackSpec that neither grows nor reserves space.
func Auto() TrackSpec {
	return TrackSpec{Unit: UnitAuto}
}

// Weight returns a TrackSpec that grows by w shares.
func Weight(w int) TrackSpec {
	return TrackSpec{Amount: w, Unit: UnitWeight}
}

// Fixed returns a TrackSpec with a minimum size of px.
func Fixed(px int) TrackSpec {
	return TrackSpec{Amount: px, Unit: UnitFixed}
}

// Tracks returns n tracks of equal weight w.
func Tracks(n, w int) []TrackSpec {
	specs := make([]TrackSpec, n)
	for i := range specs {
		specs[i] = Weight(w)
	}
	return specs
}

// Resolve returns the weight and minimum size the spec configures.
func (s TrackSpec) Resolve() (weight, minSize int) {
	switch s.Unit {
	case UnitWeight:
		return s.Amount, 0
	case UnitFixed:
		return 0, s.Amount
	default:
		return 0, 0
	}
}

// IsWeighted reports whether the spec is a plain weight.
func (s TrackSpec) IsWeighted() bool {
	return s.Unit == UnitWeight
}

// String renders the spec in the form ParseTrackSpec accepts.
func (s TrackSpec) String() string {
	switch s.Unit {
	case UnitWeight:
		return strconv.Itoa(s.Amount)
	case UnitFixed:
		return strconv.Itoa(s.Amount) + "px"
	default:
		return "auto"
	}
}

// ParseTrackSpec parses "auto", an integer weight such as "2", or a fixed
// size such as "24px".
func ParseTrackSpec(s string) (TrackSpec, error) {
	v := strings.TrimSpace(s)
	switch {
	case v == "auto":
		return Auto(), nil
	case strings.HasSuffix(v, "px"):
		n, err := strconv.Atoi(strings.TrimSuffix(v, "px"))
		if err != nil || n < 0 {
			return TrackSpec{}, &ConfigError{Field: "track", Value: s, Reason: `fixed tracks must look like "<int>px"`}
		}
		return Fixed(n), nil
	default:
		n, err := strconv.Atoi(v)
		if err != nil {
			return TrackSpec{}, &ConfigError{Field: "track", Value: s, Reason: `expected "auto", a weight, or "<int>px"`}
		}
		if n < 0 {
			return TrackSpec{}, &ConfigError{Field: "track", Value: s, Reason: "weight must be >= 0"}
		}
		return Weight(n), nil
	}
}

// ParseTrackSpecs parses each entry with ParseTrackSpec.
func ParseTrackSpecs(entries []string) ([]TrackSpec, error) {
	specs := make([]TrackSpec, 0, len(entries))
	for _, e := range entries {
		spec, err := ParseTrackSpec(e)
		if err != nil {
			return nil, err
		}
		specs = append(specs, spec)
	}
	return specs, nil
}

func (s TrackSpec) validate(field string) error {
	if !enumValid([]string{"auto", "weight", "fixed"}, uint8(s.Unit)) {
		return &ConfigError{Field: field, Value: s.Unit, Reason: "unknown track unit"}
	}
	if s.Amount < 0 {
		return &ConfigError{Field: field, Value: s.Amount, Reason: "must be >= 0"}
	}
	return nil
}
