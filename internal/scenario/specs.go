package scenario

import (
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/grindlemire/go-tracks/internal/layout"
)

// TrackList is a list of track specs. In YAML it is either a count (that
// many weight-1 tracks) or a sequence of "auto", weights and "<n>px" sizes.
type TrackList []layout.TrackSpec

func (t *TrackList) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		n, err := strconv.Atoi(node.Value)
		if err != nil || n < 0 {
			return fmt.Errorf("line %d: track count must be a non-negative integer, got %q", node.Line, node.Value)
		}
		*t = layout.Tracks(n, 1)
		return nil
	case yaml.SequenceNode:
		entries := make([]string, len(node.Content))
		for i, c := range node.Content {
			if c.Kind != yaml.ScalarNode {
				return fmt.Errorf("line %d: track entries must be scalars", c.Line)
			}
			entries[i] = c.Value
		}
		specs, err := layout.ParseTrackSpecs(entries)
		if err != nil {
			return fmt.Errorf("line %d: %w", node.Line, err)
		}
		*t = specs
		return nil
	default:
		return fmt.Errorf("line %d: tracks must be a count or a list", node.Line)
	}
}

// GapSpec is a gap: one number for both axes or a {column, row} mapping.
type GapSpec layout.Gap

func (g *GapSpec) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		var n int
		if err := node.Decode(&n); err != nil {
			return err
		}
		*g = GapSpec(layout.Uniform(n))
		return nil
	}
	var m struct {
		Column int `yaml:"column"`
		Row    int `yaml:"row"`
	}
	if err := node.Decode(&m); err != nil {
		return err
	}
	*g = GapSpec{Column: m.Column, Row: m.Row}
	return nil
}

// EdgesSpec is a margin: one number, [vertical, horizontal],
// [top, right, bottom, left], or a mapping of sides.
type EdgesSpec layout.Edges

func (e *EdgesSpec) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var n int
		if err := node.Decode(&n); err != nil {
			return err
		}
		*e = EdgesSpec(layout.EdgeAll(n))
	case yaml.SequenceNode:
		var v []int
		if err := node.Decode(&v); err != nil {
			return err
		}
		switch len(v) {
		case 2:
			*e = EdgesSpec(layout.EdgeSymmetric(v[0], v[1]))
		case 4:
			*e = EdgesSpec(layout.EdgeTRBL(v[0], v[1], v[2], v[3]))
		default:
			return fmt.Errorf("line %d: margin lists need 2 or 4 values, got %d", node.Line, len(v))
		}
	default:
		var m struct {
			Top    int `yaml:"top"`
			Right  int `yaml:"right"`
			Bottom int `yaml:"bottom"`
			Left   int `yaml:"left"`
		}
		if err := node.Decode(&m); err != nil {
			return err
		}
		*e = EdgesSpec{Top: m.Top, Right: m.Right, Bottom: m.Bottom, Left: m.Left}
	}
	return nil
}

// PadSpec is one axis of padding: one number for both sides or [before, after].
type PadSpec layout.Pad

func (p *PadSpec) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		var n int
		if err := node.Decode(&n); err != nil {
			return err
		}
		*p = PadSpec(layout.PadAll(n))
		return nil
	}
	var v []int
	if err := node.Decode(&v); err != nil {
		return err
	}
	if len(v) != 2 {
		return fmt.Errorf("line %d: padding lists need 2 values, got %d", node.Line, len(v))
	}
	*p = PadSpec{Before: v[0], After: v[1]}
	return nil
}
