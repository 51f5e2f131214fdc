// Package scenario reads layout scenarios from YAML and replays them against
// a container. A scenario is one container configuration plus an ordered list
// of steps: items to attach, items to remove, and track edits.
package scenario

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/grindlemire/go-tracks/internal/layout"
)

// Scenario is one YAML document.
type Scenario struct {
	Name      string    `yaml:"name"`
	Container Container `yaml:"container"`
	Steps     []Step    `yaml:"steps"`
}

// Container is the YAML form of layout.Config. Enum values use the names
// the layout package parses; empty strings keep the flavor's defaults.
type Container struct {
	Flavor         string         `yaml:"flavor"`
	Direction      string         `yaml:"direction"`
	Gap            GapSpec        `yaml:"gap"`
	JustifyContent string         `yaml:"justify_content"`
	AlignContent   string         `yaml:"align_content"`
	JustifyItems   string         `yaml:"justify_items"`
	AlignItems     string         `yaml:"align_items"`
	Columns        *TrackList     `yaml:"columns"`
	Rows           *TrackList     `yaml:"rows"`
	AutoFlow       string         `yaml:"auto_flow"`
	ExpandColumns  *int           `yaml:"expand_columns"`
	ExpandRows     *int           `yaml:"expand_rows"`
	StickyItems    *layout.Sticky `yaml:"sticky_items"`
	ExpandItems    bool           `yaml:"expand_items"`
}

// Step is one operation. Exactly one of Remove, Ensure and Reconfigure may be
// set; a step with none of them attaches an item, Repeat times if given.
type Step struct {
	Remove      *int         `yaml:"remove"`
	Ensure      *Ensure      `yaml:"ensure"`
	Reconfigure *Reconfigure `yaml:"reconfigure"`
	Repeat      int          `yaml:"repeat"`
	Item        `yaml:",inline"`
}

// Ensure grows an axis to at least Count tracks.
type Ensure struct {
	Axis  string `yaml:"axis"`
	Count int    `yaml:"count"`
}

// Reconfigure overwrites one track.
type Reconfigure struct {
	Axis    string `yaml:"axis"`
	Index   int    `yaml:"index"`
	Weight  int    `yaml:"weight"`
	MinSize int    `yaml:"min_size"`
}

// Item is the YAML form of layout.Intent.
type Item struct {
	Row         *int           `yaml:"row"`
	Col         *int           `yaml:"col"`
	RowSpan     int            `yaml:"row_span"`
	ColSpan     int            `yaml:"col_span"`
	Offset      int            `yaml:"offset"`
	JustifySelf string         `yaml:"justify_self"`
	AlignSelf   string         `yaml:"align_self"`
	Weight      *int           `yaml:"weight"`
	Sticky      *layout.Sticky `yaml:"sticky"`
	Margin      *EdgesSpec     `yaml:"margin"`
	PadX        *PadSpec       `yaml:"pad_x"`
	PadY        *PadSpec       `yaml:"pad_y"`
	Expand      *bool          `yaml:"expand"`
}

// Load decodes every YAML document in r.
func Load(r io.Reader) ([]Scenario, error) {
	dec := yaml.NewDecoder(r)
	var out []Scenario
	for {
		var sc Scenario
		err := dec.Decode(&sc)
		if errors.Is(err, io.EOF) {
			return out, nil
		}
		if err != nil {
			return nil, fmt.Errorf("decoding scenario %d: %w", len(out)+1, err)
		}
		if sc.Name == "" {
			sc.Name = "scenario-" + strconv.Itoa(len(out)+1)
		}
		out = append(out, sc)
	}
}

// LoadFile decodes every scenario in the file at path.
func LoadFile(path string) ([]Scenario, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening scenario file: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// Config converts the YAML container into a validated layout.Config.
func (c Container) Config() (layout.Config, error) {
	flavor := layout.FlavorGrid
	if c.Flavor != "" {
		f, err := layout.ParseFlavor(c.Flavor)
		if err != nil {
			return layout.Config{}, err
		}
		flavor = f
	}
	cfg := layout.DefaultConfig(flavor)
	cfg.Gap = layout.Gap(c.Gap)
	cfg.ExpandItems = c.ExpandItems
	cfg.StickyItems = c.StickyItems
	cfg.Expand = layout.Expand{Columns: c.ExpandColumns, Rows: c.ExpandRows}
	if c.Columns != nil {
		cfg.Columns = []layout.TrackSpec(*c.Columns)
	}
	if c.Rows != nil {
		cfg.Rows = []layout.TrackSpec(*c.Rows)
	}

	var err error
	if c.Direction != "" {
		if cfg.Direction, err = layout.ParseDirection(c.Direction); err != nil {
			return layout.Config{}, err
		}
	}
	if c.AutoFlow != "" {
		if cfg.AutoFlow, err = layout.ParseAutoFlow(c.AutoFlow); err != nil {
			return layout.Config{}, err
		}
	}
	if cfg.JustifyContent, err = optional(c.JustifyContent, layout.ParseContent); err != nil {
		return layout.Config{}, err
	}
	if cfg.AlignContent, err = optional(c.AlignContent, layout.ParseContent); err != nil {
		return layout.Config{}, err
	}
	if cfg.JustifyItems, err = optional(c.JustifyItems, layout.ParseAlign); err != nil {
		return layout.Config{}, err
	}
	if cfg.AlignItems, err = optional(c.AlignItems, layout.ParseAlign); err != nil {
		return layout.Config{}, err
	}
	return cfg, cfg.Validate()
}

// Intent converts the YAML item into a layout.Intent. Range checks are left
// to the container so that rejected items show up in the outcome.
func (it Item) Intent() (layout.Intent, error) {
	in := layout.Intent{
		Row:     it.Row,
		Col:     it.Col,
		RowSpan: it.RowSpan,
		ColSpan: it.ColSpan,
		Offset:  it.Offset,
		Weight:  it.Weight,
		Sticky:  it.Sticky,
		Expand:  it.Expand,
	}
	var err error
	if in.JustifySelf, err = optional(it.JustifySelf, layout.ParseAlign); err != nil {
		return layout.Intent{}, err
	}
	if in.AlignSelf, err = optional(it.AlignSelf, layout.ParseAlign); err != nil {
		return layout.Intent{}, err
	}
	if it.Margin != nil {
		in.Margin = layout.Ptr(layout.Edges(*it.Margin))
	}
	if it.PadX != nil {
		in.PadX = layout.Ptr(layout.Pad(*it.PadX))
	}
	if it.PadY != nil {
		in.PadY = layout.Ptr(layout.Pad(*it.PadY))
	}
	return in, nil
}

func optional[T any](s string, parse func(string) (T, error)) (*T, error) {
	if s == "" {
		return nil, nil
	}
	v, err := parse(s)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
