package scenario

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/grindlemire/go-tracks/internal/layout"
)

// Outcome is the result of replaying one scenario.
type Outcome struct {
	Name       string          `json:"name"`
	Container  string          `json:"container"`
	Flavor     string          `json:"flavor"`
	GrowthMode string          `json:"growth_mode,omitempty"`
	Steps      []StepOutcome   `json:"steps"`
	Rows       []TrackView     `json:"rows"`
	Columns    []TrackView     `json:"columns"`
	Placements []PlacementView `json:"placements"`

	// Extent is the number of rows and columns items cover, which can be
	// less than the track counts after removals.
	Extent ExtentView `json:"extent"`

	container *layout.Container
}

// Layout returns the container the scenario was replayed on.
func (o *Outcome) Layout() *layout.Container {
	return o.container
}

// StepOutcome records what one step did. A rejected step carries Error and
// leaves the container as it was.
type StepOutcome struct {
	Index     int             `json:"index"`
	Op        string          `json:"op"`
	Placement *PlacementView  `json:"placement,omitempty"`
	Changed   []PlacementView `json:"changed,omitempty"`
	Error     string          `json:"error,omitempty"`
}

// ExtentView is the JSON form of a container's reserved extent.
type ExtentView struct {
	Rows    int `json:"rows"`
	Columns int `json:"columns"`
}

// TrackView is the JSON form of a track.
type TrackView struct {
	Index   int `json:"index"`
	Weight  int `json:"weight"`
	MinSize int `json:"min_size"`
}

// PlacementView is the JSON form of a placement.
type PlacementView struct {
	ID      int    `json:"id"`
	Row     int    `json:"row"`
	Col     int    `json:"col"`
	RowSpan int    `json:"row_span"`
	ColSpan int    `json:"col_span"`
	Sticky  string `json:"sticky"`
	PadX    [2]int `json:"pad_x"`
	PadY    [2]int `json:"pad_y"`
	Side    string `json:"side,omitempty"`
	Expand  bool   `json:"expand,omitempty"`
}

func viewOf(p layout.Placement) PlacementView {
	return PlacementView{
		ID:      p.ID,
		Row:     p.Row,
		Col:     p.Col,
		RowSpan: p.RowSpan,
		ColSpan: p.ColSpan,
		Sticky:  p.Sticky.String(),
		PadX:    [2]int{p.PadX.Before, p.PadX.After},
		PadY:    [2]int{p.PadY.Before, p.PadY.After},
		Side:    p.Side.String(),
		Expand:  p.Expand,
	}
}

func viewsOf(ps []layout.Placement) []PlacementView {
	if len(ps) == 0 {
		return nil
	}
	out := make([]PlacementView, len(ps))
	for i, p := range ps {
		out[i] = viewOf(p)
	}
	return out
}

func tracksOf(ts []layout.Track) []TrackView {
	out := make([]TrackView, len(ts))
	for i, t := range ts {
		out[i] = TrackView{Index: t.Index, Weight: t.Weight, MinSize: t.MinSize}
	}
	return out
}

// recorder is the host a scenario attaches to. It keeps every placement it
// was asked to apply during the current step.
type recorder struct {
	placed []layout.Placement
}

func (r *recorder) Place(p layout.Placement) error {
	r.placed = append(r.placed, p)
	return nil
}

func (r *recorder) ConfigureTracks(layout.Axis, []layout.Track) error {
	return nil
}

// Run replays sc on a fresh container. Configuration errors abort the run;
// a rejected step is recorded and the run continues.
func Run(ctx context.Context, sc Scenario, log *zap.Logger) (*Outcome, error) {
	if log == nil {
		log = zap.NewNop()
	}
	cfg, err := sc.Container.Config()
	if err != nil {
		return nil, fmt.Errorf("scenario %q: %w", sc.Name, err)
	}
	c, err := layout.NewContainer(cfg, layout.WithLogger(log.With(zap.String("scenario", sc.Name))))
	if err != nil {
		return nil, fmt.Errorf("scenario %q: %w", sc.Name, err)
	}

	out := &Outcome{Name: sc.Name, Container: c.ID().String(), Flavor: cfg.Flavor.String(), container: c}
	if cfg.Flavor == layout.FlavorSmartGrid {
		out.GrowthMode = c.GrowthMode().String()
	}

	host := &recorder{}
	for i, step := range sc.Steps {
		for range max(step.Repeat, 1) {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			out.Steps = append(out.Steps, runStep(c, host, i, step))
		}
	}

	out.Rows = tracksOf(c.Tracks(layout.Rows))
	out.Columns = tracksOf(c.Tracks(layout.Columns))
	out.Placements = viewsOf(c.Placements())
	ext := c.Extent()
	out.Extent = ExtentView{Rows: ext.Row, Columns: ext.Col}
	return out, nil
}

func runStep(c *layout.Container, host *recorder, index int, step Step) StepOutcome {
	so := StepOutcome{Index: index}
	var (
		changed []layout.Placement
		err     error
	)
	switch {
	case step.Remove != nil:
		so.Op = "remove"
		changed, err = c.Remove(*step.Remove)
	case step.Ensure != nil:
		so.Op = "ensure"
		var axis layout.Axis
		if axis, err = layout.ParseAxis(step.Ensure.Axis); err == nil {
			changed, err = c.EnsureTracks(axis, step.Ensure.Count)
		}
	case step.Reconfigure != nil:
		so.Op = "reconfigure"
		rc := step.Reconfigure
		var axis layout.Axis
		if axis, err = layout.ParseAxis(rc.Axis); err == nil {
			if axis == layout.Rows {
				err = c.ReconfigureRow(rc.Index, rc.Weight, rc.MinSize)
			} else {
				err = c.ReconfigureColumn(rc.Index, rc.Weight, rc.MinSize)
			}
		}
	default:
		so.Op = "attach"
		var in layout.Intent
		if in, err = step.Intent(); err == nil {
			host.placed = host.placed[:0]
			var p layout.Placement
			if p, err = layout.Attach(c, host, in); err == nil {
				so.Placement = layout.Ptr(viewOf(p))
				changed = host.placed[:len(host.placed)-1]
			}
		}
	}
	if err != nil {
		so.Error = err.Error()
		return so
	}
	so.Changed = viewsOf(changed)
	return so
}

// RunAll replays scenarios concurrently, at most workers at a time, and
// returns their outcomes in input order. The first error cancels the rest.
func RunAll(ctx context.Context, scenarios []Scenario, log *zap.Logger, workers int) ([]*Outcome, error) {
	outcomes := make([]*Outcome, len(scenarios))
	g, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}
	for i, sc := range scenarios {
		g.Go(func() error {
			out, err := Run(ctx, sc, log)
			if err != nil {
				return err
			}
			outcomes[i] = out
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return outcomes, nil
}
