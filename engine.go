package tracks

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/grindlemire/go-tracks/internal/geometry"
	"github.com/grindlemire/go-tracks/internal/layout"
)

// Engine creates containers and resolves items against them. It holds no
// per-container state: every call names the container it acts on, and a
// container must only be used from one goroutine at a time.
type Engine struct {
	log   *zap.Logger
	newID func() uuid.UUID
}

// NewEngine creates an Engine with the given options.
func NewEngine(opts ...EngineOption) (*Engine, error) {
	e := &Engine{
		log:   zap.NewNop(),
		newID: uuid.New,
	}
	for _, opt := range opts {
		if err := opt(e); err != nil {
			return nil, fmt.Errorf("tracks: %w", err)
		}
	}
	return e, nil
}

// NewContainer validates cfg and creates an empty container.
func (e *Engine) NewContainer(cfg Config) (*Container, error) {
	c, err := layout.NewContainer(cfg, layout.WithLogger(e.log), layout.WithID(e.newID()))
	if err != nil {
		e.log.Warn("rejected configuration", zap.Error(err))
		return nil, err
	}
	e.log.Debug("created container", zap.Stringer("container", c.ID()), zap.Stringer("flavor", cfg.Flavor))
	return c, nil
}

// Resolve places one item. The returned Result also lists earlier items the
// placement moved.
func (e *Engine) Resolve(c *Container, in Intent) (Result, error) {
	return c.Resolve(in)
}

// Attach resolves in and applies the outcome to h: track changes first,
// then moved items, then the new item.
func (e *Engine) Attach(c *Container, h Host, in Intent) (Placement, error) {
	return layout.Attach(c, h, in)
}

// Remove releases the item with the given id and returns the placements
// that moved as a result.
func (e *Engine) Remove(c *Container, id int) ([]Placement, error) {
	return c.Remove(id)
}

// ReconfigureRow overrides the weight and minimum size of a row track,
// growing the row tracks if needed.
func (e *Engine) ReconfigureRow(c *Container, index, weight, minSize int) error {
	return c.ReconfigureRow(index, weight, minSize)
}

// ReconfigureColumn overrides the weight and minimum size of a column track,
// growing the column tracks if needed.
func (e *Engine) ReconfigureColumn(c *Container, index, weight, minSize int) error {
	return c.ReconfigureColumn(index, weight, minSize)
}

// EnsureTracks grows axis to at least n tracks.
func (e *Engine) EnsureTracks(c *Container, axis Axis, n int) ([]Placement, error) {
	return c.EnsureTracks(axis, n)
}

// Redistribute recomputes track weights from the container's current items.
func (e *Engine) Redistribute(c *Container) {
	c.Redistribute()
}

// Geometry solves c's tracks against bounds, for hosts without a native
// grid manager.
func (e *Engine) Geometry(c *Container, bounds Rect) Geometry {
	return geometry.Layout(c, bounds)
}
