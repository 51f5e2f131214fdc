package layout

// Host is anything that can carry out placements: a toolkit adapter, a
// preview renderer, or a recorder in tests.
type Host interface {
	// Place applies p to its item. It is called for the new item and again
	// for every earlier item whose placement changed.
	Place(p Placement) error

	// ConfigureTracks applies the container's current tracks on one axis.
	ConfigureTracks(axis Axis, tracks []Track) error
}

// Attach resolves in against c and hands the outcome to h: first the tracks
// of both axes, then the changed placements, then the new one. The cells are
// already reserved when h sees them.
func Attach(c *Container, h Host, in Intent) (Placement, error) {
	res, err := c.Resolve(in)
	if err != nil {
		return Placement{}, err
	}
	for _, axis := range []Axis{Rows, Columns} {
		if err := h.ConfigureTracks(axis, c.Tracks(axis)); err != nil {
			return res.Placement, err
		}
	}
	for _, p := range res.Changed {
		if err := h.Place(p); err != nil {
			return res.Placement, err
		}
	}
	return res.Placement, h.Place(res.Placement)
}
