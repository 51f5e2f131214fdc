// Package tracks resolves declarative placement intents into grid tracks,
// cell coordinates and padding.
//
// A host creates one container per layout, then attaches items to it one at
// a time. Every attach returns the new item's Placement plus any earlier
// placements the attach moved, so the host can re-issue its own geometry
// calls:
//
//	eng, err := tracks.NewEngine(tracks.WithLogger(log))
//	c, err := eng.NewContainer(tracks.DefaultConfig(tracks.FlavorSmartGrid))
//	res, err := eng.Resolve(c, tracks.Intent{ColSpan: 2})
//
// Four container flavors share one track and occupancy model: stacks, grids
// with auto-flow, single-line flex containers and smart grids that split
// gaps between neighbours and grow on demand.
package tracks
