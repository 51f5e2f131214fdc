// Package layout turns declarative placement intents into cell assignments,
// track weights and padding for a row/column grid.
//
// A [Container] holds one container's tracks, occupancy and cursor. Its
// flavor decides the policy: a linear stack, an auto-flow grid, a flexbox
// emulation built from spacer tracks, or a grid that renders its gap as
// edge-trimmed padding. Items are resolved one at a time with
// [Container.Resolve]; each call returns a [Placement] plus the earlier
// placements the call changed. Types are re-exported through the root tracks
// package for public consumption.
//
// The package never draws anything. [Attach] hands results to a [Host],
// which turns them into real geometry calls.
package layout
