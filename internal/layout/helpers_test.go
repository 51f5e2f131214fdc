package layout

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestContainer(t *testing.T, cfg Config) *Container {
	t.Helper()
	c, err := NewContainer(cfg)
	require.NoError(t, err)
	return c
}

// resolveAll resolves every intent in order and returns the results.
func resolveAll(t *testing.T, c *Container, intents ...Intent) []Result {
	t.Helper()
	out := make([]Result, 0, len(intents))
	for _, in := range intents {
		res, err := c.Resolve(in)
		require.NoError(t, err)
		out = append(out, res)
	}
	return out
}

// resolveN resolves n default intents.
func resolveN(t *testing.T, c *Container, n int) []Result {
	t.Helper()
	return resolveAll(t, c, make([]Intent, n)...)
}

func cellsOf(results []Result) []Cell {
	out := make([]Cell, len(results))
	for i, r := range results {
		out[i] = r.Placement.Cell()
	}
	return out
}

func gridConfig(flavor Flavor, columns ...TrackSpec) Config {
	cfg := DefaultConfig(flavor)
	cfg.Columns = columns
	return cfg
}
