package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grindlemire/go-tracks/internal/scenario"
)

const twoScenarios = `
name: stack
container: {flavor: stack, gap: 2}
steps:
  - repeat: 2
---
name: grid
container:
  flavor: grid
  columns: 2
steps:
  - col_span: 2
  - {}
  - row_span: -1
`

// execute runs the CLI in an empty directory so no tracks.yaml is picked up.
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	t.Chdir(t.TempDir())
	t.Setenv("TRACKS_DEBUG", "")

	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func writeScenarios(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenarios.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestResolve(t *testing.T) {
	path := writeScenarios(t, twoScenarios)

	out, err := execute(t, "", "resolve", "--log-level", "error", path)
	require.NoError(t, err)

	var outcomes []scenario.Outcome
	require.NoError(t, codec.Unmarshal([]byte(out), &outcomes))
	require.Len(t, outcomes, 2)

	stack := outcomes[0]
	assert.Equal(t, "stack", stack.Name)
	assert.Equal(t, "stack", stack.Flavor)
	require.Len(t, stack.Placements, 2)
	assert.Equal(t, [2]int{2, 0}, stack.Placements[1].PadY)

	grid := outcomes[1]
	require.Len(t, grid.Steps, 3)
	assert.Equal(t, 2, grid.Steps[0].Placement.ColSpan)
	assert.Equal(t, 1, grid.Steps[1].Placement.Row)
	assert.NotEmpty(t, grid.Steps[2].Error)
	assert.Len(t, grid.Placements, 2)
}

func TestResolve_StdinAndPretty(t *testing.T) {
	out, err := execute(t, twoScenarios, "resolve", "--pretty", "--workers", "1")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "[\n  {"), "indented output, got %q", out[:min(len(out), 20)])
}

func TestResolve_ExplicitZeroWorkers(t *testing.T) {
	help, err := execute(t, "", "resolve", "--help")
	require.NoError(t, err)
	assert.Contains(t, help, "0 for no limit (defaults to run.workers)")

	// An explicit 0 overrides the configured limit rather than deferring to it.
	out, err := execute(t, twoScenarios, "resolve", "--workers", "0")
	require.NoError(t, err)
	var outcomes []scenario.Outcome
	require.NoError(t, codec.Unmarshal([]byte(out), &outcomes))
	assert.Len(t, outcomes, 2)
}

func TestResolve_Errors(t *testing.T) {
	type tc struct {
		stdin string
		args  []string
	}

	tests := map[string]tc{
		"missing file":    {args: []string{"resolve", filepath.Join(os.TempDir(), "nope", "x.yaml")}},
		"empty input":     {args: []string{"resolve"}},
		"bad config":      {stdin: "container: {flavor: pyramid}", args: []string{"resolve"}},
		"bad config file": {stdin: twoScenarios, args: []string{"resolve", "--config", filepath.Join(os.TempDir(), "nope", "tracks.yaml")}},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := execute(t, tt.stdin, tt.args...)
			assert.Error(t, err)
		})
	}
}

func TestRender(t *testing.T) {
	path := writeScenarios(t, twoScenarios)
	dir := filepath.Join(t.TempDir(), "previews")

	out, err := execute(t, "", "render", "-o", dir, "--width", "120", "--height", "80", path)
	require.NoError(t, err)

	lines := strings.Fields(out)
	sort.Strings(lines)
	assert.Equal(t, []string{filepath.Join(dir, "grid.png"), filepath.Join(dir, "stack.png")}, lines)
	for _, l := range lines {
		info, err := os.Stat(l)
		require.NoError(t, err)
		assert.Positive(t, info.Size())
	}
}

func TestRender_OnlyOneScenario(t *testing.T) {
	path := writeScenarios(t, twoScenarios)
	dir := t.TempDir()

	out, err := execute(t, "", "render", "-o", dir, "--scenario", "grid", path)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "grid.png")+"\n", out)

	_, err = execute(t, "", "render", "-o", dir, "--scenario", "missing", path)
	assert.EqualError(t, err, `no scenario named "missing"`)
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "tracks version "+Version))
}

func TestFileName(t *testing.T) {
	assert.Equal(t, "a_b_c_d", fileName("a/b c:d"))
}
