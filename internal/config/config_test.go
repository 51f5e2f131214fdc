package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tracks.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load(viper.New(), "")
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.Equal(t, 640, cfg.Render.Width)
	assert.True(t, cfg.Render.CellLabels)
	assert.Equal(t, 4, cfg.Run.Workers)
}

func TestLoad_FileAndEnv(t *testing.T) {
	path := writeFile(t, `
log:
  level: debug
  format: json
render:
  width: 320
  cell_labels: false
`)
	t.Setenv("TRACKS_RENDER_HEIGHT", "200")
	t.Setenv("TRACKS_LOG_LEVEL", "warn")

	cfg, err := Load(viper.New(), path)
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Log.Level, "env beats file")
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, 320, cfg.Render.Width)
	assert.Equal(t, 200, cfg.Render.Height)
	assert.False(t, cfg.Render.CellLabels)
}

func TestLoad_Errors(t *testing.T) {
	type tc struct {
		body string
		path string
	}

	tests := map[string]tc{
		"missing explicit file": {path: filepath.Join(os.TempDir(), "does-not-exist", "tracks.yaml")},
		"bad format":            {body: "log: {format: xml}"},
		"bad size":              {body: "render: {width: 0}"},
		"negative workers":      {body: "run: {workers: -1}"},
		"malformed yaml":        {body: "log: [unclosed"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			path := tt.path
			if path == "" {
				path = writeFile(t, tt.body)
			}
			_, err := Load(viper.New(), path)
			assert.Error(t, err)
		})
	}
}
