// Package config loads CLI settings from a YAML file, TRACKS_* environment
// variables and flags, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. TRACKS_LOG_LEVEL.
const EnvPrefix = "TRACKS"

// Config is the full CLI configuration.
type Config struct {
	Log    LogConfig    `mapstructure:"log" yaml:"log"`
	Output OutputConfig `mapstructure:"output" yaml:"output"`
	Render RenderConfig `mapstructure:"render" yaml:"render"`
	Run    RunConfig    `mapstructure:"run" yaml:"run"`
}

// LogConfig configures the process logger.
type LogConfig struct {
	Level      string `mapstructure:"level" yaml:"level"`
	Format     string `mapstructure:"format" yaml:"format"` // console or json
	File       string `mapstructure:"file" yaml:"file"`     // Optional JSON log file, rotated
	MaxSize    int    `mapstructure:"max_size" yaml:"max_size"`
	MaxBackups int    `mapstructure:"max_backups" yaml:"max_backups"`
	MaxAge     int    `mapstructure:"max_age" yaml:"max_age"`
	Compress   bool   `mapstructure:"compress" yaml:"compress"`
}

// OutputConfig controls how outcomes are printed.
type OutputConfig struct {
	Pretty bool `mapstructure:"pretty" yaml:"pretty"`
}

// RenderConfig controls PNG previews.
type RenderConfig struct {
	Width      int  `mapstructure:"width" yaml:"width"`
	Height     int  `mapstructure:"height" yaml:"height"`
	CellLabels bool `mapstructure:"cell_labels" yaml:"cell_labels"`
	ItemWidth  int  `mapstructure:"item_width" yaml:"item_width"`
	ItemHeight int  `mapstructure:"item_height" yaml:"item_height"`
}

// RunConfig controls batch replays.
type RunConfig struct {
	Workers int `mapstructure:"workers" yaml:"workers"`
}

// SetDefaults registers every key with its default value. Keys without a
// default are invisible to environment overrides.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("log.file", "")
	v.SetDefault("log.max_size", 10)
	v.SetDefault("log.max_backups", 3)
	v.SetDefault("log.max_age", 7)
	v.SetDefault("log.compress", false)

	v.SetDefault("output.pretty", false)

	v.SetDefault("render.width", 640)
	v.SetDefault("render.height", 480)
	v.SetDefault("render.cell_labels", true)
	v.SetDefault("render.item_width", 0)
	v.SetDefault("render.item_height", 0)

	v.SetDefault("run.workers", 4)
}

// Load reads path, or ./tracks.yaml when path is empty, into v and decodes
// the result. A missing default file is not an error; a missing explicit
// one is.
func Load(v *viper.Viper, path string) (Config, error) {
	SetDefaults(v)
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("tracks")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return cfg, cfg.Validate()
}

// Validate rejects values no command can work with.
func (c Config) Validate() error {
	switch {
	case c.Log.Format != "console" && c.Log.Format != "json":
		return fmt.Errorf("log.format must be console or json, got %q", c.Log.Format)
	case c.Render.Width <= 0 || c.Render.Height <= 0:
		return fmt.Errorf("render size must be positive, got %dx%d", c.Render.Width, c.Render.Height)
	case c.Render.ItemWidth < 0 || c.Render.ItemHeight < 0:
		return errors.New("render item size must be >= 0")
	case c.Run.Workers < 0:
		return fmt.Errorf("run.workers must be >= 0, got %d", c.Run.Workers)
	}
	return nil
}
