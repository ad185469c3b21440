// Package config loads the tunable constants the overlay matcher uses,
// decoding a BurntSushi/toml document onto the defaults.
package config

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/stencilgraph/stencilgraph/pkg/sgerrors"
)

// Config holds the matcher and renderer tunables. Zero value is invalid;
// use Default or Load.
type Config struct {
	Matcher MatcherConfig `toml:"matcher"`
	Log     LogConfig     `toml:"log"`
}

// MatcherConfig holds the geometric constants the overlay matcher uses to
// shape the bracket, parenthesis and tilde crossing stencils.
type MatcherConfig struct {
	// CrossingLength, as a fraction of a cell, sets how long the notch a
	// crossing stencil cuts into its line is.
	CrossingLength float64 `toml:"crossing_length"`
	// CrossingHeight, as a fraction of a cell, sets how far that notch
	// bulges out of the line.
	CrossingHeight float64 `toml:"crossing_height"`
	// DefaultStrokeStyle names a line style for polygons and open graphs
	// that carry no overlay-specific style. No package in this module
	// reads it.
	DefaultStrokeStyle string `toml:"default_stroke_style"`
}

// LogConfig holds a log level name. The CLI does not read it; its log
// level comes from the --verbose flag.
type LogConfig struct {
	Level string `toml:"level"`
}

// Default returns the configuration using the literal constants the
// overlay matcher is specified against.
func Default() Config {
	return Config{
		Matcher: MatcherConfig{
			CrossingLength:     0.5,
			CrossingHeight:     0.25,
			DefaultStrokeStyle: "solid",
		},
		Log: LogConfig{Level: "info"},
	}
}

// Load reads a TOML document from path and overlays it onto Default.
// Missing fields keep their default value.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, sgerrors.Wrap(sgerrors.ErrCodeConfig, err, "read config %s", path)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, sgerrors.Wrap(sgerrors.ErrCodeConfig, err, "parse config %s", path)
	}
	return cfg, nil
}
