// Package config reads runtime settings from DARKDELVE_-prefixed
// environment variables. Command-line flags in the binary override whatever
// the environment provides.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"darkdelve/pkg/game/generator"
)

// Config is every knob the binary honors. A zero Seed means derive one
// from entropy at startup.
type Config struct {
	Seed int64 `env:"DARKDELVE_SEED"`

	Floors             int     `env:"DARKDELVE_FLOORS"         envDefault:"5"`
	GridRows           int     `env:"DARKDELVE_GRID_ROWS"      envDefault:"30"`
	GridCols           int     `env:"DARKDELVE_GRID_COLS"      envDefault:"30"`
	MinSpacing         int     `env:"DARKDELVE_MIN_SPACING"    envDefault:"2"`
	RoomsMin           int     `env:"DARKDELVE_ROOMS_MIN"      envDefault:"8"`
	RoomsMax           int     `env:"DARKDELVE_ROOMS_MAX"      envDefault:"15"`
	ExtraHallwayChance float64 `env:"DARKDELVE_EXTRA_HALLWAYS" envDefault:"0.5"`

	DataDir  string `env:"DARKDELVE_DATA_DIR"`
	SavePath string `env:"DARKDELVE_SAVE_PATH" envDefault:"darkdelve-save.json"`
	NoColor  bool   `env:"DARKDELVE_NO_COLOR"`
}

// FromEnv parses the environment. Unset variables fall back to the tagged
// defaults.
func FromEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// GeneratorOptions maps the layout knobs onto the generator's options.
func (c Config) GeneratorOptions() generator.Options {
	return generator.Options{
		Floors:             c.Floors,
		Rows:               c.GridRows,
		Cols:               c.GridCols,
		MinSpacing:         c.MinSpacing,
		RoomsMin:           c.RoomsMin,
		RoomsMax:           c.RoomsMax,
		ExtraHallwayChance: c.ExtraHallwayChance,
	}
}
