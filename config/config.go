// Package config provides configuration loading and access for the
// simulation: simulation-wide parameters plus the particle groups and
// walls the scheduler is seeded with (spec §6).
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds every simulation-wide parameter.
type Config struct {
	Arena      ArenaConfig      `yaml:"arena"`
	Simulation SimulationConfig `yaml:"simulation"`
	Procedural ProceduralConfig `yaml:"procedural"`
	Telemetry  TelemetryConfig  `yaml:"telemetry"`
}

// ArenaConfig holds the bounded simulation area's dimensions.
type ArenaConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// SimulationConfig holds scheduler tuning parameters (spec §4.5).
// cmd/collide passes Workers to the scheduler and uses the speed range
// to scatter particles. TicksPerSecond and Horizon are loaded but not
// read: the scheduler runs at scheduler.TicksPerSecond and predicts up
// to scheduler.DefaultHorizon.
type SimulationConfig struct {
	TicksPerSecond int     `yaml:"ticks_per_second"`
	Workers        int     `yaml:"workers"`
	Horizon        float64 `yaml:"horizon"`
	SpeedRangeMin  float64 `yaml:"speed_range_min"`
	SpeedRangeMax  float64 `yaml:"speed_range_max"`
}

// ProceduralConfig holds opensimplex wall-scattering parameters.
type ProceduralConfig struct {
	Enabled   bool    `yaml:"enabled"`
	Seed      int64   `yaml:"seed"`
	WallCount int     `yaml:"wall_count"`
	MinLength float64 `yaml:"min_length"`
	MaxLength float64 `yaml:"max_length"`
	Frequency float64 `yaml:"frequency"`
}

// TelemetryConfig holds drift-monitoring window parameters.
type TelemetryConfig struct {
	WindowSeconds   float64 `yaml:"window_seconds"`
	MomentumDriftOK float64 `yaml:"momentum_drift_tolerance"`
	EnergyDriftOK   float64 `yaml:"energy_drift_tolerance"`
	CSVPath         string  `yaml:"csv_path"`
}

var global *Config

// Init loads configuration from the given path, or uses embedded
// defaults if path is empty. Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded
// defaults. If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if cfg.Arena.Width <= 0 || cfg.Arena.Height <= 0 {
		return nil, fmt.Errorf("config: arena dimensions must be positive, got %vx%v", cfg.Arena.Width, cfg.Arena.Height)
	}
	if cfg.Simulation.Workers <= 0 {
		return nil, fmt.Errorf("config: simulation.workers must be positive, got %v", cfg.Simulation.Workers)
	}

	return cfg, nil
}
