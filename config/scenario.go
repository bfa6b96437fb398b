package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Shape names a particle group's collision shape (spec §6).
type Shape string

const (
	ShapeDisk Shape = "disk"
	ShapeRect Shape = "rect"
)

// ParticleGroup describes zero or more particles sharing the same
// physical parameters (spec §6): "n (count), radius, mass, color,
// optional shape, optional width, height". Position and velocity are
// left unspecified here and drawn uniformly at random by cmd/collide's
// buildWorld.
type ParticleGroup struct {
	N      int     `yaml:"n"`
	Radius float64 `yaml:"radius"`
	Mass   float64 `yaml:"mass"`
	Color  string  `yaml:"color"`
	Shape  Shape   `yaml:"shape,omitempty"`
	Width  float64 `yaml:"width,omitempty"`
	Height float64 `yaml:"height,omitempty"`
}

// WallSpec describes one line-segment wall by its two endpoints
// (spec §6). Axis-aligned boundary walls are not listed here;
// cmd/collide's buildWorld creates them from the arena dimensions.
type WallSpec struct {
	P0X float64 `yaml:"p0x"`
	P0Y float64 `yaml:"p0y"`
	P1X float64 `yaml:"p1x"`
	P1Y float64 `yaml:"p1y"`
}

// Scenario is the persisted particles/walls document (spec §6):
// "a small configuration document on disk... with two keys: particles
// and walls, each a mapping from string id to the group/wall record."
type Scenario struct {
	Particles map[string]ParticleGroup `yaml:"particles"`
	Walls     map[string]WallSpec      `yaml:"walls"`
}

// DefaultScenario returns a small built-in particle/wall layout, used
// when no persisted or procedural scenario is selected (supplements
// the embedded defaults with a runnable starting point, per the
// original Python menu's "Default" scenario).
func DefaultScenario() Scenario {
	return Scenario{
		Particles: map[string]ParticleGroup{
			"1": {N: 30, Radius: 5, Mass: 1, Color: "white"},
		},
		Walls: map[string]WallSpec{},
	}
}

// LoadScenario reads a persisted particles/walls document from path
// (spec §6's "Persisted state": load + save, human-editable, bit-
// exactness not required).
func LoadScenario(path string) (Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Scenario{}, fmt.Errorf("reading scenario file: %w", err)
	}
	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Scenario{}, fmt.Errorf("parsing scenario file: %w", err)
	}
	return s, nil
}

// SaveScenario writes s to path as a particles/walls YAML document.
func SaveScenario(path string, s Scenario) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("encoding scenario: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing scenario file: %w", err)
	}
	return nil
}
