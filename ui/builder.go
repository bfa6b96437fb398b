package ui

import (
	"fmt"

	"github.com/pthm-cable/collide/config"
)

// ScenarioBuilder accumulates particle groups and walls into a
// config.Scenario, mirroring the original menu's particle/wall
// editing table: each Add assigns the next integer id, each Remove
// deletes by that id.
type ScenarioBuilder struct {
	scenario config.Scenario
	nextRow  int
	nextWall int
}

// NewScenarioBuilder starts a builder from an existing scenario (or a
// zero-valued one to build from scratch).
func NewScenarioBuilder(s config.Scenario) *ScenarioBuilder {
	b := &ScenarioBuilder{scenario: s}
	if b.scenario.Particles == nil {
		b.scenario.Particles = map[string]config.ParticleGroup{}
	}
	if b.scenario.Walls == nil {
		b.scenario.Walls = map[string]config.WallSpec{}
	}
	for id := range b.scenario.Particles {
		if n := parseRowID(id); n > b.nextRow {
			b.nextRow = n
		}
	}
	for id := range b.scenario.Walls {
		if n := parseRowID(id); n > b.nextWall {
			b.nextWall = n
		}
	}
	return b
}

func parseRowID(id string) int {
	var n int
	if _, err := fmt.Sscanf(id, "%d", &n); err != nil {
		return 0
	}
	return n
}

// AddGroup validates the inputs (all must be positive) and inserts a
// new particle group, returning its assigned row id.
func (b *ScenarioBuilder) AddGroup(n int, color string, radius, mass float64) (string, error) {
	if n <= 0 {
		return "", fmt.Errorf("particle count must be positive, got %d", n)
	}
	if radius <= 0 {
		return "", fmt.Errorf("radius must be positive, got %f", radius)
	}
	if mass <= 0 {
		return "", fmt.Errorf("mass must be positive, got %f", mass)
	}

	b.nextRow++
	id := fmt.Sprintf("%d", b.nextRow)
	b.scenario.Particles[id] = config.ParticleGroup{
		N:      n,
		Radius: radius,
		Mass:   mass,
		Color:  color,
		Shape:  config.ShapeDisk,
		Width:  radius * 2,
		Height: radius * 2,
	}
	return id, nil
}

// RemoveGroup deletes a particle group by its row id.
func (b *ScenarioBuilder) RemoveGroup(id string) {
	delete(b.scenario.Particles, id)
}

// AddWall inserts a new line-segment wall, returning its assigned row id.
func (b *ScenarioBuilder) AddWall(p0x, p0y, p1x, p1y float64) string {
	b.nextWall++
	id := fmt.Sprintf("%d", b.nextWall)
	b.scenario.Walls[id] = config.WallSpec{P0X: p0x, P0Y: p0y, P1X: p1x, P1Y: p1y}
	return id
}

// RemoveWall deletes a wall by its row id.
func (b *ScenarioBuilder) RemoveWall(id string) {
	delete(b.scenario.Walls, id)
}

// Scenario returns the built document.
func (b *ScenarioBuilder) Scenario() config.Scenario {
	return b.scenario
}
