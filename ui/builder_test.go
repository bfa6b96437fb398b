package ui

import (
	"testing"

	"github.com/pthm-cable/collide/config"
)

func TestAddGroupAssignsIncrementingIDs(t *testing.T) {
	b := NewScenarioBuilder(config.Scenario{})

	id1, err := b.AddGroup(10, "red", 5, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	id2, err := b.AddGroup(5, "blue", 3, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if id1 == id2 {
		t.Fatalf("expected distinct ids, got %q and %q", id1, id2)
	}
	if len(b.Scenario().Particles) != 2 {
		t.Fatalf("expected 2 particle groups, got %d", len(b.Scenario().Particles))
	}
}

func TestAddGroupRejectsInvalidInputs(t *testing.T) {
	b := NewScenarioBuilder(config.Scenario{})

	cases := []struct {
		n      int
		radius float64
		mass   float64
	}{
		{0, 5, 1},
		{10, 0, 1},
		{10, 5, 0},
		{10, -1, 1},
	}
	for _, tc := range cases {
		if _, err := b.AddGroup(tc.n, "red", tc.radius, tc.mass); err == nil {
			t.Errorf("AddGroup(%d, _, %f, %f) expected error, got nil", tc.n, tc.radius, tc.mass)
		}
	}
}

func TestRemoveGroup(t *testing.T) {
	b := NewScenarioBuilder(config.Scenario{})
	id, _ := b.AddGroup(10, "red", 5, 1)

	b.RemoveGroup(id)
	if _, ok := b.Scenario().Particles[id]; ok {
		t.Fatalf("expected group %q to be removed", id)
	}
}

func TestAddWallAssignsIncrementingIDs(t *testing.T) {
	b := NewScenarioBuilder(config.Scenario{})

	id1 := b.AddWall(0, 0, 10, 10)
	id2 := b.AddWall(5, 5, 15, 15)

	if id1 == id2 {
		t.Fatalf("expected distinct wall ids, got %q and %q", id1, id2)
	}
	if len(b.Scenario().Walls) != 2 {
		t.Fatalf("expected 2 walls, got %d", len(b.Scenario().Walls))
	}
}

func TestRemoveWall(t *testing.T) {
	b := NewScenarioBuilder(config.Scenario{})
	id := b.AddWall(0, 0, 10, 10)

	b.RemoveWall(id)
	if _, ok := b.Scenario().Walls[id]; ok {
		t.Fatalf("expected wall %q to be removed", id)
	}
}

func TestNewScenarioBuilderContinuesFromExistingIDs(t *testing.T) {
	existing := config.Scenario{
		Particles: map[string]config.ParticleGroup{
			"3": {N: 1, Radius: 1, Mass: 1},
		},
		Walls: map[string]config.WallSpec{},
	}
	b := NewScenarioBuilder(existing)

	id, err := b.AddGroup(1, "red", 1, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != "4" {
		t.Fatalf("expected next id 4, got %q", id)
	}
}
