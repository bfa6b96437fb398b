// Package ui implements the raygui-based New/Restart/Exit menu and a
// particle-group/wall editing table (spec §6's CLI / control surface,
// supplemented with a scenario picker per the original Python menu's
// "Default"/scenario buttons).
package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	gui "github.com/gen2brain/raylib-go/raygui"

	"github.com/pthm-cable/collide/config"
)

// ScenarioChoice names which scenario the menu selected.
type ScenarioChoice int

const (
	// ScenarioDefault loads the small built-in layout.
	ScenarioDefault ScenarioChoice = iota
	// ScenarioPersisted loads a previously saved particles/walls file.
	ScenarioPersisted
	// ScenarioProcedural generates a noise-scattered wall layout.
	ScenarioProcedural
)

// Menu is the raygui New/Restart/Exit start screen.
type Menu struct {
	width, height int32

	persistedPath string
}

// NewMenu builds a Menu for a window of the given size. persistedPath
// is the file New/Restart attempt to load when ScenarioPersisted is
// chosen.
func NewMenu(width, height int32, persistedPath string) *Menu {
	return &Menu{width: width, height: height, persistedPath: persistedPath}
}

// Result is what the menu produced after the user made a selection.
type Result struct {
	Scenario ScenarioChoice
	Exit     bool
}

// Draw renders the menu's buttons into the caller's already-open
// frame and returns the user's choice once one is pressed; ok is
// false while the menu is still waiting for input. The caller owns
// BeginDrawing/EndDrawing and ClearBackground so other panels (the
// particle-group editor) can share the same frame.
func (m *Menu) Draw() (result Result, ok bool) {
	cx := m.width/2 - 100
	y := m.height/2 - 80

	rl.DrawText("2D Elastic Collision Scheduler", cx-40, y-60, 20, rl.RayWhite)

	if gui.Button(rl.Rectangle{X: float32(cx), Y: float32(y), Width: 200, Height: 36}, "New (Default)") {
		result, ok = Result{Scenario: ScenarioDefault}, true
	}
	if gui.Button(rl.Rectangle{X: float32(cx), Y: float32(y + 46), Width: 200, Height: 36}, "Restart (Persisted)") {
		result, ok = Result{Scenario: ScenarioPersisted}, true
	}
	if gui.Button(rl.Rectangle{X: float32(cx), Y: float32(y + 92), Width: 200, Height: 36}, "Procedural Walls") {
		result, ok = Result{Scenario: ScenarioProcedural}, true
	}
	if gui.Button(rl.Rectangle{X: float32(cx), Y: float32(y + 138), Width: 200, Height: 36}, "Exit") {
		result, ok = Result{Exit: true}, true
	}

	return result, ok
}

// PersistedPath returns the path Restart loads from.
func (m *Menu) PersistedPath() string { return m.persistedPath }

// LoadChosenScenario resolves a ScenarioChoice into a concrete
// config.Scenario.
func LoadChosenScenario(choice ScenarioChoice, persistedPath string) (config.Scenario, error) {
	switch choice {
	case ScenarioPersisted:
		return config.LoadScenario(persistedPath)
	default:
		return config.DefaultScenario(), nil
	}
}
