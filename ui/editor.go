package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
	gui "github.com/gen2brain/raylib-go/raygui"
)

// Editor draws the raygui particle-group editing panel: sliders for
// count/radius/mass and an Add Group button, laid out with raygui
// SliderBar and Button calls.
type Editor struct {
	builder *ScenarioBuilder

	panelX, panelY float32

	count  float32
	radius float32
	mass   float32
	color  string
}

// NewEditor creates an Editor backed by b, drawing its panel with its
// top-left corner at (x, y).
func NewEditor(b *ScenarioBuilder, x, y float32) *Editor {
	return &Editor{
		builder: b,
		panelX:  x,
		panelY:  y,
		count:   10,
		radius:  5,
		mass:    1,
		color:   "white",
	}
}

// Draw renders one frame of the editing panel. It returns the id of a
// newly added group, or "" if nothing was added this frame.
func (e *Editor) Draw() string {
	x, y := e.panelX, e.panelY

	rl.DrawText("Add Particle Group", int32(x), int32(y), 18, rl.RayWhite)

	e.count = gui.SliderBar(
		rl.Rectangle{X: x, Y: y + 30, Width: 200, Height: 20},
		"count", fmt.Sprintf("%.0f", e.count), e.count, 1, 200,
	)
	e.radius = gui.SliderBar(
		rl.Rectangle{X: x, Y: y + 60, Width: 200, Height: 20},
		"radius", fmt.Sprintf("%.1f", e.radius), e.radius, 1, 50,
	)
	e.mass = gui.SliderBar(
		rl.Rectangle{X: x, Y: y + 90, Width: 200, Height: 20},
		"mass", fmt.Sprintf("%.1f", e.mass), e.mass, 0.1, 50,
	)

	if gui.Button(rl.Rectangle{X: x, Y: y + 120, Width: 200, Height: 30}, "Add Group") {
		id, err := e.builder.AddGroup(int(e.count), e.color, float64(e.radius), float64(e.mass))
		if err == nil {
			return id
		}
	}

	return ""
}
