// Package render implements the raylib-go concrete adapter for the
// scheduler's Renderer/Input interfaces (spec §6): draw/move/clear the
// window each frame, and poll key/pointer events.
package render

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/collide/camera"
	"github.com/pthm-cable/collide/particle"
)

// Adapter is the concrete raylib-go Renderer/Input implementation.
type Adapter struct {
	cam *camera.Camera
	bg  rl.Color
}

// NewAdapter opens a raylib window of the given size and returns an
// Adapter backed by cam for world-to-screen conversion.
func NewAdapter(width, height int32, title string, cam *camera.Camera) *Adapter {
	rl.InitWindow(width, height, title)
	rl.SetTargetFPS(60)
	return &Adapter{cam: cam, bg: rl.Black}
}

// Close shuts down the raylib window (spec §4.5 step 3's "close the
// window").
func (a *Adapter) Close() {
	rl.CloseWindow()
}

// SetBackground sets the clear color used by Clear (spec §6).
func (a *Adapter) SetBackground(r, g, b, alpha uint8) {
	a.bg = rl.Color{R: r, G: g, B: b, A: alpha}
}

// Clear begins a frame and paints the background (spec §6's clear()).
func (a *Adapter) Clear() {
	rl.BeginDrawing()
	rl.ClearBackground(a.bg)
}

// Draw renders every particle's current shape at its current position
// (spec §6's draw/move_to, collapsed into one per-frame call since the
// scheduler hands a full snapshot rather than incremental moves), then
// ends the frame. When paused, a banner overlay is drawn (spec's
// pause feature, supplemented from the original menu's pause()).
func (a *Adapter) Draw(particles []particle.Particle, paused bool) {
	for _, p := range particles {
		sx, sy := a.cam.WorldToScreen(float32(p.X), float32(p.Y))
		color := particleColor(p)

		switch p.Shape {
		case particle.Rect:
			w := float32(p.Width) * a.cam.Zoom
			h := float32(p.Height) * a.cam.Zoom
			rl.DrawRectangle(int32(sx-w/2), int32(sy-h/2), int32(w), int32(h), color)
		default:
			rl.DrawCircle(int32(sx), int32(sy), float32(p.Radius)*a.cam.Zoom, color)
		}
	}

	if paused {
		drawPauseBanner()
	}

	rl.EndDrawing()
}

func particleColor(p particle.Particle) rl.Color {
	if p.Infinite {
		return rl.Gray
	}
	return rl.SkyBlue
}

func drawPauseBanner() {
	w := rl.GetScreenWidth()

	text := "Paused"
	fontSize := int32(32)
	textW := rl.MeasureText(text, fontSize)
	rl.DrawText(text, (w-int(textW))/2, 20, fontSize, rl.RayWhite)

	hint := "Click to exit"
	hintSize := int32(18)
	hintW := rl.MeasureText(hint, hintSize)
	rl.DrawText(hint, (w-int(hintW))/2, 56, hintSize, rl.LightGray)
}

// PollSpacePressed reports whether Space was pressed this frame
// (spec §6's pause toggle).
func (a *Adapter) PollSpacePressed() bool {
	return rl.IsKeyPressed(rl.KeySpace)
}

// PollExit reports whether the window close button or Escape was
// pressed.
func (a *Adapter) PollExit() bool {
	return rl.WindowShouldClose() || rl.IsKeyPressed(rl.KeyEscape)
}

// PollClick reports whether the left mouse button was pressed this
// frame (spec's supplemented mouse-click exit signal).
func (a *Adapter) PollClick() bool {
	return rl.IsMouseButtonPressed(rl.MouseButtonLeft)
}

// HandleCameraInput applies arrow-key pan and wheel/+-/Home zoom
// controls to the adapter's camera (grounded on the teacher's
// handleCameraInput).
func (a *Adapter) HandleCameraInput() {
	panSpeed := float32(8.0) / a.cam.Zoom

	if rl.IsKeyDown(rl.KeyRight) {
		a.cam.Pan(panSpeed, 0)
	}
	if rl.IsKeyDown(rl.KeyLeft) {
		a.cam.Pan(-panSpeed, 0)
	}
	if rl.IsKeyDown(rl.KeyDown) {
		a.cam.Pan(0, panSpeed)
	}
	if rl.IsKeyDown(rl.KeyUp) {
		a.cam.Pan(0, -panSpeed)
	}

	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		a.cam.ZoomBy(1.0 + wheel*0.1)
	}
	if rl.IsKeyPressed(rl.KeyEqual) || rl.IsKeyPressed(rl.KeyKpAdd) {
		a.cam.ZoomBy(1.25)
	}
	if rl.IsKeyPressed(rl.KeyMinus) || rl.IsKeyPressed(rl.KeyKpSubtract) {
		a.cam.ZoomBy(0.8)
	}
	if rl.IsKeyPressed(rl.KeyHome) {
		a.cam.Reset()
	}
}
