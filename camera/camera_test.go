package camera

import (
	"math"
	"testing"
)

func TestNew(t *testing.T) {
	cam := New(1280, 720, 2560, 1440)

	if cam.X != 1280 || cam.Y != 720 {
		t.Errorf("expected camera at (1280, 720), got (%f, %f)", cam.X, cam.Y)
	}
	if cam.Zoom != 1.0 {
		t.Errorf("expected zoom 1.0, got %f", cam.Zoom)
	}
}

func TestWorldToScreenCentered(t *testing.T) {
	cam := New(1280, 720, 2560, 1440)

	sx, sy := cam.WorldToScreen(1280, 720)
	if math.Abs(float64(sx-640)) > 0.01 || math.Abs(float64(sy-360)) > 0.01 {
		t.Errorf("expected screen center (640, 360), got (%f, %f)", sx, sy)
	}
}

func TestScreenToWorldRoundtrip(t *testing.T) {
	cam := New(1280, 720, 2560, 1440)

	testCases := []struct{ sx, sy float32 }{
		{640, 360},
		{700, 400},
		{500, 300},
	}

	for _, tc := range testCases {
		wx, wy := cam.ScreenToWorld(tc.sx, tc.sy)
		sx, sy := cam.WorldToScreen(wx, wy)
		if math.Abs(float64(sx-tc.sx)) > 0.01 || math.Abs(float64(sy-tc.sy)) > 0.01 {
			t.Errorf("roundtrip failed: (%f,%f) -> (%f,%f) -> (%f,%f)",
				tc.sx, tc.sy, wx, wy, sx, sy)
		}
	}
}

func TestScreenToWorldClampsToArena(t *testing.T) {
	cam := New(1280, 720, 2560, 1440)

	// Far outside the viewport in screen space should clamp into the arena.
	wx, wy := cam.ScreenToWorld(-10000, -10000)
	if wx < 0 || wx > cam.ArenaW || wy < 0 || wy > cam.ArenaH {
		t.Errorf("expected clamped arena coordinates, got (%f, %f)", wx, wy)
	}
}

func TestPanClampsToArena(t *testing.T) {
	cam := New(1280, 720, 2560, 1440)
	cam.X = 100

	cam.Pan(-10000, 0)

	if cam.X < 0 || cam.X > cam.ArenaW {
		t.Errorf("expected X clamped within arena, got %f", cam.X)
	}
}

func TestZoomClamp(t *testing.T) {
	cam := New(1280, 720, 2560, 1440)

	if cam.MinZoom != 0.5 {
		t.Errorf("expected MinZoom 0.5, got %f", cam.MinZoom)
	}

	cam.SetZoom(0.1)
	if cam.Zoom != 0.5 {
		t.Errorf("expected zoom clamped to 0.5, got %f", cam.Zoom)
	}

	cam.SetZoom(10.0)
	if cam.Zoom != 4.0 {
		t.Errorf("expected zoom clamped to 4.0, got %f", cam.Zoom)
	}
}

func TestMinZoomPreventsDeadSpace(t *testing.T) {
	cam := New(800, 600, 1600, 800)

	if math.Abs(float64(cam.MinZoom-0.75)) > 0.001 {
		t.Errorf("expected MinZoom 0.75, got %f", cam.MinZoom)
	}

	cam.SetZoom(cam.MinZoom)
	visibleH := cam.ViewportH / cam.Zoom
	if math.Abs(float64(visibleH-cam.ArenaH)) > 0.01 {
		t.Errorf("at min zoom, visible height %f should equal arena height %f", visibleH, cam.ArenaH)
	}
}

func TestIsVisible(t *testing.T) {
	cam := New(1280, 720, 2560, 1440)

	if !cam.IsVisible(1280, 720, 10) {
		t.Error("center should be visible")
	}

	if cam.IsVisible(2400, 1300, 10) {
		t.Error("far point should not be visible")
	}

	if !cam.IsVisible(600, 720, 100) {
		t.Error("edge point with large radius should be visible")
	}
}

func TestReset(t *testing.T) {
	cam := New(1280, 720, 2560, 1440)
	cam.X = 500
	cam.Y = 500
	cam.Zoom = 2.5

	cam.Reset()

	if cam.X != 1280 || cam.Y != 720 {
		t.Errorf("expected position (1280, 720), got (%f, %f)", cam.X, cam.Y)
	}
	if cam.Zoom != 1.0 {
		t.Errorf("expected zoom 1.0, got %f", cam.Zoom)
	}
}
