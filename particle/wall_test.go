package particle

import (
	"math"
	"testing"

	"github.com/pthm-cable/collide/geometry"
)

func TestNewWallSetAssignsIndices(t *testing.T) {
	ws := NewWallSet([]Wall{
		NewVHalfPlane(0),
		NewHHalfPlane(0),
		NewLineSegmentWall(geometry.Point{X: 0, Y: 0}, geometry.Point{X: 1, Y: 1}),
	})

	if ws.Len() != 3 {
		t.Fatalf("Len() = %v, want 3", ws.Len())
	}
	for i, w := range ws.All() {
		if w.Index != i {
			t.Fatalf("wall %d has Index %v", i, w.Index)
		}
	}
}

func TestWallTimeToHitVHalfPlane(t *testing.T) {
	w := NewVHalfPlane(100)
	p := NewDisk(0, 5, 10, 0, 5, 1)

	got := w.TimeToHit(p)
	want := (100 - 5 - 0) / 10.0
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("TimeToHit = %v, want %v", got, want)
	}
}

func TestWallTimeToHitHHalfPlaneScenarioS2(t *testing.T) {
	// Scenario S2: disk r=5 at (100, 5), v=(0,-10); top wall at y=0.
	w := NewHHalfPlane(0)
	p := NewDisk(100, 5, 0, -10, 5, 1)

	got := w.TimeToHit(p)
	if got != 0 {
		t.Fatalf("TimeToHit = %v, want 0", got)
	}
}

func TestWallTimeToHitLineSegmentScenarioS3(t *testing.T) {
	// Scenario S3: disk r=5 at (45, 30), v=(10, 0); segment (60,20)-(60,40).
	w := NewLineSegmentWall(geometry.Point{X: 60, Y: 20}, geometry.Point{X: 60, Y: 40})
	p := NewDisk(45, 30, 10, 0, 5, 1)

	got := w.TimeToHit(p)
	want := 1.0
	if math.Abs(got-want) > 1e-6 {
		t.Fatalf("TimeToHit = %v, want %v", got, want)
	}
}
