package particle

import "github.com/pthm-cable/collide/geometry"

// WallKind tags a Wall's variant (spec §3).
type WallKind int

const (
	VHalfPlane WallKind = iota
	HHalfPlane
	LineSegment
)

// Wall is the immutable tagged variant for the arena boundary and any
// interior obstacles. Built once at startup and never mutated.
type Wall struct {
	Index int
	Kind  WallKind

	// X is the plane position for VHalfPlane.
	X float64
	// Y is the plane position for HHalfPlane.
	Y float64

	// Segment carries the precomputed derived fields for LineSegment
	// walls (spec §3: p0, p1, dx, dy, length, angle).
	Segment geometry.Segment
}

// NewVHalfPlane builds a vertical half-plane wall at x = x.
func NewVHalfPlane(x float64) Wall {
	return Wall{Kind: VHalfPlane, X: x}
}

// NewHHalfPlane builds a horizontal half-plane wall at y = y.
func NewHHalfPlane(y float64) Wall {
	return Wall{Kind: HHalfPlane, Y: y}
}

// NewLineSegmentWall builds an oriented line-segment wall between p0
// and p1. p0 and p1 must differ.
func NewLineSegmentWall(p0, p1 geometry.Point) Wall {
	return Wall{Kind: LineSegment, Segment: geometry.NewSegment(p0, p1)}
}

// WallSet is the immutable collection of walls built at startup
// (spec §2.3). Lookup is by index, matching the wall index carried in
// Event.Wall for particle-wall events.
type WallSet struct {
	walls []Wall
}

// NewWallSet builds a WallSet from a list of walls, assigning each a
// stable index.
func NewWallSet(walls []Wall) *WallSet {
	out := make([]Wall, len(walls))
	for i, w := range walls {
		w.Index = i
		out[i] = w
	}
	return &WallSet{walls: out}
}

// Len returns the number of walls.
func (ws *WallSet) Len() int { return len(ws.walls) }

// Get returns the wall at idx.
func (ws *WallSet) Get(idx int) Wall { return ws.walls[idx] }

// All returns every wall, in index order.
func (ws *WallSet) All() []Wall { return ws.walls }

// TimeToHit dispatches to the geometry kernel function matching w's
// kind, returning the predicted time for particle p to reach w.
func (w Wall) TimeToHit(p Particle) float64 {
	switch w.Kind {
	case VHalfPlane:
		return geometry.TimeToHitVHalfPlane(p.X, p.VX, p.Radius, w.X)
	case HHalfPlane:
		return geometry.TimeToHitHHalfPlane(p.Y, p.VY, p.Radius, w.Y)
	case LineSegment:
		return geometry.TimeToHitSegment(p.X, p.Y, p.VX, p.VY, p.Radius, w.Segment)
	default:
		return geometry.Inf
	}
}

// BounceOffWall resolves particle idx's rebound off wall w in place,
// applying the anti-stickiness rule for line segments (spec §4.1).
func (s *Store) BounceOffWall(idx Index, w Wall) {
	p := &s.particles[idx]

	switch w.Kind {
	case VHalfPlane:
		s.SetVelocity(idx, -p.VX, p.VY)
		s.clearLastLine(idx)
	case HHalfPlane:
		s.SetVelocity(idx, p.VX, -p.VY)
		s.clearLastLine(idx)
	case LineSegment:
		if p.LastLine == w.Index {
			// Same segment rebounded off last time with no intervening
			// collision: no-op (anti-stickiness, spec §4.1).
			return
		}
		nvx, nvy := geometry.ReflectAcrossLine(p.VX, p.VY, w.Segment.Angle)
		s.SetVelocity(idx, nvx, nvy)
		s.particles[idx].LastLine = w.Index
	}
}
