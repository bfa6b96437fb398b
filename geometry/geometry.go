// Package geometry implements the pure collision-prediction and
// collision-response predicates used by the scheduler and prediction
// workers. Every function here is stateless: given positions,
// velocities, and shape parameters, it returns a time-to-collision or
// a post-collision velocity. Nothing in this package touches the
// particle store, the event heap, or simulation time.
package geometry

import "math"

// Point is a 2D point or vector in simulation space.
type Point struct {
	X, Y float64
}

// Hypot returns the Euclidean length of the vector.
func (p Point) Hypot() float64 {
	return math.Hypot(p.X, p.Y)
}

// Normalize returns p scaled to unit length. The zero vector is
// returned unchanged.
func (p Point) Normalize() Point {
	h := p.Hypot()
	if h == 0 {
		return p
	}
	return Point{X: p.X / h, Y: p.Y / h}
}

// Inf is the "no collision predicted" sentinel returned by every
// time-to-hit function.
var Inf = math.Inf(1)

// TimeToHit returns the time until two disks collide, given their
// positions, velocities and combined radius. Returns +Inf if the disks
// are not approaching, are tangent, or never meet.
//
// Closed-form solution of |Δr + tΔv| = σ for the smallest
// non-negative t (spec §4.1).
func TimeToHit(ax, ay, avx, avy, ar float64, bx, by, bvx, bvy, br float64) float64 {
	dx := bx - ax
	dy := by - ay
	dvx := bvx - avx
	dvy := bvy - avy

	dvdr := dx*dvx + dy*dvy
	if dvdr >= 0 {
		return Inf
	}

	dvdv := dvx*dvx + dvy*dvy
	drdr := dx*dx + dy*dy
	sigma := ar + br

	d := dvdr*dvdr - dvdv*(drdr-sigma*sigma)
	if d <= 0 {
		return Inf
	}

	return -(dvdr + math.Sqrt(d)) / dvdv
}

// TimeToHitVHalfPlane returns the time until a disk at (x, vx) with
// radius r hits a vertical half-plane at x = planeX.
func TimeToHitVHalfPlane(x, vx, r, planeX float64) float64 {
	if x < planeX && vx > 0 {
		return (planeX - r - x) / vx
	}
	if x > planeX && vx < 0 {
		return (planeX + r - x) / vx
	}
	return Inf
}

// TimeToHitHHalfPlane returns the time until a disk at (y, vy) with
// radius r hits a horizontal half-plane at y = planeY.
func TimeToHitHHalfPlane(y, vy, r, planeY float64) float64 {
	if y < planeY && vy > 0 {
		return (planeY - r - y) / vy
	}
	if y > planeY && vy < 0 {
		return (planeY + r - y) / vy
	}
	return Inf
}

// Impulse computes the elastic two-body momentum exchange. It returns
// the delta to add to a's velocity and (the negated-by-mass-ratio)
// delta to add to b's velocity, computed from the ORIGINAL relative
// velocity (spec §9 flags a source variant that reuses the updated
// velocity mid-calculation as almost certainly a bug; this computes
// both deltas from the same pre-collision Δv).
func Impulse(ax, ay, avx, avy, am float64, bx, by, bvx, bvy, bm float64) (da, db Point) {
	dx := bx - ax
	dy := by - ay
	dvx := bvx - avx
	dvy := bvy - avy

	dvdr := dx*dvx + dy*dvy
	dist := math.Sqrt(dx*dx + dy*dy)

	j := 2 * am * bm * dvdr / ((am + bm) * dist)
	fx := j * dx / dist
	fy := j * dy / dist

	da = Point{X: fx / am, Y: fy / am}
	db = Point{X: -fx / bm, Y: -fy / bm}
	return da, db
}

// reflectPrecision is the rounding applied to the line-segment outward
// normal before reflecting velocity, absorbing grazing-angle drift
// (spec §4.1).
const reflectPrecision = 1e10

func roundTo(v, precision float64) float64 {
	return math.Round(v*precision) / precision
}

// ReflectAcrossLine reflects velocity (vx, vy) across a line with the
// given angle (radians, as produced by Segment.Angle).
func ReflectAcrossLine(vx, vy, angle float64) (nvx, nvy float64) {
	nx := roundTo(-math.Sin(angle), reflectPrecision)
	ny := roundTo(math.Cos(angle), reflectPrecision)

	dot := nx*vx + ny*vy
	nvx = vx - 2*dot*nx
	nvy = vy - 2*dot*ny
	return nvx, nvy
}
