package geometry

import "math"

// Segment is an oriented line segment with precomputed derived fields,
// as specified for the wall variant LineSegment (spec §3).
type Segment struct {
	P0, P1       Point
	Dx, Dy       float64
	Length       float64
	Angle        float64 // atan2(Dy, Dx)
}

// NewSegment builds a Segment from two endpoints, precomputing its
// derived fields. p0 and p1 must differ (length > 0).
func NewSegment(p0, p1 Point) Segment {
	dx := p1.X - p0.X
	dy := p1.Y - p0.Y
	return Segment{
		P0:     p0,
		P1:     p1,
		Dx:     dx,
		Dy:     dy,
		Length: math.Hypot(dx, dy),
		Angle:  math.Atan2(dy, dx),
	}
}

// segmentSampleCount returns K, the number of forward-ray samples used
// by TimeToHitSegment, scaled by radius and forced odd so the forward
// point is represented (spec §4.1).
func segmentSampleCount(r float64) int {
	k := int(math.Floor(r)) + 5
	if k > 31 {
		k = 31
	}
	if k%2 == 0 {
		k++
	}
	return k
}

// raySegmentHit intersects the ray p -> p + s*v (s >= 0) with segment
// seg, returning the earliest non-negative travel time along v, or
// +Inf if the ray never reaches the segment.
func raySegmentHit(px, py, vx, vy float64, seg Segment) float64 {
	// Solve p + t*v = seg.P0 + u*(seg.P1 - seg.P0) for t >= 0, u in [0, 1].
	denom := vx*seg.Dy - vy*seg.Dx
	if denom == 0 {
		return Inf // parallel
	}

	wx := seg.P0.X - px
	wy := seg.P0.Y - py

	u := (wx*vy - wy*vx) / denom
	if u < 0 || u > 1 {
		return Inf
	}

	var t float64
	if vx != 0 {
		t = (seg.P0.X + u*seg.Dx - px) / vx
	} else if vy != 0 {
		t = (seg.P0.Y + u*seg.Dy - py) / vy
	} else {
		return Inf
	}

	if t < 0 {
		return Inf
	}
	return t
}

// TimeToHitSegment returns the time until a disk at (x, y) with
// velocity (vx, vy) and radius r hits the oriented line segment seg.
// There is no closed form for disk-vs-segment, so this samples K
// points around the leading half of the disk's perimeter (the half
// facing the velocity vector) and returns the earliest finite
// ray-segment intersection time across all samples (spec §4.1).
func TimeToHitSegment(x, y, vx, vy, r float64, seg Segment) float64 {
	if vx == 0 && vy == 0 {
		return Inf
	}

	speed := math.Hypot(vx, vy)
	baseAngle := math.Atan2(vy, vx)

	k := segmentSampleCount(r)
	best := Inf

	// Samples span the leading half-perimeter: angles in [-pi/2, pi/2]
	// relative to the velocity direction, evenly spaced, forward point
	// (offset 0) included since k is odd.
	for i := 0; i < k; i++ {
		frac := float64(i)/float64(k-1) - 0.5 // in [-0.5, 0.5]
		offset := frac * math.Pi
		sampleAngle := baseAngle + offset

		sx := x + r*math.Cos(sampleAngle)
		sy := y + r*math.Sin(sampleAngle)

		t := raySegmentHit(sx, sy, vx/speed, vy/speed, seg)
		if t < best {
			best = t
		}
	}

	// raySegmentHit returns travel distance along the unit direction;
	// convert to time by dividing by speed.
	if math.IsInf(best, 1) {
		return Inf
	}
	return best / speed
}

// IntersectKind classifies the result of SegmentIntersect.
type IntersectKind int

const (
	// NoIntersection means the segments are parallel/non-overlapping
	// or intersect outside both segments' parameter ranges.
	NoIntersection IntersectKind = iota
	// PointIntersection means the segments cross at a single point.
	PointIntersection
	// Overlap means the segments are collinear and overlapping; the
	// returned point is a representative point (the caller's p0), per
	// spec §4.1's degeneracy handling.
	Overlap
)

// SegmentIntersect computes the intersection of two segments using the
// standard parametric s/t solve (spec §4.1). In the degenerate
// (parallel, zero-denominator) case, collinear segments that share some
// extent are reported as Overlap with a representative point; other
// parallel segments are NoIntersection.
func SegmentIntersect(a, b Segment) (Point, IntersectKind) {
	denom := -b.Dx*a.Dy + a.Dx*b.Dy
	if denom == 0 {
		wx, wy := b.P0.X-a.P0.X, b.P0.Y-a.P0.Y
		if wx*a.Dy-wy*a.Dx != 0 {
			return Point{}, NoIntersection // parallel, not collinear
		}
		// Project b's endpoints onto a's parameter range [0, 1].
		ll := a.Dx*a.Dx + a.Dy*a.Dy
		u0 := (wx*a.Dx + wy*a.Dy) / ll
		u1 := u0 + (b.Dx*a.Dx+b.Dy*a.Dy)/ll
		if math.Max(u0, u1) < 0 || math.Min(u0, u1) > 1 {
			return Point{}, NoIntersection
		}
		return a.P0, Overlap
	}

	s := (-a.Dy*(a.P0.X-b.P0.X) + a.Dx*(a.P0.Y-b.P0.Y)) / denom
	t := (b.Dx*(a.P0.Y-b.P0.Y) - b.Dy*(a.P0.X-b.P0.X)) / denom

	if s < 0 || s > 1 || t < 0 || t > 1 {
		return Point{}, NoIntersection
	}

	return Point{X: a.P0.X + t*a.Dx, Y: a.P0.Y + t*a.Dy}, PointIntersection
}

// ClosestPointOnSegment projects (x, y) onto the infinite line through
// seg, then clamps to the segment's endpoints.
func ClosestPointOnSegment(seg Segment, x, y float64) Point {
	if seg.Length == 0 {
		return seg.P0
	}
	ux := seg.Dx / seg.Length
	uy := seg.Dy / seg.Length

	wx := x - seg.P0.X
	wy := y - seg.P0.Y

	proj := wx*ux + wy*uy
	if proj < 0 {
		proj = 0
	}
	if proj > seg.Length {
		proj = seg.Length
	}

	return Point{X: seg.P0.X + proj*ux, Y: seg.P0.Y + proj*uy}
}
