// Package particle implements the dense particle store and the wall
// set consumed by the event heap, the prediction workers, and the
// scheduler. The store is a plain slice, not an entity-component
// system: every particle's index is its stable identifier and its
// position in the backing array (spec §2.2, §3).
package particle

import "github.com/pthm-cable/collide/geometry"

// Shape tags a particle's collision extent.
type Shape int

const (
	// Disk particles use radius-only prediction.
	Disk Shape = iota
	// Rect particles carry width/height but are still predicted as
	// disks, per spec §9's open question on rectangle collision.
	Rect
)

// Index identifies a particle by its stable slot in a Store.
type Index int

// None is the sentinel Index used by Event slots that carry no
// particle (spec §3), and by Particle.LastLine for "no segment".
const None Index = -1

// Particle is one moving body: position, velocity, mass, extent, and
// the generation counter used for lazy event invalidation.
type Particle struct {
	Index Index

	X, Y   float64
	VX, VY float64

	// Mass is positive for ordinary particles. Infinite-mass particles
	// (immovables) set Infinite true and skip impulse updates (spec §9).
	Mass     float64
	Infinite bool

	Radius float64
	Width  float64
	Height float64
	Shape  Shape

	// Gen is incremented on every call that changes VX or VY.
	Gen int

	// LastLine is the wall index of the last line segment this
	// particle rebounded off, or None. Anti-stickiness (spec §4.1).
	LastLine int
}

// NewDisk constructs a disk particle with the given position,
// velocity, radius and mass. Index is set by Store.Add.
func NewDisk(x, y, vx, vy, radius, mass float64) Particle {
	return Particle{
		X: x, Y: y, VX: vx, VY: vy,
		Mass: mass, Radius: radius,
		Width: 2 * radius, Height: 2 * radius,
		Shape:    Disk,
		LastLine: int(None),
	}
}

// NewRect constructs a rectangle particle. Its Radius is set to the
// bounding-circle radius used for disk-approximated prediction
// (spec §9).
func NewRect(x, y, vx, vy, width, height, mass float64) Particle {
	r := 0.5 * hypot(width, height)
	return Particle{
		X: x, Y: y, VX: vx, VY: vy,
		Mass: mass, Radius: r,
		Width: width, Height: height,
		Shape:    Rect,
		LastLine: int(None),
	}
}

func hypot(a, b float64) float64 {
	return geometry.Point{X: a, Y: b}.Hypot()
}

// Store is the densely indexed, fixed-size particle collection built
// at startup (spec §2.2). Indices never change once assigned.
type Store struct {
	particles []Particle
}

// NewStore builds an empty store with capacity n.
func NewStore(n int) *Store {
	return &Store{particles: make([]Particle, 0, n)}
}

// Add appends p to the store, assigning it the next stable index.
func (s *Store) Add(p Particle) Index {
	idx := Index(len(s.particles))
	p.Index = idx
	s.particles = append(s.particles, p)
	return idx
}

// Len returns the number of particles in the store.
func (s *Store) Len() int { return len(s.particles) }

// Get returns a copy of the particle at idx.
func (s *Store) Get(idx Index) Particle { return s.particles[idx] }

// Gen returns the live generation counter for idx.
func (s *Store) Gen(idx Index) int { return s.particles[idx].Gen }

// Snapshot returns a copy of the full particle slice, safe for a
// worker to read without racing the scheduler's mutations (spec §5).
func (s *Store) Snapshot() []Particle {
	out := make([]Particle, len(s.particles))
	copy(out, s.particles)
	return out
}

// Integrate advances every particle's position by dt along its
// current velocity (spec §4.5 step c, the per-tick integration).
func (s *Store) Integrate(dt float64) {
	for i := range s.particles {
		s.particles[i].X += s.particles[i].VX * dt
		s.particles[i].Y += s.particles[i].VY * dt
	}
}

// SetVelocity sets a's velocity and increments its generation
// counter. All velocity mutation in this package goes through this
// method so Gen is never forgotten.
func (s *Store) SetVelocity(idx Index, vx, vy float64) {
	p := &s.particles[idx]
	p.VX, p.VY = vx, vy
	p.Gen++
}

// BounceOff resolves an elastic particle-particle collision between a
// and b in place, updating both velocities and generation counters
// (spec §4.1). Infinite-mass particles do not receive an impulse.
func (s *Store) BounceOff(a, b Index) {
	pa, pb := &s.particles[a], &s.particles[b]

	if pa.Infinite && pb.Infinite {
		return
	}
	if pa.Infinite {
		s.bounceOffImmovable(b, a)
		return
	}
	if pb.Infinite {
		s.bounceOffImmovable(a, b)
		return
	}

	da, db := geometry.Impulse(pa.X, pa.Y, pa.VX, pa.VY, pa.Mass, pb.X, pb.Y, pb.VX, pb.VY, pb.Mass)
	s.SetVelocity(a, pa.VX+da.X, pa.VY+da.Y)
	s.SetVelocity(b, pb.VX+db.X, pb.VY+db.Y)
	s.clearLastLine(a)
	s.clearLastLine(b)
}

// bounceOffImmovable reflects mover's velocity off fixed's surface
// normal, treating fixed as an infinite-mass wall-like particle. The
// normal is the contact direction from fixed to mover.
func (s *Store) bounceOffImmovable(mover, fixed Index) {
	pm, pf := &s.particles[mover], &s.particles[fixed]
	dx, dy := pm.X-pf.X, pm.Y-pf.Y
	n := geometry.Point{X: dx, Y: dy}.Normalize()

	dot := pm.VX*n.X + pm.VY*n.Y
	s.SetVelocity(mover, pm.VX-2*dot*n.X, pm.VY-2*dot*n.Y)
	s.clearLastLine(mover)
}

func (s *Store) clearLastLine(idx Index) {
	s.particles[idx].LastLine = int(None)
}
