// Package event implements the predicted-collision Event type and the
// single-consumer min-heap the scheduler drains into (spec §4.3).
// Only the scheduler touches the heap; workers only ever produce
// Events onto a channel.
package event

import "github.com/pthm-cable/collide/particle"

// None is the sentinel used for A/B slots and generation counters
// that carry no particle (spec §3).
const None = particle.None

// Kind distinguishes what B refers to.
type Kind int

const (
	// ParticlePair is an (a, b) particle-particle event.
	ParticlePair Kind = iota
	// ParticleWall is a (a, wall) event; B is a wall index, not a
	// particle index.
	ParticleWall
)

// Event is a predicted future collision (spec §3).
type Event struct {
	Time float64

	A particle.Index
	B particle.Index // particle index when Kind == ParticlePair

	Kind Kind
	Wall int // valid wall index when Kind == ParticleWall

	GenA int
	GenB int // -1 when Kind == ParticleWall (B slot is not a particle)

	// seq breaks time ties deterministically by emission/push order
	// (spec §4.3: "ties broken arbitrarily but deterministically").
	seq int64
}

// NewParticlePair builds an Event for a particle-particle prediction.
func NewParticlePair(t float64, a, b particle.Index, genA, genB int) Event {
	return Event{Time: t, A: a, B: b, Kind: ParticlePair, GenA: genA, GenB: genB}
}

// NewParticleWall builds an Event for a particle-wall prediction.
func NewParticleWall(t float64, a particle.Index, wall int, genA int) Event {
	return Event{Time: t, A: a, B: None, Kind: ParticleWall, Wall: wall, GenA: genA, GenB: -1}
}

// IsValid reports whether e's captured generation counters still
// match the live particle store (spec §4.2's lazy-invalidation
// contract). Non-participating slots (GenB == -1 for wall events)
// trivially match.
func (e Event) IsValid(store *particle.Store) bool {
	if store.Gen(e.A) != e.GenA {
		return false
	}
	if e.Kind == ParticlePair {
		return store.Gen(e.B) == e.GenB
	}
	return true
}

// SameAs reports whether e and o refer to the same (time, a, b)
// triple, used by the scheduler to dedup coincident duplicate
// emissions from different workers (spec §4.5 step c).
func (e Event) SameAs(o Event) bool {
	if e.Time != o.Time || e.A != o.A || e.Kind != o.Kind {
		return false
	}
	if e.Kind == ParticlePair {
		return e.B == o.B
	}
	return e.Wall == o.Wall
}
