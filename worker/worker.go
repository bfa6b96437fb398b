// Package worker implements the fixed pool of stateless prediction
// workers described in spec §4.4: each pulls a WorkRequest off a
// shared channel, computes every candidate collision involving one
// particle, and pushes the resulting Events onto a completion
// channel. Workers never mutate the particle store; they only ever
// read the snapshot carried by the request (spec §5).
package worker

import (
	"sync"

	"github.com/pthm-cable/collide/event"
	"github.com/pthm-cable/collide/geometry"
	"github.com/pthm-cable/collide/particle"
)

// Epsilon is the small time offset subtracted from an anchor when
// clamping an already-past predicted collision back into dispatch
// range (spec §4.4's `max(t - ε, t + dt)` rule).
const Epsilon = 1.0 / 60.0

// WorkRequest asks a worker to predict every collision involving one
// particle, anchored at TickTime and bounded by Horizon (spec §3).
type WorkRequest struct {
	ParticleIndex particle.Index
	TickTime      float64
	Horizon       float64

	// Snapshot is a read-only copy of every particle as of TickTime
	// (spec §5's copy-on-dispatch model).
	Snapshot []particle.Particle
	Walls    *particle.WallSet

	// Done, if set, is marked once this request has finished emitting
	// every one of its Events onto the completion channel, regardless
	// of how many (zero or many) that turned out to be. Callers that
	// must wait for a batch of requests to be fully processed attach a
	// shared WaitGroup; ordinary follow-up requests leave it nil.
	Done *sync.WaitGroup
}

// Pool is a fixed set of goroutines consuming WorkRequests and
// producing Events.
type Pool struct {
	requests  chan WorkRequest
	completed chan event.Event
	wg        sync.WaitGroup
}

// NewPool starts n worker goroutines. Callers submit work via Submit
// and drain results via Completed; Close stops accepting new work and
// waits for in-flight requests to finish.
func NewPool(n int) *Pool {
	p := &Pool{
		requests:  make(chan WorkRequest, 256),
		completed: make(chan event.Event, 1024),
	}
	p.wg.Add(n)
	for i := 0; i < n; i++ {
		go p.run()
	}
	return p
}

func (p *Pool) run() {
	defer p.wg.Done()
	for req := range p.requests {
		predict(req, p.completed)
		if req.Done != nil {
			req.Done.Done()
		}
	}
}

// Submit enqueues a WorkRequest. Blocks if the request queue is full.
func (p *Pool) Submit(req WorkRequest) {
	p.requests <- req
}

// Completed returns the channel workers push finished Events onto.
func (p *Pool) Completed() <-chan event.Event {
	return p.completed
}

// Close signals shutdown: no further Submit calls are permitted. It
// closes the request channel, waits for every worker to drain its
// remaining requests, then closes the completion channel so a
// draining consumer's range loop terminates (spec §5's shutdown
// sequence: "closes both queues; workers exit when their queue close
// is observed").
func (p *Pool) Close() {
	close(p.requests)
	p.wg.Wait()
	close(p.completed)
}

// predict computes every candidate collision involving req's particle
// against every other particle and every wall, emitting Events onto
// out (spec §4.4).
func predict(req WorkRequest, out chan<- event.Event) {
	i := req.ParticleIndex
	p := req.Snapshot[i]

	for j := range req.Snapshot {
		if particle.Index(j) == i {
			continue
		}
		q := req.Snapshot[j]

		dt := geometry.TimeToHit(p.X, p.Y, p.VX, p.VY, p.Radius, q.X, q.Y, q.VX, q.VY, q.Radius)
		if dt >= geometry.Inf {
			continue
		}
		t := req.TickTime + dt
		if t > req.Horizon {
			continue
		}

		emitTime := t
		if clamped := req.TickTime - Epsilon; clamped > emitTime {
			emitTime = clamped
		}

		out <- event.NewParticlePair(emitTime, i, particle.Index(j), p.Gen, q.Gen)
	}

	if req.Walls == nil {
		return
	}
	for _, w := range req.Walls.All() {
		dt := w.TimeToHit(p)
		if dt >= geometry.Inf {
			continue
		}
		t := req.TickTime + dt
		if t > req.Horizon {
			continue
		}

		emitTime := t
		if clamped := req.TickTime - Epsilon; clamped > emitTime {
			emitTime = clamped
		}

		out <- event.NewParticleWall(emitTime, i, w.Index, p.Gen)
	}
}
