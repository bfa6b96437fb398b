// Package scheduler implements the single authoritative main loop:
// the fixed-timestep accumulator that interleaves draining predicted
// Events, dispatching valid ones, and integrating particle positions
// (spec §4.5). It owns the particle store, the wall set, and the
// event heap; the worker pool is read-only on a snapshot it is handed
// at each request.
package scheduler

import (
	"log/slog"
	"sync"
	"time"

	"github.com/pthm-cable/collide/event"
	"github.com/pthm-cable/collide/particle"
	"github.com/pthm-cable/collide/worker"
)

// TicksPerSecond is the fixed simulation rate (spec §4.5).
const TicksPerSecond = 60

// TimePerTick is the fixed physics step, 1/TicksPerSecond seconds.
const TimePerTick = 1.0 / TicksPerSecond

// DefaultHorizon is the large finite prediction bound used at
// startup and for every follow-up WorkRequest (spec §4.5 step 1).
const DefaultHorizon = 10000.0

// Renderer is the external collaborator that draws the current
// particle snapshot each frame (spec §6). Implementations live outside
// this package (see render.Adapter).
type Renderer interface {
	Clear()
	SetBackground(r, g, b, a uint8)
	Draw(particles []particle.Particle, paused bool)
}

// Input is the external collaborator exposing key and pointer events
// (spec §6).
type Input interface {
	PollSpacePressed() bool
	PollExit() bool
	PollClick() bool
}

// Scheduler is the single authoritative thread (spec §5).
type Scheduler struct {
	store *particle.Store
	walls *particle.WallSet
	pool  *worker.Pool
	heap  *event.Heap

	renderer Renderer
	input    Input

	simTime      float64
	nextTickTime float64
	lag          float64
	lastFrame    time.Time

	paused bool

	lastDispatched event.Event
	haveDispatched bool

	onTick  func(simTime float64, store *particle.Store)
	onFrame func()

	logger *slog.Logger
}

// Options configures a new Scheduler.
type Options struct {
	Store    *particle.Store
	Walls    *particle.WallSet
	Workers  int
	Renderer Renderer
	Input    Input
	Logger   *slog.Logger

	// OnTick, if set, is called once per simulated tick after
	// integration with the current sim time and particle store (used
	// to feed telemetry sampling without the scheduler depending on
	// the telemetry package).
	OnTick func(simTime float64, store *particle.Store)

	// OnFrame, if set, is called once per Run iteration, including
	// while paused, before the frame renders (used to poll camera
	// pan/zoom input without the scheduler depending on render).
	OnFrame func()
}

// New builds a Scheduler and runs the startup phase: it submits an
// initial WorkRequest for every particle and drains the resulting
// completions into the heap (spec §4.5 step 1).
func New(opts Options) *Scheduler {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	s := &Scheduler{
		store:    opts.Store,
		walls:    opts.Walls,
		pool:     worker.NewPool(opts.Workers),
		heap:     event.NewHeap(),
		renderer: opts.Renderer,
		input:    opts.Input,
		onTick:   opts.OnTick,
		onFrame:  opts.OnFrame,
		logger:   logger,
		// The first tick covers [0, TimePerTick), so events at t=0
		// dispatch in it.
		nextTickTime: TimePerTick,
	}

	logger.Info("scheduler_started", "particles", opts.Store.Len(), "walls", opts.Walls.Len(), "workers", opts.Workers)

	wg := s.submitAll(0)
	s.waitForCompletions(wg)

	return s
}

// submitAll submits a WorkRequest for every particle, anchored at t,
// and returns a WaitGroup that reaches zero once every one of those
// requests has finished emitting its Events (spec §4.5 step 1).
func (s *Scheduler) submitAll(t float64) *sync.WaitGroup {
	var wg sync.WaitGroup
	wg.Add(s.store.Len())

	snapshot := s.store.Snapshot()
	for i := 0; i < s.store.Len(); i++ {
		s.pool.Submit(worker.WorkRequest{
			ParticleIndex: particle.Index(i),
			TickTime:      t,
			Horizon:       DefaultHorizon,
			Snapshot:      snapshot,
			Walls:         s.walls,
			Done:          &wg,
		})
	}
	return &wg
}

// submitOne submits a WorkRequest for a single particle, using a
// fresh snapshot, anchored at t (spec §4.5's follow-up requests).
func (s *Scheduler) submitOne(idx particle.Index, t float64) {
	s.pool.Submit(worker.WorkRequest{
		ParticleIndex: idx,
		TickTime:      t,
		Horizon:       DefaultHorizon,
		Snapshot:      s.store.Snapshot(),
		Walls:         s.walls,
	})
}

// drainCompletions pops every currently-available completed Event and
// pushes it onto the heap without blocking (spec §4.5 step 2c). This
// only sees events already buffered on the completion channel; it is
// not a substitute for waitForCompletions when a caller must be sure a
// whole batch of requests has actually been processed.
func (s *Scheduler) drainCompletions() {
	for {
		select {
		case e, ok := <-s.pool.Completed():
			if !ok {
				return
			}
			s.heap.Push(e)
		default:
			return
		}
	}
}

// waitForCompletions blocks until every request counted in wg has
// finished emitting its Events, pushing each one onto the heap as it
// arrives (spec §4.5 step 1: "wait until initial completions have been
// drained"). It keeps receiving for the whole wait so workers can
// never stall on a full completion channel while wg.Wait() is pending,
// then makes one final non-blocking pass for anything left buffered.
func (s *Scheduler) waitForCompletions(wg *sync.WaitGroup) {
	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	for {
		select {
		case e := <-s.pool.Completed():
			s.heap.Push(e)
		case <-done:
			s.drainCompletions()
			return
		}
	}
}

// Run executes the frame loop until sim_time reaches limitSeconds (a
// non-positive limit runs until the input interface signals exit).
// Run is the spec §4.5 "frame loop": each iteration updates lag from
// elapsed wall-clock time, then runs the catch-up loop while lag
// exceeds one tick.
func (s *Scheduler) Run(limitSeconds float64) {
	s.lastFrame = time.Now()

	for {
		if limitSeconds > 0 && s.simTime >= limitSeconds {
			break
		}

		if s.input != nil {
			if s.input.PollExit() {
				break
			}
			if s.input.PollSpacePressed() {
				s.togglePause()
			}
		}

		if s.onFrame != nil {
			s.onFrame()
		}

		if s.paused {
			// A click while paused confirms exit (spec's supplemented
			// mouse-click exit signal), distinct from Space resuming play.
			if s.input != nil && s.input.PollClick() {
				break
			}
			s.render()
			continue
		}

		now := time.Now()
		elapsed := now.Sub(s.lastFrame).Seconds()
		s.lastFrame = now
		s.lag += elapsed
		s.simTime += elapsed

		for s.lag > TimePerTick {
			s.catchUpOneTick()
		}

		s.render()
	}

	s.Shutdown()
}

// togglePause flips the pause flag. On resume, lastFrame is reset so
// the next elapsed computation doesn't see a spurious spike from the
// time spent paused (spec §6).
func (s *Scheduler) togglePause() {
	s.paused = !s.paused
	if !s.paused {
		s.lastFrame = time.Now()
	}
}

// catchUpOneTick runs one iteration of the catch-up loop: drain,
// dispatch, integrate (spec §4.5 step 2c).
func (s *Scheduler) catchUpOneTick() {
	s.drainCompletions()
	s.dispatch()
	s.store.Integrate(TimePerTick)
	s.nextTickTime += TimePerTick
	s.lag -= TimePerTick

	if s.onTick != nil {
		s.onTick(s.simTime, s.store)
	}
}

// dispatch pops and executes every valid event earlier than
// nextTickTime, skipping stale or duplicate entries (spec §4.5 step
// 2c's dispatch phase).
func (s *Scheduler) dispatch() {
	for s.heap.Len() > 0 && s.heap.Peek().Time < s.nextTickTime {
		e := s.heap.Pop()

		if s.haveDispatched && e.SameAs(s.lastDispatched) {
			continue
		}
		if !e.IsValid(s.store) {
			continue
		}

		s.execute(e)
		s.lastDispatched = e
		s.haveDispatched = true
	}
}

// execute applies e's collision response and enqueues follow-up
// prediction work for every particle whose velocity changed (spec
// §4.5 step 2c: one follow-up for particle-wall, two for
// particle-particle).
func (s *Scheduler) execute(e event.Event) {
	switch e.Kind {
	case event.ParticlePair:
		s.store.BounceOff(e.A, e.B)
		s.submitOne(e.A, e.Time)
		s.submitOne(e.B, e.Time)
	case event.ParticleWall:
		w := s.walls.Get(e.Wall)
		s.store.BounceOffWall(e.A, w)
		s.submitOne(e.A, e.Time)
	}
}

// render calls the renderer with the current particle snapshot, if a
// renderer was configured (spec §4.5 step 2d).
func (s *Scheduler) render() {
	if s.renderer == nil {
		return
	}
	s.renderer.Clear()
	s.renderer.Draw(s.store.Snapshot(), s.paused)
}

// Shutdown signals the worker pool to exit and drains any events left
// in flight (spec §4.5 step 3, §5's shutdown sequence).
func (s *Scheduler) Shutdown() {
	drained := make(chan struct{})
	go func() {
		for range s.pool.Completed() {
			// drain remaining completions so the worker goroutines'
			// blocking sends don't leak
		}
		close(drained)
	}()
	s.pool.Close()
	<-drained
	s.logger.Info("scheduler_stopped", "sim_time", s.simTime)
}

// Store exposes the particle store for callers that need read access
// outside the loop (e.g. telemetry sampling).
func (s *Scheduler) Store() *particle.Store { return s.store }

// Walls exposes the wall set.
func (s *Scheduler) Walls() *particle.WallSet { return s.walls }
