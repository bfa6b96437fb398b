package worker

import (
	"testing"
	"time"

	"github.com/pthm-cable/collide/event"
	"github.com/pthm-cable/collide/particle"
)

func TestPoolPredictsApproachingPair(t *testing.T) {
	store := particle.NewStore(2)
	a := store.Add(particle.NewDisk(30, 5, 10, 0, 5, 1))
	b := store.Add(particle.NewDisk(50, 5, -10, 0, 5, 1))
	_ = b

	pool := NewPool(2)
	defer pool.Close()

	pool.Submit(WorkRequest{
		ParticleIndex: a,
		TickTime:      0,
		Horizon:       1000,
		Snapshot:      store.Snapshot(),
	})

	select {
	case e := <-pool.Completed():
		if e.Kind != event.ParticlePair {
			t.Fatalf("expected a particle-pair event, got %v", e.Kind)
		}
		if e.A != a || e.B != b {
			t.Fatalf("event A/B = %v/%v, want %v/%v", e.A, e.B, a, b)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for predicted event")
	}
}

func TestPoolSkipsBeyondHorizon(t *testing.T) {
	store := particle.NewStore(2)
	a := store.Add(particle.NewDisk(0, 0, 1, 0, 1, 1))
	store.Add(particle.NewDisk(1000, 0, 0, 0, 1, 1))

	pool := NewPool(1)
	defer pool.Close()

	pool.Submit(WorkRequest{
		ParticleIndex: a,
		TickTime:      0,
		Horizon:       5, // far short of the time needed to reach x=1000
		Snapshot:      store.Snapshot(),
	})

	pool.Submit(WorkRequest{
		ParticleIndex: particle.Index(1),
		TickTime:      0,
		Horizon:       5,
		Snapshot:      store.Snapshot(),
	})

	deadline := time.After(500 * time.Millisecond)
	for {
		select {
		case <-pool.Completed():
			t.Fatal("expected no events within horizon, got one")
		case <-deadline:
			return
		}
	}
}

func TestPoolWallPrediction(t *testing.T) {
	store := particle.NewStore(1)
	a := store.Add(particle.NewDisk(100, 5, 0, -10, 5, 1))
	walls := particle.NewWallSet([]particle.Wall{particle.NewHHalfPlane(0)})

	pool := NewPool(1)
	defer pool.Close()

	pool.Submit(WorkRequest{
		ParticleIndex: a,
		TickTime:      0,
		Horizon:       1000,
		Snapshot:      store.Snapshot(),
		Walls:         walls,
	})

	select {
	case e := <-pool.Completed():
		if e.Kind != event.ParticleWall {
			t.Fatalf("expected a particle-wall event, got %v", e.Kind)
		}
		if e.Wall != 0 {
			t.Fatalf("e.Wall = %v, want 0", e.Wall)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for predicted wall event")
	}
}

func TestPoolCloseDrainsThenClosesCompleted(t *testing.T) {
	pool := NewPool(2)
	pool.Close()

	_, ok := <-pool.Completed()
	if ok {
		t.Fatalf("expected Completed() closed with no pending events")
	}
}
