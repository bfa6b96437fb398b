// Package telemetry tracks per-window momentum and energy drift
// against spec §8 property 1/2 tolerances, and exports samples to CSV
// for offline analysis.
package telemetry

import (
	"gonum.org/v1/gonum/stat"

	"github.com/pthm-cable/collide/particle"
)

// Sample is one window's momentum/energy reading.
type Sample struct {
	SimTime float64 `csv:"sim_time"`
	Px      float64 `csv:"momentum_x"`
	Py      float64 `csv:"momentum_y"`
	Energy  float64 `csv:"kinetic_energy"`
	PxDrift float64 `csv:"momentum_x_drift"`
	PyDrift float64 `csv:"momentum_y_drift"`
	EDrift  float64 `csv:"energy_drift"`
}

// Collector accumulates momentum/energy samples within fixed-duration
// windows and reports whether drift has exceeded the configured
// tolerance (spec §8 properties 1-2; scenario S5's long-run drift
// check).
type Collector struct {
	windowSeconds float64
	windowStart   float64

	baselinePx, baselinePy, baselineE float64
	haveBaseline                      bool

	samples []Sample
}

// NewCollector builds a Collector with the given window duration.
func NewCollector(windowSeconds float64) *Collector {
	return &Collector{windowSeconds: windowSeconds}
}

// ShouldSample reports whether a full window has elapsed since the
// last sample (or since construction, for the first one).
func (c *Collector) ShouldSample(simTime float64) bool {
	return simTime-c.windowStart >= c.windowSeconds
}

// Observe computes momentum and kinetic energy for store's current
// state and records a Sample, tracking drift relative to the first
// observation (the run's baseline).
func (c *Collector) Observe(simTime float64, store *particle.Store) Sample {
	var px, py, e float64
	for i := 0; i < store.Len(); i++ {
		p := store.Get(particle.Index(i))
		px += p.Mass * p.VX
		py += p.Mass * p.VY
		e += 0.5 * p.Mass * (p.VX*p.VX + p.VY*p.VY)
	}

	if !c.haveBaseline {
		c.baselinePx, c.baselinePy, c.baselineE = px, py, e
		c.haveBaseline = true
	}

	s := Sample{
		SimTime: simTime,
		Px:      px,
		Py:      py,
		Energy:  e,
		PxDrift: relativeDrift(px, c.baselinePx),
		PyDrift: relativeDrift(py, c.baselinePy),
		EDrift:  relativeDrift(e, c.baselineE),
	}

	c.windowStart = simTime
	c.samples = append(c.samples, s)
	return s
}

func relativeDrift(current, baseline float64) float64 {
	if baseline == 0 {
		return current
	}
	return (current - baseline) / abs(baseline)
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

// Samples returns every recorded Sample, in observation order.
func (c *Collector) Samples() []Sample {
	return c.samples
}

// DriftSummary reports the mean and standard deviation of the
// energy-drift series recorded so far, using gonum/stat.
func (c *Collector) DriftSummary() (mean, stddev float64) {
	if len(c.samples) == 0 {
		return 0, 0
	}
	drifts := make([]float64, len(c.samples))
	for i, s := range c.samples {
		drifts[i] = s.EDrift
	}
	mean, stddev = stat.MeanStdDev(drifts, nil)
	return mean, stddev
}

// WithinTolerance reports whether every recorded sample's momentum
// and energy drift stayed within the given tolerances (spec §8
// properties 1-2).
func (c *Collector) WithinTolerance(momentumTol, energyTol float64) bool {
	for _, s := range c.samples {
		if abs(s.PxDrift) > momentumTol || abs(s.PyDrift) > momentumTol {
			return false
		}
		if abs(s.EDrift) > energyTol {
			return false
		}
	}
	return true
}
