// Package procedural generates a scattered line-segment wall layout
// as an alternative to a hand-authored scenario, using 2D OpenSimplex
// noise to place and orient walls deterministically from a seed.
package procedural

import (
	"math"

	opensimplex "github.com/ojrac/opensimplex-go"

	"github.com/pthm-cable/collide/config"
	"github.com/pthm-cable/collide/geometry"
)

// GenerateWalls scatters cfg.WallCount line segments across an
// arenaW x arenaH arena. Each wall's center, length, and orientation
// are derived from a 2D noise field sampled at evenly spaced points,
// so the same seed always reproduces the same layout.
func GenerateWalls(cfg config.ProceduralConfig, arenaW, arenaH float64) []geometry.Segment {
	noise := opensimplex.New(cfg.Seed)

	segments := make([]geometry.Segment, 0, cfg.WallCount)
	for i := 0; i < cfg.WallCount; i++ {
		frac := float64(i) / float64(cfg.WallCount)

		cx := frac * arenaW
		cy := sampleHeight(noise, cfg.Frequency, frac, arenaH)

		angle := sampleAngle(noise, cfg.Frequency, frac)
		length := cfg.MinLength + sampleUnit(noise, cfg.Frequency, frac+0.5)*(cfg.MaxLength-cfg.MinLength)

		dx, dy := length/2*math.Cos(angle), length/2*math.Sin(angle)
		p0 := geometry.Point{X: cx - dx, Y: cy - dy}
		p1 := geometry.Point{X: cx + dx, Y: cy + dy}

		segments = append(segments, geometry.NewSegment(p0, p1))
	}
	return segments
}

// sampleHeight maps a noise sample in [-1, 1] to a y-coordinate inside
// the arena.
func sampleHeight(noise opensimplex.Noise, freq, x, arenaH float64) float64 {
	n := noise.Eval2(x*100*freq, 0)
	return (n + 1) * 0.5 * arenaH
}

// sampleAngle maps a noise sample to a full-turn angle in radians.
func sampleAngle(noise opensimplex.Noise, freq, x float64) float64 {
	n := noise.Eval2(x*100*freq, 17.0)
	return (n + 1) * 0.5 * 2 * math.Pi
}

// sampleUnit returns a noise sample remapped to [0, 1].
func sampleUnit(noise opensimplex.Noise, freq, x float64) float64 {
	n := noise.Eval2(x*100*freq, 42.0)
	return (n + 1) * 0.5
}
