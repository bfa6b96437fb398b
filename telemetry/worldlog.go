package telemetry

import (
	"fmt"
	"io"

	"github.com/pthm-cable/collide/particle"
)

// logWriter is the destination for Logf output, mirroring the
// teacher's split between structured slog events and plain narrative
// dumps (grounded on pthm-soup/game/logging.go's SetLogWriter/Logf).
var logWriter io.Writer

// SetLogWriter sets the destination for Logf/LogWorldState output.
func SetLogWriter(w io.Writer) {
	logWriter = w
}

// Logf writes a formatted line to the configured log writer, or
// stdout if none has been set.
func Logf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if logWriter != nil {
		fmt.Fprintln(logWriter, msg)
	} else {
		fmt.Println(msg)
	}
}

// LogWorldState writes a tabular human-readable snapshot of the
// particle world at tick, grounded on the teacher's
// Game.logWorldState: tick/sim-time header followed by momentum and
// kinetic-energy totals, the periodic "--log N" dump referenced by
// cmd/collide's -log flag.
func LogWorldState(tick int, simTime float64, store *particle.Store) {
	var px, py, e float64
	n := store.Len()
	for i := 0; i < n; i++ {
		p := store.Get(particle.Index(i))
		px += p.Mass * p.VX
		py += p.Mass * p.VY
		e += 0.5 * p.Mass * (p.VX*p.VX + p.VY*p.VY)
	}

	Logf("=== World @ Tick %d (t=%.2fs) ===", tick, simTime)
	Logf("  particles: %d", n)
	Logf("  momentum:  (%.4f, %.4f)", px, py)
	Logf("  energy:    %.4f", e)
	Logf("")
}
