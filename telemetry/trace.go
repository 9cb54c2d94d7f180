package telemetry

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pthm-cable/transformutils/mathutil"
)

// TraceSample is one object's transform at one tick.
type TraceSample struct {
	Tick      int32   `csv:"tick"`
	SimTime   float64 `csv:"sim_time"`
	Object    string  `csv:"object"`
	Layer     int     `csv:"layer"`
	Enabled   bool    `csv:"enabled"`
	X         float64 `csv:"x"`
	Y         float64 `csv:"y"`
	Z         float64 `csv:"z"`
	QW        float64 `csv:"qw"`
	QX        float64 `csv:"qx"`
	QY        float64 `csv:"qy"`
	QZ        float64 `csv:"qz"`
	Levitates bool    `csv:"levitates"`
	Phase     float64 `csv:"phase"`     // 0 at origin, 1 at the high point
	Direction string  `csv:"direction"` // levitater travel direction
	Spins     bool    `csv:"spins"`
	SpinAngle float64 `csv:"spin_angle"` // degrees from the initial orientation
}

// LevitationPhase maps position onto [0, 1] along the travel segment.
// Returns 0 when the segment is degenerate.
func LevitationPhase(origin, axis r3.Vec, amplitude float64, position r3.Vec) float64 {
	proj := r3.Dot(r3.Sub(position, origin), axis)
	phase, err := mathutil.MapToRange(proj, 0, amplitude, 0, 1)
	if err != nil {
		return 0
	}
	return phase
}
