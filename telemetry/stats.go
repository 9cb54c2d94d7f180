package telemetry

import (
	"log/slog"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/spatial/r3"
	"gonum.org/v1/gonum/stat"
)

// lowEndpointPhase is the phase at or below which a sample counts as a visit
// to the levitater's low endpoint.
const lowEndpointPhase = 1e-9

// ObjectSummary aggregates an object's trace over a run.
type ObjectSummary struct {
	Object       string  `csv:"object"`
	Samples      int     `csv:"samples"`
	PhaseMin     float64 `csv:"phase_min"`
	PhaseMax     float64 `csv:"phase_max"`
	PhaseMean    float64 `csv:"phase_mean"`
	PhaseStd     float64 `csv:"phase_std"`
	SpinAngleMax float64 `csv:"spin_angle_max"`
	Drift        float64 `csv:"drift"` // distance between the first and last low-endpoint visits
}

// objectTrace holds the series for one object.
type objectTrace struct {
	phases     []float64
	spinAngles []float64
	lowVisits  int
	lowFirst   r3.Vec
	lowLast    r3.Vec
}

// Summarizer accumulates trace samples into per-object summaries.
type Summarizer struct {
	order   []string
	objects map[string]*objectTrace
}

// NewSummarizer creates an empty summarizer.
func NewSummarizer() *Summarizer {
	return &Summarizer{objects: make(map[string]*objectTrace)}
}

// Add records a sample.
func (s *Summarizer) Add(sample TraceSample) {
	ot, ok := s.objects[sample.Object]
	if !ok {
		ot = &objectTrace{}
		s.objects[sample.Object] = ot
		s.order = append(s.order, sample.Object)
	}
	if sample.Levitates {
		ot.phases = append(ot.phases, sample.Phase)
		if sample.Phase <= lowEndpointPhase {
			pos := r3.Vec{X: sample.X, Y: sample.Y, Z: sample.Z}
			if ot.lowVisits == 0 {
				ot.lowFirst = pos
			}
			ot.lowLast = pos
			ot.lowVisits++
		}
	}
	if sample.Spins {
		ot.spinAngles = append(ot.spinAngles, sample.SpinAngle)
	}
}

// Summaries returns one summary per object in first-seen order.
func (s *Summarizer) Summaries() []ObjectSummary {
	out := make([]ObjectSummary, 0, len(s.order))
	for _, name := range s.order {
		ot := s.objects[name]
		sum := ObjectSummary{
			Object:  name,
			Samples: max(len(ot.phases), len(ot.spinAngles)),
			Drift:   r3.Norm(r3.Sub(ot.lowLast, ot.lowFirst)),
		}
		if len(ot.phases) > 0 {
			sum.PhaseMin = floats.Min(ot.phases)
			sum.PhaseMax = floats.Max(ot.phases)
			sum.PhaseMean = stat.Mean(ot.phases, nil)
		}
		if len(ot.phases) > 1 {
			sum.PhaseStd = stat.StdDev(ot.phases, nil)
		}
		if len(ot.spinAngles) > 0 {
			sum.SpinAngleMax = floats.Max(ot.spinAngles)
		}
		out = append(out, sum)
	}
	return out
}

// LogValue implements slog.LogValuer for structured logging.
func (s ObjectSummary) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("object", s.Object),
		slog.Int("samples", s.Samples),
		slog.Float64("phase_min", s.PhaseMin),
		slog.Float64("phase_max", s.PhaseMax),
		slog.Float64("phase_mean", s.PhaseMean),
		slog.Float64("phase_std", s.PhaseStd),
		slog.Float64("spin_angle_max", s.SpinAngleMax),
		slog.Float64("drift", s.Drift),
	)
}
