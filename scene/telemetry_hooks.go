package scene

import (
	"log/slog"

	"github.com/pthm-cable/transformutils/mathutil"
	"github.com/pthm-cable/transformutils/registry"
	"github.com/pthm-cable/transformutils/telemetry"
)

// recordTrace samples every object when the trace interval is due.
func (s *Scene) recordTrace() {
	every := int32(s.cfg.Telemetry.TraceEvery)
	if every <= 0 || s.tick%every != 0 {
		return
	}

	s.traceBuf = s.traceBuf[:0]
	simTime := s.SimTime()
	for _, h := range s.objects.Handles() {
		sample := s.sample(h)
		sample.Tick = s.tick
		sample.SimTime = simTime
		s.traceBuf = append(s.traceBuf, sample)
		s.summarizer.Add(sample)
	}

	if err := s.output.WriteTrace(s.traceBuf); err != nil {
		slog.Error("failed to write trace", "error", err)
	}
}

// sample builds one trace row for the object under handle.
func (s *Scene) sample(h registry.Handle) telemetry.TraceSample {
	e := s.objects.MustLookup(h)
	pos, rot := s.worldPose(e)

	sample := telemetry.TraceSample{
		Object:  string(h),
		Layer:   s.layerMap.Get(e).Value,
		Enabled: s.enabledMap.Get(e).Value,
		X:       pos.X,
		Y:       pos.Y,
		Z:       pos.Z,
		QW:      rot.Real,
		QX:      rot.Imag,
		QY:      rot.Jmag,
		QZ:      rot.Kmag,
	}

	if s.levMap.Has(e) {
		lev := s.levMap.Get(e)
		if lev.Active() {
			st := lev.State()
			sample.Levitates = true
			sample.Phase = telemetry.LevitationPhase(st.Origin, st.Axis, st.Amplitude, pos)
			sample.Direction = st.Direction.String()
		}
	}
	if s.spinMap.Has(e) {
		spin := s.spinMap.Get(e)
		if spin.Active() {
			sample.Spins = true
			sample.SpinAngle = mathutil.AngleBetween(spin.State().Initial, rot)
		}
	}

	return sample
}

// flushTelemetry logs and writes periodic stats.
func (s *Scene) flushTelemetry() {
	every := int32(s.cfg.Telemetry.LogEvery)
	if every <= 0 || s.tick%every != 0 {
		return
	}

	perfStats := s.perf.Stats()
	if s.logStats {
		perfStats.LogStats()
		s.logState()
	}
	if err := s.output.WritePerf(perfStats, s.tick); err != nil {
		slog.Error("failed to write perf", "error", err)
	}
}

// logState logs one line per object.
func (s *Scene) logState() {
	for _, h := range s.objects.Handles() {
		sample := s.sample(h)
		slog.Info("object",
			"tick", s.tick,
			"object", sample.Object,
			"layer", sample.Layer,
			"enabled", sample.Enabled,
			"x", sample.X,
			"y", sample.Y,
			"z", sample.Z,
			"phase", sample.Phase,
			"direction", sample.Direction,
			"spin_angle", sample.SpinAngle,
		)
	}
}
