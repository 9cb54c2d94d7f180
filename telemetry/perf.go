package telemetry

import (
	"log/slog"
	"time"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Phase names for the scene step.
const (
	PhaseLevitation = "levitation"
	PhaseSpin       = "spin"
	PhaseGizmos     = "gizmos"
	PhaseTrace      = "trace"
)

// Phases lists all step phases in execution order.
var Phases = []string{PhaseLevitation, PhaseSpin, PhaseGizmos, PhaseTrace}

// PerfCollector times ticks and their phases over a rolling window.
// Durations are kept in seconds; slot i of every ring belongs to the same tick.
type PerfCollector struct {
	window int
	filled int
	next   int

	ticks  []float64
	phases map[string][]float64

	tickStart  time.Time
	phaseStart time.Time
	phase      string
	current    map[string]time.Duration

	lastFrame     time.Time
	frameDuration time.Duration
}

// NewPerfCollector creates a collector averaging over window ticks.
func NewPerfCollector(window int) *PerfCollector {
	if window < 1 {
		window = 60
	}
	return &PerfCollector{
		window:  window,
		ticks:   make([]float64, window),
		phases:  make(map[string][]float64),
		current: make(map[string]time.Duration),
	}
}

// StartTick begins timing a tick.
func (p *PerfCollector) StartTick() {
	p.tickStart = time.Now()
	p.phase = ""
	clear(p.current)
}

// StartPhase closes the running phase, if any, and starts timing phase.
func (p *PerfCollector) StartPhase(phase string) {
	now := time.Now()
	p.closePhase(now)
	p.phaseStart = now
	p.phase = phase
}

func (p *PerfCollector) closePhase(now time.Time) {
	if p.phase != "" {
		p.current[p.phase] += now.Sub(p.phaseStart)
	}
}

// EndTick closes the tick and stores it in the window.
func (p *PerfCollector) EndTick() {
	now := time.Now()
	p.closePhase(now)
	p.phase = ""

	p.ticks[p.next] = now.Sub(p.tickStart).Seconds()
	for name := range p.current {
		if _, ok := p.phases[name]; !ok {
			p.phases[name] = make([]float64, p.window)
		}
	}
	// Phases absent from this tick record zero so the slots stay aligned
	for name, ring := range p.phases {
		ring[p.next] = p.current[name].Seconds()
	}

	p.next = (p.next + 1) % p.window
	if p.filled < p.window {
		p.filled++
	}
}

// RecordFrame records the time since the previous frame.
func (p *PerfCollector) RecordFrame() {
	now := time.Now()
	if !p.lastFrame.IsZero() {
		p.frameDuration = now.Sub(p.lastFrame)
	}
	p.lastFrame = now
}

// PerfStats summarizes the window.
type PerfStats struct {
	AvgTickDuration time.Duration
	MinTickDuration time.Duration
	MaxTickDuration time.Duration

	PhaseAvg map[string]time.Duration
	PhasePct map[string]float64 // Percent of the average tick

	TicksPerSecond float64

	// Graphics mode only
	FrameDuration time.Duration
	FPS           float64
}

func seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}

// Stats aggregates the ticks currently in the window.
func (p *PerfCollector) Stats() PerfStats {
	stats := PerfStats{
		PhaseAvg:      make(map[string]time.Duration),
		PhasePct:      make(map[string]float64),
		FrameDuration: p.frameDuration,
	}
	if p.frameDuration > 0 {
		stats.FPS = 1 / p.frameDuration.Seconds()
	}
	if p.filled == 0 {
		return stats
	}

	// Slots past filled are unused until the ring wraps
	ticks := p.ticks[:p.filled]
	avg := stat.Mean(ticks, nil)
	stats.AvgTickDuration = seconds(avg)
	stats.MinTickDuration = seconds(floats.Min(ticks))
	stats.MaxTickDuration = seconds(floats.Max(ticks))
	if avg > 0 {
		stats.TicksPerSecond = 1 / avg
	}

	for name, ring := range p.phases {
		mean := stat.Mean(ring[:p.filled], nil)
		stats.PhaseAvg[name] = seconds(mean)
		if avg > 0 {
			stats.PhasePct[name] = mean / avg * 100
		}
	}
	return stats
}

// LogStats logs the stats at info level.
func (s PerfStats) LogStats() {
	slog.Info("perf", "stats", s)
}

// LogValue implements slog.LogValuer.
func (s PerfStats) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.Int64("avg_tick_us", s.AvgTickDuration.Microseconds()),
		slog.Int64("min_tick_us", s.MinTickDuration.Microseconds()),
		slog.Int64("max_tick_us", s.MaxTickDuration.Microseconds()),
		slog.Int("ticks_per_sec", int(s.TicksPerSecond)),
	}
	if s.FPS > 0 {
		attrs = append(attrs, slog.Int("fps", int(s.FPS)))
	}
	for _, phase := range Phases {
		if pct, ok := s.PhasePct[phase]; ok && pct > 0.1 {
			attrs = append(attrs, slog.Float64(phase+"_pct", float64(int(pct*10))/10))
		}
	}
	return slog.GroupValue(attrs...)
}

// PerfStatsCSV is one row of perf.csv.
type PerfStatsCSV struct {
	WindowEnd     int32   `csv:"window_end"`
	AvgTickUS     int64   `csv:"avg_tick_us"`
	MinTickUS     int64   `csv:"min_tick_us"`
	MaxTickUS     int64   `csv:"max_tick_us"`
	TicksPerSec   float64 `csv:"ticks_per_sec"`
	FPS           float64 `csv:"fps"`
	LevitationPct float64 `csv:"levitation_pct"`
	SpinPct       float64 `csv:"spin_pct"`
	GizmosPct     float64 `csv:"gizmos_pct"`
	TracePct      float64 `csv:"trace_pct"`
}

// ToCSV flattens the stats for the window ending at tick windowEnd.
func (s PerfStats) ToCSV(windowEnd int32) PerfStatsCSV {
	return PerfStatsCSV{
		WindowEnd:     windowEnd,
		AvgTickUS:     s.AvgTickDuration.Microseconds(),
		MinTickUS:     s.MinTickDuration.Microseconds(),
		MaxTickUS:     s.MaxTickDuration.Microseconds(),
		TicksPerSec:   s.TicksPerSecond,
		FPS:           s.FPS,
		LevitationPct: s.PhasePct[PhaseLevitation],
		SpinPct:       s.PhasePct[PhaseSpin],
		GizmosPct:     s.PhasePct[PhaseGizmos],
		TracePct:      s.PhasePct[PhaseTrace],
	}
}
