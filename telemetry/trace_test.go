package telemetry

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pthm-cable/transformutils/config"
)

func TestLevitationPhase(t *testing.T) {
	origin := r3.Vec{X: 1, Y: 2, Z: 3}
	axis := r3.Vec{Y: 1}

	tests := []struct {
		name      string
		amplitude float64
		position  r3.Vec
		want      float64
	}{
		{"at origin", 2, origin, 0},
		{"at top", 2, r3.Vec{X: 1, Y: 4, Z: 3}, 1},
		{"halfway", 2, r3.Vec{X: 1, Y: 3, Z: 3}, 0.5},
		{"off axis ignored", 2, r3.Vec{X: 5, Y: 3, Z: -1}, 0.5},
		{"zero amplitude", 0, r3.Vec{X: 1, Y: 3, Z: 3}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := LevitationPhase(origin, axis, tt.amplitude, tt.position)
			if math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("LevitationPhase() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSummarizer(t *testing.T) {
	s := NewSummarizer()
	phases := []float64{0, 0.5, 1, 0.5}
	for i, p := range phases {
		s.Add(TraceSample{Tick: int32(i), Object: "orb", Levitates: true, Phase: p, Y: p})
		s.Add(TraceSample{Tick: int32(i), Object: "ring", Spins: true, SpinAngle: float64(i) * 10})
	}

	sums := s.Summaries()
	if len(sums) != 2 {
		t.Fatalf("got %d summaries, want 2", len(sums))
	}
	if sums[0].Object != "orb" || sums[1].Object != "ring" {
		t.Fatalf("summary order = %s,%s, want orb,ring", sums[0].Object, sums[1].Object)
	}

	orb := sums[0]
	if orb.Samples != 4 {
		t.Errorf("orb samples = %d, want 4", orb.Samples)
	}
	if orb.PhaseMin != 0 || orb.PhaseMax != 1 {
		t.Errorf("orb phase range = [%v, %v], want [0, 1]", orb.PhaseMin, orb.PhaseMax)
	}
	if math.Abs(orb.PhaseMean-0.5) > 1e-12 {
		t.Errorf("orb phase mean = %v, want 0.5", orb.PhaseMean)
	}
	if orb.PhaseStd <= 0 {
		t.Errorf("orb phase std = %v, want > 0", orb.PhaseStd)
	}
	if orb.Drift != 0 {
		t.Errorf("orb drift = %v, want 0 after a single low-endpoint visit", orb.Drift)
	}

	ring := sums[1]
	if ring.SpinAngleMax != 30 {
		t.Errorf("ring max spin angle = %v, want 30", ring.SpinAngleMax)
	}
	if ring.PhaseStd != 0 {
		t.Errorf("ring phase std = %v, want 0 for non-levitater", ring.PhaseStd)
	}
}

func TestSummarizer_Drift(t *testing.T) {
	tests := []struct {
		name    string
		samples []TraceSample
		want    float64
	}{
		{
			name: "returns to the same low endpoint",
			samples: []TraceSample{
				{Object: "orb", Levitates: true, Phase: 0, Y: 1},
				{Object: "orb", Levitates: true, Phase: 1, Y: 2},
				{Object: "orb", Levitates: true, Phase: 0, Y: 1},
			},
			want: 0,
		},
		{
			name: "low endpoint moved",
			samples: []TraceSample{
				{Object: "orb", Levitates: true, Phase: 0, Y: 1},
				{Object: "orb", Levitates: true, Phase: 0.5, X: 9, Y: 1.5},
				{Object: "orb", Levitates: true, Phase: 0, X: 0.3, Y: 1.4},
			},
			want: 0.5,
		},
		{
			name: "mid-cycle positions ignored",
			samples: []TraceSample{
				{Object: "orb", Levitates: true, Phase: 0.2, Y: 1.2},
				{Object: "orb", Levitates: true, Phase: 0.9, Y: 1.9},
			},
			want: 0,
		},
		{
			name: "non-levitater",
			samples: []TraceSample{
				{Object: "ring", Spins: true, X: 0},
				{Object: "ring", Spins: true, X: 4},
			},
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSummarizer()
			for _, sample := range tt.samples {
				s.Add(sample)
			}
			if got := s.Summaries()[0].Drift; math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("Drift = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSummarizer_SingleSample(t *testing.T) {
	s := NewSummarizer()
	s.Add(TraceSample{Object: "orb", Levitates: true, Phase: 0.25})

	sum := s.Summaries()[0]
	if sum.PhaseStd != 0 {
		t.Errorf("single-sample std = %v, want 0", sum.PhaseStd)
	}
	if sum.PhaseMean != 0.25 {
		t.Errorf("single-sample mean = %v, want 0.25", sum.PhaseMean)
	}
}

func TestOutputManager_Disabled(t *testing.T) {
	om, err := NewOutputManager("")
	if err != nil {
		t.Fatalf("NewOutputManager(\"\") error: %v", err)
	}
	if om != nil {
		t.Fatal("expected nil manager for empty dir")
	}
	// nil manager methods are no-ops
	if err := om.WriteTrace([]TraceSample{{Object: "orb"}}); err != nil {
		t.Errorf("WriteTrace on nil manager: %v", err)
	}
	if err := om.Close(); err != nil {
		t.Errorf("Close on nil manager: %v", err)
	}
}

func TestOutputManager_WritesFiles(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "run")
	om, err := NewOutputManager(dir)
	if err != nil {
		t.Fatalf("NewOutputManager error: %v", err)
	}

	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("config.Load error: %v", err)
	}
	if err := om.WriteConfig(cfg); err != nil {
		t.Fatalf("WriteConfig error: %v", err)
	}

	for tick := int32(0); tick < 3; tick++ {
		batch := []TraceSample{
			{Tick: tick, Object: "orb", Direction: "toward_max"},
			{Tick: tick, Object: "ring"},
		}
		if err := om.WriteTrace(batch); err != nil {
			t.Fatalf("WriteTrace error: %v", err)
		}
	}
	if err := om.WritePerf(PerfStats{}, 3); err != nil {
		t.Fatalf("WritePerf error: %v", err)
	}
	if err := om.WriteSummary([]ObjectSummary{{Object: "orb", Samples: 3}}); err != nil {
		t.Fatalf("WriteSummary error: %v", err)
	}
	if err := om.Close(); err != nil {
		t.Fatalf("Close error: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "trace.csv"))
	if err != nil {
		t.Fatalf("reading trace.csv: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 7 {
		t.Fatalf("trace.csv has %d lines, want 7 (header + 6 rows)", len(lines))
	}
	if !strings.HasPrefix(lines[0], "tick,sim_time,object,") {
		t.Errorf("unexpected header: %s", lines[0])
	}
	if strings.Count(string(data), "tick,") != 1 {
		t.Error("header written more than once")
	}

	for _, name := range []string{"perf.csv", "summary.csv", "config.yaml"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("missing %s: %v", name, err)
		}
	}

	reloaded, err := config.Load(filepath.Join(dir, "config.yaml"))
	if err != nil {
		t.Fatalf("reloading config snapshot: %v", err)
	}
	if len(reloaded.Objects) != len(cfg.Objects) {
		t.Errorf("snapshot has %d objects, want %d", len(reloaded.Objects), len(cfg.Objects))
	}
}
