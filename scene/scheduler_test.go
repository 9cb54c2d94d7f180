package scene

import "testing"

func TestScheduler(t *testing.T) {
	tests := []struct {
		name        string
		dt          float64
		maxSteps    int
		frames      []float64
		wantSteps   int
		wantPending float64
	}{
		{"below one step", 0.25, 5, []float64{0.125}, 0, 0.125},
		{"accumulates", 0.25, 5, []float64{0.125, 0.125}, 1, 0},
		{"carries remainder", 0.25, 5, []float64{0.625}, 2, 0.125},
		{"capped drops backlog", 0.25, 3, []float64{2}, 3, 0},
		{"uncapped", 0.25, 0, []float64{2}, 8, 0},
		{"negative frame ignored", 0.25, 5, []float64{-1, 0.25}, 1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewScheduler(tt.dt, tt.maxSteps)
			steps := 0
			for _, f := range tt.frames {
				steps += s.Advance(f)
			}
			if steps != tt.wantSteps {
				t.Errorf("steps = %d, want %d", steps, tt.wantSteps)
			}
			if s.Pending() != tt.wantPending {
				t.Errorf("pending = %v, want %v", s.Pending(), tt.wantPending)
			}
		})
	}
}

func TestScheduler_Reset(t *testing.T) {
	s := NewScheduler(0.25, 5)
	s.Advance(0.125)
	s.Reset()
	if got := s.Advance(0.125); got != 0 {
		t.Errorf("Advance after Reset = %d, want 0", got)
	}
}
