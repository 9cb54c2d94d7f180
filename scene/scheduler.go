package scene

// Scheduler converts variable frame times into a whole number of fixed steps.
type Scheduler struct {
	dt          float64
	maxSteps    int
	accumulator float64
}

// NewScheduler creates a scheduler for the given fixed step.
// maxSteps caps catch-up per frame; maxSteps <= 0 means no cap.
func NewScheduler(dt float64, maxSteps int) *Scheduler {
	return &Scheduler{dt: dt, maxSteps: maxSteps}
}

// Advance adds frameSeconds to the accumulator and returns the number of
// fixed steps now due. Time beyond the cap is dropped.
func (s *Scheduler) Advance(frameSeconds float64) int {
	if frameSeconds > 0 {
		s.accumulator += frameSeconds
	}

	steps := 0
	for s.accumulator >= s.dt {
		if s.maxSteps > 0 && steps == s.maxSteps {
			s.accumulator = 0
			break
		}
		s.accumulator -= s.dt
		steps++
	}
	return steps
}

// Pending returns the accumulated time not yet consumed by a step.
func (s *Scheduler) Pending() float64 {
	return s.accumulator
}

// Reset drops any accumulated time.
func (s *Scheduler) Reset() {
	s.accumulator = 0
}
