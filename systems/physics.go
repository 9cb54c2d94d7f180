// Package systems contains ECS systems for the scene.
package systems

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/transformutils/components"
)

// LevitationSystem advances every active levitater by one fixed step.
// Levitaters move along their world-space axis whatever their parent's pose.
type LevitationSystem struct {
	filter ecs.Filter2[components.Transform, components.Levitater]
	frames *Frames
}

// NewLevitationSystem creates a new levitation system.
func NewLevitationSystem(w *ecs.World, frames *Frames) *LevitationSystem {
	return &LevitationSystem{
		filter: *ecs.NewFilter2[components.Transform, components.Levitater](w),
		frames: frames,
	}
}

// Update runs the levitation system. Returns the number of objects moved.
func (s *LevitationSystem) Update(dt float64) int {
	moved := 0
	query := s.filter.Query()
	for query.Next() {
		_, lev := query.Get()
		if !lev.Active() {
			continue
		}
		e := query.Entity()
		s.frames.SetWorldPosition(e, lev.Step(s.frames.WorldPosition(e), dt))
		moved++
	}
	return moved
}

// SpinSystem advances every active spinner by one fixed step.
// Spinners turn about their world-space axis whatever their parent's pose.
type SpinSystem struct {
	filter ecs.Filter2[components.Transform, components.Spinner]
	frames *Frames
}

// NewSpinSystem creates a new spin system.
func NewSpinSystem(w *ecs.World, frames *Frames) *SpinSystem {
	return &SpinSystem{
		filter: *ecs.NewFilter2[components.Transform, components.Spinner](w),
		frames: frames,
	}
}

// Update runs the spin system. Returns the number of objects rotated.
func (s *SpinSystem) Update(dt float64) int {
	rotated := 0
	query := s.filter.Query()
	for query.Next() {
		_, spin := query.Get()
		if !spin.Active() {
			continue
		}
		e := query.Entity()
		s.frames.SetWorldRotation(e, spin.Step(s.frames.WorldRotation(e), dt))
		rotated++
	}
	return rotated
}
