package scene

import (
	"log/slog"

	"github.com/mlange-42/ark/ecs"
	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pthm-cable/transformutils/systems"
)

// Transforms are stored relative to the parent; roots are in world space.

// worldPose composes e's local pose with every ancestor's.
func (s *Scene) worldPose(e ecs.Entity) (r3.Vec, quat.Number) {
	return s.frames.World(e)
}

// GlobalPosition returns the world-space position of the named object.
func (s *Scene) GlobalPosition(handle string) (r3.Vec, error) {
	e, err := s.entity(handle)
	if err != nil {
		return r3.Vec{}, err
	}
	pos, _ := s.worldPose(e)
	return pos, nil
}

// LogGlobalPosition logs the world-space position of the named object.
func (s *Scene) LogGlobalPosition(handle string) error {
	e, err := s.entity(handle)
	if err != nil {
		return err
	}
	pos, _ := s.worldPose(e)
	local := s.transformMap.Get(e).Position
	slog.Info("global position",
		"object", handle,
		"tick", s.tick,
		"x", pos.X,
		"y", pos.Y,
		"z", pos.Z,
		"local_x", local.X,
		"local_y", local.Y,
		"local_z", local.Z,
	)
	return nil
}

// collectSegments gathers this step's debug segments.
func (s *Scene) collectSegments() {
	s.segments = append(s.segments[:0], s.gizmos.Collect()...)
}

// Segments returns world-space debug segments from the last step.
// The slice is reused on the next step.
func (s *Scene) Segments() []systems.Segment {
	return s.segments
}
