package systems

import (
	"github.com/mlange-42/ark/ecs"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pthm-cable/transformutils/components"
	"github.com/pthm-cable/transformutils/mathutil"
)

// SegmentKind identifies what a debug segment visualizes.
type SegmentKind uint8

const (
	SegmentLevitation SegmentKind = iota // travel range of a levitater
	SegmentSpinAxis                      // axis of a spinner
)

// Segment is a debug line in world space.
type Segment struct {
	Entity   ecs.Entity
	Kind     SegmentKind
	From, To r3.Vec
}

// GizmoSystem collects debug segments for components with DebugDraw set.
type GizmoSystem struct {
	levFilter  ecs.Filter2[components.Transform, components.Levitater]
	spinFilter ecs.Filter2[components.Transform, components.Spinner]
	frames     *Frames
	segments   []Segment
}

// NewGizmoSystem creates a new gizmo system.
func NewGizmoSystem(w *ecs.World, frames *Frames) *GizmoSystem {
	return &GizmoSystem{
		levFilter:  *ecs.NewFilter2[components.Transform, components.Levitater](w),
		spinFilter: *ecs.NewFilter2[components.Transform, components.Spinner](w),
		frames:     frames,
	}
}

// Collect rebuilds the segment list. The returned slice is reused on the next call.
func (s *GizmoSystem) Collect() []Segment {
	s.segments = s.segments[:0]

	levQuery := s.levFilter.Query()
	for levQuery.Next() {
		_, lev := levQuery.Get()
		if !lev.DebugDraw {
			continue
		}
		e := levQuery.Entity()
		anchor := s.levitationAnchor(e, lev)
		s.segments = append(s.segments, Segment{
			Entity: e,
			Kind:   SegmentLevitation,
			From:   anchor,
			To:     r3.Add(anchor, levitationExtent(lev)),
		})
	}

	spinQuery := s.spinFilter.Query()
	for spinQuery.Next() {
		_, spin := spinQuery.Get()
		if !spin.DebugDraw {
			continue
		}
		e := spinQuery.Entity()
		pos := s.frames.WorldPosition(e)
		s.segments = append(s.segments, Segment{
			Entity: e,
			Kind:   SegmentSpinAxis,
			From:   pos,
			To:     r3.Add(pos, mathutil.Direction(spin.Settings().Axis)),
		})
	}

	return s.segments
}

// levitationAnchor is the origin while running, the current position otherwise.
func (s *GizmoSystem) levitationAnchor(e ecs.Entity, lev *components.Levitater) r3.Vec {
	if lev.Active() {
		return lev.State().Origin
	}
	return s.frames.WorldPosition(e)
}

func levitationExtent(lev *components.Levitater) r3.Vec {
	if lev.Active() {
		st := lev.State()
		return r3.Scale(st.Amplitude, st.Axis)
	}
	set := lev.Settings()
	amplitude := set.Amplitude
	if amplitude < 0 {
		amplitude = -amplitude
	}
	return r3.Scale(amplitude, mathutil.Direction(set.Axis))
}
