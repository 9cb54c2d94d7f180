package systems

import (
	"github.com/mlange-42/ark/ecs"
	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pthm-cable/transformutils/components"
	"github.com/pthm-cable/transformutils/mathutil"
)

// Frames converts between an entity's Transform, which is relative to its
// parent, and its world-space pose. Roots are already in world space.
type Frames struct {
	transforms *ecs.Map[components.Transform]
	hierarchy  *Hierarchy
}

// NewFrames creates a converter over the world's transforms and hierarchy.
func NewFrames(w *ecs.World, h *Hierarchy) *Frames {
	return &Frames{transforms: ecs.NewMap[components.Transform](w), hierarchy: h}
}

// World returns e's world-space position and rotation.
func (f *Frames) World(e ecs.Entity) (r3.Vec, quat.Number) {
	tr := f.transforms.Get(e)
	parentPos, parentRot, ok := f.parentPose(e)
	if !ok {
		return tr.Position, mathutil.Normalize(tr.Rotation)
	}
	return r3.Add(r3.Rotation(parentRot).Rotate(tr.Position), parentPos),
		mathutil.Normalize(quat.Mul(parentRot, tr.Rotation))
}

// WorldPosition returns e's world-space position.
func (f *Frames) WorldPosition(e ecs.Entity) r3.Vec {
	pos, _ := f.World(e)
	return pos
}

// WorldRotation returns e's world-space rotation.
func (f *Frames) WorldRotation(e ecs.Entity) quat.Number {
	_, rot := f.World(e)
	return rot
}

// SetWorldPosition moves e so its world-space position is pos.
func (f *Frames) SetWorldPosition(e ecs.Entity, pos r3.Vec) {
	tr := f.transforms.Get(e)
	parentPos, parentRot, ok := f.parentPose(e)
	if !ok {
		tr.Position = pos
		return
	}
	tr.Position = r3.Rotation(quat.Conj(parentRot)).Rotate(r3.Sub(pos, parentPos))
}

// SetWorldRotation turns e so its world-space rotation is rot.
func (f *Frames) SetWorldRotation(e ecs.Entity, rot quat.Number) {
	tr := f.transforms.Get(e)
	_, parentRot, ok := f.parentPose(e)
	if !ok {
		tr.Rotation = rot
		return
	}
	tr.Rotation = mathutil.Normalize(quat.Mul(quat.Conj(parentRot), rot))
}

// SetWorld sets both parts of e's world-space pose.
func (f *Frames) SetWorld(e ecs.Entity, pos r3.Vec, rot quat.Number) {
	f.SetWorldPosition(e, pos)
	f.SetWorldRotation(e, rot)
}

// parentPose returns the world pose of e's parent; ok is false for roots.
func (f *Frames) parentPose(e ecs.Entity) (r3.Vec, quat.Number, bool) {
	if f.hierarchy == nil {
		return r3.Vec{}, mathutil.Identity, false
	}
	p, ok := f.hierarchy.Parent(e)
	if !ok {
		return r3.Vec{}, mathutil.Identity, false
	}
	pos, rot := f.World(p)
	return pos, rot, true
}
