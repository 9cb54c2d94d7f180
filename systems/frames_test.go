package systems

import (
	"math"
	"testing"

	"github.com/mlange-42/ark/ecs"
	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pthm-cable/transformutils/components"
	"github.com/pthm-cable/transformutils/mathutil"
	"github.com/pthm-cable/transformutils/motion"
)

// rotatedArm builds a parent at (0,1,0) turned 90 degrees about Z with one
// child at local (2,0,0).
func rotatedArm(t *testing.T, w *ecs.World) (parent, child ecs.Entity, f *Frames) {
	t.Helper()
	trMap := ecs.NewMap[components.Transform](w)
	parent = trMap.NewEntity(&components.Transform{
		Position: r3.Vec{Y: 1},
		Rotation: quat.Number(r3.NewRotation(math.Pi/2, r3.Vec{Z: 1})),
	})
	child = trMap.NewEntity(&components.Transform{Position: r3.Vec{X: 2}, Rotation: mathutil.Identity})

	h := NewHierarchy(w)
	mustParent(t, h, child, parent)
	return parent, child, NewFrames(w, h)
}

func near(a, b r3.Vec) bool {
	return r3.Norm(r3.Sub(a, b)) < 1e-9
}

func TestFramesWorld(t *testing.T) {
	w := ecs.NewWorld()
	parent, child, f := rotatedArm(t, w)

	if got := f.WorldPosition(parent); !near(got, r3.Vec{Y: 1}) {
		t.Errorf("expected root at its own position, got %+v", got)
	}
	if got := f.WorldPosition(child); !near(got, r3.Vec{Y: 3}) {
		t.Errorf("expected child at (0,3,0), got %+v", got)
	}
	if a := mathutil.AngleBetween(f.WorldRotation(child), f.WorldRotation(parent)); a > 1e-9 {
		t.Errorf("expected child to inherit parent rotation, off by %g degrees", a)
	}
}

func TestFramesSetWorld(t *testing.T) {
	w := ecs.NewWorld()
	_, child, f := rotatedArm(t, w)

	pos := r3.Vec{X: 1, Y: 1}
	rot := quat.Number(r3.NewRotation(math.Pi/2, r3.Vec{Y: 1}))
	f.SetWorld(child, pos, rot)

	local := ecs.NewMap[components.Transform](w).Get(child).Position
	if !near(local, r3.Vec{Y: -1}) {
		t.Errorf("expected local position (0,-1,0), got %+v", local)
	}
	if got := f.WorldPosition(child); !near(got, pos) {
		t.Errorf("expected world position %+v, got %+v", pos, got)
	}
	if a := mathutil.AngleBetween(f.WorldRotation(child), rot); a > 1e-9 {
		t.Errorf("expected world rotation to round trip, off by %g degrees", a)
	}
}

func TestLevitationUnderRotatedParent(t *testing.T) {
	w := ecs.NewWorld()
	_, child, f := rotatedArm(t, w)

	lev := components.NewLevitater(motion.OscillatorSettings{Amplitude: 1, Period: 2, Axis: r3.Vec{Y: 1}}, false)
	lev.Activate(f.WorldPosition(child))
	ecs.NewMap[components.Levitater](w).Add(child, &lev)

	sys := NewLevitationSystem(w, f)
	for range 32 {
		sys.Update(1.0 / 64.0)
	}

	if got := f.WorldPosition(child); !near(got, r3.Vec{Y: 3.5}) {
		t.Errorf("expected child raised along world Y to (0,3.5,0), got %+v", got)
	}
}
