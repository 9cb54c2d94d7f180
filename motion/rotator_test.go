package motion

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pthm-cable/transformutils/mathutil"
)

func TestRotatorFullTurn(t *testing.T) {
	initial := quat.Number(r3.NewRotation(0.4, r3.Vec{X: 1, Z: 1}))
	rot := NewRotator(RotatorSettings{Period: 2, Axis: r3.Vec{Y: 2}})
	rot.Activate(initial)

	q := initial
	for range int(2 / exactDT) {
		q = rot.Step(q, exactDT)
	}
	if angle := mathutil.AngleBetween(q, initial); angle > 1e-6 {
		t.Errorf("expected full turn back to initial orientation, off by %g degrees", angle)
	}
}

func TestRotatorQuarterTurn(t *testing.T) {
	rot := NewRotator(RotatorSettings{Period: 4, Axis: r3.Vec{Y: 1}})
	rot.Activate(mathutil.Identity)

	q := mathutil.Identity
	for range 64 {
		q = rot.Step(q, exactDT)
	}
	if angle := mathutil.AngleBetween(q, mathutil.Identity); math.Abs(angle-90) > 1e-6 {
		t.Errorf("expected 90 degrees after a quarter period, got %g", angle)
	}

	// +X rotated a quarter turn about +Y lands on -Z.
	p := r3.Rotation(q).Rotate(r3.Vec{X: 1})
	if r3.Norm(r3.Sub(p, r3.Vec{Z: -1})) > 1e-9 {
		t.Errorf("expected +X to map to -Z, got %+v", p)
	}
}

func TestRotatorWorldSpaceComposition(t *testing.T) {
	// Start tilted 90 degrees about X; spinning about world Y must not
	// follow the tilted local frame.
	initial := quat.Number(r3.NewRotation(math.Pi/2, r3.Vec{X: 1}))
	state := NewRotatorState(RotatorSettings{Period: 4, Axis: r3.Vec{Y: 1}}, initial)

	q := StepRotator(state, initial, 1) // 90 degrees
	want := quat.Mul(quat.Number(r3.NewRotation(math.Pi/2, r3.Vec{Y: 1})), initial)
	if mathutil.AngleBetween(q, want) > 1e-6 {
		t.Errorf("expected world-space composition, got %v want %v", q, want)
	}
}

func TestRotatorStaysUnit(t *testing.T) {
	rot := NewRotator(RotatorSettings{Period: 0.37, Axis: r3.Vec{X: 1, Y: -2, Z: 0.5}})
	rot.Activate(mathutil.Identity)

	q := mathutil.Identity
	for range 50000 {
		q = rot.Step(q, 0.0167)
	}
	if math.Abs(quat.Abs(q)-1) > 1e-12 {
		t.Errorf("expected unit quaternion, norm %g", quat.Abs(q))
	}
}

func TestRotatorZeroPeriod(t *testing.T) {
	rot := NewRotator(RotatorSettings{Period: 0, Axis: r3.Vec{Y: 1}})
	rot.Activate(mathutil.Identity)
	if q := rot.Step(mathutil.Identity, 1); q != mathutil.Identity {
		t.Errorf("expected no rotation, got %v", q)
	}
}

func TestRotatorDeactivateAndUpdate(t *testing.T) {
	initial := quat.Number(r3.NewRotation(1, r3.Vec{Z: 1}))
	rot := NewRotator(RotatorSettings{Period: 1, Axis: r3.Vec{Y: 1}})
	rot.Activate(initial)

	q := initial
	for range 10 {
		q = rot.Step(q, 0.03)
	}

	rot.UpdatePeriod(0.5, q)
	if rot.State().AngularSpeed != 720 {
		t.Errorf("expected 720 deg/s, got %g", rot.State().AngularSpeed)
	}
	if mathutil.AngleBetween(rot.State().Initial, q) > 1e-9 {
		t.Error("expected update to re-anchor initial orientation")
	}

	rot.UpdateAxis(r3.Vec{Z: 4}, q)
	if rot.State().Axis != (r3.Vec{Z: 1}) {
		t.Errorf("expected normalized axis, got %+v", rot.State().Axis)
	}

	restored := rot.Deactivate()
	if mathutil.AngleBetween(restored, q) > 1e-9 {
		t.Error("expected restore to the last anchored orientation")
	}
	if rot.Active() {
		t.Error("expected rotator inactive")
	}
}
