package systems

import (
	"math"
	"testing"

	"github.com/mlange-42/ark/ecs"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pthm-cable/transformutils/components"
	"github.com/pthm-cable/transformutils/mathutil"
	"github.com/pthm-cable/transformutils/motion"
)

func TestLevitationSystemMovesActiveOnly(t *testing.T) {
	w := ecs.NewWorld()
	mapper := ecs.NewMap2[components.Transform, components.Levitater](w)

	active := components.NewLevitater(motion.OscillatorSettings{Amplitude: 1, Period: 2, Axis: r3.Vec{Y: 1}}, false)
	active.Activate(r3.Vec{})
	idle := components.NewLevitater(motion.OscillatorSettings{Amplitude: 1, Period: 2, Axis: r3.Vec{Y: 1}}, false)

	e1 := mapper.NewEntity(&components.Transform{Rotation: mathutil.Identity}, &active)
	e2 := mapper.NewEntity(&components.Transform{Rotation: mathutil.Identity}, &idle)

	sys := NewLevitationSystem(w, NewFrames(w, nil))
	for range 32 {
		if n := sys.Update(1.0 / 64.0); n != 1 {
			t.Fatalf("expected 1 object moved, got %d", n)
		}
	}

	trMap := ecs.NewMap[components.Transform](w)
	if y := trMap.Get(e1).Position.Y; math.Abs(y-0.5) > 1e-12 {
		t.Errorf("expected active levitater at y=0.5, got %g", y)
	}
	if p := trMap.Get(e2).Position; p != (r3.Vec{}) {
		t.Errorf("expected inactive levitater to stay put, got %+v", p)
	}
}

func TestSpinSystemRotates(t *testing.T) {
	w := ecs.NewWorld()
	mapper := ecs.NewMap2[components.Transform, components.Spinner](w)

	spin := components.NewSpinner(motion.RotatorSettings{Period: 1, Axis: r3.Vec{Z: 1}}, false)
	spin.Activate(mathutil.Identity)
	e := mapper.NewEntity(&components.Transform{Rotation: mathutil.Identity}, &spin)

	sys := NewSpinSystem(w, NewFrames(w, nil))
	for range 16 {
		sys.Update(1.0 / 64.0) // quarter turn total
	}

	tr := ecs.NewMap[components.Transform](w).Get(e)
	if angle := mathutil.AngleBetween(tr.Rotation, mathutil.Identity); math.Abs(angle-90) > 1e-6 {
		t.Errorf("expected 90 degrees, got %g", angle)
	}
}
