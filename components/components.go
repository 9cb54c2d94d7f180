// Package components defines ECS components for scene objects.
package components

import (
	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pthm-cable/transformutils/motion"
)

// Name is the object's registry handle.
type Name struct {
	Value string `inspect:"label"`
}

// Transform holds an object's pose relative to its parent (world space for roots).
type Transform struct {
	Position r3.Vec      `inspect:"vec"`
	Rotation quat.Number `inspect:"skip"` // unit quaternion
}

// Layer is the object's render/collision layer.
type Layer struct {
	Value int `inspect:"label"`
}

// Enabled tracks the object's lifecycle state.
// Motion components only run while the object is enabled.
type Enabled struct {
	Value bool `inspect:"bool"`
}

// Levitater makes an object float back and forth along an axis.
type Levitater struct {
	motion.Oscillator `inspect:"skip"`

	DebugDraw bool `inspect:"bool"` // draw the travel segment
}

// NewLevitater creates an inactive levitater.
func NewLevitater(settings motion.OscillatorSettings, debugDraw bool) Levitater {
	return Levitater{Oscillator: *motion.NewOscillator(settings), DebugDraw: debugDraw}
}

// Spinner makes an object spin about a world axis.
type Spinner struct {
	motion.Rotator `inspect:"skip"`

	DebugDraw bool `inspect:"bool"` // draw the spin axis
}

// NewSpinner creates an inactive spinner.
func NewSpinner(settings motion.RotatorSettings, debugDraw bool) Spinner {
	return Spinner{Rotator: *motion.NewRotator(settings), DebugDraw: debugDraw}
}
