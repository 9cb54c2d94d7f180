package motion

import (
	"math"

	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pthm-cable/transformutils/mathutil"
)

// RotatorSettings are the user-facing rotator parameters.
type RotatorSettings struct {
	Period float64 // Seconds per full turn (0 = no rotation)
	Axis   r3.Vec  // World-space rotation axis, normalized on reset
}

// RotatorState is the derived per-instance state.
type RotatorState struct {
	Initial      quat.Number `inspect:"skip"`
	Axis         r3.Vec      `inspect:"vec"`
	Period       float64     `inspect:"label,fmt:%.2fs"`
	AngularSpeed float64     `inspect:"label,fmt:%.1f deg/s"` // Degrees per second
}

// NewRotatorState derives state from settings, anchored at orientation.
func NewRotatorState(settings RotatorSettings, orientation quat.Number) RotatorState {
	s := RotatorState{
		Initial: mathutil.Normalize(orientation),
		Axis:    mathutil.Direction(settings.Axis),
		Period:  settings.Period,
	}
	if settings.Period != 0 {
		s.AngularSpeed = 360 / settings.Period
	}
	return s
}

// Settings returns the settings the state was derived from.
func (s RotatorState) Settings() RotatorSettings {
	return RotatorSettings{Period: s.Period, Axis: s.Axis}
}

// StepRotator rotates orientation about the world-space axis by dt*AngularSpeed degrees.
// The increment is composed on the left and the result renormalized.
func StepRotator(s RotatorState, orientation quat.Number, dt float64) quat.Number {
	if s.AngularSpeed == 0 || r3.Norm2(s.Axis) == 0 {
		return orientation
	}
	angle := dt * s.AngularSpeed * math.Pi / 180
	delta := quat.Number(r3.NewRotation(angle, s.Axis))
	return mathutil.Normalize(quat.Mul(delta, orientation))
}

// Rotator spins an orientation about a fixed world axis.
type Rotator struct {
	settings RotatorSettings
	state    RotatorState
	active   bool
}

// NewRotator creates an inactive rotator.
func NewRotator(settings RotatorSettings) *Rotator {
	return &Rotator{settings: settings}
}

// Activate captures orientation as the initial orientation.
func (r *Rotator) Activate(orientation quat.Number) {
	r.state = NewRotatorState(r.settings, orientation)
	r.active = true
}

// Deactivate stops the rotator and returns the orientation to restore.
func (r *Rotator) Deactivate() quat.Number {
	r.active = false
	return r.state.Initial
}

// Active reports whether the rotator is running.
func (r *Rotator) Active() bool {
	return r.active
}

// Step advances orientation by dt. Inactive rotators return it unchanged.
func (r *Rotator) Step(orientation quat.Number, dt float64) quat.Number {
	if !r.active {
		return orientation
	}
	return StepRotator(r.state, orientation, dt)
}

// State returns a copy of the current state.
func (r *Rotator) State() RotatorState {
	return r.state
}

// Settings returns the configured settings, which apply on the next activation.
func (r *Rotator) Settings() RotatorSettings {
	return r.settings
}

// UpdatePeriod changes the period and re-anchors at orientation.
func (r *Rotator) UpdatePeriod(period float64, orientation quat.Number) {
	r.settings.Period = period
	r.state = NewRotatorState(r.settings, orientation)
}

// UpdateAxis changes the axis and re-anchors at orientation.
func (r *Rotator) UpdateAxis(axis r3.Vec, orientation quat.Number) {
	r.settings.Axis = axis
	r.state = NewRotatorState(r.settings, orientation)
}
