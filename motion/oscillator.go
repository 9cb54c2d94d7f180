// Package motion implements the fixed-timestep oscillator and rotator used
// to animate scene objects. State lives in plain structs advanced by pure
// step functions so hosts can drive them from any scheduler.
package motion

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pthm-cable/transformutils/mathutil"
)

// Direction is the oscillator's travel direction along its axis.
type Direction uint8

const (
	MovingTowardMax Direction = iota
	MovingTowardMin
)

// String returns the direction name.
func (d Direction) String() string {
	if d == MovingTowardMin {
		return "toward_min"
	}
	return "toward_max"
}

// OscillatorSettings are the user-facing oscillator parameters.
type OscillatorSettings struct {
	Amplitude float64 // World-space distance between the low and high points
	Period    float64 // Seconds per full cycle (<= 0 = stationary)
	Axis      r3.Vec  // World-space travel axis, normalized on reset
}

// OscillatorState is the derived per-instance state.
type OscillatorState struct {
	Origin    r3.Vec    `inspect:"vec"`
	Axis      r3.Vec    `inspect:"vec"`
	Amplitude float64   `inspect:"bar,max:5"`
	Period    float64   `inspect:"label,fmt:%.2fs"`
	Speed     float64   `inspect:"label,fmt:%.2f/s"` // Units per second
	Min       r3.Vec    `inspect:"skip"`
	Max       r3.Vec    `inspect:"skip"`
	Direction Direction `inspect:"label"`
}

// NewOscillatorState derives state from settings, anchored at position.
func NewOscillatorState(settings OscillatorSettings, position r3.Vec) OscillatorState {
	amplitude := math.Abs(settings.Amplitude)
	axis := mathutil.Direction(settings.Axis)

	s := OscillatorState{
		Origin:    position,
		Axis:      axis,
		Amplitude: amplitude,
		Period:    settings.Period,
		Min:       position,
		Max:       r3.Add(position, r3.Scale(amplitude, axis)),
		Direction: MovingTowardMax,
	}
	if settings.Period > 0 {
		s.Speed = 2 * amplitude / settings.Period
	}
	return s
}

// Settings returns the settings the state was derived from.
func (s OscillatorState) Settings() OscillatorSettings {
	return OscillatorSettings{Amplitude: s.Amplitude, Period: s.Period, Axis: s.Axis}
}

// StepOscillator advances position by dt seconds. On reaching an endpoint the
// position snaps exactly to it and the direction flips, which keeps error
// from accumulating across cycles.
func StepOscillator(s OscillatorState, position r3.Vec, dt float64) (OscillatorState, r3.Vec) {
	if s.Speed == 0 {
		return s, position
	}

	sign := 1.0
	if s.Direction == MovingTowardMin {
		sign = -1.0
	}
	position = r3.Add(position, r3.Scale(dt*s.Speed*sign, s.Axis))

	switch s.Direction {
	case MovingTowardMax:
		if r3.Dot(r3.Sub(s.Max, position), s.Axis) <= 0 {
			s.Direction = MovingTowardMin
			position = s.Max
		}
	case MovingTowardMin:
		if r3.Dot(r3.Sub(s.Min, position), s.Axis) >= 0 {
			s.Direction = MovingTowardMax
			position = s.Min
		}
	}
	return s, position
}

// Oscillator drives a position back and forth along an axis.
// It is the stateful wrapper around StepOscillator used by hosts.
type Oscillator struct {
	settings OscillatorSettings
	state    OscillatorState
	active   bool
}

// NewOscillator creates an inactive oscillator.
func NewOscillator(settings OscillatorSettings) *Oscillator {
	return &Oscillator{settings: settings}
}

// Activate captures position as the origin and derives min, max and speed.
func (o *Oscillator) Activate(position r3.Vec) {
	o.state = NewOscillatorState(o.settings, position)
	o.active = true
}

// Deactivate stops the oscillator and returns the position to restore (the origin).
func (o *Oscillator) Deactivate() r3.Vec {
	o.active = false
	return o.state.Origin
}

// Active reports whether the oscillator is running.
func (o *Oscillator) Active() bool {
	return o.active
}

// Step advances position by dt. Inactive oscillators return position unchanged.
func (o *Oscillator) Step(position r3.Vec, dt float64) r3.Vec {
	if !o.active {
		return position
	}
	o.state, position = StepOscillator(o.state, position, dt)
	return position
}

// State returns a copy of the current state.
func (o *Oscillator) State() OscillatorState {
	return o.state
}

// Settings returns the configured settings, which apply on the next activation.
func (o *Oscillator) Settings() OscillatorSettings {
	return o.settings
}

// UpdateAmplitude changes the amplitude and re-anchors at position.
func (o *Oscillator) UpdateAmplitude(amplitude float64, position r3.Vec) {
	o.settings.Amplitude = amplitude
	o.reset(position)
}

// UpdatePeriod changes the period and re-anchors at position.
func (o *Oscillator) UpdatePeriod(period float64, position r3.Vec) {
	o.settings.Period = period
	o.reset(position)
}

// UpdateAxis changes the axis and re-anchors at position.
func (o *Oscillator) UpdateAxis(axis r3.Vec, position r3.Vec) {
	o.settings.Axis = axis
	o.reset(position)
}

func (o *Oscillator) reset(position r3.Vec) {
	o.state = NewOscillatorState(o.settings, position)
}
