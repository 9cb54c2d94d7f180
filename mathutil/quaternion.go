package mathutil

import (
	"math"

	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"
)

// smallAngleDot is the dot product above which arccos is considered
// ill-conditioned and the chord length is used instead.
const smallAngleDot = 0.9999

// Identity is the identity orientation.
var Identity = quat.Number{Real: 1}

// AngleBetween returns the angle in degrees between two orientations.
// q and -q are treated as the same orientation.
func AngleBetween(a, b quat.Number) float64 {
	dot := quatDot(a, b)
	if dot < 0 {
		b = quat.Scale(-1, b)
		dot = -dot
	}

	if dot < smallAngleDot {
		return math.Acos(dot) * 360 / math.Pi
	}
	return quat.Abs(quat.Sub(a, b)) * 360 / math.Pi
}

// Normalize returns q scaled to unit length. The zero quaternion maps to identity.
func Normalize(q quat.Number) quat.Number {
	n := quat.Abs(q)
	if n == 0 || math.IsNaN(n) {
		return Identity
	}
	return quat.Scale(1/n, q)
}

// FromEuler builds an orientation from Euler angles in degrees.
// Rotations are applied about the world X axis, then Y, then Z.
func FromEuler(degrees r3.Vec) quat.Number {
	q := Identity
	for _, step := range []struct {
		angle float64
		axis  r3.Vec
	}{
		{degrees.X, r3.Vec{X: 1}},
		{degrees.Y, r3.Vec{Y: 1}},
		{degrees.Z, r3.Vec{Z: 1}},
	} {
		if step.angle == 0 {
			continue
		}
		rot := quat.Number(r3.NewRotation(step.angle*math.Pi/180, step.axis))
		q = quat.Mul(rot, q)
	}
	return Normalize(q)
}

// AxisAngle converts an orientation to a rotation axis and angle in degrees.
// The identity maps to angle 0 about +Y.
func AxisAngle(q quat.Number) (r3.Vec, float64) {
	q = Normalize(q)
	if q.Real < 0 {
		q = quat.Scale(-1, q)
	}
	s := math.Sqrt(1 - q.Real*q.Real)
	if s < 1e-9 {
		return r3.Vec{Y: 1}, 0
	}
	axis := r3.Vec{X: q.Imag / s, Y: q.Jmag / s, Z: q.Kmag / s}
	return axis, 2 * math.Acos(min(q.Real, 1)) * 180 / math.Pi
}

// quatDot treats both quaternions as 4-vectors.
func quatDot(a, b quat.Number) float64 {
	return a.Real*b.Real + a.Imag*b.Imag + a.Jmag*b.Jmag + a.Kmag*b.Kmag
}
