// Package camera provides an orbit camera for viewing the scene.
package camera

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Pitch is kept just short of straight up or down so the view never flips.
const maxPitch = math.Pi/2 - 0.01

// Camera orbits a target point at a given distance.
// Angles are in radians; yaw 0 looks from +Z toward the target.
type Camera struct {
	// Target is the point the camera looks at
	Target r3.Vec

	// Orbit angles
	Yaw, Pitch float64

	// Distance from target
	Distance float64

	// Distance constraints
	MinDistance, MaxDistance float64

	// Initial placement for Reset
	home r3.Vec
	look r3.Vec
}

// New creates a camera at position looking at target.
func New(position, target r3.Vec) *Camera {
	c := &Camera{
		MinDistance: 1,
		MaxDistance: 100,
		home:        position,
		look:        target,
	}
	c.Reset()
	return c
}

// Reset returns the camera to its initial placement.
func (c *Camera) Reset() {
	c.Target = c.look
	offset := r3.Sub(c.home, c.look)
	c.Distance = r3.Norm(offset)
	if c.Distance == 0 {
		c.Distance = c.MinDistance
		offset = r3.Vec{Z: c.Distance}
	}
	c.Yaw = math.Atan2(offset.X, offset.Z)
	c.Pitch = clamp(math.Asin(offset.Y/c.Distance), -maxPitch, maxPitch)
	c.Distance = clamp(c.Distance, c.MinDistance, c.MaxDistance)
}

// Position returns the camera position in world coordinates.
func (c *Camera) Position() r3.Vec {
	cosPitch := math.Cos(c.Pitch)
	offset := r3.Vec{
		X: c.Distance * cosPitch * math.Sin(c.Yaw),
		Y: c.Distance * math.Sin(c.Pitch),
		Z: c.Distance * cosPitch * math.Cos(c.Yaw),
	}
	return r3.Add(c.Target, offset)
}

// Orbit rotates the camera around the target.
func (c *Camera) Orbit(dyaw, dpitch float64) {
	c.Yaw = math.Mod(c.Yaw+dyaw, 2*math.Pi)
	c.Pitch = clamp(c.Pitch+dpitch, -maxPitch, maxPitch)
}

// Pan moves the target in the ground plane, relative to the view direction.
// dx moves right, dz moves forward.
func (c *Camera) Pan(dx, dz float64) {
	right := r3.Vec{X: math.Cos(c.Yaw), Z: -math.Sin(c.Yaw)}
	forward := r3.Vec{X: -math.Sin(c.Yaw), Z: -math.Cos(c.Yaw)}
	c.Target = r3.Add(c.Target, r3.Add(r3.Scale(dx, right), r3.Scale(dz, forward)))
}

// SetDistance sets the orbit distance, clamped to min/max.
func (c *Camera) SetDistance(d float64) {
	c.Distance = clamp(d, c.MinDistance, c.MaxDistance)
}

// ZoomBy divides the distance by factor; factors above 1 move closer.
func (c *Camera) ZoomBy(factor float64) {
	if factor <= 0 {
		return
	}
	c.SetDistance(c.Distance / factor)
}

// clamp restricts a value to a range.
func clamp(x, min, max float64) float64 {
	if x < min {
		return min
	}
	if x > max {
		return max
	}
	return x
}
