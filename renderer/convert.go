// Package renderer draws the scene with raylib.
package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pthm-cable/transformutils/camera"
)

// toVector3 converts a gonum vector for raylib.
func toVector3(v r3.Vec) rl.Vector3 {
	return rl.Vector3{X: float32(v.X), Y: float32(v.Y), Z: float32(v.Z)}
}

// Camera3D builds a raylib perspective camera from an orbit camera.
func Camera3D(cam *camera.Camera, fovy float64) rl.Camera3D {
	return rl.Camera3D{
		Position:   toVector3(cam.Position()),
		Target:     toVector3(cam.Target),
		Up:         rl.Vector3{Y: 1},
		Fovy:       float32(fovy),
		Projection: rl.CameraPerspective,
	}
}
