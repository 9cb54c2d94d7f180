package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/transformutils/mathutil"
	"github.com/pthm-cable/transformutils/scene"
)

// ObjectSize is the edge length of the cube drawn for each object.
const ObjectSize = 0.5

// layerColors tints objects by layer; layers wrap around the palette.
var layerColors = []rl.Color{
	{R: 90, G: 160, B: 230, A: 255},
	{R: 230, G: 140, B: 70, A: 255},
	{R: 120, G: 200, B: 120, A: 255},
	{R: 200, G: 110, B: 200, A: 255},
}

var (
	colorDisabled = rl.Color{R: 90, G: 90, B: 90, A: 255}
	colorWire     = rl.Color{R: 20, G: 20, B: 25, A: 255}
	colorSelected = rl.Color{R: 255, G: 230, B: 80, A: 255}
)

// LayerColor returns the tint for a layer.
func LayerColor(layer int) rl.Color {
	i := layer % len(layerColors)
	if i < 0 {
		i += len(layerColors)
	}
	return layerColors[i]
}

// ObjectRenderer draws scene objects as oriented cubes.
type ObjectRenderer struct{}

// NewObjectRenderer creates a new object renderer.
func NewObjectRenderer() *ObjectRenderer {
	return &ObjectRenderer{}
}

// DrawGround draws the reference grid. Must be called inside BeginMode3D.
func (r *ObjectRenderer) DrawGround() {
	rl.DrawGrid(20, 1)
}

// Draw renders all objects. Must be called inside BeginMode3D.
func (r *ObjectRenderer) Draw(objects []scene.Object, selected string) {
	for i := range objects {
		obj := &objects[i]

		color := LayerColor(obj.Layer)
		if !obj.Enabled {
			color = colorDisabled
		}

		axis, angle := mathutil.AxisAngle(obj.Rotation)
		rl.PushMatrix()
		rl.Translatef(float32(obj.Position.X), float32(obj.Position.Y), float32(obj.Position.Z))
		rl.Rotatef(float32(angle), float32(axis.X), float32(axis.Y), float32(axis.Z))

		rl.DrawCube(rl.Vector3{}, ObjectSize, ObjectSize, ObjectSize, color)
		wire := colorWire
		if obj.Handle == selected {
			wire = colorSelected
		}
		rl.DrawCubeWires(rl.Vector3{}, ObjectSize, ObjectSize, ObjectSize, wire)

		// Local +Y marker shows orientation
		rl.DrawLine3D(rl.Vector3{}, rl.Vector3{Y: ObjectSize}, wire)

		rl.PopMatrix()
	}
}

// Pick returns the handle of the object under the mouse, if any.
func (r *ObjectRenderer) Pick(objects []scene.Object, cam rl.Camera3D) (string, bool) {
	ray := rl.GetScreenToWorldRay(rl.GetMousePosition(), cam)

	best := ""
	bestDist := float32(1e30)
	for i := range objects {
		hit := rl.GetRayCollisionSphere(ray, toVector3(objects[i].Position), ObjectSize*0.75)
		if hit.Hit && hit.Distance < bestDist {
			best = objects[i].Handle
			bestDist = hit.Distance
		}
	}
	return best, best != ""
}
