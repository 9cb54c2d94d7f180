package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/transformutils/systems"
)

// GizmoRenderer draws debug segments.
type GizmoRenderer struct{}

// NewGizmoRenderer creates a new gizmo renderer.
func NewGizmoRenderer() *GizmoRenderer {
	return &GizmoRenderer{}
}

// Draw renders all segments. Must be called inside BeginMode3D.
func (r *GizmoRenderer) Draw(segments []systems.Segment) {
	for i := range segments {
		seg := &segments[i]

		var color rl.Color
		switch seg.Kind {
		case systems.SegmentLevitation:
			// Yellow travel range with endpoint markers
			color = rl.Color{R: 255, G: 220, B: 60, A: 255}
			rl.DrawSphere(toVector3(seg.From), 0.05, color)
			rl.DrawSphere(toVector3(seg.To), 0.05, color)
		case systems.SegmentSpinAxis:
			// Cyan
			color = rl.Color{R: 80, G: 220, B: 230, A: 255}
		}

		rl.DrawLine3D(toVector3(seg.From), toVector3(seg.To), color)
	}
}
