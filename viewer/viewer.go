// Package viewer runs the scene in a raylib window.
package viewer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/transformutils/camera"
	"github.com/pthm-cable/transformutils/inspector"
	"github.com/pthm-cable/transformutils/renderer"
	"github.com/pthm-cable/transformutils/scene"
	"github.com/pthm-cable/transformutils/ui"
)

// layerCount is how many layers the layer key cycles through.
const layerCount = 4

// sidebarWidth is the screen width reserved for the left panels.
const sidebarWidth = 220

const controlsText = "[Space] pause  [Tab] select  [E] enable  [L] layer  [K] log position  [O] overlays  [LMB] pick  [RMB] orbit  [Wheel] zoom  [Arrows] pan  [Home] reset view"

// Viewer holds the window state around a scene.
type Viewer struct {
	scene *scene.Scene

	camera    *camera.Camera
	objects   *renderer.ObjectRenderer
	gizmos    *renderer.GizmoRenderer
	inspector *inspector.Inspector
	hud       *ui.HUD
	perfPanel *ui.PerfPanel
	controls  *ui.ControlsPanel
	list      *ui.ObjectListPanel
	overlays  *ui.OverlayRegistry

	paused        bool
	screenWidth   int32
	screenHeight  int32
	objectsBuffer []scene.Object
}

// New creates a viewer. Must be called after rl.InitWindow.
func New(s *scene.Scene) *Viewer {
	cfg := s.Config()
	w := int32(rl.GetScreenWidth())
	h := int32(rl.GetScreenHeight())

	return &Viewer{
		scene:        s,
		camera:       camera.New(cfg.Camera.Position.R3(), cfg.Camera.Target.R3()),
		objects:      renderer.NewObjectRenderer(),
		gizmos:       renderer.NewGizmoRenderer(),
		inspector:    inspector.NewInspector(w, h),
		hud:          ui.NewHUD(),
		perfPanel:    ui.NewPerfPanel(10, h-140),
		controls:     ui.NewControlsPanel(10, 80, 200),
		list:         ui.NewObjectListPanel(10, 80, 200),
		overlays:     ui.NewOverlayRegistry(),
		screenWidth:  w,
		screenHeight: h,
	}
}

// Update handles input and advances the scene by the frame time.
func (v *Viewer) Update() {
	v.objectsBuffer = v.scene.Objects()
	v.handleInput()

	if v.paused {
		return
	}
	v.scene.Advance(float64(rl.GetFrameTime()))
}

// Draw renders the frame.
func (v *Viewer) Draw() {
	v.scene.RecordFrame()
	objects := v.scene.Objects()
	selected, _ := v.inspector.Selected()
	cam := renderer.Camera3D(v.camera, v.scene.Config().Camera.Fovy)

	rl.BeginDrawing()
	rl.ClearBackground(rl.Color{R: 18, G: 20, B: 24, A: 255})

	rl.BeginMode3D(cam)
	if v.overlays.IsEnabled(ui.OverlayGrid) {
		v.objects.DrawGround()
	}
	v.objects.Draw(objects, selected)
	if v.overlays.IsEnabled(ui.OverlayGizmos) {
		v.gizmos.Draw(v.scene.Segments())
	}
	rl.EndMode3D()

	if v.overlays.IsEnabled(ui.OverlayLabels) {
		v.drawLabels(objects, cam)
	}

	v.hud.Draw(ui.HUDData{
		Title:        "Transform Utils",
		ObjectCount:  len(objects),
		Tick:         v.scene.Tick(),
		SimTime:      v.scene.SimTime(),
		FPS:          rl.GetFPS(),
		Paused:       v.paused,
		Selected:     selected,
		ScreenWidth:  v.screenWidth,
		ScreenHeight: v.screenHeight,
	})

	listY := v.controls.Draw(v.overlays)
	v.list.SetPosition(10, listY+10)

	entries := make([]ui.ObjectEntry, len(objects))
	for i, obj := range objects {
		entries[i] = ui.ObjectEntry{Handle: obj.Handle, Layer: obj.Layer, Enabled: obj.Enabled}
	}
	if handle, ok := v.list.Draw(entries, selected); ok {
		v.inspector.Select(handle)
	}

	if v.overlays.IsEnabled(ui.OverlayPerf) {
		v.perfPanel.Draw(v.scene.PerfStats(), v.scene.Systems())
	}

	if handle, ok := v.inspector.Selected(); ok {
		if obj, err := v.scene.Object(handle); err == nil {
			v.inspector.Draw(obj, v.scene)
		}
	}

	v.hud.DrawControls(v.screenWidth, v.screenHeight, controlsText)

	rl.EndDrawing()
}

// drawLabels writes each object's handle above it.
func (v *Viewer) drawLabels(objects []scene.Object, cam rl.Camera3D) {
	for i := range objects {
		p := objects[i].Position
		p.Y += renderer.ObjectSize
		screen := rl.GetWorldToScreen(rl.Vector3{X: float32(p.X), Y: float32(p.Y), Z: float32(p.Z)}, cam)
		width := rl.MeasureText(objects[i].Handle, 14)
		rl.DrawText(objects[i].Handle, int32(screen.X)-width/2, int32(screen.Y), 14, renderer.LayerColor(objects[i].Layer))
	}
}
