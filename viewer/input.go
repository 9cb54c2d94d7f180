package viewer

import (
	"log/slog"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/transformutils/renderer"
)

// handleInput processes keyboard and mouse input.
func (v *Viewer) handleInput() {
	// Window resize propagation
	v.handleResize()

	if rl.IsKeyPressed(rl.KeySpace) {
		v.paused = !v.paused
	}
	if rl.IsKeyPressed(rl.KeyO) {
		v.controls.Toggle()
	}

	// Overlay toggles
	if key := rl.GetKeyPressed(); key != 0 {
		v.overlays.HandleKeyPress(key)
	}

	// Selection
	if rl.IsKeyPressed(rl.KeyTab) {
		v.selectNext()
	}
	if rl.IsKeyPressed(rl.KeyBackspace) {
		v.inspector.Deselect()
	}
	if rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
		m := rl.GetMousePosition()
		if !v.inspector.Contains(m.X, m.Y) && m.X > sidebarWidth {
			cam := renderer.Camera3D(v.camera, v.scene.Config().Camera.Fovy)
			if handle, ok := v.objects.Pick(v.objectsBuffer, cam); ok {
				v.inspector.Select(handle)
			}
		}
	}

	v.handleObjectKeys()
	v.handleCameraInput()
}

// handleObjectKeys applies keyboard commands to the selected object.
func (v *Viewer) handleObjectKeys() {
	handle, ok := v.inspector.Selected()
	if !ok {
		return
	}
	obj, err := v.scene.Object(handle)
	if err != nil {
		v.inspector.Deselect()
		return
	}

	if rl.IsKeyPressed(rl.KeyE) {
		if err := v.scene.SetEnabled(handle, !obj.Enabled); err != nil {
			slog.Error("toggle enabled failed", "object", handle, "error", err)
		}
	}
	if rl.IsKeyPressed(rl.KeyL) {
		if _, err := v.scene.SwitchLayer(handle, (obj.Layer+1)%layerCount); err != nil {
			slog.Error("switch layer failed", "object", handle, "error", err)
		}
	}
	if rl.IsKeyPressed(rl.KeyK) {
		if err := v.scene.LogGlobalPosition(handle); err != nil {
			slog.Error("log position failed", "object", handle, "error", err)
		}
	}
}

// selectNext cycles the selection through objects in spawn order.
func (v *Viewer) selectNext() {
	handles := v.scene.Handles()
	if len(handles) == 0 {
		return
	}
	current, _ := v.inspector.Selected()
	next := 0
	for i, h := range handles {
		if h == current {
			next = (i + 1) % len(handles)
			break
		}
	}
	v.inspector.Select(handles[next])
}

// handleResize checks for window resize and propagates new dimensions.
func (v *Viewer) handleResize() {
	if !rl.IsWindowResized() {
		return
	}
	w := int32(rl.GetScreenWidth())
	h := int32(rl.GetScreenHeight())
	if w == v.screenWidth && h == v.screenHeight {
		return
	}
	v.screenWidth = w
	v.screenHeight = h

	v.inspector.Resize(w, h)
	v.perfPanel.SetPosition(10, h-140)
}

// handleCameraInput processes orbit, pan and zoom controls.
func (v *Viewer) handleCameraInput() {
	// Pan speed scales with distance for natural feel
	panSpeed := v.camera.Distance * 0.01

	// Arrow key panning
	if rl.IsKeyDown(rl.KeyRight) {
		v.camera.Pan(panSpeed, 0)
	}
	if rl.IsKeyDown(rl.KeyLeft) {
		v.camera.Pan(-panSpeed, 0)
	}
	if rl.IsKeyDown(rl.KeyUp) {
		v.camera.Pan(0, panSpeed)
	}
	if rl.IsKeyDown(rl.KeyDown) {
		v.camera.Pan(0, -panSpeed)
	}

	// Right mouse drag orbits
	if rl.IsMouseButtonDown(rl.MouseButtonRight) {
		d := rl.GetMouseDelta()
		v.camera.Orbit(-float64(d.X)*0.005, float64(d.Y)*0.005)
	}

	// Zoom controls: mouse wheel or +/- keys
	if wheelMove := rl.GetMouseWheelMove(); wheelMove != 0 {
		v.camera.ZoomBy(1 + float64(wheelMove)*0.1)
	}
	if rl.IsKeyPressed(rl.KeyEqual) || rl.IsKeyPressed(rl.KeyKpAdd) {
		v.camera.ZoomBy(1.25)
	}
	if rl.IsKeyPressed(rl.KeyMinus) || rl.IsKeyPressed(rl.KeyKpSubtract) {
		v.camera.ZoomBy(0.8)
	}

	// Home key to reset camera
	if rl.IsKeyPressed(rl.KeyHome) {
		v.camera.Reset()
	}
}
