package inspector

import (
	"log/slog"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/transformutils/components"
	"github.com/pthm-cable/transformutils/scene"
)

// Panel dimensions
const (
	PanelWidth   = 340
	PanelPadding = 10
	HeaderHeight = 30
)

// Panel colors
var (
	ColorPanelBg     = rl.Color{R: 30, G: 30, B: 35, A: 240}
	ColorPanelHeader = rl.Color{R: 45, G: 45, B: 55, A: 255}
	ColorPanelBorder = rl.Color{R: 70, G: 70, B: 80, A: 255}
	ColorHeaderText  = rl.Color{R: 255, G: 255, B: 255, A: 255}
	ColorCloseBtn    = rl.Color{R: 180, G: 80, B: 80, A: 255}
	ColorSection     = rl.Color{R: 50, G: 50, B: 60, A: 255}
	ColorSectionText = rl.Color{R: 200, G: 200, B: 220, A: 255}
)

// Controller applies edits made in the panel.
type Controller interface {
	SetEnabled(handle string, enabled bool) error
	UpdateAmplitude(handle string, amplitude float64) error
	UpdatePeriod(handle string, period float64) error
	UpdateSpinPeriod(handle string, period float64) error
	LogGlobalPosition(handle string) error
}

// Inspector manages object selection and panel rendering.
type Inspector struct {
	selected     string
	panelX       int32
	panelY       int32
	panelHeight  int32
	screenHeight int32
}

// NewInspector creates a new inspector instance.
func NewInspector(screenWidth, screenHeight int32) *Inspector {
	return &Inspector{
		panelX:       screenWidth - PanelWidth - 10,
		panelY:       10,
		screenHeight: screenHeight,
	}
}

// Resize keeps the panel anchored to the right edge.
func (ins *Inspector) Resize(screenWidth, screenHeight int32) {
	ins.panelX = screenWidth - PanelWidth - 10
	ins.screenHeight = screenHeight
}

// Select shows the panel for handle.
func (ins *Inspector) Select(handle string) {
	ins.selected = handle
}

// Deselect clears the current selection.
func (ins *Inspector) Deselect() {
	ins.selected = ""
}

// Selected returns the currently selected handle.
func (ins *Inspector) Selected() (string, bool) {
	return ins.selected, ins.selected != ""
}

// Contains reports whether a screen point is over the open panel.
func (ins *Inspector) Contains(x, y float32) bool {
	if ins.selected == "" {
		return false
	}
	return int32(x) >= ins.panelX && int32(x) <= ins.panelX+PanelWidth &&
		int32(y) >= ins.panelY && int32(y) <= ins.panelY+ins.panelHeight
}

// Draw renders the inspector panel for obj and applies any edits through ctrl.
func (ins *Inspector) Draw(obj scene.Object, ctrl Controller) {
	if ins.selected == "" {
		return
	}

	ins.panelHeight = ins.calculatePanelHeight(obj)

	// Draw panel background
	rl.DrawRectangle(ins.panelX, ins.panelY, PanelWidth, ins.panelHeight, ColorPanelBg)
	rl.DrawRectangleLinesEx(
		rl.Rectangle{X: float32(ins.panelX), Y: float32(ins.panelY), Width: PanelWidth, Height: float32(ins.panelHeight)},
		1,
		ColorPanelBorder,
	)

	// Draw header
	rl.DrawRectangle(ins.panelX, ins.panelY, PanelWidth, HeaderHeight, ColorPanelHeader)
	rl.DrawText(obj.Handle, ins.panelX+PanelPadding, ins.panelY+7, 16, ColorHeaderText)

	// Draw close button
	closeX := ins.panelX + PanelWidth - 25
	closeY := ins.panelY + 5
	rl.DrawRectangle(closeX, closeY, 20, 20, ColorCloseBtn)
	rl.DrawText("X", closeX+6, closeY+3, 14, rl.White)
	if rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
		m := rl.GetMousePosition()
		if int32(m.X) >= closeX && int32(m.X) <= closeX+20 && int32(m.Y) >= closeY && int32(m.Y) <= closeY+20 {
			ins.Deselect()
			return
		}
	}

	// Content area
	y := ins.panelY + HeaderHeight + PanelPadding
	x := ins.panelX + PanelPadding
	width := int32(PanelWidth - 2*PanelPadding)

	y += DrawVec(x, y, "Position", obj.Position)
	y += DrawLabel(x, y, "Layer", obj.Layer, nil)
	y += DrawBool(x, y, "Enabled", obj.Enabled)

	// Buttons
	label := "Disable"
	if !obj.Enabled {
		label = "Enable"
	}
	if gui.Button(rl.Rectangle{X: float32(x), Y: float32(y), Width: 100, Height: 24}, label) {
		logErr(ctrl.SetEnabled(obj.Handle, !obj.Enabled))
	}
	if gui.Button(rl.Rectangle{X: float32(x + 110), Y: float32(y), Width: 120, Height: 24}, "Log position") {
		logErr(ctrl.LogGlobalPosition(obj.Handle))
	}
	y += 32

	if lev := obj.Levitater; lev != nil {
		y += ins.drawSeparator(x, y)
		ins.drawSectionHeader(x, y, "LEVITATER")
		y += 20
		y += ins.drawFields(x, y, lev)
		if lev.Active() {
			for _, f := range ExtractFields(lev.State()) {
				y += DrawField(x, y, f)
			}
		}
		for _, desc := range components.LevitaterSettingDescriptors() {
			y += ins.drawSetting(x, y, width, desc, obj, ctrl)
		}
	}

	if spin := obj.Spinner; spin != nil {
		y += ins.drawSeparator(x, y)
		ins.drawSectionHeader(x, y, "SPINNER")
		y += 20
		y += ins.drawFields(x, y, spin)
		if spin.Active() {
			for _, f := range ExtractFields(spin.State()) {
				y += DrawField(x, y, f)
			}
		}
		for _, desc := range components.SpinnerSettingDescriptors() {
			y += ins.drawSetting(x, y, width, desc, obj, ctrl)
		}
	}
}

// drawFields renders the tagged fields of a component.
func (ins *Inspector) drawFields(x, y int32, component interface{}) int32 {
	var h int32
	for _, f := range ExtractFields(component) {
		h += DrawField(x, y+h, f)
	}
	return h
}

// drawSetting renders one slider and forwards a changed value to ctrl.
func (ins *Inspector) drawSetting(x, y, width int32, desc components.SettingDescriptor, obj scene.Object, ctrl Controller) int32 {
	value, ok := components.SettingValue(desc.ID, obj.Levitater, obj.Spinner)
	if !ok {
		return 0
	}

	next, changed, h := DrawSetting(x, y, width, desc, value)
	if !changed {
		return h
	}

	switch desc.ID {
	case components.SettingAmplitude:
		logErr(ctrl.UpdateAmplitude(obj.Handle, next))
	case components.SettingPeriod:
		logErr(ctrl.UpdatePeriod(obj.Handle, next))
	case components.SettingSpinPeriod:
		logErr(ctrl.UpdateSpinPeriod(obj.Handle, next))
	}
	return h
}

// drawSeparator draws a horizontal rule and returns the height used.
func (ins *Inspector) drawSeparator(x, y int32) int32 {
	rl.DrawLine(x, y+4, ins.panelX+PanelWidth-PanelPadding, y+4, ColorPanelBorder)
	return 12
}

// drawSectionHeader renders a section title.
func (ins *Inspector) drawSectionHeader(x, y int32, title string) {
	rl.DrawRectangle(x-2, y-2, PanelWidth-2*PanelPadding+4, 18, ColorSection)
	rl.DrawText(title, x+2, y, 14, ColorSectionText)
}

// calculatePanelHeight computes the dynamic panel height.
func (ins *Inspector) calculatePanelHeight(obj scene.Object) int32 {
	height := int32(HeaderHeight + PanelPadding)
	height += 18 + 20 + 18 // position, layer, enabled
	height += 32           // buttons

	if lev := obj.Levitater; lev != nil {
		height += 12 + 20 + 18 // separator, header, debug draw
		if lev.Active() {
			height += int32(len(ExtractFields(lev.State()))) * 20
		}
		height += int32(len(components.LevitaterSettingDescriptors())) * 36
	}
	if spin := obj.Spinner; spin != nil {
		height += 12 + 20 + 18
		if spin.Active() {
			height += int32(len(ExtractFields(spin.State()))) * 20
		}
		height += int32(len(components.SpinnerSettingDescriptors())) * 36
	}

	height += PanelPadding
	return min(height, ins.screenHeight-2*ins.panelY)
}

func logErr(err error) {
	if err != nil {
		slog.Error("inspector edit failed", "error", err)
	}
}
