package ui

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// ControlsPanel lists the overlays with their toggle keys. Hidden by default.
type ControlsPanel struct {
	renderer *Renderer
	x, y     int32
	width    int32
	visible  bool
}

// NewControlsPanel creates a hidden controls panel.
func NewControlsPanel(x, y, width int32) *ControlsPanel {
	return &ControlsPanel{renderer: NewRenderer(), x: x, y: y, width: width}
}

// Toggle switches visibility and returns the new state.
func (c *ControlsPanel) Toggle() bool {
	c.visible = !c.visible
	return c.visible
}

// Draw renders the panel and returns the Y just below it, or the panel's
// own Y when hidden.
func (c *ControlsPanel) Draw(overlays *OverlayRegistry) int32 {
	if !c.visible {
		return c.y
	}

	th := c.renderer.Theme
	categories := overlays.Categories()
	rows := 0
	for _, cat := range categories {
		rows += 1 + len(overlays.ByCategory(cat))
	}
	c.renderer.DrawPanel(c.x, c.y, c.width, int32(rows+1)*th.LineHeight+th.Padding*3)

	x := c.x + th.Padding
	y := c.y + th.Padding
	rl.DrawText("Overlays", x, y, 16, rl.White)
	y += th.LineHeight + 4

	for _, cat := range categories {
		rl.DrawText(categoryLabel(cat), x, y, th.HeaderFontSize, th.SectionHeader)
		y += th.LineHeight
		for _, desc := range overlays.ByCategory(cat) {
			c.drawToggle(x, y, desc, overlays.IsEnabled(desc.ID), c.width-2*th.Padding)
			y += th.LineHeight
		}
		y += 4
	}
	return y
}

// drawToggle draws one overlay row: state dot, name, key hint.
func (c *ControlsPanel) drawToggle(x, y int32, desc OverlayDescriptor, enabled bool, width int32) {
	th := c.renderer.Theme

	dot, name := rl.Color{R: 80, G: 80, B: 80, A: 255}, th.LabelColor
	if enabled {
		dot, name = rl.Color{R: 100, G: 200, B: 100, A: 255}, rl.White
	}
	rl.DrawRectangle(x, y+2, 8, 8, dot)
	rl.DrawText(desc.Name, x+14, y, th.FontSize, name)

	if desc.KeyLabel != "" {
		key := fmt.Sprintf("[%s]", desc.KeyLabel)
		rl.DrawText(key, x+width-rl.MeasureText(key, th.FontSize), y, th.FontSize, th.LabelColor)
	}
}

// categoryLabel returns a display label for a category.
func categoryLabel(cat string) string {
	switch cat {
	case "visual":
		return "Visual"
	case "debug":
		return "Debug"
	default:
		return cat
	}
}

// ObjectEntry is one row of the object list.
type ObjectEntry struct {
	Handle  string
	Layer   int
	Enabled bool
}

// ObjectListPanel renders a clickable list of scene objects.
type ObjectListPanel struct {
	renderer *Renderer
	x, y     int32
	width    int32
}

// NewObjectListPanel creates a new object list panel.
func NewObjectListPanel(x, y, width int32) *ObjectListPanel {
	return &ObjectListPanel{
		renderer: NewRenderer(),
		x:        x,
		y:        y,
		width:    width,
	}
}

// SetPosition updates the panel position.
func (o *ObjectListPanel) SetPosition(x, y int32) {
	o.x = x
	o.y = y
}

// Draw renders the list and returns the handle clicked this frame, if any.
func (o *ObjectListPanel) Draw(entries []ObjectEntry, selected string) (string, bool) {
	r := o.renderer
	padding := r.Theme.Padding
	rowHeight := int32(22)

	panelHeight := int32(len(entries))*rowHeight + padding*2 + r.Theme.LineHeight + 4
	r.DrawPanel(o.x, o.y, o.width, panelHeight)

	y := o.y + padding
	rl.DrawText("Objects", o.x+padding, y, 14, rl.White)
	y += r.Theme.LineHeight + 4

	clicked := ""
	for _, e := range entries {
		label := fmt.Sprintf("%s  [L%d]", e.Handle, e.Layer)
		if !e.Enabled {
			label += " (off)"
		}
		bounds := rl.Rectangle{X: float32(o.x + padding), Y: float32(y), Width: float32(o.width - 2*padding), Height: float32(rowHeight - 2)}
		if gui.Button(bounds, label) {
			clicked = e.Handle
		}
		if e.Handle == selected {
			rl.DrawRectangleLinesEx(bounds, 2, r.Theme.Selected)
		}
		y += rowHeight
	}

	return clicked, clicked != ""
}
