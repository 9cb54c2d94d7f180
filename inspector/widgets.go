package inspector

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pthm-cable/transformutils/components"
	"github.com/pthm-cable/transformutils/mathutil"
)

// Widget colors
var (
	ColorBarBg    = rl.Color{R: 40, G: 40, B: 40, A: 255}
	ColorBarFill  = rl.Color{R: 100, G: 180, B: 100, A: 255}
	ColorText     = rl.Color{R: 220, G: 220, B: 220, A: 255}
	ColorTextDim  = rl.Color{R: 150, G: 150, B: 150, A: 255}
	ColorBoolOn   = rl.Color{R: 100, G: 200, B: 100, A: 255}
	ColorBoolOff  = rl.Color{R: 80, G: 80, B: 80, A: 255}
	ColorVecX     = rl.Color{R: 230, G: 100, B: 100, A: 255}
	ColorVecY     = rl.Color{R: 120, G: 210, B: 120, A: 255}
	ColorVecZ     = rl.Color{R: 110, G: 150, B: 240, A: 255}
	ColorLabelDim = rl.Color{R: 110, G: 110, B: 120, A: 255}
)

// DrawLabel renders a text value.
func DrawLabel(x, y int32, name string, value interface{}, options map[string]string) int32 {
	fmtStr := options["fmt"]
	text := FormatValue(value, fmtStr)
	rl.DrawText(fmt.Sprintf("%s: %s", name, text), x, y, 16, ColorText)
	return 20
}

// DrawBar renders a horizontal progress bar.
func DrawBar(x, y int32, name string, value float32, options map[string]string) int32 {
	maxVal := GetMax(options)
	ratio := value / maxVal
	if ratio > 1 {
		ratio = 1
	}
	if ratio < 0 {
		ratio = 0
	}

	barWidth := int32(120)
	barHeight := int32(14)

	// Label
	rl.DrawText(name, x, y, 14, ColorTextDim)

	// Bar background
	barX := x + 80
	rl.DrawRectangle(barX, y, barWidth, barHeight, ColorBarBg)

	// Bar fill
	fillWidth := int32(float32(barWidth) * ratio)
	rl.DrawRectangle(barX, y, fillWidth, barHeight, ColorBarFill)

	// Value text
	valueStr := fmt.Sprintf("%.2f", value)
	rl.DrawText(valueStr, barX+barWidth+5, y, 14, ColorTextDim)

	return 18
}

// DrawVec renders a 3-vector with per-axis colors.
func DrawVec(x, y int32, name string, v r3.Vec) int32 {
	rl.DrawText(name, x, y, 14, ColorTextDim)

	vx := x + 80
	for i, c := range []struct {
		value float64
		color rl.Color
	}{{v.X, ColorVecX}, {v.Y, ColorVecY}, {v.Z, ColorVecZ}} {
		rl.DrawText(fmt.Sprintf("%6.2f", c.value), vx+int32(i)*65, y, 14, c.color)
	}
	return 18
}

// DrawBool renders an on/off indicator.
func DrawBool(x, y int32, name string, value bool) int32 {
	// Label
	rl.DrawText(name, x, y, 14, ColorTextDim)

	// Indicator
	indicatorX := x + 80
	indicatorSize := int32(14)

	color := ColorBoolOff
	text := "OFF"
	if value {
		color = ColorBoolOn
		text = "ON"
	}

	rl.DrawRectangle(indicatorX, y, indicatorSize, indicatorSize, color)
	rl.DrawText(text, indicatorX+indicatorSize+5, y, 14, color)

	return 18
}

// DrawField renders a field using its widget type.
func DrawField(x, y int32, field Field) int32 {
	switch field.Widget {
	case WidgetBar:
		if v, ok := GetFloatValue(field.Value); ok {
			return DrawBar(x, y, field.Name, v, field.Options)
		}
		return DrawLabel(x, y, field.Name, field.Value, field.Options)

	case WidgetVec:
		if v, ok := field.Value.(r3.Vec); ok {
			return DrawVec(x, y, field.Name, v)
		}
		return DrawLabel(x, y, field.Name, field.Value, field.Options)

	case WidgetBool:
		if v, ok := field.Value.(bool); ok {
			return DrawBool(x, y, field.Name, v)
		}
		return DrawLabel(x, y, field.Name, field.Value, field.Options)

	default:
		return DrawLabel(x, y, field.Name, field.Value, field.Options)
	}
}

// DrawSetting renders a slider for a motion setting. A moved slider snaps to
// the center of the descriptor's bin.
func DrawSetting(x, y, width int32, desc components.SettingDescriptor, value float64) (next float64, changed bool, height int32) {
	rl.DrawText(desc.Label, x, y, 14, ColorTextDim)
	y += 16

	raw := gui.SliderBar(
		rl.Rectangle{X: float32(x), Y: float32(y), Width: float32(width - 60), Height: 16},
		"", "",
		float32(value), float32(desc.Min), float32(desc.Max),
	)
	rl.DrawText(fmt.Sprintf("%.2f", value), x+width-55, y+1, 14, ColorText)

	if raw == float32(value) {
		return value, false, 36
	}

	next = float64(raw)
	if desc.Bins > 0 {
		snapped, err := mathutil.DiscretizeToRange(next, desc.Min, desc.Max, desc.Bins)
		if err == nil {
			next = snapped
		}
	}
	return next, next != value, 36
}
