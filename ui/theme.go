// Package ui provides the HUD, overlay toggles and object list for the viewer.
package ui

import rl "github.com/gen2brain/raylib-go/raylib"

// Theme holds colors and metrics shared by the viewer panels.
type Theme struct {
	PanelBg, PanelBorder    rl.Color
	SectionHeader, Selected rl.Color
	LabelColor, ValueColor  rl.Color
	BarBg, BarFill          rl.Color

	Padding, LineHeight, LabelWidth, BarHeight int32
	FontSize, HeaderFontSize                   int32
}

// DefaultTheme is the dark theme used by all panels.
func DefaultTheme() Theme {
	return Theme{
		PanelBg:       rl.Color{R: 24, G: 27, B: 33, A: 235},
		PanelBorder:   rl.Color{R: 70, G: 76, B: 88, A: 255},
		SectionHeader: rl.Color{R: 240, G: 200, B: 90, A: 255},
		Selected:      rl.Color{R: 255, G: 230, B: 80, A: 255},
		LabelColor:    rl.Color{R: 170, G: 176, B: 186, A: 255},
		ValueColor:    rl.RayWhite,
		BarBg:         rl.Color{R: 44, G: 48, B: 56, A: 255},
		BarFill:       rl.Color{R: 90, G: 160, B: 220, A: 255},

		Padding:        10,
		LineHeight:     16,
		LabelWidth:     70,
		BarHeight:      10,
		FontSize:       12,
		HeaderFontSize: 14,
	}
}

// Renderer draws panel chrome in a theme.
type Renderer struct {
	Theme Theme
}

// NewRenderer creates a renderer with the default theme.
func NewRenderer() *Renderer {
	return &Renderer{Theme: DefaultTheme()}
}

// DrawPanel draws a bordered panel background.
func (r *Renderer) DrawPanel(x, y, width, height int32) {
	bounds := rl.Rectangle{X: float32(x), Y: float32(y), Width: float32(width), Height: float32(height)}
	rl.DrawRectangleRec(bounds, r.Theme.PanelBg)
	rl.DrawRectangleLinesEx(bounds, 1, r.Theme.PanelBorder)
}
