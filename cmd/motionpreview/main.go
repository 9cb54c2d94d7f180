// Motion preview tool - plots levitater and spinner curves with sliders.
//
// Usage: go run ./cmd/motionpreview
package main

import (
	"fmt"
	"math"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"
	"gopkg.in/yaml.v3"

	"github.com/pthm-cable/transformutils/config"
	"github.com/pthm-cable/transformutils/mathutil"
	"github.com/pthm-cable/transformutils/motion"
)

const (
	windowWidth  = 1000
	windowHeight = 720
	plotWidth    = 560
	plotHeight   = 260
	panelWidth   = windowWidth - plotWidth - 40

	// Samples per plotted second
	sampleRate = 60
	// Plotted duration in seconds
	plotSeconds = 8
	// Slider resolution
	sliderBins = 100
)

// PreviewParams holds the motion parameters under edit.
type PreviewParams struct {
	Range      float32
	Frequency  float32
	SpinPeriod float32
}

func defaultParams() PreviewParams {
	return PreviewParams{Range: 1, Frequency: 2, SpinPeriod: 4}
}

// curves holds one plotted run.
type curves struct {
	displacement []float32 // Distance from origin along the axis
	spinAngle    []float32 // Degrees from the initial orientation
}

func main() {
	rl.InitWindow(windowWidth, windowHeight, "Motion Preview")
	defer rl.CloseWindow()
	rl.SetTargetFPS(30)

	params := defaultParams()
	c := generate(params)

	var cursor float32
	animating := false
	needsRegen := false

	for !rl.WindowShouldClose() {
		if animating {
			cursor += rl.GetFrameTime()
			if cursor > plotSeconds {
				cursor = 0
			}
		}

		if needsRegen {
			c = generate(params)
			needsRegen = false
		}

		rl.BeginDrawing()
		rl.ClearBackground(rl.RayWhite)

		drawPlot(10, 10, "Levitater displacement", c.displacement, 0, math.Max(float64(params.Range), 0.01), cursor)
		drawPlot(10, 30+plotHeight, "Spinner angle (deg)", c.spinAngle, 0, 360, cursor)

		idx := int(cursor * sampleRate)
		if idx >= len(c.displacement) {
			idx = len(c.displacement) - 1
		}
		statsY := int32(50 + 2*plotHeight)
		rl.DrawText(fmt.Sprintf("t=%.2fs  displacement=%.3f  angle=%.1f", cursor, c.displacement[idx], c.spinAngle[idx]), 15, statsY, 16, rl.DarkGray)

		// Control panel
		panelX := float32(plotWidth + 30)
		panelY := float32(10)

		rl.DrawText("Motion Parameters", int32(panelX), int32(panelY), 20, rl.DarkGray)
		panelY += 35

		if v, ok := slider(panelX, &panelY, "Range (distance low to high)", params.Range, 0, 5); ok {
			params.Range = v
			needsRegen = true
		}
		if v, ok := slider(panelX, &panelY, "Frequency (seconds per cycle)", params.Frequency, 0, 10); ok {
			params.Frequency = v
			needsRegen = true
		}
		if v, ok := slider(panelX, &panelY, "Spin period (seconds per turn)", params.SpinPeriod, 0, 10); ok {
			params.SpinPeriod = v
			needsRegen = true
		}
		panelY += 10

		// Buttons
		if gui.Button(rl.Rectangle{X: panelX, Y: panelY, Width: 120, Height: 30}, toggleText(animating, "Stop", "Animate")) {
			animating = !animating
		}
		if gui.Button(rl.Rectangle{X: panelX + 130, Y: panelY, Width: 120, Height: 30}, "Reset Time") {
			cursor = 0
		}
		panelY += 45

		if gui.Button(rl.Rectangle{X: panelX, Y: panelY, Width: 120, Height: 30}, "Reset All") {
			params = defaultParams()
			cursor = 0
			needsRegen = true
		}
		panelY += 55

		// Output YAML
		snippet := objectYAML(params)
		rl.DrawText("YAML Config:", int32(panelX), int32(panelY), 16, rl.DarkGray)
		panelY += 25
		rl.DrawText(snippet, int32(panelX), int32(panelY), 14, rl.Gray)

		// Instructions
		rl.DrawText("Press C to copy YAML to clipboard", int32(panelX), int32(windowHeight-30), 12, rl.LightGray)

		if rl.IsKeyPressed(rl.KeyC) {
			rl.SetClipboardText(snippet)
		}

		rl.EndDrawing()
	}
}

// slider draws a labelled slider snapped to sliderBins steps.
func slider(x float32, y *float32, label string, value, min, max float32) (float32, bool) {
	rl.DrawText(label, int32(x), int32(*y), 14, rl.Gray)
	*y += 18
	raw := gui.SliderBar(
		rl.Rectangle{X: x, Y: *y, Width: float32(panelWidth - 80), Height: 20},
		fmt.Sprintf("%.0f", min), fmt.Sprintf("%.0f", max),
		value, min, max,
	)
	rl.DrawText(fmt.Sprintf("%.2f", value), int32(x+float32(panelWidth-70)), int32(*y+2), 16, rl.DarkGray)
	*y += 35

	if raw == value {
		return value, false
	}
	snapped, err := mathutil.DiscretizeToRange(float64(raw), float64(min), float64(max), sliderBins)
	if err != nil {
		return value, false
	}
	return float32(snapped), float32(snapped) != value
}

// generate runs the oscillator and rotator over the plotted duration.
func generate(params PreviewParams) curves {
	const dt = 1.0 / sampleRate
	n := plotSeconds*sampleRate + 1

	axis := r3.Vec{Y: 1}
	osc := motion.NewOscillatorState(motion.OscillatorSettings{
		Amplitude: float64(params.Range),
		Period:    float64(params.Frequency),
		Axis:      axis,
	}, r3.Vec{})
	initial := quat.Number{Real: 1}
	rot := motion.NewRotatorState(motion.RotatorSettings{
		Period: float64(params.SpinPeriod),
		Axis:   axis,
	}, initial)

	c := curves{
		displacement: make([]float32, n),
		spinAngle:    make([]float32, n),
	}
	pos := r3.Vec{}
	orientation := initial
	for i := 0; i < n; i++ {
		c.displacement[i] = float32(r3.Dot(r3.Sub(pos, osc.Origin), osc.Axis))
		c.spinAngle[i] = float32(rotationAngle(orientation))
		osc, pos = motion.StepOscillator(osc, pos, dt)
		orientation = motion.StepRotator(rot, orientation, dt)
	}
	return c
}

// rotationAngle returns the signed turn in [0, 360) about the preview axis.
func rotationAngle(q quat.Number) float64 {
	axis, angle := mathutil.AxisAngle(q)
	if axis.Y < 0 {
		angle = 360 - angle
	}
	return math.Mod(angle, 360)
}

// drawPlot draws a line plot of values scaled into [lo, hi].
func drawPlot(x, y int32, title string, values []float32, lo, hi float64, cursor float32) {
	rl.DrawRectangle(x, y, plotWidth, plotHeight, rl.Color{R: 245, G: 245, B: 250, A: 255})
	rl.DrawRectangleLines(x, y, plotWidth, plotHeight, rl.DarkGray)
	rl.DrawText(title, x+8, y+6, 16, rl.DarkGray)

	toY := func(v float32) float32 {
		t, err := mathutil.MapToRange(float64(v), lo, hi, 0, 1)
		if err != nil {
			t = 0
		}
		return float32(y+plotHeight-10) - float32(t)*float32(plotHeight-40)
	}
	stepX := float32(plotWidth) / float32(len(values)-1)
	for i := 1; i < len(values); i++ {
		rl.DrawLineEx(
			rl.Vector2{X: float32(x) + float32(i-1)*stepX, Y: toY(values[i-1])},
			rl.Vector2{X: float32(x) + float32(i)*stepX, Y: toY(values[i])},
			2, rl.DarkBlue,
		)
	}

	cx := float32(x) + cursor/plotSeconds*plotWidth
	rl.DrawLineV(rl.Vector2{X: cx, Y: float32(y)}, rl.Vector2{X: cx, Y: float32(y + plotHeight)}, rl.Red)
}

// objectYAML renders the parameters as an objects entry for config.yaml.
func objectYAML(params PreviewParams) string {
	obj := []config.ObjectConfig{{
		Name: "preview",
		Levitater: &config.LevitaterConfig{
			Range:     round2(params.Range),
			Frequency: round2(params.Frequency),
			Axis:      config.Vec3{Y: 1},
			DebugDraw: true,
		},
		Spinner: &config.SpinnerConfig{
			Frequency: round2(params.SpinPeriod),
			Axis:      config.Vec3{Y: 1},
		},
	}}
	data, err := yaml.Marshal(map[string]any{"objects": obj})
	if err != nil {
		return err.Error()
	}
	return string(data)
}

func round2(v float32) float64 {
	return math.Round(float64(v)*100) / 100
}

func toggleText(cond bool, ifTrue, ifFalse string) string {
	if cond {
		return ifTrue
	}
	return ifFalse
}
