// Sensor field preview tool - interactive visualization with sliders.
//
// Renders the quadratic scan field, highlights obstacle readings, and
// overlays the planned path to an adjustable goal.
//
// Usage: go run ./cmd/fieldpreview
package main

import (
	"fmt"
	"image/color"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/floats"

	"github.com/pthm-cable/hound/components"
	"github.com/pthm-cable/hound/systems"
)

const (
	windowWidth  = 1000
	windowHeight = 720
	previewSize  = 512
	panelWidth   = windowWidth - previewSize - 30

	maxSamples = 128
)

// PreviewParams holds the adjustable scan and plan parameters.
type PreviewParams struct {
	Samples   int
	Threshold float32
	GoalX     float32
	GoalY     float32
}

func main() {
	rl.InitWindow(windowWidth, windowHeight, "Sensor Field Preview")
	defer rl.CloseWindow()
	rl.SetTargetFPS(30)

	params := PreviewParams{
		Samples:   20,
		Threshold: systems.DefaultObstacleThreshold,
		GoalX:     10,
		GoalY:     10,
	}

	agent := components.NewAgent("preview", 0)

	// Texture sized for the largest scan; drawn at the current size.
	img := rl.GenImageColor(maxSamples, maxSamples, rl.Black)
	texture := rl.LoadTextureFromImage(img)
	rl.UnloadImage(img)
	defer rl.UnloadTexture(texture)

	var field []float64
	var obstacles systems.ObstacleSet
	var path []r3.Vector

	needsRegen := true

	for !rl.WindowShouldClose() {
		if needsRegen {
			var err error
			field, err = systems.ScanEnvironment(agent, params.Samples)
			if err != nil {
				panic(err)
			}
			obstacles = systems.FindObstacles(field, float64(params.Threshold))
			path = systems.PlanPath(
				r3.Vector{},
				r3.Vector{X: float64(params.GoalX), Y: float64(params.GoalY)},
				obstacles,
			)
			updateTexture(texture, field, params.Samples, float64(params.Threshold))
			needsRegen = false
		}

		rl.BeginDrawing()
		rl.ClearBackground(rl.RayWhite)

		// Draw field
		rl.DrawTexturePro(
			texture,
			rl.Rectangle{X: 0, Y: 0, Width: float32(params.Samples), Height: float32(params.Samples)},
			rl.Rectangle{X: 10, Y: 10, Width: previewSize, Height: previewSize},
			rl.Vector2{X: 0, Y: 0},
			0,
			rl.White,
		)
		rl.DrawRectangleLines(10, 10, previewSize, previewSize, rl.DarkGray)

		drawPath(path, params)

		// Stats
		var maxVal float64
		if len(field) > 0 {
			maxVal = floats.Max(field)
		}
		statsY := int32(previewSize + 25)
		rl.DrawText(fmt.Sprintf("Readings: %d  Max: %.0f  Obstacles: %d",
			len(field), maxVal, len(obstacles)), 15, statsY, 16, rl.DarkGray)
		rl.DrawText(fmt.Sprintf("Path: %d waypoints", len(path)), 15, statsY+20, 16, rl.DarkGray)

		// Control panel
		panelX := float32(previewSize + 20)
		panelY := float32(10)

		rl.DrawText("Scan Parameters", int32(panelX), int32(panelY), 20, rl.DarkGray)
		panelY += 35

		// Samples slider
		rl.DrawText("Samples (NxN scan resolution)", int32(panelX), int32(panelY), 14, rl.Gray)
		panelY += 18
		newSamples := gui.SliderBar(
			rl.Rectangle{X: panelX, Y: panelY, Width: float32(panelWidth - 80), Height: 20},
			"4", "128",
			float32(params.Samples), 4, maxSamples,
		)
		rl.DrawText(fmt.Sprintf("%d", params.Samples), int32(panelX+float32(panelWidth-70)), int32(panelY+2), 16, rl.DarkGray)
		if int(newSamples) != params.Samples {
			params.Samples = int(newSamples)
			needsRegen = true
		}
		panelY += 35

		// Threshold slider
		rl.DrawText("Obstacle threshold", int32(panelX), int32(panelY), 14, rl.Gray)
		panelY += 18
		newThreshold := gui.SliderBar(
			rl.Rectangle{X: panelX, Y: panelY, Width: float32(panelWidth - 80), Height: 20},
			"0", "20000",
			params.Threshold, 0, 20000,
		)
		rl.DrawText(fmt.Sprintf("%.0f", params.Threshold), int32(panelX+float32(panelWidth-70)), int32(panelY+2), 16, rl.DarkGray)
		if newThreshold != params.Threshold {
			params.Threshold = newThreshold
			needsRegen = true
		}
		panelY += 35

		// Separator
		rl.DrawLine(int32(panelX), int32(panelY), int32(panelX)+int32(panelWidth)-20, int32(panelY), rl.LightGray)
		panelY += 15

		rl.DrawText("Path Goal", int32(panelX), int32(panelY), 16, rl.DarkGray)
		panelY += 25

		// Goal X slider
		rl.DrawText("Goal X", int32(panelX), int32(panelY), 14, rl.Gray)
		panelY += 18
		newGoalX := gui.SliderBar(
			rl.Rectangle{X: panelX, Y: panelY, Width: float32(panelWidth - 80), Height: 20},
			"-20", "20",
			params.GoalX, -20, 20,
		)
		rl.DrawText(fmt.Sprintf("%.1f", params.GoalX), int32(panelX+float32(panelWidth-70)), int32(panelY+2), 16, rl.DarkGray)
		if newGoalX != params.GoalX {
			params.GoalX = newGoalX
			needsRegen = true
		}
		panelY += 35

		// Goal Y slider
		rl.DrawText("Goal Y", int32(panelX), int32(panelY), 14, rl.Gray)
		panelY += 18
		newGoalY := gui.SliderBar(
			rl.Rectangle{X: panelX, Y: panelY, Width: float32(panelWidth - 80), Height: 20},
			"-20", "20",
			params.GoalY, -20, 20,
		)
		rl.DrawText(fmt.Sprintf("%.1f", params.GoalY), int32(panelX+float32(panelWidth-70)), int32(panelY+2), 16, rl.DarkGray)
		if newGoalY != params.GoalY {
			params.GoalY = newGoalY
			needsRegen = true
		}
		panelY += 35

		if gui.Button(rl.Rectangle{X: panelX, Y: panelY, Width: 120, Height: 30}, "Reset") {
			params = PreviewParams{
				Samples:   20,
				Threshold: systems.DefaultObstacleThreshold,
				GoalX:     10,
				GoalY:     10,
			}
			needsRegen = true
		}

		rl.EndDrawing()
	}
}

// drawPath overlays the planned path on the preview. Waypoint x/y are
// mapped into the preview square around its center.
func drawPath(path []r3.Vector, params PreviewParams) {
	const halfRange = 20.0 // world units mapped to half the preview

	toScreen := func(p r3.Vector) rl.Vector2 {
		return rl.Vector2{
			X: 10 + previewSize/2 + float32(p.X/halfRange*previewSize/2),
			Y: 10 + previewSize/2 - float32(p.Y/halfRange*previewSize/2),
		}
	}

	prev := toScreen(r3.Vector{})
	for _, wp := range path {
		next := toScreen(wp)
		rl.DrawLineV(prev, next, rl.Red)
		prev = next
	}

	goal := toScreen(r3.Vector{X: float64(params.GoalX), Y: float64(params.GoalY)})
	rl.DrawCircleV(goal, 4, rl.Maroon)
}

// updateTexture renders the field into the texture: blue gradient by
// normalized reading, obstacle readings tinted orange.
func updateTexture(texture rl.Texture2D, field []float64, size int, threshold float64) {
	if size == 0 {
		return
	}

	maxVal := floats.Max(field)
	if maxVal <= 0 {
		maxVal = 1
	}

	pixels := make([]color.RGBA, maxSamples*maxSamples)
	for i := 0; i < size; i++ {
		for j := 0; j < size; j++ {
			v := field[i*size+j] / maxVal
			var r, g, b uint8
			if field[i*size+j] > threshold {
				// Obstacle: orange, brighter with magnitude
				r = uint8(200 + v*55)
				g = uint8(100 + v*60)
				b = 30
			} else {
				// Free space: dark blue to cyan
				r = uint8(10 + v*50)
				g = uint8(20 + v*180)
				b = uint8(60 + v*140)
			}
			pixels[i*maxSamples+j] = color.RGBA{R: r, G: g, B: b, A: 255}
		}
	}
	rl.UpdateTexture(texture, pixels)
}
