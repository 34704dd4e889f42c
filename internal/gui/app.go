// Package gui opens a raylib window and runs the attractor in it.
package gui

import (
	"fmt"
	"image/color"
	"os"

	"github.com/charmbracelet/log"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/san-kum/attractor/internal/driver"
)

const (
	fontPath          = "/usr/share/fonts/liberation/LiberationMono-Regular.ttf"
	telemetryCapacity = 200
)

var (
	ColText    = rl.NewColor(140, 140, 140, 255)
	ColTextDim = rl.NewColor(60, 60, 60, 255)
	ColSelect  = rl.NewColor(255, 255, 255, 255)
	ColAccent  = rl.NewColor(180, 180, 180, 255)
)

// Options configure the window; zero values fall back to the renderer size
// and 60 FPS.
type Options struct {
	Title string
	FPS   int
}

type App struct {
	driver    *driver.Driver
	logger    *log.Logger
	width     int32
	height    int32
	font      rl.Font
	telemetry []float64
	quit      bool
}

// sink forwards draw calls to the current raylib frame. rl.Color is
// color.RGBA, so colours pass through unchanged.
type sink struct{}

func (sink) Clear(bg color.RGBA) { rl.ClearBackground(bg) }

func (sink) DrawCircle(x, y, radius float32, c color.RGBA) {
	if c.A == 0 {
		return
	}
	rl.DrawCircleV(rl.NewVector2(x, y), radius, c)
}

func initWindow(width, height int32, opts Options) {
	title := opts.Title
	if title == "" {
		title = "attractor"
	}
	fps := opts.FPS
	if fps < 1 {
		fps = 60
	}
	rl.SetConfigFlags(rl.FlagMsaa4xHint)
	rl.InitWindow(width, height, title)
	rl.SetTargetFPS(int32(fps))
	rl.SetExitKey(rl.KeyEscape)
}

// loadFont falls back to raylib's built-in font when Liberation Mono is not
// installed.
func loadFont() rl.Font {
	if _, err := os.Stat(fontPath); err != nil {
		return rl.GetFontDefault()
	}
	font := rl.LoadFontEx(fontPath, 32, nil, 0)
	rl.SetTextureFilter(font.Texture, rl.FilterBilinear)
	return font
}

// Run opens the window and blocks until it is closed with Q or Esc.
func Run(d *driver.Driver, logger *log.Logger, opts Options) {
	r := d.Renderer()
	width, height := int32(r.Width), int32(r.Height)

	initWindow(width, height, opts)
	defer rl.CloseWindow()

	app := &App{
		driver:    d,
		logger:    logger,
		width:     width,
		height:    height,
		font:      loadFont(),
		telemetry: make([]float64, 0, telemetryCapacity),
	}
	logger.Info("window opened", "width", width, "height", height, "population", d.Attractor().Len())
	app.RunLoop()
	logger.Info("window closed", "ticks", d.Attractor().Ticks())
}

func (a *App) RunLoop() {
	for !a.quit && !rl.WindowShouldClose() {
		a.Update()
		a.Draw()
	}
}

func (a *App) Update() {
	switch {
	case rl.IsKeyPressed(rl.KeyQ):
		a.quit = true
	case rl.IsKeyPressed(rl.KeySpace):
		a.driver.TogglePause()
		a.logger.Debug("pause toggled", "paused", a.driver.Paused())
	case rl.IsKeyPressed(rl.KeyR):
		a.driver.Reset()
		a.telemetry = a.telemetry[:0]
	case rl.IsKeyPressed(rl.KeyP):
		a.driver.TogglePaths()
		a.logger.Debug("paths toggled", "show", a.driver.Attractor().ShowPath())
	}
}

func (a *App) Draw() {
	rl.BeginDrawing()
	if a.driver.Frame(sink{}) {
		a.recordTelemetry()
	}
	a.DrawHUD()
	rl.EndDrawing()
}

func (a *App) recordTelemetry() {
	at := a.driver.Attractor()
	sum := 0.0
	for _, t := range at.Trajectories() {
		sum += float64(t.Last().Z)
	}
	if len(a.telemetry) == telemetryCapacity {
		copy(a.telemetry, a.telemetry[1:])
		a.telemetry = a.telemetry[:telemetryCapacity-1]
	}
	a.telemetry = append(a.telemetry, sum/float64(at.Len()))
}

func (a *App) DrawHUD() {
	at := a.driver.Attractor()
	p := at.Params()

	a.drawText("lorenz", 20, 20, 24, ColSelect)
	a.drawText(fmt.Sprintf("sigma %.2f  rho %.2f  beta %.3f  scale %.2f", p.Sigma, p.Rho, p.Beta, at.PhysicsScale()), 20, 50, 14, ColText)
	a.drawText(fmt.Sprintf("points %d  trail %d  ticks %d", at.Len(), at.TrailLength(), at.Ticks()), 20, 68, 14, ColText)

	status, col := "RUNNING", ColSelect
	if a.driver.Paused() {
		status, col = "PAUSED", ColTextDim
	}
	a.drawText(status, a.width-100, 20, 16, col)

	a.DrawTelemetry()

	a.drawText(fmt.Sprintf("%d FPS", rl.GetFPS()), 20, a.height-30, 14, ColTextDim)
	a.drawText("[SPACE] PAUSE  [R] RESET  [P] PATHS  [Q] QUIT", a.width-400, a.height-30, 14, ColTextDim)
}

func (a *App) drawText(text string, x, y int32, size int, color rl.Color) {
	rl.DrawTextEx(a.font, text, rl.NewVector2(float32(x), float32(y)), float32(size), 1, color)
}

// DrawTelemetry plots the population's mean z as a line strip.
func (a *App) DrawTelemetry() {
	if len(a.telemetry) < 2 {
		return
	}

	rectX, rectY := float32(20), float32(a.height-100)
	width, height := float32(300), float32(50)

	minVal, maxVal := a.telemetry[0], a.telemetry[0]
	for _, v := range a.telemetry {
		minVal, maxVal = min(minVal, v), max(maxVal, v)
	}
	if maxVal == minVal {
		maxVal = minVal + 1
	}

	points := make([]rl.Vector2, len(a.telemetry))
	for i, val := range a.telemetry {
		px := rectX + float32(i)/float32(telemetryCapacity)*width
		norm := (val - minVal) / (maxVal - minVal)
		points[i] = rl.NewVector2(px, rectY+height-float32(norm)*height)
	}

	rl.DrawLineStrip(points, ColAccent)
	a.drawText(fmt.Sprintf("mean z %.2f", a.telemetry[len(a.telemetry)-1]), int32(rectX+width+10), int32(rectY+height-10), 14, ColText)
}
