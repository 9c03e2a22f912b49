// internal/viewer/viewer.go
package viewer

import (
	"fmt"
	"image/color"
	"log"

	"go-ambient-orbs/internal/config"
	"go-ambient-orbs/internal/event"
	"go-ambient-orbs/internal/interfaces"
	"go-ambient-orbs/internal/renderer"
	"go-ambient-orbs/internal/scheduler"
	"go-ambient-orbs/pkg/render"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Viewer — хост на raylib: собственный главный цикл вместо ebiten.
type Viewer struct {
	*scheduler.Queue

	events     *event.Dispatcher
	surface    *Surface
	background color.RGBA
	showDebug  bool
	width      float64
	height     float64
	scale      float64
}

var _ interfaces.Container = (*Viewer)(nil)

func New(settings *config.Settings) *Viewer {
	background, err := settings.BackgroundColor()
	if err != nil {
		log.Printf("Viewer: %v, using default background", err)
	}
	return &Viewer{
		Queue:      scheduler.NewQueue(),
		events:     event.NewDispatcher(),
		surface:    NewSurface(background),
		background: background,
		showDebug:  settings.ShowDebug,
		width:      float64(settings.WindowWidth),
		height:     float64(settings.WindowHeight),
		scale:      1,
	}
}

func (v *Viewer) Size() (float64, float64) {
	return v.width, v.height
}

func (v *Viewer) DeviceScaleFactor() float64 {
	return v.scale
}

func (v *Viewer) Surface() render.Surface {
	return v.surface
}

func (v *Viewer) Events() *event.Dispatcher {
	return v.events
}

// Run открывает окно и крутит цикл до его закрытия.
func (v *Viewer) Run(opts renderer.Options) {
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagWindowHighdpi | rl.FlagMsaa4xHint)
	rl.InitWindow(int32(v.width), int32(v.height), config.WindowTitle+" (raylib)")
	defer rl.CloseWindow()
	rl.SetTargetFPS(int32(rl.GetMonitorRefreshRate(rl.GetCurrentMonitor())))

	v.refreshSize()
	orbs := renderer.Mount(v, opts)
	defer orbs.Dispose()

	for !rl.WindowShouldClose() {
		if rl.IsWindowResized() {
			v.refreshSize()
			v.events.Dispatch(event.Event{
				Type: event.SurfaceResized,
				Data: event.ResizeData{Width: v.width, Height: v.height, Scale: v.scale},
			})
		}

		rl.BeginDrawing()
		rl.ClearBackground(v.background)
		v.RunPending()
		if v.showDebug {
			msg := fmt.Sprintf("FPS %d  frames %d  %.0fx%.0f @%.2fx", rl.GetFPS(), orbs.Frames(), v.width, v.height, v.scale)
			rl.DrawText(msg, config.DebugTextX, config.DebugTextY, 10, v.textColor())
		}
		rl.EndDrawing()
	}
	v.events.Dispatch(event.Event{Type: event.SurfaceClosed})
}

func (v *Viewer) refreshSize() {
	v.width = float64(rl.GetScreenWidth())
	v.height = float64(rl.GetScreenHeight())
	if s := float64(rl.GetWindowScaleDPI().X); s > 0 {
		v.scale = s
	}
}

func (v *Viewer) textColor() rl.Color {
	c := config.TextLightColor
	return rl.NewColor(c.R, c.G, c.B, c.A)
}
