// internal/app/game.go
package app

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

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// Game — хост ebiten: окно страницы, в котором фон из шаров рисуется
// позади остального содержимого. Реализует ebiten.Game и interfaces.Container.
type Game struct {
	*scheduler.Queue

	EventDispatcher *event.Dispatcher
	Renderer        *renderer.OrbRenderer

	surface    *Surface
	options    renderer.Options
	background color.RGBA
	showDebug  bool

	// Логический размер окна и масштаб монитора, как их видел последний Layout
	width  float64
	height float64
	scale  float64
}

var (
	_ ebiten.Game          = (*Game)(nil)
	_ interfaces.Container = (*Game)(nil)
)

// NewGame создаёт хост. Фон монтируется на первом Update, когда
// ebiten уже сообщил размер окна через Layout.
func NewGame(settings *config.Settings, opts renderer.Options) *Game {
	background, err := settings.BackgroundColor()
	if err != nil {
		log.Printf("Game: %v, using default background", err)
	}
	g := &Game{
		Queue:           scheduler.NewQueue(),
		EventDispatcher: event.NewDispatcher(),
		surface:         NewSurface(),
		options:         opts,
		background:      background,
		showDebug:       settings.ShowDebug,
		width:           float64(settings.WindowWidth),
		height:          float64(settings.WindowHeight),
		scale:           1,
	}
	if g.showDebug {
		g.EventDispatcher.Subscribe(event.SurfaceResized, &resizeLogger{})
	}
	return g
}

func (g *Game) Update() error {
	if ebiten.IsWindowBeingClosed() {
		g.EventDispatcher.Dispatch(event.Event{Type: event.SurfaceClosed})
		g.surface.Deallocate()
		return ebiten.Termination
	}
	if g.Renderer == nil {
		g.Renderer = renderer.Mount(g, g.options)
	}
	g.RunPending()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.background)
	if img := g.surface.Image(); img != nil {
		screen.DrawImage(img, nil)
	}
	if g.showDebug {
		g.drawDebug(screen)
	}
}

// Layout запоминает логический размер окна и плотность пикселей монитора
// и возвращает размер экрана в физических пикселях.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := float64(outsideWidth), float64(outsideHeight)
	scale := deviceScale()
	if w != g.width || h != g.height || scale != g.scale {
		g.width, g.height, g.scale = w, h, scale
		if g.Renderer != nil {
			g.EventDispatcher.Dispatch(event.Event{
				Type: event.SurfaceResized,
				Data: event.ResizeData{Width: w, Height: h, Scale: scale},
			})
		}
	}
	return render.PixelSize(w, h, scale)
}

func (g *Game) Size() (float64, float64) {
	return g.width, g.height
}

func (g *Game) DeviceScaleFactor() float64 {
	return g.scale
}

func (g *Game) Surface() render.Surface {
	return g.surface
}

func (g *Game) Events() *event.Dispatcher {
	return g.EventDispatcher
}

// Close размонтирует фон. Вызывается после выхода из ebiten.RunGame;
// повторное размонтирование безопасно.
func (g *Game) Close() {
	if g.Renderer != nil {
		g.Renderer.Dispose()
	}
}

func (g *Game) drawDebug(screen *ebiten.Image) {
	orbs := 0
	var frames uint64
	if g.Renderer != nil {
		frames = g.Renderer.Frames()
		if f := g.Renderer.Field(); f != nil {
			orbs = f.Len()
		}
	}
	msg := fmt.Sprintf("TPS %.0f  FPS %.0f  orbs %d  frames %d  %.0fx%.0f @%.2fx",
		ebiten.ActualTPS(), ebiten.ActualFPS(), orbs, frames, g.width, g.height, g.scale)
	text.Draw(screen, msg, basicfont.Face7x13, config.DebugTextX, config.DebugTextY, config.TextLightColor)
}

func deviceScale() float64 {
	if m := ebiten.Monitor(); m != nil {
		if s := m.DeviceScaleFactor(); s > 0 {
			return s
		}
	}
	return 1
}

// resizeLogger пишет в лог изменения размера в режиме отладки.
type resizeLogger struct{}

func (l *resizeLogger) OnEvent(e event.Event) {
	if data, ok := e.Data.(event.ResizeData); ok {
		log.Printf("Game: surface resized to %.0fx%.0f @%.2fx", data.Width, data.Height, data.Scale)
	}
}
