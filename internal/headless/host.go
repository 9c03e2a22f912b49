// internal/headless/host.go
package headless

import (
	"fmt"
	"image/png"
	"io"

	"go-ambient-orbs/internal/event"
	"go-ambient-orbs/internal/interfaces"
	"go-ambient-orbs/internal/scheduler"
	"go-ambient-orbs/pkg/render"
)

// Host — контейнер без окна: программная поверхность и очередь кадров,
// которую продвигает вызывающий. Используется для снимков и тестов.
type Host struct {
	*scheduler.Queue

	width   float64
	height  float64
	scale   float64
	surface *render.RasterSurface
	events  *event.Dispatcher
	detach  bool
}

var _ interfaces.Container = (*Host)(nil)

func NewHost(width, height, scale float64) *Host {
	if scale <= 0 {
		scale = 1
	}
	return &Host{
		Queue:   scheduler.NewQueue(),
		width:   width,
		height:  height,
		scale:   scale,
		surface: render.NewRasterSurface(),
		events:  event.NewDispatcher(),
	}
}

// NewDetachedHost создаёт хост без поверхности, как отсоединённый контейнер.
func NewDetachedHost(width, height float64) *Host {
	h := NewHost(width, height, 1)
	h.detach = true
	return h
}

func (h *Host) Size() (float64, float64) {
	return h.width, h.height
}

func (h *Host) DeviceScaleFactor() float64 {
	return h.scale
}

func (h *Host) Surface() render.Surface {
	if h.detach {
		return nil
	}
	return h.surface
}

func (h *Host) Events() *event.Dispatcher {
	return h.events
}

// Raster возвращает программную поверхность для чтения пикселей.
func (h *Host) Raster() *render.RasterSurface {
	return h.surface
}

// Resize меняет размер области и сообщает подписчикам.
func (h *Host) Resize(width, height, scale float64) {
	if scale <= 0 {
		scale = h.scale
	}
	h.width, h.height, h.scale = width, height, scale
	h.events.Dispatch(event.Event{
		Type: event.SurfaceResized,
		Data: event.ResizeData{Width: width, Height: height, Scale: scale},
	})
}

// Close сообщает подписчикам, что область убирается с экрана.
func (h *Host) Close() {
	h.events.Dispatch(event.Event{Type: event.SurfaceClosed})
}

// Step выполняет n обновлений экрана и возвращает число отработавших колбэков.
func (h *Host) Step(n int) int {
	ran := 0
	for i := 0; i < n; i++ {
		ran += h.RunPending()
	}
	return ran
}

// WritePNG кодирует текущее содержимое поверхности.
func (h *Host) WritePNG(w io.Writer) error {
	img := h.surface.Image()
	if img == nil {
		return fmt.Errorf("headless: surface has no image yet")
	}
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("headless: encode png: %w", err)
	}
	return nil
}
