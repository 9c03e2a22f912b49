// internal/interfaces/container.go
package interfaces

import (
	"go-ambient-orbs/internal/event"
	"go-ambient-orbs/internal/scheduler"
	"go-ambient-orbs/pkg/render"
)

// Container — то, что хост предоставляет фону: размер области, плотность
// пикселей, поверхность для рисования, события изменения размера и планировщик кадров.
type Container interface {
	scheduler.Scheduler

	// Size возвращает текущий логический размер области на экране.
	Size() (width, height float64)
	// DeviceScaleFactor возвращает число физических пикселей на логический.
	DeviceScaleFactor() float64
	// Surface возвращает поверхность или nil, если хост её не поддерживает.
	Surface() render.Surface
	// Events — диспетчер, через который хост сообщает о SurfaceResized.
	Events() *event.Dispatcher
}
