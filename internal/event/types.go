// internal/event/types.go
package event

const (
	SurfaceResized EventType = "SurfaceResized" // Хост изменил размер или плотность пикселей
	SurfaceClosed  EventType = "SurfaceClosed"  // Хост закрывает окно, фон нужно размонтировать
)

// ResizeData — полезная нагрузка SurfaceResized: логический размер и масштаб устройства.
type ResizeData struct {
	Width  float64
	Height float64
	Scale  float64
}
