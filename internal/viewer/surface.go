// internal/viewer/surface.go
package viewer

import (
	"image/color"

	"go-ambient-orbs/internal/config"
	"go-ambient-orbs/pkg/render"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Surface рисует прямо в кадр raylib между BeginDrawing и EndDrawing.
// С FlagWindowHighdpi raylib сам масштабирует логические координаты,
// поэтому scale только запоминается.
type Surface struct {
	width      float64
	height     float64
	scale      float64
	bands      int
	background color.RGBA
}

var _ render.Surface = (*Surface)(nil)

func NewSurface(background color.RGBA) *Surface {
	return &Surface{scale: 1, bands: config.RingBands, background: background}
}

func (s *Surface) SetResolution(width, height, scale float64) {
	s.width, s.height, s.scale = width, height, scale
}

// ClearRect закрашивает прямоугольник фоном страницы: у заднего буфера
// raylib нет прозрачности, под фоном ничего нет.
func (s *Surface) ClearRect(x, y, w, h float64) {
	rl.DrawRectangle(int32(x), int32(y), int32(w+0.5), int32(h+0.5), s.background)
}

// FillCircle приближает радиальный градиент набором концентрических колец,
// каждое залито цветом градиента в середине кольца.
func (s *Surface) FillCircle(cx, cy, r float64, fill *render.RadialGradient) {
	if fill == nil || r <= 0 {
		return
	}
	center := rl.NewVector2(float32(cx), float32(cy))
	step := float32(r) / float32(s.bands)
	for i := 0; i < s.bands; i++ {
		c := fill.ColorAt((float64(i) + 0.5) / float64(s.bands))
		if c.A == 0 {
			continue
		}
		inner := step * float32(i)
		rl.DrawRing(center, inner, inner+step, 0, 360, config.GradientSegments, rl.NewColor(c.R, c.G, c.B, c.A))
	}
}
