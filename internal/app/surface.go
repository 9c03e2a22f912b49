// internal/app/surface.go
package app

import (
	"image"
	"image/color"
	"math"

	"go-ambient-orbs/internal/config"
	"go-ambient-orbs/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
)

// Surface — поверхность render.Surface поверх offscreen *ebiten.Image.
// Радиальный градиент рисуется веером треугольников: цвета вершин на
// кольцах, соответствующих остановкам градиента, GPU интерполирует между ними.
type Surface struct {
	img      *ebiten.Image
	whiteImg *ebiten.Image
	scale    float64
	segments int
	vertices []ebiten.Vertex
	indices  []uint16
}

var _ render.Surface = (*Surface)(nil)

func NewSurface() *Surface {
	white := ebiten.NewImage(3, 3)
	white.Fill(color.White)
	return &Surface{
		whiteImg: white.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image),
		scale:    1,
		segments: config.GradientSegments,
		vertices: make([]ebiten.Vertex, 0, 1+3*config.GradientSegments),
		indices:  make([]uint16, 0, 15*config.GradientSegments),
	}
}

func (s *Surface) SetResolution(width, height, scale float64) {
	if scale <= 0 {
		scale = 1
	}
	s.scale = scale
	pw, ph := render.PixelSize(width, height, scale)
	if s.img != nil {
		if b := s.img.Bounds(); b.Dx() == pw && b.Dy() == ph {
			return
		}
		s.img.Deallocate()
	}
	s.img = ebiten.NewImage(pw, ph)
}

func (s *Surface) ClearRect(x, y, w, h float64) {
	if s.img == nil {
		return
	}
	r := image.Rect(
		int(math.Floor(x*s.scale)), int(math.Floor(y*s.scale)),
		int(math.Ceil((x+w)*s.scale)), int(math.Ceil((y+h)*s.scale)),
	)
	if s.img.Bounds().In(r) {
		s.img.Clear()
		return
	}
	r = r.Intersect(s.img.Bounds())
	if r.Empty() {
		return
	}
	s.img.SubImage(r).(*ebiten.Image).Clear()
}

func (s *Surface) FillCircle(cx, cy, r float64, fill *render.RadialGradient) {
	if s.img == nil || fill == nil || r <= 0 {
		return
	}
	offsets := render.RingOffsets(fill)
	px, py, pr := cx*s.scale, cy*s.scale, r*s.scale

	s.vertices = s.vertices[:0]
	s.indices = s.indices[:0]

	s.vertices = append(s.vertices, vertexAt(px, py, fill.ColorAt(0)))
	for _, off := range offsets {
		c := fill.ColorAt(off)
		for i := 0; i < s.segments; i++ {
			angle := 2 * math.Pi * float64(i) / float64(s.segments)
			vx := px + pr*off*math.Cos(angle)
			vy := py + pr*off*math.Sin(angle)
			s.vertices = append(s.vertices, vertexAt(vx, vy, c))
		}
	}

	s.indices = render.FanIndices(s.indices, s.segments, len(offsets))

	s.img.DrawTriangles(s.vertices, s.indices, s.whiteImg, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}

// Image возвращает offscreen-изображение или nil до SetResolution.
func (s *Surface) Image() *ebiten.Image {
	return s.img
}

// Deallocate освобождает видеопамять поверхности.
func (s *Surface) Deallocate() {
	if s.img != nil {
		s.img.Deallocate()
		s.img = nil
	}
}

func vertexAt(x, y float64, c color.NRGBA) ebiten.Vertex {
	r, g, b, a := render.Floats(c)
	return ebiten.Vertex{
		DstX:   float32(x),
		DstY:   float32(y),
		SrcX:   1,
		SrcY:   1,
		ColorR: r,
		ColorG: g,
		ColorB: b,
		ColorA: a,
	}
}
