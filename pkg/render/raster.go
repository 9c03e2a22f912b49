// pkg/render/raster.go
package render

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/vector"
)

// kappa places cubic Bézier control points so four segments approximate a circle.
const kappa = 0.5522847498

// RasterSurface is a software Surface backed by an *image.RGBA. It is used
// for headless snapshots and in tests.
type RasterSurface struct {
	img    *image.RGBA
	scale  float64
	width  float64
	height float64
	rast   *vector.Rasterizer
}

func NewRasterSurface() *RasterSurface {
	return &RasterSurface{scale: 1}
}

func (s *RasterSurface) SetResolution(width, height, scale float64) {
	if scale <= 0 {
		scale = 1
	}
	pw, ph := PixelSize(width, height, scale)
	s.width, s.height, s.scale = width, height, scale
	s.img = image.NewRGBA(image.Rect(0, 0, pw, ph))
	if s.rast == nil {
		s.rast = vector.NewRasterizer(pw, ph)
	} else {
		s.rast.Reset(pw, ph)
	}
}

func (s *RasterSurface) ClearRect(x, y, w, h float64) {
	if s.img == nil {
		return
	}
	r := image.Rect(
		int(math.Floor(x*s.scale)), int(math.Floor(y*s.scale)),
		int(math.Ceil((x+w)*s.scale)), int(math.Ceil((y+h)*s.scale)),
	).Intersect(s.img.Bounds())
	draw.Draw(s.img, r, image.Transparent, image.Point{}, draw.Src)
}

func (s *RasterSurface) FillCircle(cx, cy, r float64, fill *RadialGradient) {
	if s.img == nil || fill == nil || r <= 0 {
		return
	}
	b := s.img.Bounds()
	dcx, dcy, dr := cx*s.scale, cy*s.scale, r*s.scale
	// Маска и заливка только в пределах квадрата диска
	bb := image.Rect(
		int(math.Floor(dcx-dr)), int(math.Floor(dcy-dr)),
		int(math.Ceil(dcx+dr)), int(math.Ceil(dcy+dr)),
	).Intersect(b)
	if bb.Empty() {
		return
	}
	s.rast.Reset(bb.Dx(), bb.Dy())
	s.rast.DrawOp = draw.Over

	px, py, pr := float32(dcx-float64(bb.Min.X)), float32(dcy-float64(bb.Min.Y)), float32(dr)
	k := pr * kappa
	s.rast.MoveTo(px+pr, py)
	s.rast.CubeTo(px+pr, py+k, px+k, py+pr, px, py+pr)
	s.rast.CubeTo(px-k, py+pr, px-pr, py+k, px-pr, py)
	s.rast.CubeTo(px-pr, py-k, px-k, py-pr, px, py-pr)
	s.rast.CubeTo(px+k, py-pr, px+pr, py-k, px+pr, py)
	s.rast.ClosePath()

	s.rast.Draw(s.img, bb, &gradientImage{g: fill, scale: s.scale, bounds: b}, bb.Min)
}

// Image returns the backing store, or nil before SetResolution.
func (s *RasterSurface) Image() *image.RGBA {
	return s.img
}

// Size returns the logical size and scale last passed to SetResolution.
func (s *RasterSurface) Size() (width, height, scale float64) {
	return s.width, s.height, s.scale
}

// gradientImage exposes a RadialGradient as an image.Image in device pixels.
type gradientImage struct {
	g      *RadialGradient
	scale  float64
	bounds image.Rectangle
}

func (gi *gradientImage) ColorModel() color.Model { return color.NRGBAModel }

func (gi *gradientImage) Bounds() image.Rectangle { return gi.bounds }

func (gi *gradientImage) At(x, y int) color.Color {
	lx := (float64(x) + 0.5) / gi.scale
	ly := (float64(y) + 0.5) / gi.scale
	return gi.g.ColorAtPoint(lx, ly)
}
