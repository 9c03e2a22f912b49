// pkg/render/color.go
package render

import (
	"fmt"
	"image/color"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// ParseColor parses a "#rrggbb" or "#rgb" string and applies the given opacity (0..1).
func ParseColor(hex string, alpha float64) (color.NRGBA, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("parse colour %q: %w", hex, err)
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: alphaByte(alpha)}, nil
}

// WithAlpha returns c with its opacity replaced by alpha (0..1).
func WithAlpha(c color.NRGBA, alpha float64) color.NRGBA {
	c.A = alphaByte(alpha)
	return c
}

// Transparent returns the fully transparent variant of c.
func Transparent(c color.NRGBA) color.NRGBA {
	c.A = 0
	return c
}

// Blend interpolates two straight-alpha colours. Channels are mixed in RGB
// space, opacity linearly.
func Blend(a, b color.NRGBA, t float64) color.NRGBA {
	if t <= 0 {
		return a
	}
	if t >= 1 {
		return b
	}
	ca := colorful.Color{R: float64(a.R) / 255, G: float64(a.G) / 255, B: float64(a.B) / 255}
	cb := colorful.Color{R: float64(b.R) / 255, G: float64(b.G) / 255, B: float64(b.B) / 255}
	r, g, bl := ca.BlendRgb(cb, t).Clamped().RGB255()
	alpha := float64(a.A) + (float64(b.A)-float64(a.A))*t
	return color.NRGBA{R: r, G: g, B: bl, A: uint8(math.Round(alpha))}
}

// Floats returns the straight-alpha channels of c in [0, 1].
func Floats(c color.NRGBA) (r, g, b, a float32) {
	return float32(c.R) / 255, float32(c.G) / 255, float32(c.B) / 255, float32(c.A) / 255
}

func alphaByte(alpha float64) uint8 {
	if alpha <= 0 {
		return 0
	}
	if alpha >= 1 {
		return 255
	}
	return uint8(math.Round(alpha * 255))
}
