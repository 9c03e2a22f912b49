// pkg/render/gradient.go
package render

import (
	"image/color"
	"math"
	"sort"
)

// ColorStop is one stop of a gradient; Offset is in [0, 1].
type ColorStop struct {
	Offset float64
	Color  color.NRGBA
}

// RadialGradient is a circular gradient centred at (CX, CY). Offset 0 maps
// to the centre and offset 1 to Radius.
type RadialGradient struct {
	CX, CY float64
	Radius float64
	stops  []ColorStop
}

func NewRadialGradient(cx, cy, radius float64) *RadialGradient {
	return &RadialGradient{CX: cx, CY: cy, Radius: radius, stops: make([]ColorStop, 0, 3)}
}

// AddColorStop inserts a stop, clamping the offset into [0, 1]. Stops with
// equal offsets keep insertion order.
func (g *RadialGradient) AddColorStop(offset float64, c color.NRGBA) {
	offset = math.Max(0, math.Min(1, offset))
	i := sort.Search(len(g.stops), func(i int) bool { return g.stops[i].Offset > offset })
	g.stops = append(g.stops, ColorStop{})
	copy(g.stops[i+1:], g.stops[i:])
	g.stops[i] = ColorStop{Offset: offset, Color: c}
}

func (g *RadialGradient) Stops() []ColorStop {
	return g.stops
}

// ColorAt returns the colour at normalised distance t from the centre.
// Before the first stop the first colour is used, past the last stop the last one.
func (g *RadialGradient) ColorAt(t float64) color.NRGBA {
	if len(g.stops) == 0 {
		return color.NRGBA{}
	}
	if t <= g.stops[0].Offset {
		return g.stops[0].Color
	}
	last := g.stops[len(g.stops)-1]
	if t >= last.Offset {
		return last.Color
	}
	for i := 1; i < len(g.stops); i++ {
		hi := g.stops[i]
		if t > hi.Offset {
			continue
		}
		lo := g.stops[i-1]
		span := hi.Offset - lo.Offset
		if span <= 0 {
			return hi.Color
		}
		return Blend(lo.Color, hi.Color, (t-lo.Offset)/span)
	}
	return last.Color
}

// ColorAtPoint returns the gradient colour at logical point (x, y).
func (g *RadialGradient) ColorAtPoint(x, y float64) color.NRGBA {
	if g.Radius <= 0 {
		return g.ColorAt(1)
	}
	return g.ColorAt(math.Hypot(x-g.CX, y-g.CY) / g.Radius)
}
