// internal/component/orb.go
package component

import "image/color"

// Orb — светящийся диск фона.
// BaseRadius, Color, Velocity и PulseSpeed задаются при создании и больше не меняются.
type Orb struct {
	Position   Vec2
	Velocity   Vec2
	BaseRadius float64
	Radius     float64 // BaseRadius + амплитуда·sin(Phase), пересчитывается каждый тик
	Color      color.NRGBA
	Phase      float64
	PulseSpeed float64
}
