// internal/component/visual.go
package component

import "image/color"

// PaletteEntry описывает один шар палитры: полупрозрачный цвет и базовый радиус.
type PaletteEntry struct {
	Color      color.NRGBA
	BaseRadius float64
}
