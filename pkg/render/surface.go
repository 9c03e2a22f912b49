// pkg/render/surface.go
package render

// Surface is a 2D raster target for the orb renderer. All coordinates are
// logical; implementations multiply by the scale given to SetResolution so
// edges stay crisp on high-density displays.
type Surface interface {
	// SetResolution sizes the backing store to width*scale × height*scale pixels.
	SetResolution(width, height, scale float64)
	// ClearRect makes the rectangle fully transparent.
	ClearRect(x, y, w, h float64)
	// FillCircle paints a disc of radius r centred at (cx, cy) with fill.
	FillCircle(cx, cy, r float64, fill *RadialGradient)
}

// PixelSize converts a logical size to backing-store pixels.
func PixelSize(width, height, scale float64) (int, int) {
	if scale <= 0 {
		scale = 1
	}
	w := int(width*scale + 0.5)
	h := int(height*scale + 0.5)
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return w, h
}
