// pkg/render/fan.go
package render

// RingOffsets возвращает радиусы колец веера (доли от радиуса градиента) по
// его остановкам. Остановки на 0 и 1 и повторы пропускаются; внешнее кольцо
// всегда на краю диска.
func RingOffsets(g *RadialGradient) []float64 {
	stops := g.Stops()
	offsets := make([]float64, 0, len(stops)+1)
	for _, stop := range stops {
		if stop.Offset <= 0 || stop.Offset >= 1 {
			continue
		}
		if n := len(offsets); n > 0 && offsets[n-1] == stop.Offset {
			continue
		}
		offsets = append(offsets, stop.Offset)
	}
	return append(offsets, 1)
}

// FanIndices appends triangle indices for a fan with a centre vertex 0 and
// rings of segments vertices each, ring k starting at 1+k*segments.
// The centre joins the first ring; neighbouring rings are joined by quads.
func FanIndices(dst []uint16, segments, rings int) []uint16 {
	if segments <= 0 || rings <= 0 {
		return dst
	}
	n := uint16(segments)
	for i := uint16(0); i < n; i++ {
		dst = append(dst, 0, 1+i, 1+(i+1)%n)
	}
	for ring := 1; ring < rings; ring++ {
		inner := uint16(1 + (ring-1)*segments)
		outer := uint16(1 + ring*segments)
		for i := uint16(0); i < n; i++ {
			j := (i + 1) % n
			dst = append(dst,
				inner+i, outer+i, outer+j,
				inner+i, outer+j, inner+j,
			)
		}
	}
	return dst
}
