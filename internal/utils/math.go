// internal/utils/math.go
package utils

// Lerp выполняет стандартную линейную интерполяцию
func Lerp(from, to, t float64) float64 {
	return from + (to-from)*t
}

// Clamp01 ограничивает значение диапазоном [0, 1]
func Clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Wrap переносит координату на противоположный край, когда диск радиуса r
// полностью покинул отрезок [0, limit]. Результат всегда лежит в [-r, limit+r].
func Wrap(v, limit, r float64) float64 {
	if v < -r {
		return limit + r
	}
	if v > limit+r {
		return -r
	}
	return v
}
