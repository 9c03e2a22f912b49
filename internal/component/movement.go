// internal/component/movement.go
package component

// Vec2 — точка или вектор в логических координатах поверхности.
type Vec2 struct {
	X, Y float64
}

// Add возвращает сумму двух векторов.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}
