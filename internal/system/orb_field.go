// internal/system/orb_field.go
package system

import (
	"math"

	"go-ambient-orbs/internal/component"
	"go-ambient-orbs/internal/config"
	"go-ambient-orbs/internal/utils"
)

// RandomSource — источник случайных чисел в [0, 1). utils.PRNGService ему соответствует.
type RandomSource interface {
	Float64() float64
}

// Tuning — диапазоны случайных параметров и амплитуда пульсации.
type Tuning struct {
	MaxDrift       float64 // скорость по каждой оси в (-MaxDrift, MaxDrift)
	PulseSpeedMin  float64
	PulseSpeedMax  float64
	PulseAmplitude float64
}

// DefaultTuning возвращает значения из config.
func DefaultTuning() Tuning {
	return Tuning{
		MaxDrift:       config.MaxDrift,
		PulseSpeedMin:  config.PulseSpeedMin,
		PulseSpeedMax:  config.PulseSpeedMax,
		PulseAmplitude: config.PulseAmplitude,
	}
}

// OrbField хранит шары и размеры поверхности для переноса через края.
// Шары независимы друг от друга; порядок в срезе — порядок отрисовки.
type OrbField struct {
	orbs   []component.Orb
	width  float64
	height float64
	tuning Tuning
}

func NewOrbField(width, height float64) *OrbField {
	return NewOrbFieldWithTuning(width, height, DefaultTuning())
}

func NewOrbFieldWithTuning(width, height float64, tuning Tuning) *OrbField {
	return &OrbField{width: width, height: height, tuning: tuning}
}

// Initialize создаёт по одному шару на каждую запись палитры, заменяя прежние.
func (f *OrbField) Initialize(palette []component.PaletteEntry, rng RandomSource) {
	f.orbs = make([]component.Orb, 0, len(palette))
	t := f.tuning
	for _, entry := range palette {
		phase := rng.Float64() * 2 * math.Pi
		orb := component.Orb{
			Position: component.Vec2{
				X: rng.Float64() * f.width,
				Y: rng.Float64() * f.height,
			},
			Velocity: component.Vec2{
				X: drift(rng.Float64(), t.MaxDrift),
				Y: drift(rng.Float64(), t.MaxDrift),
			},
			BaseRadius: entry.BaseRadius,
			Color:      entry.Color,
			Phase:      phase,
			PulseSpeed: utils.Lerp(t.PulseSpeedMin, t.PulseSpeedMax, rng.Float64()),
		}
		orb.Radius = orb.BaseRadius + t.PulseAmplitude*math.Sin(phase)
		f.orbs = append(f.orbs, orb)
	}
}

// drift отображает u из [0, 1) в открытый интервал (-limit, limit).
func drift(u, limit float64) float64 {
	v := (u*2 - 1) * limit
	if v <= -limit {
		return math.Nextafter(-limit, 0)
	}
	return v
}

// Tick продвигает все шары на один кадр: дрейф, фаза, радиус, перенос через края.
func (f *OrbField) Tick() {
	for i := range f.orbs {
		orb := &f.orbs[i]
		orb.Position = orb.Position.Add(orb.Velocity)
		orb.Phase += orb.PulseSpeed
		orb.Radius = orb.BaseRadius + f.tuning.PulseAmplitude*math.Sin(orb.Phase)

		orb.Position.X = utils.Wrap(orb.Position.X, f.width, orb.Radius)
		orb.Position.Y = utils.Wrap(orb.Position.Y, f.height, orb.Radius)
	}
}

// Resize меняет только размеры; позиции шаров не трогает.
func (f *OrbField) Resize(width, height float64) {
	f.width = width
	f.height = height
}

// Orbs возвращает живой срез шаров. Вызывающий не должен его изменять.
func (f *OrbField) Orbs() []component.Orb {
	return f.orbs
}

func (f *OrbField) Len() int {
	return len(f.orbs)
}

func (f *OrbField) Bounds() (width, height float64) {
	return f.width, f.height
}

func (f *OrbField) Tuning() Tuning {
	return f.tuning
}

// Add добавляет готовый шар, например в тестах или при загрузке снимка.
func (f *OrbField) Add(orb component.Orb) {
	f.orbs = append(f.orbs, orb)
}
