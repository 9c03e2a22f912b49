// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 1280
	ScreenHeight = 800
	WindowTitle  = "Ambient Orbs"

	// Дрейф и пульсация шаров
	MaxDrift       = 0.2   // |v| по каждой оси, пикселей за кадр
	PulseSpeedMin  = 0.006 // радиан за кадр
	PulseSpeedMax  = 0.012
	PulseAmplitude = 30.0

	// Градиент шара: цвет в центре, почти прозрачный цвет в середине, прозрачный край
	MidStopOffset = 0.5
	// Абсолютная непрозрачность средней остановки, не доля от альфы шара:
	// при альфе палитры 0.08..0.15 это 33..63% исходной, а не 5%.
	MidStopAlpha  = 0.05

	GradientSegments = 64 // сегментов в веере треугольников ebiten
	RingBands        = 24 // колец градиента в raylib

	DebugTextX = 12
	DebugTextY = 20

	DefaultSettingsPath = "orbs.json"
)

var (
	BackgroundColor = color.RGBA{10, 10, 18, 255}
	TextLightColor  = color.RGBA{240, 240, 240, 255}
)

// PaletteSpec — описание шара в палитре: цвет в hex, непрозрачность и базовый радиус.
type PaletteSpec struct {
	Hex    string  `json:"hex"`
	Alpha  float64 `json:"alpha"`
	Radius float64 `json:"radius"`
}

// DefaultPalette — шесть полупрозрачных шаров: фиолетовый, лавандовый,
// розовый, золотой, индиго и розово-красный.
var DefaultPalette = []PaletteSpec{
	{Hex: "#8b5cf6", Alpha: 0.15, Radius: 280}, // violet
	{Hex: "#a78bfa", Alpha: 0.12, Radius: 220}, // lavender
	{Hex: "#ec4899", Alpha: 0.10, Radius: 200}, // pink
	{Hex: "#fbbf24", Alpha: 0.08, Radius: 160}, // gold
	{Hex: "#6366f1", Alpha: 0.12, Radius: 240}, // indigo
	{Hex: "#f43f5e", Alpha: 0.08, Radius: 180}, // rose
}
