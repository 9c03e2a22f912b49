// internal/config/settings.go
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"image/color"
	"log"
	"os"

	"go-ambient-orbs/internal/component"
	"go-ambient-orbs/pkg/render"
)

var ErrEmptyPalette = errors.New("config: palette is empty")

// Settings — содержимое необязательного файла настроек (orbs.json).
// Нулевые поля означают "взять значение по умолчанию".
type Settings struct {
	Seed           int64         `json:"seed"`
	WindowWidth    int           `json:"window_width"`
	WindowHeight   int           `json:"window_height"`
	ShowDebug      bool          `json:"show_debug"`
	Background     string        `json:"background"`
	MaxDrift       float64       `json:"max_drift"`
	PulseSpeedMin  float64       `json:"pulse_speed_min"`
	PulseSpeedMax  float64       `json:"pulse_speed_max"`
	PulseAmplitude float64       `json:"pulse_amplitude"`
	MidStopAlpha   float64       `json:"mid_stop_alpha"`
	Palette        []PaletteSpec `json:"palette"`
}

// NewDefault возвращает настройки по умолчанию.
// Используется, когда файла нет или он повреждён.
func NewDefault() *Settings {
	palette := make([]PaletteSpec, len(DefaultPalette))
	copy(palette, DefaultPalette)
	return &Settings{
		WindowWidth:    ScreenWidth,
		WindowHeight:   ScreenHeight,
		Background:     "#0a0a12",
		MaxDrift:       MaxDrift,
		PulseSpeedMin:  PulseSpeedMin,
		PulseSpeedMax:  PulseSpeedMax,
		PulseAmplitude: PulseAmplitude,
		MidStopAlpha:   MidStopAlpha,
		Palette:        palette,
	}
}

// Load читает настройки из JSON. Отсутствующий файл — не ошибка, а
// настройки по умолчанию; битый JSON тоже даёт значения по умолчанию.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return NewDefault(), nil
		}
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	s := NewDefault()
	if err := json.Unmarshal(data, s); err != nil {
		log.Printf("settings: %s is malformed, using defaults: %v", path, err)
		return NewDefault(), nil
	}
	s.fillDefaults()
	return s, nil
}

// Save записывает настройки с отступами, чтобы файл было удобно править руками.
func Save(s *Settings, path string) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}
	return nil
}

func (s *Settings) fillDefaults() {
	d := NewDefault()
	if s.WindowWidth <= 0 {
		s.WindowWidth = d.WindowWidth
	}
	if s.WindowHeight <= 0 {
		s.WindowHeight = d.WindowHeight
	}
	if s.Background == "" {
		s.Background = d.Background
	}
	if s.MaxDrift <= 0 {
		s.MaxDrift = d.MaxDrift
	}
	if s.PulseSpeedMin <= 0 || s.PulseSpeedMax < s.PulseSpeedMin {
		s.PulseSpeedMin, s.PulseSpeedMax = d.PulseSpeedMin, d.PulseSpeedMax
	}
	if s.PulseAmplitude < 0 {
		s.PulseAmplitude = d.PulseAmplitude
	}
	if s.MidStopAlpha <= 0 {
		s.MidStopAlpha = d.MidStopAlpha
	}
	if len(s.Palette) == 0 {
		s.Palette = d.Palette
	}
}

// PaletteEntries разбирает палитру настроек.
func (s *Settings) PaletteEntries() ([]component.PaletteEntry, error) {
	return Palette(s.Palette)
}

// BackgroundColor разбирает цвет фона страницы.
func (s *Settings) BackgroundColor() (color.RGBA, error) {
	c, err := render.ParseColor(s.Background, 1)
	if err != nil {
		return BackgroundColor, fmt.Errorf("background: %w", err)
	}
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 255}, nil
}

// Palette превращает описания из конфигурации в записи палитры.
func Palette(specs []PaletteSpec) ([]component.PaletteEntry, error) {
	if len(specs) == 0 {
		return nil, ErrEmptyPalette
	}
	entries := make([]component.PaletteEntry, 0, len(specs))
	for i, spec := range specs {
		c, err := render.ParseColor(spec.Hex, spec.Alpha)
		if err != nil {
			return nil, fmt.Errorf("palette entry %d: %w", i, err)
		}
		if spec.Radius <= 0 {
			return nil, fmt.Errorf("palette entry %d: radius must be positive, got %v", i, spec.Radius)
		}
		entries = append(entries, component.PaletteEntry{Color: c, BaseRadius: spec.Radius})
	}
	return entries, nil
}

// DefaultPaletteEntries возвращает разобранную палитру по умолчанию.
func DefaultPaletteEntries() []component.PaletteEntry {
	entries, err := Palette(DefaultPalette)
	if err != nil {
		panic(fmt.Sprintf("config: default palette is invalid: %v", err))
	}
	return entries
}
