// internal/renderer/renderer.go
package renderer

import (
	"log"

	"go-ambient-orbs/internal/component"
	"go-ambient-orbs/internal/config"
	"go-ambient-orbs/internal/event"
	"go-ambient-orbs/internal/interfaces"
	"go-ambient-orbs/internal/scheduler"
	"go-ambient-orbs/internal/state"
	"go-ambient-orbs/internal/system"
	"go-ambient-orbs/internal/utils"
	"go-ambient-orbs/pkg/render"
)

// Options — необязательные параметры монтирования. Нулевые значения
// заменяются значениями по умолчанию из config.
type Options struct {
	Palette      []component.PaletteEntry
	Random       system.RandomSource
	Tuning       *system.Tuning
	MidStopAlpha float64
}

// OptionsFromSettings собирает Options из файла настроек.
func OptionsFromSettings(s *config.Settings) (Options, error) {
	palette, err := s.PaletteEntries()
	if err != nil {
		return Options{}, err
	}
	return Options{
		Palette: palette,
		Random:  utils.NewPRNGService(s.Seed),
		Tuning: &system.Tuning{
			MaxDrift:       s.MaxDrift,
			PulseSpeedMin:  s.PulseSpeedMin,
			PulseSpeedMax:  s.PulseSpeedMax,
			PulseAmplitude: s.PulseAmplitude,
		},
		MidStopAlpha: s.MidStopAlpha,
	}, nil
}

// OrbRenderer владеет поверхностью, полем шаров и циклом кадров.
// Все методы вызываются из цикла хоста; блокировки не нужны.
type OrbRenderer struct {
	container    interfaces.Container
	surface      render.Surface
	field        *system.OrbField
	lifecycle    *state.Lifecycle
	observer     *hostObserver
	frameID      scheduler.FrameID
	frames       uint64
	midStopAlpha float64
}

// Mount подключает фон к контейнеру и сразу запускает анимацию.
// Если контейнера или поверхности нет, возвращается неактивный рендерер:
// он ничего не рисует, а Dispose у него безопасен.
func Mount(c interfaces.Container, opts Options) *OrbRenderer {
	r := &OrbRenderer{
		lifecycle:    state.NewLifecycle(),
		midStopAlpha: opts.MidStopAlpha,
	}
	if r.midStopAlpha <= 0 {
		r.midStopAlpha = config.MidStopAlpha
	}
	if c == nil {
		log.Println("OrbRenderer: no container, background disabled")
		return r
	}
	surface := c.Surface()
	if surface == nil {
		log.Println("OrbRenderer: container has no drawing surface, background disabled")
		return r
	}
	r.container = c
	r.surface = surface

	width, height := c.Size()
	surface.SetResolution(width, height, c.DeviceScaleFactor())

	r.observer = &hostObserver{r: r}
	c.Events().Subscribe(event.SurfaceResized, r.observer)
	c.Events().Subscribe(event.SurfaceClosed, r.observer)

	tuning := system.DefaultTuning()
	if opts.Tuning != nil {
		tuning = *opts.Tuning
	}
	palette := opts.Palette
	if len(palette) == 0 {
		palette = config.DefaultPaletteEntries()
	}
	var rng system.RandomSource = opts.Random
	if rng == nil {
		rng = utils.NewPRNGService(0)
	}
	r.field = system.NewOrbFieldWithTuning(width, height, tuning)
	r.field.Initialize(palette, rng)

	if err := r.lifecycle.Start(); err != nil {
		log.Printf("OrbRenderer: cannot start: %v", err)
		return r
	}
	r.frameID = c.RequestFrame(r.frame)
	return r
}

// frame — один колбэк кадра: тик, отрисовка, запрос следующего кадра.
func (r *OrbRenderer) frame() {
	r.frameID = 0
	if !r.lifecycle.Running() {
		return
	}
	r.field.Tick()
	r.RenderFrame()
	r.frames++
	r.frameID = r.container.RequestFrame(r.frame)
}

// RenderFrame очищает поверхность и рисует каждый шар радиальным градиентом
// в порядке поля.
func (r *OrbRenderer) RenderFrame() {
	if r.surface == nil || r.field == nil {
		return
	}
	width, height := r.field.Bounds()
	r.surface.ClearRect(0, 0, width, height)
	for _, orb := range r.field.Orbs() {
		r.surface.FillCircle(orb.Position.X, orb.Position.Y, orb.Radius, r.gradientFor(orb))
	}
}

func (r *OrbRenderer) gradientFor(orb component.Orb) *render.RadialGradient {
	g := render.NewRadialGradient(orb.Position.X, orb.Position.Y, orb.Radius)
	g.AddColorStop(0, orb.Color)
	g.AddColorStop(config.MidStopOffset, render.WithAlpha(orb.Color, r.midStopAlpha))
	g.AddColorStop(1, render.Transparent(orb.Color))
	return g
}

// Dispose отменяет запрошенный кадр и отписывается от событий хоста.
// Повторные вызовы ничего не делают.
func (r *OrbRenderer) Dispose() {
	if !r.lifecycle.Dispose() {
		return
	}
	if r.container == nil {
		return
	}
	if r.frameID != 0 {
		r.container.CancelFrame(r.frameID)
		r.frameID = 0
	}
	r.container.Events().Unsubscribe(event.SurfaceResized, r.observer)
	r.container.Events().Unsubscribe(event.SurfaceClosed, r.observer)
}

func (r *OrbRenderer) Phase() state.Phase {
	return r.lifecycle.Phase()
}

// Field возвращает поле шаров или nil у неактивного рендерера.
func (r *OrbRenderer) Field() *system.OrbField {
	return r.field
}

// Frames — число отрисованных кадров с момента монтирования.
func (r *OrbRenderer) Frames() uint64 {
	return r.frames
}

func (r *OrbRenderer) resize() {
	width, height := r.container.Size()
	r.surface.SetResolution(width, height, r.container.DeviceScaleFactor())
	r.field.Resize(width, height)
}

// hostObserver подписывается на события хоста от имени рендерера.
type hostObserver struct {
	r *OrbRenderer
}

func (o *hostObserver) OnEvent(e event.Event) {
	switch e.Type {
	case event.SurfaceResized:
		if o.r.lifecycle.Phase() == state.Disposed {
			return
		}
		o.r.resize()
	case event.SurfaceClosed:
		o.r.Dispose()
	}
}
