package renderer

import (
	"image/color"
	"testing"

	"go-ambient-orbs/internal/component"
	"go-ambient-orbs/internal/config"
	"go-ambient-orbs/internal/event"
	"go-ambient-orbs/internal/headless"
	"go-ambient-orbs/internal/scheduler"
	"go-ambient-orbs/internal/state"
	"go-ambient-orbs/internal/system"
	"go-ambient-orbs/internal/utils"
	"go-ambient-orbs/pkg/render"
)

type fillCall struct {
	cx, cy, r float64
	stops     []render.ColorStop
}

// recordingSurface remembers every draw call instead of painting.
type recordingSurface struct {
	resolutions [][3]float64
	clears      [][4]float64
	fills       []fillCall
	order       []string
}

func (s *recordingSurface) SetResolution(w, h, scale float64) {
	s.resolutions = append(s.resolutions, [3]float64{w, h, scale})
}

func (s *recordingSurface) ClearRect(x, y, w, h float64) {
	s.clears = append(s.clears, [4]float64{x, y, w, h})
	s.order = append(s.order, "clear")
}

func (s *recordingSurface) FillCircle(cx, cy, r float64, g *render.RadialGradient) {
	s.fills = append(s.fills, fillCall{cx: cx, cy: cy, r: r, stops: g.Stops()})
	s.order = append(s.order, "fill")
}

type fakeContainer struct {
	*scheduler.Queue
	w, h, scale float64
	surface     render.Surface
	events      *event.Dispatcher
}

func newFakeContainer(surface render.Surface) *fakeContainer {
	return &fakeContainer{
		Queue:   scheduler.NewQueue(),
		w:       800,
		h:       600,
		scale:   2,
		surface: surface,
		events:  event.NewDispatcher(),
	}
}

func (c *fakeContainer) Size() (float64, float64) { return c.w, c.h }
func (c *fakeContainer) DeviceScaleFactor() float64 { return c.scale }
func (c *fakeContainer) Surface() render.Surface { return c.surface }
func (c *fakeContainer) Events() *event.Dispatcher { return c.events }

func seeded() Options {
	return Options{Random: utils.NewPRNGService(2024)}
}

func TestMountSizesSurfaceAndStartsLoop(t *testing.T) {
	surface := &recordingSurface{}
	c := newFakeContainer(surface)
	r := Mount(c, seeded())

	if r.Phase() != state.Running {
		t.Fatalf("phase: got=%s want=Running", r.Phase())
	}
	if len(surface.resolutions) != 1 || surface.resolutions[0] != [3]float64{800, 600, 2} {
		t.Fatalf("resolution: got=%v", surface.resolutions)
	}
	if r.Field().Len() != len(config.DefaultPalette) {
		t.Fatalf("orbs: got=%d want=%d", r.Field().Len(), len(config.DefaultPalette))
	}
	if c.Pending() != 1 {
		t.Fatalf("pending frames: got=%d want=1", c.Pending())
	}
	if c.events.Count(event.SurfaceResized) != 1 {
		t.Fatalf("resize observer not registered")
	}
}

func TestFrameTicksThenRendersThenReschedules(t *testing.T) {
	surface := &recordingSurface{}
	c := newFakeContainer(surface)
	r := Mount(c, seeded())

	phases := make([]float64, r.Field().Len())
	for i, orb := range r.Field().Orbs() {
		phases[i] = orb.Phase
	}

	c.RunPending()

	if r.Frames() != 1 {
		t.Fatalf("frames: got=%d want=1", r.Frames())
	}
	for i, orb := range r.Field().Orbs() {
		if orb.Phase <= phases[i] {
			t.Fatalf("orb %d was not ticked", i)
		}
	}
	if c.Pending() != 1 {
		t.Fatalf("next frame not scheduled: pending=%d", c.Pending())
	}
	if len(surface.order) != 7 || surface.order[0] != "clear" {
		t.Fatalf("draw order: got=%v", surface.order)
	}
	if surface.clears[0] != [4]float64{0, 0, 800, 600} {
		t.Fatalf("clear rect: got=%v", surface.clears[0])
	}
}

func TestRenderFramePaintsOrbsInFieldOrderWithThreeStops(t *testing.T) {
	surface := &recordingSurface{}
	c := newFakeContainer(surface)
	r := Mount(c, seeded())

	r.RenderFrame()

	orbs := r.Field().Orbs()
	if len(surface.fills) != len(orbs) {
		t.Fatalf("fills: got=%d want=%d", len(surface.fills), len(orbs))
	}
	for i, fill := range surface.fills {
		orb := orbs[i]
		if fill.cx != orb.Position.X || fill.cy != orb.Position.Y || fill.r != orb.Radius {
			t.Fatalf("fill %d geometry: got=%+v orb=%+v", i, fill, orb)
		}
		if len(fill.stops) != 3 {
			t.Fatalf("fill %d stops: got=%d want=3", i, len(fill.stops))
		}
		inner, mid, outer := fill.stops[0], fill.stops[1], fill.stops[2]
		if inner.Offset != 0 || inner.Color != orb.Color {
			t.Fatalf("fill %d inner stop: %+v", i, inner)
		}
		if mid.Offset != config.MidStopOffset || mid.Color != render.WithAlpha(orb.Color, config.MidStopAlpha) {
			t.Fatalf("fill %d mid stop: %+v", i, mid)
		}
		if outer.Offset != 1 || outer.Color.A != 0 {
			t.Fatalf("fill %d outer stop: %+v", i, outer)
		}
	}
}

func TestDisposeIsIdempotentAndCancelsPendingFrame(t *testing.T) {
	host := headless.NewHost(320, 200, 1)
	r := Mount(host, seeded())
	host.Step(2)
	frames := r.Frames()

	r.Dispose()
	r.Dispose()

	if r.Phase() != state.Disposed {
		t.Fatalf("phase: got=%s want=Disposed", r.Phase())
	}
	if host.Pending() != 0 {
		t.Fatalf("pending frame survived dispose: %d", host.Pending())
	}
	if ran := host.Step(5); ran != 0 {
		t.Fatalf("callbacks after dispose: got=%d want=0", ran)
	}
	if r.Frames() != frames {
		t.Fatalf("frames advanced after dispose: %d -> %d", frames, r.Frames())
	}
	if host.Events().Count(event.SurfaceResized) != 0 || host.Events().Count(event.SurfaceClosed) != 0 {
		t.Fatalf("listeners left registered after dispose")
	}
}

func TestDisposeBeforeFirstFrame(t *testing.T) {
	host := headless.NewHost(320, 200, 1)
	r := Mount(host, seeded())
	r.Dispose()
	if ran := host.Step(1); ran != 0 {
		t.Fatalf("callbacks after dispose: got=%d want=0", ran)
	}
}

func TestStaleFrameCallbackDoesNothing(t *testing.T) {
	c := newFakeContainer(&recordingSurface{})
	r := Mount(c, seeded())
	r.lifecycle.Dispose()
	r.frame()
	if r.Frames() != 0 || c.Pending() != 1 {
		t.Fatalf("disposed frame callback must not tick or reschedule: frames=%d pending=%d", r.Frames(), c.Pending())
	}
}

func TestResizeUpdatesSurfaceAndFieldOnly(t *testing.T) {
	host := headless.NewHost(800, 600, 1)
	r := Mount(host, seeded())
	host.Step(1)
	before := make([]component.Orb, r.Field().Len())
	copy(before, r.Field().Orbs())

	host.Resize(400, 300, 2)

	if w, h := r.Field().Bounds(); w != 400 || h != 300 {
		t.Fatalf("field bounds: got=%vx%v want=400x300", w, h)
	}
	if b := host.Raster().Image().Bounds(); b.Dx() != 800 || b.Dy() != 600 {
		t.Fatalf("surface pixels: got=%v want=800x600", b)
	}
	for i := range before {
		if r.Field().Orbs()[i] != before[i] {
			t.Fatalf("orb %d moved by resize", i)
		}
	}
}

func TestHostCloseDisposesRenderer(t *testing.T) {
	host := headless.NewHost(320, 200, 1)
	r := Mount(host, seeded())
	host.Close()
	if r.Phase() != state.Disposed || host.Pending() != 0 {
		t.Fatalf("close must dispose: phase=%s pending=%d", r.Phase(), host.Pending())
	}
}

func TestMissingSurfaceSoftDegrades(t *testing.T) {
	host := headless.NewDetachedHost(320, 200)
	r := Mount(host, seeded())
	if r.Phase() != state.Idle || r.Field() != nil || host.Pending() != 0 {
		t.Fatalf("detached host must not start: phase=%s pending=%d", r.Phase(), host.Pending())
	}
	r.RenderFrame()
	r.Dispose()
	r.Dispose()
	if r.Phase() != state.Disposed {
		t.Fatalf("phase: got=%s want=Disposed", r.Phase())
	}

	nilMount := Mount(nil, Options{})
	nilMount.Dispose()
}

func TestFramesPaintPixelsAtOrbCentres(t *testing.T) {
	host := headless.NewHost(200, 200, 1)
	opts := Options{
		Palette: []component.PaletteEntry{{Color: color.NRGBA{R: 255, A: 255}, BaseRadius: 40}},
		Random:  utils.NewPRNGService(5),
		Tuning:  &system.Tuning{},
	}
	r := Mount(host, opts)
	host.Step(1)

	orb := r.Field().Orbs()[0]
	img := host.Raster().Image()
	c := img.RGBAAt(int(orb.Position.X), int(orb.Position.Y))
	if c.A == 0 || c.R == 0 {
		t.Fatalf("expected paint at orb centre %+v, got %v", orb.Position, c)
	}
}

func TestOptionsFromSettings(t *testing.T) {
	s := config.NewDefault()
	s.Seed = 3
	s.MaxDrift = 0.5
	opts, err := OptionsFromSettings(s)
	if err != nil {
		t.Fatalf("OptionsFromSettings: %v", err)
	}
	if len(opts.Palette) != len(s.Palette) || opts.Tuning.MaxDrift != 0.5 || opts.Random == nil {
		t.Fatalf("unexpected options: %+v", opts)
	}

	s.Palette = []config.PaletteSpec{{Hex: "bad", Alpha: 1, Radius: 1}}
	if _, err := OptionsFromSettings(s); err == nil {
		t.Fatalf("expected palette error")
	}
}
