package event

import "testing"

type recorder struct {
	events  []Event
	onEvent func(Event)
}

func (r *recorder) OnEvent(e Event) {
	r.events = append(r.events, e)
	if r.onEvent != nil {
		r.onEvent(e)
	}
}

func TestDispatchReachesSubscribers(t *testing.T) {
	d := NewDispatcher()
	a, b := &recorder{}, &recorder{}
	d.Subscribe(SurfaceResized, a)
	d.Subscribe(SurfaceResized, b)
	d.Subscribe(SurfaceClosed, b)

	d.Dispatch(Event{Type: SurfaceResized, Data: ResizeData{Width: 400, Height: 300, Scale: 2}})

	if len(a.events) != 1 || len(b.events) != 1 {
		t.Fatalf("deliveries: a=%d b=%d want 1 each", len(a.events), len(b.events))
	}
	if data := a.events[0].Data.(ResizeData); data.Width != 400 || data.Scale != 2 {
		t.Fatalf("payload: got=%+v", data)
	}
}

func TestUnsubscribeStopsDelivery(t *testing.T) {
	d := NewDispatcher()
	a := &recorder{}
	d.Subscribe(SurfaceResized, a)
	d.Unsubscribe(SurfaceResized, a)
	d.Unsubscribe(SurfaceResized, a)
	d.Dispatch(Event{Type: SurfaceResized})
	if len(a.events) != 0 {
		t.Fatalf("unsubscribed listener received %d events", len(a.events))
	}
	if d.Count(SurfaceResized) != 0 {
		t.Fatalf("count: got=%d want=0", d.Count(SurfaceResized))
	}
}

func TestUnsubscribeDuringDispatch(t *testing.T) {
	d := NewDispatcher()
	b := &recorder{}
	a := &recorder{}
	a.onEvent = func(Event) { d.Unsubscribe(SurfaceClosed, a) }
	d.Subscribe(SurfaceClosed, a)
	d.Subscribe(SurfaceClosed, b)

	d.Dispatch(Event{Type: SurfaceClosed})
	d.Dispatch(Event{Type: SurfaceClosed})

	if len(a.events) != 1 {
		t.Fatalf("a: got=%d want=1", len(a.events))
	}
	if len(b.events) != 2 {
		t.Fatalf("b: got=%d want=2", len(b.events))
	}
}
