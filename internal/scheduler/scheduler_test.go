package scheduler

import "testing"

func TestQueueRunsRequestedFramesOnce(t *testing.T) {
	q := NewQueue()
	calls := 0
	q.RequestFrame(func() { calls++ })
	if got := q.RunPending(); got != 1 {
		t.Fatalf("ran: got=%d want=1", got)
	}
	if got := q.RunPending(); got != 0 {
		t.Fatalf("second run: got=%d want=0", got)
	}
	if calls != 1 {
		t.Fatalf("calls: got=%d want=1", calls)
	}
}

func TestQueueDefersFramesRequestedDuringRun(t *testing.T) {
	q := NewQueue()
	calls := 0
	var loop func()
	loop = func() {
		calls++
		q.RequestFrame(loop)
	}
	q.RequestFrame(loop)

	for i := 1; i <= 3; i++ {
		q.RunPending()
		if calls != i {
			t.Fatalf("after run %d: calls=%d", i, calls)
		}
		if q.Pending() != 1 {
			t.Fatalf("after run %d: pending=%d want=1", i, q.Pending())
		}
	}
}

func TestQueueCancelFrame(t *testing.T) {
	q := NewQueue()
	ran := false
	id := q.RequestFrame(func() { ran = true })
	q.CancelFrame(id)
	q.CancelFrame(id)
	q.CancelFrame(0)
	q.RunPending()
	if ran {
		t.Fatalf("cancelled frame must not run")
	}
}

func TestQueueCancelFromInsideCallback(t *testing.T) {
	q := NewQueue()
	secondRan := false
	var second FrameID
	q.RequestFrame(func() { q.CancelFrame(second) })
	second = q.RequestFrame(func() { secondRan = true })

	if got := q.RunPending(); got != 1 {
		t.Fatalf("ran: got=%d want=1", got)
	}
	if secondRan {
		t.Fatalf("frame cancelled mid-run must not execute")
	}
}

func TestQueueIDsAreUniqueAndNonZero(t *testing.T) {
	q := NewQueue()
	seen := map[FrameID]bool{}
	for i := 0; i < 100; i++ {
		id := q.RequestFrame(func() {})
		if id == 0 || seen[id] {
			t.Fatalf("bad id %d", id)
		}
		seen[id] = true
	}
}
