// internal/scheduler/scheduler.go
package scheduler

// FrameID identifies a requested frame callback. Zero is never issued.
type FrameID uint64

// Scheduler is the host's "run this before the next repaint" primitive.
type Scheduler interface {
	RequestFrame(cb func()) FrameID
	CancelFrame(id FrameID)
}

type pendingFrame struct {
	id FrameID
	cb func()
}

// Queue — однопоточная очередь кадров. Хост вызывает RunPending один раз
// за обновление экрана (ebiten Update, цикл raylib, headless Step).
// Не потокобезопасна: все вызовы должны идти из цикла хоста.
type Queue struct {
	nextID  FrameID
	pending []pendingFrame
}

var _ Scheduler = (*Queue)(nil)

func NewQueue() *Queue {
	return &Queue{}
}

// RequestFrame ставит колбэк на следующий RunPending.
func (q *Queue) RequestFrame(cb func()) FrameID {
	q.nextID++
	q.pending = append(q.pending, pendingFrame{id: q.nextID, cb: cb})
	return q.nextID
}

// CancelFrame снимает колбэк с очереди. Неизвестный или нулевой id игнорируется.
func (q *Queue) CancelFrame(id FrameID) {
	for i, f := range q.pending {
		if f.id == id {
			q.pending = append(q.pending[:i], q.pending[i+1:]...)
			return
		}
	}
}

// RunPending выполняет колбэки, стоявшие в очереди на момент вызова.
// Колбэки, запрошенные во время выполнения, ждут следующего вызова;
// отменённые по ходу — не выполняются. Возвращает число выполненных.
func (q *Queue) RunPending() int {
	if len(q.pending) == 0 {
		return 0
	}
	last := q.nextID
	ran := 0
	for {
		f, ok := q.popUpTo(last)
		if !ok {
			return ran
		}
		f.cb()
		ran++
	}
}

// Pending возвращает число ожидающих колбэков.
func (q *Queue) Pending() int {
	return len(q.pending)
}

func (q *Queue) popUpTo(last FrameID) (pendingFrame, bool) {
	if len(q.pending) == 0 || q.pending[0].id > last {
		return pendingFrame{}, false
	}
	f := q.pending[0]
	q.pending = q.pending[1:]
	return f, true
}
