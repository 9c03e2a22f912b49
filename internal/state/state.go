// internal/state/state.go
package state

import (
	"errors"
	"fmt"
)

// Phase — состояние цикла анимации
type Phase int

const (
	Idle     Phase = iota // Создан, кадры ещё не запрашивались
	Running               // Каждый кадр: тик → отрисовка → следующий кадр
	Disposed              // Конечное состояние
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "Idle"
	case Running:
		return "Running"
	case Disposed:
		return "Disposed"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

var (
	ErrLifecycleClosed   = errors.New("state: lifecycle disposed")
	ErrInvalidTransition = errors.New("state: invalid transition")
)

// Lifecycle — машина состояний Idle → Running → Disposed.
// Из Disposed выхода нет: для нового запуска нужен новый Lifecycle.
type Lifecycle struct {
	phase Phase
}

// NewLifecycle создаёт машину состояний в Idle
func NewLifecycle() *Lifecycle {
	return &Lifecycle{phase: Idle}
}

func (l *Lifecycle) Phase() Phase {
	return l.phase
}

func (l *Lifecycle) Running() bool {
	return l.phase == Running
}

// Start переводит Idle → Running
func (l *Lifecycle) Start() error {
	switch l.phase {
	case Idle:
		l.phase = Running
		return nil
	case Disposed:
		return ErrLifecycleClosed
	default:
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, l.phase, Running)
	}
}

// Dispose переводит в Disposed из любого состояния.
// Возвращает true только при первом вызове.
func (l *Lifecycle) Dispose() bool {
	if l.phase == Disposed {
		return false
	}
	l.phase = Disposed
	return true
}
