// internal/event/event.go
package event

// EventType — тип события
type EventType string

// Event — структура события
type Event struct {
	Type EventType
	Data interface{} // Данные события, если нужны
}

// Listener — интерфейс для подписчиков на события.
// Подписчик должен быть сравнимым значением (обычно указателем), иначе Unsubscribe его не найдёт.
type Listener interface {
	OnEvent(event Event)
}

// Dispatcher — диспетчер событий
type Dispatcher struct {
	listeners map[EventType][]Listener
}

// NewDispatcher — создаёт новый диспетчер
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[EventType][]Listener),
	}
}

// Subscribe — подписка на событие
func (d *Dispatcher) Subscribe(eventType EventType, listener Listener) {
	d.listeners[eventType] = append(d.listeners[eventType], listener)
}

// Unsubscribe — отписка от события. Повторная отписка ничего не делает.
func (d *Dispatcher) Unsubscribe(eventType EventType, listener Listener) {
	if listeners, exists := d.listeners[eventType]; exists {
		for i, l := range listeners {
			if l == listener {
				d.listeners[eventType] = append(listeners[:i:i], listeners[i+1:]...)
				break
			}
		}
	}
}

// Dispatch — отправка события всем подписчикам.
// Список копируется, чтобы подписчик мог отписаться прямо из OnEvent.
func (d *Dispatcher) Dispatch(event Event) {
	listeners := d.listeners[event.Type]
	if len(listeners) == 0 {
		return
	}
	snapshot := make([]Listener, len(listeners))
	copy(snapshot, listeners)
	for _, listener := range snapshot {
		listener.OnEvent(event)
	}
}

// Count — число подписчиков на тип события
func (d *Dispatcher) Count(eventType EventType) int {
	return len(d.listeners[eventType])
}
