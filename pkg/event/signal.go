// pkg/event/signal.go
package event

// Signal is an ordered list of callbacks for one kind of notification.
// Callbacks run synchronously in registration order. A callback may
// subscribe or unsubscribe during dispatch; the change applies from the
// next Emit.
//
// Signal is not safe for concurrent use.
type Signal[T any] struct {
	listeners []listener[T]
	nextID    uint64
}

type listener[T any] struct {
	id uint64
	fn func(T)
}

// Subscribe registers fn and returns a subscription whose Cancel removes it
func (s *Signal[T]) Subscribe(fn func(T)) *Subscription {
	s.nextID++
	id := s.nextID
	s.listeners = append(s.listeners, listener[T]{id: id, fn: fn})
	return &Subscription{
		ID:     id,
		Cancel: func() { s.unsubscribe(id) },
	}
}

func (s *Signal[T]) unsubscribe(id uint64) {
	for i, l := range s.listeners {
		if l.id == id {
			s.listeners = append(s.listeners[:i:i], s.listeners[i+1:]...)
			return
		}
	}
}

// Len returns the number of registered callbacks
func (s *Signal[T]) Len() int {
	return len(s.listeners)
}

// Emit calls every callback registered when Emit starts
func (s *Signal[T]) Emit(value T) {
	if len(s.listeners) == 0 {
		return
	}
	snapshot := make([]listener[T], len(s.listeners))
	copy(snapshot, s.listeners)
	for _, l := range snapshot {
		l.fn(value)
	}
}

// Clear removes every callback
func (s *Signal[T]) Clear() {
	s.listeners = nil
}
