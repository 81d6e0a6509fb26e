// pkg/event/event.go
package event

import (
	"sync"
)

// Type represents the type of event
type Type string

// Collision system event types
const (
	ObjectAdded    Type = "object_added"
	ObjectRemoved  Type = "object_removed"
	ContactStarted Type = "contact_started"
	ContactEnded   Type = "contact_ended"
)

// Event is the base interface for all events
type Event interface {
	GetType() Type
	GetSource() interface{}
}

// BaseEvent provides common functionality for all events
type BaseEvent struct {
	EventType Type
	Source    interface{}
}

// GetType returns the event type
func (e *BaseEvent) GetType() Type {
	return e.EventType
}

// GetSource returns the event source
func (e *BaseEvent) GetSource() interface{} {
	return e.Source
}

// Handler is a function that handles events
type Handler func(Event)

// Subscription identifies a registered handler. Cancel removes it and is
// safe to call more than once.
type Subscription struct {
	ID     uint64
	Cancel func()
}

type subscriber struct {
	id      uint64
	handler Handler
}

// Bus manages event subscriptions and dispatching
type Bus struct {
	handlers map[Type][]subscriber
	nextID   uint64
	mu       sync.RWMutex
}

// NewEventBus creates a new event bus
func NewEventBus() *Bus {
	return &Bus{
		handlers: make(map[Type][]subscriber),
		nextID:   1,
	}
}

// Subscribe registers a handler for a specific event type
func (b *Bus) Subscribe(eventType Type, handler Handler) *Subscription {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.nextID
	b.nextID++
	b.handlers[eventType] = append(b.handlers[eventType], subscriber{id: id, handler: handler})

	return &Subscription{
		ID:     id,
		Cancel: func() { b.unsubscribe(eventType, id) },
	}
}

func (b *Bus) unsubscribe(eventType Type, id uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()

	handlers := b.handlers[eventType]
	for i, s := range handlers {
		if s.id == id {
			b.handlers[eventType] = append(handlers[:i:i], handlers[i+1:]...)
			break
		}
	}
	if len(b.handlers[eventType]) == 0 {
		delete(b.handlers, eventType)
	}
}

// Publish sends an event to all subscribed handlers. Handlers may cancel
// subscriptions while the event is being dispatched.
func (b *Bus) Publish(event Event) {
	b.mu.RLock()
	handlers := b.handlers[event.GetType()]
	snapshot := make([]subscriber, len(handlers))
	copy(snapshot, handlers)
	b.mu.RUnlock()

	for _, s := range snapshot {
		s.handler(event)
	}
}

// ObjectEvent is published when a collision object enters or leaves a
// collision handler
type ObjectEvent struct {
	BaseEvent
	ObjectID uint64
}

// NewObjectEvent creates a new object event
func NewObjectEvent(eventType Type, source interface{}, objectID uint64) *ObjectEvent {
	return &ObjectEvent{
		BaseEvent: BaseEvent{
			EventType: eventType,
			Source:    source,
		},
		ObjectID: objectID,
	}
}

// ContactEvent is published when two collision objects start or stop
// touching. It is sent once per ordered pair.
type ContactEvent struct {
	BaseEvent
	SelfID  uint64
	OtherID uint64
}

// NewContactEvent creates a new contact event
func NewContactEvent(eventType Type, source interface{}, selfID, otherID uint64) *ContactEvent {
	return &ContactEvent{
		BaseEvent: BaseEvent{
			EventType: eventType,
			Source:    source,
		},
		SelfID:  selfID,
		OtherID: otherID,
	}
}
