package hearth

import (
	"sync"

	"github.com/akmonengine/hearth/ambient"
)

const (
	POINTER_MOVE EventType = iota
	KEY_DOWN
	KEY_UP
	RESIZE
	FRAME
)

type EventType uint8

// Event interface - all events implement this
type Event interface {
	Type() EventType
}

// Input events, forwarded by the host platform

// PointerMoveEvent carries a pointer position in pixels and the viewport size
type PointerMoveEvent struct {
	X, Y          float64
	Width, Height float64
}

func (e PointerMoveEvent) Type() EventType { return POINTER_MOVE }

type KeyDownEvent struct {
	Key string
}

func (e KeyDownEvent) Type() EventType { return KEY_DOWN }

type KeyUpEvent struct {
	Key string
}

func (e KeyUpEvent) Type() EventType { return KEY_UP }

// ResizeEvent reports a new viewport size. PixelAspect is the height/width
// ratio of one pixel: 1 for square pixels, about 2 for terminal cells.
type ResizeEvent struct {
	Width, Height int
	PixelAspect   float64
}

func (e ResizeEvent) Type() EventType { return RESIZE }

// FrameEvent is published after every completed tick
type FrameEvent struct {
	Tick    uint64
	Elapsed float64
	Delta   float64
	Ambient ambient.State
}

func (e FrameEvent) Type() EventType { return FRAME }

// EventListener - callback for events
type EventListener func(event Event)

type subscriber struct {
	id       uint64
	listener EventListener
}

// Events manager. Dispatch may run on a different goroutine than Subscribe.
type Events struct {
	mu sync.RWMutex
	// Listeners by event type, in subscription order
	listeners map[EventType][]subscriber
	nextID    uint64
}

func NewEvents() *Events {
	return &Events{
		listeners: make(map[EventType][]subscriber),
	}
}

// Subscription is returned by Subscribe. Unsubscribe is idempotent.
type Subscription struct {
	events    *Events
	eventType EventType
	id        uint64
	once      sync.Once
}

// Subscribe adds a listener for an event type
func (e *Events) Subscribe(eventType EventType, listener EventListener) *Subscription {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.nextID++
	e.listeners[eventType] = append(e.listeners[eventType], subscriber{id: e.nextID, listener: listener})

	return &Subscription{events: e, eventType: eventType, id: e.nextID}
}

// Unsubscribe removes the listener. It reports whether this call removed it.
func (s *Subscription) Unsubscribe() bool {
	removed := false
	s.once.Do(func() {
		removed = s.events.remove(s.eventType, s.id)
	})

	return removed
}

func (e *Events) remove(eventType EventType, id uint64) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	subscribers := e.listeners[eventType]
	for i, sub := range subscribers {
		if sub.id == id {
			e.listeners[eventType] = append(subscribers[:i:i], subscribers[i+1:]...)
			return true
		}
	}

	return false
}

// Count returns the number of listeners for an event type
func (e *Events) Count(eventType EventType) int {
	e.mu.RLock()
	defer e.mu.RUnlock()

	return len(e.listeners[eventType])
}

// Dispatch sends the event to its listeners synchronously.
// Listeners may subscribe or unsubscribe while being called.
func (e *Events) Dispatch(event Event) {
	e.mu.RLock()
	subscribers := e.listeners[event.Type()]
	e.mu.RUnlock()

	for _, sub := range subscribers {
		sub.listener(event)
	}
}
