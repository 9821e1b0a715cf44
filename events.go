package dominoes

import "sync"

// PointerEvent is a pointer-movement notification. Offsets are relative to
// the drawing surface's origin, not the screen.
type PointerEvent struct {
	OffsetX int
	OffsetY int
}

// EventSource delivers pointer-movement notifications for a drawing surface.
type EventSource interface {
	// OnPointerMove registers fn to be called for every movement event.
	OnPointerMove(fn func(PointerEvent)) CallbackHandle
}

// EntityStore is the interface for optional ECS integration.
// When set on a Game, pointer events are forwarded to the ECS after the
// pointer position has been updated.
type EntityStore interface {
	EmitPointerMove(event PointerEvent)
}

// --- Handler registry ---

type pointerHandler struct {
	id uint32
	fn func(PointerEvent)
}

type handlerRegistry struct {
	mu          sync.Mutex
	pointerMove []pointerHandler
	nextID      uint32
}

func (r *handlerRegistry) add(fn func(PointerEvent)) uint32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	r.pointerMove = append(r.pointerMove, pointerHandler{id: r.nextID, fn: fn})
	return r.nextID
}

func (r *handlerRegistry) remove(id uint32) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s := r.pointerMove
	for i := range s {
		if s[i].id == id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = pointerHandler{}
			r.pointerMove = s[:len(s)-1]
			return
		}
	}
}

// snapshot returns the handlers registered right now. Handlers added or
// removed while an event is being dispatched take effect on the next event.
func (r *handlerRegistry) snapshot() []pointerHandler {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]pointerHandler(nil), r.pointerMove...)
}

func (r *handlerRegistry) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.pointerMove)
}

// CallbackHandle allows removing a registered pointer callback.
type CallbackHandle struct {
	id  uint32
	reg *handlerRegistry
}

// Remove unregisters this callback so it no longer fires.
// Calling Remove on a zero handle or more than once is a no-op.
func (h CallbackHandle) Remove() {
	if h.reg == nil {
		return
	}
	h.reg.remove(h.id)
}

// Dispatcher is an in-process EventSource. Platform backends embed it and
// call DispatchPointerMove from their native event hooks.
type Dispatcher struct {
	handlers handlerRegistry
}

// NewDispatcher creates a Dispatcher with no handlers.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{}
}

// OnPointerMove registers a callback for pointer movement events.
func (d *Dispatcher) OnPointerMove(fn func(PointerEvent)) CallbackHandle {
	id := d.handlers.add(fn)
	return CallbackHandle{id: id, reg: &d.handlers}
}

// DispatchPointerMove delivers a movement event at (x, y) to every handler,
// in registration order.
func (d *Dispatcher) DispatchPointerMove(x, y int) {
	evt := PointerEvent{OffsetX: x, OffsetY: y}
	for _, h := range d.handlers.snapshot() {
		h.fn(evt)
	}
}

// HandlerCount returns the number of registered pointer handlers.
func (d *Dispatcher) HandlerCount() int {
	return d.handlers.count()
}
