package dominoes

import "sync"

// Position is the shared pointer coordinate. The (x, y) pair is written and
// read as one unit, so a reader never observes the X of one event with the Y
// of another. The zero value is (0, 0).
//
// Only the pointer tracker writes a Position; everything else reads it.
type Position struct {
	mu sync.RWMutex
	pt Point
}

// Load returns the most recently stored coordinate.
func (p *Position) Load() Point {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.pt
}

func (p *Position) store(x, y int) {
	p.mu.Lock()
	p.pt = Point{X: x, Y: y}
	p.mu.Unlock()
}

// pointerTracker keeps a Position current with the events of one source.
// The registration lives until stop is called.
type pointerTracker struct {
	pos     *Position
	handle  CallbackHandle
	observe func(PointerEvent)
	stopped bool
}

// trackPointer subscribes to source and writes each event's offsets into pos
// verbatim, without clamping. observe, if non-nil, runs after the write.
func trackPointer(source EventSource, pos *Position, observe func(PointerEvent)) *pointerTracker {
	t := &pointerTracker{pos: pos, observe: observe}
	t.handle = source.OnPointerMove(t.onMove)
	return t
}

func (t *pointerTracker) onMove(evt PointerEvent) {
	t.pos.store(evt.OffsetX, evt.OffsetY)
	if t.observe != nil {
		t.observe(evt)
	}
}

func (t *pointerTracker) stop() {
	if t.stopped {
		return
	}
	t.stopped = true
	t.handle.Remove()
}
