package dominoes

// syntheticPointerEvent represents a single injected pointer move.
// Screen coordinates are used, identical to real mouse input.
type syntheticPointerEvent struct {
	x, y int
}

// InjectMove queues a pointer move to (x, y). The event is consumed on the
// next Update call, one event per tick.
func (in *CursorInput) InjectMove(x, y int) {
	in.injectQueue = append(in.injectQueue, syntheticPointerEvent{x: x, y: y})
}

// InjectPath queues a straight pointer path from (fromX, fromY) to
// (toX, toY) spread over frames ticks, endpoints included. Minimum frames
// is 2.
func (in *CursorInput) InjectPath(fromX, fromY, toX, toY, frames int) {
	if frames < 2 {
		frames = 2
	}
	in.InjectMove(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		x := float64(fromX) + float64(toX-fromX)*t
		y := float64(fromY) + float64(toY-fromY)*t
		in.InjectMove(int(x), int(y))
	}
	in.InjectMove(toX, toY)
}

// processInjectedInput pops one event from the inject queue and dispatches
// it. Returns true if an event was consumed (real input is skipped).
func (in *CursorInput) processInjectedInput() bool {
	if len(in.injectQueue) == 0 {
		return false
	}
	evt := in.injectQueue[0]
	copy(in.injectQueue, in.injectQueue[1:])
	in.injectQueue = in.injectQueue[:len(in.injectQueue)-1]

	in.move(evt.x, evt.y)
	return true
}
