package dominoes

import "github.com/hajimehoshi/ebiten/v2"

// CursorInput is an EventSource fed by ebiten's cursor and touch state.
// Call Update once per tick; it dispatches a pointer move whenever the
// pointer lands somewhere new.
//
// Coordinates come from ebiten.CursorPosition, which is already relative to
// the game screen's origin.
type CursorInput struct {
	Dispatcher

	// last dispatched position
	lastX, lastY int
	// last real cursor reading, so injected moves are not undone by a
	// stationary mouse on the next tick
	cursorX, cursorY int

	touchIDs    []ebiten.TouchID
	injectQueue []syntheticPointerEvent
}

// NewCursorInput creates a CursorInput with the pointer assumed at (0, 0).
func NewCursorInput() *CursorInput {
	return &CursorInput{}
}

// Update polls the pointer and dispatches at most one move event. A queued
// synthetic event takes precedence over real input for the tick it is
// consumed in.
func (in *CursorInput) Update() {
	if in.processInjectedInput() {
		return
	}

	x, y := ebiten.CursorPosition()
	if x == in.cursorX && y == in.cursorY {
		// Mouse idle; a touch may still be moving.
		in.touchIDs = ebiten.AppendTouchIDs(in.touchIDs[:0])
		if len(in.touchIDs) == 0 {
			return
		}
		x, y = ebiten.TouchPosition(in.touchIDs[0])
	} else {
		in.cursorX, in.cursorY = x, y
	}
	in.move(x, y)
}

// move dispatches (x, y) if it differs from the last dispatched position.
func (in *CursorInput) move(x, y int) {
	if x == in.lastX && y == in.lastY {
		return
	}
	in.lastX, in.lastY = x, y
	in.DispatchPointerMove(x, y)
}

// Pending returns the number of synthetic events not yet consumed.
func (in *CursorInput) Pending() int {
	return len(in.injectQueue)
}
