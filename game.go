package dominoes

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Game holds the tile collection and the pointer position, and draws the
// tiles onto a borrowed Surface.
//
// Pointer events update the position as they arrive; Render reads it. Both
// are expected to run on the host's event thread, but the position is safe
// to update from another goroutine as well.
type Game struct {
	tiles   []Tile
	surface Surface
	pointer Position
	tracker *pointerTracker

	store  EntityStore
	follow *follower

	debug    bool
	debugOut io.Writer
	stats    renderStats
}

// New creates a Game with the default tile set and the pointer at (0, 0),
// and starts tracking pointer movement from source.
//
// The surface must already be bound to a valid 2D context; New does not
// validate it beyond rejecting nil. The registration on source stays active
// until Close.
func New(surface Surface, source EventSource) (*Game, error) {
	if surface == nil {
		return nil, fmt.Errorf("dominoes: new game: %w", ErrNoSurface)
	}
	if source == nil {
		return nil, fmt.Errorf("dominoes: new game: %w", ErrNoEventSource)
	}
	g := &Game{
		tiles:    DefaultTiles(),
		surface:  surface,
		debugOut: os.Stderr,
	}
	g.tracker = trackPointer(source, &g.pointer, g.observePointer)
	return g, nil
}

// observePointer runs after each position update.
func (g *Game) observePointer(evt PointerEvent) {
	if g.debug {
		g.debugTrace(evt)
	}
	if g.store != nil {
		g.store.EmitPointerMove(evt)
	}
}

// Tiles returns a copy of the tile collection in draw order.
func (g *Game) Tiles() []Tile {
	return append([]Tile(nil), g.tiles...)
}

// Pointer returns the last pointer position observed.
func (g *Game) Pointer() Point {
	return g.pointer.Load()
}

// Update advances time-based state by dt seconds. Only the anchor follow
// animation depends on it; with follow disabled Update does nothing.
func (g *Game) Update(dt float32) {
	if g.follow == nil {
		return
	}
	if p := g.pointer.Load(); p != g.follow.target {
		g.follow.retarget(p)
	}
	g.follow.update(dt)
}

// Close stops pointer tracking. The Game must not be used afterwards.
// Calling Close more than once is a no-op.
func (g *Game) Close() {
	g.tracker.stop()
}

// SetEntityStore sets the optional ECS bridge. Pass nil to detach it.
func (g *Game) SetEntityStore(store EntityStore) {
	g.store = store
}

// SetDebugMode enables or disables debug mode. When enabled, every pointer
// event and every render pass is logged to stderr.
func (g *Game) SetDebugMode(enabled bool) {
	g.debug = enabled
}

// String lists every tile in draw order.
func (g *Game) String() string {
	var b strings.Builder
	for _, t := range g.tiles {
		b.WriteString(t.String())
	}
	return b.String()
}
