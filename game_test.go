package dominoes

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

// drawCall is one call recorded by recordingSurface.
type drawCall struct {
	op         string // "rect" or "stroke"
	x, y, w, h float64
}

// recordingSurface records every call it receives.
type recordingSurface struct {
	calls []drawCall
}

func (s *recordingSurface) Rect(x, y, w, h float64) error {
	s.calls = append(s.calls, drawCall{op: "rect", x: x, y: y, w: w, h: h})
	return nil
}

func (s *recordingSurface) Stroke() error {
	s.calls = append(s.calls, drawCall{op: "stroke"})
	return nil
}

func (s *recordingSurface) reset() {
	s.calls = s.calls[:0]
}

// failingSurface fails the stroke after okStrokes successful ones.
type failingSurface struct {
	recordingSurface
	okStrokes int
	err       error
}

func (s *failingSurface) Stroke() error {
	if s.okStrokes == 0 {
		return s.err
	}
	s.okStrokes--
	return s.recordingSurface.Stroke()
}

type recordingStore struct {
	events []PointerEvent
}

func (s *recordingStore) EmitPointerMove(e PointerEvent) {
	s.events = append(s.events, e)
}

func newTestGame(t *testing.T) (*Game, *recordingSurface, *Dispatcher) {
	t.Helper()
	surface := &recordingSurface{}
	events := NewDispatcher()
	g, err := New(surface, events)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return g, surface, events
}

func TestNewGame(t *testing.T) {
	g, _, events := newTestGame(t)

	tiles := g.Tiles()
	if len(tiles) != 10 {
		t.Fatalf("tile count = %d, want 10", len(tiles))
	}
	for i, tile := range tiles {
		if tile != (Tile{Top: One, Bottom: Five}) {
			t.Errorf("tile %d = %v, want {One Five}", i, tile)
		}
	}
	if p := g.Pointer(); p != (Point{0, 0}) {
		t.Errorf("pointer = %+v, want (0, 0)", p)
	}
	if n := events.HandlerCount(); n != 1 {
		t.Errorf("registered handlers = %d, want 1", n)
	}
}

func TestNewGameSetupErrors(t *testing.T) {
	tests := []struct {
		name    string
		surface Surface
		source  EventSource
		want    error
	}{
		{"nil surface", nil, NewDispatcher(), ErrNoSurface},
		{"nil source", &recordingSurface{}, nil, ErrNoEventSource},
		{"both nil", nil, nil, ErrNoSurface},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := New(tt.surface, tt.source)
			if !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
			if g != nil {
				t.Error("game should be nil on setup failure")
			}
		})
	}
}

func TestPointerMoveScenario(t *testing.T) {
	g, _, events := newTestGame(t)
	events.DispatchPointerMove(37, 52)
	if p := g.Pointer(); p != (Point{37, 52}) {
		t.Errorf("pointer = %+v, want (37, 52)", p)
	}
}

func TestTilesReturnsCopy(t *testing.T) {
	g, _, _ := newTestGame(t)
	tiles := g.Tiles()
	tiles[0] = Tile{Top: Six, Bottom: Six}
	if g.Tiles()[0] != (Tile{Top: One, Bottom: Five}) {
		t.Error("mutating Tiles() result should not affect the game")
	}
}

func TestGameString(t *testing.T) {
	g, _, _ := newTestGame(t)
	want := strings.Repeat("{One Five}", 10)
	if got := g.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestGameClose(t *testing.T) {
	g, _, events := newTestGame(t)
	events.DispatchPointerMove(5, 6)
	g.Close()
	g.Close()
	events.DispatchPointerMove(50, 60)

	if p := g.Pointer(); p != (Point{5, 6}) {
		t.Errorf("pointer = %+v after Close, want (5, 6)", p)
	}
	if n := events.HandlerCount(); n != 0 {
		t.Errorf("handlers = %d after Close, want 0", n)
	}
}

func TestGameEntityStore(t *testing.T) {
	g, _, events := newTestGame(t)
	store := &recordingStore{}
	g.SetEntityStore(store)

	events.DispatchPointerMove(1, 2)
	events.DispatchPointerMove(-3, 4)

	if len(store.events) != 2 {
		t.Fatalf("store got %d events, want 2", len(store.events))
	}
	if store.events[1] != (PointerEvent{OffsetX: -3, OffsetY: 4}) {
		t.Errorf("event 1 = %+v", store.events[1])
	}

	g.SetEntityStore(nil)
	events.DispatchPointerMove(9, 9)
	if len(store.events) != 2 {
		t.Error("detached store should not receive events")
	}
}

func TestGameDebugTrace(t *testing.T) {
	g, _, events := newTestGame(t)
	var buf bytes.Buffer
	g.debugOut = &buf

	events.DispatchPointerMove(1, 1)
	if buf.Len() != 0 {
		t.Errorf("trace written with debug off: %q", buf.String())
	}

	g.SetDebugMode(true)
	events.DispatchPointerMove(37, 52)
	if got := buf.String(); got != "[dominoes] pointer moved: (37, 52)\n" {
		t.Errorf("trace = %q", got)
	}
	if p := g.Pointer(); p != (Point{37, 52}) {
		t.Errorf("pointer = %+v, want (37, 52)", p)
	}
}
