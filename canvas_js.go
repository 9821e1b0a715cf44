//go:build js && wasm

package dominoes

import (
	"fmt"
	"syscall/js"
)

// CanvasSurface draws into an HTML canvas through its 2D context and
// delivers the canvas's mousemove events. It is both the Surface and the
// EventSource of a browser Game.
type CanvasSurface struct {
	Dispatcher

	canvas js.Value
	ctx    js.Value
	listen js.Func
}

// NewCanvasSurface resolves the canvas element with the given id and its 2D
// context, and installs a mousemove listener on it.
func NewCanvasSurface(id string) (*CanvasSurface, error) {
	doc := js.Global().Get("document")
	if !doc.Truthy() {
		return nil, fmt.Errorf("%w: no document", ErrSurfaceUnavailable)
	}
	canvas := doc.Call("getElementById", id)
	if !canvas.Truthy() {
		return nil, fmt.Errorf("%w: no element with id %q", ErrSurfaceUnavailable, id)
	}
	if !canvas.InstanceOf(js.Global().Get("HTMLCanvasElement")) {
		return nil, fmt.Errorf("%w: element %q is not a canvas", ErrSurfaceUnavailable, id)
	}
	ctx := canvas.Call("getContext", "2d")
	if !ctx.Truthy() {
		return nil, fmt.Errorf("%w: canvas %q has no 2d context", ErrSurfaceUnavailable, id)
	}

	s := &CanvasSurface{canvas: canvas, ctx: ctx}
	s.listen = js.FuncOf(func(this js.Value, args []js.Value) any {
		evt := args[0]
		s.DispatchPointerMove(evt.Get("offsetX").Int(), evt.Get("offsetY").Int())
		return nil
	})
	canvas.Call("addEventListener", "mousemove", s.listen)
	return s, nil
}

// Rect adds a rectangle subpath to the context's current path.
func (s *CanvasSurface) Rect(x, y, width, height float64) error {
	return jsCall(s.ctx, "rect", x, y, width, height)
}

// Stroke outlines the context's current path.
func (s *CanvasSurface) Stroke() error {
	return jsCall(s.ctx, "stroke")
}

// BeginFrame clears the canvas and starts a new path.
func (s *CanvasSurface) BeginFrame() error {
	w := s.canvas.Get("width").Float()
	h := s.canvas.Get("height").Float()
	if err := jsCall(s.ctx, "clearRect", 0, 0, w, h); err != nil {
		return err
	}
	return jsCall(s.ctx, "beginPath")
}

// Release removes the mousemove listener and frees its callback.
func (s *CanvasSurface) Release() {
	s.canvas.Call("removeEventListener", "mousemove", s.listen)
	s.listen.Release()
}

// jsCall invokes a method and turns a thrown JS exception into an error.
func jsCall(v js.Value, method string, args ...any) (err error) {
	defer func() {
		if r := recover(); r != nil {
			if jsErr, ok := r.(js.Error); ok {
				err = fmt.Errorf("%s: %w", method, jsErr)
				return
			}
			panic(r)
		}
	}()
	v.Call(method, args...)
	return nil
}

// NewCanvasGame binds a Game to the canvas with the given id. The canvas
// serves as both the drawing surface and the pointer source.
func NewCanvasGame(id string) (*Game, *CanvasSurface, error) {
	surface, err := NewCanvasSurface(id)
	if err != nil {
		return nil, nil, fmt.Errorf("dominoes: new game: %w", err)
	}
	g, err := New(surface, surface)
	if err != nil {
		surface.Release()
		return nil, nil, err
	}
	return g, surface, nil
}
