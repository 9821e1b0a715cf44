// Package dominoes draws a set of domino tiles that follows the pointer.
//
// A [Game] owns a fixed set of [Tile] values and the last pointer position
// seen on its [EventSource]. [Game.Render] outlines every tile at that
// position on a [Surface]. The Game only borrows the surface and the event
// source; backends are provided for Ebitengine ([ImageSurface],
// [CursorInput]) and, under js/wasm, for an HTML canvas (CanvasSurface).
//
// # Quick start
//
// [Run] opens a window and drives the loop:
//
//	cfg := dominoes.DefaultRunConfig()
//	if err := dominoes.Run(cfg); err != nil {
//		log.Fatal(err)
//	}
//
// To drive the core yourself, supply any Surface and EventSource:
//
//	events := dominoes.NewDispatcher()
//	game, err := dominoes.New(surface, events)
//	if err != nil {
//		return err
//	}
//	events.DispatchPointerMove(37, 52)
//	if err := game.Render(); err != nil {
//		return err
//	}
//
// # Ordering
//
// Pointer events and render passes are expected to run on one thread, and
// the (x, y) pair is stored atomically so the package also holds up when
// events arrive from another goroutine. A render pass reads the position
// once, so every tile in a pass shares the same anchor.
//
// # Testing
//
// [CursorInput.InjectMove] and [CursorInput.InjectPath] queue synthetic
// pointer moves, and a [TestRunner] loaded from a JSON script plays moves,
// waits and screenshots across frames.
package dominoes
