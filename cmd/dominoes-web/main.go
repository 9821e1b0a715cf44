//go:build js && wasm

// Dominoes-web draws the tiles into the page's <canvas id="canvas"> element
// and redraws them on every animation frame.
package main

import (
	"log"
	"syscall/js"

	"github.com/phanxgames/dominoes"
)

const canvasID = "canvas"

func main() {
	game, surface, err := dominoes.NewCanvasGame(canvasID)
	if err != nil {
		log.Fatal(err)
	}

	var frame js.Func
	frame = js.FuncOf(func(this js.Value, args []js.Value) any {
		if err := surface.BeginFrame(); err != nil {
			log.Fatal(err)
		}
		if err := game.Render(); err != nil {
			log.Fatal(err)
		}
		js.Global().Call("requestAnimationFrame", frame)
		return nil
	})
	js.Global().Call("requestAnimationFrame", frame)

	// The handlers run on the JS event loop; keep the Go runtime alive.
	select {}
}
