package dominoes

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// hudRefresh is how often the overlay text is redrawn, in seconds.
const hudRefresh = 0.5

// hud shows FPS, TPS and the pointer position in the top-left corner.
type hud struct {
	img        *ebiten.Image
	lastUpdate float64
	dirty      bool
}

func newHUD() *hud {
	// 120x48 is enough for "FPS: 60.0\nTPS: 60.0\nPointer: (-999, -999)"
	return &hud{img: ebiten.NewImage(120, 48), dirty: true}
}

// update redraws the overlay every hudRefresh seconds.
func (h *hud) update(dt float64, p Point) {
	h.lastUpdate += dt
	if !h.dirty && h.lastUpdate < hudRefresh {
		return
	}
	h.lastUpdate = 0
	h.dirty = false

	h.img.Clear()
	// Semi-transparent background for readability
	h.img.Fill(color.RGBA{0, 0, 0, 128})
	ebitenutil.DebugPrint(h.img, fmt.Sprintf("FPS: %.1f\nTPS: %.1f\nPointer: (%d, %d)",
		ebiten.ActualFPS(), ebiten.ActualTPS(), p.X, p.Y))
}

func (h *hud) draw(screen *ebiten.Image) {
	screen.DrawImage(h.img, nil)
}
