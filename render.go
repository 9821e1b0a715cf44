package dominoes

import (
	"fmt"
	"time"
)

// Render draws every tile as a TileSize x TileSize outline with its top-left
// corner at the current anchor, in tile order. Each tile gets its own Rect
// followed by a Stroke.
//
// All tiles share one anchor, so they are drawn on top of each other. The
// anchor is the pointer position, or the eased follow position when follow
// is enabled. It is read once per pass.
//
// Render never modifies the Game. The first surface error aborts the pass
// and is returned.
func (g *Game) Render() error {
	var t0 time.Time
	if g.debug {
		t0 = time.Now()
		g.stats = renderStats{}
	}

	x, y := g.anchor()
	for i := range g.tiles {
		if err := g.surface.Rect(x, y, TileSize, TileSize); err != nil {
			return fmt.Errorf("render tile %d: %w", i, err)
		}
		if err := g.surface.Stroke(); err != nil {
			return fmt.Errorf("render tile %d: %w", i, err)
		}
		if g.debug {
			g.stats.rectCount++
			g.stats.strokeCount++
		}
	}

	if g.debug {
		g.stats.renderTime = time.Since(t0)
		g.debugLog(g.stats)
	}
	return nil
}

// anchor returns the top-left corner shared by every tile this pass.
func (g *Game) anchor() (float64, float64) {
	if g.follow != nil {
		return g.follow.x, g.follow.y
	}
	p := g.pointer.Load()
	return float64(p.X), float64(p.Y)
}
