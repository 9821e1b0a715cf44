package dominoes

import (
	"fmt"
	"time"
)

// renderStats holds per-pass timing and draw-call metrics.
// Only populated when Game.debug is true.
type renderStats struct {
	renderTime  time.Duration
	rectCount   int
	strokeCount int
}

// debugLog prints render pass stats to the debug writer.
func (g *Game) debugLog(stats renderStats) {
	if !g.debug {
		return
	}
	_, _ = fmt.Fprintf(g.debugOut,
		"[dominoes] render: %v | tiles: %d | rects: %d | strokes: %d\n",
		stats.renderTime, len(g.tiles), stats.rectCount, stats.strokeCount)
}

// debugTrace logs one pointer event.
func (g *Game) debugTrace(evt PointerEvent) {
	_, _ = fmt.Fprintf(g.debugOut, "[dominoes] pointer moved: (%d, %d)\n", evt.OffsetX, evt.OffsetY)
}
