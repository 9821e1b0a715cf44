package dominoes

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// follower eases the render anchor toward the pointer. Each pointer move
// restarts the tweens from wherever the anchor currently is.
type follower struct {
	duration float32
	fn       ease.TweenFunc

	x, y   float64
	target Point
	tweens [2]*gween.Tween
	done   bool
}

func newFollower(start Point, duration float32, fn ease.TweenFunc) *follower {
	return &follower{
		duration: duration,
		fn:       fn,
		x:        float64(start.X),
		y:        float64(start.Y),
		target:   start,
		done:     true,
	}
}

// retarget starts new tweens from the current anchor to p.
func (f *follower) retarget(p Point) {
	f.target = p
	f.tweens[0] = gween.New(float32(f.x), float32(p.X), f.duration, f.fn)
	f.tweens[1] = gween.New(float32(f.y), float32(p.Y), f.duration, f.fn)
	f.done = false
}

// update advances both tweens by dt seconds and writes the anchor.
// Once finished the anchor snaps to the integer target.
func (f *follower) update(dt float32) {
	if f.done {
		return
	}
	vx, doneX := f.tweens[0].Update(dt)
	vy, doneY := f.tweens[1].Update(dt)
	f.x, f.y = float64(vx), float64(vy)
	if doneX && doneY {
		f.x, f.y = float64(f.target.X), float64(f.target.Y)
		f.done = true
	}
}

// SetFollow makes the render anchor ease toward the pointer over duration
// seconds using fn, advanced by Update. A duration <= 0 or a nil fn turns
// follow off, so tiles are drawn exactly at the pointer again.
func (g *Game) SetFollow(duration float32, fn ease.TweenFunc) {
	if duration <= 0 || fn == nil {
		g.follow = nil
		return
	}
	start := g.pointer.Load()
	if g.follow != nil {
		start = Point{X: int(g.follow.x), Y: int(g.follow.y)}
	}
	g.follow = newFollower(start, duration, fn)
}
