package hexpop

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/vovakirdan/hexpop/internal/games/hexpop/hexgrid"
)

// fade animates a bubble that already left the field. Tween durations are
// measured in ticks.
type fade struct {
	bubble *hexgrid.Bubble
	scale  *gween.Tween
	fall   *gween.Tween // nil for pops
	baseY  float64
}

func newPopFade(b *hexgrid.Bubble) *fade {
	return &fade{
		bubble: b,
		scale:  gween.New(float32(b.Scale), 0, popTicks, ease.Linear),
		baseY:  b.Y,
	}
}

// newDropFade lets the bubble fall the given distance while it shrinks.
func newDropFade(b *hexgrid.Bubble, distance float64) *fade {
	return &fade{
		bubble: b,
		scale:  gween.New(float32(b.Scale), 0, dropTicks, ease.InQuad),
		fall:   gween.New(0, float32(distance), dropTicks, ease.InQuad),
		baseY:  b.Y,
	}
}

// update advances the animation one tick and reports whether it finished.
// A finished bubble is marked inactive.
func (f *fade) update() bool {
	s, done := f.scale.Update(1)
	f.bubble.Scale = float64(s)
	if f.fall != nil {
		dy, fallDone := f.fall.Update(1)
		f.bubble.Y = f.baseY + float64(dy)
		done = done && fallDone
	}
	if done {
		f.bubble.Active = false
		f.bubble.Scale = 0
	}
	return done
}

// beam is the fading trace of a laser shot.
type beam struct {
	from, to hexgrid.Point
	ticks    int
}

func newBeam(from, to hexgrid.Point) *beam {
	return &beam{from: from, to: to, ticks: beamTicks}
}

// updateAnimations advances every running effect and drops the finished ones.
func (g *Game) updateAnimations() {
	live := g.fading[:0]
	for _, f := range g.fading {
		if !f.update() {
			live = append(live, f)
		}
	}
	for i := len(live); i < len(g.fading); i++ {
		g.fading[i] = nil
	}
	g.fading = live

	if g.beam != nil {
		g.beam.ticks--
		if g.beam.ticks <= 0 {
			g.beam = nil
		}
	}
}

// Animating reports whether any popped or dropped bubble is still on screen.
func (g *Game) Animating() bool {
	return len(g.fading) > 0 || g.beam != nil
}
