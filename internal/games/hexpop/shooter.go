package hexpop

import (
	"math"

	"github.com/vovakirdan/hexpop/internal/core"
	"github.com/vovakirdan/hexpop/internal/games/hexpop/hexgrid"
)

const (
	traceStep     = 6   // Pixels between aim guide samples
	traceSamples  = 200 // Upper bound on guide length
	traceHitScale = 2.2 // Guide stops this many radii from a bubble
	laserReach    = 1.5 // Beam length as a multiple of the shooter height
)

// origin returns the shooter position.
func (g *Game) origin() hexgrid.Point {
	return hexgrid.Point{X: g.layout.Width() / 2, Y: g.cfg.Shooter.Y}
}

// aimLimits returns the allowed aim range. The shooter never points
// horizontally or downward.
func (g *Game) aimLimits() (lo, hi float64) {
	m := g.cfg.Shooter.AimMargin
	return -math.Pi + m, -m
}

// turn rotates the aim by one step; dir is -1 for left and 1 for right.
func (g *Game) turn(dir int) {
	lo, hi := g.aimLimits()
	g.aim = core.ClampF(g.aim+float64(dir)*g.cfg.Shooter.AimStep, lo, hi)
}

// fire shoots the loaded bubble. Lasers resolve instantly; anything else
// becomes a projectile.
func (g *Game) fire() {
	color := g.popQueue()
	g.stats.Shots++

	if color == hexgrid.ColorLaser {
		g.fireLaser()
		return
	}

	o := g.origin()
	g.projectile = &projectile{
		X:     o.X,
		Y:     o.Y,
		VX:    math.Cos(g.aim) * g.cfg.Shooter.Speed,
		VY:    math.Sin(g.aim) * g.cfg.Shooter.Speed,
		Color: color,
	}
}

// advanceProjectile moves the projectile one tick, bouncing off the side
// walls, and lands it on the ceiling or the first bubble it touches.
func (g *Game) advanceProjectile() {
	p := g.projectile
	r := g.layout.Radius
	w := g.layout.Width()

	p.X += p.VX
	p.Y += p.VY

	if p.X < r || p.X > w-r {
		p.VX = -p.VX
		p.X = core.ClampF(p.X, r, w-r)
	}

	if p.Y < r || g.layout.FirstContact(p.pos(), g.field.Bubbles()) != nil {
		g.projectile = nil
		g.land(p)
	}
}

// AimPath samples the guide line from the shooter along the current aim.
// Ordinary shots show one wall bounce; lasers go straight.
func (g *Game) AimPath() []hexgrid.Point {
	r := g.layout.Radius
	w := g.layout.Width()

	maxBounces := 1
	if g.loaded() == hexgrid.ColorLaser {
		maxBounces = 0
	}

	cur := g.origin()
	dx, dy := math.Cos(g.aim), math.Sin(g.aim)
	bubbles := g.field.Bubbles()
	reach := traceHitScale * r

	var path []hexgrid.Point
	bounces := 0
	for i := 0; i < traceSamples; i++ {
		next := hexgrid.Point{X: cur.X + dx*traceStep, Y: cur.Y + dy*traceStep}

		if (next.X < r && dx < 0) || (next.X > w-r && dx > 0) {
			if bounces >= maxBounces {
				break
			}
			dx = -dx
			bounces++
			next.X = core.ClampF(next.X, r, w-r)
		}

		if next.Y < r {
			next.Y = r
			path = append(path, next)
			break
		}

		hit := false
		for _, b := range bubbles {
			if next.Dist(b.Pos()) < reach {
				hit = true
				break
			}
		}
		path = append(path, next)
		if hit {
			break
		}
		cur = next
	}
	return path
}
