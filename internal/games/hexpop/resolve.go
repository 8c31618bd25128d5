package hexpop

import (
	"fmt"
	"math"

	"github.com/vovakirdan/hexpop/internal/games/hexpop/hexgrid"
)

// land settles a projectile and resolves everything the landing causes:
// the match or blast, dropped bubbles, the miss counter and the end of
// the run or the wave.
func (g *Game) land(p *projectile) {
	cell, ok := g.layout.SnapCell(p.pos(), g.field)
	if !ok {
		g.gameOver = true
		return
	}

	b := g.gen.NewBubble(cell, p.Color)
	g.field.Put(b)

	var cleared bool
	if p.Color == hexgrid.ColorBomb {
		g.explode(b)
		cleared = true
	} else {
		cleared = g.match(b)
	}

	g.dropFloating()

	if !cleared {
		g.misses++
		if g.misses >= g.missThreshold() {
			g.misses = 0
			g.penalty()
		}
	}

	g.checkDeathLine()
	g.checkCleared()
}

// explode pops the two-ring blast around a landed bomb. The bomb itself
// goes with it but scores nothing.
func (g *Game) explode(bomb *hexgrid.Bubble) {
	hit := g.layout.Blast(bomb.Cell(), g.field)

	points := 0
	for _, b := range hit {
		if b != bomb {
			points += g.cfg.Gameplay.PopScore
		}
	}
	g.pop(hit)
	g.score += points
	g.combo = 0

	if points > 0 {
		g.setFlash(fmt.Sprintf("MEGA BOOM! +%d", points))
	}
}

// match pops the landed bubble's cluster when it is large enough and
// reports whether it did.
func (g *Game) match(b *hexgrid.Bubble) bool {
	cluster := g.layout.Cluster(b, g.field)
	if len(cluster) < g.cfg.Gameplay.MinCluster {
		g.combo = 0
		return false
	}

	points := len(cluster) * g.cfg.Gameplay.PopScore
	if len(cluster) > g.cfg.Gameplay.BigCluster {
		points *= 2
	}
	g.pop(cluster)
	g.score += points

	g.combo++
	if g.combo > g.stats.BestCombo {
		g.stats.BestCombo = g.combo
	}

	switch {
	case g.combo >= g.cfg.Gameplay.ComboForBomb:
		g.inventory = hexgrid.ItemBomb
		g.combo = 0
		g.setFlash("BOMB READY!")
	case g.combo > 1:
		g.setFlash(fmt.Sprintf("COMBO %d! +%d", g.combo, points))
	default:
		g.setFlash(fmt.Sprintf("+%d", points))
	}
	return true
}

// fireLaser pops every bubble along the aim line in front of the shooter.
// A laser never counts as a miss and leaves the combo alone.
func (g *Game) fireLaser() {
	from := g.origin()
	reach := g.cfg.Shooter.Y * laserReach
	to := hexgrid.Point{
		X: from.X + math.Cos(g.aim)*reach,
		Y: from.Y + math.Sin(g.aim)*reach,
	}
	g.beam = newBeam(from, to)

	hits := g.layout.RayHits(from, to, g.field.Bubbles())
	if len(hits) > 0 {
		points := len(hits) * g.cfg.Gameplay.LaserScore
		g.pop(hits)
		g.score += points
		g.setFlash(fmt.Sprintf("LASER HIT! +%d", points))
	}

	g.dropFloating()
	g.checkCleared()
}

// pop removes bubbles from the field and starts their shrink animation.
func (g *Game) pop(bubbles []*hexgrid.Bubble) {
	for _, b := range bubbles {
		g.field.Remove(b.Cell())
		g.collect(b)
		g.fading = append(g.fading, newPopFade(b))
	}
	g.stats.Popped += len(bubbles)
}

// dropFloating removes every bubble cut off from the ceiling.
func (g *Game) dropFloating() {
	floating := g.layout.Floating(g.field)
	for _, b := range floating {
		g.field.Remove(b.Cell())
		g.collect(b)
		g.fading = append(g.fading, newDropFade(b, g.cfg.Shooter.Y))
	}
	g.score += len(floating) * g.cfg.Gameplay.DropScore
	g.stats.Dropped += len(floating)

	if len(floating) > 0 {
		g.setFlash(fmt.Sprintf("DROP BONUS! +%d", len(floating)*g.cfg.Gameplay.DropScore))
	}
}

// collect hands over the item a removed bubble was carrying.
func (g *Game) collect(b *hexgrid.Bubble) {
	if b.Item == hexgrid.ItemLaser {
		g.inventory = hexgrid.ItemLaser
		g.setFlash("LASER ACQUIRED!")
	}
}

// penalty pushes the field down and hangs fresh rows from the ceiling.
func (g *Game) penalty() {
	rows := g.cfg.Gameplay.PenaltyRows
	shifted := g.field.Bubbles()
	for _, b := range shifted {
		g.layout.Place(b, hexgrid.Cell{Row: b.Row + rows, Col: b.Col})
	}

	fresh := g.gen.Generate(rows)
	g.field = hexgrid.NewField(append(fresh, shifted...))

	g.stats.Penalties++
	g.setFlash(fmt.Sprintf("DANGER! +%d ROWS", rows))
}

// deathLineY is the height a bubble's bottom edge must stay above.
func (g *Game) deathLineY() float64 {
	return g.cfg.Shooter.Y - g.cfg.Shooter.DeathLine
}

// checkDeathLine ends the run once any bubble hangs past the death line.
func (g *Game) checkDeathLine() {
	limit := g.deathLineY()
	for _, b := range g.field.Bubbles() {
		if b.Y+g.layout.Radius > limit {
			g.gameOver = true
			return
		}
	}
}

// checkCleared handles an empty field: a win in classic mode, the next
// wave in endless mode.
func (g *Game) checkCleared() {
	if g.gameOver || !g.field.Empty() {
		return
	}

	g.stats.Waves++
	if g.mode == ModeClassic {
		g.won = true
		g.gameOver = true
		return
	}

	g.wave++
	rows := g.cfg.Grid.StartRows + g.wave*g.cfg.Gameplay.WaveRows
	if rows > maxWaveRows {
		rows = maxWaveRows
	}
	g.field = hexgrid.NewField(g.gen.Generate(rows))
	g.combo = 0
	g.misses = 0
	g.setFlash(fmt.Sprintf("WAVE %d", g.wave+1))
}
