package hexpop

import "github.com/vovakirdan/hexpop/internal/games/hexpop/hexgrid"

// fillQueue tops the upcoming colors back up to the configured length.
func (g *Game) fillQueue() {
	for len(g.queue) < g.cfg.Gameplay.QueueSize {
		g.queue = append(g.queue, g.gen.RandomColor())
	}
}

// popQueue takes the loaded color and refills the back of the queue.
func (g *Game) popQueue() hexgrid.Color {
	c := g.queue[0]
	g.queue = append(g.queue[:0], g.queue[1:]...)
	g.fillQueue()
	return c
}

// loaded returns the color that the next shot will use.
func (g *Game) loaded() hexgrid.Color {
	return g.queue[0]
}

// swap exchanges the loaded color with the next one.
func (g *Game) swap() {
	g.queue[0], g.queue[1] = g.queue[1], g.queue[0]
}

// useItem loads the held item in place of the current color.
func (g *Game) useItem() {
	marker, ok := g.inventory.Marker()
	if !ok {
		return
	}
	g.queue[0] = marker
	g.inventory = hexgrid.ItemNone
}

// Queue returns a copy of the upcoming colors, loaded color first.
func (g *Game) Queue() []hexgrid.Color {
	out := make([]hexgrid.Color, len(g.queue))
	copy(out, g.queue)
	return out
}

// Inventory returns the held item.
func (g *Game) Inventory() hexgrid.Item {
	return g.inventory
}
