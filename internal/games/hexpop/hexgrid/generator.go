package hexgrid

import "math/rand"

// DefaultItemChance is the probability that a generated bubble carries a laser.
const DefaultItemChance = 0.01

// Generator builds bubbles with unique ids and random colors.
// The random source is injected so a seed fixes the whole sequence.
type Generator struct {
	Layout     Layout
	Palette    []Color // Ordinary colors to draw from
	ItemChance float64 // Per-bubble chance of carrying a laser item

	rng    *rand.Rand
	nextID uint64
}

// NewGenerator creates a generator over the full palette.
func NewGenerator(layout Layout, rng *rand.Rand) *Generator {
	return &Generator{
		Layout:     layout,
		Palette:    Palette,
		ItemChance: DefaultItemChance,
		rng:        rng,
	}
}

// NextID returns a fresh bubble id. Ids start at 1 and never repeat.
func (g *Generator) NextID() uint64 {
	g.nextID++
	return g.nextID
}

// RandomColor draws a uniform color from the palette.
func (g *Generator) RandomColor() Color {
	return g.Palette[g.rng.Intn(len(g.Palette))]
}

// NewBubble creates an active bubble of the given color at c.
func (g *Generator) NewBubble(c Cell, color Color) *Bubble {
	b := &Bubble{
		ID:     g.NextID(),
		Color:  color,
		Active: true,
		Scale:  1,
	}
	g.Layout.Place(b, c)
	return b
}

// Generate fills rows 0..rows-1 with bubbles, row-major. Each bubble rolls for
// a laser item and then draws its color.
func (g *Generator) Generate(rows int) []*Bubble {
	var out []*Bubble
	for r := 0; r < rows; r++ {
		for c := 0; c < g.Layout.ColumnsInRow(r); c++ {
			hasLaser := g.rng.Float64() < g.ItemChance
			b := g.NewBubble(Cell{Row: r, Col: c}, g.RandomColor())
			if hasLaser {
				b.Item = ItemLaser
			}
			out = append(out, b)
		}
	}
	return out
}
