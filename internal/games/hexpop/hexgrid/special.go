package hexgrid

// BlastCells returns every cell within two lattice steps of center: the
// first ring and the neighbors of each first-ring cell, center included.
// Each cell appears once.
func (l Layout) BlastCells(center Cell) []Cell {
	seen := make(map[Cell]bool)
	var out []Cell
	add := func(c Cell) {
		if !seen[c] {
			seen[c] = true
			out = append(out, c)
		}
	}

	ring1 := l.Neighbors(center)
	for _, n := range ring1 {
		add(n)
	}
	for _, n := range ring1 {
		for _, n2 := range l.Neighbors(n) {
			add(n2)
		}
	}
	return out
}

// Blast returns the active bubbles caught in the two-ring blast around center.
func (l Layout) Blast(center Cell, lk Lookup) []*Bubble {
	var hit []*Bubble
	for _, c := range l.BlastCells(center) {
		if b := lk.At(c); b != nil {
			hit = append(hit, b)
		}
	}
	return hit
}

// SnapCell picks the empty in-bounds cell nearest to p among the 3x3 block
// around p's rough cell. It returns false when every candidate is taken,
// which the game treats as a loss.
func (l Layout) SnapCell(p Point, lk Lookup) (Cell, bool) {
	rough := l.ToCell(p)

	best := Cell{Row: -1, Col: -1}
	bestDist := 0.0
	found := false

	for r := rough.Row - 1; r <= rough.Row+1; r++ {
		for c := rough.Col - 1; c <= rough.Col+1; c++ {
			cell := Cell{Row: r, Col: c}
			if !l.InBounds(cell) || lk.At(cell) != nil {
				continue
			}
			d := p.Dist(l.ToPixel(cell))
			if !found || d < bestDist {
				best = cell
				bestDist = d
				found = true
			}
		}
	}
	return best, found
}

// RayHits returns the active bubbles whose centers lie within one radius of
// the line through from and to, on the to side of from.
func (l Layout) RayHits(from, to Point, bubbles []*Bubble) []*Bubble {
	dx := to.X - from.X
	dy := to.Y - from.Y
	length := from.Dist(to)
	if length == 0 {
		return nil
	}

	var hits []*Bubble
	for _, b := range bubbles {
		if b == nil || !b.Active {
			continue
		}
		cross := dx*(from.Y-b.Y) - (from.X-b.X)*dy
		if cross < 0 {
			cross = -cross
		}
		dot := (b.X-from.X)*dx + (b.Y-from.Y)*dy
		if cross/length < l.Radius && dot > 0 {
			hits = append(hits, b)
		}
	}
	return hits
}
