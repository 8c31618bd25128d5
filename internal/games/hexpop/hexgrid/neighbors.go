package hexgrid

// Neighbor offsets by row parity. A bubble's diagonal neighbors sit half a
// column left on even rows and half a column right on odd rows.
var (
	evenRowDirs = [6]Cell{
		{Row: 0, Col: -1},
		{Row: 0, Col: 1},
		{Row: -1, Col: -1},
		{Row: -1, Col: 0},
		{Row: 1, Col: -1},
		{Row: 1, Col: 0},
	}
	oddRowDirs = [6]Cell{
		{Row: 0, Col: -1},
		{Row: 0, Col: 1},
		{Row: -1, Col: 0},
		{Row: -1, Col: 1},
		{Row: 1, Col: 0},
		{Row: 1, Col: 1},
	}
)

// Neighbors returns the in-bounds lattice neighbors of c, at most six, in a
// fixed order: left, right, the two above, the two below.
func (l Layout) Neighbors(c Cell) []Cell {
	dirs := &oddRowDirs
	if isEven(c.Row) {
		dirs = &evenRowDirs
	}

	out := make([]Cell, 0, len(dirs))
	for _, d := range dirs {
		n := Cell{Row: c.Row + d.Row, Col: c.Col + d.Col}
		if l.InBounds(n) {
			out = append(out, n)
		}
	}
	return out
}
