// Package hexgrid is the lattice engine behind Hex Pop.
//
// Bubbles sit on an offset hexagonal lattice addressed by (row, col). Even
// rows hold Columns cells, odd rows one fewer and shifted right by a radius.
// Row 0 is the ceiling. Every function here is pure over its arguments; the
// caller owns the bubble collection and the Field index built over it.
package hexgrid

import "math"

// Lattice defaults, in pixels.
const (
	DefaultRadius      = 20.0
	DefaultColumns     = 12
	DefaultForgiveness = 4.0
)

// Cell is a lattice coordinate.
type Cell struct {
	Row int
	Col int
}

// C is a shorthand constructor for Cell.
func C(row, col int) Cell {
	return Cell{Row: row, Col: col}
}

// Point is a position in pixel space.
type Point struct {
	X float64
	Y float64
}

// Dist returns the Euclidean distance between two points.
func (p Point) Dist(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// Layout fixes the lattice geometry.
type Layout struct {
	Radius      float64 // Bubble radius in pixels
	Columns     int     // Cells in an even row
	Forgiveness float64 // Contact slack subtracted from 2*Radius
}

// DefaultLayout returns the standard 12-column lattice with 20px bubbles.
func DefaultLayout() Layout {
	return Layout{
		Radius:      DefaultRadius,
		Columns:     DefaultColumns,
		Forgiveness: DefaultForgiveness,
	}
}

// RowHeight is the vertical distance between adjacent row centers.
func (l Layout) RowHeight() float64 {
	return l.Radius * math.Sqrt(3)
}

// Width is the pixel width of a full even row.
func (l Layout) Width() float64 {
	return float64(l.Columns) * 2 * l.Radius
}

// ColumnsInRow returns the number of valid columns for a row.
func (l Layout) ColumnsInRow(row int) int {
	if isEven(row) {
		return l.Columns
	}
	return l.Columns - 1
}

// InBounds reports whether c is a valid lattice cell.
// Rows have no lower limit; the game decides where the field ends.
func (l Layout) InBounds(c Cell) bool {
	return c.Row >= 0 && c.Col >= 0 && c.Col < l.ColumnsInRow(c.Row)
}

// ToPixel returns the pixel center of a cell.
func (l Layout) ToPixel(c Cell) Point {
	return Point{
		X: float64(c.Col)*2*l.Radius + l.Radius + l.rowOffset(c.Row),
		Y: float64(c.Row)*l.RowHeight() + l.Radius,
	}
}

// ToCell returns the nearest lattice cell for a pixel point. The row is
// resolved first since it decides the horizontal offset. The result is not
// bounds-checked.
func (l Layout) ToCell(p Point) Cell {
	row := roundHalfUp((p.Y - l.Radius) / l.RowHeight())
	col := roundHalfUp((p.X - l.Radius - l.rowOffset(row)) / (2 * l.Radius))
	return Cell{Row: row, Col: col}
}

// Place moves a bubble to c and recomputes its pixel center.
func (l Layout) Place(b *Bubble, c Cell) {
	p := l.ToPixel(c)
	b.Row = c.Row
	b.Col = c.Col
	b.X = p.X
	b.Y = p.Y
}

func (l Layout) rowOffset(row int) float64 {
	if isEven(row) {
		return 0
	}
	return l.Radius
}

func isEven(n int) bool {
	return n%2 == 0
}

func roundHalfUp(v float64) int {
	return int(math.Floor(v + 0.5))
}
