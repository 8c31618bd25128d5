package hexgrid

// Color identifies a bubble's paint, or a special projectile marker.
type Color uint8

// Ordinary palette colors followed by the two special markers.
const (
	ColorRed Color = iota
	ColorGreen
	ColorBlue
	ColorYellow
	ColorPurple
	ColorOrange
	ColorBomb  // Explosive projectile, pops a two-ring blast on landing
	ColorLaser // Instant beam, never placed on the lattice
)

// Palette lists the ordinary colors used for generated bubbles.
var Palette = []Color{
	ColorRed,
	ColorGreen,
	ColorBlue,
	ColorYellow,
	ColorPurple,
	ColorOrange,
}

// Special reports whether the color is a projectile marker rather than paint.
func (c Color) Special() bool {
	return c == ColorBomb || c == ColorLaser
}

// String returns the color name.
func (c Color) String() string {
	switch c {
	case ColorRed:
		return "Red"
	case ColorGreen:
		return "Green"
	case ColorBlue:
		return "Blue"
	case ColorYellow:
		return "Yellow"
	case ColorPurple:
		return "Purple"
	case ColorOrange:
		return "Orange"
	case ColorBomb:
		return "Bomb"
	case ColorLaser:
		return "Laser"
	default:
		return "Unknown"
	}
}

// Item is a collectible carried by a bubble. Popping or dropping the bubble
// hands the item to the player.
type Item uint8

const (
	ItemNone Item = iota
	ItemBomb
	ItemLaser
)

// String returns the item name.
func (i Item) String() string {
	switch i {
	case ItemBomb:
		return "Bomb"
	case ItemLaser:
		return "Laser"
	default:
		return "None"
	}
}

// Marker returns the projectile color an equipped item turns into.
func (i Item) Marker() (Color, bool) {
	switch i {
	case ItemBomb:
		return ColorBomb, true
	case ItemLaser:
		return ColorLaser, true
	default:
		return 0, false
	}
}

// Bubble is a lattice entity. X and Y always match Row and Col through the
// Layout that placed it.
type Bubble struct {
	ID     uint64
	Row    int
	Col    int
	X      float64
	Y      float64
	Color  Color
	Active bool
	Scale  float64 // Render scale, owned by the animation layer
	Item   Item
}

// Cell returns the bubble's lattice coordinate.
func (b *Bubble) Cell() Cell {
	return Cell{Row: b.Row, Col: b.Col}
}

// Pos returns the bubble's pixel center.
func (b *Bubble) Pos() Point {
	return Point{X: b.X, Y: b.Y}
}
