package hexgrid

// ContactDistance is the center distance under which a point touches a bubble.
func (l Layout) ContactDistance() float64 {
	return 2*l.Radius - l.Forgiveness
}

// Collides reports whether a projectile centered at p touches b.
// Inactive bubbles never collide.
func (l Layout) Collides(p Point, b *Bubble) bool {
	if b == nil || !b.Active {
		return false
	}
	return p.Dist(b.Pos()) < l.ContactDistance()
}

// FirstContact returns the first bubble in the slice that p touches, or nil.
func (l Layout) FirstContact(p Point, bubbles []*Bubble) *Bubble {
	for _, b := range bubbles {
		if l.Collides(p, b) {
			return b
		}
	}
	return nil
}
