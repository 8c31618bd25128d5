package hexpop

import (
	"math"

	"github.com/vovakirdan/hexpop/internal/games/hexpop/hexgrid"
)

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StateFlying      GameStateType = "flying" // A projectile is in the air
	StateGameOver    GameStateType = "game_over"
	StateWin         GameStateType = "win"
	StatePaused      GameStateType = "paused"
	StatePausedSmall GameStateType = "paused_small_window"
)

// BubbleState is one settled bubble in a snapshot.
type BubbleState struct {
	ID    uint64
	Row   int
	Col   int
	Color hexgrid.Color
	Item  hexgrid.Item
}

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick      uint64
	Mode      string // "classic" or "endless"
	Score     int
	Combo     int
	Misses    int
	Wave      int
	Aim       float64
	Inventory hexgrid.Item
	Queue     []hexgrid.Color
	Bubbles   []BubbleState // Row-major
	Fading    int           // Bubbles still animating out

	HasProjectile bool
	ProjectileX   float64
	ProjectileY   float64

	State GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.won:
		state = StateWin
	case g.gameOver:
		state = StateGameOver
	case g.paused:
		state = StatePaused
	case g.projectile != nil:
		state = StateFlying
	}

	bubbles := g.field.Bubbles()
	snap := Snapshot{
		Tick:      g.tick,
		Mode:      string(g.mode),
		Score:     g.score,
		Combo:     g.combo,
		Misses:    g.misses,
		Wave:      g.wave,
		Aim:       g.aim,
		Inventory: g.inventory,
		Queue:     g.Queue(),
		Bubbles:   make([]BubbleState, len(bubbles)),
		Fading:    len(g.fading),
		State:     state,
	}
	for i, b := range bubbles {
		snap.Bubbles[i] = BubbleState{
			ID:    b.ID,
			Row:   b.Row,
			Col:   b.Col,
			Color: b.Color,
			Item:  b.Item,
		}
	}
	if p := g.projectile; p != nil {
		snap.HasProjectile = true
		snap.ProjectileX = p.X
		snap.ProjectileY = p.Y
	}
	return snap
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Score)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Combo)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Misses) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Wave)   //#nosec G115 -- hash computation
	h = h*31 + math.Float64bits(snap.Aim)
	h = h*31 + uint64(snap.Inventory)
	h = h*31 + uint64(snap.Fading) //#nosec G115 -- hash computation

	for _, c := range snap.Queue {
		h = h*31 + uint64(c)
	}

	for _, b := range snap.Bubbles {
		h = h*31 + b.ID
		h = h*31 + uint64(b.Row) //#nosec G115 -- hash computation
		h = h*31 + uint64(b.Col) //#nosec G115 -- hash computation
		h = h*31 + uint64(b.Color)
		h = h*31 + uint64(b.Item)
	}

	if snap.HasProjectile {
		h = h*31 + math.Float64bits(snap.ProjectileX)
		h = h*31 + math.Float64bits(snap.ProjectileY)
	}

	for _, r := range snap.State {
		h = h*31 + uint64(r)
	}
	return h
}
