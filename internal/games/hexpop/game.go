// Package hexpop implements a hexagonal bubble shooter.
// The player fires colored bubbles into a lattice hanging from the ceiling;
// groups of three or more pop and anything cut off from the ceiling drops.
package hexpop

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/hexpop/internal/config"
	"github.com/vovakirdan/hexpop/internal/core"
	"github.com/vovakirdan/hexpop/internal/games/hexpop/hexgrid"
	"github.com/vovakirdan/hexpop/internal/registry"
)

// Mode represents the game mode.
type Mode string

const (
	ModeClassic Mode = "classic"
	ModeEndless Mode = "endless"
)

// Game IDs as registered with the platform.
const (
	IDClassic = "hexpop"
	IDEndless = "hexpop_endless"
)

const (
	// Ticks a popped bubble takes to shrink away.
	popTicks = 10
	// Ticks a dropped bubble takes to fall out of the field.
	dropTicks = 30
	// Ticks the laser beam stays on screen.
	beamTicks = 10
	// Ticks a HUD message stays up.
	flashTicks = 90
	// Endless waves never start deeper than this.
	maxWaveRows = 10
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	p, ok := config.ParsePreset(preset)
	if !ok || preset == "" {
		difficultyPreset = ""
		return
	}
	difficultyPreset = p
}

// projectile is a bubble in flight.
type projectile struct {
	X, Y   float64
	VX, VY float64
	Color  hexgrid.Color
}

func (p *projectile) pos() hexgrid.Point {
	return hexgrid.Point{X: p.X, Y: p.Y}
}

// Game implements the bubble shooter.
type Game struct {
	mode Mode
	rng  *rand.Rand
	tick uint64

	cfg        config.HexpopConfig
	difficulty *config.DifficultyManager
	layout     hexgrid.Layout
	gen        *hexgrid.Generator

	field      *hexgrid.Field
	projectile *projectile
	queue      []hexgrid.Color
	inventory  hexgrid.Item
	aim        float64 // Radians; -pi/2 points straight up
	fading     []*fade
	beam       *beam

	score  int
	combo  int
	misses int
	wave   int
	stats  core.RunStats

	flash      string
	flashTicks int

	screenW  int
	screenH  int
	gameOver bool
	won      bool
	paused   bool
	tooSmall bool
}

// New creates a new classic mode game.
func New() *Game {
	return &Game{mode: ModeClassic}
}

// NewEndless creates a new endless mode game.
func NewEndless() *Game {
	return &Game{mode: ModeEndless}
}

func init() {
	registry.Register(IDClassic, func() registry.Game {
		return New()
	})
	registry.Register(IDEndless, func() registry.Game {
		return NewEndless()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeEndless {
		return IDEndless
	}
	return IDClassic
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeEndless {
		return "Hex Pop (Endless)"
	}
	return "Hex Pop"
}

// Reset initializes/restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	cfg, err := config.LoadHexpop(configPath)
	if err != nil {
		cfg = config.DefaultHexpopConfig()
	}
	if difficultyPreset != "" {
		config.ApplyHexpopPreset(&cfg, difficultyPreset)
	}
	g.apply(cfg, runtime)
}

// apply starts a fresh run with an already loaded configuration.
func (g *Game) apply(cfg config.HexpopConfig, runtime core.RuntimeConfig) {
	g.cfg = cfg
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)
	g.layout = hexgrid.Layout{
		Radius:      cfg.Grid.Radius,
		Columns:     cfg.Grid.Columns,
		Forgiveness: cfg.Grid.Forgiveness,
	}

	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.gen = hexgrid.NewGenerator(g.layout, g.rng)
	g.gen.Palette = hexgrid.Palette[:cfg.Grid.Colors]
	g.gen.ItemChance = cfg.Grid.ItemChance

	g.tick = 0
	g.screenW = runtime.ScreenW
	g.screenH = runtime.ScreenH
	g.gameOver = false
	g.won = false
	g.paused = false

	g.score = 0
	g.combo = 0
	g.misses = 0
	g.wave = 0
	g.stats = core.RunStats{}
	g.inventory = hexgrid.ItemNone
	g.aim = -math.Pi / 2
	g.projectile = nil
	g.fading = nil
	g.beam = nil
	g.flash = ""
	g.flashTicks = 0

	g.field = hexgrid.NewField(g.gen.Generate(cfg.Grid.StartRows))

	g.queue = g.queue[:0]
	g.fillQueue()

	g.checkScreenSize()
}

// checkScreenSize checks if the screen is large enough.
func (g *Game) checkScreenSize() {
	minW, minH := g.minScreenSize()
	g.tooSmall = g.screenW < minW || g.screenH < minH
}

// Resize updates the screen size without restarting the run.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.checkScreenSize()
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && !g.gameOver {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.updateAnimations()
	if g.flashTicks > 0 {
		g.flashTicks--
	}

	if g.gameOver {
		return core.StepResult{State: g.State()}
	}
	g.stats.Ticks++

	if in.Has(core.ActionLeft) {
		g.turn(-1)
	}
	if in.Has(core.ActionRight) {
		g.turn(1)
	}
	if in.Has(core.ActionSwap) {
		g.swap()
	}
	if in.Has(core.ActionUse) {
		g.useItem()
	}

	if g.projectile != nil {
		g.advanceProjectile()
	} else if in.Has(core.ActionFire) {
		g.fire()
	}

	return core.StepResult{State: g.State()}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.gameOver,
		Won:      g.won,
		Paused:   g.paused || g.tooSmall,
	}
}

// Stats returns the counters of the current run.
func (g *Game) Stats() core.RunStats {
	s := g.stats
	s.Won = g.won
	return s
}

// Mode returns the game mode.
func (g *Game) Mode() Mode {
	return g.mode
}

// setFlash shows a short HUD message.
func (g *Game) setFlash(msg string) {
	g.flash = msg
	g.flashTicks = flashTicks
}

// missThreshold is the current number of misses that triggers a penalty.
func (g *Game) missThreshold() int {
	return g.difficulty.MissThreshold(g.cfg.Gameplay.MissThreshold, g.score, g.stats.Ticks)
}
