package hexpop

import (
	"math"
	"strings"
	"testing"

	"github.com/vovakirdan/hexpop/internal/config"
	"github.com/vovakirdan/hexpop/internal/core"
	"github.com/vovakirdan/hexpop/internal/games/hexpop/hexgrid"
)

func testRuntime(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		Seed:     seed,
		ScreenW:  80,
		ScreenH:  40,
		TickRate: 60,
	}
}

// newTestGame starts a game on the built-in defaults, ignoring any config
// file on the machine.
func newTestGame(mode Mode) *Game {
	g := &Game{mode: mode}
	g.apply(config.DefaultHexpopConfig(), testRuntime(1))
	return g
}

type placed struct {
	row, col int
	color    hexgrid.Color
}

// setField replaces the generated field with hand-placed bubbles.
func setField(g *Game, bubbles ...placed) map[hexgrid.Cell]*hexgrid.Bubble {
	byCell := make(map[hexgrid.Cell]*hexgrid.Bubble, len(bubbles))
	list := make([]*hexgrid.Bubble, 0, len(bubbles))
	for _, p := range bubbles {
		b := g.gen.NewBubble(hexgrid.C(p.row, p.col), p.color)
		byCell[b.Cell()] = b
		list = append(list, b)
	}
	g.field = hexgrid.NewField(list)
	return byCell
}

// landAt lands a projectile of the given color exactly on a cell center.
func landAt(g *Game, row, col int, color hexgrid.Color) {
	p := g.layout.ToPixel(hexgrid.C(row, col))
	g.land(&projectile{X: p.X, Y: p.Y, Color: color})
}

func TestDeterminism(t *testing.T) {
	run := func(seed int64) Snapshot {
		g := newTestGame(ModeClassic)
		g.apply(config.DefaultHexpopConfig(), testRuntime(seed))

		input := core.NewInputFrame()
		for i := 0; i < 1500; i++ {
			input.Clear()
			switch {
			case i%90 < 10:
				input.Set(core.ActionLeft)
			case i%90 < 25:
				input.Set(core.ActionRight)
			case i%90 == 30:
				input.Set(core.ActionFire)
			case i%90 == 60:
				input.Set(core.ActionSwap)
			}
			g.Step(input)
		}
		return g.Snapshot()
	}

	snap1 := run(12345)
	snap2 := run(12345)

	if snap1.Hash() != snap2.Hash() {
		t.Errorf("Determinism failed: hashes differ. Run1=%d, Run2=%d", snap1.Hash(), snap2.Hash())
	}
	if snap1.Score != snap2.Score || len(snap1.Bubbles) != len(snap2.Bubbles) {
		t.Errorf("Runs diverged: score %d vs %d, bubbles %d vs %d",
			snap1.Score, snap2.Score, len(snap1.Bubbles), len(snap2.Bubbles))
	}

	other := run(54321)
	if other.Hash() == snap1.Hash() {
		t.Error("different seeds should produce different games")
	}
}

func TestGameIDs(t *testing.T) {
	if New().ID() != "hexpop" {
		t.Errorf("classic ID = %q", New().ID())
	}
	if NewEndless().ID() != "hexpop_endless" {
		t.Errorf("endless ID = %q", NewEndless().ID())
	}
	if New().Title() != "Hex Pop" || NewEndless().Title() != "Hex Pop (Endless)" {
		t.Error("unexpected titles")
	}
	if New().Mode() != ModeClassic || NewEndless().Mode() != ModeEndless {
		t.Error("unexpected modes")
	}
}

func TestResetBuildsStartField(t *testing.T) {
	g := newTestGame(ModeClassic)

	// 5 rows: 12 + 11 + 12 + 11 + 12
	if n := g.field.Len(); n != 58 {
		t.Errorf("start field has %d bubbles, expected 58", n)
	}
	if len(g.queue) != 4 {
		t.Errorf("queue length = %d, expected 4", len(g.queue))
	}
	for _, c := range g.queue {
		if c.Special() {
			t.Errorf("queue starts with special color %v", c)
		}
	}
	if g.aim != -math.Pi/2 {
		t.Errorf("aim = %f, expected straight up", g.aim)
	}
	if g.State().GameOver || g.State().Paused {
		t.Error("fresh game should be running")
	}
}

func TestAimClamped(t *testing.T) {
	g := newTestGame(ModeClassic)

	left := core.NewInputFrame()
	left.Set(core.ActionLeft)
	for i := 0; i < 200; i++ {
		g.Step(left)
	}
	if math.Abs(g.aim-(-math.Pi+0.2)) > 1e-9 {
		t.Errorf("aim after turning left = %f, expected %f", g.aim, -math.Pi+0.2)
	}

	right := core.NewInputFrame()
	right.Set(core.ActionRight)
	for i := 0; i < 200; i++ {
		g.Step(right)
	}
	if math.Abs(g.aim-(-0.2)) > 1e-9 {
		t.Errorf("aim after turning right = %f, expected -0.2", g.aim)
	}
}

func TestFireLaunchesProjectile(t *testing.T) {
	g := newTestGame(ModeClassic)
	loaded := g.queue[0]
	next := g.queue[1]

	fire := core.NewInputFrame()
	fire.Set(core.ActionFire)
	g.Step(fire)

	if g.projectile == nil {
		t.Fatal("fire should launch a projectile")
	}
	if g.projectile.Color != loaded {
		t.Errorf("projectile color = %v, expected %v", g.projectile.Color, loaded)
	}
	speed := math.Hypot(g.projectile.VX, g.projectile.VY)
	if math.Abs(speed-12) > 1e-9 {
		t.Errorf("projectile speed = %f, expected 12", speed)
	}
	if g.queue[0] != next || len(g.queue) != 4 {
		t.Errorf("queue did not advance: %v", g.queue)
	}
	if g.stats.Shots != 1 {
		t.Errorf("Shots = %d, expected 1", g.stats.Shots)
	}

	// A second press while the shot is in the air is ignored
	before := g.queue[0]
	g.Step(fire)
	if g.queue[0] != before || g.stats.Shots != 1 {
		t.Error("fire while a projectile is flying should do nothing")
	}
}

func TestProjectileBouncesOffWall(t *testing.T) {
	g := newTestGame(ModeClassic)
	g.projectile = &projectile{X: 25, Y: 400, VX: -12, VY: -1, Color: hexgrid.ColorRed}

	g.Step(core.NewInputFrame())

	if g.projectile == nil {
		t.Fatal("projectile should still be flying")
	}
	if g.projectile.VX != 12 {
		t.Errorf("VX after bounce = %f, expected 12", g.projectile.VX)
	}
	if g.projectile.X != 20 {
		t.Errorf("X after bounce = %f, expected clamped to 20", g.projectile.X)
	}
}

func TestProjectileReachesField(t *testing.T) {
	g := newTestGame(ModeClassic)
	setField(g, placed{0, 5, hexgrid.ColorBlue}, placed{0, 6, hexgrid.ColorBlue})
	g.queue[0] = hexgrid.ColorRed

	fire := core.NewInputFrame()
	fire.Set(core.ActionFire)
	g.Step(fire)

	idle := core.NewInputFrame()
	for i := 0; i < 100 && g.projectile != nil; i++ {
		g.Step(idle)
	}
	if g.projectile != nil {
		t.Fatal("projectile never landed")
	}
	if g.field.Len() != 3 {
		t.Errorf("field has %d bubbles after landing, expected 3", g.field.Len())
	}
	if g.misses != 1 {
		t.Errorf("misses = %d, expected 1", g.misses)
	}
}

func TestLandingMatchPops(t *testing.T) {
	g := newTestGame(ModeClassic)
	setField(g,
		placed{0, 0, hexgrid.ColorRed},
		placed{0, 1, hexgrid.ColorRed},
		placed{0, 2, hexgrid.ColorBlue},
	)

	landAt(g, 1, 0, hexgrid.ColorRed)

	if g.score != 30 {
		t.Errorf("score = %d, expected 30", g.score)
	}
	if g.combo != 1 {
		t.Errorf("combo = %d, expected 1", g.combo)
	}
	if g.misses != 0 {
		t.Errorf("misses = %d, expected 0", g.misses)
	}
	if g.field.Len() != 1 || g.field.At(hexgrid.C(0, 2)) == nil {
		t.Errorf("only the blue bubble should remain, field has %d", g.field.Len())
	}
	if len(g.fading) != 3 {
		t.Errorf("%d bubbles animating, expected 3", len(g.fading))
	}
	if g.stats.Popped != 3 {
		t.Errorf("Popped = %d, expected 3", g.stats.Popped)
	}
}

func TestBigClusterScoresDouble(t *testing.T) {
	g := newTestGame(ModeClassic)
	var bubbles []placed
	for c := 0; c < 6; c++ {
		bubbles = append(bubbles, placed{0, c, hexgrid.ColorGreen})
	}
	bubbles = append(bubbles, placed{0, 11, hexgrid.ColorBlue})
	setField(g, bubbles...)

	landAt(g, 1, 0, hexgrid.ColorGreen)

	// 7 bubbles, more than 5, so 7 * 10 * 2
	if g.score != 140 {
		t.Errorf("score = %d, expected 140", g.score)
	}
}

func TestNoMatchIsMiss(t *testing.T) {
	g := newTestGame(ModeClassic)
	setField(g, placed{0, 0, hexgrid.ColorRed}, placed{0, 1, hexgrid.ColorBlue})
	g.combo = 3

	landAt(g, 1, 0, hexgrid.ColorRed)

	if g.score != 0 {
		t.Errorf("score = %d, expected 0", g.score)
	}
	if g.misses != 1 {
		t.Errorf("misses = %d, expected 1", g.misses)
	}
	if g.combo != 0 {
		t.Errorf("combo = %d, expected reset to 0", g.combo)
	}
	if g.field.Len() != 3 {
		t.Errorf("field has %d bubbles, expected 3", g.field.Len())
	}
}

func TestFloatingBubblesDrop(t *testing.T) {
	g := newTestGame(ModeClassic)
	setField(g,
		placed{0, 0, hexgrid.ColorRed},
		placed{0, 1, hexgrid.ColorRed},
		placed{1, 0, hexgrid.ColorGreen},
		placed{0, 8, hexgrid.ColorBlue},
	)

	// Popping (0,0), (0,1) and (1,1) leaves (1,0) hanging from nothing
	landAt(g, 1, 1, hexgrid.ColorRed)

	if g.score != 30+20 {
		t.Errorf("score = %d, expected 50", g.score)
	}
	if g.stats.Dropped != 1 {
		t.Errorf("Dropped = %d, expected 1", g.stats.Dropped)
	}
	if g.field.Len() != 1 {
		t.Errorf("field has %d bubbles, expected 1", g.field.Len())
	}
}

func TestDroppedItemIsCollected(t *testing.T) {
	g := newTestGame(ModeClassic)
	byCell := setField(g,
		placed{0, 0, hexgrid.ColorRed},
		placed{0, 1, hexgrid.ColorRed},
		placed{1, 0, hexgrid.ColorGreen},
		placed{0, 8, hexgrid.ColorBlue},
	)
	byCell[hexgrid.C(1, 0)].Item = hexgrid.ItemLaser

	landAt(g, 1, 1, hexgrid.ColorRed)

	if g.inventory != hexgrid.ItemLaser {
		t.Errorf("inventory = %v, expected Laser", g.inventory)
	}
}

func TestComboGrantsBomb(t *testing.T) {
	g := newTestGame(ModeClassic)
	setField(g,
		placed{0, 0, hexgrid.ColorRed},
		placed{0, 1, hexgrid.ColorRed},
		placed{0, 5, hexgrid.ColorBlue},
	)
	g.combo = 4

	landAt(g, 1, 0, hexgrid.ColorRed)

	if g.inventory != hexgrid.ItemBomb {
		t.Errorf("inventory = %v, expected Bomb", g.inventory)
	}
	if g.combo != 0 {
		t.Errorf("combo = %d, expected reset after the bomb", g.combo)
	}
	if g.stats.BestCombo != 5 {
		t.Errorf("BestCombo = %d, expected 5", g.stats.BestCombo)
	}
}

func TestBombBlast(t *testing.T) {
	g := newTestGame(ModeClassic)
	setField(g,
		placed{0, 0, hexgrid.ColorRed},
		placed{0, 1, hexgrid.ColorGreen},
		placed{0, 2, hexgrid.ColorBlue},
		placed{0, 6, hexgrid.ColorYellow},
	)
	g.combo = 3

	landAt(g, 1, 0, hexgrid.ColorBomb)

	// The bomb takes out three bubbles and itself; only the three score
	if g.score != 30 {
		t.Errorf("score = %d, expected 30", g.score)
	}
	if g.combo != 0 {
		t.Errorf("combo = %d, expected 0", g.combo)
	}
	if g.misses != 0 {
		t.Errorf("a bomb should never count as a miss")
	}
	if g.field.Len() != 1 || g.field.At(hexgrid.C(0, 6)) == nil {
		t.Errorf("only (0,6) should survive, field has %d", g.field.Len())
	}
}

func TestLaserPopsAlongAim(t *testing.T) {
	g := newTestGame(ModeClassic)
	setField(g,
		placed{0, 5, hexgrid.ColorRed},
		placed{1, 5, hexgrid.ColorGreen}, // Centered above the shooter
		placed{0, 0, hexgrid.ColorBlue},
	)
	g.queue[0] = hexgrid.ColorLaser
	g.misses = 2
	g.combo = 2

	g.fire()

	if g.projectile != nil {
		t.Error("a laser should not leave a projectile")
	}
	if g.score != 20 {
		t.Errorf("score = %d, expected 20", g.score)
	}
	if g.field.At(hexgrid.C(1, 5)) != nil {
		t.Error("bubble in the beam survived")
	}
	if g.field.Len() != 2 {
		t.Errorf("field has %d bubbles, expected 2", g.field.Len())
	}
	if g.misses != 2 || g.combo != 2 {
		t.Errorf("laser changed misses/combo to %d/%d", g.misses, g.combo)
	}
	if g.beam == nil {
		t.Error("laser should leave a beam effect")
	}
}

func TestMissesTriggerPenalty(t *testing.T) {
	g := newTestGame(ModeClassic)
	byCell := setField(g, placed{0, 0, hexgrid.ColorBlue})
	anchor := byCell[hexgrid.C(0, 0)]

	for i, col := range []int{2, 4, 6, 8, 10} {
		landAt(g, 0, col, hexgrid.ColorRed)
		if i < 4 && g.misses != i+1 {
			t.Fatalf("after %d misses counter = %d", i+1, g.misses)
		}
	}

	if g.stats.Penalties != 1 {
		t.Fatalf("Penalties = %d, expected 1", g.stats.Penalties)
	}
	if g.misses != 0 {
		t.Errorf("misses = %d, expected reset", g.misses)
	}
	if anchor.Row != 2 || anchor.Col != 0 {
		t.Errorf("anchor moved to (%d,%d), expected (2,0)", anchor.Row, anchor.Col)
	}
	if anchor.Pos() != g.layout.ToPixel(hexgrid.C(2, 0)) {
		t.Error("anchor pixel position not recomputed")
	}
	// 6 shifted plus two fresh rows of 12 and 11
	if g.field.Len() != 6+23 {
		t.Errorf("field has %d bubbles, expected 29", g.field.Len())
	}

	ids := make(map[uint64]bool)
	for _, b := range g.field.Bubbles() {
		if ids[b.ID] {
			t.Errorf("duplicate id %d after penalty", b.ID)
		}
		ids[b.ID] = true
	}
}

func TestPenaltyPastDeathLineEndsGame(t *testing.T) {
	g := newTestGame(ModeClassic)

	// A single column hanging down to row 14, colors alternating
	var column []placed
	for r := 0; r <= 14; r++ {
		c := hexgrid.ColorRed
		if r%2 == 1 {
			c = hexgrid.ColorGreen
		}
		column = append(column, placed{r, 0, c})
	}
	setField(g, column...)
	g.misses = g.missThreshold() - 1

	landAt(g, 0, 6, hexgrid.ColorBlue)

	if !g.gameOver {
		t.Fatal("pushing row 14 down two rows should cross the death line")
	}
	if g.won {
		t.Error("crossing the death line is not a win")
	}
}

func TestNoSnapCellEndsGame(t *testing.T) {
	g := newTestGame(ModeClassic)
	var full []placed
	for r := 0; r <= 2; r++ {
		for c := 0; c < g.layout.ColumnsInRow(r); c++ {
			full = append(full, placed{r, c, hexgrid.Color(c % 6)})
		}
	}
	setField(g, full...)

	landAt(g, 1, 4, hexgrid.ColorRed)

	if !g.gameOver {
		t.Error("landing with no free cell nearby should end the game")
	}
}

func TestClassicWinOnEmptyField(t *testing.T) {
	g := newTestGame(ModeClassic)
	setField(g, placed{0, 0, hexgrid.ColorRed}, placed{0, 1, hexgrid.ColorRed})

	landAt(g, 1, 0, hexgrid.ColorRed)

	state := g.State()
	if !state.GameOver || !state.Won {
		t.Errorf("state = %+v, expected a win", state)
	}
	stats := g.Stats()
	if !stats.Won || stats.Waves != 1 {
		t.Errorf("stats = %+v, expected won with 1 wave", stats)
	}
}

func TestEndlessStartsNextWave(t *testing.T) {
	g := newTestGame(ModeEndless)
	setField(g, placed{0, 0, hexgrid.ColorRed}, placed{0, 1, hexgrid.ColorRed})

	landAt(g, 1, 0, hexgrid.ColorRed)

	if g.gameOver {
		t.Fatal("endless mode should continue after clearing the field")
	}
	if g.wave != 1 {
		t.Errorf("wave = %d, expected 1", g.wave)
	}
	// 6 rows: 12 + 11 + 12 + 11 + 12 + 11
	if g.field.Len() != 69 {
		t.Errorf("next wave has %d bubbles, expected 69", g.field.Len())
	}
	if g.score != 30 {
		t.Errorf("score = %d, expected score kept at 30", g.score)
	}
}

func TestSwapAndUseItem(t *testing.T) {
	g := newTestGame(ModeClassic)
	g.queue = []hexgrid.Color{hexgrid.ColorRed, hexgrid.ColorBlue, hexgrid.ColorGreen, hexgrid.ColorYellow}

	in := core.NewInputFrame()
	in.Set(core.ActionSwap)
	g.Step(in)
	if g.queue[0] != hexgrid.ColorBlue || g.queue[1] != hexgrid.ColorRed {
		t.Errorf("swap produced %v", g.queue)
	}

	use := core.NewInputFrame()
	use.Set(core.ActionUse)
	g.Step(use)
	if g.queue[0] != hexgrid.ColorBlue {
		t.Error("use with an empty inventory should do nothing")
	}

	g.inventory = hexgrid.ItemBomb
	g.Step(use)
	if g.queue[0] != hexgrid.ColorBomb {
		t.Errorf("loaded = %v, expected Bomb", g.queue[0])
	}
	if g.Inventory() != hexgrid.ItemNone {
		t.Error("using the item should empty the inventory")
	}
}

func TestPoppedBubblesAnimateOut(t *testing.T) {
	g := newTestGame(ModeClassic)
	byCell := setField(g,
		placed{0, 0, hexgrid.ColorRed},
		placed{0, 1, hexgrid.ColorRed},
		placed{0, 5, hexgrid.ColorBlue},
	)
	popped := byCell[hexgrid.C(0, 0)]

	landAt(g, 1, 0, hexgrid.ColorRed)
	if !popped.Active || !g.Animating() {
		t.Fatal("popped bubble should stay active while it animates")
	}

	idle := core.NewInputFrame()
	g.Step(idle)
	if popped.Scale >= 1 || popped.Scale <= 0 {
		t.Errorf("scale one tick into the pop = %f", popped.Scale)
	}

	for i := 0; i < popTicks; i++ {
		g.Step(idle)
	}
	if popped.Active || popped.Scale != 0 {
		t.Errorf("popped bubble after animation: active=%v scale=%f", popped.Active, popped.Scale)
	}
	if g.Animating() {
		t.Errorf("%d animations left", len(g.fading))
	}
}

func TestDroppedBubblesFall(t *testing.T) {
	g := newTestGame(ModeClassic)
	byCell := setField(g,
		placed{0, 0, hexgrid.ColorRed},
		placed{0, 1, hexgrid.ColorRed},
		placed{1, 0, hexgrid.ColorGreen},
		placed{0, 8, hexgrid.ColorBlue},
	)
	dropped := byCell[hexgrid.C(1, 0)]
	startY := dropped.Y

	landAt(g, 1, 1, hexgrid.ColorRed)

	idle := core.NewInputFrame()
	for i := 0; i < dropTicks/2; i++ {
		g.Step(idle)
	}
	if dropped.Y <= startY {
		t.Errorf("dropped bubble Y = %f, expected below %f", dropped.Y, startY)
	}
	for i := 0; i < dropTicks; i++ {
		g.Step(idle)
	}
	if dropped.Active {
		t.Error("dropped bubble should be inactive after falling")
	}
}

func TestPause(t *testing.T) {
	g := newTestGame(ModeClassic)
	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)
	g.Step(pause)
	if !g.State().Paused {
		t.Fatal("game should be paused")
	}

	fire := core.NewInputFrame()
	fire.Set(core.ActionFire)
	g.Step(fire)
	if g.projectile != nil {
		t.Error("input should be ignored while paused")
	}

	g.Step(pause)
	if g.State().Paused {
		t.Error("second pause should resume")
	}
}

func TestLongRunKeepsFieldConsistent(t *testing.T) {
	for _, mode := range []Mode{ModeClassic, ModeEndless} {
		t.Run(string(mode), func(t *testing.T) {
			g := newTestGame(mode)
			g.apply(config.DefaultHexpopConfig(), testRuntime(7))

			in := core.NewInputFrame()
			for i := 0; i < 20000 && !g.gameOver; i++ {
				in.Clear()
				switch i % 40 {
				case 0:
					in.Set(core.ActionFire)
				case 1, 2, 3:
					if (i/40)%3 == 0 {
						in.Set(core.ActionLeft)
					} else {
						in.Set(core.ActionRight)
					}
				}
				g.Step(in)

				for _, b := range g.field.Bubbles() {
					if !g.layout.InBounds(b.Cell()) {
						t.Fatalf("tick %d: bubble out of bounds at %v", i, b.Cell())
					}
					if b.Pos() != g.layout.ToPixel(b.Cell()) {
						t.Fatalf("tick %d: bubble %v has a stale position", i, b.Cell())
					}
				}
				if g.field.Len() > 0 && len(g.layout.Floating(g.field)) != 0 {
					t.Fatalf("tick %d: floating bubbles left on the field", i)
				}
			}
		})
	}
}

func TestRender(t *testing.T) {
	g := newTestGame(ModeClassic)
	screen := core.NewScreen(80, 40)
	g.Render(screen)

	out := screen.String()
	for _, want := range []string{"Hex Pop", "Score: 0", "Misses 0/5", "Next:"} {
		if !strings.Contains(out, want) {
			t.Errorf("render output missing %q", want)
		}
	}
	if !strings.ContainsRune(out, glyphBubble) {
		t.Error("render output has no bubbles")
	}
}

func TestWindowTooSmall(t *testing.T) {
	g := &Game{mode: ModeClassic}
	rt := testRuntime(1)
	rt.ScreenW = 30
	rt.ScreenH = 10
	g.apply(config.DefaultHexpopConfig(), rt)

	if !g.State().Paused {
		t.Error("too small window should pause the game")
	}
	snap := g.Snapshot()
	if snap.State != StatePausedSmall {
		t.Errorf("state = %q, expected %q", snap.State, StatePausedSmall)
	}

	screen := core.NewScreen(30, 10)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Window too small") {
		t.Error("too small window should say so")
	}
}

func TestResizeKeepsRun(t *testing.T) {
	g := newTestGame(ModeClassic)
	g.score = 120
	before := g.field.Len()

	g.Resize(30, 10)
	if !g.State().Paused {
		t.Error("shrinking below the minimum should pause the game")
	}

	g.Resize(80, 40)
	if g.State().Paused {
		t.Error("growing back should resume the game")
	}
	if g.score != 120 || g.field.Len() != before {
		t.Errorf("resize restarted the run: score %d, field %d", g.score, g.field.Len())
	}
}
