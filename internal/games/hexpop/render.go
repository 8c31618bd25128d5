package hexpop

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/hexpop/internal/core"
	"github.com/vovakirdan/hexpop/internal/games/hexpop/hexgrid"
)

const (
	colChars  = 4 // Screen columns per lattice column
	hudHeight = 2
)

// Glyphs
const (
	glyphBubble   = '●'
	glyphItem     = '◆'
	glyphShrunk   = '·'
	glyphBomb     = '@'
	glyphLaser    = '|'
	glyphAim      = '·'
	glyphBeam     = '┃'
	glyphShooter  = '▲'
	glyphDeadline = '╌'
)

// palette maps bubble colors to terminal colors.
var palette = map[hexgrid.Color]core.Color{
	hexgrid.ColorRed:    core.ColorRed,
	hexgrid.ColorGreen:  core.ColorGreen,
	hexgrid.ColorBlue:   core.ColorBlue,
	hexgrid.ColorYellow: core.ColorYellow,
	hexgrid.ColorPurple: core.ColorMagenta,
	hexgrid.ColorOrange: core.ColorOrange,
	hexgrid.ColorBomb:   core.ColorBrightRed,
	hexgrid.ColorLaser:  core.ColorCyan,
}

// fieldChars is the inner width of the playfield in screen columns.
func (g *Game) fieldChars() int {
	return g.layout.Columns * colChars
}

// fieldLines is the inner height of the playfield, down to the shooter.
func (g *Game) fieldLines() int {
	_, y := g.toScreen(g.origin())
	return y + 1
}

// minScreenSize returns the smallest terminal that fits the game.
func (g *Game) minScreenSize() (w, h int) {
	return g.fieldChars() + 2, hudHeight + g.fieldLines() + 2 + 2
}

// toScreen maps a field pixel to a cell inside the playfield box.
func (g *Game) toScreen(p hexgrid.Point) (x, y int) {
	r := g.layout.Radius
	x = int(math.Floor(p.X * colChars / (2 * r)))
	y = int(math.Floor((p.Y-r)/g.layout.RowHeight() + 0.5))
	return x, y
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	boxW := g.fieldChars() + 2
	boxH := g.fieldLines() + 2
	boxX := (g.screenW - boxW) / 2
	boxY := hudHeight

	g.renderHUD(dst, boxX, boxW)
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH), core.ColorGray)

	area := core.NewRect(boxX+1, boxY+1, g.fieldChars(), g.fieldLines())
	g.renderField(dst, area)
	g.renderFooter(dst, boxX, boxY+boxH, boxW)
	g.renderOverlays(dst, boxX+boxW/2, boxY+boxH/2)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	w, h := g.minScreenSize()
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need %dx%d", w, h))
}

// renderHUD draws score, pressure and combo above the playfield.
func (g *Game) renderHUD(dst *core.Screen, boxX, boxW int) {
	title := g.Title()
	dst.DrawTextColored(boxX, 0, title, core.ColorBrightWhite)

	score := fmt.Sprintf("Score: %d", g.score)
	dst.DrawText(boxX+boxW-len(score), 0, score)

	threshold := g.missThreshold()
	missColor := core.ColorDefault
	if g.misses >= threshold-1 {
		missColor = core.ColorBrightRed
	}
	misses := fmt.Sprintf("Misses %d/%d", g.misses, threshold)
	dst.DrawTextColored(boxX, 1, misses, missColor)

	info := fmt.Sprintf("Combo %d", g.combo)
	if g.mode == ModeEndless {
		info = fmt.Sprintf("Wave %d  %s", g.wave+1, info)
	}
	dst.DrawText(boxX+boxW-len(info), 1, info)
}

// renderField draws the lattice, effects and shooter inside area.
func (g *Game) renderField(dst *core.Screen, area core.Rect) {
	put := func(p hexgrid.Point, r rune, c core.Color) {
		x, y := g.toScreen(p)
		if area.Contains(area.X+x, area.Y+y) {
			dst.SetColored(area.X+x, area.Y+y, r, c)
		}
	}

	// Death line
	_, dy := g.toScreen(hexgrid.Point{Y: g.deathLineY()})
	dst.DrawHLine(area.X, area.Y+dy, area.W, glyphDeadline, core.ColorGray)

	if g.projectile == nil && !g.gameOver {
		for _, p := range g.AimPath() {
			put(p, glyphAim, core.ColorGray)
		}
	}

	if g.beam != nil {
		n := int(g.beam.from.Dist(g.beam.to) / g.layout.Radius)
		for i := 0; i <= n; i++ {
			t := float64(i) / float64(n)
			p := hexgrid.Point{
				X: g.beam.from.X + (g.beam.to.X-g.beam.from.X)*t,
				Y: g.beam.from.Y + (g.beam.to.Y-g.beam.from.Y)*t,
			}
			put(p, glyphBeam, core.ColorCyan)
		}
	}

	for _, b := range g.field.Bubbles() {
		g.drawBubble(dst, area, b)
	}
	for _, f := range g.fading {
		g.drawBubble(dst, area, f.bubble)
	}

	if p := g.projectile; p != nil {
		put(p.pos(), glyphFor(p.Color), palette[p.Color])
	}

	// Shooter with the loaded color on top of it
	o := g.origin()
	put(o, glyphShooter, core.ColorBrightWhite)
	if g.projectile == nil {
		loaded := g.loaded()
		put(hexgrid.Point{X: o.X, Y: o.Y - g.layout.RowHeight()}, glyphFor(loaded), palette[loaded])
	}
}

// drawBubble draws one bubble, bracketed while it is full size.
func (g *Game) drawBubble(dst *core.Screen, area core.Rect, b *hexgrid.Bubble) {
	x, y := g.toScreen(b.Pos())
	x += area.X
	y += area.Y
	if !area.Contains(x, y) {
		return
	}

	c := palette[b.Color]
	if b.Scale < 0.5 {
		dst.SetColored(x, y, glyphShrunk, c)
		return
	}

	r := glyphFor(b.Color)
	if b.Item == hexgrid.ItemLaser {
		r = glyphItem
	}
	if area.Contains(x-1, y) {
		dst.SetColored(x-1, y, '(', c)
	}
	dst.SetColored(x, y, r, c)
	if area.Contains(x+1, y) {
		dst.SetColored(x+1, y, ')', c)
	}
}

func glyphFor(c hexgrid.Color) rune {
	switch c {
	case hexgrid.ColorBomb:
		return glyphBomb
	case hexgrid.ColorLaser:
		return glyphLaser
	default:
		return glyphBubble
	}
}

// renderFooter draws the queue, the held item, the latest message and the
// controls below the playfield.
func (g *Game) renderFooter(dst *core.Screen, boxX, y, boxW int) {
	label := "Next: "
	dst.DrawText(boxX, y, label)
	x := boxX + len(label)
	for i, c := range g.queue {
		r := glyphFor(c)
		if i == 0 {
			dst.SetColored(x, y, '[', core.ColorBrightWhite)
			dst.SetColored(x+1, y, r, palette[c])
			dst.SetColored(x+2, y, ']', core.ColorBrightWhite)
			x += 4
			continue
		}
		dst.SetColored(x, y, r, palette[c])
		x += 2
	}

	item := "Item: -"
	itemColor := core.ColorGray
	if marker, ok := g.inventory.Marker(); ok {
		item = "Item: " + strings.ToUpper(g.inventory.String())
		itemColor = palette[marker]
	}
	dst.DrawTextColored(boxX+boxW-len(item), y, item, itemColor)

	if g.flashTicks > 0 && g.flash != "" {
		dst.DrawTextColored(boxX+(boxW-len(g.flash))/2, y+1, g.flash, core.ColorYellow)
	} else {
		dst.DrawTextCenteredColored(y+1, g.Controls(), core.ColorGray)
	}
}

// renderOverlays draws game state overlays.
func (g *Game) renderOverlays(dst *core.Screen, centerX, centerY int) {
	score := fmt.Sprintf("Score: %d", g.score)
	switch {
	case g.paused:
		g.drawOverlay(dst, centerX, centerY, "PAUSED", "Press P to resume")
	case g.won:
		g.drawOverlay(dst, centerX, centerY, "FIELD CLEARED!", score, "Press R to restart")
	case g.gameOver:
		g.drawOverlay(dst, centerX, centerY, "GAME OVER", score, "Press R to restart")
	}
}

// drawOverlay draws a centered text box.
func (g *Game) drawOverlay(dst *core.Screen, centerX, centerY int, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = core.Max(maxLen, len(line))
	}

	boxW := maxLen + 4
	boxH := len(lines) + 2
	boxX := centerX - boxW/2
	boxY := centerY - boxH/2

	for y := boxY; y < boxY+boxH; y++ {
		dst.DrawHLine(boxX, y, boxW, ' ', core.ColorDefault)
	}
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH), core.ColorBrightWhite)

	for i, line := range lines {
		dst.DrawText(centerX-len(line)/2, boxY+1+i, line)
	}
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "←/→ Aim | Space Fire | X Swap | E Item | P Pause | Q Quit"
}
