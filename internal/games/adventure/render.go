package adventure

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/adventure-land/internal/core"
	"github.com/vovakirdan/adventure-land/internal/games/adventure/sim"
)

// Glyphs of the top-down view.
const (
	GlyphWater      = '~'
	GlyphHollow     = '≈'
	GlyphTile       = '▒'
	GlyphTileAlt    = '░'
	GlyphSliderUp   = '▲'
	GlyphSliderMid  = '='
	GlyphSliderDown = '▼'
	GlyphPlayer     = '@'
	GlyphAim        = '+'
	GlyphHostile    = 'X'
	GlyphBonus      = '$'
	GlyphGoal       = '◆'
	GlyphProjectile = '*'
)

// Minimum screen size for the map to be readable.
const (
	minScreenW = 30
	minScreenH = 12
)

// aimMarkerDistance is how far ahead of the player the aim marker is drawn.
const aimMarkerDistance = 4.0

// view projects the x/z plane onto the screen: x runs right, z runs down,
// so Forward (-z) is up. One world unit is twice as wide as it is tall on
// screen to offset the cell aspect ratio.
type view struct {
	minX, minZ float64
	sx, sz     float64 // Cells per world unit
	left, top  int
	right, bot int // Exclusive
}

func newView(area core.Rect, minX, maxX, minZ, maxZ float64) view {
	fw, fl := maxX-minX, maxZ-minZ
	sx := math.Min(float64(area.W)/fw, 2*float64(area.H)/fl)
	v := view{minX: minX, minZ: minZ, sx: sx, sz: sx / 2}

	w := int(math.Round(fw * v.sx))
	h := int(math.Round(fl * v.sz))
	v.left = area.X + (area.W-w)/2
	v.top = area.Y + (area.H-h)/2
	v.right = v.left + w
	v.bot = v.top + h
	return v
}

// toWorld returns the world x/z under the center of a screen cell.
func (v view) toWorld(col, row int) (x, z float64) {
	return v.minX + (float64(col-v.left)+0.5)/v.sx, v.minZ + (float64(row-v.top)+0.5)/v.sz
}

// toScreen returns the screen cell containing world x/z.
func (v view) toScreen(x, z float64) (col, row int) {
	return v.left + int(math.Floor((x-v.minX)*v.sx)), v.top + int(math.Floor((z-v.minZ)*v.sz))
}

func (v view) inside(col, row int) bool {
	return col >= v.left && col < v.right && row >= v.top && row < v.bot
}

// footprint fills the cells covered by a w x l footprint centered at pos,
// always including the center cell.
func (v view) footprint(dst *core.Screen, pos [3]float64, w, l float64, r rune, c core.Color) {
	c0, r0 := v.toScreen(pos[0]-w/2, pos[2]-l/2)
	c1, r1 := v.toScreen(pos[0]+w/2, pos[2]+l/2)
	for row := r0; row < r1; row++ {
		for col := c0; col < c1; col++ {
			if v.inside(col, row) {
				dst.SetColored(col, row, r, c)
			}
		}
	}
	if col, row := v.toScreen(pos[0], pos[2]); v.inside(col, row) {
		dst.SetColored(col, row, r, c)
	}
}

// Render draws the HUD and a top-down map of the current world.
func (g *Game) Render(dst *core.Screen) {
	if g.world == nil {
		return
	}
	w, h := dst.Width(), dst.Height()
	if w < minScreenW || h < minScreenH {
		dst.DrawTextCentered(h/2, "Terminal too small")
		dst.DrawTextCentered(h/2+1, fmt.Sprintf("Need %dx%d", minScreenW, minScreenH))
		return
	}

	snap := g.world.Snapshot()
	g.drawHUD(dst, snap)

	frame := core.NewRect(0, 1, w, h-1)
	dst.DrawBox(frame, core.ColorGray)

	ex, ez := g.world.Grid.Extent()
	m := g.params.PlayfieldMargin
	v := newView(core.NewRect(1, 2, w-2, h-3), -m, ex+m, -m, ez+m)

	g.drawTerrain(dst, v)
	g.drawBodies(dst, v, snap)
	g.drawOverlay(dst, snap)
}

func (g *Game) drawHUD(dst *core.Screen, snap sim.Snapshot) {
	lives := snap.Lives
	if lives < 0 {
		lives = 0
	}
	left := fmt.Sprintf(" %s  Score %d  Lives %d", g.level.Name, snap.Score, lives)
	right := fmt.Sprintf("%s  Speed %.1f  Aim %3.0f°  %5.1fs ",
		snap.Player.State, snap.Player.Speed, snap.Player.FiringAngle, snap.Elapsed.Seconds())

	dst.DrawTextColored(0, 0, left, core.ColorBrightWhite)
	x := dst.Width() - len([]rune(right))
	if x > len([]rune(left)) {
		dst.DrawTextColored(x, 0, right, core.ColorCyan)
	}
}

func (g *Game) drawTerrain(dst *core.Screen, v view) {
	grid := g.world.Grid
	for row := v.top; row < v.bot; row++ {
		for col := v.left; col < v.right; col++ {
			x, z := v.toWorld(col, row)
			idx := grid.CellIndexAt(x, z)
			cell := grid.Cell(idx)
			switch {
			case cell == nil:
				dst.SetColored(col, row, GlyphWater, core.ColorBlue)
			case !cell.Solid():
				dst.SetColored(col, row, GlyphHollow, core.ColorBrightBlue)
			case cell.Sliding:
				dst.SetColored(col, row, sliderGlyph(cell.Offset), sliderColor(cell.Offset))
			case (cell.Row+cell.Col)%2 == 0:
				dst.SetColored(col, row, GlyphTile, core.ColorGreen)
			default:
				dst.SetColored(col, row, GlyphTileAlt, core.ColorBrightGreen)
			}
		}
	}
}

func sliderGlyph(offset float64) rune {
	switch {
	case offset > 1:
		return GlyphSliderUp
	case offset < -1:
		return GlyphSliderDown
	default:
		return GlyphSliderMid
	}
}

func sliderColor(offset float64) core.Color {
	switch {
	case offset > 1:
		return core.ColorBrightYellow
	case offset < -1:
		return core.ColorOrange
	default:
		return core.ColorYellow
	}
}

func (g *Game) drawBodies(dst *core.Screen, v view, snap sim.Snapshot) {
	p := g.params

	v.footprint(dst, snap.Goal, p.GoalSize, p.GoalSize, GlyphGoal, core.ColorBrightMagenta)

	for _, b := range snap.Bonuses {
		if b.Visible {
			v.footprint(dst, b.Position, p.BonusSize, p.BonusSize, GlyphBonus, core.ColorBrightYellow)
		}
	}
	for _, h := range snap.Hostiles {
		if h.Alive && h.Visible {
			v.footprint(dst, h.Position, p.HostileWidth, p.HostileLength, GlyphHostile, core.ColorBrightRed)
		}
	}

	pl := snap.Player
	playerColor := core.ColorBrightWhite
	if pl.State == sim.Jumping || pl.State == sim.FreeFalling {
		playerColor = core.ColorBrightCyan
	}
	v.footprint(dst, pl.Position, p.PlayerWidth, p.PlayerLength, GlyphPlayer, playerColor)

	aim := mgl64.Vec3(pl.Anchor).Add(sim.AngleVector(pl.FiringAngle).Mul(aimMarkerDistance))
	if col, row := v.toScreen(aim.X(), aim.Z()); v.inside(col, row) {
		dst.SetColored(col, row, GlyphAim, core.ColorCyan)
	}

	if snap.Projectile.Visible {
		if col, row := v.toScreen(snap.Projectile.Position[0], snap.Projectile.Position[2]); v.inside(col, row) {
			dst.SetColored(col, row, GlyphProjectile, core.ColorOrange)
		}
	}
}

func (g *Game) drawOverlay(dst *core.Screen, snap sim.Snapshot) {
	mid := dst.Height() / 2
	switch {
	case snap.Won:
		g.banner(dst, mid, fmt.Sprintf("GOAL REACHED! Score %d", snap.Score), core.ColorBrightGreen)
		g.banner(dst, mid+1, "r restart  esc quit", core.ColorWhite)
	case snap.Lost:
		g.banner(dst, mid, fmt.Sprintf("GAME OVER  Score %d", snap.Score), core.ColorBrightRed)
		g.banner(dst, mid+1, "r restart  esc quit", core.ColorWhite)
	case g.paused:
		g.banner(dst, mid, "PAUSED", core.ColorBrightYellow)
		g.banner(dst, mid+1, "p resume", core.ColorWhite)
	}
}

// banner draws text centered on row y over a blank panel two cells wider
// on each side than the text.
func (g *Game) banner(dst *core.Screen, y int, text string, c core.Color) {
	text = " " + text + " "
	n := len([]rune(text))
	x := (dst.Width() - n) / 2
	dst.DrawRect(core.NewRect(x-2, y, n+4, 1), ' ', core.ColorDefault)
	dst.DrawTextColored(x, y, text, c)
}
