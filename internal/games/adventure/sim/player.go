package sim

import (
	"math"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/vovakirdan/adventure-land/internal/core"
)

// MoveState is the vertical movement state of the player.
type MoveState int

const (
	Grounded MoveState = iota
	Jumping
	FreeFalling
	OnSlider
)

// String returns the state name.
func (s MoveState) String() string {
	switch s {
	case Grounded:
		return "grounded"
	case Jumping:
		return "jumping"
	case FreeFalling:
		return "falling"
	case OnSlider:
		return "riding"
	default:
		return "unknown"
	}
}

// Direction is one of the four horizontal movement directions.
type Direction int

const (
	Forward Direction = iota // -z
	Back                     // +z
	Left                     // -x
	Right                    // +x
)

// Directions lists all directions in declaration order.
var Directions = [...]Direction{Forward, Back, Left, Right}

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case Forward:
		return "forward"
	case Back:
		return "back"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// Vector returns the unit step for the direction.
func (d Direction) Vector() mgl64.Vec3 {
	switch d {
	case Forward:
		return mgl64.Vec3{0, 0, -1}
	case Back:
		return mgl64.Vec3{0, 0, 1}
	case Left:
		return mgl64.Vec3{-1, 0, 0}
	case Right:
		return mgl64.Vec3{1, 0, 0}
	default:
		return mgl64.Vec3{}
	}
}

// BaseAngle is the firing angle in degrees when the aim is centered.
// 0 degrees points along +z.
func (d Direction) BaseAngle() float64 {
	switch d {
	case Right:
		return 90
	case Forward:
		return 180
	case Left:
		return 270
	default:
		return 0
	}
}

// AngleVector converts a firing angle in degrees to a horizontal unit vector.
func AngleVector(deg float64) mgl64.Vec3 {
	rad := mgl64.DegToRad(deg)
	return mgl64.Vec3{math.Sin(rad), 0, math.Cos(rad)}
}

// Playfield bounds the horizontal position of the player.
type Playfield struct {
	MinX, MaxX float64
	MinZ, MaxZ float64
}

// Clamp returns p with x and z inside the playfield.
func (f Playfield) Clamp(p mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{
		core.ClampF(p.X(), f.MinX, f.MaxX),
		p.Y(),
		core.ClampF(p.Z(), f.MinZ, f.MaxZ),
	}
}

// PlayerUpdate reports what happened to the player during one tick.
type PlayerUpdate struct {
	Landed    bool // Came down on a tile after a jump or a fall
	Respawned bool // Fall timed out and the player was sent back to spawn
	Fatal     bool // Drop exceeded the survivable height
}

// Player is the controlled character.
type Player struct {
	Body

	state MoveState

	jumpClock  time.Duration
	fallClock  time.Duration
	jumpStartY float64
	fallStartY float64
	vSpeed     float64

	moving   [len(Directions)]bool
	facing   Direction
	aimAngle float64
	speed    float64
	ride     int

	spawn  mgl64.Vec3
	anchor mgl64.Vec3
	field  Playfield
	p      Params
}

// NewPlayer creates a grounded player at spawn, facing forward.
func NewPlayer(spawn mgl64.Vec3, field Playfield, p Params) *Player {
	pl := &Player{
		Body:   NewBody(spawn, p.PlayerWidth, p.PlayerLength, p.PlayerHeight),
		vSpeed: p.JumpSpeed,
		facing: Forward,
		speed:  p.MoveSpeed,
		ride:   OffGrid,
		spawn:  spawn,
		field:  field,
		p:      p,
	}
	pl.updateAnchor()
	return pl
}

// State returns the current movement state.
func (pl *Player) State() MoveState { return pl.state }

// Facing returns the last direction the player started moving in.
func (pl *Player) Facing() Direction { return pl.facing }

// AimAngle returns the aim offset in degrees.
func (pl *Player) AimAngle() float64 { return pl.aimAngle }

// Speed returns the horizontal speed in units per tick.
func (pl *Player) Speed() float64 { return pl.speed }

// RideIndex returns the slider being ridden, or OffGrid.
func (pl *Player) RideIndex() int { return pl.ride }

// Anchor returns the head/aim anchor point.
func (pl *Player) Anchor() mgl64.Vec3 { return pl.anchor }

// Spawn returns the respawn position.
func (pl *Player) Spawn() mgl64.Vec3 { return pl.spawn }

// Moving reports whether the player intends to move in d.
func (pl *Player) Moving(d Direction) bool { return pl.moving[d] }

// Airborne reports whether gravity integration owns the vertical position.
func (pl *Player) Airborne() bool {
	return pl.state == Jumping || pl.state == FreeFalling
}

// FiringAngle returns the facing base angle plus the aim offset, in [0, 360).
func (pl *Player) FiringAngle() float64 {
	a := math.Mod(pl.facing.BaseAngle()+pl.aimAngle, 360)
	if a < 0 {
		a += 360
	}
	return a
}

// StartMove sets the intent to move in d and turns the player toward it.
func (pl *Player) StartMove(d Direction) {
	pl.moving[d] = true
	pl.facing = d
}

// StopMove clears the intent to move in d.
func (pl *Player) StopMove(d Direction) {
	pl.moving[d] = false
}

// StopAll clears every movement intent.
func (pl *Player) StopAll() {
	pl.moving = [len(Directions)]bool{}
}

// Jump starts a jump. It is ignored while airborne.
func (pl *Player) Jump() bool {
	if pl.Airborne() {
		return false
	}
	pl.beginJump(pl.p.JumpSpeed)
	return true
}

// RotateAim turns the aim by one step; sign selects the direction.
func (pl *Player) RotateAim(sign int) {
	if sign == 0 {
		return
	}
	step := pl.p.AimStep
	if sign < 0 {
		step = -step
	}
	pl.aimAngle = math.Mod(pl.aimAngle+step, 360)
	if pl.aimAngle < 0 {
		pl.aimAngle += 360
	}
}

// ChangeSpeed adjusts the horizontal speed by one step within its range.
func (pl *Player) ChangeSpeed(sign int) {
	if sign == 0 {
		return
	}
	step := pl.p.MoveSpeedStep
	if sign < 0 {
		step = -step
	}
	v := math.Round((pl.speed+step)*1000) / 1000
	pl.speed = core.ClampF(v, pl.p.MoveSpeedMin, pl.p.MoveSpeedMax)
}

// Respawn puts the player back on the spawn point, grounded and idle.
func (pl *Player) Respawn() {
	pl.SetPosition(pl.spawn)
	pl.state = Grounded
	pl.ride = OffGrid
	pl.resetClocks()
	pl.StopAll()
	pl.updateAnchor()
}

// SnapFeet moves the player vertically so its feet rest at y.
func (pl *Player) SnapFeet(y float64) {
	pos := pl.Position()
	pos[1] = y + pl.p.PlayerHeight/2
	pl.SetPosition(pos)
	pl.updateAnchor()
}

// Update advances the player by dt: horizontal intents first, then the
// vertical state machine against the grid, then the aim anchor.
func (pl *Player) Update(dt time.Duration, g *Grid) PlayerUpdate {
	pl.moveHorizontal()

	var u PlayerUpdate
	switch pl.state {
	case Grounded:
		pl.updateGrounded(dt, g, &u)
	case Jumping:
		pl.updateJumping(dt, g, &u)
	case FreeFalling:
		pl.updateFalling(dt, g, &u)
	case OnSlider:
		pl.updateRiding(dt, g, &u)
	}

	pl.updateAnchor()
	return u
}

func (pl *Player) moveHorizontal() {
	pos := pl.Position()
	for _, d := range Directions {
		if pl.moving[d] {
			pos = pos.Add(d.Vector().Mul(pl.speed))
		}
	}
	pl.SetPosition(pl.field.Clamp(pos))
}

func (pl *Player) standingCell(g *Grid) (int, *Cell) {
	pos := pl.Position()
	idx := g.CellIndexAt(pos.X(), pos.Z())
	return idx, g.Cell(idx)
}

func (pl *Player) updateGrounded(dt time.Duration, g *Grid, u *PlayerUpdate) {
	idx, cell := pl.standingCell(g)
	switch {
	case cell == nil || !cell.Solid():
		pl.beginFall()
		pl.updateFalling(dt, g, u)
	case cell.Sliding:
		if pl.Bounds().Intersects(g.TileBox(idx)) {
			pl.Board(idx, g)
			return
		}
		pl.beginFall()
		pl.updateFalling(dt, g, u)
	}
}

func (pl *Player) updateJumping(dt time.Duration, g *Grid, u *PlayerUpdate) {
	pl.jumpClock += dt
	t := pl.jumpClock.Seconds()
	pl.setY(pl.jumpStartY + pl.vSpeed*t - 0.5*pl.p.Gravity*t*t)

	idx, cell := pl.standingCell(g)
	if cell != nil && cell.Solid() && pl.Bounds().Intersects(g.TileBox(idx)) {
		start := pl.jumpStartY
		pl.land(idx, cell, g, u)
		if math.Abs(start-pl.Position().Y()) > pl.p.FatalJumpDrop {
			u.Fatal = true
		}
		return
	}

	if (cell == nil || !cell.Solid()) && pl.Position().Y() < pl.jumpStartY {
		pl.beginFall()
	}
}

func (pl *Player) updateFalling(dt time.Duration, g *Grid, u *PlayerUpdate) {
	pl.fallClock += dt
	t := pl.fallClock.Seconds()
	pl.setY(pl.fallStartY - 0.5*pl.p.Gravity*t*t)

	idx, cell := pl.standingCell(g)
	if cell != nil && cell.Solid() && cell.Sliding && pl.Bounds().Intersects(g.TileBox(idx)) {
		start := pl.fallStartY
		pl.land(idx, cell, g, u)
		if math.Abs(start-pl.Position().Y()) > pl.p.FatalFallDrop {
			u.Fatal = true
		}
		return
	}

	if pl.fallClock > pl.p.FallTimeout {
		drop := math.Abs(pl.fallStartY - pl.Position().Y())
		pl.Respawn()
		u.Respawned = true
		if drop > pl.p.FatalFallDrop {
			u.Fatal = true
		}
	}
}

func (pl *Player) updateRiding(_ time.Duration, g *Grid, u *PlayerUpdate) {
	cell := g.Cell(pl.ride)
	if cell == nil || !cell.Solid() {
		pl.ride = OffGrid
		pl.beginFall()
		return
	}

	tile := g.TileBox(pl.ride)
	pos := pl.Position()
	dx := math.Abs(pos.X() - tile.Center.X())
	dz := math.Abs(pos.Z() - tile.Center.Z())
	if dx > g.TileW/2 || dz > g.TileL/2 {
		pl.ride = OffGrid
		if pl.Feet() > g.GroundLevel() {
			pl.beginJump(pl.p.ReleaseSpeed)
		} else {
			pl.beginFall()
		}
		return
	}

	pl.SnapFeet(tile.Top())
}

// land snaps the player onto the tile at idx and ends the airborne phase.
func (pl *Player) land(idx int, cell *Cell, g *Grid, u *PlayerUpdate) {
	pl.SnapFeet(g.Surface(idx))
	pl.resetClocks()
	u.Landed = true
	if cell.Sliding {
		pl.state = OnSlider
		pl.ride = idx
		return
	}
	pl.state = Grounded
	pl.ride = OffGrid
}

// Board puts the player on the sliding tile idx, feet on its surface.
func (pl *Player) Board(idx int, g *Grid) {
	pl.state = OnSlider
	pl.ride = idx
	pl.SnapFeet(g.Surface(idx))
}

// SupportIndex returns the tile carrying the player: the ride tile while on
// a slider, else the cell under its center (OffGrid over water).
func (pl *Player) SupportIndex(g *Grid) int {
	if pl.state == OnSlider {
		return pl.ride
	}
	idx, _ := pl.standingCell(g)
	return idx
}

func (pl *Player) beginJump(speed float64) {
	pl.state = Jumping
	pl.jumpClock = 0
	pl.vSpeed = speed
	pl.jumpStartY = pl.Position().Y()
}

func (pl *Player) beginFall() {
	pl.state = FreeFalling
	pl.fallClock = 0
	pl.fallStartY = pl.Position().Y()
}

func (pl *Player) resetClocks() {
	pl.jumpClock = 0
	pl.fallClock = 0
	pl.vSpeed = pl.p.JumpSpeed
}

func (pl *Player) setY(y float64) {
	pos := pl.Position()
	pos[1] = y
	pl.SetPosition(pos)
}

// updateAnchor places the anchor on top of the head, pushed to the face the
// player is turned toward.
func (pl *Player) updateAnchor() {
	half := pl.Bounds().Half()
	reach := half.Z()
	if pl.facing == Left || pl.facing == Right {
		reach = half.X()
	}
	pl.anchor = pl.Position().
		Add(mgl64.Vec3{0, half.Y(), 0}).
		Add(pl.facing.Vector().Mul(reach))
}
