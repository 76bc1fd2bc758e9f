package sim

import (
	"math"
	"time"

	"github.com/go-gl/mathgl/mgl64"
)

// Aimer supplies the firing angle in degrees.
type Aimer interface {
	FiringAngle() float64
}

// Projectile is the single shot the player can have in flight.
type Projectile struct {
	Body

	visible bool
	origin  mgl64.Vec3
	dir     mgl64.Vec3
	speed   float64
	rng     float64
	lockAim bool
}

// NewProjectile creates an idle projectile.
func NewProjectile(p Params) *Projectile {
	s := p.ProjectileSize
	return &Projectile{
		Body:    NewBody(mgl64.Vec3{}, s, s, s),
		speed:   p.ProjectileSpeed,
		rng:     p.ProjectileRange,
		lockAim: p.LockAim,
	}
}

// InFlight reports whether the projectile is visible and moving.
func (pr *Projectile) InFlight() bool { return pr.visible }

// Origin returns the point the current shot was fired from.
func (pr *Projectile) Origin() mgl64.Vec3 { return pr.origin }

// Direction returns the current unit heading.
func (pr *Projectile) Direction() mgl64.Vec3 { return pr.dir }

// Fire launches the projectile from origin along the aimer's angle.
// It returns false and does nothing while a shot is already in flight.
func (pr *Projectile) Fire(origin mgl64.Vec3, a Aimer) bool {
	if pr.visible {
		return false
	}
	pr.origin = origin
	pr.dir = AngleVector(a.FiringAngle())
	pr.SetPosition(origin)
	pr.visible = true
	return true
}

// Deactivate returns the projectile to idle.
func (pr *Projectile) Deactivate() {
	pr.visible = false
}

// Update moves the projectile by speed*dt. Unless the aim is locked the
// heading follows the aimer's current angle every tick.
func (pr *Projectile) Update(dt time.Duration, a Aimer) {
	if !pr.visible {
		return
	}
	if !pr.lockAim && a != nil {
		pr.dir = AngleVector(a.FiringAngle())
	}
	pr.SetPosition(pr.Position().Add(pr.dir.Mul(pr.speed * dt.Seconds())))

	delta := pr.Position().Sub(pr.origin)
	if math.Hypot(delta.X(), delta.Z()) > pr.rng {
		pr.visible = false
	}
}
