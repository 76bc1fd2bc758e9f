package sim

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/vovakirdan/adventure-land/internal/core"
)

// Body is a positioned bounding volume shared by every entity.
type Body struct {
	box core.Box
}

// NewBody creates a body centered at center.
func NewBody(center mgl64.Vec3, width, length, height float64) Body {
	return Body{box: core.NewBox(center, width, length, height)}
}

// Bounds returns the current volume.
func (b *Body) Bounds() core.Box {
	return b.box
}

// Position returns the center of the body.
func (b *Body) Position() mgl64.Vec3 {
	return b.box.Center
}

// SetPosition moves the body without changing its shape.
func (b *Body) SetPosition(p mgl64.Vec3) {
	b.box.Center = p
}

// Feet returns the height of the bottom face.
func (b *Body) Feet() float64 {
	return b.box.Bottom()
}

// Bonus is a collectible that scores once.
type Bonus struct {
	Body
	visible bool
}

// NewBonus creates a visible bonus cube.
func NewBonus(center mgl64.Vec3, size float64) *Bonus {
	return &Bonus{Body: NewBody(center, size, size, size), visible: true}
}

// Available reports whether the bonus can still be collected.
func (b *Bonus) Available() bool {
	return b.visible
}

// Collect hides the bonus for good.
func (b *Bonus) Collect() {
	b.visible = false
}

// Goal is the static block that wins the session on contact.
type Goal struct {
	Body
}

// NewGoal creates a goal cube.
func NewGoal(center mgl64.Vec3, size float64) *Goal {
	return &Goal{Body: NewBody(center, size, size, size)}
}
