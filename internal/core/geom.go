// Package core provides fundamental types and utilities shared by the simulation
// and the platform layer. It has no dependency on Bubble Tea so that game logic
// stays pure and testable.
package core

import "github.com/go-gl/mathgl/mgl64"

// Box is an axis-aligned bounding volume in world space.
// Size holds the full extents per axis: X = width, Y = height, Z = length.
// The shape is fixed at construction; only the center moves.
type Box struct {
	Center mgl64.Vec3
	size   mgl64.Vec3
}

// NewBox creates a box centered at center with the given full extents.
// Width runs along x, length along z and height along y.
func NewBox(center mgl64.Vec3, width, length, height float64) Box {
	return Box{
		Center: center,
		size:   mgl64.Vec3{width, height, length},
	}
}

// Size returns the full extents (width, height, length) as a vector.
func (b Box) Size() mgl64.Vec3 {
	return b.size
}

// Half returns the half extents.
func (b Box) Half() mgl64.Vec3 {
	return b.size.Mul(0.5)
}

// Width returns the extent along x.
func (b Box) Width() float64 { return b.size.X() }

// Height returns the extent along y.
func (b Box) Height() float64 { return b.size.Y() }

// Length returns the extent along z.
func (b Box) Length() float64 { return b.size.Z() }

// Min returns the minimum corner.
func (b Box) Min() mgl64.Vec3 {
	return b.Center.Sub(b.Half())
}

// Max returns the maximum corner.
func (b Box) Max() mgl64.Vec3 {
	return b.Center.Add(b.Half())
}

// Bottom returns the y coordinate of the lowest face.
func (b Box) Bottom() float64 {
	return b.Center.Y() - b.size.Y()/2
}

// Top returns the y coordinate of the highest face.
func (b Box) Top() float64 {
	return b.Center.Y() + b.size.Y()/2
}

// MovedTo returns a copy of the box centered at c.
func (b Box) MovedTo(c mgl64.Vec3) Box {
	b.Center = c
	return b
}

// Intersects reports whether two boxes overlap. Intervals are closed on every
// axis, so boxes that only touch count as overlapping.
func (b Box) Intersects(other Box) bool {
	bMin, bMax := b.Min(), b.Max()
	oMin, oMax := other.Min(), other.Max()
	for i := range 3 {
		if bMin[i] > oMax[i] || bMax[i] < oMin[i] {
			return false
		}
	}
	return true
}

// Rect is an integer rectangle in screen cells, used for drawing.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate just past the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate just past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
