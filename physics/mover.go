package physics

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Mover is the collision-aware movement primitive a character drives.
type Mover interface {
	Move(displacement mgl64.Vec3) mgl64.Vec3
	IsGrounded() bool
	Feet() mgl64.Vec3
}

// CharacterMover slides a character collider across the arena floor and
// stops it against blocking colliders, one horizontal axis at a time.
type CharacterMover struct {
	Collider *Collider
	FloorY   float64
	Skin     float64

	blockTags []string
	grounded  bool
}

// NewCharacterMover wraps c. Colliders carrying any of blockTags stop movement.
func NewCharacterMover(c *Collider, floorY, skin float64, blockTags ...string) *CharacterMover {
	return &CharacterMover{
		Collider:  c,
		FloorY:    floorY,
		Skin:      skin,
		blockTags: blockTags,
		grounded:  c.Bounds().Min.Y()-floorY <= skin,
	}
}

// Feet returns the bottom centre of the character.
func (m *CharacterMover) Feet() mgl64.Vec3 {
	b := m.Collider.Bounds()
	c := b.Center()
	return mgl64.Vec3{c.X(), b.Min.Y(), c.Z()}
}

// IsGrounded reports whether the last move left the character on the floor.
func (m *CharacterMover) IsGrounded() bool {
	return m.grounded
}

// Move applies displacement and returns the distance actually travelled.
func (m *CharacterMover) Move(d mgl64.Vec3) mgl64.Vec3 {
	start := m.Feet()
	b := m.Collider.Bounds()

	// --- Resolve horizontal collision ---
	if dx := d.X(); dx != 0 {
		b = b.Translate(mgl64.Vec3{m.clearance(b, 0, dx), 0, 0})
		m.Collider.SetBounds(b)
	}
	if dz := d.Z(); dz != 0 {
		b = b.Translate(mgl64.Vec3{0, 0, m.clearance(b, 2, dz)})
		m.Collider.SetBounds(b)
	}

	// --- Resolve vertical collision against the floor ---
	dy := d.Y()
	if b.Min.Y()+dy < m.FloorY {
		dy = m.FloorY - b.Min.Y()
	}
	b = b.Translate(mgl64.Vec3{0, dy, 0})
	m.Collider.SetBounds(b)
	m.grounded = b.Min.Y()-m.FloorY <= m.Skin

	return m.Feet().Sub(start)
}

// clearance returns how far b can travel by delta along axis (0 = X, 2 = Z)
// before its leading face touches a blocker.
func (m *CharacterMover) clearance(b Bounds, axis int, delta float64) float64 {
	var dx, dz float64
	if axis == 0 {
		dx = delta
	} else {
		dz = delta
	}
	perp := 2 - axis

	allowed := delta
	for _, other := range m.Collider.Nearby(dx, dz, m.blockTags...) {
		o := other.Bounds()
		if !spanOverlap(b.Min[perp], b.Max[perp], o.Min[perp], o.Max[perp]) {
			continue
		}
		if delta > 0 {
			// Blockers we are already inside of are ignored so we can walk out.
			if o.Min[axis] < b.Max[axis]-1e-9 || o.Min[axis] >= b.Max[axis]+delta {
				continue
			}
			allowed = math.Min(allowed, math.Max(0, o.Min[axis]-b.Max[axis]))
		} else {
			if o.Max[axis] > b.Min[axis]+1e-9 || o.Max[axis] <= b.Min[axis]+delta {
				continue
			}
			allowed = math.Max(allowed, math.Min(0, o.Max[axis]-b.Min[axis]))
		}
	}
	return allowed
}

func spanOverlap(aMin, aMax, bMin, bMax float64) bool {
	return aMax > bMin && bMax > aMin
}
