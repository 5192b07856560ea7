package physics

import "github.com/automoto/rocketeer/config"

// LayerMatrix records which collision layer pairs ignore each other. It is
// symmetric: ignoring (a, b) also ignores (b, a).
type LayerMatrix struct {
	ignore [config.LayerCount][config.LayerCount]bool
}

// NewLayerMatrix returns a matrix where every layer collides with every other.
func NewLayerMatrix() *LayerMatrix {
	return &LayerMatrix{}
}

// Ignore enables or disables collisions between a and b.
func (m *LayerMatrix) Ignore(a, b config.CollisionLayer, ignore bool) {
	if !valid(a) || !valid(b) {
		return
	}
	m.ignore[a][b] = ignore
	m.ignore[b][a] = ignore
}

// Collides reports whether colliders on a and b interact.
func (m *LayerMatrix) Collides(a, b config.CollisionLayer) bool {
	if !valid(a) || !valid(b) {
		return false
	}
	return !m.ignore[a][b]
}

// Tags returns the resolv tags of every layer that collides with l.
func (m *LayerMatrix) Tags(l config.CollisionLayer) []string {
	var tags []string
	for other := config.CollisionLayer(0); other < config.LayerCount; other++ {
		if m.Collides(l, other) {
			tags = append(tags, other.String())
		}
	}
	return tags
}

// ApplyProjectilePolicy keeps projectiles from hitting each other or the
// characters that launch them.
func ApplyProjectilePolicy(m *LayerMatrix) {
	m.Ignore(config.LayerCharacter, config.LayerProjectile, true)
	m.Ignore(config.LayerProjectile, config.LayerProjectile, true)
}

func valid(l config.CollisionLayer) bool {
	return l >= 0 && l < config.LayerCount
}
