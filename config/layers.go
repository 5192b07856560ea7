package config

import "github.com/yohamta/donburi/ecs"

const (
	DefaultLayer ecs.LayerID = iota
)

// CollisionLayer identifies a physics collision group.
type CollisionLayer int

const (
	LayerDefault CollisionLayer = iota
	LayerStatic
	LayerCharacter
	LayerProjectile
	LayerCount // Must be last - used for matrix sizing
)

var layerNames = [LayerCount]string{
	LayerDefault:    "default",
	LayerStatic:     "static",
	LayerCharacter:  "character",
	LayerProjectile: "projectile",
}

// String returns the layer name, which doubles as its resolv tag.
func (l CollisionLayer) String() string {
	if l < 0 || l >= LayerCount {
		return "unknown"
	}
	return layerNames[l]
}
