package components

import "github.com/yohamta/donburi"

// DestructibleData marks an entity that a missile hit removes from the world.
type DestructibleData struct {
	Name string
}

var Destructible = donburi.NewComponentType[DestructibleData]()
