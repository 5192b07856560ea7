package components

import (
	"github.com/automoto/rocketeer/physics"
	"github.com/yohamta/donburi"
)

type ObjectData struct {
	*physics.Collider
}

var Object = donburi.NewComponentType[ObjectData]()
