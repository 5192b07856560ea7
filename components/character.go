package components

import (
	"github.com/automoto/rocketeer/physics"
	"github.com/yohamta/donburi"
)

// CharacterData holds the movement primitive of a walking entity.
type CharacterData struct {
	Mover physics.Mover
}

var Character = donburi.NewComponentType[CharacterData]()
