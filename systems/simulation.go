package systems

import (
	"github.com/automoto/rocketeer/components"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// Simulation is the scene surface behaviors use to spawn, destroy and
// schedule. scenes.Scene implements it.
type Simulation interface {
	CreateEntity(kind components.PrefabKind, position mgl64.Vec3, orientation mgl64.Quat) *donburi.Entry
	DestroyEntity(e *donburi.Entry)
	IsDestructible(e *donburi.Entry) bool
	After(delay float64, fn func())
	Now() float64
}
